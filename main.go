package main

import "github.com/drixl-io/drixl-go/cmd"

func main() {
	cmd.Execute()
}
