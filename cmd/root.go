// Package cmd wires the drixl command-line surface. Commands here only
// call into the internal packages and print results — protocol logic
// lives in internal/, not in this package.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "drixl",
	Short: "drixl — compressed inter-agent communication language",
	Long:  "drixl builds, parses, converts, and benchmarks compact inter-agent protocol messages.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.drixl/config.json)")
}
