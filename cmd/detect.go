package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/convert"
)

var detectCmd = &cobra.Command{
	Use:   "detect [message]",
	Short: "Detect whether a message is compact or structured",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	raw, err := messageArg(args)
	if err != nil {
		return err
	}
	format, err := convert.Detect(raw)
	if err != nil {
		return err
	}
	fmt.Println(format)
	return nil
}
