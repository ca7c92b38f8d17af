package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/convert"
	"github.com/drixl-io/drixl-go/internal/structured"
)

var (
	convertPretty  bool
	convertActions string
	convertParams  string
)

var convertCmd = &cobra.Command{
	Use:   "convert [message]",
	Short: "Convert a message to the other format",
	Long: `Detects whether the message is compact or structured and converts it
to the other format. Structured→compact cannot recover the action list from
free text; pass --actions to supply one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", true, "indent XML output")
	convertCmd.Flags().StringVar(&convertActions, "actions", "", "comma-separated verbs for structured→compact")
	convertCmd.Flags().StringVar(&convertParams, "params", "", "comma-separated params for structured→compact")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	raw, err := messageArg(args)
	if err != nil {
		return err
	}

	format, err := convert.Detect(raw)
	if err != nil {
		return err
	}

	switch format {
	case convert.FormatCompact:
		sm, err := convert.CompactToStructured(raw, nil)
		if err != nil {
			return err
		}
		text, err := sm.ToXML(convertPretty)
		if err != nil {
			return err
		}
		fmt.Println(text)
	case convert.FormatStructured:
		sm, err := structured.FromXML(raw)
		if err != nil {
			return err
		}
		text, err := convert.StructuredToCompact(sm, splitList(convertActions), splitList(convertParams))
		if err != nil {
			return err
		}
		fmt.Println(text)
	}
	return nil
}
