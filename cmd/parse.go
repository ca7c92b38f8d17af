package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/compact"
	"github.com/drixl-io/drixl-go/internal/verbs"
)

var (
	parseLenient bool
	parseJSON    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [message]",
	Short: "Parse and validate a compact message",
	Long:  "Parses a compact message from the argument, or from stdin when omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseLenient, "lenient", false, "accept unknown verbs in the body")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := messageArg(args)
	if err != nil {
		return err
	}

	parsed, err := compact.Parse(raw, !parseLenient)
	if err != nil {
		return err
	}

	if parseJSON {
		data, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println("✓ Valid compact message")
	fmt.Println()
	fmt.Println("Envelope:")
	fmt.Printf("  To:       %s\n", parsed.Envelope.To)
	fmt.Printf("  From:     %s\n", parsed.Envelope.From)
	fmt.Printf("  Type:     %s\n", parsed.Envelope.Type)
	fmt.Printf("  Priority: %s\n", parsed.Envelope.Priority)
	fmt.Println()
	fmt.Println("Actions:")
	for _, action := range parsed.Actions {
		fmt.Printf("  - %s (%s)\n", action, verbs.Describe(action))
	}
	fmt.Println()
	fmt.Println("Parameters:")
	for _, param := range parsed.Params {
		fmt.Printf("  - %s\n", param)
	}
	if ref := parsed.CtxRef(); ref != "" {
		fmt.Println()
		fmt.Printf("Context ref: %s\n", ref)
	}
	return nil
}

// messageArg returns the message from args or stdin.
func messageArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no message provided")
	}
	return string(data), nil
}
