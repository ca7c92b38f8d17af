package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/bench"
	"github.com/drixl-io/drixl-go/internal/compact"
	"github.com/drixl-io/drixl-go/internal/config"
)

var (
	benchRoster  string
	benchVerbose bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare message footprint across encodings",
	Long: `Renders one representative message as compact, JSON, XML, and natural
language, then reports approximate token counts and savings. Agent ids come
from the roster file when one is given.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchRoster, "roster", "", "drixl.yaml roster file for agent ids")
	benchCmd.Flags().BoolVar(&benchVerbose, "verbose", false, "print each rendered message")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	to, from := "AGT2", "AGT1"
	if benchRoster != "" {
		roster, err := config.LoadRoster(benchRoster)
		if err != nil {
			return err
		}
		if len(roster) > 1 {
			from = config.DefaultAgent(roster)
			for _, a := range roster {
				if a.ID != from {
					to = a.ID
					break
				}
			}
		}
	}

	msg := &compact.Message{
		To:       to,
		From:     from,
		Type:     "REQ",
		Priority: "HIGH",
		Actions:  []string{"ANLY", "XTRCT"},
		Params:   []string{"firewall.log", "denied_ips", "out:json"},
		CtxRef:   "ref#1",
	}

	results, err := bench.Compare(msg)
	if err != nil {
		return err
	}

	baseline := results[len(results)-1].Tokens // natural language
	fmt.Printf("%-10s %8s %8s %9s\n", "format", "tokens", "bytes", "savings")
	for _, r := range results {
		fmt.Printf("%-10s %8d %8d %8.1f%%\n", r.Format, r.Tokens, r.Bytes, bench.Savings(baseline, r.Tokens))
	}

	if benchVerbose {
		for _, r := range results {
			fmt.Printf("\n--- %s ---\n%s\n", r.Format, r.Text)
		}
	}
	return nil
}
