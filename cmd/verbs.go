package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/verbs"
)

var (
	verbsSearch string
	verbsJSON   bool
)

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the verb vocabulary",
	RunE:  runVerbs,
}

func init() {
	verbsCmd.Flags().StringVar(&verbsSearch, "search", "", "filter verbs by keyword")
	verbsCmd.Flags().BoolVar(&verbsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(verbsCmd)
}

func runVerbs(cmd *cobra.Command, args []string) error {
	table := make(map[string]string)
	if verbsSearch != "" {
		table = verbs.Search(verbsSearch)
	} else {
		for _, code := range verbs.All() {
			table[code] = verbs.Describe(code)
		}
	}

	if verbsJSON {
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	fmt.Printf("Verb vocabulary (%d verbs):\n\n", len(codes))
	for _, code := range codes {
		fmt.Printf("  %-6s %s\n", code, table[code])
	}
	return nil
}
