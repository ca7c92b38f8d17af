package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/compact"
)

var (
	buildTo       string
	buildFrom     string
	buildType     string
	buildPriority string
	buildActions  string
	buildParams   string
	buildCtxRef   string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a compact message",
	Example: `  drixl build --to AGT2 --from AGT1 --type REQ --priority HIGH \
    --actions ANLY,XTRCT --params firewall.log,out:json --ctx-ref ref#1`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildTo, "to", "", "recipient agent ID")
	buildCmd.Flags().StringVar(&buildFrom, "from", "", "sender agent ID")
	buildCmd.Flags().StringVar(&buildType, "type", "REQ", "message type (REQ|RES|ERR|FIN)")
	buildCmd.Flags().StringVar(&buildPriority, "priority", "MED", "priority (HIGH|MED|LOW)")
	buildCmd.Flags().StringVar(&buildActions, "actions", "", "comma-separated verbs")
	buildCmd.Flags().StringVar(&buildParams, "params", "", "comma-separated parameters")
	buildCmd.Flags().StringVar(&buildCtxRef, "ctx-ref", "", "context store reference ID")
	buildCmd.MarkFlagRequired("to")
	buildCmd.MarkFlagRequired("from")
	buildCmd.MarkFlagRequired("actions")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	text, err := compact.Build(
		buildTo, buildFrom, buildType, buildPriority,
		splitList(buildActions), splitList(buildParams), buildCtxRef,
	)
	if err != nil {
		return err
	}
	fmt.Println("✓ Message built:")
	fmt.Println()
	fmt.Println(text)
	return nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
