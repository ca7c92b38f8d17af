package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/drixl-io/drixl-go/internal/config"
	"github.com/drixl-io/drixl-go/internal/ctxstore"
)

var storeTTL time.Duration

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Work with the context reference store",
	Long:  "Reads and writes context references against the backend selected in the config file.",
}

var storeSetCmd = &cobra.Command{
	Use:   "set <ref> <value>",
	Short: "Store a value under a reference ID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s ctxstore.Store) error {
			if err := s.Set(cmd.Context(), args[0], args[1], storeTTL); err != nil {
				return err
			}
			fmt.Printf("✓ Stored %s\n", args[0])
			return nil
		})
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get <ref>",
	Short: "Retrieve a value by reference ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s ctxstore.Store) error {
			value, ok, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("reference %q not found", args[0])
			}
			fmt.Println(value)
			return nil
		})
	},
}

var storeDelCmd = &cobra.Command{
	Use:   "del <ref>",
	Short: "Delete a reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s ctxstore.Store) error {
			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Deleted %s\n", args[0])
			return nil
		})
	},
}

var storeKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all live reference IDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s ctxstore.Store) error {
			refs, err := s.Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, ref := range refs {
				fmt.Println(ref)
			}
			return nil
		})
	},
}

var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every stored reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s ctxstore.Store) error {
			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("✓ Store cleared")
			return nil
		})
	},
}

func init() {
	storeSetCmd.Flags().DurationVar(&storeTTL, "ttl", 0, "time-to-live (e.g. 30s, 10m; 0 = no expiry)")
	storeCmd.AddCommand(storeSetCmd, storeGetCmd, storeDelCmd, storeKeysCmd, storeClearCmd)
	rootCmd.AddCommand(storeCmd)
}

// withStore opens the configured backend, runs fn, and closes it.
func withStore(fn func(ctxstore.Store) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	s, err := ctxstore.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
