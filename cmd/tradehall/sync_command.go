package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradehall/internal/preflight"
	"tradehall/internal/refdata"
	"tradehall/internal/tradedb"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Load enchantment and job reference data from the latest release",
		Long: `Sync downloads the latest release's client archive, extracts the
tradeable enchantments and villager jobs it declares, and replaces the
reference tables in one transaction. Recorded trades are not touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := preflight.FirstFailure(preflight.RunSync(cmd.Context(), cfg)); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			client, err := refdata.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build metadata client: %w", err)
			}

			return ctx.withStore(func(store *tradedb.Store) error {
				loader, err := refdata.NewLoader(client, store, logger)
				if err != nil {
					return err
				}
				summary, err := loader.Sync(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Loaded reference data for version %s\n", summary.GameVersion)
				fmt.Fprintf(out, "  Enchantments: %d\n", summary.Enchantments)
				fmt.Fprintf(out, "  Jobs:         %d\n", summary.Jobs)
				fmt.Fprintf(out, "  Run:          %s (%s)\n", summary.RunID, summary.Duration.Round(time.Millisecond))
				return nil
			})
		},
	}
}
