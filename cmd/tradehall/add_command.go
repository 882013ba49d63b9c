package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradehall/internal/entry"
	"tradehall/internal/tradedb"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Interactively record librarian trades",
		Long: `Add starts an interactive entry session. Each pass records one trade:
location, villager, enchantment, level, and emerald cost. Locations and
villagers are created on the fly; enchantments must already be loaded
with "tradehall sync".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *tradedb.Store) error {
				count, err := store.Stats(cmd.Context())
				if err != nil {
					return fmt.Errorf("read database stats: %w", err)
				}
				if count.Enchantments == 0 {
					return fmt.Errorf("no enchantment reference data loaded; run `tradehall sync` first")
				}

				emoji := !plain && isTerminal(cmd.OutOrStdout())
				prompt := entry.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), emoji)
				session := entry.NewSession(store, prompt, logger)
				return session.Run(cmd.Context())
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Use plain text status markers instead of emoji")
	return cmd
}
