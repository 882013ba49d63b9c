package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tradehall/internal/tradedb"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the trading database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tradedb.Store) error {
				summary, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}

				rows := [][]string{
					{"Locations", strconv.Itoa(summary.Locations)},
					{"Villagers", strconv.Itoa(summary.Villagers)},
					{"Trades", strconv.Itoa(summary.Trades)},
					{"Enchantments", strconv.Itoa(summary.Enchantments)},
					{"Jobs", strconv.Itoa(summary.Jobs)},
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable([]string{"Table", "Rows"}, rows, 2))

				if summary.LastLoad == nil {
					fmt.Fprintln(out, "Reference data never loaded; run `tradehall sync`")
					return nil
				}
				fmt.Fprintf(out, "Last sync: version %s on %s (run %s)\n",
					summary.LastLoad.GameVersion,
					summary.LastLoad.LoadedAt.Format("2006-01-02 15:04"),
					summary.LastLoad.RunID,
				)
				return nil
			})
		},
	}
}
