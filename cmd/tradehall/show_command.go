package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tradehall/internal/tradedb"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display stored trading data",
	}

	showCmd.AddCommand(newShowLocationsCommand(ctx))
	showCmd.AddCommand(newShowVillagersCommand(ctx))
	showCmd.AddCommand(newShowTradesCommand(ctx))
	showCmd.AddCommand(newShowEnchantmentsCommand(ctx))
	showCmd.AddCommand(newShowJobsCommand(ctx))

	return showCmd
}

func newShowLocationsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List trading hall locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tradedb.Store) error {
				runCtx := cmd.Context()
				locations, err := store.Locations(runCtx)
				if err != nil {
					return err
				}
				if len(locations) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No locations recorded")
					return nil
				}

				rows := make([][]string, 0, len(locations))
				for _, loc := range locations {
					villagers, err := store.VillagersAt(runCtx, loc.Name)
					if err != nil {
						return err
					}
					rows = append(rows, []string{
						loc.Name,
						strconv.Itoa(loc.XCoord),
						strconv.Itoa(loc.ZCoord),
						strconv.Itoa(len(villagers)),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Location", "X", "Z", "Villagers"}, rows, 2, 3, 4))
				return nil
			})
		},
	}
}

func newShowVillagersCommand(ctx *commandContext) *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "villagers",
		Short: "List registered villagers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tradedb.Store) error {
				runCtx := cmd.Context()
				var villagers []tradedb.Villager
				var err error
				if location != "" {
					villagers, err = store.VillagersAt(runCtx, location)
				} else {
					villagers, err = store.Villagers(runCtx)
				}
				if err != nil {
					return err
				}
				if len(villagers) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No villagers recorded")
					return nil
				}

				rows := make([][]string, 0, len(villagers))
				for _, v := range villagers {
					count, err := store.TradeCount(runCtx, v.ID)
					if err != nil {
						return err
					}
					rows = append(rows, []string{
						v.ID,
						v.Job,
						v.Location,
						fmt.Sprintf("%d/%d", count, tradedb.MaxTradeSlots),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Villager", "Job", "Location", "Trades"}, rows, 4))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Only list villagers at this location")
	return cmd
}

func newShowTradesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "trades [villager-id]",
		Short: "List recorded trades, optionally for one villager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tradedb.Store) error {
				runCtx := cmd.Context()
				var trades []tradedb.Trade
				var err error
				if len(args) == 1 {
					trades, err = store.TradesFor(runCtx, args[0])
				} else {
					trades, err = store.Trades(runCtx)
				}
				if err != nil {
					return err
				}
				if len(trades) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No trades recorded")
					return nil
				}

				rows := make([][]string, 0, len(trades))
				for _, trade := range trades {
					rows = append(rows, []string{
						trade.VillagerID,
						displayName(trade.Enchantment),
						strconv.Itoa(trade.Level),
						strconv.Itoa(trade.Cost),
						trade.CreatedAt.Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Villager", "Enchantment", "Level", "Emeralds", "Added"}, rows, 3, 4))
				return nil
			})
		},
	}
}

func newShowEnchantmentsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "enchantments",
		Short: "List loaded tradeable enchantments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tradedb.Store) error {
				enchantments, err := store.Enchantments(cmd.Context())
				if err != nil {
					return err
				}
				if len(enchantments) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No enchantments loaded; run `tradehall sync` first")
					return nil
				}

				rows := make([][]string, 0, len(enchantments))
				for _, ench := range enchantments {
					rows = append(rows, []string{
						displayName(ench.Name),
						strconv.Itoa(ench.MaxLevel),
						displayName(ench.SupportedItems),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Enchantment", "Max Level", "Supported Items"}, rows, 2))
				return nil
			})
		},
	}
}

func newShowJobsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List loaded villager jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *tradedb.Store) error {
				jobs, err := store.Jobs(cmd.Context())
				if err != nil {
					return err
				}
				if len(jobs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No jobs loaded; run `tradehall sync` first")
					return nil
				}
				for _, job := range jobs {
					fmt.Fprintln(cmd.OutOrStdout(), job)
				}
				return nil
			})
		},
	}
}
