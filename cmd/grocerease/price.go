package grocerease

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincent-oy/GrocerEase/internal/money"
	"github.com/vincent-oy/GrocerEase/internal/service"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Record and look up per-store prices",
}

var (
	priceStoreID int64
	priceItem    string
	priceAmount  string
)

var priceSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Record a price observation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cents, err := money.ParseCents(priceAmount)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpsertPrice(sqldb, priceStoreID, priceItem, cents); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %q at store %d\n", money.FormatCents(cents), priceItem, priceStoreID)
			return nil
		})
	},
}

var priceLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent price for an item at a store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cents, err := service.LatestPriceCents(sqldb, priceStoreID, priceItem)
			if err != nil {
				return err
			}
			if cents == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No price recorded for %q at store %d\n", priceItem, priceStoreID)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), money.FormatCents(*cents))
			return nil
		})
	},
}

var priceHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show all recorded prices for an item at a store, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.PriceHistory(sqldb, priceStoreID, priceItem)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "RECORDED\tPRICE")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.UpdatedAt, money.FormatCents(e.PriceCents))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
	priceCmd.AddCommand(priceSetCmd, priceLatestCmd, priceHistoryCmd)

	for _, c := range []*cobra.Command{priceSetCmd, priceLatestCmd, priceHistoryCmd} {
		c.Flags().Int64Var(&priceStoreID, "store", 0, "Store id")
		c.Flags().StringVar(&priceItem, "item", "", "Item name (matched exactly)")
		_ = c.MarkFlagRequired("store")
		_ = c.MarkFlagRequired("item")
	}
	priceSetCmd.Flags().StringVar(&priceAmount, "price", "", "Price, e.g. 'NT$45' or '45.50'")
	_ = priceSetCmd.MarkFlagRequired("price")
}
