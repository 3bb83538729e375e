package grocerease

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincent-oy/GrocerEase/internal/money"
	"github.com/vincent-oy/GrocerEase/internal/service"
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Plan shopping trips against a budget",
}

var (
	tripDate    string
	tripStoreID int64
	tripBudget  string
	tripNote    string
)

var tripCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		budgetCents, err := money.ParseCents(tripBudget)
		if err != nil {
			return err
		}
		in := service.TripInput{
			TripDate:    tripDate,
			BudgetCents: budgetCents,
			Note:        tripNote,
		}
		if tripStoreID > 0 {
			in.StoreID = &tripStoreID
		}
		return withDB(func(sqldb *sql.DB) error {
			t, err := service.CreateTrip(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created trip %d for %s (budget %s)\n", t.ID, t.TripDate, money.FormatCents(t.BudgetCents))
			return nil
		})
	},
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trips, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			trips, err := service.ListTrips(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tSTORE\tBUDGET\tNOTE")
			for _, t := range trips {
				store := "-"
				if t.StoreID != nil {
					store = fmt.Sprintf("%d", *t.StoreID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n",
					t.ID, t.TripDate, store, money.FormatCents(t.BudgetCents), orDash(t.Note))
			}
			return nil
		})
	},
}

var tripShowCmd = &cobra.Command{
	Use:   "show <trip-id>",
	Short: "Show a trip's shopping list, subtotal and remaining budget",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg("trip id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			t, err := service.TripByID(sqldb, id)
			if err != nil {
				return err
			}
			items, err := service.ListTripItems(sqldb, id)
			if err != nil {
				return err
			}
			subtotal, err := service.TripSubtotalCents(sqldb, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Trip %d on %s\n", t.ID, t.TripDate)
			if t.Note != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Note: %s\n", t.Note)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tITEM\tUNIT\tQTY\tPRICE\tTOTAL")
			for _, ti := range items {
				price := "-"
				if ti.ExpectedPriceCents != nil {
					price = money.FormatCents(*ti.ExpectedPriceCents)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\t%s\n",
					ti.ID, ti.ItemName, orDash(ti.Unit), ti.PlannedQty, price, money.FormatCents(ti.LineTotalCents))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Subtotal: %s\n", money.FormatCents(subtotal))
			fmt.Fprintf(cmd.OutOrStdout(), "Budget: %s\n", money.FormatCents(t.BudgetCents))
			fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %s\n", money.FormatCents(service.RemainingBudgetCents(t, subtotal)))
			return nil
		})
	},
}

var (
	tripItemName  string
	tripItemUnit  string
	tripItemQty   int
	tripItemPrice string
)

var tripAddItemCmd = &cobra.Command{
	Use:   "add-item <trip-id>",
	Short: "Add a line to a trip's shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg("trip id", args[0])
		if err != nil {
			return err
		}
		in := service.TripItemInput{
			TripID:     id,
			ItemName:   tripItemName,
			Unit:       tripItemUnit,
			PlannedQty: tripItemQty,
		}
		if tripItemPrice != "" {
			cents, err := money.ParseCents(tripItemPrice)
			if err != nil {
				return err
			}
			in.ExpectedPriceCents = &cents
		}
		return withDB(func(sqldb *sql.DB) error {
			ti, err := service.AddTripItem(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %d (%s x%d, total %s)\n",
				ti.ID, ti.ItemName, ti.PlannedQty, money.FormatCents(ti.LineTotalCents))
			return nil
		})
	},
}

var tripSetQtyCmd = &cobra.Command{
	Use:   "set-qty <item-id> <qty>",
	Short: "Change a line's planned quantity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg("trip item id", args[0])
		if err != nil {
			return err
		}
		qty, err := parseQtyArg("quantity", args[1])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			updated, err := service.UpdateTripItemQty(sqldb, id, qty)
			if err != nil {
				return err
			}
			if !updated {
				fmt.Fprintf(cmd.OutOrStdout(), "No trip item with id %d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated trip item %d\n", id)
			return nil
		})
	},
}

var tripRemoveItemCmd = &cobra.Command{
	Use:   "remove-item <item-id>",
	Short: "Remove a line from a trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg("trip item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			removed, err := service.RemoveTripItem(sqldb, id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No trip item with id %d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed trip item %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tripCmd)
	tripCmd.AddCommand(tripCreateCmd, tripListCmd, tripShowCmd, tripAddItemCmd, tripSetQtyCmd, tripRemoveItemCmd)

	tripCreateCmd.Flags().StringVar(&tripDate, "date", "", "Trip date YYYY-MM-DD")
	tripCreateCmd.Flags().Int64Var(&tripStoreID, "store", 0, "Store id (optional)")
	tripCreateCmd.Flags().StringVar(&tripBudget, "budget", "", "Budget, e.g. 'NT$1,200'")
	tripCreateCmd.Flags().StringVar(&tripNote, "note", "", "Note (optional)")
	_ = tripCreateCmd.MarkFlagRequired("date")

	tripAddItemCmd.Flags().StringVar(&tripItemName, "item", "", "Item name")
	tripAddItemCmd.Flags().StringVar(&tripItemUnit, "unit", "", "Unit (optional)")
	tripAddItemCmd.Flags().IntVar(&tripItemQty, "qty", 1, "Planned quantity")
	tripAddItemCmd.Flags().StringVar(&tripItemPrice, "price", "", "Expected price (optional; empty = unknown)")
	_ = tripAddItemCmd.MarkFlagRequired("item")
}
