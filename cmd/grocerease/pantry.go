package grocerease

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincent-oy/GrocerEase/internal/model"
	"github.com/vincent-oy/GrocerEase/internal/service"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Track pantry stock",
}

var (
	pantryName     string
	pantryCategory string
	pantryQty      int
	pantryUnit     string
	pantryExpiry   string
	pantryMin      int
)

func pantryInput() service.PantryItemInput {
	return service.PantryItemInput{
		Name:      pantryName,
		Category:  pantryCategory,
		OnHandQty: pantryQty,
		Unit:      pantryUnit,
		Expiry:    pantryExpiry,
		MinQty:    pantryMin,
	}
}

var pantryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a pantry item",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			item, err := service.AddPantryItem(sqldb, pantryInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added pantry item %d (%s)\n", item.ID, item.Name)
			return nil
		})
	},
}

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pantry items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListPantryItems(sqldb)
			if err != nil {
				return err
			}
			printPantryItems(cmd, items)
			return nil
		})
	},
}

var pantryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a pantry item's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			item, err := service.UpdatePantryItem(sqldb, id, pantryInput())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated pantry item %d (%s)\n", item.ID, item.Name)
			return nil
		})
	},
}

var pantryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a pantry item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			removed, err := service.DeletePantryItem(sqldb, id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No pantry item with id %d\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted pantry item %d\n", id)
			return nil
		})
	},
}

var pantryLowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items at or below their minimum stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.LowStock(sqldb)
			if err != nil {
				return err
			}
			printPantryItems(cmd, items)
			return nil
		})
	},
}

var expiringDays int

var pantryExpiringCmd = &cobra.Command{
	Use:   "expiring",
	Short: "List items expiring within a number of days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ExpiringSoon(sqldb, expiringDays)
			if err != nil {
				return err
			}
			printPantryItems(cmd, items)
			return nil
		})
	},
}

func printPantryItems(cmd *cobra.Command, items []model.PantryItem) {
	fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tQTY\tUNIT\tMIN\tEXPIRY")
	for _, p := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\t%d\t%s\n",
			p.ID, p.Name, orDash(p.Category), p.OnHandQty, orDash(p.Unit), p.MinQty, orDash(p.Expiry))
	}
}

func init() {
	rootCmd.AddCommand(pantryCmd)
	pantryCmd.AddCommand(pantryAddCmd, pantryListCmd, pantryUpdateCmd, pantryDeleteCmd, pantryLowCmd, pantryExpiringCmd)

	for _, c := range []*cobra.Command{pantryAddCmd, pantryUpdateCmd} {
		c.Flags().StringVar(&pantryName, "name", "", "Item name")
		c.Flags().StringVar(&pantryCategory, "category", "", "Category (optional)")
		c.Flags().IntVar(&pantryQty, "qty", 0, "On-hand quantity")
		c.Flags().StringVar(&pantryUnit, "unit", "", "Unit (optional)")
		c.Flags().StringVar(&pantryExpiry, "expiry", "", "Expiry date YYYY-MM-DD (optional)")
		c.Flags().IntVar(&pantryMin, "min", 0, "Low-stock threshold")
	}

	pantryExpiringCmd.Flags().IntVar(&expiringDays, "days", 7, "Days ahead (0 = today, negative = already expired)")
}
