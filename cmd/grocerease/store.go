package grocerease

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincent-oy/GrocerEase/internal/service"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the store registry",
}

var storeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s, err := service.AddStore(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added store %d (%s)\n", s.ID, s.Name)
			return nil
		})
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			stores, err := service.ListStores(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME")
			for _, s := range stores {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", s.ID, s.Name)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeAddCmd, storeListCmd)
}
