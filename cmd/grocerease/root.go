package grocerease

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vincent-oy/GrocerEase/internal/app"
)

var (
	dbPath  string
	verbose bool

	cfg    *app.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "grocerease",
	Short: "grocerease plans grocery runs from your terminal",
	Long:  "grocerease is a local-first pantry tracker and shopping-trip planner with a per-store price book and budget tracking.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := app.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger = app.NewLogger(cmd.ErrOrStderr(), level)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
