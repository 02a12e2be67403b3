package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/budzet/internal/app"
	"github.com/MrJamesThe3rd/budzet/internal/config"
	"github.com/MrJamesThe3rd/budzet/internal/logging"
)

// cli holds what the subcommands share. The app is opened on first use so
// that commands such as token never touch the database.
type cli struct {
	cfg *config.Config
	app *app.App
}

func (c *cli) open() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	a, err := app.Open(c.cfg)
	if err != nil {
		return nil, err
	}

	c.app = a

	return a, nil
}

func (c *cli) close() {
	if c.app == nil {
		return
	}

	if err := c.app.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}

	c.app = nil
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:          "budget",
		Short:        "Household budget ledger",
		Long:         "Records income, expenses, savings and debt repayments and summarises them per month and week.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel(), cfg.Log.Format))
			c.cfg = cfg

			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(c),
		newAddCmd(c),
		newMonthCmd(c),
		newWeekCmd(c),
		newReportCmd(c),
		newImportCmd(c),
		newLockCmd(c, true),
		newLockCmd(c, false),
		newTokenCmd(c),
		newVersionCmd(c),
	)

	return root, c
}

// runCLI executes root and closes the database whether or not the command
// failed.
func runCLI(root *cobra.Command, c *cli) error {
	defer c.close()

	return root.Execute()
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.cfg.App.Name, c.cfg.App.Version)
		},
	}
}
