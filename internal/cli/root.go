// Package cli wires configuration, logging and the database into cobra
// commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	"employee-tracker/internal/config"
	"employee-tracker/internal/db"
	"employee-tracker/internal/logs"
	"employee-tracker/internal/menu"
	"employee-tracker/internal/output"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/service"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	configFile string
	cfg        config.Config
	logger     *log.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "emptrack",
		Short: "Manage departments, roles and employees",
		Long: `emptrack is an interactive employee tracker.

Run without arguments to open the menu. The view, add and update subcommands
perform a single operation for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: $HOME/.config/emptrack/emptrack.yaml)")
	flags.String("driver", config.DriverPostgres, "database driver (postgres, sqlite)")
	flags.String("db-url", "", "database connection URL or sqlite file path (default: $DATABASE_URL)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "also write logs to this file, rotated by size")

	root.AddCommand(newViewCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newUpdateCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		output.Stdio().Error(err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: a.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	a.cfg = cfg
	a.logger = logs.New(logs.Config{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Writer: cmd.ErrOrStderr(),
	})
	return nil
}

// withService opens the connection, hands a service to fn and closes the
// connection afterwards.
func (a *app) withService(fn func(svc *service.TrackerService) error) error {
	database, err := db.Connect(a.cfg.Database, a.logger)
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer a.close(database)

	return fn(service.NewTrackerService(database))
}

func (a *app) close(database *gorm.DB) {
	if err := db.Close(database); err != nil {
		a.logger.Warn("closing database connection", "err", err)
	}
}

func (a *app) printer(cmd *cobra.Command) *output.Printer {
	return output.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func (a *app) runMenu(cmd *cobra.Command) error {
	return a.withService(func(svc *service.TrackerService) error {
		m := menu.New(
			svc,
			newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
			a.printer(cmd),
			a.logger,
		)
		return m.Run(cmd.Context())
	})
}

// newPrompter picks the full-screen prompts for a terminal and plain line
// prompts for pipes and files.
func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return prompt.NewTerminal(in, out)
	}
	return prompt.NewLine(in, out)
}
