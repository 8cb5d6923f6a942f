// Package cmd implements the exptrack CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/config"
	"github.com/theirongolddev/exptrack/internal/logging"
	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/shell"
	"github.com/theirongolddev/exptrack/internal/store"
	"github.com/theirongolddev/exptrack/internal/tui/theme"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagVerbose bool
	flagQuiet   bool
	flagForms   bool
)

var rootCmd = &cobra.Command{
	Use:          "exptrack",
	Short:        "Personal expense tracker",
	Long:         "Record expenses into a local SQLite file, filter and total them, and export to CSV or PDF.\nRun without a subcommand for the interactive menu.",
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Expense database file (default from config, then expenses.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only log errors to stderr and skip the shell banner")
	rootCmd.Flags().BoolVar(&flagForms, "forms", false, "Use interactive forms instead of line prompts")
}

// appEnv is the resolved configuration shared by every command.
type appEnv struct {
	cfg    config.Config
	logger *log.Logger
}

// loadRuntime resolves settings with precedence flag > env > config file >
// default and builds the logger.
func loadRuntime(cmd *cobra.Command) (appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return appEnv{}, err
	}
	if cmd.Flags().Changed("db") {
		cfg.General.DBPath = flagDB
	}
	cfg.Log.Level = logLevel(cfg.Log.Level, flagVerbose, flagQuiet)
	if err := cfg.Validate(); err != nil {
		return appEnv{}, err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return appEnv{}, err
	}
	theme.SetActive(cfg.Appearance.Theme)

	return appEnv{cfg: cfg, logger: logger}, nil
}

// logLevel applies -v and -q to the configured level. -v wins when both are set.
func logLevel(configured string, verbose, quiet bool) string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	}
	return configured
}

func (rt appEnv) openStore() (*store.Store, error) {
	st, err := store.Open(rt.cfg.General.DBPath, store.WithLogger(rt.logger))
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", rt.cfg.General.DBPath, err)
	}
	return st, nil
}

// addFilterFlags binds the shared --category/--from/--to flags to f.
func addFilterFlags(cmd *cobra.Command, f *model.Filter) {
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "Only this category (exact, case-sensitive)")
	cmd.Flags().StringVar(&f.Start, "from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.End, "to", "", "End date, inclusive (YYYY-MM-DD)")
}

func runShell(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var prompter shell.Prompter = shell.NewLinePrompter(os.Stdin, os.Stdout)
	if flagForms || rt.cfg.Shell.Forms {
		prompter = shell.FormPrompter{}
	}

	if !flagQuiet {
		fmt.Println(cli.RenderTitle("EXPENSE TRACKER"))
		fmt.Println(cli.Muted("  " + rt.cfg.General.DBPath))
	}

	sh := shell.New(st, prompter, os.Stdout, shell.Options{
		CurrencySymbol: rt.cfg.General.CurrencySymbol,
		DefaultExport:  rt.cfg.General.DefaultExport,
		Logger:         rt.logger,
	})
	return sh.Run(cmd.Context())
}
