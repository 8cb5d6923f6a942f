package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/exptrack/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	themeOpts := make([]huh.Option[string], 0, len(config.Themes))
	for _, name := range config.Themes {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}
	levelOpts := make([]huh.Option[string], 0, len(config.LogLevels))
	for _, name := range config.LogLevels {
		levelOpts = append(levelOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to exptrack!").
				Description("A few settings, saved to "+config.Path()),
			huh.NewInput().
				Title("Database file").
				Description("Where expenses are stored.").
				Value(&cfg.General.DBPath).
				Validate(notBlank("database file")),
			huh.NewInput().
				Title("Default export file").
				Description("Used when the export prompt is left empty. A .pdf name writes a report.").
				Value(&cfg.General.DefaultExport).
				Validate(notBlank("export file")),
			huh.NewInput().
				Title("Currency symbol").
				Description("Display only.").
				Value(&cfg.General.CurrencySymbol),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use interactive forms in the menu?").
				Description("Arrow-key menus instead of typed numbers.").
				Value(&cfg.Shell.Forms),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(levelOpts...).
				Value(&cfg.Log.Level),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `exptrack setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func notBlank(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", what)
		}
		return nil
	}
}
