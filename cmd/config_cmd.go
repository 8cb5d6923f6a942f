package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	cfg := rt.cfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:        %s%s\n", cfg.General.DBPath, envNote(config.EnvDBPath))
	fmt.Printf("    Default export:  %s\n", cfg.General.DefaultExport)
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Records:         %s\n", recordCount(cmd, rt))
	fmt.Println()

	fmt.Println("  [Shell]")
	fmt.Printf("    Forms: %v\n", cfg.Shell.Forms)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s%s\n", cfg.Appearance.Theme, envNote(config.EnvTheme))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s%s\n", cfg.Log.Level, envNote(config.EnvLogLevel))
	fmt.Println()

	fmt.Println("  Run `exptrack setup` to reconfigure.")
	return nil
}

func envNote(key string) string {
	if os.Getenv(key) != "" {
		return fmt.Sprintf("  (from %s)", key)
	}
	return ""
}

// recordCount reports how many expenses the configured database holds,
// without creating the file when it does not exist yet.
func recordCount(cmd *cobra.Command, rt appEnv) string {
	if _, err := os.Stat(rt.cfg.General.DBPath); err != nil {
		return "none (database not created yet)"
	}
	st, err := rt.openStore()
	if err != nil {
		return "unavailable"
	}
	defer st.Close()

	n, err := st.Count(cmd.Context())
	if err != nil {
		return "unavailable"
	}
	return cli.FormatNumber(int64(n))
}
