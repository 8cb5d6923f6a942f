package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/export"
	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	listFilter model.Filter
	flagCSV    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, optionally filtered",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	addFilterFlags(listCmd, &listFilter)
	listCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write CSV to stdout instead of a table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	records, err := st.Query(cmd.Context(), listFilter)
	if err != nil {
		return err
	}

	if flagCSV {
		return export.WriteCSV(os.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	symbol := rt.cfg.General.CurrencySymbol
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.ExpenseTable(records, symbol)))
	fmt.Printf("  %d records, total %s\n", len(records), cli.FormatAmount(pipeline.Sum(records), symbol))
	return nil
}
