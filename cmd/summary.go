package cmd

import (
	"fmt"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryFilter model.Filter

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals with a per-category breakdown",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	addFilterFlags(summaryCmd, &summaryFilter)
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	records, err := st.Query(cmd.Context(), summaryFilter)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	symbol := rt.cfg.General.CurrencySymbol
	stats := pipeline.Aggregate(records)
	cats := pipeline.AggregateCategories(records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE SUMMARY"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Expenses", cli.FormatNumber(int64(stats.Count))},
			{"Categories", cli.FormatNumber(int64(stats.Categories))},
			{"Active Days", cli.FormatNumber(int64(stats.ActiveDays))},
			{"---"},
			{"Total", cli.FormatAmount(stats.Total, symbol)},
			{"Average", cli.FormatAmount(stats.Average, symbol)},
			{"Largest", cli.FormatAmount(stats.Largest, symbol)},
			{"---"},
			{"First", stats.FirstDate},
			{"Last", stats.LastDate},
		},
	}))
	fmt.Println()

	maxTotal := cats[0].Total.InexactFloat64()
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			c.Category,
			cli.FormatNumber(int64(c.Count)),
			cli.FormatAmount(c.Total, symbol),
			cli.FormatPercent(c.SharePercent),
			cli.RenderHorizontalBar(c.Total.InexactFloat64(), maxTotal, 20),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Count", "Total", "Share", ""},
		Rows:    rows,
		Aligns:  []cli.Align{cli.AlignLeft, cli.AlignRight, cli.AlignRight, cli.AlignRight, cli.AlignLeft},
	}))
	return nil
}
