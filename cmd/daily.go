package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var dailyFilter model.Filter

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Per-day spending table",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func init() {
	addFilterFlags(dailyCmd, &dailyFilter)
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	records, err := st.Query(cmd.Context(), dailyFilter)
	if err != nil {
		return err
	}

	days := pipeline.AggregateDays(records)
	if len(days) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	symbol := rt.cfg.General.CurrencySymbol
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY SPENDING  %s .. %s", days[0].Day, days[len(days)-1].Day)))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	values := make([]float64, 0, len(days))
	for _, d := range days {
		weekday := "???"
		if t, err := time.Parse(model.DayLayout, d.Day); err == nil {
			weekday = cli.FormatDayOfWeek(int(t.Weekday()))
		}
		rows = append(rows, []string{
			d.Day,
			weekday,
			cli.FormatNumber(int64(d.Count)),
			cli.FormatAmount(d.Total, symbol),
		})
		values = append(values, d.Total.InexactFloat64())
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Expenses", "Total"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s\n", cli.RenderSparkline(values))
	return nil
}
