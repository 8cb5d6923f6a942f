package cmd

import (
	"fmt"

	"github.com/theirongolddev/exptrack/internal/cli"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Print the sum of all expenses",
	Args:  cobra.NoArgs,
	RunE:  runTotal,
}

func init() {
	rootCmd.AddCommand(totalCmd)
}

func runTotal(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	total, err := st.Total(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(cli.FormatAmount(total, rt.cfg.General.CurrencySymbol))
	return nil
}
