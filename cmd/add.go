package cmd

import (
	"fmt"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add AMOUNT CATEGORY",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	amount, err := model.ParseAmount(args[0])
	if err != nil {
		return err
	}

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	e, err := st.Add(cmd.Context(), amount, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("  Added #%d  %s  %s  %s\n",
		e.ID, cli.FormatAmount(e.Amount, rt.cfg.General.CurrencySymbol), e.Category, cli.Muted(e.Date))
	return nil
}
