package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/model"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a single expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct categories in use",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: id must be a positive integer, got %q", model.ErrInput, args[0])
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

	e, err := st.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Print(cli.RenderTable(cli.ExpenseTable([]model.Expense{e}, rt.cfg.General.CurrencySymbol)))
	return nil
}

func runCategories(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	st, err := rt.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	cats, err := st.Categories(cmd.Context())
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		fmt.Println(cli.Muted("No expenses recorded yet."))
		return nil
	}
	for _, c := range cats {
		if c == "" {
			c = "(empty)"
		}
		fmt.Println(c)
	}
	return nil
}
