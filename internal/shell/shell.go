// Package shell implements the interactive expense menu.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/export"
	"github.com/theirongolddev/exptrack/internal/logging"
	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/pipeline"
	"github.com/theirongolddev/exptrack/internal/store"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// Store is the capability set the shell needs from the expense table.
type Store interface {
	Add(ctx context.Context, amount decimal.Decimal, category string) (model.Expense, error)
	Total(ctx context.Context) (decimal.Decimal, error)
	Query(ctx context.Context, f model.Filter) ([]model.Expense, error)
}

// Menu keys.
const (
	ActionAdd        = "1"
	ActionTotal      = "2"
	ActionByCategory = "3"
	ActionByDate     = "4"
	ActionExport     = "5"
	ActionExit       = "6"
)

// Menu is the fixed list of shell actions.
var Menu = []MenuItem{
	{ActionAdd, "Add Expense"},
	{ActionTotal, "View Total Expenses"},
	{ActionByCategory, "View Expenses by Category"},
	{ActionByDate, "View Expenses by Date Range"},
	{ActionExport, "Export Expenses"},
	{ActionExit, "Exit"},
}

const menuTitle = "Expense Tracker Menu:"

// Options tunes shell behavior.
type Options struct {
	CurrencySymbol string
	DefaultExport  string
	// AmountAttempts bounds how many times an unparsable amount is re-prompted.
	AmountAttempts int
	Logger         *log.Logger
}

// Shell runs the menu loop against an explicitly owned store.
type Shell struct {
	store  Store
	prompt Prompter
	out    io.Writer
	opts   Options
}

// New returns a shell that reads through p and prints results to out.
func New(st Store, p Prompter, out io.Writer, opts Options) *Shell {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}
	if opts.DefaultExport == "" {
		opts.DefaultExport = "expenses.csv"
	}
	if opts.AmountAttempts < 1 {
		opts.AmountAttempts = 3
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Shell{store: st, prompt: p, out: out, opts: opts}
}

// Run loops until the user exits, input ends, or ctx is canceled. Errors from
// a single action are reported and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.prompt.Choose(menuTitle, Menu)
		if err != nil {
			return s.endOfInput(err)
		}

		if choice == ActionExit {
			s.println("Exiting...")
			return nil
		}

		if err := s.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return s.endOfInput(err)
			}
			s.report(err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case ActionAdd:
		return s.add(ctx)
	case ActionTotal:
		return s.total(ctx)
	case ActionByCategory:
		return s.byCategory(ctx)
	case ActionByDate:
		return s.byDate(ctx)
	case ActionExport:
		return s.export(ctx)
	default:
		s.println(cli.Warn("Invalid choice. Please try again."))
		return nil
	}
}

func (s *Shell) add(ctx context.Context) error {
	amount, err := s.askAmount()
	if err != nil {
		return err
	}
	category, err := s.prompt.Ask(Question{Title: "Enter the category", Placeholder: "Food"})
	if err != nil {
		return err
	}

	e, err := s.store.Add(ctx, amount, category)
	if err != nil {
		return err
	}
	s.println(cli.Success(fmt.Sprintf("Expense added successfully! (id %d)", e.ID)))
	return nil
}

func (s *Shell) askAmount() (decimal.Decimal, error) {
	q := Question{
		Title:       "Enter the amount",
		Placeholder: "12.50",
		Validate: func(v string) error {
			_, err := model.ParseAmount(v)
			return err
		},
	}

	var lastErr error
	for attempt := 0; attempt < s.opts.AmountAttempts; attempt++ {
		raw, err := s.prompt.Ask(q)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := model.ParseAmount(raw)
		if err == nil {
			return amount, nil
		}
		lastErr = err
		s.println(cli.Warn(fmt.Sprintf("Invalid amount %q, please enter a number.", raw)))
	}
	return decimal.Zero, fmt.Errorf("giving up after %d attempts: %w", s.opts.AmountAttempts, lastErr)
}

func (s *Shell) total(ctx context.Context) error {
	total, err := s.store.Total(ctx)
	if err != nil {
		return err
	}
	s.println("Total expenses: " + cli.FormatAmount(total, s.opts.CurrencySymbol))
	return nil
}

func (s *Shell) byCategory(ctx context.Context) error {
	category, err := s.prompt.Ask(Question{Title: "Enter the category", Placeholder: "leave empty for all"})
	if err != nil {
		return err
	}

	records, err := s.store.Query(ctx, model.Filter{Category: category})
	if err != nil {
		return err
	}
	s.printRecords(records, "No expenses found for this category.")
	return nil
}

func (s *Shell) byDate(ctx context.Context) error {
	start, err := s.prompt.Ask(Question{
		Title:       "Enter start date (YYYY-MM-DD)",
		Placeholder: "leave empty for no lower bound",
		Validate:    validateBound,
	})
	if err != nil {
		return err
	}
	end, err := s.prompt.Ask(Question{
		Title:       "Enter end date (YYYY-MM-DD)",
		Placeholder: "leave empty for no upper bound",
		Validate:    validateBound,
	})
	if err != nil {
		return err
	}

	records, err := s.store.Query(ctx, model.Filter{Start: start, End: end})
	if err != nil {
		return err
	}
	s.printRecords(records, "No expenses found in this date range.")
	return nil
}

func validateBound(v string) error {
	_, err := model.Filter{Start: v}.Normalize()
	return err
}

func (s *Shell) export(ctx context.Context) error {
	path, err := s.prompt.Ask(Question{
		Title:       fmt.Sprintf("Enter filename to export (default %s)", s.opts.DefaultExport),
		Placeholder: s.opts.DefaultExport,
	})
	if err != nil {
		return err
	}
	if path == "" {
		path = s.opts.DefaultExport
	}

	records, err := s.store.Query(ctx, model.Filter{})
	if err != nil {
		return err
	}
	if err := export.ToFile(path, records, ""); err != nil {
		return err
	}
	s.println(cli.Success(fmt.Sprintf("Exported %d expenses to %s", len(records), path)))
	return nil
}

func (s *Shell) printRecords(records []model.Expense, emptyMsg string) {
	if len(records) == 0 {
		s.println(emptyMsg)
		return
	}
	s.println("Expenses:")
	fmt.Fprint(s.out, cli.RenderTable(cli.ExpenseTable(records, s.opts.CurrencySymbol)))
	s.println(cli.Muted(fmt.Sprintf("%d records, total %s",
		len(records), cli.FormatAmount(pipeline.Sum(records), s.opts.CurrencySymbol))))
}

// report prints an action failure with its kind and keeps the session alive.
func (s *Shell) report(err error) {
	var kind string
	switch {
	case errors.Is(err, model.ErrInput):
		kind = "Input error"
	case errors.Is(err, store.ErrStorage):
		kind = "Storage error"
	case errors.Is(err, export.ErrIO):
		kind = "Export error"
	default:
		kind = "Error"
	}
	s.opts.Logger.Warn("action failed", "kind", kind, "err", err)
	s.println(cli.Error(fmt.Sprintf("%s: %v", kind, err)))
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.println("Exiting...")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
