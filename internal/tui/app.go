// Package tui provides the interactive Bubble Tea browser for stored expenses.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/exptrack/internal/cli"
	"github.com/theirongolddev/exptrack/internal/model"
	"github.com/theirongolddev/exptrack/internal/pipeline"
	"github.com/theirongolddev/exptrack/internal/tui/components"
	"github.com/theirongolddev/exptrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabExpenses = iota
	tabCategories
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6 // tab bar, filter line, blank lines, status bar
	shareBarWidth = 24
)

// App is the root Bubble Tea model. It is read-only: records are loaded once
// and filtered in memory.
type App struct {
	records []model.Expense
	visible []model.Expense
	cats    []model.CategoryTotal
	symbol  string

	table     table.Model
	filterIn  textinput.Model
	filtering bool
	category  string

	activeTab int
	width     int
	height    int
}

// NewApp creates the browser over records, formatting amounts with symbol.
func NewApp(records []model.Expense, symbol string) App {
	t := theme.Active

	ti := textinput.New()
	ti.Placeholder = "exact category (Enter to apply, Esc to clear)"
	ti.CharLimit = 128
	ti.Prompt = "/ "

	tbl := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-chromeHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(t.Accent).
		BorderForeground(t.Border).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(t.TextPrimary).
		Background(t.Selection).
		Bold(false)
	tbl.SetStyles(styles)

	a := App{
		records:  records,
		symbol:   symbol,
		table:    tbl,
		filterIn: ti,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	a.recompute()
	return a
}

func columns(width int) []table.Column {
	category := width - 8 - 14 - 21 - 10
	if category < 12 {
		category = 12
	}
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Amount", Width: 14},
		{Title: "Category", Width: category},
		{Title: "Date", Width: 21},
	}
}

func (a *App) recompute() {
	a.visible = pipeline.FilterByCategory(a.records, a.category)
	a.cats = pipeline.AggregateCategories(a.visible)

	rows := make([]table.Row, 0, len(a.visible))
	for _, e := range a.visible {
		rows = append(rows, table.Row{
			strconv.FormatInt(e.ID, 10),
			cli.FormatAmount(e.Amount, a.symbol),
			e.Category,
			e.Date,
		})
	}
	a.table.SetRows(rows)
	if a.table.Cursor() >= len(rows) {
		a.table.SetCursor(0)
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.table.SetColumns(columns(msg.Width))
		h := msg.Height - chromeHeight
		if h < 3 {
			h = 3
		}
		a.table.SetHeight(h)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.filtering {
			return a.updateFilter(msg)
		}

		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "/":
			a.filtering = true
			a.filterIn.SetValue(a.category)
			return a, a.filterIn.Focus()
		case "esc":
			if a.category != "" {
				a.category = ""
				a.recompute()
			}
			return a, nil
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
	}

	if a.activeTab == tabExpenses {
		var cmd tea.Cmd
		a.table, cmd = a.table.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.filtering = false
		a.filterIn.Blur()
		a.category = strings.TrimSpace(a.filterIn.Value())
		a.recompute()
		return a, nil
	case "esc":
		a.filtering = false
		a.filterIn.Blur()
		a.filterIn.Reset()
		a.category = ""
		a.recompute()
		return a, nil
	}

	var cmd tea.Cmd
	a.filterIn, cmd = a.filterIn.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	accent := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n")

	switch {
	case a.filtering:
		b.WriteString(" " + a.filterIn.View())
	case a.category != "":
		b.WriteString(muted.Render(" category: ") + accent.Render(a.category))
	default:
		b.WriteString(muted.Render(" all categories"))
	}
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabCategories:
		b.WriteString(a.renderCategories())
	default:
		if len(a.visible) == 0 {
			b.WriteString(muted.Render("  No expenses found."))
		} else {
			b.WriteString(a.table.View())
		}
	}
	b.WriteString("\n")

	summary := fmt.Sprintf("%d records  %s", len(a.visible),
		cli.FormatAmount(pipeline.Sum(a.visible), a.symbol))
	b.WriteString(components.RenderStatusBar(a.width, "[/]filter  [esc]clear  [tab]switch  [q]uit", summary))
	return b.String()
}

func (a App) renderCategories() string {
	t := theme.Active
	if len(a.cats) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("  No expenses found.")
	}

	nameWidth := 0
	for _, c := range a.cats {
		if w := lipgloss.Width(c.Category); w > nameWidth {
			nameWidth = w
		}
	}
	label := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(nameWidth + 2)
	amount := lipgloss.NewStyle().Foreground(t.Amount).Width(16).Align(lipgloss.Right)

	var b strings.Builder
	for _, c := range a.cats {
		b.WriteString("  ")
		b.WriteString(label.Render(c.Category))
		b.WriteString(amount.Render(cli.FormatAmount(c.Total, a.symbol)))
		b.WriteString("  ")
		b.WriteString(components.ShareBar(c.SharePercent/100, shareBarWidth))
		b.WriteString("\n")
	}
	return b.String()
}
