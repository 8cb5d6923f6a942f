package tui

import (
	"strings"
	"testing"

	"github.com/theirongolddev/exptrack/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

func testRecords() []model.Expense {
	return []model.Expense{
		{ID: 1, Amount: decimal.RequireFromString("10"), Category: "Food", Date: "2024-01-10 09:00:00"},
		{ID: 2, Amount: decimal.RequireFromString("2.5"), Category: "Transport", Date: "2024-01-11 09:00:00"},
		{ID: 3, Amount: decimal.RequireFromString("5"), Category: "Food", Date: "2024-01-12 09:00:00"},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	var m tea.Model = a
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app
}

func TestFilterByCategory(t *testing.T) {
	a := NewApp(testRecords(), "$")
	if len(a.visible) != 3 {
		t.Fatalf("visible = %d, want 3", len(a.visible))
	}

	a = send(t, a, runes("/"))
	if !a.filtering {
		t.Fatal("'/' should start filtering")
	}
	for _, r := range "Food" {
		a = send(t, a, runes(string(r)))
	}
	a = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.filtering {
		t.Fatal("enter should end filtering")
	}
	if a.category != "Food" {
		t.Fatalf("category = %q, want Food", a.category)
	}
	if len(a.visible) != 2 {
		t.Fatalf("visible = %d, want 2", len(a.visible))
	}
	if !strings.Contains(a.View(), "2 records  $15.00") {
		t.Fatalf("status bar missing filtered summary:\n%s", a.View())
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.category != "" || len(a.visible) != 3 {
		t.Fatalf("esc should clear filter, got category=%q visible=%d", a.category, len(a.visible))
	}
}

func TestFilterIsCaseSensitive(t *testing.T) {
	a := NewApp(testRecords(), "$")
	a = send(t, a, runes("/"), runes("f"), runes("o"), runes("o"), runes("d"), tea.KeyMsg{Type: tea.KeyEnter})
	if len(a.visible) != 0 {
		t.Fatalf("visible = %d, want 0 for lowercase category", len(a.visible))
	}
	if !strings.Contains(a.View(), "No expenses found.") {
		t.Fatal("empty result should say no expenses found")
	}
}

func TestTabSwitching(t *testing.T) {
	a := NewApp(testRecords(), "$")
	a = send(t, a, runes("c"))
	if a.activeTab != tabCategories {
		t.Fatalf("activeTab = %d, want categories", a.activeTab)
	}
	view := a.View()
	if !strings.Contains(view, "Food") || !strings.Contains(view, "$15.00") {
		t.Fatalf("categories view missing totals:\n%s", view)
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.activeTab != tabExpenses {
		t.Fatalf("activeTab = %d, want expenses after tab", a.activeTab)
	}
}

func TestQuit(t *testing.T) {
	a := NewApp(testRecords(), "$")
	_, cmd := a.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestQuitKeyIsTextWhileFiltering(t *testing.T) {
	a := NewApp(testRecords(), "$")
	a = send(t, a, runes("/"), runes("q"))
	if !a.filtering || a.filterIn.Value() != "q" {
		t.Fatalf("q while filtering should be typed, got filtering=%v value=%q", a.filtering, a.filterIn.Value())
	}
}

func TestWindowResize(t *testing.T) {
	a := NewApp(testRecords(), "$")
	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	if a.width != 120 || a.height != 40 {
		t.Fatalf("size = %dx%d, want 120x40", a.width, a.height)
	}
	// the table's height excludes its header row
	want := 40 - chromeHeight - 1
	if a.table.Height() != want {
		t.Fatalf("table height = %d, want %d", a.table.Height(), want)
	}
}
