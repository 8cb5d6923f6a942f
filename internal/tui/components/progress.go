package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/exptrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a horizontal bar for a 0-1 share followed by its percentage.
func ShareBar(pct float64, width int) string {
	t := theme.Active
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barColor lipgloss.Color
	switch {
	case pct >= 0.5:
		barColor = t.ShareHigh
	case pct >= 0.25:
		barColor = t.ShareMid
	default:
		barColor = t.ShareLow
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Bold(true)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + " " + pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}
