// Package theme defines color themes for the exptrack TUI browser.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the color roles the browser draws with.
type Theme struct {
	Name string

	Border    lipgloss.Color
	Selection lipgloss.Color // background of the highlighted row

	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color // active tab, headers, applied filter

	Amount lipgloss.Color // money columns

	// Category share bars, by how much of the total a category takes.
	ShareLow  lipgloss.Color // under 25%
	ShareMid  lipgloss.Color // 25% to 50%
	ShareHigh lipgloss.Color // half or more
}

// FlexokiDark is the default: warm paper tones on a near-black background.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Border:      lipgloss.Color("#403E3C"),
	Selection:   lipgloss.Color("#282726"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Amount:      lipgloss.Color("#879A39"),
	ShareLow:    lipgloss.Color("#879A39"),
	ShareMid:    lipgloss.Color("#D0A215"),
	ShareHigh:   lipgloss.Color("#D14D41"),
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:        "tokyo-night",
	Border:      lipgloss.Color("#565F89"),
	Selection:   lipgloss.Color("#343A52"),
	TextDim:     lipgloss.Color("#565F89"),
	TextMuted:   lipgloss.Color("#A9B1D6"),
	TextPrimary: lipgloss.Color("#C0CAF5"),
	Accent:      lipgloss.Color("#7AA2F7"),
	Amount:      lipgloss.Color("#9ECE6A"),
	ShareLow:    lipgloss.Color("#9ECE6A"),
	ShareMid:    lipgloss.Color("#E0AF68"),
	ShareHigh:   lipgloss.Color("#F7768E"),
}

// Terminal sticks to the 16 ANSI colors.
var Terminal = Theme{
	Name:        "terminal",
	Border:      lipgloss.Color("8"),
	Selection:   lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Amount:      lipgloss.Color("2"),
	ShareLow:    lipgloss.Color("2"),
	ShareMid:    lipgloss.Color("3"),
	ShareHigh:   lipgloss.Color("1"),
}

// All lists the selectable themes; names match config's accepted values.
var All = []Theme{FlexokiDark, TokyoNight, Terminal}

// Active is the theme the browser renders with.
var Active = FlexokiDark

// ByName returns the named theme, or FlexokiDark for an unknown name.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive switches the active theme.
func SetActive(name string) {
	Active = ByName(name)
}

