package tui

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by config and stored under the theme key.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type theme struct {
	name       string
	center     lipgloss.Style
	outer      lipgloss.Style
	input      lipgloss.Style
	invalid    lipgloss.Style
	word       lipgloss.Style
	pangram    lipgloss.Style
	muted      lipgloss.Style
	rank       lipgloss.Style
	barFilled  lipgloss.Style
	barEmpty   lipgloss.Style
	toast      lipgloss.Style
	toastError lipgloss.Style
	toastGold  lipgloss.Style
	modal      lipgloss.Style
}

func newTheme(name string, fg, muted, accent, errColor, cell lipgloss.Color) theme {
	base := lipgloss.NewStyle().Foreground(fg)
	return theme{
		name:      name,
		center:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")).Background(accent).Bold(true).Padding(0, 1),
		outer:     base.Background(cell).Padding(0, 1),
		input:     base.Bold(true),
		invalid:   lipgloss.NewStyle().Foreground(errColor),
		word:      base,
		pangram:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		muted:     lipgloss.NewStyle().Foreground(muted),
		rank:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		barFilled: lipgloss.NewStyle().Foreground(accent),
		barEmpty:  lipgloss.NewStyle().Foreground(muted),
		toast: base.
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(muted),
		toastError: lipgloss.NewStyle().
			Foreground(errColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(errColor),
		toastGold: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(accent),
		modal: base.
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(accent).
			Padding(1, 2),
	}
}

var themes = map[string]theme{
	ThemeDark:  newTheme(ThemeDark, "#F0F0F0", "#6E6E6E", "#F7DA21", "#FF4D4F", "#3A3A3A"),
	ThemeLight: newTheme(ThemeLight, "#1A1A1A", "#8C8C8C", "#C89A3A", "#C0392B", "#E6E6E6"),
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

func themeByName(name string) theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[ThemeDark]
}

func nextTheme(name string) string {
	if name == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
