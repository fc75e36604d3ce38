package tui

import "github.com/charmbracelet/lipgloss"

// Theme names accepted in preferences.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Theme holds every style the reader renders with. It is resolved once at
// startup and handed to the Model.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Status   lipgloss.Style
	LineNum  lipgloss.Style
	Speaker  lipgloss.Style
	Text     lipgloss.Style
	Missing  lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Lemma    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Pane     lipgloss.Style
	Help     lipgloss.Style
}

func newTheme(name string, fg, muted, accent, speaker, errColor, border lipgloss.Color) Theme {
	return Theme{
		Name:     name,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Status:   lipgloss.NewStyle().Foreground(muted),
		LineNum:  lipgloss.NewStyle().Foreground(muted).Width(5).Align(lipgloss.Right),
		Speaker:  lipgloss.NewStyle().Bold(true).Foreground(speaker),
		Text:     lipgloss.NewStyle().Foreground(fg),
		Missing:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		Cursor:   lipgloss.NewStyle().Foreground(accent).Underline(true),
		Selected: lipgloss.NewStyle().Reverse(true).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(muted),
		Lemma:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(errColor),
		Pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Help:     lipgloss.NewStyle().Foreground(muted),
	}
}

// LightTheme is for light terminal backgrounds.
func LightTheme() Theme {
	return newTheme(ThemeLight, "#1f1f1f", "#7a7a7a", "#8a3b12", "#1d4e89", "#b00020", "#c8c8c8")
}

// DarkTheme is for dark terminal backgrounds.
func DarkTheme() Theme {
	return newTheme(ThemeDark, "#e8e6e3", "#8c8c8c", "#e0a458", "#79b8ff", "#ff6b6b", "#4a4a4a")
}

// ResolveTheme returns the named theme. "auto" and unknown names follow
// the terminal background.
func ResolveTheme(name string) Theme {
	switch name {
	case ThemeLight:
		return LightTheme()
	case ThemeDark:
		return DarkTheme()
	}
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}
