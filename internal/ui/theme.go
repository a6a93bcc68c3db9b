package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the slide and chrome colors.
type Theme struct {
	Name string

	Background string
	Text       string
	Muted      string
	Faint      string
	Accent     string

	TitleFg    string
	SubtitleFg string
	ButtonFg   string
	ButtonBg   string

	DotActive   string
	DotInactive string
	ControlFg   string
}

var themes = []Theme{
	{
		Name:        "dark",
		Background:  "#1a1b26",
		Text:        "#c0caf5",
		Muted:       "#565f89",
		Faint:       "#3b4261",
		Accent:      "#7aa2f7",
		TitleFg:     "#ffffff",
		SubtitleFg:  "#a9b1d6",
		ButtonFg:    "#1a1b26",
		ButtonBg:    "#7aa2f7",
		DotActive:   "#7aa2f7",
		DotInactive: "#3b4261",
		ControlFg:   "#c0caf5",
	},
	{
		Name:        "light",
		Background:  "#fafafa",
		Text:        "#383a42",
		Muted:       "#a0a1a7",
		Faint:       "#d0d0d0",
		Accent:      "#4078f2",
		TitleFg:     "#101012",
		SubtitleFg:  "#696c77",
		ButtonFg:    "#fafafa",
		ButtonBg:    "#4078f2",
		DotActive:   "#4078f2",
		DotInactive: "#d0d0d0",
		ControlFg:   "#383a42",
	},
	{
		Name:        "neon",
		Background:  "#0b0b14",
		Text:        "#e0def4",
		Muted:       "#6e6a86",
		Faint:       "#26233a",
		Accent:      "#f6c177",
		TitleFg:     "#f6c177",
		SubtitleFg:  "#c4a7e7",
		ButtonFg:    "#0b0b14",
		ButtonBg:    "#eb6f92",
		DotActive:   "#eb6f92",
		DotInactive: "#26233a",
		ControlFg:   "#e0def4",
	},
}

// GetTheme returns the named theme, defaulting to the first palette.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Button   lipgloss.Style
	Caption  lipgloss.Style
	Muted    lipgloss.Style
	Control  lipgloss.Style
	PanelBox lipgloss.Style
	Cursor   lipgloss.Style
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.TitleFg)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleFg)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ButtonFg)).
			Background(lipgloss.Color(t.ButtonBg)).
			Padding(0, 2).
			Bold(true),
		Caption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Control: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ControlFg)),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}
