package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	Arabic    lipgloss.Style
	Done      lipgloss.Style
	Next      lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Toast     lipgloss.Style
	Error     lipgloss.Style
	Input     lipgloss.Style
	BarStart  string
	BarEnd    string
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("36"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Arabic:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Next:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		Toast:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1).Width(30),
		BarStart:  "#1B7F5B",
		BarEnd:    "#D4AF37",
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Arabic:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Next:      lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Toast:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(30),
		BarStart:  "#BD93F9",
		BarEnd:    "#FF79C6",
	},
	"light": {
		Name:      "Light",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("29"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Arabic:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("247")).Strikethrough(true),
		Next:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Bold(true).Underline(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
		Toast:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("22")).Padding(0, 1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("22")).Padding(0, 1).Width(30),
		BarStart:  "#2E7D32",
		BarEnd:    "#A1887F",
	},
}

// ThemeOrder is the cycle order for the theme key.
var ThemeOrder = []string{"default", "dracula", "light"}

// ResolveTheme returns the named theme, or the default one.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
