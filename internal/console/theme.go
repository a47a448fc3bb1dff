package console

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for console messages.
type Theme struct {
	Name    string
	Primary lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Step string
	Pass string
	Fail string
	Warn string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    "default",
		Primary: r.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Success: r.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")), // red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Bold:    r.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Step: "🔍",
			Pass: "✅",
			Fail: "❌",
			Warn: "⚠",
		},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    "orca",
		Primary: r.NewStyle().Foreground(lipgloss.Color("75")),  // pale blue
		Success: r.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Warning: r.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Error:   r.NewStyle().Foreground(lipgloss.Color("167")), // muted red
		Muted:   r.NewStyle().Foreground(lipgloss.Color("245")), // lighter gray
		Bold:    r.NewStyle().Bold(true),
		Icons: ThemeIcons{
			Step: "›",
			Pass: "✓",
			Fail: "✗",
			Warn: "!",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors, ASCII icons).
func MonoTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:    "mono",
		Primary: r.NewStyle(),
		Success: r.NewStyle(),
		Warning: r.NewStyle(),
		Error:   r.NewStyle(),
		Muted:   r.NewStyle(),
		Bold:    r.NewStyle(),
		Icons: ThemeIcons{
			Step: "*",
			Pass: "+",
			Fail: "x",
			Warn: "!",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	switch name {
	case "orca":
		return OrcaTheme(r)
	case "mono":
		return MonoTheme(r)
	default:
		return DefaultTheme(r)
	}
}
