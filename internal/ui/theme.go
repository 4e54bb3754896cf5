package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/refresher/internal/refresh"
)

// Theme is a named palette.
type Theme struct {
	Name string

	Background string
	Surface    string
	SurfaceAlt string
	Border     string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// StateColors tints the header and footer per refresh state.
	StateColors map[refresh.State]string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Status     lipgloss.Style
	Row        lipgloss.Style
	RowAlt     lipgloss.Style
	RowMeta    lipgloss.Style
	Control    lipgloss.Style
	Progress   lipgloss.Style
	Track      lipgloss.Style
	ErrorText  lipgloss.Style
	AccentText lipgloss.Style
	MutedText  lipgloss.Style

	stateColors map[refresh.State]string
	muted       string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		RowAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		RowMeta: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		Control: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Align(lipgloss.Center),

		Progress: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		Track: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		stateColors: t.StateColors,
		muted:       t.Muted,
	}
}

// StateStyle returns the control style tinted for state.
func (s Styles) StateStyle(state refresh.State) lipgloss.Style {
	color := s.stateColors[state]
	if color == "" {
		color = s.muted
	}
	return s.Control.Foreground(lipgloss.Color(color))
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:       "Nightfox",
		Background: "#131a24",
		Surface:    "#192330",
		SurfaceAlt: "#212e3f",
		Border:     "#39506d",
		Text:       "#cdcecf",
		Muted:      "#738091",
		Faint:      "#71839b",
		Accent:     "#719cd6",
		Success:    "#81b29a",
		Warning:    "#dbc074",
		Danger:     "#c94f6d",
		StateColors: map[refresh.State]string{
			refresh.StateIdle:        "#738091",
			refresh.StatePulling:     "#dbc074",
			refresh.StateRefreshing:  "#63cdcf",
			refresh.StateWillRefresh: "#63cdcf",
			refresh.StateNoMoreData:  "#81b29a",
		},
	}
}

func kanagawaTheme() Theme {
	// https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:       "Kanagawa",
		Background: "#16161D",
		Surface:    "#1F1F28",
		SurfaceAlt: "#2A2A37",
		Border:     "#54546D",
		Text:       "#DCD7BA",
		Muted:      "#C8C093",
		Faint:      "#727169",
		Accent:     "#7E9CD8",
		Success:    "#98BB6C",
		Warning:    "#E6C384",
		Danger:     "#E46876",
		StateColors: map[refresh.State]string{
			refresh.StateIdle:        "#727169",
			refresh.StatePulling:     "#E6C384",
			refresh.StateRefreshing:  "#7FB4CA",
			refresh.StateWillRefresh: "#7FB4CA",
			refresh.StateNoMoreData:  "#98BB6C",
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS slate/sky palette
	return Theme{
		Name:       "Slate",
		Background: "#020617",
		Surface:    "#0f172a",
		SurfaceAlt: "#1e293b",
		Border:     "#334155",
		Text:       "#f1f5f9",
		Muted:      "#94a3b8",
		Faint:      "#64748b",
		Accent:     "#38bdf8",
		Success:    "#22c55e",
		Warning:    "#f59e0b",
		Danger:     "#ef4444",
		StateColors: map[refresh.State]string{
			refresh.StateIdle:        "#64748b",
			refresh.StatePulling:     "#f59e0b",
			refresh.StateRefreshing:  "#0ea5e9",
			refresh.StateWillRefresh: "#0ea5e9",
			refresh.StateNoMoreData:  "#22c55e",
		},
	}
}
