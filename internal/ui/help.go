package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var helpSectionTitles = []string{"Scrolling", "Refresh", "General"}

// renderHelp renders the key binding overlay. Any key closes it.
func (m *Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(10)

	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(helpSectionTitles) {
			b.WriteString(styles.AccentText.Render(helpSectionTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			b.WriteString(renderBinding(keyStyle, styles.Row, binding))
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func renderBinding(keyStyle, descStyle lipgloss.Style, b key.Binding) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
