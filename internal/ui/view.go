package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/refresher/internal/refresh"
)

const progressWidth = 20

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	parts := []string{m.renderStatus(), m.renderList()}
	if !m.prefs.HideHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderStatus() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	auto := "off"
	if m.footer.AutomaticallyRefresh() {
		auto = "on"
	}
	fields := []string{styles.AccentText.Render("refresher")}
	if snap.LastError != nil {
		label := "feed error"
		if snap.IsOffline() {
			label = "feed offline"
		}
		fields = append(fields, styles.ErrorText.Render(label+": "+snap.LastError.Error()))
	}
	fields = append(fields,
		fmt.Sprintf("%d items", len(snap.Items)),
		fmt.Sprintf("page %d", snap.Page),
		fmt.Sprintf("reloads %d", snap.Refreshes),
		fmt.Sprintf("loads %d", snap.Loads),
		"auto "+auto,
		m.theme.Name,
	)
	return styles.Status.Render(fitLine(" "+strings.Join(fields, "  "), m.width))
}

// fitLine truncates or pads s to exactly width cells on one line.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = lipgloss.NewStyle().Inline(true).MaxWidth(width).Render(s)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// renderList draws the rows visible at the sprung offset. Content
// coordinates put the first item at row 0, the header just above it and
// the footer just below the last item.
func (m *Model) renderList() string {
	rows := int(m.surface.size.H)
	top := int(math.Round(m.viewY))
	hv := m.header.View()
	fv := m.footer.View()

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		lines = append(lines, m.renderRow(top+r, hv, fv))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(y int, hv, fv refresh.View) string {
	switch {
	case y >= 0 && y < len(m.snapshot.Items):
		return m.renderItem(y)
	case within(y, hv):
		return m.renderHeaderRow(y-int(math.Round(hv.Y)), hv)
	case within(y, fv):
		return m.renderFooterRow(y-int(math.Round(fv.Y)), fv)
	default:
		return fitLine("", m.width)
	}
}

func within(y int, v refresh.View) bool {
	if v.Hidden {
		return false
	}
	start := int(math.Round(v.Y))
	return y >= start && y < start+int(math.Round(v.Height))
}

func (m *Model) renderItem(i int) string {
	styles := m.theme.Styles()
	item := m.snapshot.Items[i]

	row := styles.Row
	if i%2 == 1 {
		row = styles.RowAlt
	}
	title := fmt.Sprintf(" %5d  %s", item.ID, item.Title)
	meta := item.Summary
	if !item.CreatedAt.IsZero() {
		meta = strings.TrimSpace(meta + "  " + item.CreatedAt.Format("15:04"))
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(meta) - 1
	if gap < 1 {
		return row.Render(fitLine(title, m.width))
	}
	return row.Render(title+strings.Repeat(" ", gap)) + styles.RowMeta.Inherit(row).Render(meta+" ")
}

// renderHeaderRow draws one row of the header: the title row sits in the
// middle and the pull progress bar below it.
func (m *Model) renderHeaderRow(row int, v refresh.View) string {
	styles := m.theme.Styles()
	titleRow := (int(math.Round(v.Height)) - 1) / 2
	style := m.controlStyle(styles, v)

	switch row {
	case titleRow:
		return style.Render(m.controlIcon(v) + " " + v.Title)
	case titleRow + 1:
		if v.State == refresh.StateRefreshing {
			break
		}
		filled := int(math.Min(v.Percent, 1) * progressWidth)
		bar := styles.Progress.Render(strings.Repeat("━", filled)) +
			styles.Track.Render(strings.Repeat("─", progressWidth-filled))
		return style.Render(bar)
	}
	return style.Render("")
}

// renderFooterRow draws one row of the footer; the title row is the click
// target for Footer.Tap.
func (m *Model) renderFooterRow(row int, v refresh.View) string {
	styles := m.theme.Styles()
	style := m.controlStyle(styles, v)
	if row != (int(math.Round(v.Height))-1)/2 {
		return style.Render("")
	}
	text := v.Title
	if v.State == refresh.StateRefreshing {
		text = m.spinner.View() + " " + text
	}
	return zone.Mark(footerZoneID, style.Render(text))
}

func (m *Model) controlStyle(styles Styles, v refresh.View) lipgloss.Style {
	style := styles.StateStyle(v.State)
	if v.Alpha < 0.5 {
		style = styles.MutedText.Align(lipgloss.Center)
	}
	return style.Width(m.width)
}

func (m *Model) controlIcon(v refresh.View) string {
	switch v.State {
	case refresh.StatePulling:
		return "↑"
	case refresh.StateRefreshing, refresh.StateWillRefresh:
		return m.spinner.View()
	default:
		return "↓"
	}
}
