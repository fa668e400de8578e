package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpColumnWidth = 44

// renderHelp renders the help overlay from the full key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)

	groups := m.keys.FullHelp()
	blocks := make([]string, 0, len(groups))
	height := 0
	for i, group := range groups {
		var b strings.Builder
		if i < len(helpTitles) {
			b.WriteString(styles.AccentText.Bold(true).Render(helpTitles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		blocks = append(blocks, b.String())
		height += len(group) + 2
	}

	body := strings.Join(blocks, "\n")
	if height > m.height-8 && m.width >= 2*helpColumnWidth+8 {
		half := (len(blocks) + 1) / 2
		column := lipgloss.NewStyle().Width(helpColumnWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			column.Render(strings.Join(blocks[:half], "\n")),
			column.Render(strings.Join(blocks[half:], "\n")),
		)
	}

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts") + "\n" +
		styles.FaintText.Render(strings.Repeat("─", 30)) + "\n\n"
	return place(m.theme, m.width, m.height, title+strings.TrimRight(body, "\n"))
}
