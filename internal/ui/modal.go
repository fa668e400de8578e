package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/platter/internal/forms"
	"github.com/five82/platter/internal/nav"
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal, a command, and whether the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// navigateMsg asks the root model to switch pages.
type navigateMsg struct {
	page nav.Page
}

func navigateCmd(p nav.Page) tea.Cmd {
	return func() tea.Msg { return navigateMsg{page: p} }
}

func place(theme Theme, width, height int, content string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Render(content)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// ackModal shows a submission acknowledgment until any key is pressed.
type ackModal struct {
	ack forms.Acknowledgment
}

func (a ackModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return a, nil, true
	}
	return a, nil, false
}

func (a ackModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.SuccessText.Render("Submitted"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(min(60, max(20, width-10))).Render(styles.Text.Render(a.ack.Message)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", styles.MutedText.Render("Reference"), styles.AccentText.Render(a.ack.Reference))
	fmt.Fprintf(&b, "%s %s\n\n", styles.MutedText.Render("Received "), styles.Text.Render(a.ack.SubmittedAt.Format("2006-01-02 15:04")))
	b.WriteString(styles.FaintText.Render("Press any key to continue"))
	return place(theme, width, height, b.String())
}

// paletteModal is the fuzzy "jump to page" prompt.
type paletteModal struct {
	input   textinput.Model
	matches []nav.Page
	cursor  int
}

func newPaletteModal() paletteModal {
	in := textinput.New()
	in.Placeholder = "page name"
	in.Prompt = ": "
	in.CharLimit = 40
	in.Focus()
	return paletteModal{input: in, matches: nav.Search("")}
}

func (p paletteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Escape):
			return p, nil, true
		case msg.Type == tea.KeyEnter:
			if len(p.matches) == 0 {
				return p, nil, false
			}
			return p, navigateCmd(p.matches[p.cursor]), true
		case msg.Type == tea.KeyUp || msg.Type == tea.KeyShiftTab:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil, false
		case msg.Type == tea.KeyDown || msg.Type == tea.KeyTab:
			if p.cursor < len(p.matches)-1 {
				p.cursor++
			}
			return p, nil, false
		}
	}

	var cmd tea.Cmd
	prev := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != prev {
		p.matches = nav.Search(p.input.Value())
		p.cursor = 0
	}
	return p, cmd, false
}

func (p paletteModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Title.Render("Jump to page"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	if len(p.matches) == 0 {
		b.WriteString(styles.FaintText.Render("No matching page"))
	}
	for i, page := range p.matches {
		line := fmt.Sprintf("%-24s %s", page.Title(), page)
		if i == p.cursor {
			b.WriteString(styles.Selected.Render("> " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return place(theme, width, height, strings.TrimRight(b.String(), "\n"))
}
