package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/content"
	"github.com/five82/platter/internal/nav"
)

// renderStatic draws the home, education and food safety pages through
// glamour. Output is cached by the renderer.
func (m Model) renderStatic(p nav.Page) string {
	if m.renderer == nil {
		return ""
	}
	out, err := m.renderer.Render(content.Page(p), m.contentWidth(), m.theme.Markdown)
	if err != nil {
		return m.theme.Styles().DangerText.Render(err.Error())
	}
	return out
}

// handleHomeKey follows the numbered home page links.
func (m Model) handleHomeKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.renderer == nil || !key.Matches(msg, m.keys.Open) || len(msg.Runes) == 0 {
		return m, nil, false
	}
	actions := m.renderer.Content().Home.Actions()
	n := int(msg.Runes[0] - '0')
	if n < 1 || n > len(actions) {
		return m, nil, true
	}
	link := actions[n-1]
	page, _ := nav.Parse(link.Page)
	m.navLog.Debug("home link", zap.String("title", link.Title), zap.String("page", page.String()))
	return m, m.navigate(page), true
}
