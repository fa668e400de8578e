package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/content"
	"github.com/five82/platter/internal/listing"
	"github.com/five82/platter/internal/nav"
	"github.com/five82/platter/internal/prefs"
)

// newTestModel builds a sized model on start with the embedded data and a
// throwaway prefs file.
func newTestModel(t *testing.T, start nav.Page) Model {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	c, err := content.Load()
	require.NoError(t, err)

	m := New(Options{
		Catalog:   cat,
		Renderer:  content.NewRenderer(c),
		StartPage: start,
		Prefs:     prefs.Prefs{Theme: "Nightfox"},
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out
}

// sendCmd delivers msg and then the message produced by its command.
func sendCmd(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

// press builds the key message for a bubbletea key name.
func press(name string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEscape,
		" ":         tea.KeySpace,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"ctrl+s":    tea.KeyCtrlS,
		"ctrl+r":    tea.KeyCtrlR,
		"ctrl+n":    tea.KeyCtrlN,
	}
	if t, ok := special[name]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, press(string(r)))
	}
	return m
}

func TestNew_StartsOnRequestedPage(t *testing.T) {
	m := newTestModel(t, nav.Dining)
	assert.Equal(t, nav.Dining, m.nav.Current())
	assert.Contains(t, m.View(), "Dining Guide")
}

func TestNew_UnknownStartPageIsHome(t *testing.T) {
	m := newTestModel(t, nav.Page("nowhere"))
	assert.Equal(t, nav.Home, m.nav.Current())
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	assert.Equal(t, "Loading...", m.View())
}

func TestNavigate_CyclesAndDiscardsPageState(t *testing.T) {
	m := newTestModel(t, nav.Dining)
	m = send(t, m, press("c"))
	require.Equal(t, "Traditional", m.dining.criteria.Category)

	m = send(t, m, press("tab"))
	assert.Equal(t, nav.Safety, m.nav.Current())

	m = send(t, m, press("shift+tab"))
	assert.Equal(t, nav.Dining, m.nav.Current())
	assert.Equal(t, listing.AllCriteria(), m.dining.criteria)
}

func TestEscapeReturnsHome(t *testing.T) {
	m := newTestModel(t, nav.Education)
	m = send(t, m, press("esc"))
	assert.Equal(t, nav.Home, m.nav.Current())
}

func TestHomeDigitOpensAction(t *testing.T) {
	m := newTestModel(t, nav.Home)
	actions := m.renderer.Content().Home.Actions()
	require.NotEmpty(t, actions)

	m = send(t, m, press("1"))
	assert.Equal(t, string(actions[0].Page), string(m.nav.Current()))
}

func TestPalette_JumpsToPage(t *testing.T) {
	m := newTestModel(t, nav.Home)
	m = send(t, m, press(":"))
	_, ok := m.modal.(paletteModal)
	require.True(t, ok, "expected palette, got %T", m.modal)

	m = typeText(t, m, "admin")
	m = sendCmd(t, m, press("enter"))
	assert.Nil(t, m.modal)
	assert.Equal(t, nav.Admin, m.nav.Current())
}

func TestPalette_EscapeCloses(t *testing.T) {
	m := newTestModel(t, nav.Dining)
	m = send(t, m, press(":"))
	m = send(t, m, press("esc"))
	assert.Nil(t, m.modal)
	assert.Equal(t, nav.Dining, m.nav.Current())
}

func TestCycleTheme_SavesPrefs(t *testing.T) {
	m := newTestModel(t, nav.Home)
	m = send(t, m, press("T"))
	assert.Equal(t, "Kanagawa", m.theme.Name)
	assert.Equal(t, "Theme: Kanagawa", m.notice)
	assert.Equal(t, "Kanagawa", prefs.Load(m.prefsPath).Theme)
}

func TestCycleTheme_DropsRenderedPages(t *testing.T) {
	m := newTestModel(t, nav.Home)
	_, err := m.renderer.Render(content.PageSafety, 50, content.StyleNoTTY)
	require.NoError(t, err)
	before := m.renderer.Cached()
	require.GreaterOrEqual(t, before, 2)

	m = send(t, m, press("T"))
	assert.Less(t, m.renderer.Cached(), before)
	assert.Contains(t, m.View(), "Food Information Hub")
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, nav.Home)
	m = send(t, m, press("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Forms")

	m = send(t, m, press("x"))
	assert.False(t, m.showHelp)
}

func TestHeaderClickNavigates(t *testing.T) {
	m := newTestModel(t, nav.Home)
	var target tabSpan
	for _, s := range m.tabLayout() {
		if s.page == nav.Map {
			target = s
		}
	}
	require.NotEmpty(t, target.label)

	m = send(t, m, tea.MouseMsg{X: target.start + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, nav.Map, m.nav.Current())

	// Clicks outside the tab row do nothing.
	m = send(t, m, tea.MouseMsg{X: target.start + 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, nav.Map, m.nav.Current())
}

func TestEveryPageRenders(t *testing.T) {
	m := newTestModel(t, nav.Home)
	for _, p := range nav.Pages() {
		m.navigate(p)
		m.syncBody()
		body, _ := m.renderBody()
		assert.NotEmpty(t, strings.TrimSpace(body), "page %s rendered nothing", p)
	}
}
