package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/content"
	"github.com/five82/platter/internal/forms"
	"github.com/five82/platter/internal/logging"
	"github.com/five82/platter/internal/nav"
	"github.com/five82/platter/internal/prefs"
	"github.com/five82/platter/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Catalog   *catalog.Catalog
	Renderer  *content.Renderer
	Logger    *logging.Logger
	StartPage nav.Page
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
	LogFile   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	catalog   *catalog.Catalog
	renderer  *content.Renderer
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration
	logFile   string

	// Loggers, one per concern
	navLog  *zap.Logger
	listLog *zap.Logger
	formLog *zap.Logger
	uiLog   *zap.Logger

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal
	notice   string

	nav       nav.Controller
	body      viewport.Model
	focusLine int

	// Activity state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Per-page state, reset when the page is left
	dining  diningState
	mapView mapState
	forms   map[forms.ID]formView
	admin   adminState
	reports reportsState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		catalog:   opts.Catalog,
		renderer:  opts.Renderer,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		logFile:   opts.LogFile,
		navLog:    logger.Module("nav"),
		listLog:   logger.Module("listing"),
		formLog:   logger.Module("forms"),
		uiLog:     logger.Module("ui"),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(opts.Prefs.Theme),
		nav:       nav.NewController(opts.StartPage),
		body:      viewport.New(0, 0),
		focusLine: -1,
		forms:     make(map[forms.ID]formView),
	}
	for _, p := range nav.Pages() {
		m.resetPage(p)
	}
	m.focusForm()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.body.Width = msg.Width
		m.body.Height = max(1, msg.Height-headerHeight-footerHeight)
		m.resizeForms()
		m.ready = true

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)

	case navigateMsg:
		cmd = m.navigate(msg.page)

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmd = tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()

	default:
		// Cursor blink and similar component messages.
		if m.modal != nil {
			m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		} else {
			cmd = m.updateFormInput(msg)
		}
	}

	m.syncBody()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		var (
			cmd    tea.Cmd
			closed bool
		)
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// Form pages own every printable key; only control chords reach the
	// global bindings.
	if m.onForm() && !isControlChord(msg) {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		return m, m.navigate(m.nav.Next().Current())

	case key.Matches(msg, m.keys.PrevPage):
		return m, m.navigate(m.nav.Prev().Current())

	case key.Matches(msg, m.keys.Jump):
		m.modal = newPaletteModal()
		return m, nil
	}

	// Page-specific keys
	var (
		handled bool
		cmd     tea.Cmd
	)
	switch m.nav.Current() {
	case nav.Home:
		m, cmd, handled = m.handleHomeKey(msg)
	case nav.Dining:
		m, handled = m.handleDiningKey(msg)
	case nav.Map:
		m, handled = m.handleMapKey(msg)
	case nav.Admin:
		m, cmd, handled = m.handleAdminKey(msg)
	case nav.Reports:
		m, handled = m.handleReportsKey(msg)
	}
	if handled {
		return m, cmd
	}

	if key.Matches(msg, m.keys.Escape) && m.nav.Current() != nav.Home {
		return m, m.navigate(nav.Home)
	}
	m.scroll(msg)
	return m, nil
}

// isControlChord reports whether msg is a ctrl or function key chord that
// stays global while a form has focus.
func isControlChord(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+n", "ctrl+p", "ctrl+o", "f1":
		return true
	}
	return false
}

func (m *Model) scroll(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.body.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.body.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.body.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.body.HalfPageDown()
	case key.Matches(msg, m.keys.Top):
		m.body.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.body.GotoBottom()
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.showHelp || m.modal != nil {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.body.ScrollUp(3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.body.ScrollDown(3)
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < headerHeight {
		if p, ok := m.tabAt(msg.X, msg.Y); ok {
			return m, m.navigate(p)
		}
		return m, nil
	}
	if m.nav.Current() == nav.Map {
		row := msg.Y - headerHeight + m.body.YOffset
		m.clickMap(msg.X, row)
	}
	return m, nil
}

// navigate switches pages. The page being left loses its view state.
func (m *Model) navigate(p nav.Page) tea.Cmd {
	from := m.nav.Current()
	m.nav = m.nav.Navigate(p)
	to := m.nav.Current()
	if from == to {
		return nil
	}
	m.resetPage(from)
	m.notice = ""
	m.body.GotoTop()
	m.navLog.Info("navigate", zap.String("from", from.String()), zap.String("to", to.String()))
	return m.focusForm()
}

// resetPage restores a page's initial view state.
func (m *Model) resetPage(p nav.Page) {
	switch p {
	case nav.Dining:
		m.dining = newDiningState()
	case nav.Map:
		m.mapView = newMapState()
	case nav.ReportIllness, nav.ReportSafety, nav.Suggestions:
		if def, ok := forms.Lookup(forms.ID(p)); ok {
			m.forms[def.ID] = newFormView(def, m.width)
		}
	case nav.Admin:
		m.admin = newAdminState()
	case nav.Reports:
		m.reports = newReportsState()
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.renderer != nil {
		m.renderer.Flush()
	}
	m.prefs.Theme = m.theme.Name
	m.savePrefs()
	m.notice = "Theme: " + m.theme.Name
	m.uiLog.Info("theme changed", zap.String("theme", m.theme.Name))
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.uiLog.Warn("save prefs failed", zap.Error(err))
	}
}

// syncBody re-renders the active page into the body viewport and keeps the
// focused line, if any, on screen.
func (m *Model) syncBody() {
	if !m.ready {
		return
	}
	body, focus := m.renderBody()
	m.body.SetContent(body)
	m.focusLine = focus
	if focus < 0 {
		return
	}
	if focus < m.body.YOffset {
		m.body.SetYOffset(focus)
	} else if focus >= m.body.YOffset+m.body.Height {
		m.body.SetYOffset(focus - m.body.Height + 1)
	}
}

// renderBody returns the active page and the body line holding keyboard
// focus, or -1.
func (m Model) renderBody() (string, int) {
	switch p := m.nav.Current(); p {
	case nav.Home, nav.Education, nav.Safety:
		return m.renderStatic(p), -1
	case nav.Dining:
		return m.renderDining(), -1
	case nav.Map:
		return m.renderMap(), -1
	case nav.ReportIllness, nav.ReportSafety, nav.Suggestions:
		return m.renderForm(forms.ID(p))
	case nav.Admin:
		return m.renderAdmin(), -1
	case nav.Reports:
		return m.renderReports(), -1
	default:
		return "", -1
	}
}

// contentWidth is the usable width inside the page padding.
func (m Model) contentWidth() int {
	return max(20, m.width-2)
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
