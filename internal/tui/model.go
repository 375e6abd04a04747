package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/logger"
	"github.com/theakshaypant/hackhub/internal/theme"
)

const (
	// DefaultBreakpoint is the width in columns below which the sidebar
	// collapses into the drawer.
	DefaultBreakpoint = 90

	sidebarWidth = 30
	minHeight    = 10
)

// Model is the Bubble Tea model for the shell. It owns every piece of
// mutable UI state; the render functions only read it.
type Model struct {
	catalog  core.Catalog
	events   []core.Event
	theme    *theme.Provider
	log      *logger.Logger
	styles   Styles
	keys     KeyMap
	formKeys FormKeyMap
	year     int

	active      core.ViewID
	highlighted int   // card selected on the upcoming view
	cardTops    []int // first content line of each upcoming card

	showLogin bool
	showJoin  bool
	joinEvent *core.Event // nil means the user picks the event
	login     loginForm
	join      joinForm

	drawerOpen bool
	mobile     bool // True when the terminal is narrower than the breakpoint
	showHelp   bool // Whether the help overlay is visible

	breakpoint    int
	width         int
	height        int
	mainWidth     int
	contentHeight int
	content       viewport.Model
	viewportReady bool
}

// NewModel creates the shell on the home view. A breakpoint <= 0 uses
// DefaultBreakpoint.
func NewModel(catalog core.Catalog, provider *theme.Provider, log *logger.Logger, breakpoint int) Model {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	m := Model{
		catalog:    catalog,
		events:     catalog.Events(),
		theme:      provider,
		log:        log.WithFields(map[string]any{"component": "tui"}),
		keys:       DefaultKeyMap,
		formKeys:   DefaultFormKeyMap,
		year:       time.Now().Year(),
		active:     core.ViewHome,
		breakpoint: breakpoint,
	}
	m.applyTheme()
	m.keys.Menu.SetHelp("m", menuAriaLabel)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(brandName)
}

// calculateLayout derives the responsive dimensions from the window size.
func (m *Model) calculateLayout() {
	height := m.height
	if height < minHeight {
		height = minHeight
	}

	m.mobile = m.width < m.breakpoint

	// App padding: 4 columns. Desktop also loses the sidebar and a gap.
	if m.mobile {
		m.mainWidth = m.width - 4
	} else {
		m.mainWidth = m.width - 4 - sidebarWidth - 1
	}
	if m.mainWidth < 20 {
		m.mainWidth = 20
	}

	// Padding: 2 lines, toolbar: 2, help: 2, header bar: 2 in compact mode
	m.contentHeight = height - 6
	if m.mobile {
		m.contentHeight -= 2
	}
	if m.contentHeight < 3 {
		m.contentHeight = 3
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		wasMobile := m.mobile
		m.calculateLayout()
		if m.viewportReady && wasMobile != m.mobile {
			// crossing the breakpoint either way dismisses the drawer
			m.drawerOpen = false
			m.log.WithFields(map[string]any{"width": m.width, "compact": m.mobile}).Debug("breakpoint crossed")
		}

		if !m.viewportReady {
			m.content = viewport.New(m.mainWidth, m.contentHeight)
			m.content.Style = lipgloss.NewStyle()
			m.viewportReady = true
		} else {
			m.content.Width = m.mainWidth
			m.content.Height = m.contentHeight
		}
		m.updateContent()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.showLogin || m.showJoin {
			return m.handleFormKey(msg)
		}

		// When help overlay is shown, any key dismisses it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)
	}

	// cursor blink and similar input messages
	switch {
	case m.showLogin:
		return m, m.login.update(msg)
	case m.showJoin:
		return m, m.join.update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		// the help panel lives in the main area, which the drawer covers
		m.drawerOpen = false
		m.showHelp = true

	case key.Matches(msg, m.keys.Home):
		m.selectView(core.ViewHome)

	case key.Matches(msg, m.keys.Calendar):
		m.selectView(core.ViewCalendar)

	case key.Matches(msg, m.keys.Upcoming):
		m.selectView(core.ViewUpcoming)

	case key.Matches(msg, m.keys.NextView):
		m.selectView(m.active.Offset(1))

	case key.Matches(msg, m.keys.PrevView):
		m.selectView(m.active.Offset(-1))

	case key.Matches(msg, m.keys.Login):
		return m, m.openLogin()

	case key.Matches(msg, m.keys.Join):
		return m, m.openJoin(nil)

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()

	case key.Matches(msg, m.keys.Menu):
		m.toggleDrawer()

	case key.Matches(msg, m.keys.Close):
		m.drawerOpen = false

	case key.Matches(msg, m.keys.Up):
		if m.active == core.ViewUpcoming && m.highlighted > 0 {
			m.highlighted--
			m.updateContent()
			m.scrollToHighlight()
		}

	case key.Matches(msg, m.keys.Down):
		if m.active == core.ViewUpcoming && m.highlighted < len(m.events)-1 {
			m.highlighted++
			m.updateContent()
			m.scrollToHighlight()
		}

	case key.Matches(msg, m.keys.Select):
		if m.active == core.ViewUpcoming && m.highlighted < len(m.events) {
			ev := m.events[m.highlighted]
			return m, m.openJoin(&ev)
		}

	case key.Matches(msg, m.keys.ScrollUp):
		m.content.ViewUp()

	case key.Matches(msg, m.keys.ScrollDown):
		m.content.ViewDown()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.formKeys.Cancel):
		m.closeModal()
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.formKeys.Next):
		return m, m.moveFocus(1)

	case key.Matches(msg, m.formKeys.Prev):
		return m, m.moveFocus(-1)

	case m.showJoin && m.join.pickerFocused() && key.Matches(msg, m.formKeys.Left):
		m.join.cycle(-1)
		return m, nil

	case m.showJoin && m.join.pickerFocused() && key.Matches(msg, m.formKeys.Right):
		m.join.cycle(1)
		return m, nil
	}

	if m.showLogin {
		return m, m.login.update(msg)
	}
	return m, m.join.update(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	overlay := m.showLogin || m.showJoin || (m.mobile && m.drawerOpen)
	if msg.Button != tea.MouseButtonLeft {
		if overlay {
			return m, nil
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		return m, cmd
	}

	switch {
	case m.showLogin || m.showJoin:
		if !m.modalRect().contains(msg.X, msg.Y) {
			m.closeModal()
			return m, nil
		}
	case m.mobile && m.drawerOpen:
		if msg.X >= m.drawerWidth() {
			m.drawerOpen = false
			return m, nil
		}
	case m.showHelp:
		// like a key press, a click only dismisses the help panel
		m.showHelp = false
		return m, nil
	}

	if action, ok := m.hotspotAt(msg.X, msg.Y); ok {
		return m, action(&m)
	}
	if overlay {
		return m, nil
	}

	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

// selectView switches the main area. Like every nav action it also
// dismisses the drawer.
func (m *Model) selectView(id core.ViewID) {
	if !id.Valid() {
		return
	}
	m.drawerOpen = false
	if m.active == id {
		return
	}
	m.active = id
	m.highlighted = 0
	m.log.WithFields(map[string]any{"view": string(id)}).Debug("view selected")
	m.updateContent()
	m.content.GotoTop()
}

func (m *Model) openLogin() tea.Cmd {
	m.drawerOpen = false
	m.showLogin = true
	m.login = newLoginForm(m.styles)
	return m.login.setFocus(0)
}

// openJoin shows the join dialog for ev, or with the event picker when ev is
// nil. An event that is not in the catalog is treated like nil.
func (m *Model) openJoin(ev *core.Event) tea.Cmd {
	m.drawerOpen = false
	m.joinEvent = nil
	if ev != nil {
		if found, ok := m.catalog.Lookup(ev.ID); ok {
			m.joinEvent = &found
		} else {
			m.log.WithFields(map[string]any{"event": ev.ID}).Warn("join requested for unknown event")
		}
	}
	m.showJoin = true
	m.join = newJoinForm(m.styles, m.events, m.joinEvent)
	return m.join.setFocus(0)
}

// closeLogin and closeJoin are no-ops on a closed dialog.
func (m *Model) closeLogin() {
	m.showLogin = false
}

func (m *Model) closeJoin() {
	m.showJoin = false
	m.joinEvent = nil
}

func (m *Model) closeModal() {
	if m.showLogin {
		m.closeLogin()
	}
	if m.showJoin {
		m.closeJoin()
	}
}

// submit validates the open dialog and closes it when the input is acceptable.
// Nothing is sent or stored.
func (m *Model) submit() tea.Cmd {
	switch {
	case m.showLogin:
		ok, cmd := m.login.validate()
		if !ok {
			return cmd
		}
		m.log.Info("login submitted")
		m.closeLogin()

	case m.showJoin:
		ok, cmd := m.join.validate()
		if !ok {
			return cmd
		}
		if ev, picked := m.join.selected(); picked {
			m.log.WithFields(map[string]any{"event": ev.ID}).Info("join submitted")
		}
		m.closeJoin()
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if m.showLogin {
		return m.login.setFocus(m.login.focus + delta)
	}
	return m.join.setFocus(m.join.focus + delta)
}

// toggleDrawer only has an effect in compact mode.
func (m *Model) toggleDrawer() {
	if !m.mobile {
		return
	}
	m.drawerOpen = !m.drawerOpen
}

func (m *Model) toggleTheme() {
	m.theme.Toggle()
	m.applyTheme()
	m.updateContent()
}

// applyTheme rebuilds the styles after a mode change.
func (m *Model) applyTheme() {
	mode := m.theme.Mode()
	m.styles = NewStyles(m.theme.Tokens())
	m.keys.Theme.SetHelp("t", mode.ToggleLabel())
	m.login.restyle(m.styles)
	m.join.restyle(m.styles)
}

// updateContent renders the active view into the scrollable content area.
func (m *Model) updateContent() {
	if !m.viewportReady {
		return
	}

	var body string
	switch m.active {
	case core.ViewCalendar:
		body = renderCalendar(m.styles, m.mainWidth)
		m.cardTops = nil
	case core.ViewUpcoming:
		body, m.cardTops = renderUpcoming(m.styles, m.events, m.highlighted, m.mainWidth)
	default:
		body = renderHome(m.styles, m.mainWidth)
		m.cardTops = nil
	}
	m.content.SetContent(body)
}

// scrollToHighlight keeps the highlighted upcoming card visible.
func (m *Model) scrollToHighlight() {
	if !m.viewportReady || m.highlighted >= len(m.cardTops) {
		return
	}

	top := m.cardTops[m.highlighted]
	bottom := m.content.TotalLineCount()
	if m.highlighted+1 < len(m.cardTops) {
		bottom = m.cardTops[m.highlighted+1]
	}

	viewTop := m.content.YOffset
	viewBottom := viewTop + m.content.Height

	if top < viewTop {
		m.content.SetYOffset(top)
	} else if bottom > viewBottom {
		m.content.SetYOffset(min(top, bottom-m.content.Height))
	}
}

func (m Model) drawerWidth() int {
	return min(sidebarWidth, m.width)
}

// modalRect is the screen region of the open dialog panel.
func (m Model) modalRect() rect {
	return centeredRect(m.modalPanel(), m.width, m.height)
}
