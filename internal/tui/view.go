package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/theakshaypant/hackhub/internal/core"
)

const (
	loginTitle = "Log in"
	joinTitle  = "Join event"
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showLogin || m.showJoin {
		return placeOverlay(m.styles, m.modalPanel(), m.width, m.height)
	}
	if m.mobile && m.drawerOpen {
		return m.renderDrawer()
	}

	var content string
	if m.showHelp {
		content = m.renderHelpPanel()
	} else {
		content = m.content.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.renderToolbar(), content, m.renderHelp())

	if m.mobile {
		return lipgloss.JoinVertical(lipgloss.Left,
			renderHeaderBar(m.styles, m.theme.Mode(), m.width),
			m.styles.App.Render(main),
		)
	}

	sidebar := renderSidebar(m.styles, m.active, m.year, sidebarWidth, m.height-2)
	return m.styles.App.Render(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main))
}

// renderToolbar is the title of the active view with the theme toggle and
// the generic join action on the right.
func (m Model) renderToolbar() string {
	title := m.styles.Dot.Render("●") + " " + m.styles.Title.Render(m.active.Title())

	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.GhostButton.Render(m.theme.Mode().ToggleText()), " ",
		m.styles.PrimaryButton.Render("➕ Join"))

	gap := m.mainWidth - lipgloss.Width(title) - lipgloss.Width(actions)
	if gap < 1 {
		gap = 1
	}
	return m.styles.Toolbar.Render(title + strings.Repeat(" ", gap) + actions)
}

// renderDrawer is the compact-mode sidebar over a backdrop in the overlay colour.
func (m Model) renderDrawer() string {
	w := m.drawerWidth()
	drawer := renderSidebar(m.styles, m.active, m.year, w, m.height)

	rest := m.width - w
	if rest <= 0 {
		return drawer
	}
	backdrop := lipgloss.NewStyle().
		Background(m.styles.Tokens.Overlay).
		Width(rest).
		Height(m.height).
		Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, drawer, backdrop)
}

// modalPanel renders whichever dialog is open.
func (m Model) modalPanel() string {
	width := modalBodyWidth(m.width)
	if m.showLogin {
		return renderModalPanel(m.styles, loginTitle, m.login.view(m.styles, width), m.width)
	}
	return renderModalPanel(m.styles, joinTitle, m.join.view(m.styles, width), m.width)
}

func (m Model) helpBindings() []key.Binding {
	bindings := []key.Binding{m.keys.Home, m.keys.Calendar, m.keys.Upcoming}
	if m.active == core.ViewUpcoming {
		bindings = append(bindings, m.keys.Up, m.keys.Down, m.keys.Select)
	}
	bindings = append(bindings, m.keys.Login, m.keys.Join, m.keys.Theme)
	if m.mobile {
		bindings = append(bindings, m.keys.Menu)
	}
	return append(bindings, m.keys.Help, m.keys.Quit)
}

func (m Model) renderHelp() string {
	var keys []string
	for _, b := range m.helpBindings() {
		h := b.Help()
		keys = append(keys, m.styles.HelpKey.Render(h.Key)+" "+h.Desc)
	}

	fullLine := strings.Join(keys, "  •  ")

	// Check if the full help bar fits in the available width
	if lipgloss.Width(fullLine) > m.mainWidth {
		// Doesn't fit, show minimal hint
		return m.styles.Help.Render(m.styles.HelpKey.Render("?") + " help")
	}
	return m.styles.Help.Render(fullLine)
}

func (m Model) renderHelpPanel() string {
	header := m.styles.Heading.Render("Keyboard Shortcuts")

	rows := []struct {
		keys string
		desc string
	}{
		{"1 / 2 / 3", "Home, Calendar, Upcoming"},
		{"tab", "Next view"},
		{"shift+tab", "Previous view"},
		{"↑ / ↓", "Highlight an upcoming event"},
		{"enter", "Join the highlighted event"},
		{"ctrl+u/d", "Scroll content"},
		{"l", "Log in"},
		{"j", "Join an event"},
		{"t", m.theme.Mode().ToggleLabel()},
		{"m", menuAriaLabel + " (compact layout)"},
		{"esc", "Close dialog or menu"},
		{"q / ctrl+c", "Quit"},
	}

	lines := []string{""}
	for _, r := range rows {
		lines = append(lines, m.styles.HelpKey.Width(14).Render("  "+r.keys)+" "+r.desc)
	}
	lines = append(lines, "", m.styles.Muted.Italic(true).Render("  Press any key to close"))

	return m.styles.Card.Width(cardInner(m.mainWidth)).Height(max(m.contentHeight-2, 1)).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")),
	)
}
