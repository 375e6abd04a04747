package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/theme"
)

const (
	brandName     = "Hackathon Hub"
	brandTagline  = "Ocean Professional"
	sidebarLabel  = "Sidebar navigation"
	activeMarker  = "▸"
	loginLabel    = "🔐 Log in"
	joinLabel     = "➕ Join an event"
	menuLabel     = "☰ Menu"
	menuAriaLabel = "Open navigation"
)

// renderSidebar draws the navigation column. The active entry carries the
// marker; nothing else about the sidebar depends on state.
func renderSidebar(s Styles, active core.ViewID, year, width, height int) string {
	inner := width - 4 // border and padding
	if inner < 8 {
		inner = 8
	}

	lines := []string{
		s.Dot.Render("●") + " " + s.Brand.Render(brandName),
		"  " + s.BrandSub.Render(brandTagline),
		"",
		s.Caption.Render(sidebarLabel),
	}

	for i, item := range core.Views() {
		hint := s.Muted.Render(fmt.Sprintf("%d", i+1))
		label := fmt.Sprintf("%s %s", item.Icon, item.Label)
		if item.ID == active {
			label = s.NavActive.Render(activeMarker + " " + label)
		} else {
			label = s.NavItem.Render("  " + label)
		}
		gap := inner - lipgloss.Width(label) - lipgloss.Width(hint)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, label+strings.Repeat(" ", gap)+hint)
	}

	actions := []string{
		s.ActionButton.Width(inner - 2).Render(loginLabel),
		s.ActionButton.Width(inner - 2).Render(joinLabel),
	}
	footer := s.Footer.Width(inner).Render(fmt.Sprintf("© %d Hackathon Hub", year))

	nav := strings.Join(lines, "\n")
	bottom := lipgloss.JoinVertical(lipgloss.Left, append(actions, "", footer)...)

	// push the actions to the bottom when there is room
	contentHeight := height - 4
	filler := contentHeight - lipgloss.Height(nav) - lipgloss.Height(bottom)
	if filler < 1 {
		filler = 1
	}

	st := s.Sidebar.Width(width - 2)
	if height > 0 {
		st = st.Height(max(height-2, 0))
	}
	return st.Render(nav + strings.Repeat("\n", filler+1) + bottom)
}

// renderHeaderBar is the compact-mode bar: menu, brand and theme icon.
func renderHeaderBar(s Styles, mode theme.Mode, width int) string {
	menu := s.HeaderButton.Render(menuLabel)
	brand := s.Brand.Render(brandName)
	toggle := s.HeaderButton.Render(mode.ToggleIcon())

	free := width - lipgloss.Width(menu) - lipgloss.Width(brand) - lipgloss.Width(toggle)
	if free < 2 {
		free = 2
	}
	left := free / 2
	right := free - left

	return s.HeaderBar.Width(width).Render(
		menu + strings.Repeat(" ", left) + brand + strings.Repeat(" ", right) + toggle,
	)
}
