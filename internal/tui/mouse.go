package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theakshaypant/hackhub/internal/core"
)

// hotspot is a clickable label on screen.
type hotspot struct {
	area   rect
	action func(m *Model) tea.Cmd
}

// locate returns every place label is drawn inside region. lines is the
// screen with styling stripped; x positions are in cells.
func locate(lines []string, label string, region rect) []rect {
	w := ansi.StringWidth(label)
	var found []rect
	for y := max(region.y, 0); y < min(region.y+region.h, len(lines)); y++ {
		line := lines[y]
		for off := 0; off < len(line); {
			i := strings.Index(line[off:], label)
			if i < 0 {
				break
			}
			x := ansi.StringWidth(line[:off+i])
			if x >= region.x && x+w <= region.x+region.w {
				found = append(found, rect{x: x, y: y, w: w, h: 1})
			}
			off += i + len(label)
		}
	}
	return found
}

func first(found []rect) (rect, bool) {
	if len(found) == 0 {
		return rect{}, false
	}
	return found[0], true
}

func last(found []rect) (rect, bool) {
	if len(found) == 0 {
		return rect{}, false
	}
	return found[len(found)-1], true
}

// hotspotAt returns the action of the label under (x, y).
func (m Model) hotspotAt(x, y int) (func(*Model) tea.Cmd, bool) {
	for _, h := range m.hotspots() {
		if h.area.contains(x, y) {
			return h.action, true
		}
	}
	return nil, false
}

// hotspots lists the clickable labels of the current screen. Regions come
// from the layout; the labels are then found in the rendered text.
func (m Model) hotspots() []hotspot {
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	var spots []hotspot
	add := func(area rect, ok bool, action func(*Model) tea.Cmd) {
		if ok {
			spots = append(spots, hotspot{area: area, action: action})
		}
	}

	if m.showLogin || m.showJoin {
		panel := m.modalRect()
		submitLabel := "Log in"
		if m.showJoin {
			submitLabel = "Join event"
		}
		area, ok := first(locate(lines, "✕ Close", panel))
		add(area, ok, closeModalAction)
		// buttons sit below the title, which may carry the same text
		area, ok = last(locate(lines, "Cancel", panel))
		add(area, ok, closeModalAction)
		area, ok = last(locate(lines, submitLabel, panel))
		add(area, ok, (*Model).submit)
		return spots
	}

	if m.mobile && m.drawerOpen {
		return append(spots, m.sidebarHotspots(lines, rect{x: 0, y: 0, w: m.drawerWidth(), h: m.height})...)
	}

	top, left := m.styles.App.GetPaddingTop(), m.styles.App.GetPaddingLeft()
	if m.mobile {
		barHeight := lipgloss.Height(renderHeaderBar(m.styles, m.theme.Mode(), m.width))
		bar := rect{x: 0, y: 0, w: m.width, h: barHeight}
		area, ok := first(locate(lines, menuLabel, bar))
		add(area, ok, toggleDrawerAction)
		area, ok = last(locate(lines, m.theme.Mode().ToggleIcon(), bar))
		add(area, ok, toggleThemeAction)
		top += barHeight
	} else {
		spots = append(spots, m.sidebarHotspots(lines, rect{x: left, y: top, w: sidebarWidth, h: m.height - top})...)
		left += sidebarWidth + 1
	}

	toolbar := rect{x: left, y: top, w: m.mainWidth, h: 1}
	area, ok := first(locate(lines, m.theme.Mode().ToggleText(), toolbar))
	add(area, ok, toggleThemeAction)
	area, ok = last(locate(lines, "➕ Join", toolbar))
	add(area, ok, genericJoinAction)

	if m.showHelp {
		return spots
	}

	content := rect{x: left, y: top + lipgloss.Height(m.renderToolbar()), w: m.mainWidth, h: m.contentHeight}
	switch m.active {
	case core.ViewHome:
		area, ok := first(locate(lines, joinLabel, content))
		add(area, ok, genericJoinAction)
	case core.ViewUpcoming:
		// the Join button shares the first text row of its card
		inset := m.styles.Card.GetBorderTopSize() + m.styles.Card.GetPaddingTop()
		for i, cardTop := range m.cardTops {
			if i >= len(m.events) {
				break
			}
			row := content.y + cardTop + inset - m.content.YOffset
			if row < content.y || row >= content.y+content.h {
				continue
			}
			ev := m.events[i]
			area, ok := last(locate(lines, "Join", rect{x: content.x, y: row, w: content.w, h: 1}))
			add(area, ok, func(m *Model) tea.Cmd { return m.openJoin(&ev) })
		}
	}
	return spots
}

// sidebarHotspots covers the nav entries and the two action buttons.
func (m Model) sidebarHotspots(lines []string, region rect) []hotspot {
	var spots []hotspot
	for _, item := range core.Views() {
		id := item.ID
		if area, ok := first(locate(lines, item.Icon+" "+item.Label, region)); ok {
			spots = append(spots, hotspot{area: area, action: func(m *Model) tea.Cmd {
				m.selectView(id)
				return nil
			}})
		}
	}
	if area, ok := first(locate(lines, loginLabel, region)); ok {
		spots = append(spots, hotspot{area: area, action: (*Model).openLogin})
	}
	if area, ok := first(locate(lines, joinLabel, region)); ok {
		spots = append(spots, hotspot{area: area, action: genericJoinAction})
	}
	return spots
}

func closeModalAction(m *Model) tea.Cmd {
	m.closeModal()
	return nil
}

func genericJoinAction(m *Model) tea.Cmd {
	return m.openJoin(nil)
}

func toggleDrawerAction(m *Model) tea.Cmd {
	m.toggleDrawer()
	return nil
}

func toggleThemeAction(m *Model) tea.Cmd {
	m.toggleTheme()
	return nil
}
