package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

const maxModalWidth = 56

// rect is a screen region in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// renderCard wraps body in the surface card style with an optional title.
func renderCard(st lipgloss.Style, s Styles, title, body string, width int) string {
	content := body
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, s.CardTitle.Render(title), body)
	}
	return st.Width(cardInner(width)).Render(content)
}

// cardInner is the width passed to a bordered card so it renders at width.
func cardInner(width int) int {
	w := width - 2
	if w < 10 {
		w = 10
	}
	return w
}

// modalWidth is the outer width of the dialog panel on a screen of the given width.
func modalWidth(screen int) int {
	w := screen - 4
	if w > maxModalWidth {
		w = maxModalWidth
	}
	if w < 24 {
		w = 24
	}
	return w
}

// modalBodyWidth is the width available to the dialog body inside border and padding.
func modalBodyWidth(screen int) int {
	return modalWidth(screen) - 6
}

// renderModalPanel renders the dialog box: the title acts as its label and
// the ✕ affordance is labelled Close.
func renderModalPanel(s Styles, title, body string, screen int) string {
	inner := modalBodyWidth(screen)

	closeBtn := s.CloseBtn.Render("✕ Close")
	heading := s.ModalTitle.Render(title)
	gap := inner - lipgloss.Width(heading) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, heading, lipgloss.NewStyle().Width(gap).Render(""), closeBtn)

	return s.Modal.Width(inner + 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body),
	)
}

// placeOverlay centres panel on a full screen filled with the overlay colour.
func placeOverlay(s Styles, panel string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceBackground(s.Tokens.Overlay))
}

// centeredRect is where placeOverlay puts panel.
func centeredRect(panel string, width, height int) rect {
	w, h := lipgloss.Width(panel), lipgloss.Height(panel)
	return rect{
		x: centerOffset(width - w),
		y: centerOffset(height - h),
		w: w,
		h: h,
	}
}

func centerOffset(gap int) int {
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}
