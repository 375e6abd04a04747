package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theakshaypant/hackhub/internal/calendar"
	"github.com/theakshaypant/hackhub/internal/core"
)

const (
	heroTitle = "Welcome to Hackathon Hub"
	heroBlurb = "Discover upcoming hackathons, plan your schedule, and join events with a single click."

	// Featured and Quick Stats sit side by side from this content width.
	sideBySideWidth = 72
)

func renderChips(s Styles, tags []string, prefix string) string {
	chips := make([]string, 0, len(tags)*2)
	for i, t := range tags {
		if i > 0 {
			chips = append(chips, " ")
		}
		chips = append(chips, s.Chip.Render(prefix+t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// renderHome is the hero, the featured event and the quick stats.
func renderHome(s Styles, width int) string {
	textWidth := cardInner(width) - 4

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		s.PrimaryButton.Render("➕ Join an event"), " ",
		s.GhostButton.Render("Learn more"))
	hero := renderCard(s.HeroCard, s, "", lipgloss.JoinVertical(lipgloss.Left,
		s.Heading.Render(heroTitle),
		s.Muted.Render(ansi.Wordwrap(heroBlurb, textWidth, "")),
		"",
		buttons,
	), width)

	featuredWidth, statsWidth := width, width
	if width >= sideBySideWidth {
		featuredWidth = width * 3 / 5
		statsWidth = width - featuredWidth - 1
	}

	ev := core.Featured()
	featuredCard := func(st lipgloss.Style) string {
		return renderCard(st, s, "Featured Event", lipgloss.JoinVertical(lipgloss.Left,
			s.Title.Render(ev.Title),
			s.Muted.Render(ansi.Wordwrap(ev.Schedule, cardInner(featuredWidth)-4, "")),
			"",
			renderChips(s, ev.Tags, ""),
		), featuredWidth)
	}
	statsCard := func(st lipgloss.Style) string {
		return renderCard(st, s, "Quick Stats", renderStats(s, cardInner(statsWidth)-4), statsWidth)
	}

	featured, stats := featuredCard(s.Card), statsCard(s.Card)
	var lower string
	if width >= sideBySideWidth {
		// equal heights so both cards share a bottom edge
		h := max(lipgloss.Height(featured), lipgloss.Height(stats)) - 2
		lower = lipgloss.JoinHorizontal(lipgloss.Top, featuredCard(s.Card.Height(h)), " ", statsCard(s.Card.Height(h)))
	} else {
		lower = lipgloss.JoinVertical(lipgloss.Left, featured, stats)
	}

	return lipgloss.JoinVertical(lipgloss.Left, hero, lower)
}

func renderStats(s Styles, width int) string {
	stats := core.QuickStats()
	tileWidth := (width - (len(stats) - 1)) / len(stats)
	if tileWidth < 16 {
		// too narrow for a row; stack the tiles
		tileWidth = width
	}

	tiles := make([]string, 0, len(stats))
	for _, st := range stats {
		tiles = append(tiles, s.StatTile.Width(cardInner(tileWidth)).Render(
			s.StatValue.Render(st.Value)+"\n"+s.Muted.Render(st.Label),
		))
	}
	if tileWidth == width {
		return lipgloss.JoinVertical(lipgloss.Left, tiles...)
	}

	row := make([]string, 0, len(tiles)*2)
	for i, t := range tiles {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

// renderCalendar is the month header card and the day grid.
func renderCalendar(s Styles, width int) string {
	header := renderCard(s.Card, s, "", lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(calendar.Title),
		s.Muted.Render(calendar.Caption),
	), width)

	cellWidth := width / calendar.DaysPerWeek
	if cellWidth < 5 {
		cellWidth = 5
	}
	// border plus one cell of padding on each side
	labelWidth := cellWidth - 4
	if labelWidth < 1 {
		labelWidth = 1
	}

	var rows []string
	for _, week := range calendar.Weeks(calendar.Month(), calendar.DaysPerWeek) {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			st := s.DayCell
			marker := ""
			if d.Hackathon {
				st = s.DayMarked
				marker = s.DayMarker.Render(ansi.Truncate(calendar.MarkerLabel, labelWidth, "…"))
			}
			cells = append(cells, st.Width(cellWidth-2).Render(
				s.DayNumber.Render(fmt.Sprintf("%d", d.Number))+"\n"+marker,
			))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(rows, "\n"))
}

// renderUpcoming renders one card per event and returns the first line
// of each card so the highlight can be scrolled into view.
func renderUpcoming(s Styles, events []core.Event, highlighted, width int) (string, []int) {
	textWidth := cardInner(width) - 4

	var (
		cards []string
		tops  []int
		line  int
	)
	for i, ev := range events {
		st, btn, marker := s.Card, s.GhostButton, "  "
		if i == highlighted {
			st, btn, marker = s.HighlightCard, s.SecondaryButton, "▶ "
		}

		join := btn.Render("Join")
		title := s.Title.Render(marker + ev.Title)
		gap := textWidth - lipgloss.Width(title) - lipgloss.Width(join)
		if gap < 1 {
			gap = 1
		}
		head := lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), join)

		card := renderCard(st, s, "", lipgloss.JoinVertical(lipgloss.Left,
			head,
			s.Muted.Render(ev.StartsLine()),
			"",
			s.Muted.Render(ansi.Wordwrap(ev.Description, textWidth, "")),
			"",
			renderChips(s, ev.Tags, "#"),
		), width)

		tops = append(tops, line)
		line += lipgloss.Height(card)
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return s.Muted.Render("No upcoming events"), nil
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...), tops
}
