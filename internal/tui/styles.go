package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theakshaypant/hackhub/internal/theme"
)

// Styles is every style the shell renders with, derived from one token set.
// It is rebuilt whenever the theme changes.
type Styles struct {
	Tokens theme.Tokens

	// Layout styles
	App     lipgloss.Style
	Toolbar lipgloss.Style
	Title   lipgloss.Style
	Dot     lipgloss.Style

	// Sidebar
	Sidebar      lipgloss.Style
	Brand        lipgloss.Style
	BrandSub     lipgloss.Style
	Caption      lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	ActionButton lipgloss.Style
	Footer       lipgloss.Style

	// Compact header bar
	HeaderBar    lipgloss.Style
	HeaderButton lipgloss.Style

	// Cards and content
	Card          lipgloss.Style
	HeroCard      lipgloss.Style
	HighlightCard lipgloss.Style
	CardTitle     lipgloss.Style
	Heading       lipgloss.Style
	Muted         lipgloss.Style
	Text          lipgloss.Style
	Chip          lipgloss.Style
	StatTile      lipgloss.Style
	StatValue     lipgloss.Style

	// Buttons
	PrimaryButton   lipgloss.Style
	SecondaryButton lipgloss.Style
	GhostButton     lipgloss.Style

	// Calendar grid
	DayCell   lipgloss.Style
	DayMarked lipgloss.Style
	DayMarker lipgloss.Style
	DayNumber lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	CloseBtn   lipgloss.Style
	FieldLabel lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	FieldError lipgloss.Style

	// Help bar
	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t theme.Tokens) Styles {
	s := Styles{Tokens: t}

	s.App = lipgloss.NewStyle().Padding(1, 2)
	s.Toolbar = lipgloss.NewStyle().MarginBottom(1)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	s.Dot = lipgloss.NewStyle().Foreground(t.Primary)

	s.Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Foreground(t.Text).
		Padding(1, 1)
	s.Brand = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	s.BrandSub = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Caption = lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)
	s.NavItem = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	s.NavActive = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.GradientA).
		Bold(true).
		Padding(0, 1)
	s.ActionButton = lipgloss.NewStyle().
		Foreground(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	s.Footer = lipgloss.NewStyle().Foreground(t.TextMuted).Align(lipgloss.Center)

	s.HeaderBar = lipgloss.NewStyle().
		Background(t.Surface).
		Foreground(t.Text).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Border)
	s.HeaderButton = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Padding(0, 1)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Foreground(t.Text).
		Padding(1, 2)
	s.Card = card
	s.HeroCard = card.BorderForeground(t.Primary).Background(t.GradientA)
	s.HighlightCard = card.BorderForeground(t.Primary).Background(t.SurfaceElev)
	s.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(t.Text).MarginBottom(1)
	s.Heading = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Text = lipgloss.NewStyle().Foreground(t.Text)
	s.Chip = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.GradientA).
		Bold(true).
		Padding(0, 1)
	s.StatTile = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.GradientB).
		Align(lipgloss.Center).
		Padding(0, 1)
	s.StatValue = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)

	s.PrimaryButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
	s.SecondaryButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#111827")).
		Background(t.Secondary).
		Bold(true).
		Padding(0, 1)
	s.GhostButton = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Bold(true).
		Padding(0, 1)

	s.DayCell = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Surface).
		Padding(0, 1)
	s.DayMarked = s.DayCell.BorderForeground(t.Primary).Background(t.GradientA)
	s.DayMarker = lipgloss.NewStyle().Foreground(t.Primary)
	s.DayNumber = lipgloss.NewStyle().Bold(true).Foreground(t.Text)

	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.SurfaceElev).
		Foreground(t.Text).
		Padding(1, 2)
	s.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	s.CloseBtn = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	s.FieldLabel = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Input = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	s.InputFocus = s.Input.BorderForeground(t.Primary)
	s.FieldError = lipgloss.NewStyle().Foreground(t.Error)

	s.Help = lipgloss.NewStyle().Foreground(t.TextMuted).MarginTop(1)
	s.HelpKey = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	return s
}
