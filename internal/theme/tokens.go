package theme

import "github.com/charmbracelet/lipgloss"

// Tokens is the named colour set every component renders with.
// Translucent colours of the web palette are pre-blended over the mode's background.
type Tokens struct {
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	Border      lipgloss.Color
	Shadow      lipgloss.Color
	GradientA   lipgloss.Color
	GradientB   lipgloss.Color
	SurfaceElev lipgloss.Color
	Overlay     lipgloss.Color
}

// Ocean Professional
var palette = map[Mode]Tokens{
	Light: {
		Primary:     lipgloss.Color("#2563EB"),
		Secondary:   lipgloss.Color("#F59E0B"),
		Success:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#EF4444"),
		Background:  lipgloss.Color("#F9FAFB"),
		Surface:     lipgloss.Color("#FFFFFF"),
		Text:        lipgloss.Color("#111827"),
		TextMuted:   lipgloss.Color("#585D68"),
		Border:      lipgloss.Color("#E1E2E4"),
		Shadow:      lipgloss.Color("#DCE6FB"),
		GradientA:   lipgloss.Color("#EBF2FE"),
		GradientB:   lipgloss.Color("#EEEFF2"),
		SurfaceElev: lipgloss.Color("#FFFFFF"),
		Overlay:     lipgloss.Color("#888B92"),
	},
	Dark: {
		Primary:     lipgloss.Color("#3B82F6"),
		Secondary:   lipgloss.Color("#F59E0B"),
		Success:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#F87171"),
		Background:  lipgloss.Color("#0B1220"),
		Surface:     lipgloss.Color("#0F172A"),
		Text:        lipgloss.Color("#E5E7EB"),
		TextMuted:   lipgloss.Color("#A3A6AD"),
		Border:      lipgloss.Color("#212A3A"),
		Shadow:      lipgloss.Color("#060B17"),
		GradientA:   lipgloss.Color("#102240"),
		GradientB:   lipgloss.Color("#070D1B"),
		SurfaceElev: lipgloss.Color("#111827"),
		Overlay:     lipgloss.Color("#04070D"),
	},
}

// TokensFor returns the colour table of m. Unknown modes get the light table.
func TokensFor(m Mode) Tokens {
	if t, ok := palette[m]; ok {
		return t
	}
	return palette[Light]
}
