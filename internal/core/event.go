package core

import (
	"fmt"
	"time"
)

// DateLayout is the format of Event.Date.
const DateLayout = "2006-01-02"

// Event is a hackathon listed in the catalog.
type Event struct {
	// Unique ID (e.g., "h1")
	ID    string
	Title string
	// Calendar date the event starts on, formatted as DateLayout
	Date string
	// Days remaining until the start, never negative
	DaysLeft int
	// Ordered, e.g. {"AI", "ML", "Data"}
	Tags        []string
	Description string
}

// StartDate parses Date.
func (e Event) StartDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("event %s: invalid date %q: %w", e.ID, e.Date, err)
	}
	return t, nil
}

// StartsLine is the subtitle shown on upcoming cards.
func (e Event) StartsLine() string {
	return fmt.Sprintf("Starts %s • %d days left", e.Date, e.DaysLeft)
}

// OptionLabel is how the event is listed in the join picker.
func (e Event) OptionLabel() string {
	return fmt.Sprintf("%s — %s", e.Title, e.Date)
}

// FeaturedEvent is the hard-coded highlight on the home view.
// It is intentionally not looked up from the catalog.
type FeaturedEvent struct {
	Title    string
	Schedule string
	Tags     []string
}

// Featured returns the home view highlight.
func Featured() FeaturedEvent {
	return FeaturedEvent{
		Title:    "AI Innovators Hack",
		Schedule: "Starts Nov 2, 2025 • 72 hours • Remote + In-person",
		Tags:     []string{"AI", "ML", "Data"},
	}
}

// Stat is one tile of the quick stats block.
type Stat struct {
	Label string
	Value string
}

// QuickStats returns the three home view tiles.
func QuickStats() []Stat {
	return []Stat{
		{Label: "Events", Value: "24"},
		{Label: "Participants", Value: "3.2k"},
		{Label: "Cities", Value: "12"},
	}
}
