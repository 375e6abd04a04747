// Package calendar builds the static month grid shown by the calendar view.
package calendar

import (
	"sync"
	"time"

	"github.com/teambition/rrule-go"
)

const (
	// Title labels the sample month.
	Title = "November 2025"
	// Caption explains that the grid is a mock.
	Caption = "Sample calendar view"
	// MarkerLabel is printed under flagged days.
	MarkerLabel = "• Hackathon"

	// DaysPerWeek is the default grid width.
	DaysPerWeek = 7

	daysInMonth = 30
	markerEvery = 6
)

// Day is one cell of the grid.
type Day struct {
	Number    int
	Hackathon bool
}

var (
	monthOnce sync.Once
	month     []Day
)

// Month returns days 1..30 with every sixth day flagged.
// The slice is built once and shared; callers must not modify it.
func Month() []Day {
	monthOnce.Do(func() {
		month = buildMonth()
	})
	return month
}

func buildMonth() []Day {
	flagged := markerDays()
	days := make([]Day, daysInMonth)
	for i := range days {
		n := i + 1
		days[i] = Day{Number: n, Hackathon: flagged[n]}
	}
	return days
}

// markerDays expands FREQ=DAILY;INTERVAL=6 over the sample month.
// Starting on the 6th, that is exactly the days divisible by six.
func markerDays() map[int]bool {
	start := time.Date(2025, time.November, markerEvery, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.November, daysInMonth, 0, 0, 0, 0, time.UTC)

	flagged := make(map[int]bool)
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.DAILY,
		Interval: markerEvery,
		Dtstart:  start,
		Until:    end,
	})
	if err != nil {
		// the option set is constant; fall back to plain arithmetic
		for d := 1; d <= daysInMonth; d++ {
			flagged[d] = d%markerEvery == 0
		}
		return flagged
	}

	for _, t := range r.All() {
		flagged[t.Day()] = true
	}
	return flagged
}

// Weeks splits days into rows of at most cols cells.
func Weeks(days []Day, cols int) [][]Day {
	if cols <= 0 {
		cols = DaysPerWeek
	}
	var rows [][]Day
	for start := 0; start < len(days); start += cols {
		end := start + cols
		if end > len(days) {
			end = len(days)
		}
		rows = append(rows, days[start:end])
	}
	return rows
}
