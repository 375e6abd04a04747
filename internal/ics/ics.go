// Package ics writes the event catalog as an iCalendar feed so the
// listed hackathons can be imported into a regular calendar app.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/theakshaypant/hackhub/internal/core"
)

// ProductID identifies the generator in the PRODID line.
const ProductID = "-//hackhub//Hackathon Hub//EN"

// Export writes one all-day VEVENT per event. Events whose date does not
// parse are skipped and reported in the returned error after the feed is
// written.
func Export(w io.Writer, events []core.Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	var skipped []string
	for _, ev := range events {
		start, err := ev.StartDate()
		if err != nil {
			skipped = append(skipped, ev.ID)
			continue
		}

		ve := cal.AddEvent(uid(ev))
		ve.SetSummary(ev.Title)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		ve.SetDtStampTime(stamp.UTC())
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(start.AddDate(0, 0, 1))
		if len(ev.Tags) > 0 {
			ve.AddProperty(ical.ComponentPropertyCategories, strings.Join(ev.Tags, ","))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	if len(skipped) > 0 {
		return fmt.Errorf("skipped events with invalid dates: %s", strings.Join(skipped, ", "))
	}
	return nil
}

func uid(ev core.Event) string {
	return ev.ID + "@hackhub"
}
