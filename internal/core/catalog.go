package core

// Catalog is the source of events shown by the views and the join picker.
type Catalog interface {
	// Events returns every event in display order.
	Events() []Event
	// Lookup finds an event by ID.
	Lookup(id string) (Event, bool)
}

var sampleEvents = []Event{
	{
		ID:          "h1",
		Title:       "AI Innovators Hack",
		Date:        "2025-11-02",
		DaysLeft:    5,
		Tags:        []string{"AI", "ML", "Data"},
		Description: "Build AI-powered solutions to real-world problems. Prizes for innovation and impact.",
	},
	{
		ID:          "h2",
		Title:       "Web3 Builders Jam",
		Date:        "2025-12-12",
		DaysLeft:    45,
		Tags:        []string{"Blockchain", "DeFi"},
		Description: "Create decentralized apps and tooling. Learn, team up, and build the future of the web.",
	},
	{
		ID:          "h3",
		Title:       "Climate Tech Sprint",
		Date:        "2026-01-17",
		DaysLeft:    80,
		Tags:        []string{"Sustainability", "IoT"},
		Description: "Hack for the planet. Prototype solutions tackling climate and energy challenges.",
	},
}

// StaticCatalog serves the built-in sample events. It never changes at runtime.
type StaticCatalog struct{}

// NewStaticCatalog returns the sample catalog.
func NewStaticCatalog() StaticCatalog {
	return StaticCatalog{}
}

// Events returns a copy so callers can't mutate the samples.
func (StaticCatalog) Events() []Event {
	out := make([]Event, len(sampleEvents))
	for i, ev := range sampleEvents {
		ev.Tags = append([]string(nil), ev.Tags...)
		out[i] = ev
	}
	return out
}

func (c StaticCatalog) Lookup(id string) (Event, bool) {
	for _, ev := range c.Events() {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}
