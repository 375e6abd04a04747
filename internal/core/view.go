package core

// ViewID identifies one of the main content views.
type ViewID string

const (
	ViewHome     ViewID = "home"
	ViewCalendar ViewID = "calendar"
	ViewUpcoming ViewID = "upcoming"
)

// NavItem is an entry of the sidebar navigation.
type NavItem struct {
	ID    ViewID
	Label string
	Icon  string
}

var navItems = []NavItem{
	{ID: ViewHome, Label: "Home", Icon: "🏠"},
	{ID: ViewCalendar, Label: "Calendar", Icon: "📅"},
	{ID: ViewUpcoming, Label: "Upcoming", Icon: "🚀"},
}

// Views returns the navigation entries in display order.
func Views() []NavItem {
	return append([]NavItem(nil), navItems...)
}

// Valid reports whether v is a known view.
func (v ViewID) Valid() bool {
	for _, item := range navItems {
		if item.ID == v {
			return true
		}
	}
	return false
}

// Title is the heading shown above the active view.
func (v ViewID) Title() string {
	switch v {
	case ViewCalendar:
		return "Calendar"
	case ViewUpcoming:
		return "Upcoming events"
	default:
		return "Home"
	}
}

// Index returns the position of v in Views, or 0 if unknown.
func (v ViewID) Index() int {
	for i, item := range navItems {
		if item.ID == v {
			return i
		}
	}
	return 0
}

// Offset returns the view n steps away from v, wrapping around.
func (v ViewID) Offset(n int) ViewID {
	count := len(navItems)
	idx := ((v.Index()+n)%count + count) % count
	return navItems[idx].ID
}
