package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/logger"
	"github.com/theakshaypant/hackhub/internal/storage"
	"github.com/theakshaypant/hackhub/internal/theme"
)

const (
	wideWidth    = 120
	compactWidth = 60
	testHeight   = 40
)

func newTestModel(t *testing.T, store core.Storage, width int) Model {
	t.Helper()
	p := theme.Load(store, logger.Nop())
	m := NewModel(core.NewStaticCatalog(), p, logger.Nop(), DefaultBreakpoint)
	return resize(t, m, width, testHeight)
}

func resize(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(Model)
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	updated, _ := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return updated.(Model)
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestNewModelDefaults(t *testing.T) {
	p := theme.Load(storage.NewMemoryStore(), logger.Nop())
	m := NewModel(core.NewStaticCatalog(), p, logger.Nop(), 0)

	assert.Equal(t, "Loading...", m.View())
	assert.Equal(t, core.ViewHome, m.active)
	assert.Equal(t, DefaultBreakpoint, m.breakpoint)
	assert.False(t, m.showLogin)
	assert.False(t, m.showJoin)
	assert.Nil(t, m.joinEvent)
	assert.False(t, m.drawerOpen)
}

// markers are strings only the given view renders.
var viewMarkers = map[core.ViewID]string{
	core.ViewHome:     "Welcome to Hackathon Hub",
	core.ViewCalendar: "Sample calendar view",
	core.ViewUpcoming: "Starts 2025-12-12 • 45 days left",
}

func assertOnlyView(t *testing.T, m Model, want core.ViewID) {
	t.Helper()
	out := plainView(m)
	for id, marker := range viewMarkers {
		if id == want {
			assert.Contains(t, out, marker, "view %s", want)
		} else {
			assert.NotContains(t, out, marker, "view %s shows %s content", want, id)
		}
	}
	assert.Contains(t, out, want.Title())
}

func TestNavigationExclusivity(t *testing.T) {
	tests := []struct {
		keys []string
		want core.ViewID
	}{
		{keys: nil, want: core.ViewHome},
		{keys: []string{"2"}, want: core.ViewCalendar},
		{keys: []string{"3"}, want: core.ViewUpcoming},
		{keys: []string{"3", "1"}, want: core.ViewHome},
		{keys: []string{"2", "2"}, want: core.ViewCalendar},
		{keys: []string{"tab"}, want: core.ViewCalendar},
		{keys: []string{"tab", "tab", "tab"}, want: core.ViewHome},
		{keys: []string{"shift+tab"}, want: core.ViewUpcoming},
		{keys: []string{"3", "2", "tab", "shift+tab", "shift+tab"}, want: core.ViewHome},
	}

	for _, tt := range tests {
		m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
		m = press(t, m, tt.keys...)
		assert.Equal(t, tt.want, m.active, "keys %v", tt.keys)
		assertOnlyView(t, m, tt.want)
	}
}

func TestSidebarMarksActiveView(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "2")

	out := plainView(m)
	assert.Contains(t, out, "Sidebar navigation")
	assert.Contains(t, out, activeMarker+" 📅 Calendar")
	assert.NotContains(t, out, activeMarker+" 🏠 Home")
}

func TestJoinFromCardShowsFixedContext(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "3", "down", "enter")

	require.True(t, m.showJoin)
	require.NotNil(t, m.joinEvent)
	assert.Equal(t, "h2", m.joinEvent.ID)

	out := plainView(m)
	assert.Contains(t, out, "You are joining: Web3 Builders Jam")
	assert.NotContains(t, out, "Select event")
	assert.NotContains(t, out, pickerPlaceholder)
}

func TestGenericJoinShowsPicker(t *testing.T) {
	for _, view := range []string{"1", "2", "3"} {
		m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
		m = press(t, m, view, "j")

		require.True(t, m.showJoin)
		assert.Nil(t, m.joinEvent)

		out := plainView(m)
		assert.Contains(t, out, "Select event")
		assert.Contains(t, out, pickerPlaceholder)
		assert.NotContains(t, out, "You are joining")
	}
}

func TestScenarioJoinClimateTechSprint(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "3", "down", "down", "enter")

	require.True(t, m.showJoin)
	out := plainView(m)
	assert.Contains(t, out, "Climate Tech Sprint")
	assert.Contains(t, out, "You are joining: Climate Tech Sprint")
	assert.NotContains(t, out, "Select event")
}

func TestJoinUnknownEventFallsBackToPicker(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m.openJoin(&core.Event{ID: "nope", Title: "Ghost Hack"})

	assert.True(t, m.showJoin)
	assert.Nil(t, m.joinEvent)
	assert.NotContains(t, plainView(m), "Ghost Hack")
}

func TestGenericOpenClearsPreviousEvent(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "3", "enter")
	require.NotNil(t, m.joinEvent)

	m = press(t, m, "esc")
	assert.False(t, m.showJoin)
	assert.Nil(t, m.joinEvent)

	m = press(t, m, "j")
	assert.Nil(t, m.joinEvent)
}

func TestDrawerClosesOnActions(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		effect func(t *testing.T, m Model)
	}{
		{name: "select view", key: "2", effect: func(t *testing.T, m Model) {
			assert.Equal(t, core.ViewCalendar, m.active)
		}},
		{name: "log in", key: "l", effect: func(t *testing.T, m Model) {
			assert.True(t, m.showLogin)
		}},
		{name: "join", key: "j", effect: func(t *testing.T, m Model) {
			assert.True(t, m.showJoin)
			assert.Nil(t, m.joinEvent)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, storage.NewMemoryStore(), compactWidth)
			require.True(t, m.mobile)

			m = press(t, m, "m")
			require.True(t, m.drawerOpen)
			assert.Contains(t, plainView(m), "Sidebar navigation")

			m = press(t, m, tt.key)
			assert.False(t, m.drawerOpen)
			tt.effect(t, m)
		})
	}
}

func TestMenuOnlyInCompactMode(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "m")
	assert.False(t, m.drawerOpen)
	assert.NotContains(t, plainView(m), menuLabel)

	m = newTestModel(t, storage.NewMemoryStore(), compactWidth)
	out := plainView(m)
	assert.Contains(t, out, menuLabel)
	assert.NotContains(t, out, "Sidebar navigation")
}

func TestBreakpointCrossingClosesDrawer(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), compactWidth)
	m = press(t, m, "m")
	require.True(t, m.drawerOpen)

	// staying below the breakpoint keeps it open
	m = resize(t, m, compactWidth-10, testHeight)
	assert.True(t, m.drawerOpen)

	m = resize(t, m, wideWidth, testHeight)
	assert.False(t, m.mobile)
	assert.False(t, m.drawerOpen)

	m = resize(t, m, compactWidth, testHeight)
	assert.True(t, m.mobile)
	assert.False(t, m.drawerOpen)
}

func TestCloseIsIdempotent(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	before := plainView(m)

	m.closeLogin()
	m.closeJoin()
	m = press(t, m, "esc")

	assert.False(t, m.showLogin)
	assert.False(t, m.showJoin)
	assert.Nil(t, m.joinEvent)
	assert.Equal(t, core.ViewHome, m.active)
	assert.Equal(t, before, plainView(m))
}

func TestEscClosesOnlyOpenDialog(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "l")
	require.True(t, m.showLogin)

	m = press(t, m, "esc")
	assert.False(t, m.showLogin)
	assert.False(t, m.showJoin)
}

func TestThemeToggleKey(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestModel(t, store, wideWidth)
	assert.Contains(t, plainView(m), "🌙 Dark")

	m = press(t, m, "t")

	v, err := store.Get(theme.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	assert.Equal(t, theme.TokensFor(theme.Dark), m.styles.Tokens)
	assert.Contains(t, plainView(m), "☀️ Light")
	assert.Equal(t, "Switch to light mode", m.keys.Theme.Help().Desc)

	// a new session picks up the stored mode
	reloaded := newTestModel(t, store, wideWidth)
	assert.Equal(t, theme.TokensFor(theme.Dark), reloaded.styles.Tokens)
}

func TestThemeToggleWithBrokenStorage(t *testing.T) {
	m := newTestModel(t, storage.Unavailable{}, wideWidth)
	assert.NotPanics(t, func() {
		m = press(t, m, "t")
	})
	assert.Equal(t, theme.TokensFor(theme.Dark), m.styles.Tokens)
}

func TestModalBackdropClick(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "l")
	require.True(t, m.showLogin)

	r := m.modalRect()
	m = click(t, m, r.x+r.w/2, r.y+r.h/2)
	assert.True(t, m.showLogin, "click inside the panel keeps it open")

	m = click(t, m, 0, 0)
	assert.False(t, m.showLogin)
}

func TestDrawerBackdropClick(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), compactWidth)
	m = press(t, m, "m")

	m = click(t, m, 2, 5)
	assert.True(t, m.drawerOpen, "click inside the drawer keeps it open")

	m = click(t, m, compactWidth-1, 5)
	assert.False(t, m.drawerOpen)
}

func TestLoginSubmit(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "l", "enter")

	require.True(t, m.showLogin, "empty submission keeps the dialog open")
	assert.Contains(t, plainView(m), "Please fill out this field")

	m = typeText(t, m, "ada@example.com")
	m = press(t, m, "tab")
	m = typeText(t, m, "hunter2")
	m = press(t, m, "enter")

	assert.False(t, m.showLogin)
}

func TestLoginRejectsBadEmail(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "l")
	m = typeText(t, m, "qwerty")
	m = press(t, m, "tab")
	m = typeText(t, m, "secret")
	m = press(t, m, "enter")

	require.True(t, m.showLogin)
	assert.Contains(t, plainView(m), "Enter a valid email address")
	assert.Equal(t, 0, m.login.focus)
}

func TestJoinSubmitRequiresEvent(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "j", "tab")
	m = typeText(t, m, "Ada Lovelace")
	m = press(t, m, "tab")
	m = typeText(t, m, "ada@example.com")
	m = press(t, m, "enter")

	require.True(t, m.showJoin)
	assert.Contains(t, plainView(m), "Choose an event")
	assert.True(t, m.join.pickerFocused())

	m = press(t, m, "right")
	assert.Contains(t, plainView(m), "AI Innovators Hack — 2025-11-02")

	m = press(t, m, "enter")
	assert.False(t, m.showJoin)
	assert.Nil(t, m.joinEvent)
}

func TestJoinPreselectedSubmit(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "3", "enter")
	m = typeText(t, m, "Ada Lovelace")
	m = press(t, m, "tab")
	m = typeText(t, m, "ada@example.com")
	m = press(t, m, "enter")

	assert.False(t, m.showJoin)
	assert.Nil(t, m.joinEvent)
}

func TestTypingInDialogDoesNotTriggerShortcuts(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "l")
	m = typeText(t, m, "q2t")

	assert.True(t, m.showLogin)
	assert.Equal(t, core.ViewHome, m.active)
	assert.Equal(t, "q2t", m.login.email.Value())
}

func TestUpcomingHighlightBounds(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "3", "up")
	assert.Equal(t, 0, m.highlighted)

	m = press(t, m, "down", "down", "down", "down")
	assert.Equal(t, 2, m.highlighted)
	require.Len(t, m.cardTops, 3)

	// switching views resets the highlight
	m = press(t, m, "1", "3")
	assert.Equal(t, 0, m.highlighted)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	m = press(t, m, "?")
	require.True(t, m.showHelp)
	assert.Contains(t, plainView(m), "Keyboard Shortcuts")

	// any key dismisses without acting
	m = press(t, m, "2")
	assert.False(t, m.showHelp)
	assert.Equal(t, core.ViewHome, m.active)
}

func TestHelpFromDrawer(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), compactWidth)
	m = press(t, m, "m", "?")

	assert.False(t, m.drawerOpen)
	require.True(t, m.showHelp)
	assert.Contains(t, plainView(m), "Keyboard Shortcuts")

	m = press(t, m, "2", "2")
	assert.False(t, m.showHelp)
	assert.Equal(t, core.ViewCalendar, m.active)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, storage.NewMemoryStore(), wideWidth)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
