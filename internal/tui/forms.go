package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theakshaypant/hackhub/internal/core"
	"github.com/theakshaypant/hackhub/internal/form"
)

const (
	emailPlaceholder    = "you@example.com"
	passwordPlaceholder = "••••••••"
	namePlaceholder     = "Ada Lovelace"
	pickerPlaceholder   = "Choose an event"
	inputCharLimit      = 120
)

func newInput(s Styles, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = inputCharLimit
	ti.Width = 36
	styleInput(&ti, s)
	return ti
}

func styleInput(ti *textinput.Model, s Styles) {
	ti.TextStyle = s.Text
	ti.PlaceholderStyle = s.Muted
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(s.Tokens.Primary)
}

// focusInputs focuses inputs[idx] and blurs the rest. idx may point
// outside inputs when a non-text field is focused.
func focusInputs(inputs []*textinput.Model, idx int) tea.Cmd {
	var cmd tea.Cmd
	for i, in := range inputs {
		if i == idx {
			cmd = in.Focus()
			continue
		}
		in.Blur()
	}
	return cmd
}

func wrapFocus(idx, n int) int {
	return ((idx % n) + n) % n
}

// loginForm is the state of the log in dialog.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errs     form.FieldErrors
}

func newLoginForm(s Styles) loginForm {
	f := loginForm{
		email:    newInput(s, emailPlaceholder),
		password: newInput(s, passwordPlaceholder),
	}
	f.password.EchoMode = textinput.EchoPassword
	f.password.EchoCharacter = '•'
	return f
}

func (f *loginForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.email, &f.password}
}

func (f *loginForm) setFocus(idx int) tea.Cmd {
	f.focus = wrapFocus(idx, len(f.inputs()))
	return focusInputs(f.inputs(), f.focus)
}

func (f *loginForm) restyle(s Styles) {
	for _, in := range f.inputs() {
		styleInput(in, s)
	}
}

func (f loginForm) submission() form.Login {
	return form.Login{
		Email:    strings.TrimSpace(f.email.Value()),
		Password: f.password.Value(),
	}
}

// validate records the field errors and moves focus to the first
// invalid field. It reports whether the submission is acceptable.
func (f *loginForm) validate() (bool, tea.Cmd) {
	f.errs = form.Validate(f.submission())
	if f.errs.OK() {
		return true, nil
	}
	for i, label := range []string{"Email", "Password"} {
		if _, bad := f.errs[label]; bad {
			return false, f.setFocus(i)
		}
	}
	return false, nil
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	in := f.inputs()[f.focus]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (f loginForm) view(s Styles, width int) string {
	fields := []string{
		renderInput(s, "Email", f.email, f.focus == 0, f.errs, width),
		renderInput(s, "Password", f.password, f.focus == 1, f.errs, width),
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		s.GhostButton.Render("Cancel"), " ", s.PrimaryButton.Render("Log in"))

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(fields, "\n"),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Right, buttons),
	)
}

// joinForm is the state of the join event dialog. When preselected is set
// the event picker is not part of the form.
type joinForm struct {
	events      []core.Event
	preselected *core.Event
	choice      int // index into events, -1 until the user picks one
	name        textinput.Model
	email       textinput.Model
	focus       int
	errs        form.FieldErrors
}

func newJoinForm(s Styles, events []core.Event, preselected *core.Event) joinForm {
	return joinForm{
		events:      events,
		preselected: preselected,
		choice:      -1,
		name:        newInput(s, namePlaceholder),
		email:       newInput(s, emailPlaceholder),
	}
}

func (f *joinForm) hasPicker() bool {
	return f.preselected == nil
}

// fieldCount includes the picker when it is shown.
func (f *joinForm) fieldCount() int {
	if f.hasPicker() {
		return 3
	}
	return 2
}

func (f *joinForm) pickerFocused() bool {
	return f.hasPicker() && f.focus == 0
}

// textIndex maps the focus position to an index of inputs, or -1 for the picker.
func (f *joinForm) textIndex() int {
	if f.hasPicker() {
		return f.focus - 1
	}
	return f.focus
}

func (f *joinForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.name, &f.email}
}

func (f *joinForm) setFocus(idx int) tea.Cmd {
	f.focus = wrapFocus(idx, f.fieldCount())
	return focusInputs(f.inputs(), f.textIndex())
}

func (f *joinForm) restyle(s Styles) {
	for _, in := range f.inputs() {
		styleInput(in, s)
	}
}

// cycle moves the picker selection by delta, wrapping around.
// The placeholder is not reachable again once an event is chosen.
func (f *joinForm) cycle(delta int) {
	if len(f.events) == 0 {
		return
	}
	if f.choice < 0 {
		if delta < 0 {
			f.choice = len(f.events) - 1
		} else {
			f.choice = 0
		}
		return
	}
	f.choice = wrapFocus(f.choice+delta, len(f.events))
}

// selected is the event the submission is for, if any.
func (f joinForm) selected() (core.Event, bool) {
	if f.preselected != nil {
		return *f.preselected, true
	}
	if f.choice < 0 || f.choice >= len(f.events) {
		return core.Event{}, false
	}
	return f.events[f.choice], true
}

func (f joinForm) submission() form.Join {
	sub := form.Join{
		Name:  strings.TrimSpace(f.name.Value()),
		Email: strings.TrimSpace(f.email.Value()),
	}
	if f.preselected != nil {
		sub.Preselected = f.preselected.ID
	} else if ev, ok := f.selected(); ok {
		sub.EventID = ev.ID
	}
	return sub
}

func (f *joinForm) validate() (bool, tea.Cmd) {
	f.errs = form.Validate(f.submission())
	if f.errs.OK() {
		return true, nil
	}
	order := []string{"Your name", "Email"}
	if f.hasPicker() {
		order = append([]string{"Select event"}, order...)
	}
	for i, label := range order {
		if _, bad := f.errs[label]; bad {
			return false, f.setFocus(i)
		}
	}
	return false, nil
}

func (f *joinForm) update(msg tea.Msg) tea.Cmd {
	idx := f.textIndex()
	if idx < 0 {
		return nil
	}
	in := f.inputs()[idx]
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (f joinForm) view(s Styles, width int) string {
	var parts []string
	if f.preselected != nil {
		parts = append(parts, s.Muted.Render("You are joining: ")+s.Title.Render(f.preselected.Title))
	} else {
		parts = append(parts, f.renderPicker(s, width))
	}

	offset := 0
	if f.hasPicker() {
		offset = 1
	}
	parts = append(parts,
		renderInput(s, "Your name", f.name, f.focus == offset, f.errs, width),
		renderInput(s, "Email", f.email, f.focus == offset+1, f.errs, width),
	)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		s.GhostButton.Render("Cancel"), " ", s.PrimaryButton.Render("Join event"))

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(parts, "\n"),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Right, buttons),
	)
}

func (f joinForm) renderPicker(s Styles, width int) string {
	value := s.Muted.Render(pickerPlaceholder)
	if ev, ok := f.selected(); ok {
		value = s.Text.Render(ev.OptionLabel())
	}

	box := s.Input
	if f.pickerFocused() {
		box = s.InputFocus
	}
	field := box.Width(fieldWidth(width)).Render("‹ " + value + " ›")

	lines := []string{s.FieldLabel.Render("Select event"), field}
	if msg, bad := f.errs["Select event"]; bad {
		lines = append(lines, s.FieldError.Render(msg))
	}
	return strings.Join(lines, "\n")
}

func renderInput(s Styles, label string, in textinput.Model, focused bool, errs form.FieldErrors, width int) string {
	box := s.Input
	if focused {
		box = s.InputFocus
	}
	in.Width = fieldWidth(width) - 3
	lines := []string{
		s.FieldLabel.Render(label),
		box.Width(fieldWidth(width)).Render(in.View()),
	}
	if msg, bad := errs[label]; bad {
		lines = append(lines, s.FieldError.Render(msg))
	}
	return strings.Join(lines, "\n")
}

// fieldWidth is the inner width of an input box in a modal of the given width.
func fieldWidth(width int) int {
	w := width - 2
	if w < 10 {
		w = 10
	}
	return w
}
