package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// AddressBar wraps bubbles/textinput as a path entry field.
type AddressBar struct {
	Model textinput.Model
}

// NewAddressBar creates a blurred address bar.
func NewAddressBar() AddressBar {
	ti := textinput.New()
	ti.Placeholder = "/my-quizzes"
	ti.Prompt = ""
	ti.CharLimit = 256
	return AddressBar{Model: ti}
}

// Open focuses the bar, pre-filled with the current path.
func (a *AddressBar) Open(current string) tea.Cmd {
	a.Model.SetValue(current)
	a.Model.CursorEnd()
	return a.Model.Focus()
}

// Close blurs the bar.
func (a *AddressBar) Close() {
	a.Model.Blur()
}

// Focused reports whether the bar is accepting input.
func (a AddressBar) Focused() bool {
	return a.Model.Focused()
}

// SetValue replaces the typed path.
func (a *AddressBar) SetValue(v string) {
	a.Model.SetValue(v)
}

// Value returns the typed path.
func (a AddressBar) Value() string {
	return a.Model.Value()
}

// Update forwards input to the text field. Enter closes the bar and
// navigates to the typed path; esc closes it without navigating.
func (a AddressBar) Update(msg tea.Msg) (AddressBar, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			path := strings.TrimSpace(a.Model.Value())
			a.Close()
			if path == "" {
				return a, nil
			}
			return a, func() tea.Msg { return router.NavigateMsg{Path: path} }
		case "esc":
			a.Close()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the address bar line.
func (a AddressBar) View(width int) string {
	return layout.RenderAddressBar(a.Model.View(), width)
}
