package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func TestAddressBarOpenPrefillsPath(t *testing.T) {
	a := NewAddressBar()
	require.False(t, a.Focused())

	a.Open("/about")
	assert.True(t, a.Focused())
	assert.Equal(t, "/about", a.Value())
}

func TestAddressBarEnterNavigates(t *testing.T) {
	a := NewAddressBar()
	a.Open("/")
	a.SetValue("  /nonexistent ")

	a, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.NavigateMsg{Path: "/nonexistent"}, cmd())
	assert.False(t, a.Focused())
}

func TestAddressBarEmptyEnterDoesNothing(t *testing.T) {
	a := NewAddressBar()
	a.Open("")

	a, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, a.Focused())
}

func TestAddressBarEscCancels(t *testing.T) {
	a := NewAddressBar()
	a.Open("/play")

	a, cmd := a.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.False(t, a.Focused())
}

func TestAddressBarView(t *testing.T) {
	a := NewAddressBar()
	a.Open("/edit")
	view := ansi.Strip(a.View(60))
	assert.True(t, strings.HasPrefix(view, "  Go to: "), view)
}

func TestRenderPageBody(t *testing.T) {
	body := ansi.Strip(RenderPageBody("My Quizzes", theme.Body, 80, 20))
	assert.Contains(t, body, "My Quizzes")
	assert.Contains(t, body, "◉")
}
