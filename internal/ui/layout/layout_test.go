package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizdeck/internal/site"
)

func TestRenderNavBarShowsBothLinks(t *testing.T) {
	for _, path := range []string{"/home", "/about", "/play", "/nonexistent"} {
		bar := ansi.Strip(RenderNavBar(site.NavLinks(), path, 0, 80))
		assert.Equal(t, 1, strings.Count(bar, "Home"), path)
		assert.Equal(t, 1, strings.Count(bar, "About"), path)
	}
}

func TestRenderNavBarMarksSelection(t *testing.T) {
	bar := ansi.Strip(RenderNavBar(site.NavLinks(), "/home", 1, 80))
	assert.Contains(t, bar, "▸ About")
	assert.NotContains(t, bar, "▸ Home")
}

func TestRenderNavBarIsStable(t *testing.T) {
	a := RenderNavBar(site.NavLinks(), "/about", 0, 80)
	b := RenderNavBar(site.NavLinks(), "/about", 0, 80)
	assert.Equal(t, a, b)
}

func TestRenderTitleBar(t *testing.T) {
	bar := ansi.Strip(RenderTitleBar("About", 80))
	assert.Contains(t, bar, "Quizdeck")
	assert.Contains(t, bar, "About")
}

func TestRenderFooter(t *testing.T) {
	footer := ansi.Strip(RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80))
	assert.Contains(t, footer, "Esc Back")
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}
