package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const logoArt = `    ╭───╮
╭───┼───┼───╮
│ ╲ │ ◉ │ ╱ │
╰───┼───┼───╯
    ╰───╯`

// RenderLogo returns the logo art every page shows above its text.
func RenderLogo() string {
	return lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(logoArt)
}

// RenderPageBody renders the logo with the page message beneath it in
// style, centered in the content area.
func RenderPageBody(message string, style lipgloss.Style, width, height int) string {
	body := RenderLogo() + "\n\n" + style.Render(message)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
