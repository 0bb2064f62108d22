package screen

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is a mounted page component.
type Screen interface {
	// Init runs the screen's mount effects. The router calls it once per mount.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the page content (excluding navigation and footer).
	View(width, height int) string

	// Title returns the page name for the title bar.
	Title() string
}
