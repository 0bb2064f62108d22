package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#61DAFB") // Logo Cyan
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	NavBg   = lipgloss.Color("#A1A1A1") // Nav Grey
	NavText = lipgloss.Color("#000000") // Black
	BgCard  = lipgloss.Color("#282C34") // Page Dark
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Body = lipgloss.NewStyle().
		Foreground(Text)

	ErrorText = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Navigation
var (
	NavLink = lipgloss.NewStyle().
		Foreground(NavText)

	NavLinkActive = lipgloss.NewStyle().
			Foreground(NavText).
			Bold(true)

	NavLinkSelected = lipgloss.NewStyle().
			Foreground(NavText).
			Underline(true)
)
