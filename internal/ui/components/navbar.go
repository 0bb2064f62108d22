package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/site"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// NavBar is the keyboard-driven Navigation Bar.
type NavBar struct {
	Links    []site.NavLink
	Selected int
}

// NewNavBar creates a NavBar over the given links with the first selected.
func NewNavBar(links []site.NavLink) NavBar {
	return NavBar{Links: links}
}

// Update moves the selection and follows the selected link on enter.
func (n NavBar) Update(msg tea.Msg) (NavBar, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(n.Links) == 0 {
		return n, nil
	}

	switch kmsg.String() {
	case "right", "l", "tab":
		n.Selected = (n.Selected + 1) % len(n.Links)
	case "left", "h", "shift+tab":
		n.Selected = (n.Selected - 1 + len(n.Links)) % len(n.Links)
	case "enter":
		if n.Selected >= 0 && n.Selected < len(n.Links) {
			path := n.Links[n.Selected].Path
			return n, func() tea.Msg { return router.NavigateMsg{Path: path} }
		}
	}

	return n, nil
}

// View renders the bar for the page at activePath.
func (n NavBar) View(activePath string, width int) string {
	return layout.RenderNavBar(n.Links, activePath, n.Selected, width)
}
