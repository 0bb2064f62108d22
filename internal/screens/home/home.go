package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/site"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// HomeScreen is the landing page. Mounted anywhere but /home it replaces
// itself with /home.
type HomeScreen struct {
	page    site.Page
	path    string
	mounted bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen mounted at path.
func New(path string) *HomeScreen {
	return &HomeScreen{page: site.Home, path: path}
}

// Init fires the mount redirect. It runs once; later calls return nil.
func (h *HomeScreen) Init() tea.Cmd {
	if h.mounted {
		return nil
	}
	h.mounted = true

	target, ok := h.page.MountRedirect(h.path)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceMsg{Path: target, From: h.path}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	return components.RenderPageBody(h.page.Message, theme.Body, width, height)
}

func (h *HomeScreen) Title() string {
	return h.page.Title
}
