package page

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/site"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// PageScreen renders a static page: the logo and its placeholder text.
type PageScreen struct {
	page site.Page
}

var _ screen.Screen = (*PageScreen)(nil)

// New creates a new PageScreen for p.
func New(p site.Page) *PageScreen {
	return &PageScreen{page: p}
}

func (p *PageScreen) Init() tea.Cmd {
	return nil
}

func (p *PageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PageScreen) View(width, height int) string {
	style := theme.Body
	if p.page.ID == site.PageError {
		style = theme.ErrorText
	}
	return components.RenderPageBody(p.page.Message, style, width, height)
}

func (p *PageScreen) Title() string {
	return p.page.Title
}
