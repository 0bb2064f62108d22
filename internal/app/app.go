package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/screens/page"
	"github.com/abhisek/quizdeck/internal/site"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Options configures the terminal client.
type Options struct {
	Table     *site.Table
	StartPath string
	Logger    *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	nav     components.NavBar
	address components.AddressBar
	logger  *slog.Logger
	width   int
	height  int
}

// newScreen mounts the page component for a match.
func newScreen(m site.Match) screen.Screen {
	if m.Route.Page.ID == site.PageHome {
		return home.New(m.Path)
	}
	return page.New(m.Route.Page)
}

// newAppModel creates a new AppModel opened at the start path.
func newAppModel(opts Options) AppModel {
	table := opts.Table
	if table == nil {
		table = site.DefaultTable()
	}
	start := opts.StartPath
	if start == "" {
		start = site.RootPath
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return AppModel{
		router:  router.New(table, newScreen, start),
		nav:     components.NewNavBar(site.NavLinks()),
		address: components.NewAddressBar(),
		logger:  logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	m.logMount()
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.NavigateMsg, router.ReplaceMsg, router.BackMsg:
		cmd := m.router.Update(msg)
		m.logMount()
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.address.Focused() {
			var cmd tea.Cmd
			m.address, cmd = m.address.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "g", "/":
			return m, m.address.Open(m.router.Path())
		case "esc", "backspace":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.BackMsg{} }
			}
			return m, nil
		case "tab", "shift+tab", "left", "right", "h", "l", "enter":
			if !m.router.Match().Route.Bare {
				var cmd tea.Cmd
				m.nav, cmd = m.nav.Update(msg)
				return m, cmd
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) logMount() {
	match := m.router.Match()
	m.logger.Debug("page mounted",
		"path", match.Path,
		"page", match.Route.Page.ID,
		"found", match.Found,
		"depth", m.router.Depth(),
	)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the frame: Navigation Bar, the mounted page, the optional
// address bar and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	match := m.router.Match()

	var header string
	if match.Route.Bare {
		title := ""
		if active := m.router.Active(); active != nil {
			title = active.Title()
		}
		header = layout.RenderTitleBar(title, m.width)
	} else {
		header = m.nav.View(match.Path, m.width)
	}

	var footerHints []layout.KeyHint
	if m.address.Focused() {
		footerHints = []layout.KeyHint{
			{Key: "Enter", Description: "Go"},
			{Key: "Esc", Description: "Cancel"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "←→", Description: "Links"},
			{Key: "Enter", Description: "Follow"},
			{Key: "g", Description: "Go to path"},
		}
		if m.router.Depth() > 1 {
			footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
		footerHints = append(footerHints, layout.KeyHint{Key: "q", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)
	if m.address.Focused() {
		footer = m.address.View(m.width) + "\n" + footer
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
