package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/site"
)

// NavigateMsg requests navigation to a path, adding a history entry.
type NavigateMsg struct {
	Path string
}

// ReplaceMsg requests navigation to a path in place of the current entry.
// A non-empty From limits the replace to an active entry at that path, so a
// replace issued by a screen is dropped once the user has moved on.
type ReplaceMsg struct {
	Path string
	From string
}

// BackMsg requests the previous history entry.
type BackMsg struct{}

// Factory builds the screen mounted for a match.
type Factory func(m site.Match) screen.Screen

type entry struct {
	match  site.Match
	screen screen.Screen
}

// Router resolves paths against a route table and keeps a history of
// mounted screens. Exactly one screen is active at a time.
type Router struct {
	table   *site.Table
	factory Factory
	stack   []entry
}

// New creates a Router whose first entry is the screen matched for path.
// The initial screen is mounted by Init.
func New(table *site.Table, factory Factory, path string) *Router {
	r := &Router{table: table, factory: factory}
	r.stack = []entry{r.resolve(path)}
	return r
}

func (r *Router) resolve(path string) entry {
	m := r.table.Match(path)
	return entry{match: m, screen: r.factory(m)}
}

// Init mounts the initial screen.
func (r *Router) Init() tea.Cmd {
	active := r.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

// Navigate mounts the screen for path on top of the history.
func (r *Router) Navigate(path string) tea.Cmd {
	e := r.resolve(path)
	r.stack = append(r.stack, e)
	return e.screen.Init()
}

// Replace mounts the screen for path in place of the active entry.
func (r *Router) Replace(path string) tea.Cmd {
	e := r.resolve(path)
	if len(r.stack) == 0 {
		r.stack = append(r.stack, e)
	} else {
		r.stack[len(r.stack)-1] = e
	}
	return e.screen.Init()
}

// Back removes the active entry. No-op if history depth would become 0.
// The revealed screen is not mounted again.
func (r *Router) Back() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the mounted screen.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1].screen
}

// Match returns the match of the active entry.
func (r *Router) Match() site.Match {
	if len(r.stack) == 0 {
		return site.Match{}
	}
	return r.stack[len(r.stack)-1].match
}

// Path returns the normalized path of the active entry.
func (r *Router) Path() string {
	return r.Match().Path
}

// Depth returns the number of history entries.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.Path)
	case ReplaceMsg:
		if msg.From != "" && r.Path() != site.Normalize(msg.From) {
			return nil
		}
		return r.Replace(msg.Path)
	case BackMsg:
		return r.Back()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1].screen = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
