package site

import (
	"path"
	"strings"
)

const (
	RootPath     = "/"
	HomePath     = "/home"
	QuizMenuPath = "/my-quizzes"
	PlayPath     = "/play"
	EditPath     = "/edit"
	AboutPath    = "/about"

	// Wildcard is the display pattern of the fallback route.
	Wildcard = "*"
)

// Route maps a path to exactly one page.
type Route struct {
	Path string
	Page Page

	// Bare routes render without the Navigation Bar.
	Bare bool
}

// Match is the outcome of resolving a path against a Table.
type Match struct {
	// Path is the normalized requested path.
	Path  string
	Route Route

	// Found is false when the fallback route was selected.
	Found bool
}

// Table is an immutable path-to-page mapping with a catch-all fallback.
type Table struct {
	routes   []Route
	index    map[string]int
	fallback Route
}

// NewTable validates routes and builds a Table. Paths are matched after
// Normalize, so two routes differing only in case or trailing slash collide.
func NewTable(fallback Page, routes ...Route) (*Table, error) {
	if fallback.ID == "" {
		return nil, &RouteError{Path: Wildcard, Err: ErrMissingPage}
	}

	t := &Table{
		routes:   make([]Route, 0, len(routes)),
		index:    make(map[string]int, len(routes)),
		fallback: Route{Path: Wildcard, Page: fallback},
	}
	for _, r := range routes {
		if r.Path == "" || !strings.HasPrefix(r.Path, "/") || strings.ContainsAny(r.Path, "*?#") {
			return nil, &RouteError{Path: r.Path, Err: ErrInvalidPath}
		}
		if r.Page.ID == "" {
			return nil, &RouteError{Path: r.Path, Err: ErrMissingPage}
		}
		key := Normalize(r.Path)
		if _, dup := t.index[key]; dup {
			return nil, &RouteError{Path: r.Path, Err: ErrDuplicateRoute}
		}
		t.index[key] = len(t.routes)
		t.routes = append(t.routes, r)
	}
	return t, nil
}

// DefaultTable returns the application's route table.
func DefaultTable() *Table {
	t, err := NewTable(NotFound,
		Route{Path: RootPath, Page: Home},
		Route{Path: HomePath, Page: Home},
		Route{Path: QuizMenuPath, Page: QuizMenu},
		Route{Path: PlayPath, Page: Play},
		Route{Path: EditPath, Page: Edit},
		Route{Path: AboutPath, Page: About},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Match resolves p to exactly one route. Unmatched paths select the
// fallback with Found set to false.
func (t *Table) Match(p string) Match {
	key := Normalize(p)
	if i, ok := t.index[key]; ok {
		return Match{Path: key, Route: t.routes[i], Found: true}
	}
	return Match{Path: key, Route: t.fallback}
}

// Routes returns the table entries in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Fallback returns the catch-all route.
func (t *Table) Fallback() Route {
	return t.fallback
}

// Normalize reduces a request path to its matching key: query and fragment
// are dropped, dot segments resolved, the trailing slash removed and the
// result lower-cased.
func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return RootPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.ToLower(path.Clean(p))
}
