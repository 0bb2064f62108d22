package web

import (
	"bytes"
	"io"
	"net/http"

	"github.com/abhisek/quizdeck/internal/site"
)

type navItem struct {
	Label  string
	Path   string
	Active bool
}

type pageData struct {
	Title   string
	Message string
	Nav     []navItem
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.serveMatch(w, r, s.table.Match(r.URL.Path))
}

// handleUnrouted resolves paths mux could not match exactly, so case and
// trailing-slash variants still reach their page.
func (s *Server) handleUnrouted(w http.ResponseWriter, r *http.Request) {
	m := s.table.Match(r.URL.Path)
	if m.Found && r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, r)
		return
	}
	s.serveMatch(w, r, m)
}

func (s *Server) serveMatch(w http.ResponseWriter, r *http.Request, m site.Match) {
	page := m.Route.Page
	if target, ok := page.MountRedirect(m.Path); ok {
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	status := http.StatusOK
	if !m.Found {
		status = http.StatusNotFound
	}

	data := pageData{
		Title:   page.Title,
		Message: page.Message,
	}
	if !m.Route.Bare {
		for _, l := range site.NavLinks() {
			data.Nav = append(data.Nav, navItem{
				Label:  l.Label,
				Path:   l.Path,
				Active: site.Normalize(l.Path) == m.Path,
			})
		}
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("render page",
			"path", m.Path,
			"page", page.ID,
			"error", err,
			"request_id", RequestIDFrom(r.Context()),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// methodNotAllowed answers non-GET requests for page and asset paths.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func staticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000")
		next.ServeHTTP(w, r)
	})
}
