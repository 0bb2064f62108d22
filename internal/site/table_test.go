package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableMatch(t *testing.T) {
	tests := []struct {
		path      string
		wantPage  PageID
		wantText  string
		wantFound bool
	}{
		{"/", PageHome, "Home", true},
		{"/home", PageHome, "Home", true},
		{"/my-quizzes", PageQuizMenu, "My Quizzes", true},
		{"/play", PagePlay, "Play", true},
		{"/edit", PageEdit, "Edit", true},
		{"/about", PageAbout, "About", true},
		{"/nonexistent", PageError, "Oops! This link does not exist. Please go back to home.", false},
		{"/home/extra", PageError, NotFound.Message, false},
	}

	table := DefaultTable()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := table.Match(tt.path)
			assert.Equal(t, tt.wantPage, m.Route.Page.ID)
			assert.Equal(t, tt.wantText, m.Route.Page.Message)
			assert.Equal(t, tt.wantFound, m.Found)
		})
	}
}

func TestMatchNormalizesPath(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		path     string
		wantPath string
		wantPage PageID
	}{
		{"/HOME", "/home", PageHome},
		{"/about/", "/about", PageAbout},
		{"/play?quiz=3", "/play", PagePlay},
		{"/edit#top", "/edit", PageEdit},
		{"", "/", PageHome},
		{"my-quizzes", "/my-quizzes", PageQuizMenu},
		{"/play/../about", "/about", PageAbout},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m := table.Match(tt.path)
			assert.True(t, m.Found)
			assert.Equal(t, tt.wantPath, m.Path)
			assert.Equal(t, tt.wantPage, m.Route.Page.ID)
		})
	}
}

func TestMatchIsIdempotent(t *testing.T) {
	table := DefaultTable()
	for _, p := range []string{"/", "/home", "/about", "/missing"} {
		assert.Equal(t, table.Match(p), table.Match(p))
	}
}

func TestRootAndHomeShareThePage(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, table.Match("/home").Route.Page, table.Match("/").Route.Page)
}

func TestNewTableRejectsInvalidRoutes(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr error
	}{
		{"empty path", []Route{{Path: "", Page: About}}, ErrInvalidPath},
		{"relative path", []Route{{Path: "about", Page: About}}, ErrInvalidPath},
		{"wildcard path", []Route{{Path: "/*", Page: About}}, ErrInvalidPath},
		{"missing page", []Route{{Path: "/about"}}, ErrMissingPage},
		{"duplicate", []Route{{Path: "/about", Page: About}, {Path: "/About/", Page: Home}}, ErrDuplicateRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(NotFound, tt.routes...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var re *RouteError
			require.ErrorAs(t, err, &re)
		})
	}
}

func TestNewTableRequiresFallback(t *testing.T) {
	_, err := NewTable(Page{})
	require.ErrorIs(t, err, ErrMissingPage)
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := DefaultTable()
	routes := table.Routes()
	require.Len(t, routes, 6)

	routes[0].Page = About
	assert.Equal(t, PageHome, table.Routes()[0].Page.ID)
}

func TestFallback(t *testing.T) {
	fb := DefaultTable().Fallback()
	assert.Equal(t, Wildcard, fb.Path)
	assert.Equal(t, PageError, fb.Page.ID)
}
