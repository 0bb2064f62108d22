package site

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned for route paths that are empty, relative
	// or contain a wildcard.
	ErrInvalidPath = errors.New("invalid route path")

	// ErrDuplicateRoute is returned when two routes normalize to the same path.
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrMissingPage is returned for routes without a page ID.
	ErrMissingPage = errors.New("route has no page")
)

// RouteError describes a route table entry that failed validation.
type RouteError struct {
	Path string
	Err  error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route %q: %v", e.Path, e.Err)
}

func (e *RouteError) Unwrap() error { return e.Err }
