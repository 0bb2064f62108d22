package site

// PageID identifies a page component.
type PageID string

const (
	PageHome     PageID = "home"
	PageQuizMenu PageID = "quiz-menu"
	PagePlay     PageID = "play"
	PageEdit     PageID = "edit"
	PageAbout    PageID = "about"
	PageError    PageID = "error"
)

// Page is the static content a route mounts.
type Page struct {
	ID PageID

	// Title names the page in headers and document titles.
	Title string

	// Message is the placeholder text shown under the logo.
	Message string

	// RedirectTo, when set, is the path the page navigates to once on
	// mount unless it was already mounted there.
	RedirectTo string
}

// Canonical pages.
var (
	Home = Page{
		ID:         PageHome,
		Title:      "Home",
		Message:    "Home",
		RedirectTo: HomePath,
	}
	QuizMenu = Page{
		ID:      PageQuizMenu,
		Title:   "My Quizzes",
		Message: "My Quizzes",
	}
	Play = Page{
		ID:      PagePlay,
		Title:   "Play Saved Quiz",
		Message: "Play",
	}
	Edit = Page{
		ID:      PageEdit,
		Title:   "Edit Saved Quiz",
		Message: "Edit",
	}
	About = Page{
		ID:      PageAbout,
		Title:   "About",
		Message: "About",
	}
	NotFound = Page{
		ID:      PageError,
		Title:   "Not Found",
		Message: "Oops! This link does not exist. Please go back to home.",
	}
)

// MountRedirect reports where the page navigates when mounted at path.
// The effect is a single replace navigation; a page mounted at its own
// redirect target stays put.
func (p Page) MountRedirect(path string) (string, bool) {
	if p.RedirectTo == "" {
		return "", false
	}
	if Normalize(path) == Normalize(p.RedirectTo) {
		return "", false
	}
	return p.RedirectTo, true
}

// NavLink is a single Navigation Bar entry.
type NavLink struct {
	Label string
	Path  string
}

// NavLinks returns the Navigation Bar links in display order.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Path: HomePath},
		{Label: "About", Path: AboutPath},
	}
}
