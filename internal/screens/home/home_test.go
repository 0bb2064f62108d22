package home

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/quizdeck/internal/router"
)

func TestInitAtRootRedirectsHome(t *testing.T) {
	h := New("/")

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a redirect command when mounted at /")
	}
	msg, ok := cmd().(router.ReplaceMsg)
	if !ok {
		t.Fatalf("expected ReplaceMsg, got %T", cmd())
	}
	if msg.Path != "/home" {
		t.Errorf("expected redirect to /home, got %q", msg.Path)
	}
	if msg.From != "/" {
		t.Errorf("expected redirect from /, got %q", msg.From)
	}
}

func TestInitRunsOnce(t *testing.T) {
	h := New("/")
	h.Init()

	if cmd := h.Init(); cmd != nil {
		t.Error("second Init should not redirect again")
	}
}

func TestInitAtHomeDoesNotRedirect(t *testing.T) {
	h := New("/home")
	if cmd := h.Init(); cmd != nil {
		t.Error("home mounted at /home should not redirect")
	}
}

func TestView(t *testing.T) {
	h := New("/home")
	view := ansi.Strip(h.View(80, 20))
	if !contains(view, "Home") {
		t.Errorf("expected view to contain 'Home', got %q", view)
	}
	if h.Title() != "Home" {
		t.Errorf("expected title 'Home', got %q", h.Title())
	}
	if h.View(80, 20) != h.View(80, 20) {
		t.Error("view should be stable across renders")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
