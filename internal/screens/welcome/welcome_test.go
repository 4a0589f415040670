package welcome

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"geotutor/internal/problemgen"
	"geotutor/internal/profile"
	"geotutor/internal/router"
	"geotutor/internal/screen"
	"geotutor/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "practice" }
func (s *stubScreen) Title() string                           { return "Practice" }

func newTestWelcome(t *testing.T) (*WelcomeScreen, *session.Orchestrator, *int) {
	t.Helper()
	store := profile.NewStore(filepath.Join(t.TempDir(), "students_data.json"))
	orch := session.New(store, problemgen.New(nil))

	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(orch, factory), orch, &callCount
}

func TestSubmitEmptyShowsError(t *testing.T) {
	w, orch, callCount := newTestWelcome(t)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty submit should not produce a command")
	}
	if w.errMsg == "" {
		t.Error("empty submit should set an error message")
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called, got %d", *callCount)
	}
	if orch.LearnerID() != "" {
		t.Errorf("no learner should be identified, got %q", orch.LearnerID())
	}
}

func TestSubmitIdentifiesAndReplaces(t *testing.T) {
	w, orch, callCount := newTestWelcome(t)
	w.input.Model.SetValue("S1")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from submit")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
	if orch.LearnerID() != "S1" {
		t.Errorf("expected learner S1, got %q", orch.LearnerID())
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	w, orch, _ := newTestWelcome(t)
	w.input.Model.SetValue("  S1  ")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from submit")
	}
	if orch.LearnerID() != "S1" {
		t.Errorf("expected learner S1, got %q", orch.LearnerID())
	}
}

func TestViewShowsPrompt(t *testing.T) {
	w, _, _ := newTestWelcome(t)

	view := w.View(80, 24)
	if !strings.Contains(view, "Who's practicing today?") {
		t.Error("view should show the learner prompt")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _, _ := newTestWelcome(t)
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
