package practice

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"geotutor/internal/geometry"
	"geotutor/internal/problemgen"
	"geotutor/internal/profile"
	"geotutor/internal/screen"
	"geotutor/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPracticeScreen(t *testing.T) *PracticeScreen {
	t.Helper()
	store := profile.NewStore(filepath.Join(t.TempDir(), "students_data.json"))
	orch := session.New(store, problemgen.New(nil))
	if _, err := orch.Identify("S1"); err != nil {
		t.Fatalf("identify: %v", err)
	}

	p := New(orch)
	p.Init()
	return p
}

func TestPracticeScreen_Title(t *testing.T) {
	p := testPracticeScreen(t)
	if p.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", p.Title(), "Practice")
	}
}

func TestPracticeScreen_InitServesProblem(t *testing.T) {
	p := testPracticeScreen(t)

	problem := p.orch.Current()
	if problem == nil {
		t.Fatal("expected an active problem after Init")
	}
	if problem.Shape != geometry.Triangle {
		t.Errorf("first problem shape = %s, want Triangle", problem.Shape)
	}
}

func TestPracticeScreen_ShapeSwitch(t *testing.T) {
	p := testPracticeScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('s'))
	ps := scr.(*PracticeScreen)

	if ps.shape != geometry.Square {
		t.Errorf("shape = %s, want Square", ps.shape)
	}
	if ps.orch.Current().Shape != geometry.Square {
		t.Errorf("active problem shape = %s, want Square", ps.orch.Current().Shape)
	}

	scr, _ = ps.Update(keyPress('r'))
	ps = scr.(*PracticeScreen)
	if ps.shape != geometry.Rectangle {
		t.Errorf("shape = %s, want Rectangle", ps.shape)
	}
}

func TestPracticeScreen_CorrectSubmitShowsFeedback(t *testing.T) {
	p := testPracticeScreen(t)
	problem := p.orch.Current()

	p.input.Model.SetValue(formatArea(problem.CorrectArea))

	var scr screen.Screen = p
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.feedback == nil {
		t.Fatal("expected feedback after submit")
	}
	if !ps.feedback.Correct {
		t.Error("expected correct answer")
	}
	if cmd == nil {
		t.Error("expected annotation command after submit")
	}
}

func TestPracticeScreen_InvalidAnswerShowsError(t *testing.T) {
	p := testPracticeScreen(t)
	p.input.Model.SetValue("12.3.4")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if ps.feedback != nil {
		t.Error("invalid input should not produce feedback")
	}
	if ps.errMsg == "" {
		t.Error("invalid input should set an error message")
	}
}

func TestPracticeScreen_EmptySubmitIgnored(t *testing.T) {
	p := testPracticeScreen(t)

	var scr screen.Screen = p
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	if cmd != nil {
		t.Error("empty submit should not produce a command")
	}
	if ps.feedback != nil {
		t.Error("empty submit should not produce feedback")
	}
}

func TestPracticeScreen_FeedbackDismissServesNext(t *testing.T) {
	p := testPracticeScreen(t)
	p.input.Model.SetValue("0")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)
	if ps.feedback == nil {
		t.Fatal("expected feedback after submit")
	}

	scr, _ = ps.Update(keyPress(' '))
	ps = scr.(*PracticeScreen)
	if ps.feedback != nil {
		t.Error("feedback should be cleared after dismiss")
	}
	if ps.orch.Current() == nil {
		t.Error("expected a fresh problem after dismiss")
	}
	if ps.input.Value() != "" {
		t.Errorf("input should be reset, got %q", ps.input.Value())
	}
}

func TestPracticeScreen_ExampleOverlay(t *testing.T) {
	p := testPracticeScreen(t)

	var scr screen.Screen = p
	_, cmd := scr.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("expected example command")
	}

	msg := cmd()
	ready, ok := msg.(exampleReadyMsg)
	if !ok {
		t.Fatalf("expected exampleReadyMsg, got %T", msg)
	}
	if ready.Example == nil || ready.Example.Problem == nil {
		t.Fatal("expected a worked example")
	}
	if ready.Example.Explanation == "" {
		t.Error("expected a formula explanation")
	}

	scr, _ = p.Update(msg)
	ps := scr.(*PracticeScreen)
	if ps.example == nil {
		t.Fatal("expected example overlay")
	}

	view := ps.View(80, 24)
	if !strings.Contains(view, "Worked example") {
		t.Error("view should show the worked example")
	}

	scr, _ = ps.Update(keyPress(' '))
	ps = scr.(*PracticeScreen)
	if ps.example != nil {
		t.Error("example overlay should be dismissed")
	}
}

func TestPracticeScreen_AnnotationMsg(t *testing.T) {
	p := testPracticeScreen(t)
	p.input.Model.SetValue("0")

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)

	scr, _ = ps.Update(annotationMsg{Note: "The rule for Triangle applies."})
	ps = scr.(*PracticeScreen)
	if ps.note != "The rule for Triangle applies." {
		t.Errorf("note = %q", ps.note)
	}

	view := ps.View(80, 24)
	if !strings.Contains(view, "The rule for Triangle applies.") {
		t.Error("feedback view should include the advisor note")
	}
}

func TestPracticeScreen_KeyHints(t *testing.T) {
	p := testPracticeScreen(t)

	hints := p.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func formatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
