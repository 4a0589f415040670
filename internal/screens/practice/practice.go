// Package practice implements the main tutoring screen: one problem at
// a time, graded on submit, with mastery and difficulty feedback
// between problems.
package practice

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"geotutor/internal/geometry"
	"geotutor/internal/problemgen"
	"geotutor/internal/screen"
	"geotutor/internal/session"
	"geotutor/internal/ui/components"
	"geotutor/internal/ui/layout"
)

// PracticeScreen implements screen.Screen for the practice loop.
type PracticeScreen struct {
	orch  *session.Orchestrator
	shape geometry.Kind
	input components.TextInput

	// Feedback state after a graded answer.
	feedback *session.Result
	answered *problemgen.Problem
	note     string

	// Worked-example overlay.
	example *session.Example

	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen. The orchestrator must already have an
// identified learner.
func New(orch *session.Orchestrator) *PracticeScreen {
	return &PracticeScreen{
		orch:  orch,
		shape: geometry.Triangle,
		input: components.NewTextInput("Type the area...", true, 12),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	if _, err := p.orch.NewProblem(p.shape); err != nil {
		p.errMsg = err.Error()
	}
	return p.input.Init()
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.example != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to practice"},
		}
	}
	if p.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next problem"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "t/s/r", Description: "Switch shape"},
		{Key: "e", Description: "Worked example"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case annotationMsg:
		p.note = msg.Note
		return p, nil

	case exampleReadyMsg:
		p.example = msg.Example
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Example overlay: any key returns to the question.
	if p.example != nil {
		p.example = nil
		return p, nil
	}

	// Feedback: any key moves on to the next problem.
	if p.feedback != nil {
		return p, p.nextProblem(p.shape)
	}

	switch msg.String() {
	case "enter":
		return p, p.submit()
	case "t":
		return p, p.nextProblem(geometry.Triangle)
	case "s":
		return p, p.nextProblem(geometry.Square)
	case "r":
		return p, p.nextProblem(geometry.Rectangle)
	case "e":
		return p, p.loadExample()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// submit grades the current input.
func (p *PracticeScreen) submit() tea.Cmd {
	if p.input.Value() == "" {
		return nil
	}

	res, err := p.orch.SubmitAnswer(context.Background(), p.input.Value())
	if err != nil {
		var invalid *session.InvalidAnswerError
		if errors.As(err, &invalid) {
			p.errMsg = "That doesn't look like a number. Try again."
			return nil
		}
		p.errMsg = err.Error()
		return nil
	}

	p.errMsg = ""
	p.answered = p.orch.Current()
	p.feedback = res
	p.note = ""

	return p.loadAnnotation()
}

// nextProblem clears feedback and serves a fresh problem for shape.
func (p *PracticeScreen) nextProblem(shape geometry.Kind) tea.Cmd {
	p.shape = shape
	p.feedback = nil
	p.answered = nil
	p.note = ""
	p.errMsg = ""
	p.input.Reset()

	if _, err := p.orch.NewProblem(shape); err != nil {
		p.errMsg = err.Error()
		return nil
	}
	return p.input.Init()
}

// loadAnnotation fetches the advisor's note for the graded problem.
// The advisor may call out to a reasoner or a model, so it runs as a
// command rather than inline.
func (p *PracticeScreen) loadAnnotation() tea.Cmd {
	orch := p.orch
	return func() tea.Msg {
		return annotationMsg{Note: orch.Annotate(context.Background())}
	}
}

// loadExample fetches a worked example for the current shape.
func (p *PracticeScreen) loadExample() tea.Cmd {
	orch := p.orch
	shape := p.shape
	return func() tea.Msg {
		return exampleReadyMsg{Example: orch.Example(context.Background(), shape)}
	}
}
