// Package session composes the tutoring core: it loads and owns the
// learner population, serves problems at the learner's current
// difficulty, grades answers, updates mastery and difficulty, and
// persists the result after every graded answer.
package session

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"geotutor/internal/advisor"
	"geotutor/internal/difficulty"
	"geotutor/internal/geometry"
	"geotutor/internal/mastery"
	"geotutor/internal/problemgen"
	"geotutor/internal/profile"
	"geotutor/internal/store"
)

// AnswerTolerance is the absolute tolerance for grading: an answer is
// correct when |answer − correctArea| < AnswerTolerance.
const AnswerTolerance = 0.1

// Result is what the presentation layer receives after a graded answer.
type Result struct {
	Correct bool

	// Mastery is the display-rounded (3 decimals) mastery probability.
	Mastery float64

	// Difficulty is the level the next problem will be generated at.
	Difficulty difficulty.Level
}

// Example is a side-effect-free worked example.
type Example struct {
	Problem *problemgen.Problem

	// Explanation is the fixed formula string for the shape.
	Explanation string

	// Note is an optional advisory annotation; empty when no reasoning
	// collaborator is available.
	Note string
}

// Orchestrator drives one learner's tutoring session. All operations
// are synchronous; each completes before the next event is accepted.
type Orchestrator struct {
	profiles *profile.Store
	roster   map[string]*profile.Profile
	gen      *problemgen.Generator
	events   store.AnswerEventRepo // nil disables event logging
	advisor  *advisor.Boundary

	learnerID string
	sessionID string
	estimator *mastery.Estimator
	level     difficulty.Level
	current   *problemgen.Problem

	now func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEventRepo enables best-effort answer event logging.
func WithEventRepo(repo store.AnswerEventRepo) Option {
	return func(o *Orchestrator) { o.events = repo }
}

// WithAdvisor attaches the optional reasoning collaborator.
func WithAdvisor(b *advisor.Boundary) Option {
	return func(o *Orchestrator) { o.advisor = b }
}

// WithClock injects the time source for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New creates an Orchestrator. The profile snapshot is loaded once,
// here; the roster is owned by the orchestrator from then on.
func New(profiles *profile.Store, gen *problemgen.Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		profiles:  profiles,
		roster:    profiles.Load(),
		gen:       gen,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Identify selects the active learner, creating a default profile on
// first encounter. The profile's mastery and difficulty seed the
// estimator and the difficulty ladder for this session.
func (o *Orchestrator) Identify(learnerID string) (*profile.Profile, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, fmt.Errorf("learner id must not be empty")
	}

	p, ok := o.roster[learnerID]
	if !ok {
		p = profile.NewProfile(o.now())
		o.roster[learnerID] = p
	}

	o.learnerID = learnerID
	o.estimator = mastery.NewEstimator(p.Mastery)
	o.current = nil

	level, err := difficulty.Parse(string(p.Difficulty))
	if err != nil {
		// A bad stored level is repaired, not fatal.
		fmt.Fprintf(os.Stderr, "warning: %v; resetting %s to %s\n", err, learnerID, difficulty.Default)
		level = difficulty.Default
		p.Difficulty = level
	}
	o.level = level

	return p, nil
}

// LearnerID returns the active learner id, or "" before Identify.
func (o *Orchestrator) LearnerID() string {
	return o.learnerID
}

// Difficulty returns the current difficulty level.
func (o *Orchestrator) Difficulty() difficulty.Level {
	return o.level
}

// Mastery returns the current full-precision mastery estimate.
func (o *Orchestrator) Mastery() float64 {
	if o.estimator == nil {
		return 0
	}
	return o.estimator.PKnown()
}

// Current returns the active problem, or nil.
func (o *Orchestrator) Current() *problemgen.Problem {
	return o.current
}

// NewProblem generates a problem for the shape at the current
// difficulty and makes it the active problem.
func (o *Orchestrator) NewProblem(shape geometry.Kind) (*problemgen.Problem, error) {
	if o.estimator == nil {
		return nil, ErrNotIdentified
	}
	o.current = o.gen.Generate(shape, o.level)
	return o.current, nil
}

// SubmitAnswer grades the raw answer text against the active problem,
// updates mastery and difficulty, and persists the whole profile
// snapshot before returning. A non-numeric answer fails with
// InvalidAnswerError and mutates nothing.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, raw string) (*Result, error) {
	if o.estimator == nil {
		return nil, ErrNotIdentified
	}
	if o.current == nil {
		return nil, ErrNoProblem
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, &InvalidAnswerError{Input: raw}
	}

	correct := abs(value-o.current.CorrectArea) < AnswerTolerance

	displayMastery := o.estimator.Update(correct)
	o.level = o.level.Step(correct)

	p := o.roster[o.learnerID]
	p.Mastery = o.estimator.PKnown()
	p.Difficulty = o.level
	p.Attempts++
	if correct {
		p.Correct++
	}
	p.Touch(o.now())

	// Write-through: the snapshot is saved synchronously on every
	// graded answer. A failed save is observable but not fatal.
	if err := o.profiles.Save(o.roster); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist profiles: %v\n", err)
	}

	o.appendEvent(ctx, value, correct)

	return &Result{
		Correct:    correct,
		Mastery:    displayMastery,
		Difficulty: o.level,
	}, nil
}

// Example generates a worked example for the shape. Always easy
// difficulty; never touches mastery, difficulty, counters, the active
// problem, or persistence.
func (o *Orchestrator) Example(ctx context.Context, shape geometry.Kind) *Example {
	p := o.gen.Generate(shape, difficulty.Easy)
	return &Example{
		Problem:     p,
		Explanation: geometry.Explanation(shape),
		Note:        o.advisor.Annotate(ctx, p),
	}
}

// Annotate asks the reasoning collaborator about the active problem.
// Returns "" when no collaborator is available.
func (o *Orchestrator) Annotate(ctx context.Context) string {
	if o.current == nil {
		return ""
	}
	return o.advisor.Annotate(ctx, o.current)
}

// appendEvent records the graded answer in the event log, best-effort.
func (o *Orchestrator) appendEvent(ctx context.Context, value float64, correct bool) {
	if o.events == nil {
		return
	}
	err := o.events.Append(ctx, store.AnswerEventData{
		SessionID:    o.sessionID,
		LearnerID:    o.learnerID,
		Shape:        string(o.current.Shape),
		Difficulty:   string(o.current.Difficulty),
		Answer:       value,
		CorrectArea:  o.current.CorrectArea,
		Correct:      correct,
		MasteryAfter: o.estimator.PKnown(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: log answer event: %v\n", err)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
