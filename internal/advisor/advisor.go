// Package advisor holds the optional semantic-reasoning collaborator.
// Advisors annotate problems with inferred explanations for display;
// they never participate in grading, mastery, or difficulty decisions,
// and every failure degrades to "no annotation".
package advisor

import (
	"context"
	"fmt"
	"os"

	"geotutor/internal/problemgen"
)

// Advisor produces an advisory annotation for a problem.
type Advisor interface {
	// Annotate returns an explanation note for the problem, or an
	// error when no annotation can be inferred.
	Annotate(ctx context.Context, p *problemgen.Problem) (string, error)
}

// Boundary wraps an Advisor with the error policy the tutor requires:
// a failing advisor logs once and is silently disabled for the rest of
// the process. Annotate on a disabled (or nil) advisor returns "".
type Boundary struct {
	name     string
	inner    Advisor
	disabled bool
}

// NewBoundary wraps inner. A nil inner yields a permanently quiet boundary.
func NewBoundary(name string, inner Advisor) *Boundary {
	return &Boundary{name: name, inner: inner, disabled: inner == nil}
}

// Annotate returns the inner advisor's annotation, or "" when the
// advisor is absent, disabled, or fails.
func (b *Boundary) Annotate(ctx context.Context, p *problemgen.Problem) string {
	if b == nil || b.disabled {
		return ""
	}
	note, err := b.inner.Annotate(ctx, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s advisor failed (%v); annotations disabled\n", b.name, err)
		b.disabled = true
		return ""
	}
	return note
}

// Enabled reports whether the boundary can still produce annotations.
func (b *Boundary) Enabled() bool {
	return b != nil && !b.disabled
}
