package mastery

import "math"

// Fixed Bayesian Knowledge Tracing parameters. All strictly inside (0,1).
const (
	PGuess = 0.2
	PSlip  = 0.1
	PLearn = 0.3
)

// DefaultPrior is the mastery probability assigned to new learners.
const DefaultPrior = 0.1

// Estimator tracks P(skill known) for a single learner using Bayesian
// Knowledge Tracing. The internal estimate keeps full floating precision;
// only the value returned by Update is rounded for display.
type Estimator struct {
	pKnown float64
}

// NewEstimator creates an Estimator seeded from a stored prior.
// The prior is clamped to [0,1] so a damaged profile cannot push the
// estimate out of range.
func NewEstimator(prior float64) *Estimator {
	return &Estimator{pKnown: clamp01(prior)}
}

// Update folds one correctness observation into the estimate and returns
// the new mastery probability rounded to 3 decimals for display.
//
// The Bayesian step is skipped when its denominator is zero. That cannot
// happen with the parameters above, but the guard is part of the model's
// contract. The learning transfer is applied unconditionally.
func (e *Estimator) Update(correct bool) float64 {
	var num, den float64
	if correct {
		num = e.pKnown * (1 - PSlip)
		den = num + (1-e.pKnown)*PGuess
	} else {
		num = e.pKnown * PSlip
		den = num + (1-e.pKnown)*(1-PGuess)
	}

	if den != 0 {
		e.pKnown = num / den
	}

	e.pKnown += (1 - e.pKnown) * PLearn
	return round3(e.pKnown)
}

// PKnown returns the full-precision mastery estimate. This is the value
// that gets persisted; subsequent updates always start from it, never
// from the rounded display value.
func (e *Estimator) PKnown() float64 {
	return e.pKnown
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
