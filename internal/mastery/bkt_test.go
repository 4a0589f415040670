package mastery

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestUpdate_CorrectRaisesEstimate(t *testing.T) {
	e := NewEstimator(DefaultPrior)
	// Bayesian: num = 0.1*0.9 = 0.09, den = 0.09 + 0.9*0.2 = 0.27
	// posterior = 1/3; transfer: 1/3 + 2/3*0.3 = 0.5333...
	got := e.Update(true)
	if !almostEqual(got, 0.533) {
		t.Errorf("Update(true) = %f, want 0.533", got)
	}
	if !almostEqual(e.PKnown(), 0.5333333333) {
		t.Errorf("PKnown = %f, want 0.533333...", e.PKnown())
	}
}

func TestUpdate_IncorrectLowersPosterior(t *testing.T) {
	e := NewEstimator(0.5)
	// num = 0.5*0.1 = 0.05, den = 0.05 + 0.5*0.8 = 0.45
	// posterior = 1/9; transfer: 1/9 + 8/9*0.3 = 0.37777...
	got := e.Update(false)
	if !almostEqual(got, 0.378) {
		t.Errorf("Update(false) = %f, want 0.378", got)
	}
}

func TestUpdate_ReturnsRoundedKeepsFullPrecision(t *testing.T) {
	e := NewEstimator(DefaultPrior)
	display := e.Update(true)
	if display != round3(display) {
		t.Errorf("display value %f is not 3-decimal rounded", display)
	}
	if e.PKnown() == display {
		// The internal state must not be the rounded value (it differs
		// in digits beyond the third decimal for this input).
		t.Errorf("internal state %f equals rounded display value", e.PKnown())
	}
}

func TestUpdate_StaysInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, prior := range []float64{0, 0.001, 0.1, 0.5, 0.999, 1} {
		e := NewEstimator(prior)
		for range 200 {
			got := e.Update(rng.IntN(2) == 0)
			if got < 0 || got > 1 {
				t.Fatalf("display mastery %f out of [0,1] (prior %f)", got, prior)
			}
			if e.PKnown() < 0 || e.PKnown() > 1 {
				t.Fatalf("pKnown %f out of [0,1] (prior %f)", e.PKnown(), prior)
			}
		}
	}
}

func TestUpdate_MasteryConvergesUnderCorrectStreak(t *testing.T) {
	e := NewEstimator(DefaultPrior)
	var last float64
	for range 10 {
		last = e.Update(true)
	}
	if last < 0.99 {
		t.Errorf("mastery after 10 correct = %f, want > 0.99", last)
	}
}

func TestNewEstimator_ClampsPrior(t *testing.T) {
	if e := NewEstimator(-0.5); e.PKnown() != 0 {
		t.Errorf("prior -0.5 clamped to %f, want 0", e.PKnown())
	}
	if e := NewEstimator(1.5); e.PKnown() != 1 {
		t.Errorf("prior 1.5 clamped to %f, want 1", e.PKnown())
	}
}
