package problemgen

import (
	"math"
	"math/rand/v2"

	"geotutor/internal/difficulty"
	"geotutor/internal/geometry"
)

// Generator samples problems from the per-(shape, difficulty) tables.
// The random source is injected so tests can seed it; generation is
// deterministic for a seeded source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator using the given random source. A nil source
// falls back to an unseeded one.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate samples a problem for the given shape and difficulty.
//
// Sampling tables:
//
//	easy:   triangle b,h ∈ [3,8] int; square s ∈ [3,8] int; rectangle l ∈ [4,8], w ∈ [3,6] int
//	medium: triangle b ∈ [6,12] int, h ∈ [5,10] real→1dp; square s ∈ [7,15] int;
//	        rectangle l ∈ [8,15], w ∈ [5,10] int
//	hard:   all dimensions real, rounded to 1dp before the area is computed
//
// The correct area is always the closed-form formula applied to the
// dimensions carried on the problem, rounded to 2 decimals.
func (g *Generator) Generate(shape geometry.Kind, level difficulty.Level) *Problem {
	dims := map[string]float64{}

	switch level {
	case difficulty.Medium:
		switch shape {
		case geometry.Triangle:
			dims[geometry.DimBase] = g.intBetween(6, 12)
			dims[geometry.DimHeight] = round1(g.realBetween(5, 10))
		case geometry.Square:
			dims[geometry.DimSide] = g.intBetween(7, 15)
		case geometry.Rectangle:
			dims[geometry.DimLength] = g.intBetween(8, 15)
			dims[geometry.DimWidth] = g.intBetween(5, 10)
		}

	case difficulty.Hard:
		switch shape {
		case geometry.Triangle:
			dims[geometry.DimBase] = round1(g.realBetween(8, 20))
			dims[geometry.DimHeight] = round1(g.realBetween(6, 15))
		case geometry.Square:
			dims[geometry.DimSide] = round1(g.realBetween(10, 25))
		case geometry.Rectangle:
			dims[geometry.DimLength] = round1(g.realBetween(10, 30))
			dims[geometry.DimWidth] = round1(g.realBetween(5, 15))
		}

	default: // easy
		switch shape {
		case geometry.Triangle:
			dims[geometry.DimBase] = g.intBetween(3, 8)
			dims[geometry.DimHeight] = g.intBetween(3, 8)
		case geometry.Square:
			dims[geometry.DimSide] = g.intBetween(3, 8)
		case geometry.Rectangle:
			dims[geometry.DimLength] = g.intBetween(4, 8)
			dims[geometry.DimWidth] = g.intBetween(3, 6)
		}
	}

	return &Problem{
		Shape:       shape,
		Difficulty:  level,
		Dimensions:  dims,
		CorrectArea: round2(geometry.Area(shape, dims)),
	}
}

// intBetween samples an integer in [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) float64 {
	return float64(lo + g.rng.IntN(hi-lo+1))
}

// realBetween samples a uniform real in [lo, hi).
func (g *Generator) realBetween(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
