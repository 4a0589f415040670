package problemgen

import (
	"math"
	"math/rand/v2"
	"testing"

	"geotutor/internal/difficulty"
	"geotutor/internal/geometry"
)

func seeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

var ranges = map[difficulty.Level]map[geometry.Kind]map[string][2]float64{
	difficulty.Easy: {
		geometry.Triangle:  {geometry.DimBase: {3, 8}, geometry.DimHeight: {3, 8}},
		geometry.Square:    {geometry.DimSide: {3, 8}},
		geometry.Rectangle: {geometry.DimLength: {4, 8}, geometry.DimWidth: {3, 6}},
	},
	difficulty.Medium: {
		geometry.Triangle:  {geometry.DimBase: {6, 12}, geometry.DimHeight: {5, 10}},
		geometry.Square:    {geometry.DimSide: {7, 15}},
		geometry.Rectangle: {geometry.DimLength: {8, 15}, geometry.DimWidth: {5, 10}},
	},
	difficulty.Hard: {
		geometry.Triangle:  {geometry.DimBase: {8, 20}, geometry.DimHeight: {6, 15}},
		geometry.Square:    {geometry.DimSide: {10, 25}},
		geometry.Rectangle: {geometry.DimLength: {10, 30}, geometry.DimWidth: {5, 15}},
	},
}

func TestGenerate_DimensionsWithinTable(t *testing.T) {
	g := seeded(42)
	for level, shapes := range ranges {
		for shape, dims := range shapes {
			for range 100 {
				p := g.Generate(shape, level)
				if len(p.Dimensions) != len(dims) {
					t.Fatalf("%s/%s: %d dimensions, want %d", shape, level, len(p.Dimensions), len(dims))
				}
				for name, bounds := range dims {
					v, ok := p.Dimensions[name]
					if !ok {
						t.Fatalf("%s/%s: missing dimension %q", shape, level, name)
					}
					if v < bounds[0] || v > bounds[1] {
						t.Errorf("%s/%s: %s = %f outside [%f, %f]", shape, level, name, v, bounds[0], bounds[1])
					}
				}
			}
		}
	}
}

func TestGenerate_AreaMatchesClosedForm(t *testing.T) {
	g := seeded(7)
	for level, shapes := range ranges {
		for shape := range shapes {
			for range 100 {
				p := g.Generate(shape, level)
				want := round2(geometry.Area(shape, p.Dimensions))
				if p.CorrectArea != want {
					t.Errorf("%s/%s: CorrectArea = %f, formula gives %f", shape, level, p.CorrectArea, want)
				}
			}
		}
	}
}

func TestGenerate_EasyAndMediumIntegerDims(t *testing.T) {
	g := seeded(99)
	for range 100 {
		p := g.Generate(geometry.Square, difficulty.Easy)
		s := p.Dimensions[geometry.DimSide]
		if s != math.Trunc(s) {
			t.Errorf("easy square side %f is not an integer", s)
		}
	}
	for range 100 {
		p := g.Generate(geometry.Rectangle, difficulty.Medium)
		for name, v := range p.Dimensions {
			if v != math.Trunc(v) {
				t.Errorf("medium rectangle %s = %f is not an integer", name, v)
			}
		}
	}
}

func TestGenerate_HardDimsRoundedToOneDecimal(t *testing.T) {
	g := seeded(3)
	for _, shape := range geometry.Kinds() {
		for range 100 {
			p := g.Generate(shape, difficulty.Hard)
			for name, v := range p.Dimensions {
				if math.Abs(v*10-math.Round(v*10)) > 1e-9 {
					t.Errorf("hard %s %s = %f not rounded to 1 decimal", shape, name, v)
				}
			}
		}
	}
}

func TestGenerate_DeterministicForSeededSource(t *testing.T) {
	a := seeded(1234)
	b := seeded(1234)
	for range 20 {
		pa := a.Generate(geometry.Triangle, difficulty.Hard)
		pb := b.Generate(geometry.Triangle, difficulty.Hard)
		if pa.CorrectArea != pb.CorrectArea {
			t.Fatalf("seeded generators diverged: %f vs %f", pa.CorrectArea, pb.CorrectArea)
		}
		for name, v := range pa.Dimensions {
			if pb.Dimensions[name] != v {
				t.Fatalf("seeded generators diverged on %s", name)
			}
		}
	}
}

func TestPrompt(t *testing.T) {
	p := &Problem{
		Shape:      geometry.Triangle,
		Difficulty: difficulty.Easy,
		Dimensions: map[string]float64{geometry.DimBase: 4, geometry.DimHeight: 6.5},
	}
	got := p.Prompt()
	want := "Base = 4, Height = 6.5"
	if got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
}
