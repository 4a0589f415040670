package problemgen

import (
	"fmt"
	"strings"

	"geotutor/internal/difficulty"
	"geotutor/internal/geometry"
)

// Problem is a single generated practice problem ready for display.
// It carries both the sampled dimensions and the derived correct area so
// grading never re-samples.
type Problem struct {
	// Shape is the shape family this problem was generated for.
	Shape geometry.Kind

	// Difficulty is the level the sampling table was drawn from.
	Difficulty difficulty.Level

	// Dimensions maps dimension names ("base", "height", "side",
	// "length", "width") to their sampled values.
	Dimensions map[string]float64

	// CorrectArea is the closed-form area of Dimensions, rounded to
	// 2 decimals.
	CorrectArea float64
}

// Prompt returns the problem statement shown to the learner,
// e.g. "Base = 4, Height = 6".
func (p *Problem) Prompt() string {
	names := geometry.DimensionNames(p.Shape)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s = %s", titleCase(name), formatDim(p.Dimensions[name])))
	}
	return strings.Join(parts, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatDim renders a dimension without trailing zeros: integers as "7",
// 1-decimal reals as "7.5".
func formatDim(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
