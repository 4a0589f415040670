package geometry

import "fmt"

// Kind identifies one of the three supported shape families.
type Kind string

const (
	Triangle  Kind = "Triangle"
	Square    Kind = "Square"
	Rectangle Kind = "Rectangle"
)

// Dimension names used as keys in Problem dimension maps and in the
// ontology artifact.
const (
	DimBase   = "base"
	DimHeight = "height"
	DimSide   = "side"
	DimLength = "length"
	DimWidth  = "width"
)

// Kinds returns all shape kinds in display order.
func Kinds() []Kind {
	return []Kind{Triangle, Square, Rectangle}
}

// Parse converts a shape name to a Kind. Matching is exact; the
// presentation layer is expected to send canonical names.
func Parse(s string) (Kind, error) {
	switch Kind(s) {
	case Triangle, Square, Rectangle:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown shape %q", s)
}

// DimensionNames returns the ordered dimension names for a kind.
func DimensionNames(k Kind) []string {
	switch k {
	case Triangle:
		return []string{DimBase, DimHeight}
	case Square:
		return []string{DimSide}
	case Rectangle:
		return []string{DimLength, DimWidth}
	}
	return nil
}

// Area applies the closed-form area formula for k to the named dimensions.
// Missing dimensions are treated as zero.
func Area(k Kind, dims map[string]float64) float64 {
	switch k {
	case Triangle:
		return 0.5 * dims[DimBase] * dims[DimHeight]
	case Square:
		return dims[DimSide] * dims[DimSide]
	case Rectangle:
		return dims[DimLength] * dims[DimWidth]
	}
	return 0
}

// Explanation returns the fixed worked-example formula string for k.
func Explanation(k Kind) string {
	switch k {
	case Triangle:
		return "Area = ½ × base × height"
	case Square:
		return "Area = side × side"
	case Rectangle:
		return "Area = length × width"
	}
	return ""
}
