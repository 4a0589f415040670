package components

import (
	"charm.land/lipgloss/v2"

	"geotutor/internal/geometry"
	"geotutor/internal/ui/theme"
)

const triangleArt = `      ▲
     ╱ ╲
    ╱   ╲
   ╱     ╲
  ╱───────╲`

const squareArt = ` ┌────────┐
 │        │
 │        │
 │        │
 └────────┘`

const rectangleArt = ` ┌──────────────┐
 │              │
 │              │
 └──────────────┘`

// ShapePreview renders a small colored sketch of a shape kind. The
// sketch is decorative; dimensions come from the problem text.
func ShapePreview(k geometry.Kind) string {
	var art string
	switch k {
	case geometry.Triangle:
		art = triangleArt
	case geometry.Square:
		art = squareArt
	case geometry.Rectangle:
		art = rectangleArt
	default:
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.ShapeColor(k)).Render(art)
}
