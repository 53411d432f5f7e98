// internal/vfx/shape.go
package vfx

import (
	"math"

	"go-porcle/internal/defs"
	"go-porcle/pkg/geom"
)

// ShapeVertices returns the outline of shape inscribed in a circle of radius
// around center, turned by rot. Unknown shapes give nil and are drawn as
// circles.
func ShapeVertices(shape defs.Shape, center geom.Vec2, radius, rot float64) []geom.Vec2 {
	var sides int
	offset := 0.0
	switch shape {
	case defs.ShapeTriangle:
		sides = 3
	case defs.ShapeSquare:
		sides, offset = 4, math.Pi/4
	case defs.ShapeDiamond:
		sides = 4
	case defs.ShapeHexagon:
		sides = 6
	default:
		return nil
	}
	pts := make([]geom.Vec2, sides)
	for i := range pts {
		a := rot + offset + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = center.Add(geom.FromAngle(a).Scale(radius))
	}
	return pts
}
