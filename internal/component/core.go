// internal/component/core.go
package component

import (
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
)

// GearRef is one hit point of the core.
type GearRef struct {
	Entity types.EntityID
	Active bool
}

// Core is the defended objective. Damage deactivates the first active gear.
type Core struct {
	Radius float64
	Gears  []GearRef
}

// ActiveGears counts gears still standing.
func (c Core) ActiveGears() int {
	n := 0
	for _, g := range c.Gears {
		if g.Active {
			n++
		}
	}
	return n
}

// RotateWithPaddle spins a gear with the paddle pivot.
type RotateWithPaddle struct {
	Offset     float64
	Invert     bool
	Multiplier float64
	Radius     float64
}

// Wall is a static segment of the arena border. Normal points into the arena.
type Wall struct {
	A, B   geom.Vec2
	Normal geom.Vec2
}
