// internal/component/projectile.go
package component

import (
	"go-porcle/internal/event"
	"go-porcle/pkg/geom"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	Size   geom.Vec2
	Target event.ProjectileTarget
}

// Radius approximates the projectile with a circle for sweeps.
func (p Projectile) Radius() float64 {
	if p.Size.X < p.Size.Y {
		return p.Size.X / 2
	}
	return p.Size.Y / 2
}

// DespawnOutOfBounds marks entities removed once they leave the playfield margin.
type DespawnOutOfBounds struct{}
