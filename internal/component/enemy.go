// internal/component/enemy.go
package component

import "go-porcle/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind   defs.EnemyKind
	Radius float64
	Shape  defs.Shape
}

type Health struct {
	Value int
}

// Shielded absorbs Hits hits before health takes damage.
type Shielded struct {
	Hits int
}

// StopNearCore slows the entity to a halt as it approaches TriggerRadius.
type StopNearCore struct {
	TriggerRadius float64
}

// GunBarrel is a ranged enemy's weapon, armed while the enemy is stopped.
type GunBarrel struct {
	Active bool
}

// Debris is a dead enemy shrinking out before removal.
type Debris struct {
	Timer    float64
	Duration float64
}

// Scale returns the remaining visual scale in [0, 1].
func (d Debris) Scale() float64 {
	if d.Duration <= 0 {
		return 0
	}
	s := d.Timer / d.Duration
	if s < 0 {
		return 0
	}
	return s
}
