// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnemyKind is returned when a definition file names a kind the game does not know.
var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

// EnemyKind identifies one enemy archetype.
type EnemyKind int

const (
	KindCrawler EnemyKind = iota
	KindShielded
	KindTank
	KindTurret
)

// AllKinds lists every kind in weight-table order.
var AllKinds = []EnemyKind{KindCrawler, KindShielded, KindTank, KindTurret}

func (k EnemyKind) String() string {
	switch k {
	case KindCrawler:
		return "crawler"
	case KindShielded:
		return "shielded"
	case KindTank:
		return "tank"
	case KindTurret:
		return "turret"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseEnemyKind maps a definition-file name back to its kind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, name)
}

// Shape is the collider outline used for drawing an enemy.
type Shape string

const (
	ShapeTriangle Shape = "triangle"
	ShapeSquare   Shape = "square"
	ShapeHexagon  Shape = "hexagon"
	ShapeDiamond  Shape = "diamond"
)
