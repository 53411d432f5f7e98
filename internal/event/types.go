// internal/event/types.go
package event

import (
	"go-porcle/internal/defs"
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
)

const (
	SpawnLevel        EventType = "SpawnLevel"
	SpawnBall         EventType = "SpawnBall"
	SpawnEnemy        EventType = "SpawnEnemy"
	SpawnProjectile   EventType = "SpawnProjectile"
	DamageEnemy       EventType = "DamageEnemy"
	DespawnEnemy      EventType = "DespawnEnemy"
	DespawnProjectile EventType = "DespawnProjectile"
	TakeDamage        EventType = "TakeDamage"
	ScoreChanged      EventType = "ScoreChanged"
	GameOver          EventType = "GameOver"
)

// ProjectileTarget says what a projectile is allowed to hit.
type ProjectileTarget int

const (
	TargetEnemy ProjectileTarget = iota
	TargetCore
)

type SpawnBallData struct {
	Paddle types.EntityID
}

type SpawnEnemyData struct {
	Kind     defs.EnemyKind
	Position geom.Vec2
}

type SpawnProjectileData struct {
	Position  geom.Vec2
	Direction geom.Vec2
	Target    ProjectileTarget
	SpreadDeg float64
}

type DamageEnemyData struct {
	Enemy     types.EntityID
	Amount    int
	Knockback geom.Vec2
}

// DespawnEnemyData asks for an enemy to be turned into debris. Killed is
// false when the enemy was removed without the player earning score.
type DespawnEnemyData struct {
	Enemy  types.EntityID
	Killed bool
}

type DespawnProjectileData struct {
	Projectile types.EntityID
}

type ScoreChangedData struct {
	Score int
}
