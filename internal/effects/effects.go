// internal/effects/effects.go
package effects

import "go-porcle/pkg/geom"

// Sfx identifies a one-shot sound.
type Sfx int

const (
	SfxReflect Sfx = iota
	SfxCapture
	SfxLaunch
	SfxWallHit
	SfxEnemyHit
	SfxShieldHit
	SfxEnemyDeath
	SfxShoot
	SfxNoAmmo
	SfxRecall
	SfxRefill
	SfxCoreHit
	SfxEnemyShoot
	SfxGameOver
	SfxModeToggle
)

// Particle identifies a one-shot particle burst.
type Particle int

const (
	ParticleReflection Particle = iota
	ParticleWallSpark
	ParticleEnemyBurst
	ParticleCoreClear
	ParticleProjectileBlocked
)

// Sink receives fire-and-forget presentation requests from the simulation.
type Sink interface {
	PlaySfx(id Sfx)
	SpawnParticles(kind Particle, pos geom.Vec2, rot float64)
	AddTrauma(amount float64)
}

// Null drops every request.
type Null struct{}

func (Null) PlaySfx(Sfx) {}
func (Null) SpawnParticles(Particle, geom.Vec2, float64) {}
func (Null) AddTrauma(float64) {}

// Multi forwards each request to every sink in order.
type Multi []Sink

func (m Multi) PlaySfx(id Sfx) {
	for _, s := range m {
		s.PlaySfx(id)
	}
}

func (m Multi) SpawnParticles(kind Particle, pos geom.Vec2, rot float64) {
	for _, s := range m {
		s.SpawnParticles(kind, pos, rot)
	}
}

func (m Multi) AddTrauma(amount float64) {
	for _, s := range m {
		s.AddTrauma(amount)
	}
}
