// internal/vfx/particles.go
package vfx

import (
	"image/color"
	"math"

	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

type particle struct {
	pos     geom.Vec2
	vel     geom.Vec2
	life    float64
	maxLife float64
	size    float64
	color   color.RGBA
	drag    float64
}

// emitter describes one burst kind. Spread is the full cone in degrees
// around the request rotation; 360 means radial.
type emitter struct {
	count    int
	speedMin float64
	speedMax float64
	life     float64
	size     float64
	spread   float64
	drag     float64
	color    color.RGBA
}

var emitters = map[effects.Particle]emitter{
	effects.ParticleReflection:        {count: 10, speedMin: 120, speedMax: 320, life: 0.35, size: 3, spread: 70, drag: 4, color: config.PaddleColor},
	effects.ParticleWallSpark:         {count: 6, speedMin: 80, speedMax: 260, life: 0.25, size: 2, spread: 120, drag: 5, color: config.WallColor},
	effects.ParticleEnemyBurst:        {count: 18, speedMin: 60, speedMax: 340, life: 0.5, size: 4, spread: 360, drag: 3, color: config.EnemyColor},
	effects.ParticleCoreClear:         {count: 40, speedMin: 400, speedMax: 520, life: 0.45, size: 3, spread: 360, drag: 2, color: config.CoreColor},
	effects.ParticleProjectileBlocked: {count: 5, speedMin: 60, speedMax: 180, life: 0.2, size: 2, spread: 90, drag: 6, color: config.EnemyBulletColor},
}

// ParticlePool is a fixed ring of particles. When it is full the oldest
// particle is overwritten.
type ParticlePool struct {
	particles []particle
	next      int
	rng       *utils.PRNGService
}

func NewParticlePool(capacity int, seed int64) *ParticlePool {
	if capacity < 1 {
		capacity = 1
	}
	return &ParticlePool{
		particles: make([]particle, capacity),
		rng:       utils.NewPRNGService(seed),
	}
}

// Spawn emits a burst of kind at pos facing rot and returns how many
// particles were emitted. Unknown kinds emit nothing.
func (p *ParticlePool) Spawn(kind effects.Particle, pos geom.Vec2, rot float64) int {
	em, ok := emitters[kind]
	if !ok {
		return 0
	}
	half := em.spread * math.Pi / 360
	for i := 0; i < em.count; i++ {
		angle := rot + p.rng.RangeInclusive(-half, half)
		speed := p.rng.Range(em.speedMin, em.speedMax)
		life := em.life * p.rng.Range(0.7, 1.0)
		p.particles[p.next] = particle{
			pos:     pos,
			vel:     geom.FromAngle(angle).Scale(speed),
			life:    life,
			maxLife: life,
			size:    em.size,
			color:   em.color,
			drag:    em.drag,
		}
		p.next = (p.next + 1) % len(p.particles)
	}
	return em.count
}

// Update moves particles and ages them out.
func (p *ParticlePool) Update(deltaTime float64) {
	for i := range p.particles {
		pt := &p.particles[i]
		if pt.life <= 0 {
			continue
		}
		pt.life -= deltaTime
		pt.pos = pt.pos.Add(pt.vel.Scale(deltaTime))
		pt.vel = pt.vel.Scale(math.Exp(-pt.drag * deltaTime))
	}
}

// Alive counts live particles.
func (p *ParticlePool) Alive() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].life > 0 {
			n++
		}
	}
	return n
}

// Clear drops every particle.
func (p *ParticlePool) Clear() {
	clear(p.particles)
	p.next = 0
}

// Each calls fn for every live particle with its position, current size
// and faded colour.
func (p *ParticlePool) Each(fn func(pos geom.Vec2, size float64, c color.RGBA)) {
	for i := range p.particles {
		pt := &p.particles[i]
		if pt.life <= 0 {
			continue
		}
		k := pt.life / pt.maxLife
		fn(pt.pos, pt.size*(0.5+0.5*k), WithAlpha(pt.color, k))
	}
}
