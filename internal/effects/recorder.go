// internal/effects/recorder.go
package effects

import "go-porcle/pkg/geom"

// ParticleRequest is one recorded SpawnParticles call.
type ParticleRequest struct {
	Kind Particle
	Pos  geom.Vec2
	Rot  float64
}

// Recorder keeps every request, for tests and replays.
type Recorder struct {
	Sfx       []Sfx
	Particles []ParticleRequest
	Trauma    []float64
}

func (r *Recorder) PlaySfx(id Sfx) {
	r.Sfx = append(r.Sfx, id)
}

func (r *Recorder) SpawnParticles(kind Particle, pos geom.Vec2, rot float64) {
	r.Particles = append(r.Particles, ParticleRequest{Kind: kind, Pos: pos, Rot: rot})
}

func (r *Recorder) AddTrauma(amount float64) {
	r.Trauma = append(r.Trauma, amount)
}

// CountSfx counts how many times id was played.
func (r *Recorder) CountSfx(id Sfx) int {
	n := 0
	for _, s := range r.Sfx {
		if s == id {
			n++
		}
	}
	return n
}

// TotalTrauma sums every trauma request.
func (r *Recorder) TotalTrauma() float64 {
	total := 0.0
	for _, t := range r.Trauma {
		total += t
	}
	return total
}

func (r *Recorder) Reset() {
	r.Sfx = nil
	r.Particles = nil
	r.Trauma = nil
}
