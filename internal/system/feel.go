// internal/system/feel.go
package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/entity"
	"go-porcle/internal/utils"
)

// FeelSystem owns the smoothed maximum ball speed factor. Bloom, shake and
// the ammo bonus read it after collisions have been resolved.
type FeelSystem struct {
	ecs       *entity.ECS
	minSpeed  float64
	maxSpeed  float64
	rate      float64
	bonusStep int
	factor    float64
}

func NewFeelSystem(ecs *entity.ECS, tuning *config.Tuning) *FeelSystem {
	return &FeelSystem{
		ecs:       ecs,
		minSpeed:  tuning.Ball.BaseSpeed,
		maxSpeed:  tuning.Ball.BaseSpeed * 2,
		rate:      tuning.Feel.SmoothingRate,
		bonusStep: tuning.Feel.AmmoBonusSteps,
	}
}

// MaxSpeedFactor is the unsmoothed target: the highest speed factor over all balls.
func MaxSpeedFactor(speeds []float64, min, max float64) float64 {
	best := 0.0
	for _, v := range speeds {
		if f := (component.Speed{Value: v}).Factor(min, max); f > best {
			best = f
		}
	}
	return best
}

func (s *FeelSystem) Update(deltaTime float64) {
	speeds := make([]float64, 0, len(s.ecs.Balls))
	for id := range s.ecs.Balls {
		if speed, ok := s.ecs.Speeds[id]; ok {
			speeds = append(speeds, speed.Value)
		}
	}
	target := MaxSpeedFactor(speeds, s.minSpeed, s.maxSpeed)
	s.factor = utils.ExpApproach(s.factor, target, s.rate, deltaTime)
}

// Factor is the current smoothed value in [0, 1].
func (s *FeelSystem) Factor() float64 {
	return s.factor
}

// AmmoBonus is the ammo granted per paddle reflection.
func (s *FeelSystem) AmmoBonus() int {
	return 1 + int(math.Floor(s.factor*float64(s.bonusStep)))
}

func (s *FeelSystem) Reset() {
	s.factor = 0
}
