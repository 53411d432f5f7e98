// internal/app/loop.go
package app

import (
	"math"

	"go-porcle/internal/config"
)

// Stepper turns variable frame times into a whole number of fixed ticks.
// Leftover time carries into the next frame; a frame never runs more than
// MaxSteps ticks.
type Stepper struct {
	Step     float64
	MaxSteps int
	acc      float64
}

func NewStepper() *Stepper {
	return &Stepper{Step: config.FixedDelta, MaxSteps: int(math.Floor(config.MaxDeltaTime/config.FixedDelta)) + 1}
}

// Advance adds frame seconds and returns how many ticks to run now.
func (s *Stepper) Advance(frame float64) int {
	if frame > config.MaxDeltaTime {
		frame = config.MaxDeltaTime
	}
	if frame > 0 {
		s.acc += frame
	}
	n := 0
	// Допуск на накопленную ошибку округления.
	for s.acc+1e-9 >= s.Step && n < s.MaxSteps {
		s.acc -= s.Step
		n++
	}
	// Не успели: лишнее время выбрасываем, иначе отставание копится.
	if s.acc+1e-9 >= s.Step {
		s.acc = 0
	}
	if s.acc < 0 {
		s.acc = 0
	}
	return n
}

// Reset drops carried time.
func (s *Stepper) Reset() {
	s.acc = 0
}
