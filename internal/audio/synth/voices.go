// internal/audio/synth/voices.go
package synth

import (
	"time"

	"github.com/gopxl/beep"

	"go-porcle/internal/effects"
)

const ms = time.Millisecond

// blip is one enveloped oscillator.
func blip(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Envelope(Sweep(from, to, d, wave, rate), d, 3*ms, d/2, rate)
}

// Voice builds the streamer for a sound effect, or nil for an unknown id.
// Every voice is finite.
func Voice(id effects.Sfx, rate beep.SampleRate) beep.Streamer {
	switch id {
	case effects.SfxReflect:
		return beep.Mix(
			Gain(blip(520, 780, 90*ms, WaveTriangle, rate), 0.6),
			Gain(blip(1040, 1560, 60*ms, WaveSine, rate), 0.25),
		)
	case effects.SfxCapture:
		return beep.Seq(blip(660, 660, 50*ms, WaveSine, rate), blip(990, 990, 70*ms, WaveSine, rate))
	case effects.SfxLaunch:
		return Gain(blip(300, 900, 140*ms, WaveSaw, rate), 0.35)
	case effects.SfxWallHit:
		return beep.Mix(
			Gain(blip(180, 120, 80*ms, WaveSquare, rate), 0.25),
			Gain(blip(0, 0, 40*ms, WaveNoise, rate), 0.2),
		)
	case effects.SfxEnemyHit:
		return Gain(blip(440, 330, 60*ms, WaveSquare, rate), 0.25)
	case effects.SfxShieldHit:
		return Gain(blip(1200, 1100, 80*ms, WaveTriangle, rate), 0.4)
	case effects.SfxEnemyDeath:
		return beep.Mix(
			Gain(blip(0, 0, 220*ms, WaveNoise, rate), 0.3),
			Gain(blip(220, 60, 220*ms, WaveSine, rate), 0.5),
		)
	case effects.SfxShoot:
		return Gain(blip(900, 500, 45*ms, WaveSquare, rate), 0.15)
	case effects.SfxNoAmmo:
		return Gain(blip(110, 100, 120*ms, WaveSaw, rate), 0.3)
	case effects.SfxRecall:
		return beep.Seq(
			blip(880, 660, 60*ms, WaveTriangle, rate),
			blip(660, 440, 60*ms, WaveTriangle, rate),
			blip(440, 330, 90*ms, WaveTriangle, rate),
		)
	case effects.SfxRefill:
		return beep.Seq(
			blip(523, 523, 50*ms, WaveSquare, rate),
			blip(659, 659, 50*ms, WaveSquare, rate),
			blip(784, 784, 90*ms, WaveSquare, rate),
		)
	case effects.SfxCoreHit:
		return beep.Mix(
			Gain(blip(90, 40, 400*ms, WaveSine, rate), 0.8),
			Gain(blip(0, 0, 250*ms, WaveNoise, rate), 0.35),
		)
	case effects.SfxEnemyShoot:
		return Gain(blip(260, 180, 90*ms, WaveSaw, rate), 0.2)
	case effects.SfxGameOver:
		return beep.Seq(
			blip(392, 392, 200*ms, WaveTriangle, rate),
			blip(311, 311, 200*ms, WaveTriangle, rate),
			blip(196, 150, 500*ms, WaveTriangle, rate),
		)
	case effects.SfxModeToggle:
		return Gain(blip(700, 700, 35*ms, WaveSine, rate), 0.3)
	}
	return nil
}
