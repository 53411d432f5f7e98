// internal/audio/synth/synth.go
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator plays a wave whose frequency glides linearly from freq to
// endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// Tone is a fixed-frequency oscillator.
func Tone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Sweep(freq, freq, duration, wave, rate)
}

// Sweep is an oscillator gliding from one frequency to another.
func Sweep(from, to float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		// Fixed seed: the same effect always sounds the same.
		noise: rand.New(rand.NewSource(int64(from*1000) + int64(wave))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and an exponential-looking
// release reaching silence at the end of the duration.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Envelope cuts s to duration and fades it in over attack and out over release.
func Envelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			r := float64(e.total-e.position) / float64(e.release)
			vol *= r * r
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Gain scales s linearly. Zero or less is silent.
func Gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
