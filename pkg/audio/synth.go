// Package audio synthesizes the game's sound effects and plays them in
// response to gameplay events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose pitch glides linearly from one frequency to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
}

// NewSweep creates a tone gliding from one frequency to another. Pass the
// same frequency twice for a steady tone.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, rate: rate, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a stream in over attack and out linearly to silence at its end.
type decay struct {
	streamer beep.Streamer
	attack   int
	total    int
	pos      int
}

// NewDecay shapes s with a short attack and a linear fade lasting d.
func NewDecay(s beep.Streamer, d, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), total: rate.N(d)}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(e.pos)/float64(e.total)
		if e.pos < e.attack {
			vol = min(vol, float64(e.pos)/float64(e.attack))
		}
		vol = max(vol, 0)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// withVolume scales s by a linear gain. beep's volume effect is
// logarithmic, so zero gain maps to silence.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Effect names a sound the board can play.
type Effect int

const (
	EffectTorpedo Effect = iota
	EffectPhaser
	EffectHit
	EffectExplosion
	EffectCollision
	EffectRoundStart
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectTorpedo:
		return "torpedo"
	case EffectPhaser:
		return "phaser"
	case EffectHit:
		return "hit"
	case EffectExplosion:
		return "explosion"
	case EffectCollision:
		return "collision"
	case EffectRoundStart:
		return "round-start"
	default:
		return "unknown"
	}
}

// Durations of each effect.
const (
	torpedoDuration    = 220 * time.Millisecond
	phaserDuration     = 90 * time.Millisecond
	hitDuration        = 120 * time.Millisecond
	explosionDuration  = 600 * time.Millisecond
	collisionDuration  = 80 * time.Millisecond
	roundStartDuration = 300 * time.Millisecond
)

// Synthesize renders effect at the given gain. Unknown effects return nil.
func Synthesize(effect Effect, gain float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch effect {
	case EffectTorpedo:
		s = NewDecay(NewSweep(660, 180, torpedoDuration, WaveSquare, rate), torpedoDuration, 5*time.Millisecond, rate)
		gain *= 0.4
	case EffectPhaser:
		s = NewDecay(NewSweep(1800, 1200, phaserDuration, WaveSaw, rate), phaserDuration, 2*time.Millisecond, rate)
		gain *= 0.3
	case EffectHit:
		s = beep.Mix(
			withVolume(NewSweep(220, 110, hitDuration, WaveSquare, rate), 0.5),
			withVolume(NewSweep(0, 0, hitDuration, WaveNoise, rate), 0.5),
		)
		s = NewDecay(s, hitDuration, time.Millisecond, rate)
	case EffectExplosion:
		s = beep.Mix(
			withVolume(NewSweep(0, 0, explosionDuration, WaveNoise, rate), 0.7),
			withVolume(NewSweep(90, 30, explosionDuration, WaveSine, rate), 0.3),
		)
		s = NewDecay(s, explosionDuration, 10*time.Millisecond, rate)
	case EffectCollision:
		s = NewDecay(NewSweep(70, 50, collisionDuration, WaveSine, rate), collisionDuration, 2*time.Millisecond, rate)
	case EffectRoundStart:
		half := roundStartDuration / 2
		s = beep.Seq(
			NewDecay(NewSweep(523.25, 523.25, half, WaveSine, rate), half, 5*time.Millisecond, rate),
			NewDecay(NewSweep(783.99, 783.99, half, WaveSine, rate), half, 5*time.Millisecond, rate),
		)
		gain *= 0.5
	default:
		return nil
	}
	return withVolume(s, gain)
}
