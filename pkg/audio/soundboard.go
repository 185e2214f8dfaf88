package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-spacewar/pkg/event"
	"github.com/opd-ai/go-spacewar/pkg/validation"
)

// Output plays finished streamers.
type Output interface {
	Play(s beep.Streamer)
}

// SpeakerOutput mixes streamers onto the system audio device.
type SpeakerOutput struct {
	mixer *beep.Mixer
}

var (
	speakerOnce    sync.Once
	speakerInitErr error
)

// OpenSpeaker initializes the audio device. The device is initialized once
// per process; later calls share it, or report the same failure.
func OpenSpeaker() (*SpeakerOutput, error) {
	return openOutput(func() error {
		return speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond))
	}, speaker.Play)
}

func openOutput(initDevice func() error, play func(...beep.Streamer)) (*SpeakerOutput, error) {
	speakerOnce.Do(func() {
		speakerInitErr = initDevice()
	})
	if speakerInitErr != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", speakerInitErr)
	}
	out := &SpeakerOutput{mixer: &beep.Mixer{}}
	play(out.mixer)
	return out, nil
}

// Play implements Output. The speaker streams from its own goroutine, so
// the mixer is only touched under the speaker lock.
func (o *SpeakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (o *SpeakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
}

// collisionGap keeps a scraping pair of ships from retriggering the
// collision sound every frame.
const collisionGap = 250 * time.Millisecond

// SoundBoard turns gameplay events into sound effects.
type SoundBoard struct {
	out  Output
	gain float64
	rate beep.SampleRate
	subs []*event.Subscription

	collisions *validation.RateLimiter
}

// NewSoundBoard creates a board playing through out at the given gain in [0, 1].
func NewSoundBoard(out Output, gain float64) *SoundBoard {
	return &SoundBoard{
		out:        out,
		gain:       gain,
		rate:       SampleRate,
		collisions: validation.NewRateLimiter(1, collisionGap),
	}
}

// Attach subscribes the board to bus.
func (b *SoundBoard) Attach(bus *event.Bus) {
	b.subs = append(b.subs,
		bus.Subscribe(event.TorpedoFired, func(event.Event) { b.Play(EffectTorpedo) }),
		bus.Subscribe(event.PhaserFired, func(event.Event) { b.Play(EffectPhaser) }),
		bus.Subscribe(event.ProjectileHit, func(event.Event) { b.Play(EffectHit) }),
		bus.Subscribe(event.ShipDestroyed, func(event.Event) { b.Play(EffectExplosion) }),
		bus.Subscribe(event.ShipCollision, b.onCollision),
		bus.Subscribe(event.GameStarted, func(event.Event) { b.Play(EffectRoundStart) }),
	)
}

// Detach removes every subscription made by Attach.
func (b *SoundBoard) Detach() {
	for _, s := range b.subs {
		s.Cancel()
	}
	b.subs = nil
}

// Play synthesizes effect and hands it to the output.
func (b *SoundBoard) Play(effect Effect) {
	if s := Synthesize(effect, b.gain, b.rate); s != nil {
		b.out.Play(s)
	}
}

func (b *SoundBoard) onCollision(e event.Event) {
	ce, ok := e.(*event.CollisionEvent)
	if !ok {
		return
	}
	if !b.collisions.Allow(fmt.Sprintf("%d-%d", ce.EntityA, ce.EntityB), ce.At) {
		return
	}
	b.Play(EffectCollision)
}
