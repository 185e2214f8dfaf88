package control

import (
	"time"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/event"
	"github.com/opd-ai/go-spacewar/pkg/timer"
)

// HelmConfig holds the tuning shared by every helm.
type HelmConfig struct {
	RepeatDelay  time.Duration
	RotationStep float64
	ThrustStep   float64
}

// Helm is the input state of one piloted ship. Holding an action applies it
// once immediately and then again every repeat interval until release.
//
// Rotation uses a lock flag: pressing left sets it and pressing right clears
// it, while releasing either hands control back to the other direction. A
// left repeat only turns the ship while the lock is set and a right repeat
// only while it is clear, so overlapping rotate keys never cancel out.
type Helm struct {
	ship    *entity.Ship
	bus     *event.Bus
	cfg     HelmConfig
	repeats *timer.Repeats[Action]
	held    map[Action]bool

	rotationLock bool
}

// NewHelm creates a helm for ship. bus may be nil.
func NewHelm(ship *entity.Ship, cfg HelmConfig, bus *event.Bus) *Helm {
	return &Helm{
		ship:    ship,
		bus:     bus,
		cfg:     cfg,
		repeats: timer.NewRepeats[Action](),
		held:    make(map[Action]bool),
	}
}

// Ship returns the ship this helm steers.
func (h *Helm) Ship() *entity.Ship {
	return h.ship
}

// RotationLocked reports the rotation lock flag.
func (h *Helm) RotationLocked() bool {
	return h.rotationLock
}

// Held reports whether action is currently held down.
func (h *Helm) Held(action Action) bool {
	return h.held[action]
}

// Repeating reports whether action has a running repeat timer.
func (h *Helm) Repeating(action Action) bool {
	return h.repeats.Active(action)
}

// Press handles a key-down at now.
func (h *Helm) Press(action Action, now time.Duration) {
	if !h.alive() {
		return
	}
	h.held[action] = true

	switch action {
	case RotateLeft:
		h.rotationLock = true
		h.ship.Rotate(-h.cfg.RotationStep)
		h.repeats.Set(action, h.cfg.RepeatDelay, now)
	case RotateRight:
		h.rotationLock = false
		h.ship.Rotate(h.cfg.RotationStep)
		h.repeats.Set(action, h.cfg.RepeatDelay, now)
	case Thrust:
		h.ship.Accelerate(h.cfg.ThrustStep)
		h.repeats.Set(action, h.cfg.RepeatDelay, now)
	case FireTorpedo:
		h.repeats.Set(action, h.ship.TorpedoTube.Cooldown, now)
		h.fire(action, now, false)
	case FirePhaser:
		h.repeats.Set(action, h.ship.PhaserBank.Cooldown, now)
		h.fire(action, now, false)
	}
}

// Release handles a key-up.
func (h *Helm) Release(action Action) {
	if !h.alive() {
		return
	}
	delete(h.held, action)

	switch action {
	case RotateLeft:
		h.rotationLock = false
	case RotateRight:
		h.rotationLock = true
	}
	h.repeats.Cancel(action)
}

// Tick applies every repeat that came due up to now.
func (h *Helm) Tick(now time.Duration) {
	if !h.alive() {
		return
	}
	for _, f := range h.repeats.Due(now) {
		h.repeat(f.Key, f.At)
		if !h.alive() {
			return
		}
	}
}

// Reset drops all held keys, timers and the rotation lock.
func (h *Helm) Reset() {
	h.repeats.CancelAll()
	clear(h.held)
	h.rotationLock = false
}

func (h *Helm) repeat(action Action, at time.Duration) {
	switch action {
	case RotateLeft:
		if h.rotationLock {
			h.ship.Rotate(-h.cfg.RotationStep)
		}
	case RotateRight:
		if !h.rotationLock {
			h.ship.Rotate(h.cfg.RotationStep)
		}
	case Thrust:
		h.ship.Accelerate(h.cfg.ThrustStep)
	case FireTorpedo, FirePhaser:
		h.fire(action, at, true)
	}
}

// fire attempts a shot. A key press waits out the weapon cooldown; a held
// key's repeat is paced by its own timer. Refusals are silent.
func (h *Helm) fire(action Action, now time.Duration, repeat bool) {
	var (
		shot *entity.Projectile
		typ  event.Type
	)
	switch action {
	case FireTorpedo:
		typ = event.TorpedoFired
		if repeat {
			shot = h.ship.RepeatTorpedo(now)
		} else {
			shot = h.ship.FireTorpedo(now)
		}
	case FirePhaser:
		typ = event.PhaserFired
		if repeat {
			shot = h.ship.RepeatPhaser(now)
		} else {
			shot = h.ship.FirePhaser(now)
		}
	}
	if shot == nil {
		return
	}
	h.bus.Publish(event.NewShipEvent(typ, h.ship, now, uint64(h.ship.ID), h.ship.PlayerID))
}

// alive cancels every timer once the ship is gone.
func (h *Helm) alive() bool {
	if h.ship.Alive() {
		return true
	}
	if h.repeats.Len() > 0 || len(h.held) > 0 {
		h.Reset()
	}
	return false
}
