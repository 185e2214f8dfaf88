// pkg/entity/weapon.go
package entity

import (
	"time"

	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// WeaponSpec describes a weapon and the projectiles it launches.
type WeaponSpec struct {
	Cooldown time.Duration
	Speed    float64
	Lifetime time.Duration
	Damage   int
	Width    float64
	Height   float64
}

// Weapon tracks the cooldown of one weapon mount. A weapon is READY until
// it fires, then cooling down until the time since the last fire exceeds
// Cooldown.
type Weapon struct {
	WeaponSpec
	Name string
	Kind Kind

	lastFired time.Duration
	hasFired  bool
}

// NewWeapon creates a ready weapon.
func NewWeapon(name string, kind Kind, spec WeaponSpec) *Weapon {
	return &Weapon{WeaponSpec: spec, Name: name, Kind: kind}
}

// Ready reports whether the weapon may fire at now.
func (w *Weapon) Ready(now time.Duration) bool {
	return !w.hasFired || now-w.lastFired > w.Cooldown
}

// Remaining returns how much of the cooldown is left at now. The weapon is
// still cooling down on the tick Remaining reaches zero.
func (w *Weapon) Remaining(now time.Duration) time.Duration {
	if !w.hasFired {
		return 0
	}
	left := w.Cooldown - (now - w.lastFired)
	if left < 0 {
		return 0
	}
	return left
}

// LastFired returns the tick of the last fire and whether the weapon has
// ever fired.
func (w *Weapon) LastFired() (time.Duration, bool) {
	return w.lastFired, w.hasFired
}

// Reset makes the weapon ready again.
func (w *Weapon) Reset() {
	w.lastFired = 0
	w.hasFired = false
}

// launch stamps the cooldown and builds a projectile leaving the shooter.
// The projectile inherits the shooter's velocity plus the weapon's muzzle
// speed along the shooter's heading.
func (w *Weapon) launch(shooter *Ship, now time.Duration) *Projectile {
	w.lastFired = now
	w.hasFired = true

	return &Projectile{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Kind:     w.Kind,
			Position: shooter.Position,
			Velocity: shooter.Velocity.Add(physics.FromDegrees(shooter.Angle, w.Speed)),
			Angle:    shooter.Angle,
			Width:    w.Width,
			Height:   w.Height,
			Active:   true,
		},
		OwnerID:  shooter.ID,
		Damage:   w.Damage,
		Spawned:  now,
		Lifetime: w.Lifetime,
	}
}

// Projectile is a torpedo or phaser shot in flight.
type Projectile struct {
	BaseEntity
	OwnerID  ID
	Damage   int
	Spawned  time.Duration
	Lifetime time.Duration
}

// Expired reports whether the projectile is spent or has outlived its
// lifetime at now.
func (p *Projectile) Expired(now time.Duration) bool {
	return !p.Active || now-p.Spawned >= p.Lifetime
}
