// pkg/entity/ship.go
package entity

import (
	"time"

	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// ShipSpec contains the static description of a ship.
type ShipSpec struct {
	Name         string
	PlayerID     int
	Color        string
	Width        float64
	Height       float64
	MaxHull      int
	MaxTorpedoes int
	Torpedo      WeaponSpec
	Phaser       WeaponSpec
}

// Ship is a player's spaceship. It owns the torpedoes it has in flight and
// at most one phaser shot.
type Ship struct {
	BaseEntity
	Name     string
	PlayerID int
	Color    string

	Hull         int
	MaxHull      int
	MaxTorpedoes int

	Torpedoes   []*Projectile
	Phaser      *Projectile
	TorpedoTube *Weapon
	PhaserBank  *Weapon

	LastCollision time.Duration
	Collided      bool
}

// NewShip creates a new active ship at position facing angle degrees.
func NewShip(id ID, spec ShipSpec, position physics.Vector2D, angle float64) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			ID:       id,
			Kind:     KindShip,
			Position: position,
			Angle:    physics.NormalizeDegrees(angle),
			Width:    spec.Width,
			Height:   spec.Height,
			Active:   true,
		},
		Name:         spec.Name,
		PlayerID:     spec.PlayerID,
		Color:        spec.Color,
		Hull:         spec.MaxHull,
		MaxHull:      spec.MaxHull,
		MaxTorpedoes: spec.MaxTorpedoes,
		Torpedoes:    make([]*Projectile, 0, spec.MaxTorpedoes),
		TorpedoTube:  NewWeapon("torpedo", KindTorpedo, spec.Torpedo),
		PhaserBank:   NewWeapon("phaser", KindPhaser, spec.Phaser),
	}
}

// Alive reports whether the ship is still in play.
func (s *Ship) Alive() bool {
	return s.Active && s.Hull > 0
}

// ActiveTorpedoes counts torpedoes still in flight.
func (s *Ship) ActiveTorpedoes() int {
	n := 0
	for _, t := range s.Torpedoes {
		if t.Active {
			n++
		}
	}
	return n
}

// CanFireTorpedo reports whether a torpedo launch at now would succeed.
func (s *Ship) CanFireTorpedo(now time.Duration) bool {
	return s.Alive() &&
		s.ActiveTorpedoes() < s.MaxTorpedoes &&
		s.TorpedoTube.Ready(now)
}

// FireTorpedo launches a torpedo. It returns nil, without side effects, when
// the tube is cooling down, the torpedo cap is reached or the ship is dead.
func (s *Ship) FireTorpedo(now time.Duration) *Projectile {
	if !s.TorpedoTube.Ready(now) {
		return nil
	}
	return s.launchTorpedo(now)
}

// RepeatTorpedo launches a torpedo for a held fire key. The repeat timer
// paces these shots, so only the torpedo cap and the ship's state apply.
func (s *Ship) RepeatTorpedo(now time.Duration) *Projectile {
	return s.launchTorpedo(now)
}

func (s *Ship) launchTorpedo(now time.Duration) *Projectile {
	if !s.Alive() || s.ActiveTorpedoes() >= s.MaxTorpedoes {
		return nil
	}
	torpedo := s.TorpedoTube.launch(s, now)
	s.Torpedoes = append(s.Torpedoes, torpedo)
	return torpedo
}

// FirePhaser fires the phaser, replacing any shot still in flight. It
// returns nil while the phaser bank is cooling down or the ship is dead.
func (s *Ship) FirePhaser(now time.Duration) *Projectile {
	if !s.PhaserBank.Ready(now) {
		return nil
	}
	return s.launchPhaser(now)
}

// RepeatPhaser fires the phaser for a held fire key, paced by the repeat
// timer rather than the cooldown.
func (s *Ship) RepeatPhaser(now time.Duration) *Projectile {
	return s.launchPhaser(now)
}

func (s *Ship) launchPhaser(now time.Duration) *Projectile {
	if !s.Alive() {
		return nil
	}
	if s.Phaser != nil {
		s.Phaser.Active = false
	}
	s.Phaser = s.PhaserBank.launch(s, now)
	return s.Phaser
}

// Projectiles returns every shot this ship has in flight.
func (s *Ship) Projectiles() []*Projectile {
	shots := make([]*Projectile, 0, len(s.Torpedoes)+1)
	for _, t := range s.Torpedoes {
		if t.Active {
			shots = append(shots, t)
		}
	}
	if s.Phaser != nil && s.Phaser.Active {
		shots = append(shots, s.Phaser)
	}
	return shots
}

// Prune drops spent or expired projectiles and returns them.
func (s *Ship) Prune(now time.Duration) []*Projectile {
	var removed []*Projectile
	kept := s.Torpedoes[:0]
	for _, t := range s.Torpedoes {
		if t.Expired(now) {
			t.Active = false
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.Torpedoes); i++ {
		s.Torpedoes[i] = nil
	}
	s.Torpedoes = kept

	if s.Phaser != nil && s.Phaser.Expired(now) {
		s.Phaser.Active = false
		removed = append(removed, s.Phaser)
		s.Phaser = nil
	}
	return removed
}

// TakeDamage lowers the hull and reports whether the ship was destroyed by
// this hit.
func (s *Ship) TakeDamage(amount int) bool {
	if !s.Alive() || amount <= 0 {
		return false
	}
	s.Hull -= amount
	if s.Hull <= 0 {
		s.Hull = 0
		s.Destroy()
		return true
	}
	return false
}

// Destroy takes the ship out of play together with its projectiles.
func (s *Ship) Destroy() {
	s.Active = false
	s.Velocity = physics.Vector2D{}
	for _, t := range s.Torpedoes {
		t.Active = false
	}
	s.Torpedoes = s.Torpedoes[:0]
	if s.Phaser != nil {
		s.Phaser.Active = false
		s.Phaser = nil
	}
}

// Respawn restores the ship to full hull at position, at rest, with both
// weapons ready.
func (s *Ship) Respawn(position physics.Vector2D, angle float64) {
	s.Destroy()
	s.Active = true
	s.Hull = s.MaxHull
	s.Position = position
	s.Angle = physics.NormalizeDegrees(angle)
	s.Collided = false
	s.LastCollision = 0
	s.TorpedoTube.Reset()
	s.PhaserBank.Reset()
}

// MarkCollision records the tick of the latest ship collision.
func (s *Ship) MarkCollision(now time.Duration) {
	s.LastCollision = now
	s.Collided = true
}
