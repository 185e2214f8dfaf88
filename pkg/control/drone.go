package control

import (
	"math"
	"time"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// DroneConfig tunes the scripted pilot.
type DroneConfig struct {
	// ThrustDistance is how far away a target must be before the drone closes in.
	ThrustDistance float64
	// MaxSpeed caps the speed, in pixels per frame, the drone thrusts up to.
	MaxSpeed     float64
	TorpedoRange float64
	PhaserRange  float64
	// AimTolerance is the heading error, in degrees, at which the drone opens fire.
	AimTolerance float64
}

// DefaultDroneConfig returns a moderately aggressive pilot.
func DefaultDroneConfig() DroneConfig {
	return DroneConfig{
		ThrustDistance: 250,
		MaxSpeed:       3,
		TorpedoRange:   400,
		PhaserRange:    140,
		AimTolerance:   22.5,
	}
}

// Drone flies a ship by holding and releasing keys on its helm, exactly as a
// human would.
type Drone struct {
	helm *Helm
	cfg  DroneConfig
}

// NewDrone creates a drone pilot for helm.
func NewDrone(helm *Helm, cfg DroneConfig) *Drone {
	return &Drone{helm: helm, cfg: cfg}
}

// Helm returns the helm the drone drives.
func (d *Drone) Helm() *Helm {
	return d.helm
}

// Think picks the nearest living enemy among ships and adjusts the held keys.
func (d *Drone) Think(ships []*entity.Ship, now time.Duration) {
	ship := d.helm.Ship()
	if !ship.Alive() {
		return
	}

	want := make(map[Action]bool, len(Actions))
	if target := nearestEnemy(ship, ships); target != nil {
		to := target.Position.Sub(ship.Position)
		dist := to.Length()
		delta := physics.AngleDelta(ship.Angle, to.Degrees())

		half := d.helm.cfg.RotationStep / 2
		switch {
		case delta < -half:
			want[RotateLeft] = true
		case delta > half:
			want[RotateRight] = true
		}

		aligned := math.Abs(delta) <= d.cfg.AimTolerance
		if aligned && dist > d.cfg.ThrustDistance && ship.Velocity.Length() < d.cfg.MaxSpeed {
			want[Thrust] = true
		}
		if aligned && dist <= d.cfg.TorpedoRange {
			want[FireTorpedo] = true
		}
		if aligned && dist <= d.cfg.PhaserRange {
			want[FirePhaser] = true
		}
	}

	for _, action := range Actions {
		held := d.helm.Held(action)
		switch {
		case want[action] && !held:
			d.helm.Press(action, now)
		case !want[action] && held:
			d.helm.Release(action)
		}
	}
}

func nearestEnemy(ship *entity.Ship, ships []*entity.Ship) *entity.Ship {
	var (
		best     *entity.Ship
		bestDist = math.Inf(1)
	)
	for _, other := range ships {
		if other == ship || other.PlayerID == ship.PlayerID || !other.Alive() {
			continue
		}
		if d := ship.Position.Distance(other.Position); d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}
