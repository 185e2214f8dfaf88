// pkg/engine/collision.go
package engine

import (
	"time"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/event"
	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// ResolveShipCollision applies the ship-to-ship response to an overlapping
// pair. Velocities are blended, then other is nudged by its new velocity
// along the axis (or axes) the overlap is resolved on. The response is
// asymmetric: self is never moved.
func ResolveShipCollision(self, other *entity.Ship) (x, y bool) {
	self.Velocity, other.Velocity = physics.BlendVelocities(self.Velocity, other.Velocity)

	x, y = physics.OverlapAxes(self.Bounds(), other.Bounds())
	if x {
		other.Position.X += other.Velocity.X
	}
	if y {
		other.Position.Y += other.Velocity.Y
	}
	return x, y
}

// resolveShipCollisions visits every pair of live ships once, in insertion
// order, with the earlier ship acting as self.
func (g *Game) resolveShipCollisions() {
	now := g.Clock.Now()
	for i, self := range g.Ships {
		if !self.Alive() {
			continue
		}
		for _, other := range g.Ships[i+1:] {
			if !other.Alive() || !self.Bounds().Overlaps(other.Bounds()) {
				continue
			}
			ResolveShipCollision(self, other)
			self.MarkCollision(now)

			g.EventBus.Publish(event.NewCollisionEvent(g, now, uint64(self.ID), uint64(other.ID)))
			g.Logger.Debug(g.ctx, "ships collided",
				"self", self.Name,
				"other", other.Name,
				"tick", g.CurrentTick,
			)
		}
	}
}

// processProjectileHits checks every projectile in flight against the ships
// near it. A projectile never hits the ship that fired it and is spent by its
// first hit.
func (g *Game) processProjectileHits() {
	now := g.Clock.Now()
	g.populateSpatialIndex()

	for _, shooter := range g.Ships {
		for _, shot := range shooter.Projectiles() {
			area := shot.Bounds().Grow(g.Config.Hull.Width, g.Config.Hull.Height)
			for _, candidate := range g.SpatialIndex.Query(area) {
				target, ok := candidate.(*entity.Ship)
				if !ok || target.ID == shot.OwnerID || !target.Alive() {
					continue
				}
				if !shot.Bounds().Overlaps(target.Bounds()) {
					continue
				}
				g.handleHit(shooter, shot, target, now)
				break
			}
		}
	}
}

func (g *Game) handleHit(shooter *entity.Ship, shot *entity.Projectile, target *entity.Ship, now time.Duration) {
	shot.Active = false
	destroyed := target.TakeDamage(shot.Damage)

	g.EventBus.Publish(event.NewHitEvent(g, now,
		uint64(shot.ID), uint64(shooter.ID), uint64(target.ID), shot.Damage))

	if !destroyed {
		return
	}
	if p := g.playerForShip(shooter.ID); p != nil {
		p.Kills++
	}
	g.EventBus.Publish(event.NewShipEvent(event.ShipDestroyed, target, now, uint64(target.ID), target.PlayerID))
}

// populateSpatialIndex rebuilds the broad phase from the live ships.
func (g *Game) populateSpatialIndex() {
	g.SpatialIndex.Clear()
	for _, ship := range g.Ships {
		if ship.Alive() {
			g.SpatialIndex.Insert(ship.Position, ship)
		}
	}
}
