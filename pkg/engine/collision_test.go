package engine

import (
	"math"
	"testing"

	"github.com/opd-ai/go-spacewar/pkg/entity"
	"github.com/opd-ai/go-spacewar/pkg/event"
	"github.com/opd-ai/go-spacewar/pkg/physics"
)

const epsilon = 1e-9

func near(a, b physics.Vector2D) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func hull(pos, vel physics.Vector2D) *entity.Ship {
	ship := entity.NewShip(entity.GenerateID(), entity.ShipSpec{Width: 32, Height: 32, MaxHull: 100}, pos, 0)
	ship.Velocity = vel
	return ship
}

func TestResolveShipCollision(t *testing.T) {
	tests := []struct {
		name             string
		selfPos, selfVel physics.Vector2D
		otherPos         physics.Vector2D
		otherVel         physics.Vector2D
		wantX, wantY     bool
	}{
		{
			name:    "shallow on x",
			selfPos: physics.Vector2D{X: 100, Y: 100}, selfVel: physics.Vector2D{X: 2},
			otherPos: physics.Vector2D{X: 120, Y: 105}, otherVel: physics.Vector2D{X: -1, Y: 1},
			wantX: true,
		},
		{
			name:    "shallow on y",
			selfPos: physics.Vector2D{X: 100, Y: 100}, selfVel: physics.Vector2D{Y: 3},
			otherPos: physics.Vector2D{X: 104, Y: 125}, otherVel: physics.Vector2D{X: 1, Y: -2},
			wantY: true,
		},
		{
			name:    "diagonal tie",
			selfPos: physics.Vector2D{X: 100, Y: 100}, selfVel: physics.Vector2D{X: 1, Y: 1},
			otherPos: physics.Vector2D{X: 110, Y: 110}, otherVel: physics.Vector2D{X: -1, Y: -1},
			wantX: true, wantY: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := hull(tt.selfPos, tt.selfVel)
			other := hull(tt.otherPos, tt.otherVel)

			wantSelf := tt.selfVel.Scale(0.2).Add(tt.otherVel.Scale(0.75))
			wantOther := tt.otherVel.Scale(0.2).Add(tt.selfVel.Scale(0.75))
			wantPos := tt.otherPos
			if tt.wantX {
				wantPos.X += wantOther.X
			}
			if tt.wantY {
				wantPos.Y += wantOther.Y
			}

			x, y := ResolveShipCollision(self, other)

			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ResolveShipCollision() axes = %v,%v, want %v,%v", x, y, tt.wantX, tt.wantY)
			}
			if !near(self.Velocity, wantSelf) {
				t.Errorf("self velocity = %v, want %v", self.Velocity, wantSelf)
			}
			if !near(other.Velocity, wantOther) {
				t.Errorf("other velocity = %v, want %v", other.Velocity, wantOther)
			}
			if !near(other.Position, wantPos) {
				t.Errorf("other position = %v, want %v", other.Position, wantPos)
			}
			if self.Position != tt.selfPos {
				t.Errorf("self position moved to %v", self.Position)
			}
		})
	}
}

func TestGame_ShipCollisionDuringUpdate(t *testing.T) {
	cfg := testConfig()
	cfg.Ships[0].X, cfg.Ships[0].Y = 300, 300
	cfg.Ships[1].X, cfg.Ships[1].Y = 320, 300
	game := startedGame(t, cfg)

	var collisions []*event.CollisionEvent
	game.EventBus.Subscribe(event.ShipCollision, func(e event.Event) {
		collisions = append(collisions, e.(*event.CollisionEvent))
	})

	a, b := game.Ships[0], game.Ships[1]
	a.Velocity = physics.Vector2D{X: 2}
	b.Velocity = physics.Vector2D{X: -2}

	game.Update(frame)

	wantA := physics.Vector2D{X: 2*0.2 - 2*0.75}
	wantB := physics.Vector2D{X: -2*0.2 + 2*0.75}
	if !near(a.Velocity, wantA) || !near(b.Velocity, wantB) {
		t.Errorf("velocities = %v, %v, want %v, %v", a.Velocity, b.Velocity, wantA, wantB)
	}
	if len(collisions) != 1 {
		t.Fatalf("ShipCollision events = %d, want 1", len(collisions))
	}
	if collisions[0].EntityA != uint64(a.ID) || collisions[0].EntityB != uint64(b.ID) {
		t.Errorf("collision pair = %d,%d, want %d,%d", collisions[0].EntityA, collisions[0].EntityB, a.ID, b.ID)
	}
	if !a.Collided || a.LastCollision != frame {
		t.Errorf("LastCollision = %v (collided %v), want %v", a.LastCollision, a.Collided, frame)
	}
	if b.Collided {
		t.Error("second ship stamped with the collision tick")
	}
}

func TestGame_ProjectileHitsEnemyNotOwner(t *testing.T) {
	cfg := testConfig()
	cfg.Ships[0].X, cfg.Ships[0].Y = 100, 300
	cfg.Ships[1].X, cfg.Ships[1].Y = 140, 300
	game := startedGame(t, cfg)

	var hits []*event.HitEvent
	game.EventBus.Subscribe(event.ProjectileHit, func(e event.Event) {
		hits = append(hits, e.(*event.HitEvent))
	})

	game.KeyDown("E")
	game.KeyUp("E")
	for i := 0; i < 6; i++ {
		game.Update(frame)
	}

	owner, target := game.Ships[0], game.Ships[1]
	if owner.Hull != owner.MaxHull {
		t.Errorf("owner hull = %d, want untouched %d", owner.Hull, owner.MaxHull)
	}
	if want := target.MaxHull - cfg.Weapons.Torpedo.Damage; target.Hull != want {
		t.Errorf("target hull = %d, want %d", target.Hull, want)
	}
	if len(hits) != 1 {
		t.Fatalf("ProjectileHit events = %d, want 1", len(hits))
	}
	if hits[0].TargetID != uint64(target.ID) || hits[0].ShooterID != uint64(owner.ID) {
		t.Errorf("hit = %+v, want shooter %d target %d", hits[0], owner.ID, target.ID)
	}
	if owner.ActiveTorpedoes() != 0 {
		t.Errorf("spent torpedo still active")
	}
}
