// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-spacewar/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Kind tags what an entity is.
type Kind int

const (
	KindShip Kind = iota
	KindTorpedo
	KindPhaser
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindTorpedo:
		return "torpedo"
	case KindPhaser:
		return "phaser"
	default:
		return "unknown"
	}
}

// Entity is the base interface for all game objects
type Entity interface {
	GetID() ID
	GetKind() Kind
	GetPosition() physics.Vector2D
	Bounds() physics.Rect
	Update()
	Render(r Renderer)
}

// BaseEntity holds the state every space object shares. Position is the
// center of the sprite in screen pixels, Velocity is in pixels per frame and
// Angle is a heading in degrees where 0 points right and 90 points down.
type BaseEntity struct {
	ID       ID
	Kind     Kind
	Position physics.Vector2D
	Velocity physics.Vector2D
	Angle    float64
	Width    float64
	Height   float64
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetKind returns the entity's type tag
func (e *BaseEntity) GetKind() Kind {
	return e.Kind
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// Bounds returns the axis-aligned rectangle used for overlap tests.
func (e *BaseEntity) Bounds() physics.Rect {
	return physics.RectAt(e.Position, e.Width, e.Height)
}

// Update advances the entity by one frame of its velocity.
func (e *BaseEntity) Update() {
	e.Position = e.Position.Add(e.Velocity)
}

// Render is a no-op; concrete types draw themselves.
func (e *BaseEntity) Render(r Renderer) {}

// Rotate turns the entity by delta degrees, keeping Angle in [0, 360).
func (e *BaseEntity) Rotate(delta float64) {
	e.Angle = physics.NormalizeDegrees(e.Angle + delta)
}

// Accelerate adds magnitude along the current heading to the velocity.
func (e *BaseEntity) Accelerate(magnitude float64) {
	e.Velocity = e.Velocity.Add(physics.FromDegrees(e.Angle, magnitude))
}

var lastID atomic.Uint64

// GenerateID returns a process-wide unique entity ID.
func GenerateID() ID {
	return ID(lastID.Add(1))
}
