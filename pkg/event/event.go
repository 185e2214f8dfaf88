// pkg/event/event.go
package event

import "time"

// Type represents the type of event
type Type string

// Gameplay event types
const (
	GameStarted   Type = "game_started"
	GameEnded     Type = "game_ended"
	ShipDestroyed Type = "ship_destroyed"
	TorpedoFired  Type = "torpedo_fired"
	PhaserFired   Type = "phaser_fired"
	ShipCollision Type = "ship_collision"
	ProjectileHit Type = "projectile_hit"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() any
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    any
	At        time.Duration
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() any {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus dispatches events synchronously to subscribers in subscription order.
// It belongs to the game loop and is not safe for concurrent use.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers. A nil bus drops the
// event, so components can run without one.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, r := range b.handlers[e.GetType()] {
		r.handler(e)
	}
}

// HandlerCount returns the number of handlers registered for eventType.
func (b *Bus) HandlerCount(eventType Type) int {
	return len(b.handlers[eventType])
}

// ShipEvent reports something that happened to a single ship.
type ShipEvent struct {
	BaseEvent
	ShipID   uint64
	PlayerID int
}

// NewShipEvent creates a new ship event
func NewShipEvent(eventType Type, source any, at time.Duration, shipID uint64, playerID int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source, At: at},
		ShipID:    shipID,
		PlayerID:  playerID,
	}
}

// CollisionEvent reports two ships whose hulls touched.
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source any, at time.Duration, entityA, entityB uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{EventType: ShipCollision, Source: source, At: at},
		EntityA:   entityA,
		EntityB:   entityB,
	}
}

// HitEvent reports a projectile striking a ship.
type HitEvent struct {
	BaseEvent
	ProjectileID uint64
	ShooterID    uint64
	TargetID     uint64
	Damage       int
}

// NewHitEvent creates a new projectile hit event
func NewHitEvent(source any, at time.Duration, projectileID, shooterID, targetID uint64, damage int) *HitEvent {
	return &HitEvent{
		BaseEvent:    BaseEvent{EventType: ProjectileHit, Source: source, At: at},
		ProjectileID: projectileID,
		ShooterID:    shooterID,
		TargetID:     targetID,
		Damage:       damage,
	}
}

// GameEndedEvent names the surviving ship, if any.
type GameEndedEvent struct {
	BaseEvent
	WinnerID   uint64
	WinnerName string
	Draw       bool
}
