// pkg/event/event_test.go
package event

import (
	"testing"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    any
	}{
		{"torpedo fired", TorpedoFired, "ship"},
		{"collision", ShipCollision, 123},
		{"empty source", GameStarted, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &BaseEvent{EventType: tt.eventType, Source: tt.source}
			if e.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", e.GetType(), tt.eventType)
			}
			if e.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", e.GetSource(), tt.source)
			}
		})
	}
}

func TestBusSubscribe_SingleHandler_ReturnsValidSubscription(t *testing.T) {
	bus := NewEventBus()

	sub := bus.Subscribe(PhaserFired, func(e Event) {})
	if sub == nil {
		t.Fatal("Subscribe() returned nil subscription")
	}
	if sub.ID == 0 {
		t.Error("subscription ID should be non-zero")
	}
	if sub.Type != PhaserFired {
		t.Errorf("subscription type = %v, want %v", sub.Type, PhaserFired)
	}
	if sub.Cancel == nil {
		t.Error("subscription Cancel should not be nil")
	}
	if got := bus.HandlerCount(PhaserFired); got != 1 {
		t.Errorf("HandlerCount() = %d, want 1", got)
	}
}

func TestBusPublish_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int

	bus.Subscribe(ShipDestroyed, func(e Event) { order = append(order, 1) })
	bus.Subscribe(ShipDestroyed, func(e Event) { order = append(order, 2) })
	bus.Subscribe(TorpedoFired, func(e Event) { order = append(order, 99) })

	bus.Publish(NewShipEvent(ShipDestroyed, nil, 0, 7, 1))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("handlers ran as %v, want [1 2]", order)
	}
}

func TestSubscriptionCancel_ValidSubscription_RemovesHandler(t *testing.T) {
	bus := NewEventBus()
	calls := 0

	sub := bus.Subscribe(ShipCollision, func(e Event) { calls++ })
	keep := bus.Subscribe(ShipCollision, func(e Event) { calls += 10 })

	sub.Cancel()
	bus.Publish(NewCollisionEvent(nil, 0, 1, 2))

	if calls != 10 {
		t.Errorf("calls = %d, want 10 (only the remaining handler)", calls)
	}

	keep.Cancel()
	keep.Cancel()
	if got := bus.HandlerCount(ShipCollision); got != 0 {
		t.Errorf("HandlerCount() = %d after cancelling all, want 0", got)
	}
}

func TestBusPublish_NilBusIsNoop(t *testing.T) {
	var bus *Bus
	bus.Publish(&BaseEvent{EventType: GameStarted})
}

func TestNewHitEvent(t *testing.T) {
	e := NewHitEvent("src", 0, 10, 1, 2, 25)
	if e.GetType() != ProjectileHit {
		t.Errorf("GetType() = %v, want %v", e.GetType(), ProjectileHit)
	}
	if e.ShooterID != 1 || e.TargetID != 2 || e.Damage != 25 {
		t.Errorf("NewHitEvent() = %+v, unexpected fields", e)
	}
}
