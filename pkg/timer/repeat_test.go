package timer

import (
	"testing"
	"time"
)

const ms = time.Millisecond

func TestFrameClock_Advance(t *testing.T) {
	c := NewFrameClock()
	if c.Now() != 0 {
		t.Fatalf("Now() = %v, want 0", c.Now())
	}
	c.Advance(16 * ms)
	c.Advance(-5 * ms)
	if got := c.Advance(17 * ms); got != 33*ms {
		t.Errorf("Advance() = %v, want %v", got, 33*ms)
	}
	c.Set(0)
	if c.Now() != 0 {
		t.Errorf("Set(0) left clock at %v", c.Now())
	}
}

func TestRepeats_FiresOncePerInterval(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Duration
		expected int
	}{
		{"before_first_interval", 99 * ms, 0},
		{"exactly_one_interval", 100 * ms, 1},
		{"between_intervals", 150 * ms, 1},
		{"three_intervals", 300 * ms, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRepeats[string]()
			r.Set("thrust", 100*ms, 0)
			if got := len(r.Due(tt.now)); got != tt.expected {
				t.Errorf("Due(%v) fired %d times, want %d", tt.now, got, tt.expected)
			}
		})
	}
}

func TestRepeats_DueConsumesExpiries(t *testing.T) {
	r := NewRepeats[string]()
	r.Set("fire", 150*ms, 0)

	if got := len(r.Due(150 * ms)); got != 1 {
		t.Fatalf("first Due() fired %d, want 1", got)
	}
	if got := len(r.Due(160 * ms)); got != 0 {
		t.Errorf("second Due() fired %d, want 0", got)
	}
	fired := r.Due(300 * ms)
	if len(fired) != 1 || fired[0].At != 300*ms {
		t.Errorf("third Due() = %v, want one expiry at 300ms", fired)
	}
}

func TestRepeats_CancelStopsFiring(t *testing.T) {
	r := NewRepeats[int]()
	r.Set(1, 100*ms, 0)
	r.Set(2, 100*ms, 0)
	r.Cancel(1)

	if r.Active(1) {
		t.Error("Active(1) = true after Cancel")
	}
	fired := r.Due(1000 * ms)
	for _, f := range fired {
		if f.Key == 1 {
			t.Fatalf("cancelled timer fired at %v", f.At)
		}
	}
	if len(fired) != 10 {
		t.Errorf("remaining timer fired %d times, want 10", len(fired))
	}

	r.CancelAll()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after CancelAll, want 0", r.Len())
	}
}

func TestRepeats_SetRestartsTimer(t *testing.T) {
	r := NewRepeats[string]()
	r.Set("rotate", 100*ms, 0)
	r.Set("rotate", 100*ms, 80*ms)

	if got := len(r.Due(150 * ms)); got != 0 {
		t.Errorf("restarted timer fired early: %d", got)
	}
	if got := len(r.Due(180 * ms)); got != 1 {
		t.Errorf("restarted timer fired %d times at 180ms, want 1", got)
	}
}

func TestRepeats_NonPositiveIntervalCancels(t *testing.T) {
	r := NewRepeats[string]()
	r.Set("phaser", 100*ms, 0)
	r.Set("phaser", 0, 0)
	if r.Active("phaser") {
		t.Error("Set() with zero interval should cancel the timer")
	}
}

func TestRepeats_OrderedByTimeThenSetOrder(t *testing.T) {
	r := NewRepeats[string]()
	r.Set("slow", 100*ms, 0)
	r.Set("fast", 50*ms, 0)

	fired := r.Due(100 * ms)
	want := []Fired[string]{
		{Key: "fast", At: 50 * ms},
		{Key: "slow", At: 100 * ms},
		{Key: "fast", At: 100 * ms},
	}
	if len(fired) != len(want) {
		t.Fatalf("Due() = %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("Due()[%d] = %v, want %v", i, fired[i], want[i])
		}
	}
}
