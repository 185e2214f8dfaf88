package timer

import (
	"sort"
	"time"
)

// Repeats is a table of periodic timers keyed by K. Setting a timer replaces
// any previous timer under the same key; cancelling removes it. Nothing fires
// on its own: the owner polls Due once per frame.
type Repeats[K comparable] struct {
	timers map[K]*repeat
	order  map[K]int
	seq    int
}

type repeat struct {
	interval time.Duration
	next     time.Duration
}

// Fired is a single expiry of a repeat timer.
type Fired[K comparable] struct {
	Key K
	At  time.Duration
}

// NewRepeats creates an empty timer table.
func NewRepeats[K comparable]() *Repeats[K] {
	return &Repeats[K]{
		timers: make(map[K]*repeat),
		order:  make(map[K]int),
	}
}

// Set (re)starts the timer for key so that it first fires at now+interval and
// every interval after that. A non-positive interval cancels the timer.
func (r *Repeats[K]) Set(key K, interval, now time.Duration) {
	if interval <= 0 {
		r.Cancel(key)
		return
	}
	r.timers[key] = &repeat{interval: interval, next: now + interval}
	r.seq++
	r.order[key] = r.seq
}

// Cancel stops the timer for key. Cancelling an unknown key is a no-op.
func (r *Repeats[K]) Cancel(key K) {
	delete(r.timers, key)
	delete(r.order, key)
}

// CancelAll stops every timer.
func (r *Repeats[K]) CancelAll() {
	for key := range r.timers {
		r.Cancel(key)
	}
}

// Active reports whether key currently has a running timer.
func (r *Repeats[K]) Active(key K) bool {
	_, ok := r.timers[key]
	return ok
}

// Len returns the number of running timers.
func (r *Repeats[K]) Len() int {
	return len(r.timers)
}

// Due collects every expiry up to and including now, one entry per elapsed
// interval, ordered by expiry time. Ties are broken by the order in which
// the timers were set.
func (r *Repeats[K]) Due(now time.Duration) []Fired[K] {
	var fired []Fired[K]
	for key, t := range r.timers {
		for t.next <= now {
			fired = append(fired, Fired[K]{Key: key, At: t.next})
			t.next += t.interval
		}
	}
	sort.SliceStable(fired, func(i, j int) bool {
		if fired[i].At != fired[j].At {
			return fired[i].At < fired[j].At
		}
		return r.order[fired[i].Key] < r.order[fired[j].Key]
	})
	return fired
}
