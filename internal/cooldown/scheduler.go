// Package cooldown drives per-skill cooldown timers off a shared one-second
// tick. A skill owns exactly one Timer; starting a timer that is already
// cooling replaces the remaining time instead of stacking a second countdown.
package cooldown

import "sync"

// Scheduler ticks all attached timers. Tick is called once per second from
// the game loop; Remaining/Start are safe from other goroutines as well,
// since execution gates read cooldown state on the event path while the
// ticker may live elsewhere.
type Scheduler struct {
	mu     sync.Mutex
	timers map[*Timer]struct{}
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[*Timer]struct{}),
	}
}

// NewTimer creates a timer attached to this scheduler. onReset fires when a
// countdown reaches zero (not when a timer is detached mid-cooldown). onReset
// may be nil.
func (s *Scheduler) NewTimer(onReset func()) *Timer {
	t := &Timer{s: s, onReset: onReset}
	s.mu.Lock()
	s.timers[t] = struct{}{}
	s.mu.Unlock()
	return t
}

// Detach removes a timer from the scheduler so it is never ticked again.
// Called when the owning skill's hero is destroyed.
func (s *Scheduler) Detach(t *Timer) {
	s.mu.Lock()
	delete(s.timers, t)
	t.remaining = 0
	s.mu.Unlock()
}

// Tick advances every cooling timer by one second. Reset callbacks fire
// after the lock is released so they may read timer state freely.
func (s *Scheduler) Tick() {
	var resets []func()
	s.mu.Lock()
	for t := range s.timers {
		if t.remaining <= 0 {
			continue
		}
		t.remaining--
		if t.remaining == 0 && t.onReset != nil {
			resets = append(resets, t.onReset)
		}
	}
	s.mu.Unlock()
	for _, fn := range resets {
		fn()
	}
}

// Timer is the cooldown state of one skill instance: Idle when remaining is
// zero, Cooling otherwise.
type Timer struct {
	s         *Scheduler
	remaining int
	onReset   func()
}

// Start begins a countdown of the given number of seconds, replacing any
// countdown already in progress. Non-positive durations leave the timer idle.
func (t *Timer) Start(seconds int) {
	t.s.mu.Lock()
	if seconds < 0 {
		seconds = 0
	}
	t.remaining = seconds
	t.s.mu.Unlock()
}

// Remaining reports the seconds left on the countdown (0 when idle).
func (t *Timer) Remaining() int {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.remaining
}

// Idle reports whether no countdown is in progress.
func (t *Timer) Idle() bool {
	return t.Remaining() <= 0
}
