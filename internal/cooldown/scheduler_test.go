package cooldown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerCountdown(t *testing.T) {
	s := NewScheduler()
	timer := s.NewTimer(nil)

	assert.True(t, timer.Idle())

	timer.Start(3)
	assert.Equal(t, 3, timer.Remaining())
	assert.False(t, timer.Idle())

	s.Tick()
	s.Tick()
	assert.Equal(t, 1, timer.Remaining())

	s.Tick()
	assert.Equal(t, 0, timer.Remaining())
	assert.True(t, timer.Idle())

	// Ticking an idle timer never goes negative.
	s.Tick()
	assert.Equal(t, 0, timer.Remaining())
}

func TestTimerStartReplaces(t *testing.T) {
	s := NewScheduler()
	timer := s.NewTimer(nil)

	timer.Start(10)
	s.Tick()
	assert.Equal(t, 9, timer.Remaining())

	// A second Start replaces the countdown instead of stacking.
	timer.Start(3)
	assert.Equal(t, 3, timer.Remaining())
}

func TestTimerStartNonPositive(t *testing.T) {
	s := NewScheduler()
	timer := s.NewTimer(nil)

	timer.Start(-5)
	assert.True(t, timer.Idle())

	timer.Start(0)
	assert.True(t, timer.Idle())
}

func TestTimerResetCallback(t *testing.T) {
	s := NewScheduler()
	fired := 0
	timer := s.NewTimer(func() { fired++ })

	timer.Start(2)
	s.Tick()
	assert.Equal(t, 0, fired)
	s.Tick()
	assert.Equal(t, 1, fired)

	// Only the transition to zero fires the callback.
	s.Tick()
	assert.Equal(t, 1, fired)
}

func TestSchedulerDetach(t *testing.T) {
	s := NewScheduler()
	fired := 0
	timer := s.NewTimer(func() { fired++ })

	timer.Start(1)
	s.Detach(timer)

	s.Tick()
	assert.Equal(t, 0, timer.Remaining())
	// Detach mid-cooldown does not fire the reset callback.
	assert.Equal(t, 0, fired)
}

func TestSchedulerTicksAllTimers(t *testing.T) {
	s := NewScheduler()
	a := s.NewTimer(nil)
	b := s.NewTimer(nil)

	a.Start(2)
	b.Start(5)
	s.Tick()

	assert.Equal(t, 1, a.Remaining())
	assert.Equal(t, 4, b.Remaining())
}
