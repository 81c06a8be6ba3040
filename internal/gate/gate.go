// Package gate provides composable execution gates for skill handlers:
// a probability gate and a cooldown gate. Gates never error; a blocked
// execution is a distinct Result, and a blocked handler has no side effects.
package gate

import (
	"math/rand"

	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// Result reports whether a gated handler ran or which gate blocked it.
type Result int

const (
	Executed Result = iota
	SkippedChance
	SkippedCooldown
)

func (r Result) String() string {
	switch r {
	case Executed:
		return "executed"
	case SkippedChance:
		return "skipped: chance"
	case SkippedCooldown:
		return "skipped: cooldown"
	default:
		return "unknown"
	}
}

// Handler is a skill's per-event callback after gating.
type Handler func(ev *event.Event) Result

// Run adapts a plain effect into a Handler that always executes.
func Run(fn func(ev *event.Event)) Handler {
	return func(ev *event.Event) Result {
		fn(ev)
		return Executed
	}
}

// randDraw is replaceable in tests to force a gate decision.
var randDraw = func() int { return rand.Intn(101) }

// Chance gates next behind a static percentage in [0,100]. The draw is an
// inclusive integer in [0,100]; next runs when draw <= pct.
func Chance(pct int, next Handler) Handler {
	return ChanceBy(func(*event.Event) int { return pct }, next)
}

// ChanceBy gates next behind a percentage computed per event.
func ChanceBy(pct func(ev *event.Event) int, next Handler) Handler {
	return func(ev *event.Event) Result {
		if randDraw() <= pct(ev) {
			return next(ev)
		}
		return SkippedChance
	}
}

// Cooldown gates next behind a static cooldown in seconds. When the timer is
// idle the countdown starts and next runs; while cooling the call is skipped
// without side effects.
func Cooldown(t *cooldown.Timer, seconds int, next Handler) Handler {
	return CooldownBy(t, func(*event.Event) int { return seconds }, next)
}

// CooldownBy gates next behind a cooldown computed per event.
func CooldownBy(t *cooldown.Timer, seconds func(ev *event.Event) int, next Handler) Handler {
	return func(ev *event.Event) Result {
		if t.Remaining() > 0 {
			return SkippedCooldown
		}
		t.Start(seconds(ev))
		return next(ev)
	}
}
