package entity

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
	"github.com/EinariTuukkanen/Hero-Wars/internal/gate"
)

// Skill is an ability owned by a hero. A skill at level 0 is owned but
// inactive and never dispatched. Handlers are bound per variant at
// registration time; looking one up by a method name the variant never
// registered is the no-op case, not an error.
type Skill struct {
	Entity

	Cooldown int             // base cooldown in seconds (0 = none)
	Timer    *cooldown.Timer // nil for skills without a cooldown gate

	handlers map[string]gate.Handler
}

// SetHandler binds a (possibly gated) handler to a dispatch method name.
func (s *Skill) SetHandler(method string, h gate.Handler) {
	if s.handlers == nil {
		s.handlers = make(map[string]gate.Handler)
	}
	s.handlers[method] = h
}

// ExecuteMethod runs the handler bound to method, if any. The bool reports
// whether a handler was bound.
func (s *Skill) ExecuteMethod(method string, ev *event.Event) (gate.Result, bool) {
	h, ok := s.handlers[method]
	if !ok {
		return gate.Executed, false
	}
	return h(ev), true
}

// RemainingCooldown reports the seconds left on the skill's cooldown
// (0 when idle or when the skill has no timer).
func (s *Skill) RemainingCooldown() int {
	if s.Timer == nil {
		return 0
	}
	return s.Timer.Remaining()
}

// ReleaseTimer detaches the skill's cooldown timer from the scheduler.
// Safe on skills without one.
func (s *Skill) ReleaseTimer(sched *cooldown.Scheduler) {
	if s.Timer != nil {
		sched.Detach(s.Timer)
	}
}

// Item is a purchasable, hero-equippable skill. Non-permanent items are
// removed when the hero dies.
type Item struct {
	Skill

	Permanent bool
	Limit     int // max concurrently equipped copies on one hero (0 = unlimited)
}
