package entity

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// RequiredExperience is the experience needed to advance from the given
// level to the next one. Linear, not exponential.
func RequiredExperience(level int) int {
	return 100 + 25*level
}

// Hero is a player-selectable avatar with a fixed skill loadout.
// Experience accumulates via SetExperience/GiveExperience and spills into
// levels; the residual always stays in [0, RequiredExperience(level)).
type Hero struct {
	Entity

	exp int

	Skills   []*Skill
	Passives []*Skill
	Items    []*Item

	// OnExpChange fires once per experience mutation with the residual
	// experience, the previous value, and the signed exp/level deltas.
	OnExpChange func(exp, prevExp, expDelta, levelDelta int)
}

// SetLevel sets the hero to an absolute level, zeroing experience. Unlike
// the base entity this path validates instead of clamping: a negative or
// over-cap level is rejected and the hero is left untouched.
func (h *Hero) SetLevel(level int) error {
	if level < 0 || (h.MaxLevel >= 0 && level > h.MaxLevel) {
		return ErrInvalidLevel
	}
	h.exp = 0
	h.applyLevel(level)
	return nil
}

func (h *Hero) Experience() int {
	return h.exp
}

// SetExperience sets the hero's total pending experience and converts any
// overflow into levels. Negative values are rejected with the hero
// untouched.
func (h *Hero) SetExperience(exp int) error {
	if exp < 0 {
		return ErrInvalidExperience
	}
	h.applyExperience(exp)
	return nil
}

// GiveExperience shifts experience by delta. A negative delta that crosses
// below the current level's floor carries levels down; the floor state is
// level 0 with zero experience, reached silently.
func (h *Hero) GiveExperience(delta int) {
	h.applyExperience(h.exp + delta)
}

func (h *Hero) applyExperience(exp int) {
	if exp == h.exp {
		return
	}
	prevExp := h.exp
	expDelta := exp - h.exp
	h.exp = exp

	levelDelta := 0
	for h.exp >= RequiredExperience(h.Level()+levelDelta) {
		if h.MaxLevel >= 0 && h.Level()+levelDelta >= h.MaxLevel {
			// Capped: no level left to absorb the overflow. Pin the
			// residual just under the threshold to keep the invariant.
			h.exp = RequiredExperience(h.MaxLevel) - 1
			break
		}
		h.exp -= RequiredExperience(h.Level() + levelDelta)
		levelDelta++
	}
	for h.exp < 0 {
		if h.Level()+levelDelta <= 0 {
			h.exp = 0
			levelDelta = -h.Level()
			break
		}
		h.exp += RequiredExperience(h.Level() - 1 + levelDelta)
		levelDelta--
	}

	// Raw level application: the public SetLevel would zero the residual.
	// Runs before the notification so observers see the carried level.
	h.applyLevel(h.Level() + levelDelta)
	if h.OnExpChange != nil {
		h.OnExpChange(h.exp, prevExp, expDelta, levelDelta)
	}
}

// Restore reinstates persisted progress. Rows written under older balance
// values are tolerated: negative fields floor at zero, levels above the cap
// clamp to it, and a residual at or past the threshold is re-converted.
func (h *Hero) Restore(level, exp int) {
	if level < 0 {
		level = 0
	}
	if h.MaxLevel >= 0 && level > h.MaxLevel {
		level = h.MaxLevel
	}
	h.applyLevel(level)
	if exp < 0 {
		exp = 0
	}
	h.applyExperience(exp)
}

// SkillPoints is the number of level points not yet spent on skills.
func (h *Hero) SkillPoints() int {
	used := 0
	for _, s := range h.Skills {
		used += s.Level()
	}
	return h.Level() - used
}

// ExecuteSkills invokes the handler registered under method on every
// passive, then every skill with level > 0, then every item, in that order.
// The ordering is part of the contract: passives observe state before
// active skills, and active skills before items.
func (h *Hero) ExecuteSkills(method string, ev *event.Event) {
	for _, p := range h.Passives {
		p.ExecuteMethod(method, ev)
	}
	for _, s := range h.Skills {
		if s.Level() > 0 {
			s.ExecuteMethod(method, ev)
		}
	}
	for _, it := range h.Items {
		it.ExecuteMethod(method, ev)
	}
}

// ReleaseTimers detaches every cooldown timer owned by the hero's loadout.
// Called when the owning player is evicted so no timer outlives its skill.
func (h *Hero) ReleaseTimers(s *cooldown.Scheduler) {
	for _, p := range h.Passives {
		p.ReleaseTimer(s)
	}
	for _, sk := range h.Skills {
		sk.ReleaseTimer(s)
	}
	for _, it := range h.Items {
		it.ReleaseTimer(s)
	}
}
