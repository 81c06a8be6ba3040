// Package entity holds the Hero Wars progression model: leveled entities,
// heroes with experience conversion, skills with cooldown timers, and the
// variant registry that replaces runtime class discovery.
package entity

// Entity is the base of everything with a level: heroes, skills and items.
// Level mutation goes through SetLevel only.
type Entity struct {
	ClassID       string // stable registry/persistence identifier
	Name          string
	Description   string
	Author        string
	Cost          int
	MaxLevel      int // negative = unbounded
	RequiredLevel int // owner level required before the entity is usable
	Enabled       bool

	level int

	// OnLevelChange fires only when the level actually changes.
	OnLevelChange func(prev, level int)
}

func (e *Entity) Level() int {
	return e.level
}

// SetLevel applies the base policy: negative levels are rejected, levels
// above MaxLevel are silently clamped to it. Heroes override this with a
// strict validating setter.
func (e *Entity) SetLevel(level int) error {
	if level < 0 {
		return ErrInvalidLevel
	}
	if e.MaxLevel >= 0 && level > e.MaxLevel {
		level = e.MaxLevel
	}
	e.applyLevel(level)
	return nil
}

// applyLevel is the raw setter shared with the hero's experience carry:
// no clamping, no experience reset, notification only on change.
func (e *Entity) applyLevel(level int) {
	if level == e.level {
		return
	}
	prev := e.level
	e.level = level
	if e.OnLevelChange != nil {
		e.OnLevelChange(prev, level)
	}
}
