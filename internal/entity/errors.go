package entity

import "errors"

var (
	// ErrInvalidLevel rejects a level assignment outside [0, max] on the
	// validating (hero) path. The base entity path clamps instead.
	ErrInvalidLevel = errors.New("entity: level out of bounds")

	// ErrInvalidExperience rejects a negative experience assignment.
	ErrInvalidExperience = errors.New("entity: negative experience")

	// ErrNoHeroes is fatal at startup: the server refuses to accept events
	// until at least one enabled hero variant is registered.
	ErrNoHeroes = errors.New("entity: no enabled hero variants registered")
)
