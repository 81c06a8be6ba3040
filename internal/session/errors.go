package session

import "errors"

var (
	// ErrUnownedHero rejects switching to (or acting on) a hero the player
	// does not own.
	ErrUnownedHero = errors.New("session: hero not owned by player")

	// ErrInvalidGold rejects a negative gold assignment.
	ErrInvalidGold = errors.New("session: negative gold")

	// ErrItemLimit rejects equipping past the per-hero item cap or an
	// item's own concurrency limit.
	ErrItemLimit = errors.New("session: item limit reached")
)
