package session

import "github.com/EinariTuukkanen/Hero-Wars/internal/entity"

// Player binds a volatile session identity to Hero Wars state for one
// connected player. The heroes slice is exclusively owned: no hero instance
// is shared between players.
type Player struct {
	SteamID   string // durable cross-session key
	SessionID int    // volatile, current session only

	gold   int
	Heroes []*entity.Hero
	active *entity.Hero
}

func (p *Player) Gold() int {
	return p.gold
}

// SetGold rejects negative values, leaving the previous amount in place.
func (p *Player) SetGold(gold int) error {
	if gold < 0 {
		return ErrInvalidGold
	}
	p.gold = gold
	return nil
}

// ActiveHero is the hero currently in use. Never nil after CreatePlayer.
func (p *Player) ActiveHero() *entity.Hero {
	return p.active
}

// Owns reports whether the given hero instance is in the player's hero set.
func (p *Player) Owns(hero *entity.Hero) bool {
	for _, h := range p.Heroes {
		if h == hero {
			return true
		}
	}
	return false
}

// HeroByClass finds an owned hero by class id (nil when not owned).
func (p *Player) HeroByClass(classID string) *entity.Hero {
	for _, h := range p.Heroes {
		if h.ClassID == classID {
			return h
		}
	}
	return nil
}

// TotalLevel is the sum of all owned heroes' levels.
func (p *Player) TotalLevel() int {
	total := 0
	for _, h := range p.Heroes {
		total += h.Level()
	}
	return total
}
