package session

import "context"

// PlayerRow is the persisted players record: one row per durable identity.
type PlayerRow struct {
	SteamID      string
	Gold         int
	ActiveHeroID string // hero class id, "" when never set
}

// HeroRow is the persisted heroes record, keyed by (steamid, class id).
type HeroRow struct {
	ClassID string
	Level   int
	Exp     int
}

// SkillRow is the persisted skills record, keyed by
// (steamid, hero class id, skill class id).
type SkillRow struct {
	ClassID string
	Level   int
}

// Resolver maps a volatile session id to a durable player identity.
// Network identity resolution lives outside this package.
type Resolver interface {
	SteamID(sessionID int) (string, error)
}

// Store is the keyed table store behind the persistence contract. Absent
// rows load as nil/empty rather than erroring; saves are synchronous and
// bounded by the caller's context.
type Store interface {
	LoadPlayer(ctx context.Context, steamID string) (*PlayerRow, error)
	SavePlayer(ctx context.Context, row *PlayerRow) error
	LoadHeroes(ctx context.Context, steamID string) ([]HeroRow, error)
	LoadSkills(ctx context.Context, steamID, heroClassID string) ([]SkillRow, error)
	SaveHero(ctx context.Context, steamID string, hero HeroRow, skills []SkillRow) error
}
