package persist

import (
	"context"

	"github.com/EinariTuukkanen/Hero-Wars/internal/session"
)

// Store composes the repos into the session layer's storage contract.
type Store struct {
	players *PlayerRepo
	heroes  *HeroRepo
}

var _ session.Store = (*Store)(nil)

func NewStore(db *DB) *Store {
	return &Store{
		players: NewPlayerRepo(db),
		heroes:  NewHeroRepo(db),
	}
}

func (s *Store) LoadPlayer(ctx context.Context, steamID string) (*session.PlayerRow, error) {
	return s.players.Load(ctx, steamID)
}

func (s *Store) SavePlayer(ctx context.Context, row *session.PlayerRow) error {
	return s.players.Save(ctx, row)
}

func (s *Store) LoadHeroes(ctx context.Context, steamID string) ([]session.HeroRow, error) {
	return s.heroes.LoadByOwner(ctx, steamID)
}

func (s *Store) LoadSkills(ctx context.Context, steamID, heroClassID string) ([]session.SkillRow, error) {
	return s.heroes.LoadSkills(ctx, steamID, heroClassID)
}

func (s *Store) SaveHero(ctx context.Context, steamID string, hero session.HeroRow, skills []session.SkillRow) error {
	return s.heroes.Save(ctx, steamID, hero, skills)
}
