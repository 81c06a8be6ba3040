package persist

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/EinariTuukkanen/Hero-Wars/internal/session"
)

// PlayerRepo reads and writes the players table, one row per steamid.
type PlayerRepo struct {
	db *DB
}

func NewPlayerRepo(db *DB) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// Load returns nil for an identity that has never been saved.
func (r *PlayerRepo) Load(ctx context.Context, steamID string) (*session.PlayerRow, error) {
	row := &session.PlayerRow{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT steamid, gold, hero_cls_id FROM players WHERE steamid = $1`, steamID,
	).Scan(&row.SteamID, &row.Gold, &row.ActiveHeroID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *PlayerRepo) Save(ctx context.Context, row *session.PlayerRow) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO players (steamid, gold, hero_cls_id, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (steamid) DO UPDATE
		 SET gold = EXCLUDED.gold, hero_cls_id = EXCLUDED.hero_cls_id, updated_at = NOW()`,
		row.SteamID, row.Gold, row.ActiveHeroID,
	)
	return err
}
