package persist

import (
	"context"
	"fmt"

	"github.com/EinariTuukkanen/Hero-Wars/internal/session"
)

// HeroRepo reads and writes the heroes and skills tables. A hero and its
// skill levels are saved in one transaction so a checkpoint is never half
// applied.
type HeroRepo struct {
	db *DB
}

func NewHeroRepo(db *DB) *HeroRepo {
	return &HeroRepo{db: db}
}

func (r *HeroRepo) LoadByOwner(ctx context.Context, steamID string) ([]session.HeroRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT cls_id, level, exp FROM heroes WHERE steamid = $1 ORDER BY cls_id`, steamID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []session.HeroRow
	for rows.Next() {
		var h session.HeroRow
		if err := rows.Scan(&h.ClassID, &h.Level, &h.Exp); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func (r *HeroRepo) LoadSkills(ctx context.Context, steamID, heroClassID string) ([]session.SkillRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT cls_id, level FROM skills WHERE steamid = $1 AND hero_cls_id = $2`,
		steamID, heroClassID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []session.SkillRow
	for rows.Next() {
		var s session.SkillRow
		if err := rows.Scan(&s.ClassID, &s.Level); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *HeroRepo) Save(ctx context.Context, steamID string, hero session.HeroRow, skills []session.SkillRow) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO heroes (steamid, cls_id, level, exp, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (steamid, cls_id) DO UPDATE
		 SET level = EXCLUDED.level, exp = EXCLUDED.exp, updated_at = NOW()`,
		steamID, hero.ClassID, hero.Level, hero.Exp,
	)
	if err != nil {
		return fmt.Errorf("upsert hero: %w", err)
	}

	for _, s := range skills {
		_, err = tx.Exec(ctx,
			`INSERT INTO skills (steamid, hero_cls_id, cls_id, level)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (steamid, hero_cls_id, cls_id) DO UPDATE
			 SET level = EXCLUDED.level`,
			steamID, hero.ClassID, s.ClassID, s.Level,
		)
		if err != nil {
			return fmt.Errorf("upsert skill %s: %w", s.ClassID, err)
		}
	}

	return tx.Commit(ctx)
}
