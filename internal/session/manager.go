// Package session tracks connected players, their hero ownership, and the
// save/load contract that bridges volatile session ids to durable identity.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/entity"
)

// Manager owns the in-memory player table, keyed by volatile session id.
// All mutation happens on the game loop goroutine; the manager itself is
// unsynchronized.
type Manager struct {
	reg      *entity.Registry
	sched    *cooldown.Scheduler
	store    Store
	resolver Resolver
	log      *zap.Logger

	maxItems int
	players  map[int]*Player
}

func NewManager(reg *entity.Registry, sched *cooldown.Scheduler, store Store, resolver Resolver, maxItems int, log *zap.Logger) *Manager {
	return &Manager{
		reg:      reg,
		sched:    sched,
		store:    store,
		resolver: resolver,
		log:      log,
		maxItems: maxItems,
		players:  make(map[int]*Player),
	}
}

// Player returns the tracked player for a session id, nil when unknown.
func (m *Manager) Player(sessionID int) *Player {
	return m.players[sessionID]
}

// Players returns every currently tracked player.
func (m *Manager) Players() []*Player {
	out := make([]*Player, 0, len(m.players))
	for _, p := range m.players {
		out = append(out, p)
	}
	return out
}

// CreatePlayer resolves the session's durable identity, loads its persisted
// state, and tracks it. A first-time identity is granted the first enabled
// hero at level 0. Hero rows whose class id is no longer registered are
// dropped; the save on disconnect then forgets them.
func (m *Manager) CreatePlayer(ctx context.Context, sessionID int) (*Player, error) {
	if p, ok := m.players[sessionID]; ok {
		return p, nil
	}
	steamID, err := m.resolver.SteamID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve session %d: %w", sessionID, err)
	}

	p := &Player{SteamID: steamID, SessionID: sessionID}

	row, err := m.store.LoadPlayer(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("load player %s: %w", steamID, err)
	}
	activeClassID := ""
	if row != nil {
		gold := row.Gold
		if gold < 0 {
			m.log.Warn("negative stored gold, resetting",
				zap.String("steamid", steamID), zap.Int("gold", gold))
			gold = 0
		}
		p.gold = gold
		activeClassID = row.ActiveHeroID
	}

	heroRows, err := m.store.LoadHeroes(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("load heroes %s: %w", steamID, err)
	}
	for _, hr := range heroRows {
		hero, ok := m.reg.NewHero(hr.ClassID, m.sched)
		if !ok {
			m.log.Warn("dropping hero row for unknown class",
				zap.String("steamid", steamID), zap.String("class", hr.ClassID))
			continue
		}
		hero.Restore(hr.Level, hr.Exp)
		if err := m.loadSkills(ctx, steamID, hero); err != nil {
			hero.ReleaseTimers(m.sched)
			for _, h := range p.Heroes {
				h.ReleaseTimers(m.sched)
			}
			return nil, err
		}
		p.Heroes = append(p.Heroes, hero)
	}

	if len(p.Heroes) == 0 {
		variants := m.reg.Heroes()
		hero := variants[0].New(m.sched)
		p.Heroes = append(p.Heroes, hero)
		m.log.Info("granted starter hero",
			zap.String("steamid", steamID), zap.String("class", hero.ClassID))
	}

	p.active = p.HeroByClass(activeClassID)
	if p.active == nil {
		p.active = p.Heroes[0]
	}

	if row == nil {
		// First checkpoint. Hero and skill rows reference the players row
		// by steamid, so it must exist before any standalone hero save.
		if err := m.SavePlayer(ctx, p); err != nil {
			for _, h := range p.Heroes {
				h.ReleaseTimers(m.sched)
			}
			return nil, err
		}
	}

	m.players[sessionID] = p
	m.log.Info("player tracked",
		zap.Int("session", sessionID),
		zap.String("steamid", steamID),
		zap.Int("heroes", len(p.Heroes)),
		zap.String("active", p.active.ClassID))
	return p, nil
}

func (m *Manager) loadSkills(ctx context.Context, steamID string, hero *entity.Hero) error {
	rows, err := m.store.LoadSkills(ctx, steamID, hero.ClassID)
	if err != nil {
		return fmt.Errorf("load skills %s/%s: %w", steamID, hero.ClassID, err)
	}
	for _, sr := range rows {
		for _, s := range hero.Skills {
			if s.ClassID == sr.ClassID {
				// Base-entity policy: negative rejected, over-cap clamped.
				if err := s.SetLevel(sr.Level); err != nil {
					m.log.Warn("dropping skill row with invalid level",
						zap.String("steamid", steamID),
						zap.String("class", sr.ClassID),
						zap.Int("level", sr.Level))
				}
				break
			}
		}
	}
	return nil
}

// RemovePlayer saves and evicts the session's player, detaching every
// cooldown timer the loadout owns. Unknown sessions are a no-op, so the
// call is safe to repeat.
func (m *Manager) RemovePlayer(ctx context.Context, sessionID int) error {
	p, ok := m.players[sessionID]
	if !ok {
		return nil
	}
	err := m.SavePlayer(ctx, p)
	for _, h := range p.Heroes {
		h.ReleaseTimers(m.sched)
	}
	delete(m.players, sessionID)
	if err != nil {
		return fmt.Errorf("save on remove %s: %w", p.SteamID, err)
	}
	m.log.Info("player evicted", zap.Int("session", sessionID), zap.String("steamid", p.SteamID))
	return nil
}

// SetActiveHero switches the player's active hero. The previous active
// hero's progress is persisted first; a store failure aborts the switch
// with the old hero still active.
func (m *Manager) SetActiveHero(ctx context.Context, p *Player, hero *entity.Hero) error {
	if !p.Owns(hero) {
		return ErrUnownedHero
	}
	if p.active == hero {
		return nil
	}
	if p.active != nil {
		if err := m.saveHero(ctx, p.SteamID, p.active); err != nil {
			return fmt.Errorf("save previous hero %s: %w", p.active.ClassID, err)
		}
	}
	p.active = hero
	m.log.Debug("active hero switched",
		zap.String("steamid", p.SteamID), zap.String("class", hero.ClassID))
	return nil
}

// GrantHero adds a hero instance to the player's owned set. Instances are
// never shared; the caller builds one through the registry.
func (m *Manager) GrantHero(p *Player, hero *entity.Hero) {
	p.Heroes = append(p.Heroes, hero)
	if p.active == nil {
		p.active = hero
	}
}

// EquipItem attaches an item to the player's active hero, enforcing the
// global per-hero cap and the item's own copy limit.
func (m *Manager) EquipItem(p *Player, item *entity.Item) error {
	hero := p.ActiveHero()
	if m.maxItems > 0 && len(hero.Items) >= m.maxItems {
		return ErrItemLimit
	}
	if item.Limit > 0 {
		copies := 0
		for _, it := range hero.Items {
			if it.ClassID == item.ClassID {
				copies++
			}
		}
		if copies >= item.Limit {
			return ErrItemLimit
		}
	}
	hero.Items = append(hero.Items, item)
	return nil
}

// StripItems removes a hero's non-permanent items, detaching their
// cooldown timers. Called when the hero's owner dies.
func (m *Manager) StripItems(hero *entity.Hero) {
	kept := hero.Items[:0]
	for _, it := range hero.Items {
		if it.Permanent {
			kept = append(kept, it)
			continue
		}
		it.ReleaseTimer(m.sched)
	}
	hero.Items = kept
}

// SavePlayer writes the player row plus the active hero and its skill
// levels. Non-active heroes were saved when they stopped being active, so
// one hero per checkpoint is enough.
func (m *Manager) SavePlayer(ctx context.Context, p *Player) error {
	row := &PlayerRow{SteamID: p.SteamID, Gold: p.Gold()}
	if p.active != nil {
		row.ActiveHeroID = p.active.ClassID
	}
	if err := m.store.SavePlayer(ctx, row); err != nil {
		return fmt.Errorf("save player %s: %w", p.SteamID, err)
	}
	if p.active != nil {
		if err := m.saveHero(ctx, p.SteamID, p.active); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) saveHero(ctx context.Context, steamID string, hero *entity.Hero) error {
	hr := HeroRow{ClassID: hero.ClassID, Level: hero.Level(), Exp: hero.Experience()}
	skills := make([]SkillRow, 0, len(hero.Skills))
	for _, s := range hero.Skills {
		skills = append(skills, SkillRow{ClassID: s.ClassID, Level: s.Level()})
	}
	if err := m.store.SaveHero(ctx, steamID, hr, skills); err != nil {
		return fmt.Errorf("save hero %s/%s: %w", steamID, hero.ClassID, err)
	}
	return nil
}

// SaveAll checkpoints every tracked player. Used on shutdown; failures are
// logged per player and the pass continues.
func (m *Manager) SaveAll(ctx context.Context) {
	for _, p := range m.players {
		if err := m.SavePlayer(ctx, p); err != nil {
			m.log.Error("save failed", zap.String("steamid", p.SteamID), zap.Error(err))
		}
	}
}
