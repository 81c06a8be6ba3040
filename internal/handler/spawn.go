package handler

import (
	"go.uber.org/zap"

	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// HandleSpawn tracks the spawning player, checkpoints an already-tracked
// one, and dispatches on_spawn to the active hero's loadout. Spectators
// (teamnum 0) get tracked but no skill dispatch.
func HandleSpawn(ev *event.Event, deps *Deps) {
	sessionID := ev.Int("userid")
	p := deps.Sessions.Player(sessionID)
	if p == nil {
		ctx, cancel := deps.saveCtx()
		defer cancel()
		var err error
		p, err = deps.Sessions.CreatePlayer(ctx, sessionID)
		if err != nil {
			deps.Log.Error("create player on spawn failed",
				zap.Int("session", sessionID), zap.Error(err))
			return
		}
	} else {
		ctx, cancel := deps.saveCtx()
		defer cancel()
		if err := deps.Sessions.SavePlayer(ctx, p); err != nil {
			deps.Log.Error("save on spawn failed",
				zap.String("steamid", p.SteamID), zap.Error(err))
		}
	}

	if ev.Int("teamnum") > 0 {
		p.ActiveHero().ExecuteSkills("on_spawn", ev)
	}
}

// HandleJump dispatches on_jump to the jumping player's active hero.
func HandleJump(ev *event.Event, deps *Deps) {
	p := deps.Sessions.Player(ev.Int("userid"))
	if p == nil {
		return
	}
	p.ActiveHero().ExecuteSkills("on_jump", ev)
}
