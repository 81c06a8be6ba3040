// Package handler binds engine events to hero progression: spawn and death
// lifecycle, combat rewards, the ultimate chat trigger, and disconnect
// persistence. Handlers run on the game loop goroutine.
package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/EinariTuukkanen/Hero-Wars/internal/config"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
	"github.com/EinariTuukkanen/Hero-Wars/internal/session"
)

// Deps holds shared dependencies injected into all event handlers.
type Deps struct {
	Sessions *session.Manager
	Config   *config.Config
	Log      *zap.Logger
}

// saveCtx bounds one synchronous persistence checkpoint.
func (d *Deps) saveCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d.Config.Database.SaveTimeout)
}

// RegisterAll registers all event handlers into the registry.
func RegisterAll(reg *event.Registry, deps *Deps) {
	reg.Register("player_spawn", func(ev *event.Event) {
		HandleSpawn(ev, deps)
	})
	reg.Register("player_death", func(ev *event.Event) {
		HandleDeath(ev, deps)
	})
	reg.Register("player_hurt", func(ev *event.Event) {
		HandleHurt(ev, deps)
	})
	reg.Register("player_jump", func(ev *event.Event) {
		HandleJump(ev, deps)
	})
	reg.Register("player_say", func(ev *event.Event) {
		HandleSay(ev, deps)
	})
	reg.Register("player_disconnect", func(ev *event.Event) {
		HandleDisconnect(ev, deps)
	})
}
