package handler

import (
	"go.uber.org/zap"

	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// HandleDisconnect saves and evicts the leaving player. The eviction is
// idempotent, so a duplicate disconnect for the same session is harmless.
func HandleDisconnect(ev *event.Event, deps *Deps) {
	sessionID := ev.Int("userid")
	ctx, cancel := deps.saveCtx()
	defer cancel()
	if err := deps.Sessions.RemovePlayer(ctx, sessionID); err != nil {
		deps.Log.Error("remove player failed", zap.Int("session", sessionID), zap.Error(err))
	}
}
