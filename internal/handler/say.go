package handler

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// HandleSay fires the active hero's ultimate when the chat text is exactly
// the configured trigger. Case-sensitive, no trimming: "!Ultimate" or a
// trailing space is ordinary chat.
func HandleSay(ev *event.Event, deps *Deps) {
	if ev.Str("text") != deps.Config.Game.UltimateCommand {
		return
	}
	p := deps.Sessions.Player(ev.Int("userid"))
	if p == nil {
		return
	}
	p.ActiveHero().ExecuteSkills("on_ultimate", ev)
}
