package handler

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// HandleHurt dispatches the attacker's on_attack before the victim's
// on_defend so offensive procs adjust the damage fields first. Self-damage
// triggers neither and pays nothing.
func HandleHurt(ev *event.Event, deps *Deps) {
	victimID := ev.Int("userid")
	attackerID := ev.Int("attacker")
	if attackerID == 0 || attackerID == victimID {
		return
	}

	if attacker := deps.Sessions.Player(attackerID); attacker != nil {
		hero := attacker.ActiveHero()
		hero.ExecuteSkills("on_attack", ev)
		hero.GiveExperience(deps.Config.Game.AttackExp)
	}
	if victim := deps.Sessions.Player(victimID); victim != nil {
		victim.ActiveHero().ExecuteSkills("on_defend", ev)
	}
}
