package handler

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
)

// HandleDeath settles a kill: the killer's hero runs on_kill and earns the
// kill reward, then the victim's hero runs on_death (on_suicide when
// self-inflicted) and loses its non-permanent items, and an assister earns
// the assist reward through on_assist.
func HandleDeath(ev *event.Event, deps *Deps) {
	victimID := ev.Int("userid")
	attackerID := ev.Int("attacker")
	assisterID := ev.Int("assister")

	if attacker := deps.Sessions.Player(attackerID); attacker != nil && attackerID != victimID {
		hero := attacker.ActiveHero()
		hero.ExecuteSkills("on_kill", ev)
		hero.GiveExperience(deps.Config.Game.KillExp)
		gold := deps.Config.Game.KillGold + ev.Int("bonus_gold")
		attacker.SetGold(attacker.Gold() + gold)
	}

	victim := deps.Sessions.Player(victimID)
	if victim != nil {
		hero := victim.ActiveHero()
		if attackerID == 0 || attackerID == victimID {
			hero.ExecuteSkills("on_suicide", ev)
		} else {
			hero.ExecuteSkills("on_death", ev)
		}
		deps.Sessions.StripItems(hero)
	}

	if assister := deps.Sessions.Player(assisterID); assister != nil && assisterID != victimID {
		hero := assister.ActiveHero()
		hero.ExecuteSkills("on_assist", ev)
		hero.GiveExperience(deps.Config.Game.AssistExp)
	}
}
