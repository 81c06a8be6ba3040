package heroes

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/data"
	"github.com/EinariTuukkanen/Hero-Wars/internal/entity"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
	"github.com/EinariTuukkanen/Hero-Wars/internal/gate"
	"github.com/EinariTuukkanen/Hero-Wars/internal/scripting"
)

// Lucky Charm drops on death; while held, kills pay out bonus gold.
func newLuckyCharm(table *data.BalanceTable, formulas *scripting.Engine) entity.ItemVariant {
	def := skillDef(table, "items", data.SkillDef{
		ClassID: "lucky_charm", Chance: 50,
	})
	return entity.ItemVariant{
		ClassID: def.ClassID,
		Name:    "Lucky Charm",
		Enabled: true,
		New: func(sched *cooldown.Scheduler) *entity.Item {
			it := &entity.Item{
				Skill: entity.Skill{Entity: entity.Entity{
					ClassID:     def.ClassID,
					Name:        "Lucky Charm",
					Description: "Chance of bonus gold on kill. Lost on death.",
					Cost:        300,
					Enabled:     true,
				}},
				Permanent: false,
				Limit:     1,
			}
			it.SetHandler("on_kill", gate.Chance(def.Chance, gate.Run(func(ev *event.Event) {
				ev.SetInt("bonus_gold", ev.Int("bonus_gold")+10)
			})))
			return it
		},
	}
}

// Iron Boots persist through death and blunt incoming hits slightly.
func newIronBoots(table *data.BalanceTable, formulas *scripting.Engine) entity.ItemVariant {
	def := skillDef(table, "items", data.SkillDef{
		ClassID: "iron_boots",
	})
	return entity.ItemVariant{
		ClassID: def.ClassID,
		Name:    "Iron Boots",
		Enabled: true,
		New: func(sched *cooldown.Scheduler) *entity.Item {
			it := &entity.Item{
				Skill: entity.Skill{Entity: entity.Entity{
					ClassID:     def.ClassID,
					Name:        "Iron Boots",
					Description: "Blunts incoming damage by 1. Permanent.",
					Cost:        800,
					Enabled:     true,
				}},
				Permanent: true,
				Limit:     1,
			}
			it.SetHandler("on_defend", gate.Run(func(ev *event.Event) {
				dmg := ev.Int("dmg_health") - 1
				if dmg < 1 {
					dmg = 1
				}
				ev.SetInt("dmg_health", dmg)
			}))
			return it
		},
	}
}
