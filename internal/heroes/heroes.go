// Package heroes is the built-in content pack: concrete hero classes and
// purchasable items, registered against the variant registry at startup.
// Tunable numbers come from the YAML balance table; per-level scaling
// formulas come from Lua with the table values as fallbacks.
package heroes

import (
	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/data"
	"github.com/EinariTuukkanen/Hero-Wars/internal/entity"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
	"github.com/EinariTuukkanen/Hero-Wars/internal/gate"
	"github.com/EinariTuukkanen/Hero-Wars/internal/scripting"
)

// RegisterAll registers every built-in hero and item variant.
func RegisterAll(reg *entity.Registry, table *data.BalanceTable, formulas *scripting.Engine) error {
	for _, build := range []func(*data.BalanceTable, *scripting.Engine) entity.HeroVariant{
		newIronclad,
		newNightstalker,
		newStormcaller,
	} {
		if err := reg.RegisterHero(build(table, formulas)); err != nil {
			return err
		}
	}
	for _, build := range []func(*data.BalanceTable, *scripting.Engine) entity.ItemVariant{
		newLuckyCharm,
		newIronBoots,
	} {
		if err := reg.RegisterItem(build(table, formulas)); err != nil {
			return err
		}
	}
	return nil
}

// heroDef resolves a hero's balance entry, falling back to coded defaults
// when the table has no row for the class.
func heroDef(table *data.BalanceTable, def data.HeroDef) data.HeroDef {
	if d, ok := table.Hero(def.ClassID); ok {
		return d
	}
	return def
}

// skillDef resolves a skill's balance entry under its hero class.
func skillDef(table *data.BalanceTable, heroClassID string, def data.SkillDef) data.SkillDef {
	if d, ok := table.Skill(heroClassID, def.ClassID); ok {
		return d
	}
	return def
}

// chanceGate wraps an effect in a probability gate whose percentage scales
// with the skill's level through the Lua formula layer.
func chanceGate(formulas *scripting.Engine, sk *entity.Skill, base int, effect func(ev *event.Event)) gate.Handler {
	return gate.ChanceBy(func(*event.Event) int {
		return formulas.SkillChance(sk.ClassID, sk.Level(), base)
	}, gate.Run(effect))
}

// cooldownGate wraps an effect in a cooldown gate whose duration scales
// with the skill's level through the Lua formula layer.
func cooldownGate(formulas *scripting.Engine, sk *entity.Skill, base int, effect func(ev *event.Event)) gate.Handler {
	return gate.CooldownBy(sk.Timer, func(*event.Event) int {
		return formulas.SkillCooldown(sk.ClassID, sk.Level(), base)
	}, gate.Run(effect))
}

func newSkill(sched *cooldown.Scheduler, def data.SkillDef, name, desc string) *entity.Skill {
	sk := &entity.Skill{
		Entity: entity.Entity{
			ClassID:     def.ClassID,
			Name:        name,
			Description: desc,
			MaxLevel:    def.MaxLevel,
			Enabled:     true,
		},
		Cooldown: def.Cooldown,
	}
	if def.Cooldown > 0 {
		sk.Timer = sched.NewTimer(nil)
	}
	return sk
}

// Ironclad is the armored bruiser: damage mitigation plus a chance-gated
// heavy hit and a cooldown-gated ultimate.
func newIronclad(table *data.BalanceTable, formulas *scripting.Engine) entity.HeroVariant {
	def := heroDef(table, data.HeroDef{
		ClassID: "ironclad", Cost: 0, MaxLevel: -1, Enabled: true,
	})
	return entity.HeroVariant{
		ClassID: def.ClassID,
		Name:    "Ironclad",
		Enabled: def.Enabled,
		New: func(sched *cooldown.Scheduler) *entity.Hero {
			h := &entity.Hero{Entity: entity.Entity{
				ClassID:       def.ClassID,
				Name:          "Ironclad",
				Description:   "Armored bruiser that shrugs off hits.",
				Author:        "herowars",
				Cost:          def.Cost,
				MaxLevel:      def.MaxLevel,
				RequiredLevel: def.RequiredLevel,
				Enabled:       def.Enabled,
			}}

			ironSkin := newSkill(sched, skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "iron_skin", MaxLevel: -1,
			}), "Iron Skin", "Reduces incoming damage by 1 per hero level.")
			ironSkin.SetHandler("on_defend", gate.Run(func(ev *event.Event) {
				dmg := ev.Int("dmg_health") - h.Level()
				if dmg < 1 {
					dmg = 1
				}
				ev.SetInt("dmg_health", dmg)
			}))
			h.Passives = append(h.Passives, ironSkin)

			crushDef := skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "crushing_blow", Chance: 25, MaxLevel: 8,
			})
			crush := newSkill(sched, crushDef, "Crushing Blow",
				"Chance to deal bonus damage on attack.")
			crush.SetHandler("on_attack", chanceGate(formulas, crush, crushDef.Chance, func(ev *event.Event) {
				ev.SetInt("dmg_health", ev.Int("dmg_health")+5*crush.Level())
			}))
			h.Skills = append(h.Skills, crush)

			warCryDef := skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "war_cry", Cooldown: 40, MaxLevel: 4,
			})
			warCry := newSkill(sched, warCryDef, "War Cry",
				"Ultimate: bolsters health for the fight.")
			warCry.SetHandler("on_ultimate", cooldownGate(formulas, warCry, warCryDef.Cooldown, func(ev *event.Event) {
				ev.SetInt("bonus_health", ev.Int("bonus_health")+20*warCry.Level())
			}))
			h.Skills = append(h.Skills, warCry)

			return h
		},
	}
}

// Nightstalker trades durability for on-hit poison and an escape ultimate.
func newNightstalker(table *data.BalanceTable, formulas *scripting.Engine) entity.HeroVariant {
	def := heroDef(table, data.HeroDef{
		ClassID: "nightstalker", Cost: 500, MaxLevel: -1, Enabled: true,
	})
	return entity.HeroVariant{
		ClassID: def.ClassID,
		Name:    "Nightstalker",
		Enabled: def.Enabled,
		New: func(sched *cooldown.Scheduler) *entity.Hero {
			h := &entity.Hero{Entity: entity.Entity{
				ClassID:       def.ClassID,
				Name:          "Nightstalker",
				Description:   "Assassin with venom strikes and a vanish.",
				Author:        "herowars",
				Cost:          def.Cost,
				MaxLevel:      def.MaxLevel,
				RequiredLevel: def.RequiredLevel,
				Enabled:       def.Enabled,
			}}

			secondWind := newSkill(sched, skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "second_wind", MaxLevel: -1,
			}), "Second Wind", "Spawns with bonus health per hero level.")
			secondWind.SetHandler("on_spawn", gate.Run(func(ev *event.Event) {
				ev.SetInt("bonus_health", ev.Int("bonus_health")+2*h.Level())
			}))
			h.Passives = append(h.Passives, secondWind)

			venomDef := skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "venom_strike", Chance: 30, MaxLevel: 8,
			})
			venom := newSkill(sched, venomDef, "Venom Strike",
				"Chance to poison the target on attack.")
			venom.SetHandler("on_attack", chanceGate(formulas, venom, venomDef.Chance, func(ev *event.Event) {
				ev.SetInt("dmg_health", ev.Int("dmg_health")+3*venom.Level())
				ev.SetInt("poisoned", 1)
			}))
			h.Skills = append(h.Skills, venom)

			vanishDef := skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "vanish", Cooldown: 60, MaxLevel: 4,
			})
			vanish := newSkill(sched, vanishDef, "Vanish",
				"Ultimate: fade from sight for a few seconds.")
			vanish.SetHandler("on_ultimate", cooldownGate(formulas, vanish, vanishDef.Cooldown, func(ev *event.Event) {
				ev.SetInt("invisible", 2+vanish.Level())
			}))
			h.Skills = append(h.Skills, vanish)

			return h
		},
	}
}

// Stormcaller stacks both gates on one skill: chain lightning procs by
// chance but also respects its own cooldown.
func newStormcaller(table *data.BalanceTable, formulas *scripting.Engine) entity.HeroVariant {
	def := heroDef(table, data.HeroDef{
		ClassID: "stormcaller", Cost: 1200, MaxLevel: -1, RequiredLevel: 10, Enabled: true,
	})
	return entity.HeroVariant{
		ClassID: def.ClassID,
		Name:    "Stormcaller",
		Enabled: def.Enabled,
		New: func(sched *cooldown.Scheduler) *entity.Hero {
			h := &entity.Hero{Entity: entity.Entity{
				ClassID:       def.ClassID,
				Name:          "Stormcaller",
				Description:   "Caster whose strikes arc between targets.",
				Author:        "herowars",
				Cost:          def.Cost,
				MaxLevel:      def.MaxLevel,
				RequiredLevel: def.RequiredLevel,
				Enabled:       def.Enabled,
			}}

			chainDef := skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "chain_lightning", Chance: 20, Cooldown: 8, MaxLevel: 8,
			})
			chain := newSkill(sched, chainDef, "Chain Lightning",
				"Chance to arc lightning on attack, at most once per cooldown.")
			chain.SetHandler("on_attack", gate.ChanceBy(func(*event.Event) int {
				return formulas.SkillChance(chain.ClassID, chain.Level(), chainDef.Chance)
			}, gate.CooldownBy(chain.Timer, func(*event.Event) int {
				return formulas.SkillCooldown(chain.ClassID, chain.Level(), chainDef.Cooldown)
			}, gate.Run(func(ev *event.Event) {
				ev.SetInt("dmg_health", ev.Int("dmg_health")+4*chain.Level())
				ev.SetInt("chained", 1)
			}))))
			h.Skills = append(h.Skills, chain)

			domeDef := skillDef(table, def.ClassID, data.SkillDef{
				ClassID: "thunder_dome", Cooldown: 90, MaxLevel: 4,
			})
			dome := newSkill(sched, domeDef, "Thunder Dome",
				"Ultimate: a storm field around the caster.")
			dome.SetHandler("on_ultimate", cooldownGate(formulas, dome, domeDef.Cooldown, func(ev *event.Event) {
				ev.SetInt("storm_radius", 200+50*dome.Level())
			}))
			h.Skills = append(h.Skills, dome)

			return h
		},
	}
}
