package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
)

func heroVariant(classID, name string, enabled bool) HeroVariant {
	return HeroVariant{
		ClassID: classID,
		Name:    name,
		Enabled: enabled,
		New: func(*cooldown.Scheduler) *Hero {
			return &Hero{Entity: Entity{ClassID: classID, Name: name, MaxLevel: -1, Enabled: enabled}}
		},
	}
}

func TestRegistryRegisterHero(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.RegisterHero(heroVariant("alpha", "Alpha", true)))

	err := r.RegisterHero(heroVariant("alpha", "Alpha Again", true))
	assert.Error(t, err)

	err = r.RegisterHero(heroVariant("", "Nameless", true))
	assert.Error(t, err)
}

func TestRegistryHeroesEnabledSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterHero(heroVariant("c", "Charlie", true)))
	require.NoError(t, r.RegisterHero(heroVariant("a", "Alpha", true)))
	require.NoError(t, r.RegisterHero(heroVariant("b", "Bravo", false)))

	vs := r.Heroes()
	require.Len(t, vs, 2)
	assert.Equal(t, "Alpha", vs[0].Name)
	assert.Equal(t, "Charlie", vs[1].Name)
}

func heroVariantWithSkill(classID, name, skillClassID string) HeroVariant {
	return HeroVariant{
		ClassID: classID,
		Name:    name,
		Enabled: true,
		New: func(*cooldown.Scheduler) *Hero {
			h := &Hero{Entity: Entity{ClassID: classID, Name: name, MaxLevel: -1}}
			h.Skills = []*Skill{
				{Entity: Entity{ClassID: skillClassID, Name: skillClassID, MaxLevel: 8}},
			}
			return h
		},
	}
}

func TestRegistrySkillUniqueness(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterHero(heroVariantWithSkill("a", "Alpha", "strike")))

	// The same skill class id under a second hero is rejected, and the
	// failed registration leaves no trace.
	err := r.RegisterHero(heroVariantWithSkill("b", "Bravo", "strike"))
	assert.Error(t, err)
	require.Len(t, r.Skills(), 1)

	require.NoError(t, r.RegisterHero(heroVariantWithSkill("c", "Charlie", "bolt")))

	vs := r.Skills()
	require.Len(t, vs, 2)
	assert.Equal(t, "bolt", vs[0].ClassID)
	assert.Equal(t, "c", vs[0].HeroClassID)
	assert.Equal(t, "strike", vs[1].ClassID)
}

func TestRegistrySkillsFollowHeroEnabled(t *testing.T) {
	r := NewRegistry()
	off := heroVariantWithSkill("off", "Disabled", "shadow_step")
	off.Enabled = false
	require.NoError(t, r.RegisterHero(off))
	require.NoError(t, r.RegisterHero(heroVariantWithSkill("on", "Enabled", "strike")))

	vs := r.Skills()
	require.Len(t, vs, 1)
	assert.Equal(t, "strike", vs[0].ClassID)
}

func TestRegistryNewHero(t *testing.T) {
	r := NewRegistry()
	sched := cooldown.NewScheduler()
	require.NoError(t, r.RegisterHero(heroVariant("alpha", "Alpha", true)))
	require.NoError(t, r.RegisterHero(heroVariant("off", "Disabled", false)))

	h, ok := r.NewHero("alpha", sched)
	require.True(t, ok)
	assert.Equal(t, "alpha", h.ClassID)
	assert.Equal(t, 0, h.Level())

	// Fresh instance per call, never shared.
	h2, ok := r.NewHero("alpha", sched)
	require.True(t, ok)
	assert.NotSame(t, h, h2)

	_, ok = r.NewHero("off", sched)
	assert.False(t, ok)
	_, ok = r.NewHero("ghost", sched)
	assert.False(t, ok)
}

func TestRegistryCheckStartup(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.CheckStartup(), ErrNoHeroes)

	require.NoError(t, r.RegisterHero(heroVariant("off", "Disabled", false)))
	assert.ErrorIs(t, r.CheckStartup(), ErrNoHeroes)

	require.NoError(t, r.RegisterHero(heroVariant("alpha", "Alpha", true)))
	assert.NoError(t, r.CheckStartup())
}
