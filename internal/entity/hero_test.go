package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
	"github.com/EinariTuukkanen/Hero-Wars/internal/event"
	"github.com/EinariTuukkanen/Hero-Wars/internal/gate"
)

func newTestHero() *Hero {
	return &Hero{Entity: Entity{ClassID: "test_hero", MaxLevel: -1}}
}

func TestRequiredExperience(t *testing.T) {
	assert.Equal(t, 100, RequiredExperience(0))
	assert.Equal(t, 125, RequiredExperience(1))
	assert.Equal(t, 225, RequiredExperience(5))
}

func TestHeroGiveExperienceLevelUp(t *testing.T) {
	h := newTestHero()
	require.NoError(t, h.SetLevel(5))

	// Exactly the level 5 threshold: one level up, residual zero.
	h.GiveExperience(225)
	assert.Equal(t, 6, h.Level())
	assert.Equal(t, 0, h.Experience())
}

func TestHeroGiveExperienceMultiLevel(t *testing.T) {
	h := newTestHero()

	// 100 (level 0) + 125 (level 1) + 10 residual.
	h.GiveExperience(235)
	assert.Equal(t, 2, h.Level())
	assert.Equal(t, 10, h.Experience())
}

func TestHeroGiveExperiencePartial(t *testing.T) {
	h := newTestHero()
	h.GiveExperience(99)
	assert.Equal(t, 0, h.Level())
	assert.Equal(t, 99, h.Experience())
}

func TestHeroGiveExperienceDownCarry(t *testing.T) {
	h := newTestHero()
	require.NoError(t, h.SetLevel(2))
	h.GiveExperience(10)
	require.Equal(t, 10, h.Experience())

	// Lose more than the residual: borrow from level 1's threshold (125).
	h.GiveExperience(-20)
	assert.Equal(t, 1, h.Level())
	assert.Equal(t, 115, h.Experience())
}

func TestHeroGiveExperienceFloor(t *testing.T) {
	h := newTestHero()
	require.NoError(t, h.SetLevel(1))

	// Losing far more than the hero ever earned floors at level 0, exp 0.
	h.GiveExperience(-10000)
	assert.Equal(t, 0, h.Level())
	assert.Equal(t, 0, h.Experience())
}

func TestHeroMaxLevelPinsExperience(t *testing.T) {
	h := &Hero{Entity: Entity{MaxLevel: 2}}

	h.GiveExperience(100000)
	assert.Equal(t, 2, h.Level())
	// Residual stays under the next threshold even at the cap.
	assert.Equal(t, RequiredExperience(2)-1, h.Experience())
}

func TestHeroSetExperienceNegative(t *testing.T) {
	h := newTestHero()
	h.GiveExperience(50)

	err := h.SetExperience(-1)
	assert.ErrorIs(t, err, ErrInvalidExperience)
	assert.Equal(t, 50, h.Experience())
}

func TestHeroSetLevelZeroesExperience(t *testing.T) {
	h := newTestHero()
	h.GiveExperience(150)
	require.Equal(t, 1, h.Level())
	require.Equal(t, 50, h.Experience())

	require.NoError(t, h.SetLevel(4))
	assert.Equal(t, 4, h.Level())
	assert.Equal(t, 0, h.Experience())
}

func TestHeroSetLevelValidates(t *testing.T) {
	h := &Hero{Entity: Entity{MaxLevel: 5}}
	h.GiveExperience(50)

	assert.ErrorIs(t, h.SetLevel(-1), ErrInvalidLevel)
	assert.ErrorIs(t, h.SetLevel(6), ErrInvalidLevel)
	// Rejection leaves level and experience untouched.
	assert.Equal(t, 0, h.Level())
	assert.Equal(t, 50, h.Experience())
}

func TestHeroOnExpChange(t *testing.T) {
	h := newTestHero()

	var gotExp, gotPrev, gotExpDelta, gotLevelDelta, calls int
	h.OnExpChange = func(exp, prevExp, expDelta, levelDelta int) {
		gotExp, gotPrev, gotExpDelta, gotLevelDelta = exp, prevExp, expDelta, levelDelta
		calls++
	}

	h.GiveExperience(150)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 50, gotExp)
	assert.Equal(t, 0, gotPrev)
	assert.Equal(t, 150, gotExpDelta)
	assert.Equal(t, 1, gotLevelDelta)

	// No-op change: no notification.
	h.GiveExperience(0)
	assert.Equal(t, 1, calls)
}

func TestHeroOnExpChangeSeesCarriedLevel(t *testing.T) {
	h := newTestHero()

	var seenLevel, seenExp int
	h.OnExpChange = func(exp, _, _, _ int) {
		seenLevel = h.Level()
		seenExp = exp
	}

	// The level carry lands before the notification fires.
	h.GiveExperience(150)
	assert.Equal(t, 1, seenLevel)
	assert.Equal(t, 50, seenExp)

	h.GiveExperience(-60)
	assert.Equal(t, 0, seenLevel)
	assert.Equal(t, 90, seenExp)
}

func TestHeroRestoreTolerance(t *testing.T) {
	h := &Hero{Entity: Entity{MaxLevel: 5}}

	// Level above cap clamps; residual past the threshold re-converts.
	h.Restore(9, 50)
	assert.Equal(t, 5, h.Level())

	h2 := newTestHero()
	h2.Restore(0, 150)
	assert.Equal(t, 1, h2.Level())
	assert.Equal(t, 50, h2.Experience())

	h3 := newTestHero()
	h3.Restore(-2, -5)
	assert.Equal(t, 0, h3.Level())
	assert.Equal(t, 0, h3.Experience())
}

func TestHeroSkillPoints(t *testing.T) {
	h := newTestHero()
	s1 := &Skill{Entity: Entity{ClassID: "a", MaxLevel: -1}}
	s2 := &Skill{Entity: Entity{ClassID: "b", MaxLevel: -1}}
	h.Skills = []*Skill{s1, s2}

	require.NoError(t, h.SetLevel(5))
	require.NoError(t, s1.SetLevel(2))
	require.NoError(t, s2.SetLevel(1))

	assert.Equal(t, 2, h.SkillPoints())
}

func TestHeroExecuteSkillsOrder(t *testing.T) {
	h := newTestHero()

	var order []string
	record := func(name string) gate.Handler {
		return gate.Run(func(*event.Event) {
			order = append(order, name)
		})
	}

	passive := &Skill{Entity: Entity{ClassID: "passive"}}
	passive.SetHandler("on_spawn", record("passive"))

	leveled := &Skill{Entity: Entity{ClassID: "leveled", MaxLevel: -1}}
	leveled.SetHandler("on_spawn", record("leveled"))
	require.NoError(t, leveled.SetLevel(1))

	unleveled := &Skill{Entity: Entity{ClassID: "unleveled", MaxLevel: -1}}
	unleveled.SetHandler("on_spawn", record("unleveled"))

	item := &Item{}
	item.ClassID = "item"
	item.SetHandler("on_spawn", record("item"))

	h.Passives = []*Skill{passive}
	h.Skills = []*Skill{leveled, unleveled}
	h.Items = []*Item{item}

	h.ExecuteSkills("on_spawn", event.New("player_spawn"))

	// Passives first, then leveled skills only, then items.
	assert.Equal(t, []string{"passive", "leveled", "item"}, order)
}

func TestHeroReleaseTimers(t *testing.T) {
	sched := cooldown.NewScheduler()
	h := newTestHero()

	sk := &Skill{Entity: Entity{ClassID: "cd", MaxLevel: -1}, Cooldown: 5}
	sk.Timer = sched.NewTimer(nil)
	h.Skills = []*Skill{sk}

	sk.Timer.Start(5)
	h.ReleaseTimers(sched)

	// A detached timer never ticks again.
	sched.Tick()
	assert.Equal(t, 0, sk.Timer.Remaining())
}
