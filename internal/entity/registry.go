package entity

import (
	"fmt"
	"sort"

	"github.com/EinariTuukkanen/Hero-Wars/internal/cooldown"
)

// HeroVariant is one registered hero class. New builds a fresh instance at
// level 0 with its full skill loadout, attaching cooldown timers to the
// given scheduler.
type HeroVariant struct {
	ClassID string
	Name    string
	Enabled bool
	New     func(s *cooldown.Scheduler) *Hero
}

// ItemVariant is one registered purchasable item class.
type ItemVariant struct {
	ClassID string
	Name    string
	Enabled bool
	New     func(s *cooldown.Scheduler) *Item
}

// SkillVariant is one skill or passive class carried by a registered hero's
// loadout, recorded when the hero variant registers.
type SkillVariant struct {
	ClassID     string
	Name        string
	HeroClassID string
}

// Registry is the process-wide catalog of concrete entity variants, keyed by
// stable class id. It replaces runtime class discovery: content packages
// register their variants at startup, and all "what exists" queries go
// through here. Registration happens before the event loop starts; reads
// after that are lock-free.
type Registry struct {
	heroes map[string]HeroVariant
	items  map[string]ItemVariant
	skills map[string]SkillVariant
}

func NewRegistry() *Registry {
	return &Registry{
		heroes: make(map[string]HeroVariant),
		items:  make(map[string]ItemVariant),
		skills: make(map[string]SkillVariant),
	}
}

// RegisterHero adds a hero variant. Class ids must be unique per kind; the
// variant's loadout is probed once so skill class ids can be checked for
// uniqueness across all registered heroes.
func (r *Registry) RegisterHero(v HeroVariant) error {
	if v.ClassID == "" {
		return fmt.Errorf("register hero %q: empty class id", v.Name)
	}
	if _, dup := r.heroes[v.ClassID]; dup {
		return fmt.Errorf("register hero: duplicate class id %q", v.ClassID)
	}

	probe := v.New(cooldown.NewScheduler())
	loadout := make([]SkillVariant, 0, len(probe.Passives)+len(probe.Skills))
	for _, s := range probe.Passives {
		loadout = append(loadout, SkillVariant{ClassID: s.ClassID, Name: s.Name, HeroClassID: v.ClassID})
	}
	for _, s := range probe.Skills {
		loadout = append(loadout, SkillVariant{ClassID: s.ClassID, Name: s.Name, HeroClassID: v.ClassID})
	}
	seen := make(map[string]bool, len(loadout))
	for _, sv := range loadout {
		if sv.ClassID == "" {
			return fmt.Errorf("register hero %q: skill with empty class id", v.ClassID)
		}
		if prev, dup := r.skills[sv.ClassID]; dup {
			return fmt.Errorf("register hero %q: skill class id %q already registered by hero %q",
				v.ClassID, sv.ClassID, prev.HeroClassID)
		}
		if seen[sv.ClassID] {
			return fmt.Errorf("register hero %q: duplicate skill class id %q", v.ClassID, sv.ClassID)
		}
		seen[sv.ClassID] = true
	}

	r.heroes[v.ClassID] = v
	for _, sv := range loadout {
		r.skills[sv.ClassID] = sv
	}
	return nil
}

// RegisterItem adds an item variant.
func (r *Registry) RegisterItem(v ItemVariant) error {
	if v.ClassID == "" {
		return fmt.Errorf("register item %q: empty class id", v.Name)
	}
	if _, dup := r.items[v.ClassID]; dup {
		return fmt.Errorf("register item: duplicate class id %q", v.ClassID)
	}
	r.items[v.ClassID] = v
	return nil
}

// Heroes returns every enabled hero variant, sorted by display name.
func (r *Registry) Heroes() []HeroVariant {
	out := make([]HeroVariant, 0, len(r.heroes))
	for _, v := range r.heroes {
		if v.Enabled {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Items returns every enabled item variant, sorted by display name.
func (r *Registry) Items() []ItemVariant {
	out := make([]ItemVariant, 0, len(r.items))
	for _, v := range r.items {
		if v.Enabled {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Skills returns every skill variant carried by an enabled hero, sorted by
// display name.
func (r *Registry) Skills() []SkillVariant {
	out := make([]SkillVariant, 0, len(r.skills))
	for _, sv := range r.skills {
		if h, ok := r.heroes[sv.HeroClassID]; ok && h.Enabled {
			out = append(out, sv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NewHero instantiates the enabled hero variant with the given class id.
// Unknown or disabled ids report false; load paths treat that as content
// having changed between sessions and drop the row.
func (r *Registry) NewHero(classID string, s *cooldown.Scheduler) (*Hero, bool) {
	v, ok := r.heroes[classID]
	if !ok || !v.Enabled {
		return nil, false
	}
	return v.New(s), true
}

// NewItem instantiates the enabled item variant with the given class id.
func (r *Registry) NewItem(classID string, s *cooldown.Scheduler) (*Item, bool) {
	v, ok := r.items[classID]
	if !ok || !v.Enabled {
		return nil, false
	}
	return v.New(s), true
}

// CheckStartup enforces the boot precondition: at least one enabled hero.
func (r *Registry) CheckStartup() error {
	if len(r.Heroes()) == 0 {
		return ErrNoHeroes
	}
	return nil
}
