// Package data loads the YAML balance tables that tune hero content without
// recompiling: per-skill chance, cooldown and caps, per-hero cost and caps.
package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SkillDef is the tunable balance entry for one skill or item.
type SkillDef struct {
	ClassID  string `yaml:"cls_id"`
	Chance   int    `yaml:"chance"`    // percent, 0-100
	Cooldown int    `yaml:"cooldown"`  // seconds
	MaxLevel int    `yaml:"max_level"` // negative = unbounded
}

// HeroDef is the tunable balance entry for one hero class.
type HeroDef struct {
	ClassID       string     `yaml:"cls_id"`
	Cost          int        `yaml:"cost"`
	MaxLevel      int        `yaml:"max_level"` // negative = unbounded
	RequiredLevel int        `yaml:"required_level"`
	Enabled       bool       `yaml:"enabled"`
	Skills        []SkillDef `yaml:"skills"`
}

type balanceFile struct {
	Heroes []HeroDef `yaml:"heroes"`
}

// BalanceTable holds all hero balance data indexed by class id.
type BalanceTable struct {
	heroes map[string]HeroDef
}

// Hero returns the balance entry for a hero class id.
func (t *BalanceTable) Hero(classID string) (HeroDef, bool) {
	h, ok := t.heroes[classID]
	return h, ok
}

// Skill returns the balance entry for a skill under the given hero class.
func (t *BalanceTable) Skill(heroClassID, skillClassID string) (SkillDef, bool) {
	h, ok := t.heroes[heroClassID]
	if !ok {
		return SkillDef{}, false
	}
	for _, s := range h.Skills {
		if s.ClassID == skillClassID {
			return s, true
		}
	}
	return SkillDef{}, false
}

// Count returns the number of hero entries.
func (t *BalanceTable) Count() int {
	return len(t.heroes)
}

// LoadBalanceTable loads hero balance data from a YAML file.
func LoadBalanceTable(path string) (*BalanceTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read balance table: %w", err)
	}
	var f balanceFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse balance table: %w", err)
	}
	t := &BalanceTable{heroes: make(map[string]HeroDef, len(f.Heroes))}
	for _, h := range f.Heroes {
		if _, dup := t.heroes[h.ClassID]; dup {
			return nil, fmt.Errorf("balance table: duplicate hero class id %q", h.ClassID)
		}
		t.heroes[h.ClassID] = h
	}
	return t, nil
}
