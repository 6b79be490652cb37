// Package config loads skill and stat definitions from YAML, so game data
// can declare progression curves and attribute pools without code changes.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/statkit/skill"
	"github.com/udisondev/statkit/stat"
)

// SkillDef describes one skill progression in a definitions file.
type SkillDef struct {
	Name     string `yaml:"name"`
	Formula  string `yaml:"formula"`
	MaxLevel uint16 `yaml:"max_level"` // 0 = uncapped
	FactorX  uint16 `yaml:"factor_x"`
	FactorY  uint16 `yaml:"factor_y"`
	FactorZ  uint16 `yaml:"factor_z"`
}

// StatDef describes one bounded stat in a definitions file.
type StatDef struct {
	Name    string `yaml:"name"`
	Initial uint64 `yaml:"initial"`
	Max     uint64 `yaml:"max"`
}

// File is a parsed definitions file.
type File struct {
	Skills []SkillDef `yaml:"skills"`
	Stats  []StatDef  `yaml:"stats"`
}

// DefaultSkillDef returns a skill definition with the constructor defaults:
// exponential curve, uncapped, all factors 1.
func DefaultSkillDef() SkillDef {
	return SkillDef{
		Formula: skill.Exponential.String(),
		FactorX: 1,
		FactorY: 1,
		FactorZ: 1,
	}
}

// Load reads and validates a definitions file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definitions %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing definitions %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validating definitions %s: %w", path, err)
	}

	slog.Info("loaded definitions", "path", path, "skills", len(f.Skills), "stats", len(f.Stats))
	return &f, nil
}

// Validate checks every definition: names must be present and unique,
// formula names must parse, stat maximums must be positive.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Skills)+len(f.Stats))

	for i, def := range f.Skills {
		if def.Name == "" {
			return fmt.Errorf("skill[%d]: name is required", i)
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("skill %q: duplicate name", def.Name)
		}
		seen[def.Name] = struct{}{}

		if _, err := skill.ParseFormula(def.Formula); err != nil {
			return fmt.Errorf("skill %q: %w", def.Name, err)
		}
	}

	for i, def := range f.Stats {
		if def.Name == "" {
			return fmt.Errorf("stat[%d]: name is required", i)
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("stat %q: duplicate name", def.Name)
		}
		seen[def.Name] = struct{}{}

		if def.Max == 0 {
			return fmt.Errorf("stat %q: max must be positive", def.Name)
		}
	}

	return nil
}

// Build constructs the skill described by the definition.
func (d SkillDef) Build() (*skill.Skill, error) {
	formula, err := skill.ParseFormula(d.Formula)
	if err != nil {
		return nil, fmt.Errorf("skill %q: %w", d.Name, err)
	}
	return skill.New(formula, d.MaxLevel, d.FactorX, d.FactorY, d.FactorZ), nil
}

// Build constructs the stat described by the definition.
func (d StatDef) Build() (*stat.Stat[uint64], error) {
	s, err := stat.New(d.Initial, d.Max)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", d.Name, err)
	}
	return s, nil
}
