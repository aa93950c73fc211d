package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fleetsim/internal/combat"
)

//go:embed rosters/*.yaml
var presetFS embed.FS

// DefaultPreset is used when no roster file is found.
const DefaultPreset = "classic"

// Roster is the YAML form of a starting lineup.
type Roster struct {
	Fleets []FleetConfig `yaml:"fleets"`
}

// FleetConfig describes one fleet and its ships.
type FleetConfig struct {
	Name  string       `yaml:"name"`
	Ships []ShipConfig `yaml:"ships"`
}

// ShipConfig describes one ship. Name may be empty.
type ShipConfig struct {
	Name      string `yaml:"name"`
	Integrity int64  `yaml:"integrity"`
}

// LoadRoster resolves the starting roster.
// Search order: customPath -> preset -> ~/.fleetsim/roster.yaml -> ./configs/roster.yaml -> embedded default
func LoadRoster(customPath, preset string) (Roster, error) {
	var r Roster

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return r, fmt.Errorf("failed to read roster %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &r); err != nil {
			return r, fmt.Errorf("failed to parse roster %s: %w", customPath, err)
		}
		return r, r.Validate()
	}

	if preset != "" {
		return Preset(preset)
	}

	// Try user config directory
	if path := userRosterPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &r); err == nil {
				return r, r.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/roster.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &r); err == nil {
			return r, r.Validate()
		}
	}

	return Preset(DefaultPreset)
}

// Preset returns one of the embedded rosters by name.
func Preset(name string) (Roster, error) {
	var r Roster

	data, err := presetFS.ReadFile("rosters/" + name + ".yaml")
	if err != nil {
		return r, fmt.Errorf("unknown roster preset %q (available: %s)", name, strings.Join(Presets(), ", "))
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to parse roster preset %s: %w", name, err)
	}
	return r, r.Validate()
}

// Presets lists the embedded roster names, sorted.
func Presets() []string {
	entries, _ := presetFS.ReadDir("rosters")

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Validate rejects rosters that could not start a battle.
func (r Roster) Validate() error {
	if len(r.Fleets) == 0 {
		return errors.New("roster: no fleets defined")
	}

	seen := make(map[string]bool, len(r.Fleets))
	ships := 0
	for _, f := range r.Fleets {
		if seen[f.Name] {
			return fmt.Errorf("roster: duplicate fleet name %q", f.Name)
		}
		seen[f.Name] = true

		for _, s := range f.Ships {
			if s.Integrity < 1 {
				return fmt.Errorf("roster: ship %q in fleet %q has integrity %d, must be at least 1", s.Name, f.Name, s.Integrity)
			}
		}
		ships += len(f.Ships)
	}

	if ships == 0 {
		return errors.New("roster: no ships defined")
	}
	return nil
}

// Combat converts the roster into the form the store resets from.
func (r Roster) Combat() combat.Roster {
	out := combat.Roster{Fleets: make([]combat.FleetSeed, 0, len(r.Fleets))}
	for _, f := range r.Fleets {
		seed := combat.FleetSeed{Name: f.Name, Ships: make([]combat.ShipSeed, 0, len(f.Ships))}
		for _, s := range f.Ships {
			seed.Ships = append(seed.Ships, combat.ShipSeed{Name: s.Name, Integrity: s.Integrity})
		}
		out.Fleets = append(out.Fleets, seed)
	}
	return out
}

// userRosterPath returns the path to the user roster file, or empty if home is unavailable.
func userRosterPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fleetsim", "roster.yaml")
}
