package mapgen

import "sort"

// Preset constructs a named starting configuration.
type Preset func() Config

var presets = map[string]Preset{}

// Register adds a preset under the provided name.
func Register(name string, p Preset) {
	if name == "" || p == nil {
		return
	}
	presets[name] = p
}

// Presets exposes the registry of available presets.
func Presets() map[string]Preset {
	return presets
}

// PresetNames returns the registered names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("caves", DefaultConfig)
	Register("islands", func() Config {
		c := DefaultConfig()
		c.InitChance = 40
		c.BirthLimit = 5
		c.DeathLimit = 4
		c.Iterations = 6
		c.MinBuildableTiles = 150
		c.Varieties = []Variety{{Chance: 8, Tag: "wood"}, {Chance: 2, Tag: "fish"}}
		return c
	})
	Register("plains", func() Config {
		c := DefaultConfig()
		c.InitChance = 60
		c.BirthLimit = 3
		c.DeathLimit = 2
		c.Iterations = 3
		c.MinBuildableTiles = 1200
		c.Varieties = []Variety{{Chance: 10, Tag: "stone"}, {Chance: 5, Tag: "wood"}, {Chance: 1, Tag: "gold"}}
		return c
	})
}
