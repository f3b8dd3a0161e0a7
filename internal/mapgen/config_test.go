package mapgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tile-automata/internal/tiles"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRanges(t *testing.T) {
	cases := map[string]func(*Config){
		"width":          func(c *Config) { c.Width = 0 },
		"height":         func(c *Config) { c.Height = -2 },
		"init low":       func(c *Config) { c.InitChance = -1 },
		"init high":      func(c *Config) { c.InitChance = 101 },
		"birth low":      func(c *Config) { c.BirthLimit = 0 },
		"birth high":     func(c *Config) { c.BirthLimit = 9 },
		"death low":      func(c *Config) { c.DeathLimit = 0 },
		"death high":     func(c *Config) { c.DeathLimit = 9 },
		"iterations":     func(c *Config) { c.Iterations = -1 },
		"min buildable":  func(c *Config) { c.MinBuildableTiles = -1 },
		"max attempts":   func(c *Config) { c.MaxAttempts = -1 },
		"variety chance": func(c *Config) { c.Varieties = []Variety{{Chance: 101, Tag: "x"}} },
		"variety tag":    func(c *Config) { c.Varieties = []Variety{{Chance: 5}} },
	}
	for name, mutate := range cases {
		c := DefaultConfig()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalidConfig, name)
	}

	edge := DefaultConfig()
	edge.InitChance = 100
	edge.BirthLimit = 8
	edge.DeathLimit = 1
	edge.Iterations = 0
	edge.MinBuildableTiles = 0
	edge.MaxAttempts = 0
	edge.Varieties = []Variety{{Chance: 0, Tag: "a"}, {Chance: 100, Tag: "b"}}
	assert.NoError(t, edge.Validate())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":             "32",
		"h":             " 20 ",
		"seed":          "-9",
		"init_chance":   "50",
		"birth_limit":   "5",
		"death_limit":   "2",
		"iterations":    "7",
		"min_buildable": "10",
		"max_attempts":  "3",
		"workers":       "4",
		"varieties":     "ore:10, gem:2",
	})
	assert.Equal(t, 32, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, int64(-9), c.Seed)
	assert.Equal(t, 50, c.InitChance)
	assert.Equal(t, 5, c.BirthLimit)
	assert.Equal(t, 2, c.DeathLimit)
	assert.Equal(t, 7, c.Iterations)
	assert.Equal(t, 10, c.MinBuildableTiles)
	assert.Equal(t, 3, c.MaxAttempts)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, []Variety{{Chance: 10, Tag: "ore"}, {Chance: 2, Tag: "gem"}}, c.Varieties)
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{"w": "wide", "seed": "x", "varieties": "nope", "unknown": "1"})
	assert.Equal(t, def, c)
	assert.Equal(t, def, FromMap(nil))
}

func TestApplyDoesNotShareVarieties(t *testing.T) {
	base := DefaultConfig()
	c := base.Apply(nil)
	c.Varieties[0].Tag = "mutated"
	assert.Equal(t, tiles.ResourceTag("stone"), base.Varieties[0].Tag)
}

func TestParseVarieties(t *testing.T) {
	vs, err := ParseVarieties("stone:6,wood:4,gold:1")
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.Equal(t, Variety{Chance: 1, Tag: "gold"}, vs[2])
	assert.Equal(t, "stone:6,wood:4,gold:1", FormatVarieties(vs))

	vs, err = ParseVarieties("  ")
	require.NoError(t, err)
	assert.Empty(t, vs)

	for _, bad := range []string{"stone", ":5", "stone:x", "a:1,,b:2"} {
		_, err := ParseVarieties(bad)
		assert.ErrorIs(t, err, ErrInvalidConfig, bad)
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	c := DefaultConfig()
	require.True(t, c.SetIntParameter("birth_limit", 12))
	assert.Equal(t, 8, c.BirthLimit)
	require.True(t, c.SetIntParameter("init_chance", -5))
	assert.Equal(t, 0, c.InitChance)
	require.True(t, c.SetIntParameter("min_buildable", 1<<20))
	assert.Equal(t, c.Area(), c.MinBuildableTiles)
	assert.False(t, c.SetIntParameter("seed", 3))
	assert.NoError(t, c.Validate())
}

func TestParametersSnapshot(t *testing.T) {
	c := DefaultConfig()
	snap := c.Parameters()
	p, ok := snap.Lookup("death_limit")
	require.True(t, ok)
	assert.Equal(t, "3", p.Value)
	p, ok = snap.Lookup("varieties")
	require.True(t, ok)
	assert.Equal(t, FormatVarieties(c.Varieties), p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestPresetsAreValidAndGenerate(t *testing.T) {
	names := PresetNames()
	require.Equal(t, []string{"caves", "islands", "plains"}, names)
	for _, name := range names {
		cfg := Presets()[name]()
		require.NoError(t, cfg.Validate(), name)
		cfg.MaxAttempts = 0
		cfg.MinBuildableTiles = 0
		gen, _ := newGen(cfg)
		res, err := gen.Build(context.Background())
		require.NoError(t, err, name)
		assert.Equal(t, 1, res.Attempts, name)
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	Register("", DefaultConfig)
	Register("nil", nil)
	_, ok := Presets()["nil"]
	assert.False(t, ok)
	_, ok = Presets()[""]
	assert.False(t, ok)
}
