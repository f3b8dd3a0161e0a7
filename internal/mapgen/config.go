package mapgen

import (
	"fmt"
	"strconv"
	"strings"

	"tile-automata/internal/automaton"
	"tile-automata/internal/tiles"
)

// Variety is one resource kind scattered over plain ground. Chance is a
// percentage in [0,100].
type Variety struct {
	Chance int
	Tag    tiles.ResourceTag
}

// Config holds the generation parameters. It is treated as immutable once
// handed to a Generator.
type Config struct {
	Width  int
	Height int

	Seed int64

	// InitChance is the seeding percentage. A cell starts alive when a draw
	// in [1,100] is strictly less than InitChance.
	InitChance int
	BirthLimit int
	DeathLimit int
	Iterations int

	MinBuildableTiles int
	// MaxAttempts caps the retry loop. Zero retries forever.
	MaxAttempts int
	// Workers > 1 steps the automaton with that many goroutines.
	Workers int

	// Varieties are applied in order; later ones overwrite earlier ones on
	// the same tile.
	Varieties []Variety
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             64,
		Height:            48,
		Seed:              1337,
		InitChance:        45,
		BirthLimit:        4,
		DeathLimit:        3,
		Iterations:        5,
		MinBuildableTiles: 400,
		MaxAttempts:       1000,
		Workers:           1,
		Varieties: []Variety{
			{Chance: 6, Tag: "stone"},
			{Chance: 4, Tag: "wood"},
			{Chance: 1, Tag: "gold"},
		},
	}
}

// Rule returns the automaton rule described by the config.
func (c Config) Rule() automaton.Rule {
	return automaton.Rule{BirthLimit: c.BirthLimit, DeathLimit: c.DeathLimit}
}

// Area returns Width*Height.
func (c Config) Area() int { return c.Width * c.Height }

// Validate checks every field against its declared range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return invalid("width", c.Width, "must be positive")
	case c.Height <= 0:
		return invalid("height", c.Height, "must be positive")
	case c.InitChance < 0 || c.InitChance > 100:
		return invalid("init_chance", c.InitChance, "must be within [0,100]")
	case c.BirthLimit < 1 || c.BirthLimit > 8:
		return invalid("birth_limit", c.BirthLimit, "must be within [1,8]")
	case c.DeathLimit < 1 || c.DeathLimit > 8:
		return invalid("death_limit", c.DeathLimit, "must be within [1,8]")
	case c.Iterations < 0:
		return invalid("iterations", c.Iterations, "must not be negative")
	case c.MinBuildableTiles < 0:
		return invalid("min_buildable", c.MinBuildableTiles, "must not be negative")
	case c.MaxAttempts < 0:
		return invalid("max_attempts", c.MaxAttempts, "must not be negative")
	}
	for i, v := range c.Varieties {
		if v.Chance < 0 || v.Chance > 100 {
			return invalid(fmt.Sprintf("varieties[%d].chance", i), v.Chance, "must be within [0,100]")
		}
		if v.Tag == "" {
			return fmt.Errorf("%w: varieties[%d] has an empty tag", ErrInvalidConfig, i)
		}
	}
	return nil
}

func invalid(field string, value int, why string) error {
	return fmt.Errorf("%w: %s=%d %s", ErrInvalidConfig, field, value, why)
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-type values are ignored; range checks are
// left to Validate.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields of c from a key/value map and returns the result.
func (c Config) Apply(cfg map[string]string) Config {
	ints := map[string]*int{
		"w":             &c.Width,
		"h":             &c.Height,
		"init_chance":   &c.InitChance,
		"birth_limit":   &c.BirthLimit,
		"death_limit":   &c.DeathLimit,
		"iterations":    &c.Iterations,
		"min_buildable": &c.MinBuildableTiles,
		"max_attempts":  &c.MaxAttempts,
		"workers":       &c.Workers,
	}
	for key, v := range cfg {
		if dst, ok := ints[key]; ok {
			if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = parsed
			}
			continue
		}
		switch key {
		case "seed":
			if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				c.Seed = parsed
			}
		case "varieties":
			if parsed, err := ParseVarieties(v); err == nil {
				c.Varieties = parsed
			}
		}
	}
	c.Varieties = append([]Variety(nil), c.Varieties...)
	return c
}

// ParseVarieties parses an ordered list such as "stone:6,wood:4,gold:1".
// An empty string yields no varieties.
func ParseVarieties(s string) ([]Variety, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []Variety
	for _, part := range strings.Split(s, ",") {
		v, err := ParseVariety(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseVariety parses a single "tag:chance" pair.
func ParseVariety(s string) (Variety, error) {
	tag, chance, ok := strings.Cut(strings.TrimSpace(s), ":")
	tag = strings.TrimSpace(tag)
	if !ok || tag == "" {
		return Variety{}, fmt.Errorf("%w: variety %q must be tag:chance", ErrInvalidConfig, s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(chance))
	if err != nil {
		return Variety{}, fmt.Errorf("%w: variety %q: %v", ErrInvalidConfig, s, err)
	}
	return Variety{Chance: n, Tag: tiles.ResourceTag(tag)}, nil
}

// FormatVarieties is the inverse of ParseVarieties.
func FormatVarieties(vs []Variety) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%s:%d", v.Tag, v.Chance)
	}
	return strings.Join(parts, ",")
}
