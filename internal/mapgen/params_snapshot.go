package mapgen

import (
	"strconv"

	"tile-automata/internal/core"
)

// Parameters returns the configuration as grouped HUD parameters.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.Seed, 10)},
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				intParam("init_chance", "Init chance", c.InitChance),
				intParam("birth_limit", "Birth limit", c.BirthLimit),
				intParam("death_limit", "Death limit", c.DeathLimit),
				intParam("iterations", "Iterations", c.Iterations),
			},
		},
		{
			Name: "Acceptance",
			Params: []core.Parameter{
				intParam("min_buildable", "Min buildable", c.MinBuildableTiles),
				intParam("max_attempts", "Max attempts", c.MaxAttempts),
			},
		},
		{
			Name: "Resources",
			Params: []core.Parameter{
				{Key: "varieties", Label: "Varieties", Type: core.ParamTypeText, Value: FormatVarieties(c.Varieties)},
			},
		},
	}}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (c Config) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "init_chance", Label: "Init chance", Step: 1, Min: 0, Max: 100},
		{Key: "birth_limit", Label: "Birth limit", Step: 1, Min: 1, Max: 8},
		{Key: "death_limit", Label: "Death limit", Step: 1, Min: 1, Max: 8},
		{Key: "iterations", Label: "Iterations", Step: 1, Min: 0, Max: 20},
		{Key: "min_buildable", Label: "Min buildable", Step: 50, Min: 0, Max: c.Area()},
	}
}

// SetIntParameter updates an adjustable parameter, clamping to the control
// bounds. It reports whether key names a control.
func (c *Config) SetIntParameter(key string, value int) bool {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		v := ctrl.Clamp(value)
		switch key {
		case "init_chance":
			c.InitChance = v
		case "birth_limit":
			c.BirthLimit = v
		case "death_limit":
			c.DeathLimit = v
		case "iterations":
			c.Iterations = v
		case "min_buildable":
			c.MinBuildableTiles = v
		}
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
