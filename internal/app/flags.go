package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset   string
	Scale    int
	TPS      int
	StepTPS  int
	Seed     int64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "caves", Scale: 10, TPS: 60, StepTPS: 4, Seed: 1337, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "generation preset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per tile")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepTPS, "step-tps", c.StepTPS, "automaton generations per second during replay")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
}
