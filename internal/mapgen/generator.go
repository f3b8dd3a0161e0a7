// Package mapgen turns random noise into an accepted terrain map and scatters
// resources over it.
package mapgen

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tile-automata/internal/automaton"
	"tile-automata/internal/core"
	"tile-automata/internal/tiles"
	"tile-automata/pkg/logger"

	rng "tile-automata/pkg/core"
)

// Result describes an accepted map.
type Result struct {
	// Grid is the accepted occupancy after all iterations.
	Grid *core.Grid
	// Seeded is the random fill the accepted grid evolved from.
	Seeded *core.Grid
	// Attempts counts generation attempts, including the accepted one.
	Attempts int
	// Buildable is the number of plain ground tiles on the surface.
	Buildable int
	// Placements is filled by Build.
	Placements []Placement
}

// Generator owns a surface for the duration of each generation and keeps
// one random source across attempts and calls.
type Generator struct {
	cfg       Config
	surface   tiles.Surface
	flattener tiles.Flattener
	src       rng.Source
	log       logrus.FieldLogger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSource replaces the seeded RNG with src.
func WithSource(src rng.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithFlattener replaces the default RuleFlattener.
func WithFlattener(f tiles.Flattener) Option {
	return func(g *Generator) { g.flattener = f }
}

// WithLogger replaces the package logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) { g.log = l }
}

// New builds a Generator committing to surface. The random source defaults
// to an RNG seeded with cfg.Seed.
func New(cfg Config, surface tiles.Surface, opts ...Option) *Generator {
	cfg.Varieties = append([]Variety(nil), cfg.Varieties...)
	g := &Generator{
		cfg:       cfg,
		surface:   surface,
		flattener: tiles.RuleFlattener{},
		log:       logger.Log,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rng.NewRNG(cfg.Seed)
	}
	return g
}

// Config returns a copy of the generator configuration.
func (g *Generator) Config() Config {
	c := g.cfg
	c.Varieties = append([]Variety(nil), c.Varieties...)
	return c
}

// Surface returns the surface the generator commits to.
func (g *Generator) Surface() tiles.Surface { return g.surface }

// Generate seeds, evolves and commits grids until one yields at least
// MinBuildableTiles plain ground tiles. Rejected attempts are cleared from
// the surface. The context is checked between attempts.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	cfg := g.cfg
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.MinBuildableTiles > cfg.Area() {
		return Result{}, &UnsatisfiableError{MinBuildable: cfg.MinBuildableTiles}
	}

	log := g.log.WithFields(logrus.Fields{
		"size":          fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"min_buildable": cfg.MinBuildableTiles,
	})
	rule := cfg.Rule()
	best := 0

	g.surface.Clear()
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			g.surface.Clear()
			return Result{}, err
		}
		if cfg.MaxAttempts > 0 && attempt > cfg.MaxAttempts {
			g.surface.Clear()
			log.WithField("best", best).Warn("attempt cap reached without an acceptable map")
			return Result{}, &UnsatisfiableError{
				Attempts:      cfg.MaxAttempts,
				BestBuildable: best,
				MinBuildable:  cfg.MinBuildableTiles,
			}
		}

		seeded := Seed(g.src, cfg.Width, cfg.Height, cfg.InitChance)
		grid, err := g.evolve(ctx, seeded, rule)
		if err != nil {
			g.surface.Clear()
			return Result{}, err
		}

		Commit(g.surface, grid)
		if err := g.flattener.Flatten(g.surface); err != nil {
			g.surface.Clear()
			return Result{}, fmt.Errorf("mapgen: flatten: %w", err)
		}

		buildable := tiles.CountIdentity(g.surface, tiles.PlainGround)
		if buildable >= cfg.MinBuildableTiles {
			log.WithFields(logrus.Fields{
				"attempts":  attempt,
				"buildable": buildable,
			}).Info("map accepted")
			return Result{Grid: grid, Seeded: seeded, Attempts: attempt, Buildable: buildable}, nil
		}

		best = max(best, buildable)
		log.WithFields(logrus.Fields{
			"attempt":   attempt,
			"buildable": buildable,
		}).Debug("map rejected")
		g.surface.Clear()
	}
}

// Build runs Generate and scatters the configured varieties over the
// accepted surface.
func (g *Generator) Build(ctx context.Context) (Result, error) {
	res, err := g.Generate(ctx)
	if err != nil {
		return res, err
	}
	res.Placements = Scatter(g.surface, g.src, g.cfg.Varieties)
	g.log.WithField("placements", len(res.Placements)).Debug("resources scattered")
	return res, nil
}

func (g *Generator) evolve(ctx context.Context, grid *core.Grid, rule automaton.Rule) (*core.Grid, error) {
	for i := 0; i < g.cfg.Iterations; i++ {
		if g.cfg.Workers > 1 {
			next, err := automaton.StepConcurrent(ctx, grid, rule, g.cfg.Workers)
			if err != nil {
				return nil, err
			}
			grid = next
			continue
		}
		grid = automaton.Step(grid, rule)
	}
	return grid, nil
}

// Seed fills a fresh w×h grid. Each cell draws from [1,100] and is alive
// when the draw is strictly less than initChance, so the alive probability
// is (initChance-1)/100. Cells are drawn column by column.
func Seed(src rng.Source, w, h, initChance int) *core.Grid {
	g := core.MustGrid(w, h)
	cells := g.Cells()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if rng.Range(src, 1, 101) < initChance {
				cells[g.Index(x, y)] = core.Alive
			}
		}
	}
	return g
}

// Commit writes every alive cell of grid to s as a ground tile, centred on
// the origin.
func Commit(s tiles.Surface, grid *core.Grid) {
	for x := 0; x < grid.W; x++ {
		for y := 0; y < grid.H; y++ {
			if grid.Alive(x, y) {
				s.SetGroundTile(SurfacePosition(x, y, grid.W, grid.H))
			}
		}
	}
}

// SurfacePosition maps grid cell (x, y) to its surface position
// (-x + w/2, -y + h/2).
func SurfacePosition(x, y, w, h int) core.Position {
	return core.Position{X: -x + w/2, Y: -y + h/2}
}

// GridPosition inverts SurfacePosition.
func GridPosition(p core.Position, w, h int) (x, y int) {
	return w/2 - p.X, h/2 - p.Y
}

// SurfaceBounds returns the surface region a w×h grid commits into.
func SurfaceBounds(w, h int) tiles.Bounds {
	return tiles.Bounds{
		Min: SurfacePosition(w-1, h-1, w, h),
		Max: SurfacePosition(0, 0, w, h),
	}
}
