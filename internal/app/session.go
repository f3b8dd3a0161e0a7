package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"tile-automata/internal/automaton"
	"tile-automata/internal/core"
	"tile-automata/internal/mapgen"
	"tile-automata/internal/tiles"
	"tile-automata/pkg/logger"
)

// Session holds the viewer state that does not depend on ebiten: the
// current configuration, the accepted map and the step-by-step replay of
// the automaton that produced it.
type Session struct {
	cfg     mapgen.Config
	surface *tiles.Tilemap
	preview *tiles.Tilemap
	gen     *mapgen.Generator
	log     logrus.FieldLogger

	result mapgen.Result
	err    error

	animating bool
	frame     *core.Grid
	frameStep int
}

// NewSession prepares a session; call Regenerate to build the first map.
func NewSession(cfg mapgen.Config, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logger.Log
	}
	return &Session{
		cfg:     cfg,
		surface: tiles.NewTilemap(),
		preview: tiles.NewTilemap(),
		log:     log,
	}
}

// Name identifies the session in window titles and the HUD.
func (s *Session) Name() string { return "tile-automata" }

// Size reports the map dimensions in tiles.
func (s *Session) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Config returns the current configuration.
func (s *Session) Config() mapgen.Config { return s.cfg }

// Result returns the last accepted map.
func (s *Session) Result() mapgen.Result { return s.result }

// Err returns the error of the last generation, if any.
func (s *Session) Err() error { return s.err }

// Regenerate builds a new map from seed with a fresh random source.
func (s *Session) Regenerate(ctx context.Context, seed int64) error {
	s.cfg.Seed = seed
	s.gen = mapgen.New(s.cfg, s.surface, mapgen.WithLogger(s.log))
	return s.build(ctx)
}

// Reroll builds another map continuing the current random sequence.
func (s *Session) Reroll(ctx context.Context) error {
	if s.gen == nil {
		return s.Regenerate(ctx, s.cfg.Seed)
	}
	return s.build(ctx)
}

func (s *Session) build(ctx context.Context) error {
	s.stopAnimation()
	res, err := s.gen.Build(ctx)
	s.err = err
	if err != nil {
		s.result = mapgen.Result{}
		s.log.WithError(err).Warn("generation failed")
		return err
	}
	s.result = res
	return nil
}

// Bounds is the surface region covered by the map.
func (s *Session) Bounds() tiles.Bounds {
	return mapgen.SurfaceBounds(s.cfg.Width, s.cfg.Height)
}

// View returns the surface to draw: the replay preview while animating,
// otherwise the accepted map.
func (s *Session) View() tiles.Surface {
	if s.animating {
		return s.preview
	}
	return s.surface
}

// Animating reports whether a replay is in progress.
func (s *Session) Animating() bool { return s.animating }

// StartAnimation replays the accepted map from its random fill.
func (s *Session) StartAnimation() bool {
	if s.result.Seeded == nil {
		return false
	}
	s.animating = true
	s.frame = s.result.Seeded
	s.frameStep = 0
	s.commitFrame()
	return true
}

// Advance steps the replay by one generation. It returns false once the
// replay has reached the accepted grid and switched back to the map.
func (s *Session) Advance() bool {
	if !s.animating {
		return false
	}
	if s.frameStep >= s.cfg.Iterations {
		s.stopAnimation()
		return false
	}
	s.frame = automaton.Step(s.frame, s.cfg.Rule())
	s.frameStep++
	s.commitFrame()
	return true
}

// FrameStep reports how many generations the replay has applied.
func (s *Session) FrameStep() int { return s.frameStep }

func (s *Session) commitFrame() {
	s.preview.Clear()
	mapgen.Commit(s.preview, s.frame)
}

func (s *Session) stopAnimation() {
	s.animating = false
	s.frame = nil
	s.frameStep = 0
	s.preview.Clear()
}

// Inspect describes the surface tile at p.
func (s *Session) Inspect(p core.Position) mapgen.Inspection {
	return mapgen.Inspect(s.View(), p, s.cfg.Width, s.cfg.Height)
}

// Parameters extends the config snapshot with the last generation outcome.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.cfg.Parameters()
	status := "ok"
	if s.err != nil {
		status = s.err.Error()
	}
	counts := mapgen.CountByTag(s.result.Placements)
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Last run",
		Params: []core.Parameter{
			{Key: "attempts", Label: "Attempts", Type: core.ParamTypeInt, Value: strconv.Itoa(s.result.Attempts)},
			{Key: "buildable", Label: "Buildable", Type: core.ParamTypeInt, Value: strconv.Itoa(s.result.Buildable)},
			{Key: "placements", Label: "Placements", Type: core.ParamTypeText, Value: fmt.Sprint(counts)},
			{Key: "status", Label: "Status", Type: core.ParamTypeText, Value: status},
		},
	})
	return snap
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return s.cfg.ParameterControls()
}

// SetIntParameter updates a parameter and regenerates with the same seed.
func (s *Session) SetIntParameter(key string, value int) bool {
	if !s.cfg.SetIntParameter(key, value) {
		return false
	}
	_ = s.Regenerate(context.Background(), s.cfg.Seed)
	return true
}
