//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"

	"tile-automata/internal/app"
	"tile-automata/internal/mapgen"
	"tile-automata/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	logger.Init()

	preset, ok := mapgen.Presets()[cfg.Preset]
	if !ok {
		logger.Log.Fatalf("unknown preset %q (have %v)", cfg.Preset, mapgen.PresetNames())
	}

	session := app.NewSession(preset(), logger.Log.WithField("preset", cfg.Preset))
	if err := session.Regenerate(context.Background(), cfg.Seed); err != nil {
		if !errors.Is(err, mapgen.ErrUnsatisfiable) {
			logger.Log.WithError(err).Fatal("initial generation failed")
		}
		logger.Log.WithError(err).Warn("starting with an empty map")
	}

	game := app.New(session, cfg)
	size := session.Size()

	ebiten.SetWindowTitle("tile-automata: " + cfg.Preset)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}
