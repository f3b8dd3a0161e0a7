package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"tile-automata/internal/mapgen"
	"tile-automata/internal/render"
	"tile-automata/internal/tiles"
	"tile-automata/pkg/logger"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	preset := flag.String("preset", "caves", "generation preset ("+strings.Join(mapgen.PresetNames(), ", ")+")")
	seed := flag.Int64("seed", 0, "seed for map generation (0 keeps the preset seed)")
	printASCII := flag.Bool("ascii", true, "print the map as text to stdout")
	pngPath := flag.String("png", "", "write the map as a PNG to this path")
	scale := flag.Int("scale", 8, "pixels per tile in the PNG")
	copyASCII := flag.Bool("copy", false, "copy the text map to the clipboard")
	timeout := flag.Duration("timeout", 30*time.Second, "give up on generation after this long")
	var overrides kvList
	var varieties kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Var(&varieties, "variety", "resource variety in tag:chance form (repeatable, replaces the preset list)")
	flag.Parse()
	logger.Init()

	cfg, err := buildConfig(*preset, *seed, overrides, varieties)
	if err != nil {
		logger.Log.WithError(err).Fatal("bad configuration")
	}
	log := logger.Log.WithFields(logrus.Fields{"preset": *preset, "seed": cfg.Seed})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	surface := tiles.NewTilemap()
	start := time.Now()
	res, err := mapgen.New(cfg, surface, mapgen.WithLogger(log)).Build(ctx)
	if err != nil {
		var unsat *mapgen.UnsatisfiableError
		if errors.As(err, &unsat) {
			log.WithFields(logrus.Fields{
				"attempts":       unsat.Attempts,
				"best_buildable": unsat.BestBuildable,
				"min_buildable":  unsat.MinBuildable,
			}).Error("no map met the buildable threshold")
			os.Exit(1)
		}
		log.WithError(err).Fatal("generation failed")
	}
	log.WithFields(logrus.Fields{
		"attempts":  res.Attempts,
		"buildable": res.Buildable,
		"resources": mapgen.CountByTag(res.Placements),
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Info("map generated")

	bounds := mapgen.SurfaceBounds(cfg.Width, cfg.Height)
	text := render.ASCII(surface, bounds)
	if *printASCII {
		fmt.Print(text)
	}
	if *copyASCII {
		if err := clipboard.WriteAll(text); err != nil {
			log.WithError(err).Warn("clipboard unavailable")
		}
	}
	if *pngPath != "" {
		if err := writePNG(*pngPath, surface, bounds, *scale); err != nil {
			log.WithError(err).Fatal("write png")
		}
		log.WithField("path", *pngPath).Info("png written")
	}
}

func buildConfig(preset string, seed int64, overrides, varieties []string) (mapgen.Config, error) {
	factory, ok := mapgen.Presets()[preset]
	if !ok {
		return mapgen.Config{}, fmt.Errorf("unknown preset %q (have %v)", preset, mapgen.PresetNames())
	}
	cfg := factory()
	if seed != 0 {
		cfg.Seed = seed
	}

	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			return mapgen.Config{}, fmt.Errorf("override %q must be key=value", o)
		}
		kv[strings.TrimSpace(key)] = value
	}
	cfg = cfg.Apply(kv)

	if len(varieties) > 0 {
		cfg.Varieties = nil
		for _, v := range varieties {
			parsed, err := mapgen.ParseVariety(v)
			if err != nil {
				return mapgen.Config{}, err
			}
			cfg.Varieties = append(cfg.Varieties, parsed)
		}
	}
	return cfg, cfg.Validate()
}

func writePNG(path string, s tiles.Surface, b tiles.Bounds, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, s, b, render.DefaultPalette(), scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
