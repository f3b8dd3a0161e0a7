package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tile-automata/internal/mapgen"
	"tile-automata/internal/tiles"
	"tile-automata/pkg/logger"
)

type candidate struct {
	initChance int
	iterations int
}

func (c candidate) String() string {
	return fmt.Sprintf("init=%d iter=%d", c.initChance, c.iterations)
}

type sweepResult struct {
	params        candidate
	accepted      int
	trials        int
	meanBuildable float64
	minBuildable  int
	maxBuildable  int
}

func (r sweepResult) rate() float64 {
	if r.trials == 0 {
		return 0
	}
	return float64(r.accepted) / float64(r.trials)
}

func main() {
	preset := flag.String("preset", "caves", "base preset for every candidate")
	trials := flag.Int("trials", 32, "single-attempt generations per candidate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	initFrom := flag.Int("init-from", 35, "lowest init_chance to try")
	initTo := flag.Int("init-to", 55, "highest init_chance to try")
	initStep := flag.Int("init-step", 5, "init_chance increment")
	maxIter := flag.Int("max-iterations", 8, "highest iteration count to try")
	top := flag.Int("top", 10, "number of results to print")
	flag.Parse()
	logger.Init()

	factory, ok := mapgen.Presets()[*preset]
	if !ok {
		logger.Log.Fatalf("unknown preset %q (have %v)", *preset, mapgen.PresetNames())
	}
	base := factory()
	if *initStep <= 0 {
		*initStep = 1
	}

	var sets []candidate
	for chance := *initFrom; chance <= *initTo; chance += *initStep {
		for iter := 0; iter <= *maxIter; iter++ {
			sets = append(sets, candidate{initChance: chance, iterations: iter})
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"candidates": len(sets),
		"workers":    *workers,
		"trials":     *trials,
		"threshold":  base.MinBuildableTiles,
	}).Info("sweeping")

	jobs := make(chan candidate)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runCandidate(context.Background(), base, params, *trials)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	rank(all)

	fmt.Printf("Top %d of %d candidates for %s (threshold %d, elapsed %s):\n",
		min(*top, len(all)), len(all), *preset, base.MinBuildableTiles, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		r := all[i]
		fmt.Printf("%2d) %-16s accept=%5.1f%% buildable mean=%.1f range=[%d,%d]\n",
			i+1, r.params, 100*r.rate(), r.meanBuildable, r.minBuildable, r.maxBuildable)
	}
}

// rank orders results by acceptance rate, then mean buildable count.
func rank(all []sweepResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].rate() != all[j].rate() {
			return all[i].rate() > all[j].rate()
		}
		if all[i].meanBuildable != all[j].meanBuildable {
			return all[i].meanBuildable > all[j].meanBuildable
		}
		return all[i].params.String() < all[j].params.String()
	})
}

// runCandidate makes trials independent single-attempt generations, one
// seed each, and reports how many met the buildable threshold.
func runCandidate(ctx context.Context, base mapgen.Config, params candidate, trials int) sweepResult {
	cfg := base
	cfg.InitChance = params.initChance
	cfg.Iterations = params.iterations
	cfg.MaxAttempts = 1
	cfg.Workers = 1

	res := sweepResult{params: params, minBuildable: -1}
	total := 0
	surface := tiles.NewTilemap()
	for i := 0; i < trials; i++ {
		cfg.Seed = base.Seed + int64(i)
		buildable := 0
		out, err := mapgen.New(cfg, surface, mapgen.WithLogger(logger.Discard())).Generate(ctx)
		var unsat *mapgen.UnsatisfiableError
		switch {
		case err == nil:
			res.accepted++
			buildable = out.Buildable
		case errors.As(err, &unsat):
			buildable = unsat.BestBuildable
		default:
			logger.Log.WithError(err).WithField("candidate", params.String()).Warn("trial failed")
			continue
		}
		res.trials++
		total += buildable
		if res.minBuildable < 0 || buildable < res.minBuildable {
			res.minBuildable = buildable
		}
		if buildable > res.maxBuildable {
			res.maxBuildable = buildable
		}
	}
	if res.trials > 0 {
		res.meanBuildable = float64(total) / float64(res.trials)
	}
	if res.minBuildable < 0 {
		res.minBuildable = 0
	}
	return res
}
