// Package automaton implements the birth/death smoothing rule used to turn
// random noise into terrain.
package automaton

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tile-automata/internal/core"
)

// ErrInvalidRule reports limits outside [1,8].
var ErrInvalidRule = errors.New("automaton: limits must be within [1,8]")

// Rule holds the neighbor-count thresholds.
//
// An alive cell survives unless it has fewer than DeathLimit alive
// neighbors. A dead cell is born when it has more than BirthLimit alive
// neighbors. BirthLimit >= DeathLimit is allowed and may converge to
// all-dead or all-alive grids.
type Rule struct {
	BirthLimit int
	DeathLimit int
}

// Validate checks both limits against the Moore neighborhood size.
func (r Rule) Validate() error {
	if r.BirthLimit < 1 || r.BirthLimit > 8 {
		return fmt.Errorf("%w: birth limit %d", ErrInvalidRule, r.BirthLimit)
	}
	if r.DeathLimit < 1 || r.DeathLimit > 8 {
		return fmt.Errorf("%w: death limit %d", ErrInvalidRule, r.DeathLimit)
	}
	return nil
}

// Next returns the state of a cell with n alive neighbors on the next tick.
func (r Rule) Next(cur core.CellState, n int) core.CellState {
	if cur == core.Alive {
		if n < r.DeathLimit {
			return core.Dead
		}
		return core.Alive
	}
	if n > r.BirthLimit {
		return core.Alive
	}
	return core.Dead
}

// mooreOffsets lists the 8 neighbors of a cell.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// AliveNeighbors counts alive cells among the Moore neighbors of (x, y).
// Neighbors outside the grid are skipped; there is no wraparound.
func AliveNeighbors(g *core.Grid, x, y int) int {
	n := 0
	for _, d := range mooreOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
			continue
		}
		if g.Alive(nx, ny) {
			n++
		}
	}
	return n
}

// Step advances g by one generation and returns a freshly allocated grid.
// Every next state is computed from g, which is left untouched.
func Step(g *core.Grid, rule Rule) *core.Grid {
	next := core.MustGrid(g.W, g.H)
	stepRows(g, next, rule, 0, g.H)
	return next
}

// StepN applies Step n times.
func StepN(g *core.Grid, rule Rule, n int) *core.Grid {
	for i := 0; i < n; i++ {
		g = Step(g, rule)
	}
	return g
}

// StepConcurrent is Step with rows split into bands evaluated by up to
// workers goroutines. Bands read the shared input snapshot and write
// disjoint rows of the output, so the result equals Step.
func StepConcurrent(ctx context.Context, g *core.Grid, rule Rule, workers int) (*core.Grid, error) {
	if workers <= 1 || g.H < 2 {
		return Step(g, rule), nil
	}
	if workers > g.H {
		workers = g.H
	}
	next := core.MustGrid(g.W, g.H)
	band := (g.H + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y0 := 0; y0 < g.H; y0 += band {
		y0, y1 := y0, min(y0+band, g.H)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stepRows(g, next, rule, y0, y1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

func stepRows(cur, next *core.Grid, rule Rule, y0, y1 int) {
	out := next.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < cur.W; x++ {
			out[next.Index(x, y)] = rule.Next(cur.At(x, y), AliveNeighbors(cur, x, y))
		}
	}
}
