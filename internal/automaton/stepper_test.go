package automaton

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tile-automata/internal/core"
)

func gridFrom(rows ...string) *core.Grid {
	g := core.MustGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				if err := g.Set(x, y, core.Alive); err != nil {
					panic(err)
				}
			}
		}
	}
	return g
}

func randomGrid(w, h int, seed uint64) *core.Grid {
	r := rand.New(rand.NewPCG(seed, 0))
	g := core.MustGrid(w, h)
	cells := g.Cells()
	for i := range cells {
		if r.IntN(100) < 45 {
			cells[i] = core.Alive
		}
	}
	return g
}

func TestAliveNeighborsClampsToBounds(t *testing.T) {
	g := gridFrom(
		"###",
		"###",
		"###",
	)
	assert.Equal(t, 3, AliveNeighbors(g, 0, 0), "corner")
	assert.Equal(t, 5, AliveNeighbors(g, 1, 0), "edge")
	assert.Equal(t, 8, AliveNeighbors(g, 1, 1), "center")
}

func TestSingleCellAliveSeedDies(t *testing.T) {
	g := gridFrom("#")
	require.Zero(t, AliveNeighbors(g, 0, 0))

	next := Step(g, Rule{BirthLimit: 4, DeathLimit: 1})
	assert.Equal(t, core.Dead, next.At(0, 0))
}

func TestBirthRequiresStrictlyMoreThanLimit(t *testing.T) {
	// Center cell is dead with exactly four alive neighbors.
	g := gridFrom(
		"#.#",
		"...",
		"#.#",
	)
	rule := Rule{BirthLimit: 4, DeathLimit: 3}
	require.Equal(t, 4, AliveNeighbors(g, 1, 1))

	next := Step(g, rule)
	assert.Equal(t, core.Dead, next.At(1, 1), "4 > 4 is false, cell stays dead")

	g5 := gridFrom(
		"###",
		"...",
		"#.#",
	)
	assert.Equal(t, core.Alive, Step(g5, rule).At(1, 1), "5 > 4 births the cell")
}

func TestDeathBelowLimit(t *testing.T) {
	rule := Rule{BirthLimit: 8, DeathLimit: 3}
	assert.Equal(t, core.Dead, rule.Next(core.Alive, 2))
	assert.Equal(t, core.Alive, rule.Next(core.Alive, 3))
	assert.Equal(t, core.Dead, rule.Next(core.Dead, 8))
}

func TestAllDeadStaysDead(t *testing.T) {
	g := core.MustGrid(5, 5)
	out := StepN(g, Rule{BirthLimit: 1, DeathLimit: 1}, 3)
	assert.Zero(t, out.CountAlive())
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := randomGrid(16, 12, 1)
	before := g.Clone()
	next := Step(g, Rule{BirthLimit: 4, DeathLimit: 3})

	assert.True(t, g.Equal(before), "input grid changed")
	require.NoError(t, next.Set(0, 0, core.Alive))
	assert.True(t, g.Equal(before), "output aliases input")
}

// Evaluating cells in a shuffled order from the same snapshot must match Step.
func TestStepIsOrderIndependent(t *testing.T) {
	rule := Rule{BirthLimit: 4, DeathLimit: 3}
	g := randomGrid(20, 15, 9)
	want := Step(g, rule)

	order := make([]int, g.W*g.H)
	for i := range order {
		order[i] = i
	}
	r := rand.New(rand.NewPCG(42, 0))
	for trial := 0; trial < 5; trial++ {
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		got := core.MustGrid(g.W, g.H)
		for _, idx := range order {
			x, y := idx%g.W, idx/g.W
			require.NoError(t, got.Set(x, y, rule.Next(g.At(x, y), AliveNeighbors(g, x, y))))
		}
		require.True(t, want.Equal(got), "trial %d diverged", trial)
	}
}

func TestStepConcurrentMatchesStep(t *testing.T) {
	rule := Rule{BirthLimit: 4, DeathLimit: 3}
	g := randomGrid(64, 37, 5)
	want := Step(g, rule)

	for _, workers := range []int{0, 1, 2, 3, 8, 100} {
		got, err := StepConcurrent(context.Background(), g, rule, workers)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "workers=%d", workers)
	}
}

func TestStepConcurrentHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := StepConcurrent(ctx, randomGrid(32, 32, 2), Rule{BirthLimit: 4, DeathLimit: 3}, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRuleValidate(t *testing.T) {
	require.NoError(t, Rule{BirthLimit: 1, DeathLimit: 8}.Validate())
	assert.ErrorIs(t, Rule{BirthLimit: 0, DeathLimit: 3}.Validate(), ErrInvalidRule)
	assert.ErrorIs(t, Rule{BirthLimit: 4, DeathLimit: 9}.Validate(), ErrInvalidRule)
}
