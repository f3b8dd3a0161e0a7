package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tile-automata/internal/core"
	"tile-automata/internal/tiles"

	rng "tile-automata/pkg/core"
)

// flatSquare commits a fully alive w×h grid and flattens it. The inner
// (w-2)×(h-2) tiles are plain ground.
func flatSquare(t *testing.T, w, h int) *tiles.Tilemap {
	t.Helper()
	g := core.MustGrid(w, h)
	for i := range g.Cells() {
		g.Cells()[i] = core.Alive
	}
	tm := tiles.NewTilemap()
	Commit(tm, g)
	require.NoError(t, tiles.RuleFlattener{}.Flatten(tm))
	return tm
}

func TestScatterLastVarietyWins(t *testing.T) {
	tm := flatSquare(t, 5, 5)
	varieties := []Variety{{Chance: 100, Tag: "a"}, {Chance: 100, Tag: "b"}}

	ps := Scatter(tm, rng.NewRNG(3), varieties)
	require.Len(t, ps, 9)
	for _, p := range ps {
		assert.Equal(t, tiles.ResourceTag("b"), p.Tag)
		assert.Equal(t, tiles.ResourceIdentity("b"), tm.ResolvedIdentity(p.Position))
	}
	assert.Zero(t, tiles.CountIdentity(tm, tiles.ResourceIdentity("a")))
}

func TestScatterZeroThenCertain(t *testing.T) {
	tm := flatSquare(t, 6, 6)
	ps := Scatter(tm, rng.NewRNG(11), []Variety{{Chance: 0, Tag: "a"}, {Chance: 100, Tag: "b"}})
	require.Len(t, ps, 16)
	assert.Equal(t, map[tiles.ResourceTag]int{"b": 16}, CountByTag(ps))
}

func TestScatterZeroChanceStillFiresOnZeroDraw(t *testing.T) {
	tm := flatSquare(t, 3, 3)
	ps := Scatter(tm, &scriptedSource{vals: []int{0}}, []Variety{{Chance: 0, Tag: "a"}})
	require.Len(t, ps, 1)
	assert.Equal(t, tiles.ResourceTag("a"), ps[0].Tag)
}

func TestScatterKeepsEarlierPlacementWhenLaterMisses(t *testing.T) {
	tm := flatSquare(t, 3, 3)
	// a rolls 10 (placed), b rolls 99 (missed).
	src := &scriptedSource{vals: []int{10, 99}}
	ps := Scatter(tm, src, []Variety{{Chance: 50, Tag: "a"}, {Chance: 10, Tag: "b"}})
	require.Len(t, ps, 1)
	assert.Equal(t, tiles.ResourceTag("a"), ps[0].Tag)
	assert.Equal(t, core.Position{X: 0, Y: 0}, ps[0].Position)
}

func TestScatterOnlyTouchesPlainGround(t *testing.T) {
	tm := flatSquare(t, 5, 4)
	before := map[core.Position]tiles.Identity{}
	for _, p := range tm.Positions() {
		if tm.HasTile(p) {
			before[p] = tm.ResolvedIdentity(p)
		}
	}

	src := &countingSource{inner: rng.NewRNG(5)}
	ps := Scatter(tm, src, []Variety{{Chance: 100, Tag: "ore"}, {Chance: 50, Tag: "gem"}, {Chance: 1, Tag: "relic"}})

	plain := 3 * 2
	assert.Equal(t, plain*3, src.draws, "one draw per variety per plain tile")
	assert.Len(t, ps, plain)
	for p, id := range before {
		if id == tiles.PlainGround {
			_, ok := tm.ResolvedIdentity(p).Resource()
			assert.True(t, ok, "plain tile %v should hold a resource", p)
			continue
		}
		assert.Equal(t, id, tm.ResolvedIdentity(p), "non-plain tile %v changed", p)
	}
}

func TestScatterNoVarieties(t *testing.T) {
	tm := flatSquare(t, 4, 4)
	src := &countingSource{inner: rng.NewRNG(1)}
	assert.Nil(t, Scatter(tm, src, nil))
	assert.Zero(t, src.draws)
	assert.Equal(t, 4, tiles.CountIdentity(tm, tiles.PlainGround))
}
