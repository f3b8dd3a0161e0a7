package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tile-automata/internal/core"
)

func pos(x, y int) core.Position { return core.Position{X: x, Y: y} }

func fillGround(t *Tilemap, x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			t.SetGroundTile(pos(x, y))
		}
	}
}

func TestResolveGround(t *testing.T) {
	assert.Equal(t, PlainGround, ResolveGround(MaskAll))
	assert.Equal(t, GroundCorner, ResolveGround(MaskAll&^MaskNE))
	assert.Equal(t, EdgeIdentity("n"), ResolveGround(MaskAll&^MaskN))
	assert.Equal(t, EdgeIdentity("nesw"), ResolveGround(0))
	assert.Equal(t, EdgeIdentity("sw"), ResolveGround(MaskN|MaskE|MaskNE))
}

func TestIdentityHelpers(t *testing.T) {
	assert.True(t, PlainGround.IsGround())
	assert.True(t, EdgeIdentity("ne").IsGround())
	assert.False(t, ResourceIdentity("ore").IsGround())

	tag, ok := ResourceIdentity("gem").Resource()
	require.True(t, ok)
	assert.Equal(t, ResourceTag("gem"), tag)
	_, ok = PlainGround.Resource()
	assert.False(t, ok)
}

func TestTilemapRuleTilesResolveFromNeighbors(t *testing.T) {
	tm := NewTilemap()
	fillGround(tm, 0, 0, 3, 3)

	assert.Equal(t, PlainGround, tm.ResolvedIdentity(pos(1, 1)))
	assert.Equal(t, EdgeIdentity("nw"), tm.ResolvedIdentity(pos(0, 0)))
	assert.Equal(t, EdgeIdentity("e"), tm.ResolvedIdentity(pos(2, 1)))
	assert.Equal(t, None, tm.ResolvedIdentity(pos(5, 5)))

	// Removing support changes the rule tile's identity.
	tm.SetResourceTile(pos(0, 0), "ore")
	assert.Equal(t, GroundCorner, tm.ResolvedIdentity(pos(1, 1)))
}

func TestTilemapBoundsAndPositions(t *testing.T) {
	tm := NewTilemap()
	assert.True(t, tm.Bounds().Empty)
	assert.Nil(t, tm.Positions())

	tm.SetGroundTile(pos(-2, 1))
	tm.SetGroundTile(pos(1, -1))
	b := tm.Bounds()
	assert.Equal(t, pos(-2, -1), b.Min)
	assert.Equal(t, pos(1, 1), b.Max)
	assert.Equal(t, core.Size{W: 4, H: 3}, b.Size())

	ps := tm.Positions()
	require.Len(t, ps, 12)
	assert.Equal(t, pos(-2, -1), ps[0])
	assert.Equal(t, pos(-1, -1), ps[1])
	assert.Equal(t, pos(1, 1), ps[11])
	assert.Equal(t, 2, tm.Len())

	tm.Clear()
	assert.True(t, tm.Bounds().Empty)
	assert.Zero(t, tm.Len())
	assert.False(t, tm.HasTile(pos(1, -1)))
}

func TestResourceTileOverwrites(t *testing.T) {
	tm := NewTilemap()
	tm.SetGroundTile(pos(0, 0))
	tm.SetResourceTile(pos(0, 0), "ore")
	tm.SetResourceTile(pos(0, 0), "gem")
	assert.Equal(t, ResourceIdentity("gem"), tm.ResolvedIdentity(pos(0, 0)))
	assert.False(t, tm.IsRuleTile(pos(0, 0)))
}

func TestFlattenFreezesIdentities(t *testing.T) {
	tm := NewTilemap()
	fillGround(tm, 0, 0, 4, 4)
	before := map[core.Position]Identity{}
	for _, p := range tm.Positions() {
		before[p] = tm.ResolvedIdentity(p)
	}

	require.NoError(t, RuleFlattener{}.Flatten(tm))
	for p, id := range before {
		assert.Equal(t, id, tm.ResolvedIdentity(p), "position %v", p)
		assert.False(t, tm.IsRuleTile(p))
	}
	assert.Equal(t, 4, CountIdentity(tm, PlainGround))

	// After flattening, edits no longer ripple into neighbors.
	tm.SetResourceTile(pos(0, 0), "ore")
	assert.Equal(t, PlainGround, tm.ResolvedIdentity(pos(1, 1)))
}

type noFlat struct{}

func (noFlat) Clear()                                     {}
func (noFlat) SetGroundTile(core.Position)                {}
func (noFlat) SetResourceTile(core.Position, ResourceTag) {}
func (noFlat) HasTile(core.Position) bool                 { return false }
func (noFlat) ResolvedIdentity(core.Position) Identity    { return None }
func (noFlat) Positions() []core.Position                 { return nil }

func TestFlattenRejectsSurfaceWithoutFlatTiles(t *testing.T) {
	assert.ErrorIs(t, RuleFlattener{}.Flatten(noFlat{}), ErrNotFlattenable)
}
