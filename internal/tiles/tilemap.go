package tiles

import "tile-automata/internal/core"

type tileKind uint8

const (
	kindRule tileKind = iota
	kindFlat
)

type tile struct {
	kind tileKind
	id   Identity
}

// Bounds is the inclusive bounding box of committed positions.
type Bounds struct {
	Min, Max core.Position
	Empty    bool
}

// Size returns the width and height covered by the bounds.
func (b Bounds) Size() core.Size {
	if b.Empty {
		return core.Size{}
	}
	return core.Size{W: b.Max.X - b.Min.X + 1, H: b.Max.Y - b.Min.Y + 1}
}

// Tilemap is an in-memory Surface. Ground tiles are rule tiles whose identity
// is resolved from their neighbors on every query; flat tiles carry a fixed
// identity.
type Tilemap struct {
	tiles  map[core.Position]tile
	bounds Bounds
}

// NewTilemap returns an empty tilemap.
func NewTilemap() *Tilemap {
	return &Tilemap{tiles: map[core.Position]tile{}, bounds: Bounds{Empty: true}}
}

// Clear removes all tiles and resets the committed bounds.
func (t *Tilemap) Clear() {
	clear(t.tiles)
	t.bounds = Bounds{Empty: true}
}

// SetGroundTile commits a rule ground tile at p.
func (t *Tilemap) SetGroundTile(p core.Position) {
	t.put(p, tile{kind: kindRule})
}

// SetResourceTile commits a flat resource tile at p.
func (t *Tilemap) SetResourceTile(p core.Position, tag ResourceTag) {
	t.put(p, tile{kind: kindFlat, id: ResourceIdentity(tag)})
}

// SetFlatTile commits a tile with a fixed identity at p.
func (t *Tilemap) SetFlatTile(p core.Position, id Identity) {
	t.put(p, tile{kind: kindFlat, id: id})
}

// HasTile reports whether p holds a tile.
func (t *Tilemap) HasTile(p core.Position) bool {
	_, ok := t.tiles[p]
	return ok
}

// ResolvedIdentity returns the identity of the tile at p.
func (t *Tilemap) ResolvedIdentity(p core.Position) Identity {
	tl, ok := t.tiles[p]
	if !ok {
		return None
	}
	if tl.kind == kindFlat {
		return tl.id
	}
	return ResolveGround(NeighborMaskAt(p, t.connectsGround))
}

// IsRuleTile reports whether p holds an unflattened ground tile.
func (t *Tilemap) IsRuleTile(p core.Position) bool {
	tl, ok := t.tiles[p]
	return ok && tl.kind == kindRule
}

// Positions enumerates the committed bounds in row-major order.
func (t *Tilemap) Positions() []core.Position {
	if t.bounds.Empty {
		return nil
	}
	size := t.bounds.Size()
	out := make([]core.Position, 0, size.Area())
	for y := t.bounds.Min.Y; y <= t.bounds.Max.Y; y++ {
		for x := t.bounds.Min.X; x <= t.bounds.Max.X; x++ {
			out = append(out, core.Position{X: x, Y: y})
		}
	}
	return out
}

// Bounds returns the committed bounding box.
func (t *Tilemap) Bounds() Bounds { return t.bounds }

// Len returns the number of committed tiles.
func (t *Tilemap) Len() int { return len(t.tiles) }

func (t *Tilemap) connectsGround(p core.Position) bool {
	tl, ok := t.tiles[p]
	if !ok {
		return false
	}
	return tl.kind == kindRule || tl.id.IsGround()
}

func (t *Tilemap) put(p core.Position, tl tile) {
	t.tiles[p] = tl
	if t.bounds.Empty {
		t.bounds = Bounds{Min: p, Max: p}
		return
	}
	t.bounds.Min.X = min(t.bounds.Min.X, p.X)
	t.bounds.Min.Y = min(t.bounds.Min.Y, p.Y)
	t.bounds.Max.X = max(t.bounds.Max.X, p.X)
	t.bounds.Max.Y = max(t.bounds.Max.Y, p.Y)
}
