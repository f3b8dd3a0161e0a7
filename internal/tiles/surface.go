// Package tiles holds the tile surface that generated maps are committed to,
// along with auto-tile resolution and flattening.
package tiles

import (
	"errors"
	"strings"

	"tile-automata/internal/core"
)

// Identity is the resolved visual identity of a committed tile. Two tiles
// with the same Identity look the same.
type Identity string

// ResourceTag names a resource variety, e.g. "ore" or "gem".
type ResourceTag string

const (
	// None is returned for positions holding no tile.
	None Identity = ""
	// PlainGround is the identity of a fully surrounded ground tile. Only
	// tiles with this identity count as buildable.
	PlainGround Identity = "ground"
	// GroundCorner is a ground tile with all orthogonal neighbors present but
	// at least one diagonal missing.
	GroundCorner Identity = "ground_corner"

	edgePrefix     = "ground_edge_"
	resourcePrefix = "resource:"
)

// EdgeIdentity returns the identity of a ground tile whose listed sides
// (subset of "nesw", in that order) are open.
func EdgeIdentity(sides string) Identity { return Identity(edgePrefix + sides) }

// ResourceIdentity returns the identity a resource tile resolves to.
func ResourceIdentity(tag ResourceTag) Identity { return Identity(resourcePrefix + string(tag)) }

// IsGround reports whether id is any ground variant.
func (id Identity) IsGround() bool {
	return id == PlainGround || id == GroundCorner || strings.HasPrefix(string(id), edgePrefix)
}

// Resource returns the tag of a resource identity.
func (id Identity) Resource() (ResourceTag, bool) {
	s, ok := strings.CutPrefix(string(id), resourcePrefix)
	if !ok {
		return "", false
	}
	return ResourceTag(s), true
}

// Surface is the tile map a generator commits to. Implementations are
// owned by one generator for the duration of an attempt.
type Surface interface {
	// Clear removes every committed tile.
	Clear()
	// SetGroundTile commits a connective ground tile at p.
	SetGroundTile(p core.Position)
	// SetResourceTile commits a resource tile at p, replacing any tile there.
	SetResourceTile(p core.Position, tag ResourceTag)
	HasTile(p core.Position) bool
	// ResolvedIdentity returns the identity the tile at p currently resolves
	// to, or None.
	ResolvedIdentity(p core.Position) Identity
	// Positions enumerates every position inside the committed bounds,
	// including empty ones, in row-major order. Each call returns a fresh
	// slice.
	Positions() []core.Position
}

// Flattener resolves every connective tile on a surface into a fixed
// identity so later edits elsewhere cannot change it.
type Flattener interface {
	Flatten(s Surface) error
}

// FlatSetter is implemented by surfaces that can hold fixed-identity tiles.
type FlatSetter interface {
	SetFlatTile(p core.Position, id Identity)
}

// ErrNotFlattenable is returned when a surface cannot hold flat tiles.
var ErrNotFlattenable = errors.New("tiles: surface does not support flat tiles")

// CountIdentity returns how many committed tiles resolve to id.
func CountIdentity(s Surface, id Identity) int {
	n := 0
	for _, p := range s.Positions() {
		if s.HasTile(p) && s.ResolvedIdentity(p) == id {
			n++
		}
	}
	return n
}
