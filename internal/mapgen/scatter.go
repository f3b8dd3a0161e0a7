package mapgen

import (
	"tile-automata/internal/core"
	"tile-automata/internal/tiles"

	rng "tile-automata/pkg/core"
)

// Placement records the resource left on a tile after scattering.
type Placement struct {
	Position core.Position
	Tag      tiles.ResourceTag
}

// Scatter walks the committed bounds of s in order. For every tile that
// resolves to plain ground it draws once per variety, in configured order,
// from [0,100) and writes the variety's resource when Chance >= draw.
//
// A later variety overwrites an earlier one on the same tile, so the
// variety list doubles as a priority order: the last variety that rolled
// wins. Note that Chance 0 still places on a draw of 0.
func Scatter(s tiles.Surface, src rng.Source, varieties []Variety) []Placement {
	if len(varieties) == 0 {
		return nil
	}
	var out []Placement
	for _, p := range s.Positions() {
		if !s.HasTile(p) || s.ResolvedIdentity(p) != tiles.PlainGround {
			continue
		}
		var tag tiles.ResourceTag
		placed := false
		for _, v := range varieties {
			if v.Chance >= rng.Range(src, 0, 100) {
				s.SetResourceTile(p, v.Tag)
				tag = v.Tag
				placed = true
			}
		}
		if placed {
			out = append(out, Placement{Position: p, Tag: tag})
		}
	}
	return out
}

// CountByTag tallies placements per resource tag.
func CountByTag(ps []Placement) map[tiles.ResourceTag]int {
	out := make(map[tiles.ResourceTag]int)
	for _, p := range ps {
		out[p.Tag]++
	}
	return out
}
