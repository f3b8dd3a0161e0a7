package tiles

import "tile-automata/internal/core"

// NeighborMask records which of the 8 neighbors of a ground tile connect to
// it. North is -Y.
type NeighborMask uint8

const (
	MaskN NeighborMask = 1 << iota
	MaskNE
	MaskE
	MaskSE
	MaskS
	MaskSW
	MaskW
	MaskNW

	MaskAll NeighborMask = 0xff
)

var maskOffsets = [8]struct {
	bit    NeighborMask
	dx, dy int
}{
	{MaskN, 0, -1},
	{MaskNE, 1, -1},
	{MaskE, 1, 0},
	{MaskSE, 1, 1},
	{MaskS, 0, 1},
	{MaskSW, -1, 1},
	{MaskW, -1, 0},
	{MaskNW, -1, -1},
}

// Has reports whether every bit in b is set.
func (m NeighborMask) Has(b NeighborMask) bool { return m&b == b }

// NeighborMaskAt builds the mask for p using connects to test neighbors.
func NeighborMaskAt(p core.Position, connects func(core.Position) bool) NeighborMask {
	var m NeighborMask
	for _, o := range maskOffsets {
		if connects(core.Position{X: p.X + o.dx, Y: p.Y + o.dy}) {
			m |= o.bit
		}
	}
	return m
}

// ResolveGround picks the identity of a ground tile from its neighbor mask.
// Any open orthogonal side yields an edge tile naming the open sides in
// n,e,s,w order. A closed tile with an open diagonal is a corner. Only a
// fully surrounded tile is plain.
func ResolveGround(m NeighborMask) Identity {
	sides := make([]byte, 0, 4)
	if !m.Has(MaskN) {
		sides = append(sides, 'n')
	}
	if !m.Has(MaskE) {
		sides = append(sides, 'e')
	}
	if !m.Has(MaskS) {
		sides = append(sides, 's')
	}
	if !m.Has(MaskW) {
		sides = append(sides, 'w')
	}
	if len(sides) > 0 {
		return EdgeIdentity(string(sides))
	}
	if m != MaskAll {
		return GroundCorner
	}
	return PlainGround
}
