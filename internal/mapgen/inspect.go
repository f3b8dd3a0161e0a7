package mapgen

import (
	"tile-automata/internal/core"
	"tile-automata/internal/tiles"
)

// Inspection describes one surface tile together with the grid cell it was
// committed from.
type Inspection struct {
	Position core.Position
	GridX    int
	GridY    int
	InGrid   bool
	Identity tiles.Identity
}

// Inspect maps surface position p back onto a w×h grid and reads the
// identity s currently resolves there.
func Inspect(s tiles.Surface, p core.Position, w, h int) Inspection {
	x, y := GridPosition(p, w, h)
	return Inspection{
		Position: p,
		GridX:    x,
		GridY:    y,
		InGrid:   x >= 0 && x < w && y >= 0 && y < h,
		Identity: s.ResolvedIdentity(p),
	}
}
