package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a coordinate outside the grid bounds.
	ErrOutOfRange = errors.New("core: coordinate out of range")
	// ErrInvalidSize reports a non-positive grid dimension.
	ErrInvalidSize = errors.New("core: grid dimensions must be positive")
)

// Grid stores a dense 2D occupancy map in row-major order. Every coordinate
// in [0,W)×[0,H) holds exactly one CellState.
type Grid struct {
	W, H int
	data []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid{W: w, H: h, data: make([]CellState, w*h)}, nil
}

// MustGrid is NewGrid for dimensions known to be valid.
func MustGrid(w, h int) *Grid {
	g, err := NewGrid(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Get returns the state at (x, y).
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Dead, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.W, g.H)
	}
	return g.data[g.Index(x, y)], nil
}

// Set writes the state at (x, y).
func (g *Grid) Set(x, y int, s CellState) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] = s
	return nil
}

// At is the unchecked read used on hot paths. It panics on out-of-range
// coordinates instead of clamping.
func (g *Grid) At(x, y int) CellState {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: At(%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return g.data[g.Index(x, y)]
}

// Alive reports whether (x, y) is alive. Same contract as At.
func (g *Grid) Alive(x, y int) bool { return g.At(x, y) == Alive }

// CountAlive returns the number of alive cells.
func (g *Grid) CountAlive() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// CountAliveIn scans region r and counts alive cells. The region must lie
// entirely inside the grid.
func (g *Grid) CountAliveIn(r Rect) (int, error) {
	if r.W < 0 || r.H < 0 {
		return 0, fmt.Errorf("%w: region %+v in %dx%d", ErrOutOfRange, r, g.W, g.H)
	}
	if r.W == 0 || r.H == 0 {
		return 0, nil
	}
	if !g.InBounds(r.X, r.Y) || !g.InBounds(r.X+r.W-1, r.Y+r.H-1) {
		return 0, fmt.Errorf("%w: region %+v in %dx%d", ErrOutOfRange, r, g.W, g.H)
	}
	n := 0
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if g.data[g.Index(x, y)] == Alive {
				n++
			}
		}
	}
	return n, nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]CellState, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Cells exposes the backing slice in row-major order. Writers own the grid.
func (g *Grid) Cells() []CellState { return g.data }
