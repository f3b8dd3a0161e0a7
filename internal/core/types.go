package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Position addresses a tile on a surface. Surface coordinates may be
// negative since committed maps are centred on the origin.
type Position struct {
	X int
	Y int
}

// Rect is a half-open region [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CellState is the occupancy of a single grid cell.
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
