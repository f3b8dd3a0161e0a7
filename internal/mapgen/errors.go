package mapgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a configuration value outside its range. It
	// is returned before any randomness is consumed.
	ErrInvalidConfig = errors.New("mapgen: invalid config")
	// ErrUnsatisfiable reports that no attempt reached the buildable
	// threshold within the attempt cap, or that the threshold exceeds the
	// grid area.
	ErrUnsatisfiable = errors.New("mapgen: generation unsatisfiable")
)

// UnsatisfiableError carries the details behind ErrUnsatisfiable.
type UnsatisfiableError struct {
	Attempts      int
	BestBuildable int
	MinBuildable  int
}

func (e *UnsatisfiableError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("%s: need %d buildable tiles, more than the grid holds", ErrUnsatisfiable, e.MinBuildable)
	}
	return fmt.Sprintf("%s: best %d of %d buildable tiles after %d attempts",
		ErrUnsatisfiable, e.BestBuildable, e.MinBuildable, e.Attempts)
}

func (e *UnsatisfiableError) Unwrap() error { return ErrUnsatisfiable }
