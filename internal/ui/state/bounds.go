package state

import (
	"errors"
	"fmt"
)

// ErrDegenerateBounds reports a region without at least one column and row.
var ErrDegenerateBounds = errors.New("degenerate bounds")

// Position is a terminal cell coordinate.
type Position struct {
	X int
	Y int
}

// Dimension is a size in terminal cells.
type Dimension struct {
	W int
	H int
}

// Bounds is the rectangular region a component draws into.
type Bounds struct {
	Position
	Dimension
}

// NewBounds validates and returns a region. Zero or negative sizes are
// rejected here so wrap and viewport arithmetic never sees them.
func NewBounds(x, y, w, h int) (Bounds, error) {
	if w < 1 || h < 1 {
		return Bounds{}, fmt.Errorf("%w: %dx%d", ErrDegenerateBounds, w, h)
	}
	return Bounds{Position: Position{X: x, Y: y}, Dimension: Dimension{W: w, H: h}}, nil
}

// Valid reports whether the region has at least one cell.
func (b Bounds) Valid() bool {
	return b.W >= 1 && b.H >= 1
}

// Shrink returns the region with top rows removed from the top and bottom
// rows removed from the bottom.
func (b Bounds) Shrink(top, bottom int) (Bounds, error) {
	return NewBounds(b.X, b.Y+top, b.W, b.H-top-bottom)
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", b.W, b.H, b.X, b.Y)
}
