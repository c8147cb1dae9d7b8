package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
)

// Point is a cell coordinate on the board, origin top-left
type Point struct {
	X, Y int
}

// Step returns the neighbouring point one cell away in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid holds the board dimensions, fixed for the lifetime of a session
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the board used when no valid override is supplied
func DefaultGrid() Grid {
	return Grid{Width: constants.DefaultWidth, Height: constants.DefaultHeight}
}

// Contains reports whether p lies inside [0,Width)×[0,Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of playable cells
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Validate checks the minimum dimensions and the cell cap
func (g Grid) Validate() error {
	if g.Width < constants.MinWidth || g.Height < constants.MinHeight {
		return fmt.Errorf("%w: %dx%d below minimum %dx%d",
			ErrInvalidGrid, g.Width, g.Height, constants.MinWidth, constants.MinHeight)
	}
	if g.Cells() > constants.MaxGridCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells",
			ErrInvalidGrid, g.Width, g.Height, constants.MaxGridCells)
	}
	return nil
}
