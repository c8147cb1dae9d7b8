package engine

import "iter"

// CellKind tags what occupies a frame cell
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellFruit
	CellWall
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellFruit:
		return "fruit"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Cell is one classified position of a frame; border cells sit at x or y of -1, Width or Height
type Cell struct {
	X, Y int
	Kind CellKind
}

// Frame is an immutable snapshot of the board and scoreboard taken between ticks
type Frame struct {
	Grid  Grid
	Stats Stats
	Over  bool
	Cause Cause

	head  Point
	fruit Point
	body  map[Point]struct{}
}

// Frame snapshots the current state for display. The snapshot does not alias
// session storage, so later ticks never show through a frame already taken.
func (s *Session) Frame() Frame {
	body := make(map[Point]struct{}, s.snake.Len())
	for _, p := range s.snake.body[:s.snake.Len()-1] {
		body[p] = struct{}{}
	}
	return Frame{
		Grid:  s.grid,
		Stats: s.Stats(),
		Over:  s.over,
		Cause: s.cause,
		head:  s.snake.Head(),
		fruit: s.fruit,
		body:  body,
	}
}

// At classifies a single position; anything outside the playable area is wall.
// Head wins over fruit, fruit over body.
func (f Frame) At(x, y int) CellKind {
	p := Point{X: x, Y: y}
	if !f.Grid.Contains(p) {
		return CellWall
	}
	switch {
	case p == f.head:
		return CellHead
	case p == f.fruit:
		return CellFruit
	}
	if _, ok := f.body[p]; ok {
		return CellBody
	}
	return CellEmpty
}

// Cells yields every cell of the bordered board in row-major order, from
// (-1,-1) to (Width,Height). Each call starts a fresh pass.
func (f Frame) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := -1; y <= f.Grid.Height; y++ {
			for x := -1; x <= f.Grid.Width; x++ {
				if !yield(Cell{X: x, Y: y, Kind: f.At(x, y)}) {
					return
				}
			}
		}
	}
}

// Rows yields each bordered row index with its cells, top border first
func (f Frame) Rows() iter.Seq2[int, iter.Seq[Cell]] {
	return func(yield func(int, iter.Seq[Cell]) bool) {
		for y := -1; y <= f.Grid.Height; y++ {
			row := func(yieldCell func(Cell) bool) {
				for x := -1; x <= f.Grid.Width; x++ {
					if !yieldCell(Cell{X: x, Y: y, Kind: f.At(x, y)}) {
						return
					}
				}
			}
			if !yield(y, row) {
				return
			}
		}
	}
}
