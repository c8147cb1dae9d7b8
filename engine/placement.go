package engine

import (
	"golang.org/x/exp/rand"
)

// fruitPlacer samples free cells uniformly for new fruit
type fruitPlacer struct {
	rng      *rand.Rand
	attempts int
}

// place rejects samples landing on the snake; once the attempt budget is spent
// it scans for free cells and picks one, keeping the last sample only when the
// board has no free cell at all
func (fp *fruitPlacer) place(g Grid, s *Snake) Point {
	var p Point
	for i := 0; i < fp.attempts; i++ {
		p = Point{X: fp.rng.Intn(g.Width), Y: fp.rng.Intn(g.Height)}
		if !s.Contains(p) {
			return p
		}
	}

	free := make([]Point, 0, max(g.Cells()-s.Len(), 0))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Point{X: x, Y: y}
			if !s.Contains(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return p
	}
	return free[fp.rng.Intn(len(free))]
}
