package engine

import (
	"testing"

	"golang.org/x/exp/rand"
)

// TestPlacementAvoidsSnake samples many placements across seeds
func TestPlacementAvoidsSnake(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		s, err := NewSession(Grid{Width: 10, Height: 5}, WithSeed(seed))
		if err != nil {
			t.Fatalf("NewSession failed: %v", err)
		}
		for _, p := range s.Body() {
			if p == s.Fruit() {
				t.Fatalf("seed %d: fruit on snake at %v", seed, p)
			}
		}
	}
}

// TestPlacementDeterministicWithSeed verifies equal seeds place equal fruit
func TestPlacementDeterministicWithSeed(t *testing.T) {
	a, _ := NewSession(Grid{Width: 30, Height: 20}, WithSeed(99))
	b, _ := NewSession(Grid{Width: 30, Height: 20}, WithSource(rand.NewSource(99)))
	if a.Fruit() != b.Fruit() {
		t.Errorf("Expected identical fruit for identical seeds, got %v and %v", a.Fruit(), b.Fruit())
	}
}

// TestPlacementScanFallback exhausts sampling so the free-cell scan must find the gap
func TestPlacementScanFallback(t *testing.T) {
	g := Grid{Width: 10, Height: 5}
	path := serpentine(g)
	snake := snakeFromPath(path[:49])

	fp := fruitPlacer{rng: rand.New(rand.NewSource(3)), attempts: 0}
	if got := fp.place(g, snake); got != path[49] {
		t.Errorf("Expected scan to find %v, got %v", path[49], got)
	}

	fp.attempts = 5
	for i := 0; i < 20; i++ {
		if got := fp.place(g, snake); got != path[49] {
			t.Fatalf("Expected %v on nearly full board, got %v", path[49], got)
		}
	}
}

// TestPlacementFullBoard keeps the last sample when nothing is free
func TestPlacementFullBoard(t *testing.T) {
	g := Grid{Width: 10, Height: 5}
	snake := snakeFromPath(serpentine(g))

	fp := fruitPlacer{rng: rand.New(rand.NewSource(5)), attempts: 3}
	got := fp.place(g, snake)
	if !g.Contains(got) {
		t.Errorf("Expected an in-bounds best effort sample, got %v", got)
	}
}
