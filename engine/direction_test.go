package engine

import "testing"

func TestDirectionGeometry(t *testing.T) {
	tests := []struct {
		dir      Direction
		dx, dy   int
		opposite Direction
		name     string
	}{
		{DirUp, 0, -1, DirDown, "Up"},
		{DirDown, 0, 1, DirUp, "Down"},
		{DirLeft, -1, 0, DirRight, "Left"},
		{DirRight, 1, 0, DirLeft, "Right"},
	}

	for _, tt := range tests {
		dx, dy := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("%s: expected delta (%d,%d), got (%d,%d)", tt.name, tt.dx, tt.dy, dx, dy)
		}
		if tt.dir.Opposite() != tt.opposite {
			t.Errorf("%s: expected opposite %v, got %v", tt.name, tt.opposite, tt.dir.Opposite())
		}
		if tt.dir.String() != tt.name {
			t.Errorf("Expected name %s, got %s", tt.name, tt.dir.String())
		}
		if !tt.dir.Valid() {
			t.Errorf("%s: expected valid", tt.name)
		}
	}

	if Direction(9).Valid() {
		t.Error("Expected out-of-range direction to be invalid")
	}
	if got := (Point{3, 3}).Step(DirUp); got != (Point{3, 2}) {
		t.Errorf("Expected step up to (3,2), got %v", got)
	}
}
