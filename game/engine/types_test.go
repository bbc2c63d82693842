package engine

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"up", "down", "left", "right"} {
		dir, err := ParseDirection(s)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", s, err)
		}
		if string(dir) != s {
			t.Errorf("ParseDirection(%q) = %q", s, dir)
		}
	}

	for _, s := range []string{"", "UP", "north", "leftish"} {
		if _, err := ParseDirection(s); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q): expected ErrInvalidDirection, got %v", s, err)
		}
	}
}

func TestGridClone(t *testing.T) {
	grid := Grid{{2, 0}, {0, 4}}
	clone := grid.Clone()

	clone[0][0] = 8
	if grid[0][0] != 2 {
		t.Error("Clone must not share backing storage with the original")
	}
	if !grid.Equal(Grid{{2, 0}, {0, 4}}) {
		t.Error("Original grid mutated by clone change")
	}
}

func TestGridSum(t *testing.T) {
	grid := Grid{{2, 0, 4}, {0, 8, 0}, {0, 0, 16}}
	if sum := grid.Sum(); sum != 30 {
		t.Errorf("Expected sum 30, got %d", sum)
	}
	if sum := NewGrid(4).Sum(); sum != 0 {
		t.Errorf("Expected empty grid sum 0, got %d", sum)
	}
}

func TestGridEqual(t *testing.T) {
	a := Grid{{2, 0}, {0, 4}}
	b := Grid{{2, 0}, {0, 4}}
	c := Grid{{2, 0}, {4, 0}}

	if !a.Equal(b) {
		t.Error("Identical grids must be equal")
	}
	if a.Equal(c) {
		t.Error("Different grids must not be equal")
	}
	if a.Equal(NewGrid(3)) {
		t.Error("Grids of different sizes must not be equal")
	}
}

func TestGridEmptyCells(t *testing.T) {
	grid := Grid{{2, 0}, {0, 4}}
	empty := grid.EmptyCells()
	if len(empty) != 2 {
		t.Fatalf("Expected 2 empty cells, got %d", len(empty))
	}
	if empty[0] != (Position{Row: 0, Col: 1}) || empty[1] != (Position{Row: 1, Col: 0}) {
		t.Errorf("Unexpected empty cell order: %v", empty)
	}
}

func TestGridMaxTile(t *testing.T) {
	if max := NewGrid(4).MaxTile(); max != 0 {
		t.Errorf("Expected max tile 0 on an empty grid, got %d", max)
	}

	grid := Grid{{2, 64}, {8, 4}}
	if max := grid.MaxTile(); max != 64 {
		t.Errorf("Expected max tile 64, got %d", max)
	}
}
