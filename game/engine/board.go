package engine

import "errors"

var ErrInvalidDirection = errors.New("invalid direction")

// lineCell maps the k-th cell of the i-th line, read in motion order, onto
// grid coordinates. For left/right the lines are rows, for up/down columns;
// k=0 is the edge the tiles slide toward.
func lineCell(dir Direction, size, line, k int) (row, col int) {
	switch dir {
	case Left:
		return line, k
	case Right:
		return line, size - 1 - k
	case Up:
		return k, line
	case Down:
		return size - 1 - k, line
	}
	return 0, 0
}

// compressLine packs non-zero values toward the front, preserving order
func compressLine(line []int) []int {
	out := make([]int, len(line))
	i := 0
	for _, v := range line {
		if v != 0 {
			out[i] = v
			i++
		}
	}
	return out
}

// mergeLine compresses a line, merges adjacent equal pairs once each, and
// re-compresses. Returns the resulting line and the score gained. A merged
// tile never merges again in the same pass: [2,2,2,2] becomes [4,4,0,0].
func mergeLine(line []int) ([]int, int) {
	gained := 0
	out := compressLine(line)
	for i := 0; i < len(out)-1; i++ {
		if out[i] != 0 && out[i] == out[i+1] {
			out[i] *= 2
			out[i+1] = 0
			gained += out[i]
		}
	}
	return compressLine(out), gained
}

// ShiftGrid slides all tiles in the given direction, mutating the grid in
// place. It reports whether any cell changed and the score gained from
// merges. Merging conserves value: sum(after) == sum(before), and gained
// is the total of the merged tiles created by the move.
func ShiftGrid(grid Grid, dir Direction) (changed bool, gained int, err error) {
	if _, err := ParseDirection(string(dir)); err != nil {
		return false, 0, err
	}

	size := grid.Size()
	line := make([]int, size)

	for i := 0; i < size; i++ {
		for k := 0; k < size; k++ {
			r, c := lineCell(dir, size, i, k)
			line[k] = grid[r][c]
		}

		merged, g := mergeLine(line)
		gained += g

		for k := 0; k < size; k++ {
			r, c := lineCell(dir, size, i, k)
			if grid[r][c] != merged[k] {
				grid[r][c] = merged[k]
				changed = true
			}
		}
	}

	return changed, gained, nil
}

// ApplyMove shifts the grid in the given direction and returns the full
// move result, including whether any move remains on the resulting board.
// The grid is mutated in place; MoveResult.Grid aliases it.
func ApplyMove(grid Grid, dir Direction) (*MoveResult, error) {
	changed, gained, err := ShiftGrid(grid, dir)
	if err != nil {
		return nil, err
	}

	return &MoveResult{
		Grid:       grid,
		ScoreDelta: gained,
		Changed:    changed,
		NoMoves:    !HasMoves(grid),
	}, nil
}

// HasMoves reports whether any move can still change the board: an empty
// cell exists, or two equal tiles are horizontally or vertically adjacent.
// The grid is not mutated.
func HasMoves(grid Grid) bool {
	size := grid.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if grid[r][c] == 0 {
				return true
			}
			if c+1 < size && grid[r][c] == grid[r][c+1] {
				return true
			}
			if r+1 < size && grid[r][c] == grid[r+1][c] {
				return true
			}
		}
	}
	return false
}

// HasWon reports whether any cell has reached the target value
func HasWon(grid Grid, target int) bool {
	for _, row := range grid {
		for _, v := range row {
			if v >= target {
				return true
			}
		}
	}
	return false
}
