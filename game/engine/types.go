package engine

import "fmt"

// Direction represents one of the four sliding moves
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"

	// Validation constants
	MinGridSize       = 2
	MaxGridSize       = 12
	MinWinValue       = 8
	DefaultGridSize   = 4
	DefaultWinValue   = 2048
	DefaultStartTiles = 2

	// DefaultFourProbability is the chance a spawned tile is a 4 instead of a 2.
	DefaultFourProbability = 0.1
)

// Directions lists every valid direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// ParseDirection converts a string token into a Direction. Unknown tokens
// are rejected rather than coerced.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down, Left, Right:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Grid is a square board of tile values. 0 marks an empty cell; every
// non-empty cell holds a power of two >= 2. Indexed grid[row][col].
type Grid [][]int

// NewGrid creates an empty size x size grid
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]int, size)
	}
	return g
}

// Size returns the board dimension N for an NxN grid
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r, row := range g {
		c[r] = make([]int, len(row))
		copy(c[r], row)
	}
	return c
}

// Sum returns the total of all tile values on the board
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Equal reports whether two grids hold the same values position-wise
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r, row := range g {
		if len(row) != len(other[r]) {
			return false
		}
		for c, v := range row {
			if v != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order
func (g Grid) EmptyCells() []Position {
	var empty []Position
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// MaxTile returns the largest tile value on the board (0 for an empty board)
func (g Grid) MaxTile() int {
	max := 0
	for _, row := range g {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Position represents row,col coordinates on the grid
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveResult is what a single move produced: whether any cell changed, the
// score gained from merges, and whether any further move remains afterwards.
type MoveResult struct {
	Grid       Grid `json:"grid"`
	ScoreDelta int  `json:"score_delta"`
	Changed    bool `json:"changed"`
	NoMoves    bool `json:"no_moves"`
}

// Spawn describes a tile placed by SpawnTile
type Spawn struct {
	Pos   Position `json:"pos"`
	Value int      `json:"value"`
}

// Status represents the game-level state machine
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	GridSize        int     `json:"grid_size"`
	WinValue        int     `json:"win_value"`
	StartTiles      int     `json:"start_tiles"`
	FourProbability float64 `json:"four_probability"`

	// Seed pins the spawn RNG for reproducible games. 0 means seed from
	// system entropy at engine creation.
	Seed int64 `json:"seed,omitempty"`
}

// GameState represents the complete game state
type GameState struct {
	Grid        Grid               `json:"grid"`
	Score       int                `json:"score"`
	Status      Status             `json:"status"`
	ConfigName  string             `json:"config_name"`
	LastSpawn   *Spawn             `json:"last_spawn,omitempty"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves mirrors MoveHistory entries since the last reset.
	// MoveHistory itself is cumulative across resets.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	Direction  Direction `json:"direction"`
	ScoreDelta int       `json:"score_delta"`
	Changed    bool      `json:"changed"`
	Spawn      *Spawn    `json:"spawn,omitempty"`
	Score      int       `json:"score"`
	Timestamp  int64     `json:"timestamp"`
	MoveNumber int       `json:"move_number"`
}
