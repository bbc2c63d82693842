package engine

import (
	"errors"
	"math/rand"
)

var ErrNoSpace = errors.New("no empty cell to spawn a tile")

// SpawnTile places a new tile on a uniformly chosen empty cell, mutating
// the grid in place. The tile is a 4 with probability fourProb and a 2
// otherwise. Returns ErrNoSpace when the board is full; callers should
// treat that as the cue to evaluate game over rather than retry.
//
// Randomness is injected so games can be replayed under a fixed seed.
func SpawnTile(grid Grid, rng *rand.Rand, fourProb float64) (*Spawn, error) {
	empty := grid.EmptyCells()
	if len(empty) == 0 {
		return nil, ErrNoSpace
	}

	pos := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}
	grid[pos.Row][pos.Col] = value

	return &Spawn{Pos: pos, Value: value}, nil
}
