package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodManager places food on free cells of the current board.
type FoodManager struct {
	board types.Board
	rng   *rand.Rand
}

// NewFoodManager creates a food manager. A zero seed picks one from
// the wall clock; tests pass a fixed seed for reproducible placement.
func NewFoodManager(board types.Board, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		board: board,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// SetBoard swaps in a freshly computed board after a resize.
func (fm *FoodManager) SetBoard(board types.Board) {
	fm.board = board
}

// Spawn picks a cell not occupied by the snake using uniform rejection
// sampling. After FoodSpawnAttempts failures it gives up and returns
// (0,0) even if that cell is occupied: at that point the snake covers
// nearly the whole board and the run is effectively unwinnable, so
// the fallback is a last resort, not a correctness guarantee.
func (fm *FoodManager) Spawn(snake *entity.Snake) types.Point {
	if !fm.board.Sized() || snake == nil {
		return types.Point{}
	}

	for i := 0; i < types.FoodSpawnAttempts; i++ {
		p := types.Point{
			X: fm.rng.Intn(fm.board.Cols),
			Y: fm.rng.Intn(fm.board.Rows),
		}
		if !snake.Contains(p) {
			return p
		}
	}
	return types.Point{}
}
