package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionType classifies why a move is fatal.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

// CollisionManager checks moves against the board edges and the snake
// body.
type CollisionManager struct {
	board types.Board
}

func NewCollisionManager(board types.Board) *CollisionManager {
	return &CollisionManager{board: board}
}

// SetBoard swaps in a freshly computed board after a resize.
func (cm *CollisionManager) SetBoard(board types.Board) {
	cm.board = board
}

// IsWallCollision reports whether pos lies outside the grid.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.board.Contains(pos)
}

// CheckMove classifies a move of the snake's head into pos. The body
// is checked as it stands before the move, tail cell included: moving
// into the current tail position is fatal even though a non-growth
// move would vacate it on the same tick.
func (cm *CollisionManager) CheckMove(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if snake != nil && snake.Contains(pos) {
		return SelfCollision
	}
	return NoCollision
}
