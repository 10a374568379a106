package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func TestWallCollisionEdges(t *testing.T) {
	board := testBoard() // 12x12
	cm := NewCollisionManager(board)

	inside := []types.Point{{X: 0, Y: 0}, {X: 11, Y: 11}, {X: 5, Y: 0}, {X: 0, Y: 5}}
	for _, p := range inside {
		if cm.IsWallCollision(p) {
			t.Errorf("%v wrongly classified as wall", p)
		}
	}

	outside := []types.Point{{X: -1, Y: 5}, {X: 12, Y: 5}, {X: 5, Y: -1}, {X: 5, Y: 12}}
	for _, p := range outside {
		if !cm.IsWallCollision(p) {
			t.Errorf("%v should be a wall collision", p)
		}
	}
}

func TestCheckMoveClassification(t *testing.T) {
	cm := NewCollisionManager(testBoard())
	snake := entity.NewSnake(types.Point{X: 6, Y: 6}, 3) // (6,6) (5,6) (4,6)

	cases := []struct {
		pos  types.Point
		want CollisionType
	}{
		{types.Point{X: 7, Y: 6}, NoCollision},
		{types.Point{X: 6, Y: 5}, NoCollision},
		{types.Point{X: 5, Y: 6}, SelfCollision},
		{types.Point{X: 4, Y: 6}, SelfCollision}, // tail cell counts
		{types.Point{X: -1, Y: 6}, WallCollision},
		{types.Point{X: 6, Y: 12}, WallCollision},
	}
	for _, tc := range cases {
		if got := cm.CheckMove(tc.pos, snake); got != tc.want {
			t.Errorf("CheckMove(%v) = %v, expected %v", tc.pos, got, tc.want)
		}
	}
}

func TestCheckMoveNilSnake(t *testing.T) {
	cm := NewCollisionManager(testBoard())
	if got := cm.CheckMove(types.Point{X: 5, Y: 5}, nil); got != NoCollision {
		t.Errorf("expected NoCollision with nil snake, got %v", got)
	}
}
