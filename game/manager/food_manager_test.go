package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func testBoard() types.Board {
	return types.ComputeBoard(10, 10, 1) // minimum 12x12 grid
}

func TestSpawnAvoidsSnake(t *testing.T) {
	board := testBoard()
	fm := NewFoodManager(board, 42)
	snake := entity.NewSnake(types.Point{X: 6, Y: 6}, 3)

	for i := 0; i < 500; i++ {
		p := fm.Spawn(snake)
		if !board.Contains(p) {
			t.Fatalf("spawn %d: %v outside %dx%d", i, p, board.Cols, board.Rows)
		}
		if snake.Contains(p) {
			t.Fatalf("spawn %d: %v on snake", i, p)
		}
	}
}

func TestSpawnFallbackOnFullBoard(t *testing.T) {
	board := testBoard()
	fm := NewFoodManager(board, 42)

	// Snake occupying every cell: every attempt collides and the
	// documented (0,0) fallback kicks in even though it is occupied.
	body := make([]types.Point, 0, board.Cols*board.Rows)
	for y := 0; y < board.Rows; y++ {
		for x := 0; x < board.Cols; x++ {
			body = append(body, types.Point{X: x, Y: y})
		}
	}
	snake := &entity.Snake{Body: body}

	if p := fm.Spawn(snake); p != (types.Point{}) {
		t.Errorf("expected (0,0) fallback, got %v", p)
	}
}

func TestSpawnUnsizedBoardIsSafe(t *testing.T) {
	fm := NewFoodManager(types.Board{}, 42)
	snake := entity.NewSnake(types.Point{X: 1, Y: 1}, 1)
	if p := fm.Spawn(snake); p != (types.Point{}) {
		t.Errorf("expected zero point on unsized board, got %v", p)
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 6, Y: 6}, 3)
	a := NewFoodManager(testBoard(), 7)
	b := NewFoodManager(testBoard(), 7)
	for i := 0; i < 20; i++ {
		if pa, pb := a.Spawn(snake), b.Spawn(snake); pa != pb {
			t.Fatalf("spawn %d: %v != %v with identical seeds", i, pa, pb)
		}
	}
}
