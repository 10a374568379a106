package types

import "time"

// Game constants
const (
	// MinCols and MinRows are the smallest grid the board sizing will
	// produce, no matter how tiny the viewport is.
	MinCols = 12
	MinRows = 12

	// Cell size bounds in pixels. The target size is the smaller
	// viewport axis divided by CellDivisor, clamped to this range.
	MinCellSize = 14
	MaxCellSize = 26
	CellDivisor = 28

	// InitialSnakeLength is the number of segments a fresh snake has.
	InitialSnakeLength = 3

	// FoodSpawnAttempts bounds the rejection sampling in food placement.
	FoodSpawnAttempts = 500

	// DefaultTickInterval is the simulation step period.
	DefaultTickInterval = 115 * time.Millisecond
)

// Point is an integer grid coordinate. Equality is component-wise.
type Point struct {
	X, Y int
}

// Add returns the point shifted by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Vector converts a Direction to a unit displacement. Up decrements Y
// (screen coordinates).
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	case Left:
		return Down
	default:
		return d
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}
