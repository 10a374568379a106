package types

import "testing"

var allDirections = []Direction{Up, Right, Down, Left}

func TestOppositeIsInvolutive(t *testing.T) {
	for _, d := range allDirections {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v, expected %v", d, d.Opposite().Opposite(), d)
		}
		if d.Opposite() == d {
			t.Errorf("Opposite(%v) must differ from %v", d, d)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Opposite(%v) = %v, expected %v", d, got, want)
		}
	}
}

func TestVectorIsUnit(t *testing.T) {
	for _, d := range allDirections {
		v := d.Vector()
		if abs(v.X)+abs(v.Y) != 1 {
			t.Errorf("Vector(%v) = %v is not a unit step", d, v)
		}
	}
}

func TestVectorOppositeCancels(t *testing.T) {
	for _, d := range allDirections {
		v := d.Vector()
		o := d.Opposite().Vector()
		if v.X+o.X != 0 || v.Y+o.Y != 0 {
			t.Errorf("Vector(%v)+Vector(%v) = (%d,%d), expected origin", d, d.Opposite(), v.X+o.X, v.Y+o.Y)
		}
	}
}

func TestTurnsAreQuarterRotations(t *testing.T) {
	for _, d := range allDirections {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("TurnLeft then TurnRight of %v = %v", d, d.TurnLeft().TurnRight())
		}
		if d.TurnLeft().TurnLeft() != d.Opposite() {
			t.Errorf("two left turns of %v = %v, expected %v", d, d.TurnLeft().TurnLeft(), d.Opposite())
		}
		if d.TurnRight().TurnRight() != d.Opposite() {
			t.Errorf("two right turns of %v = %v, expected %v", d, d.TurnRight().TurnRight(), d.Opposite())
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
