package entity

import "snake-arcade/game/types"

// Snake is the player body, head first. While alive every segment is
// distinct and consecutive segments are Manhattan-adjacent; right
// after a reset only the initial straight line is guaranteed.
type Snake struct {
	Body []types.Point
}

// NewSnake builds a horizontal snake with the head at head and the
// body extending toward negative X.
func NewSnake(head types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: head.X - i, Y: head.Y}
	}
	return &Snake{Body: body}
}

// Head returns the leading segment.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is occupied by any segment, tail included.
func (s *Snake) Contains(p types.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance moves the snake by prepending newHead. When grow is false
// the tail is dropped, keeping the length unchanged.
func (s *Snake) Advance(newHead types.Point, grow bool) {
	if grow {
		s.Body = append([]types.Point{newHead}, s.Body...)
		return
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Segments returns a copy of the body for consumers outside the loop.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
