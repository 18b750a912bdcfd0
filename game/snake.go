package game

import "github.com/lixenwraith/vi-snake/constant"

// Snake is an ordered run of segments, tail first and head last
// Length never drops below one: the only constructors seed at least one
// segment and advance appends one segment for every segment it removes
type Snake struct {
	segments  []Point
	direction Direction
}

// NewSnake lays out the initial horizontal snake from origin, facing Right
func NewSnake(origin Point) *Snake {
	segments := make([]Point, 0, constant.InitialLength*4)
	for i := 0; i < constant.InitialLength; i++ {
		segments = append(segments, Point{X: origin.X + i, Y: origin.Y})
	}
	return &Snake{
		segments:  segments,
		direction: Right,
	}
}

// newSnakeFrom builds a snake from explicit segments; an empty slice degrades to origin
func newSnakeFrom(segments []Point, direction Direction) *Snake {
	if len(segments) == 0 {
		segments = []Point{{}}
	}
	s := &Snake{
		segments:  make([]Point, len(segments)),
		direction: direction,
	}
	copy(s.segments, segments)
	return s
}

// Head returns the newest segment
func (s *Snake) Head() Point {
	return s.segments[len(s.segments)-1]
}

// Tail returns the oldest segment
func (s *Snake) Tail() Point {
	return s.segments[0]
}

func (s *Snake) Len() int {
	return len(s.segments)
}

func (s *Snake) Direction() Direction {
	return s.direction
}

// Segments returns a copy of the body, tail first
func (s *Snake) Segments() []Point {
	out := make([]Point, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Turn sets the heading unless d reverses the current one
func (s *Snake) Turn(d Direction) bool {
	if s.direction.IsOpposite(d) {
		return false
	}
	s.direction = d
	return true
}

// advance moves one cell along the heading; grow keeps the tail
func (s *Snake) advance(grow bool, width, height int) {
	next := s.Head().Step(s.direction, width, height)
	if !grow {
		// Shift toward the tail; the freed head slot takes the new cell
		copy(s.segments, s.segments[1:])
		s.segments[len(s.segments)-1] = next
		return
	}
	s.segments = append(s.segments, next)
}
