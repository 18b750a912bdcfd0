package game

import (
	"log"

	"github.com/lixenwraith/vi-snake/constant"
)

// State is the whole game for one run
// The loop owns it; Update is the only mutator, Render only reads
type State struct {
	quit bool

	snake  *Snake
	width  int
	height int

	// Sticky latch: holds the last key until another key replaces it
	lastKey rune
	hasKey  bool

	food Point
	rng  Rand

	steps uint64
	eaten uint64

	// OnEat fires after food is consumed, with the cell that was eaten
	OnEat func(Point)
}

// NewState builds the initial snake and places the first food
func NewState(width, height int, rng Rand) *State {
	s := &State{
		snake:  NewSnake(Point{X: constant.InitialOriginX, Y: constant.InitialOriginY}),
		width:  width,
		height: height,
		rng:    rng,
	}
	s.food = placeFoodAvoiding(s.rng, s.width, s.height, s.snake)
	return s
}

// Observe latches a key press
func (s *State) Observe(r rune) {
	s.lastKey = r
	s.hasKey = true
}

// LastKey returns the latched key, if any was pressed yet
func (s *State) LastKey() (rune, bool) {
	return s.lastKey, s.hasKey
}

func (s *State) RequestQuit() {
	s.quit = true
}

func (s *State) ShouldQuit() bool {
	return s.quit
}

func (s *State) Snake() *Snake {
	return s.snake
}

func (s *State) Food() Point {
	return s.food
}

// Size returns grid width and height
func (s *State) Size() (int, int) {
	return s.width, s.height
}

// Steps returns the number of simulation steps applied
func (s *State) Steps() uint64 {
	return s.steps
}

// Eaten returns the number of food items consumed
func (s *State) Eaten() uint64 {
	return s.eaten
}

// Update applies one simulation step
// Food is checked against the head before it moves, so growth lands one step
// after the head enters the food cell
func (s *State) Update() {
	s.resolveDirection()

	head := s.snake.Head()
	grow := head == s.food
	if grow {
		s.eaten++
		s.food = placeFoodAvoiding(s.rng, s.width, s.height, s.snake)
		log.Printf("snake: ate food at %v, length %d, next food %v", head, s.snake.Len()+1, s.food)
	}

	s.snake.advance(grow, s.width, s.height)
	s.steps++

	if grow && s.OnEat != nil {
		s.OnEat(head)
	}
}

// resolveDirection applies the latched key without clearing it
func (s *State) resolveDirection() {
	if !s.hasKey {
		return
	}
	d, ok := DirectionForKey(s.lastKey)
	if !ok {
		return
	}
	s.snake.Turn(d)
}
