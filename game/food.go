package game

import (
	"github.com/lixenwraith/vi-snake/constant"
	"golang.org/x/exp/rand"
)

// Rand is the randomness used for food placement
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded PCG-backed source
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// PlaceFood picks a cell uniformly with X in [0, width-1) and Y in [0, height-1)
// The last column and row are never chosen
func PlaceFood(rng Rand, width, height int) Point {
	return Point{
		X: intn(rng, width-1),
		Y: intn(rng, height-1),
	}
}

// placeFoodAvoiding retries PlaceFood while the draw lands on the snake
// Falls back to the final draw once attempts run out, so a full grid still terminates
func placeFoodAvoiding(rng Rand, width, height int, snake *Snake) Point {
	p := PlaceFood(rng, width, height)
	for attempt := 1; attempt < constant.FoodPlacementAttempts && snake.Occupies(p); attempt++ {
		p = PlaceFood(rng, width, height)
	}
	return p
}

// intn collapses empty ranges to zero instead of panicking
func intn(rng Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return rng.Intn(n)
}
