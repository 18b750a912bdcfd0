package game

import "testing"

// scriptedRand returns queued values modulo n, then zeros
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// TestPlaceFoodRange verifies placement never touches the last row or column
func TestPlaceFoodRange(t *testing.T) {
	rng := NewRand(42)
	sizes := [][2]int{{10, 10}, {80, 24}, {3, 2}, {200, 60}}

	for _, size := range sizes {
		w, h := size[0], size[1]
		for i := 0; i < 2000; i++ {
			p := PlaceFood(rng, w, h)
			if p.X < 0 || p.X >= w-1 {
				t.Fatalf("Food X %d out of [0,%d) on %dx%d", p.X, w-1, w, h)
			}
			if p.Y < 0 || p.Y >= h-1 {
				t.Fatalf("Food Y %d out of [0,%d) on %dx%d", p.Y, h-1, w, h)
			}
		}
	}
}

// TestPlaceFoodDegenerate verifies one-wide ranges collapse to zero without panicking
func TestPlaceFoodDegenerate(t *testing.T) {
	rng := &scriptedRand{values: []int{7, 7}}

	if p := PlaceFood(rng, 1, 1); p != (Point{}) {
		t.Errorf("Expected (0,0) on 1x1 grid, got %v", p)
	}
	if p := PlaceFood(rng, 0, 0); p != (Point{}) {
		t.Errorf("Expected (0,0) on empty grid, got %v", p)
	}
	if rng.calls != 0 {
		t.Errorf("Expected no draws for empty ranges, got %d", rng.calls)
	}
}

// TestPlaceFoodAvoidingSnake verifies occupied draws are rejected
func TestPlaceFoodAvoidingSnake(t *testing.T) {
	snake := NewSnake(Point{})
	// First draw hits (1,0), second is free
	rng := &scriptedRand{values: []int{1, 0, 4, 5}}

	p := placeFoodAvoiding(rng, 10, 10, snake)
	if p != (Point{4, 5}) {
		t.Errorf("Expected (4,5) after rejecting occupied cell, got %v", p)
	}
}

// TestPlaceFoodAvoidingFallback verifies placement terminates when every draw is occupied
func TestPlaceFoodAvoidingFallback(t *testing.T) {
	snake := NewSnake(Point{})
	rng := &scriptedRand{}

	p := placeFoodAvoiding(rng, 10, 10, snake)
	if p != (Point{}) {
		t.Errorf("Expected fallback to last draw (0,0), got %v", p)
	}
	if rng.calls == 0 {
		t.Error("Expected draws to be made")
	}
}

// TestNewRandDeterministic verifies equal seeds give equal sequences
func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 100; i++ {
		if PlaceFood(a, 50, 50) != PlaceFood(b, 50, 50) {
			t.Fatalf("Expected identical placement at draw %d", i)
		}
	}
}
