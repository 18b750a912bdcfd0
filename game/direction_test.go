package game

import "testing"

// TestDirectionOpposite verifies the opposite relation is symmetric and exclusive
func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}

	all := []Direction{Up, Down, Left, Right}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("Expected opposite of %v to be %v, got %v", d, want, got)
		}
		for _, other := range all {
			expected := other == want
			if d.IsOpposite(other) != expected {
				t.Errorf("Expected %v.IsOpposite(%v) = %v", d, other, expected)
			}
		}
	}
}

// TestDirectionDelta verifies unit displacement per heading
func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Expected delta (%d,%d), got (%d,%d)", tt.dx, tt.dy, dx, dy)
			}
		})
	}
}

// TestDirectionForKey verifies wasd mapping and rejection of other keys
func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key  rune
		dir  Direction
		isOK bool
	}{
		{'w', Up, true},
		{'a', Left, true},
		{'s', Down, true},
		{'d', Right, true},
		{'W', 0, false},
		{'x', 0, false},
		{' ', 0, false},
		{'q', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			dir, ok := DirectionForKey(tt.key)
			if ok != tt.isOK {
				t.Fatalf("Expected ok=%v for %q, got %v", tt.isOK, tt.key, ok)
			}
			if ok && dir != tt.dir {
				t.Errorf("Expected %v for %q, got %v", tt.dir, tt.key, dir)
			}
		})
	}
}

// TestPointStepWraps verifies movement wraps at every grid edge
func TestPointStepWraps(t *testing.T) {
	tests := []struct {
		name string
		from Point
		dir  Direction
		want Point
	}{
		{"right interior", Point{2, 0}, Right, Point{3, 0}},
		{"up interior", Point{4, 4}, Up, Point{4, 3}},
		{"right edge", Point{9, 3}, Right, Point{0, 3}},
		{"left edge", Point{0, 3}, Left, Point{9, 3}},
		{"top edge", Point{5, 0}, Up, Point{5, 7}},
		{"bottom edge", Point{5, 7}, Down, Point{5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Step(tt.dir, 10, 8)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
