package game

import "fmt"

// Point is a grid cell, X is the column and Y the row
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step displaces p one cell along d, wrapping around a width x height grid
func (p Point) Step(d Direction, width, height int) Point {
	dx, dy := d.Delta()
	return Point{
		X: wrap(p.X+dx, width),
		Y: wrap(p.Y+dy, height),
	}
}

// wrap folds v into [0, n); n <= 0 leaves v untouched
func wrap(v, n int) int {
	if n <= 0 {
		return v
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
