package game

import "github.com/lixenwraith/vi-snake/constant"

// Direction is the snake heading
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether other points the reverse way of d
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Delta returns the unit displacement; rows grow downward
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// DirectionForKey maps a movement key to its heading
func DirectionForKey(r rune) (Direction, bool) {
	switch r {
	case constant.KeyUp:
		return Up, true
	case constant.KeyDown:
		return Down, true
	case constant.KeyLeft:
		return Left, true
	case constant.KeyRight:
		return Right, true
	}
	return 0, false
}
