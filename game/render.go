package game

import "github.com/lixenwraith/vi-snake/constant"

// Render draws food then every segment and flushes once
func Render(c Canvas, s *State) error {
	c.Clear()

	c.Put(s.food.X, s.food.Y, constant.FoodGlyph)
	for _, seg := range s.snake.segments {
		c.Put(seg.X, seg.Y, constant.SegmentGlyph)
	}

	return c.Flush()
}
