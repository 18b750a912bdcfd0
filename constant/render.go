package constant

// Glyphs
const (
	FoodGlyph    = 'x'
	SegmentGlyph = 'o'
)
