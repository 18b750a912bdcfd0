package constant

// Key bindings
const (
	KeyQuit  = 'q'
	KeyUp    = 'w'
	KeyLeft  = 'a'
	KeyDown  = 's'
	KeyRight = 'd'
)

// Initial snake layout: InitialLength segments laid out rightward from origin, head last
const (
	InitialLength  = 3
	InitialOriginX = 0
	InitialOriginY = 0
)

// FoodPlacementAttempts bounds rejection sampling against occupied cells
// The last draw is used when every attempt lands on the snake
const FoodPlacementAttempts = 32
