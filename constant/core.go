package constant

import "time"

// Game Loop Timing
const (
	// FPS is the scheduler tick rate; each tick waits at most TickInterval for input
	FPS = 60

	// TickInterval is the per-tick input poll budget (1000/FPS ms)
	TickInterval = time.Duration(1000/FPS) * time.Millisecond

	// FrameSkips is the number of ticks skipped between simulation steps
	// Simulation advances once every FrameSkips+1 ticks (~100ms at 60 FPS)
	FrameSkips = 5
)

// Grid limits
const (
	// MinGridWidth fits the initial three-segment snake
	MinGridWidth = 3

	// MinGridHeight leaves one row for food placement
	MinGridHeight = 2
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
