package game

import "time"

// Canvas receives draw commands for one frame
type Canvas interface {
	// Clear blanks the whole frame
	Clear()

	// Put places r at column x, row y (0-indexed)
	Put(x, y int, r rune)

	// Flush emits queued commands to the terminal
	Flush() error
}

// Surface is the terminal the game renders into and reads keys from
type Surface interface {
	Canvas

	// Init enters raw mode and the alternate screen, disables line wrap and hides the cursor
	Init() error

	// Fini restores the terminal. Safe to call multiple times
	Fini()

	// Size returns terminal dimensions in cells
	Size() (width, height int, err error)

	// PollKey waits up to timeout for a key press
	// ok is false when the wait expired or a non-key event arrived
	PollKey(timeout time.Duration) (r rune, ok bool, err error)
}
