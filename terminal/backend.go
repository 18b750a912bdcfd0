package terminal

import (
	"errors"
	"io"
	"time"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	io.Writer

	// Init enters raw input mode
	Init() error

	// Fini restores the previous input mode
	Fini()

	// Size returns terminal dimensions in cells
	Size() (width, height int, err error)

	// Read waits up to timeout for input and returns what is available
	// A nil slice with nil error means the wait expired
	Read(timeout time.Duration) ([]byte, error)
}
