package terminal

import (
	"bufio"
	"fmt"
	"sync"
	"time"
)

// ANSI drives the terminal with raw escape sequences
// Drawing is queued in a buffered writer and reaches the terminal on Flush
type ANSI struct {
	backend Backend
	writer  *bufio.Writer
	input   *decoder

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates an ANSI surface on stdin/stdout
func New() *ANSI {
	return newANSI(newBackend())
}

func newANSI(b Backend) *ANSI {
	return &ANSI{
		backend: b,
		writer:  bufio.NewWriterSize(b, 32*1024),
		input:   newDecoder(),
	}
}

// Init enters raw mode, alternate screen, disables wrap and hides the cursor
func (t *ANSI) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	writeEnter(t.writer)
	if err := t.writer.Flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("enter alternate screen: %w", err)
	}

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *ANSI) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Drop undrawn frame content, restore modes, then leave raw mode
	t.writer.Reset(t.backend)
	writeLeave(t.writer)
	t.writer.Flush()

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions
func (t *ANSI) Size() (int, int, error) {
	return t.backend.Size()
}

// PollKey returns a buffered key, or waits up to timeout for new input
func (t *ANSI) PollKey(timeout time.Duration) (rune, bool, error) {
	if r, ok := t.input.next(); ok {
		return r, true, nil
	}

	data, err := t.backend.Read(timeout)
	if err != nil {
		return 0, false, err
	}
	if len(data) == 0 {
		t.input.idle()
		return 0, false, nil
	}

	t.input.feed(data)
	r, ok := t.input.next()
	return r, ok, nil
}

// Clear queues a full-screen clear
func (t *ANSI) Clear() {
	t.writer.Write(csiClear)
}

// Put queues r at column x, row y (0-indexed)
func (t *ANSI) Put(x, y int, r rune) {
	writeCursorPos(t.writer, x, y)
	t.writer.WriteRune(r)
}

// Flush writes queued commands to the terminal
func (t *ANSI) Flush() error {
	return t.writer.Flush()
}
