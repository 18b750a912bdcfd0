package terminal

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constant"
	"golang.org/x/term"
)

// ErrClosed is returned when the event stream ends underneath a poll
var ErrClosed = errors.New("terminal event stream closed")

// Tcell drives the terminal through a tcell.Screen
type Tcell struct {
	screen tcell.Screen
	style  tcell.Style

	// probe reports the size before the screen is initialized
	probe func() (int, int, error)

	events chan tcell.Event
	quit   chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell creates a tcell surface on the controlling terminal
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTcellScreen(screen, stdoutSize), nil
}

// NewTcellScreen wraps an existing screen; probe may be nil to ask the screen itself
func NewTcellScreen(screen tcell.Screen, probe func() (int, int, error)) *Tcell {
	return &Tcell{
		screen: screen,
		style:  tcell.StyleDefault,
		probe:  probe,
	}
}

// stdoutSize queries the window size through x/term
func stdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func (t *Tcell) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.screen.Clear()

	t.events = make(chan tcell.Event, 16)
	t.quit = make(chan struct{})
	go t.screen.ChannelEvents(t.events, t.quit)

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Tcell) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	close(t.quit)
	t.screen.Fini()
	t.finalized = true
}

// Size returns the probed size before Init and the screen size after
func (t *Tcell) Size() (int, int, error) {
	t.mu.Lock()
	initialized := t.initialized
	t.mu.Unlock()

	if !initialized && t.probe != nil {
		return t.probe()
	}
	w, h := t.screen.Size()
	return w, h, nil
}

// PollKey waits up to timeout for one event
// Non-key events end the wait without a key, matching a poll that returned data
func (t *Tcell) PollKey(timeout time.Duration) (rune, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return 0, false, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			r, ok := keyRune(ev)
			return r, ok, nil
		case *tcell.EventError:
			return 0, false, ev
		}
		return 0, false, nil
	case <-timer.C:
		return 0, false, nil
	}
}

// keyRune maps a tcell key to the game's rune vocabulary
func keyRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyUp:
		return constant.KeyUp, true
	case tcell.KeyDown:
		return constant.KeyDown, true
	case tcell.KeyLeft:
		return constant.KeyLeft, true
	case tcell.KeyRight:
		return constant.KeyRight, true
	}
	return 0, false
}

func (t *Tcell) Clear() {
	t.screen.Clear()
}

func (t *Tcell) Put(x, y int, r rune) {
	t.screen.SetContent(x, y, r, nil, t.style)
}

// Flush shows the composed frame; tcell reports no draw errors
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}
