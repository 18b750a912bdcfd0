package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/constant"
)

// ErrGridTooSmall is returned when the terminal cannot fit the initial snake
var ErrGridTooSmall = errors.New("terminal too small")

// Config controls loop timing and the collaborators handed to the state
type Config struct {
	// TickInterval bounds the input wait of a single tick
	TickInterval time.Duration

	// FrameSkips is the number of ticks skipped between simulation steps
	FrameSkips int

	// Rand drives food placement
	Rand Rand

	// OnEat is forwarded to the state, nil for none
	OnEat func(Point)
}

// DefaultConfig returns compile-time timing and a time-seeded source
func DefaultConfig() Config {
	return Config{
		TickInterval: constant.TickInterval,
		FrameSkips:   constant.FrameSkips,
		Rand:         NewRand(uint64(time.Now().UnixNano())),
	}
}

// Loop drives the state at a fixed tick rate
type Loop struct {
	surface Surface
	state   *State

	tickInterval time.Duration
	frameSkips   int
	frame        int
}

// NewLoop wires a loop to an already initialized surface
func NewLoop(surface Surface, state *State, cfg Config) *Loop {
	return &Loop{
		surface:      surface,
		state:        state,
		tickInterval: cfg.TickInterval,
		frameSkips:   cfg.FrameSkips,
	}
}

// Run acquires the surface, plays until quit and restores the surface on every exit path
// Size and Init failures abort before any game state exists
func Run(ctx context.Context, surface Surface, cfg Config) error {
	width, height, err := surface.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	if width < constant.MinGridWidth || height < constant.MinGridHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, width, height, constant.MinGridWidth, constant.MinGridHeight)
	}

	if err := surface.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer surface.Fini()

	if cfg.Rand == nil {
		cfg.Rand = NewRand(uint64(time.Now().UnixNano()))
	}
	state := NewState(width, height, cfg.Rand)
	state.OnEat = cfg.OnEat
	log.Printf("game: started on %dx%d grid, food at %v", width, height, state.Food())

	err = NewLoop(surface, state, cfg).Run(ctx)
	log.Printf("game: stopped after %d steps, %d eaten, length %d",
		state.Steps(), state.Eaten(), state.Snake().Len())
	return err
}

// Run ticks until the quit key, context cancellation or an I/O error
// Cancellation is observed at tick boundaries and is not an error
func (l *Loop) Run(ctx context.Context) error {
	for !l.state.ShouldQuit() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := l.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Tick performs one scheduler iteration
// Every frameSkips+1 ticks it renders the current state, then updates it
func (l *Loop) Tick() error {
	r, ok, err := l.surface.PollKey(l.tickInterval)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if ok {
		if r == constant.KeyQuit {
			l.state.RequestQuit()
			return nil
		}
		l.state.Observe(r)
	}

	if l.frame != l.frameSkips {
		l.frame++
		return nil
	}

	if err := Render(l.surface, l.state); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	l.state.Update()
	l.frame = 0
	return nil
}

// State exposes the loop's game state
func (l *Loop) State() *State {
	return l.state
}
