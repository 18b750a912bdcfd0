package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
	backendFlag = flag.String("backend", "ansi", "Terminal backend: ansi, tcell")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// run wires the surface and audio, then blocks until the game ends
// Terminal restoration has completed by the time it returns
func run() error {
	surface, err := newSurface(*backendFlag)
	if err != nil {
		return err
	}

	player := audio.NewPlayer(audio.LoadConfig())
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer player.Cleanup()

	// SIGTERM/SIGHUP stop at the next tick like the quit key
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	cfg := game.DefaultConfig()
	cfg.OnEat = func(game.Point) { player.PlayChomp() }

	return game.Run(ctx, surface, cfg)
}

func newSurface(name string) (game.Surface, error) {
	switch name {
	case "ansi":
		return terminal.New(), nil
	case "tcell":
		s, err := terminal.NewTcell()
		if err != nil {
			return nil, fmt.Errorf("create tcell screen: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}
