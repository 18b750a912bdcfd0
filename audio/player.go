package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constant"
)

// Player plays game sound cues through the system speaker
type Player struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; nothing is played until Initialize succeeds
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// A disabled config initializes nothing and is not an error
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("audio: speaker initialized at %d Hz", p.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// PlayChomp queues the food-eaten blip; no-op when audio is unavailable
func (p *Player) PlayChomp() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// Mixer is read on the speaker goroutine
	speaker.Lock()
	p.mixer.Add(CreateChompSound(p.cfg))
	speaker.Unlock()
}
