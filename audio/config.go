package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constant"
)

// Environment variables read by LoadConfig
const (
	EnvEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvVolume  = "VI_SNAKE_VOLUME"
)

// Config holds audio settings
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns compile-time audio defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:    constant.AudioDefaultEnabled,
		Volume:     constant.AudioDefaultVolume,
		SampleRate: constant.AudioSampleRate,
	}
}

// LoadConfig loads audio configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	return cfg
}
