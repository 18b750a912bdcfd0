package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Audio Defaults
const (
	AudioDefaultEnabled = true
	AudioDefaultVolume  = 0.5
)

// Chomp sound played when food is eaten
const (
	ChompFrequency = 220.0
	ChompDuration  = 80 * time.Millisecond
	ChompAttack    = 5 * time.Millisecond
	ChompRelease   = 40 * time.Millisecond
)
