package constants

import "time"

// Audio Defaults
const (
	DefaultMasterVolume = 0.5
	DefaultSampleRate   = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// SoundAttack is the common fade-in of every effect
	SoundAttack = 5 * time.Millisecond
)

// Effect Durations
const (
	HitSoundNoteDuration      = 60 * time.Millisecond
	MissSoundDuration         = 150 * time.Millisecond
	BonusSoundNoteDuration    = 70 * time.Millisecond
	TickSoundDuration         = 30 * time.Millisecond
	StartSoundDuration        = 400 * time.Millisecond
	GameOverSoundNoteDuration = 180 * time.Millisecond
)
