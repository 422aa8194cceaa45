package audio

import (
	"errors"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/core"
)

// AudioConfig holds audio configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns default audio configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundHit:      1.0,
			core.SoundMiss:     0.8,
			core.SoundBonus:    0.9,
			core.SoundTick:     0.4,
			core.SoundStart:    0.7,
			core.SoundGameOver: 0.7,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
