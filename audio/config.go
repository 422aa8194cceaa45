package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/word-mole/core"
)

// LoadAudioConfig returns the default configuration with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// FromSettings builds a configuration from file settings, volumes is keyed by effect name.
// Unknown names are ignored and WORDMOLE_* audio variables still apply on top
func FromSettings(enabled bool, masterVolume float64, sampleRate int, volumes map[string]float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = ClampVolume(masterVolume)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	for name, v := range volumes {
		if st, ok := core.SoundTypeByName(name); ok {
			cfg.EffectVolumes[st] = ClampVolume(v)
		}
	}
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from WORDMOLE_AUDIO_ENABLED, WORDMOLE_MASTER_VOLUME (0-100),
// WORDMOLE_SFX_VOLUMES (JSON object keyed by effect name) and WORDMOLE_SAMPLE_RATE
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv("WORDMOLE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("WORDMOLE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = ClampVolume(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("WORDMOLE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := core.SoundTypeByName(name); ok {
					cfg.EffectVolumes[st] = ClampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("WORDMOLE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// ClampVolume limits v to [0, 1]
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
