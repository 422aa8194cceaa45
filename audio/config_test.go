package audio

import (
	"testing"

	"github.com/lixenwraith/word-mole/core"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for st := core.SoundHit; st < core.SoundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("WORDMOLE_AUDIO_ENABLED", "")
	t.Setenv("WORDMOLE_MASTER_VOLUME", "")
	t.Setenv("WORDMOLE_SFX_VOLUMES", "")
	t.Setenv("WORDMOLE_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("WORDMOLE_AUDIO_ENABLED", "false")
	t.Setenv("WORDMOLE_MASTER_VOLUME", "80")
	t.Setenv("WORDMOLE_SFX_VOLUMES", `{"hit": 0.25, "tick": 3, "nope": 0.1}`)
	t.Setenv("WORDMOLE_SAMPLE_RATE", "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundHit] != 0.25 {
		t.Errorf("Expected hit volume 0.25, got %f", cfg.EffectVolumes[core.SoundHit])
	}
	if cfg.EffectVolumes[core.SoundTick] != 1 {
		t.Errorf("Expected tick volume clamped to 1, got %f", cfg.EffectVolumes[core.SoundTick])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigInvalidValues(t *testing.T) {
	t.Setenv("WORDMOLE_AUDIO_ENABLED", "maybe")
	t.Setenv("WORDMOLE_MASTER_VOLUME", "150")
	t.Setenv("WORDMOLE_SFX_VOLUMES", "not json")
	t.Setenv("WORDMOLE_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()

	if !cfg.Enabled {
		t.Error("Unparseable enabled flag should keep default")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected invalid sample rate ignored, got %d", cfg.SampleRate)
	}
}

func TestClampVolume(t *testing.T) {
	if ClampVolume(-0.5) != 0 || ClampVolume(1.5) != 1 || ClampVolume(0.3) != 0.3 {
		t.Error("ClampVolume out of bounds")
	}
}

func TestFromSettings(t *testing.T) {
	t.Setenv("WORDMOLE_AUDIO_ENABLED", "")
	t.Setenv("WORDMOLE_MASTER_VOLUME", "")
	t.Setenv("WORDMOLE_SFX_VOLUMES", "")
	t.Setenv("WORDMOLE_SAMPLE_RATE", "")

	cfg := FromSettings(false, 1.7, 0, map[string]float64{"hit": 0.2, "whoosh": 0.9})

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != DefaultAudioConfig().SampleRate {
		t.Errorf("Expected default sample rate for zero setting, got %d", cfg.SampleRate)
	}
	if cfg.EffectVolumes[core.SoundHit] != 0.2 {
		t.Errorf("Expected hit volume 0.2, got %f", cfg.EffectVolumes[core.SoundHit])
	}
	if cfg.EffectVolumes[core.SoundMiss] != DefaultAudioConfig().EffectVolumes[core.SoundMiss] {
		t.Error("Expected untouched effect volume to keep default")
	}
	if len(cfg.EffectVolumes) != int(core.SoundTypeCount) {
		t.Errorf("Expected %d effect volumes, got %d", core.SoundTypeCount, len(cfg.EffectVolumes))
	}
}

func TestFromSettingsEnvWins(t *testing.T) {
	t.Setenv("WORDMOLE_AUDIO_ENABLED", "true")
	t.Setenv("WORDMOLE_MASTER_VOLUME", "")
	t.Setenv("WORDMOLE_SFX_VOLUMES", `{"miss": 0.1}`)
	t.Setenv("WORDMOLE_SAMPLE_RATE", "")

	cfg := FromSettings(false, 0.5, 22050, map[string]float64{"miss": 0.6})
	if !cfg.Enabled {
		t.Error("Expected environment to enable audio")
	}
	if cfg.EffectVolumes[core.SoundMiss] != 0.1 {
		t.Errorf("Expected environment miss volume 0.1, got %f", cfg.EffectVolumes[core.SoundMiss])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}
