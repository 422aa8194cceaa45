package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func effectVolume(cfg *AudioConfig, st core.SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateHitSound is a bright rising two-note chirp
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HitSoundNoteDuration

	seq := beep.Seq(
		tone(659.25, d, constants.SoundAttack, d/2, WaveSine, rate), // E5
		tone(987.77, d, constants.SoundAttack, d/2, WaveSine, rate), // B5
	)
	return newVolume(seq, effectVolume(cfg, core.SoundHit))
}

// CreateMissSound is a short low saw buzz
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.MissSoundDuration
	return newVolume(tone(110, d, constants.SoundAttack, d/4, WaveSaw, rate), effectVolume(cfg, core.SoundMiss))
}

// CreateBonusSound is a major arpeggio with an octave overtone on the last note
func CreateBonusSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BonusSoundNoteDuration

	last := beep.Mix(
		newVolume(tone(1046.5, 2*d, constants.SoundAttack, 2*d, WaveSine, rate), 0.7), // C6
		newVolume(tone(2093.0, 2*d, constants.SoundAttack, d, WaveSine, rate), 0.3),   // C7
	)
	seq := beep.Seq(
		tone(523.25, d, constants.SoundAttack, d/2, WaveSquare, rate), // C5
		tone(659.25, d, constants.SoundAttack, d/2, WaveSquare, rate), // E5
		tone(783.99, d, constants.SoundAttack, d/2, WaveSquare, rate), // G5
		beep.Take(rate.N(2*d), last),
	)
	return newVolume(seq, effectVolume(cfg, core.SoundBonus))
}

// CreateTickSound is a short click
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.TickSoundDuration
	return newVolume(tone(1200, d, 0, d, WaveSquare, rate), effectVolume(cfg, core.SoundTick))
}

// CreateStartSound is a held high note
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.StartSoundDuration
	return newVolume(tone(880, d, constants.SoundAttack, d/2, WaveSine, rate), effectVolume(cfg, core.SoundStart))
}

// CreateGameOverSound is a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.GameOverSoundNoteDuration

	seq := beep.Seq(
		tone(783.99, d, constants.SoundAttack, d/2, WaveSine, rate),   // G5
		tone(659.25, d, constants.SoundAttack, d/2, WaveSine, rate),   // E5
		tone(523.25, 2*d, constants.SoundAttack, 2*d, WaveSine, rate), // C5
	)
	return newVolume(seq, effectVolume(cfg, core.SoundGameOver))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundHit:
		return CreateHitSound(cfg)
	case core.SoundMiss:
		return CreateMissSound(cfg)
	case core.SoundBonus:
		return CreateBonusSound(cfg)
	case core.SoundTick:
		return CreateTickSound(cfg)
	case core.SoundStart:
		return CreateStartSound(cfg)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
