// Package config loads game settings from a YAML file, a .env file and WORDMOLE_* variables
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/mole"
	"github.com/lixenwraith/word-mole/round"
	"github.com/lixenwraith/word-mole/score"
	"github.com/lixenwraith/word-mole/spawn"
	"github.com/lixenwraith/word-mole/wordbank"
)

// ErrInvalid is returned when settings break a timing or range constraint
var ErrInvalid = errors.New("invalid configuration")

// Config is the file representation of every tunable
type Config struct {
	Category     string  `yaml:"category"`
	WordsFile    string  `yaml:"words_file"`
	RoundSeconds int     `yaml:"round_seconds"`
	Holes        int     `yaml:"holes"`
	CorrectRatio float64 `yaml:"correct_ratio"`
	Seed         uint64  `yaml:"seed"`

	Timing  TimingConfig  `yaml:"timing"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Input   InputConfig   `yaml:"input"`
	Scoring ScoringConfig `yaml:"scoring"`
	Audio   AudioSection  `yaml:"audio"`
	Keys    KeysSection   `yaml:"keys"`
	Host    HostSection   `yaml:"host"`
}

// TimingConfig holds mole animation timings
type TimingConfig struct {
	Rise     time.Duration `yaml:"rise"`
	Fall     time.Duration `yaml:"fall"`
	HitDelay time.Duration `yaml:"hit_delay"`
	Dwell    time.Duration `yaml:"dwell"`
}

// SpawnConfig holds spawn cadence
type SpawnConfig struct {
	FirstDelay  time.Duration `yaml:"first_delay"`
	IntervalMin time.Duration `yaml:"interval_min"`
	IntervalMax time.Duration `yaml:"interval_max"`
}

// InputConfig holds input pipeline thresholds, proximities are in screen units
type InputConfig struct {
	Debounce         time.Duration `yaml:"debounce"`
	TouchProximity   float64       `yaml:"touch_proximity"`
	PointerProximity float64       `yaml:"pointer_proximity"`
}

// ScoringConfig holds point values
type ScoringConfig struct {
	CorrectPoints     int `yaml:"correct_points"`
	IncorrectPenalty  int `yaml:"incorrect_penalty"`
	StreakBonusEvery  int `yaml:"streak_bonus_every"`
	StreakBonusPoints int `yaml:"streak_bonus_points"`
}

// AudioSection holds audio settings, Volumes is keyed by effect name and unset effects keep their built-in level
type AudioSection struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"`
}

// KeysSection holds key binding overrides, values are action names
type KeysSection struct {
	Runes   map[string]string `yaml:"runes"`
	Special map[string]string `yaml:"special"`
}

// HostSection holds the HTTP bridge settings
type HostSection struct {
	Addr string `yaml:"addr"`
}

// Default returns the standard game settings
func Default() *Config {
	rules := score.DefaultRules()

	return &Config{
		Category:     constants.DefaultCategory,
		RoundSeconds: constants.RoundSeconds,
		Holes:        constants.HoleCount,
		CorrectRatio: constants.CorrectWordRatio,
		Timing: TimingConfig{
			Rise:     constants.RiseDuration,
			Fall:     constants.FallDuration,
			HitDelay: constants.HitDelay,
			Dwell:    constants.DwellWindow,
		},
		Spawn: SpawnConfig{
			FirstDelay:  constants.FirstSpawnDelay,
			IntervalMin: constants.SpawnIntervalMin,
			IntervalMax: constants.SpawnIntervalMax,
		},
		Input: InputConfig{
			Debounce:         constants.DebounceWindow,
			TouchProximity:   constants.TouchProximity,
			PointerProximity: constants.PointerProximity,
		},
		Scoring: ScoringConfig{
			CorrectPoints:     rules.CorrectPoints,
			IncorrectPenalty:  rules.IncorrectPenalty,
			StreakBonusEvery:  rules.StreakBonusEvery,
			StreakBonusPoints: rules.StreakBonusPoints,
		},
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
			Volumes:      map[string]float64{},
		},
		Host: HostSection{Addr: constants.HostAddr},
	}
}

// Load builds a Config from defaults, the YAML file at path (optional), the .env file at
// envFile (optional, missing is fine) and WORDMOLE_* variables, then validates it
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg, unknown fields are rejected
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// ApplyEnv overlays WORDMOLE_* variables onto cfg
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("WORDMOLE_CATEGORY"); v != "" {
		c.Category = v
	}
	if v := os.Getenv("WORDMOLE_WORDS_FILE"); v != "" {
		c.WordsFile = v
	}
	if v := os.Getenv("WORDMOLE_HOST_ADDR"); v != "" {
		c.Host.Addr = v
	}
	if v := os.Getenv("WORDMOLE_ROUND_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: WORDMOLE_ROUND_SECONDS: %v", ErrInvalid, err)
		}
		c.RoundSeconds = n
	}
	if v := os.Getenv("WORDMOLE_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: WORDMOLE_SEED: %v", ErrInvalid, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate checks timing and range constraints
func (c *Config) Validate() error {
	switch {
	case c.RoundSeconds <= 0:
		return fmt.Errorf("%w: round_seconds must be positive, got %d", ErrInvalid, c.RoundSeconds)
	case c.Holes <= 0:
		return fmt.Errorf("%w: holes must be positive, got %d", ErrInvalid, c.Holes)
	case c.CorrectRatio < 0 || c.CorrectRatio > 1:
		return fmt.Errorf("%w: correct_ratio must be in [0,1], got %g", ErrInvalid, c.CorrectRatio)
	case c.Timing.Rise < 0 || c.Timing.Fall < 0 || c.Timing.HitDelay < 0:
		return fmt.Errorf("%w: animation timings must not be negative", ErrInvalid)
	case c.Timing.Dwell <= c.Timing.Rise:
		return fmt.Errorf("%w: dwell %v must exceed rise %v", ErrInvalid, c.Timing.Dwell, c.Timing.Rise)
	case c.Spawn.IntervalMin <= 0:
		return fmt.Errorf("%w: spawn interval_min must be positive", ErrInvalid)
	case c.Spawn.IntervalMin > c.Spawn.IntervalMax:
		return fmt.Errorf("%w: spawn interval_min %v exceeds interval_max %v", ErrInvalid, c.Spawn.IntervalMin, c.Spawn.IntervalMax)
	case c.Input.Debounce < 0 || c.Input.TouchProximity < 0 || c.Input.PointerProximity < 0:
		return fmt.Errorf("%w: input thresholds must not be negative", ErrInvalid)
	case c.Scoring.StreakBonusEvery <= 0:
		return fmt.Errorf("%w: streak_bonus_every must be positive", ErrInvalid)
	}
	return nil
}

// RoundConfig converts the settings to the controller's configuration
// yScale stretches vertical screen distance for non-square cells
func (c *Config) RoundConfig(yScale float64) round.Config {
	rc := round.DefaultConfig()
	rc.Holes = c.Holes
	rc.DefaultCategory = c.Category
	rc.RoundSeconds = c.RoundSeconds
	rc.CorrectRatio = c.CorrectRatio
	rc.Rules = score.Rules{
		CorrectPoints:     c.Scoring.CorrectPoints,
		IncorrectPenalty:  c.Scoring.IncorrectPenalty,
		StreakBonusEvery:  c.Scoring.StreakBonusEvery,
		StreakBonusPoints: c.Scoring.StreakBonusPoints,
	}
	rc.Timing = mole.Timing{
		Rise:     c.Timing.Rise,
		Fall:     c.Timing.Fall,
		HitDelay: c.Timing.HitDelay,
	}
	rc.Spawn = spawn.Config{
		FirstDelay:  c.Spawn.FirstDelay,
		IntervalMin: c.Spawn.IntervalMin,
		IntervalMax: c.Spawn.IntervalMax,
		Dwell:       c.Timing.Dwell,
	}
	rc.Input = input.Config{
		Debounce:         c.Input.Debounce,
		TouchProximity:   c.Input.TouchProximity,
		PointerProximity: c.Input.PointerProximity,
		YScale:           yScale,
	}
	return rc
}

// KeyTable returns the default bindings with the configured overrides merged in
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys.Runes) == 0 && len(c.Keys.Special) == 0 {
		return base, nil
	}
	override, err := input.LoadKeyConfig(c.Keys.Runes, c.Keys.Special)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}

// WordBank loads words_file when set, otherwise the embedded category table
func (c *Config) WordBank() (*wordbank.Bank, error) {
	if c.WordsFile == "" {
		return wordbank.Default()
	}
	return wordbank.LoadFile(c.WordsFile)
}
