package round

import (
	"time"

	"github.com/lixenwraith/word-mole/constants"
	"github.com/lixenwraith/word-mole/input"
	"github.com/lixenwraith/word-mole/mole"
	"github.com/lixenwraith/word-mole/score"
	"github.com/lixenwraith/word-mole/spawn"
)

// Config gathers every tunable of a game
type Config struct {
	Holes           int
	DefaultCategory string

	RoundSeconds   int
	CountdownSteps int
	CountdownStep  time.Duration
	StartDelay     time.Duration

	CorrectRatio float64
	Rules        score.Rules
	Timing       mole.Timing
	Spawn        spawn.Config
	Input        input.Config

	InstructionsDuration time.Duration
	BonusDuration        time.Duration
}

// DefaultConfig returns the standard game
func DefaultConfig() Config {
	return Config{
		Holes:           constants.HoleCount,
		DefaultCategory: constants.DefaultCategory,

		RoundSeconds:   constants.RoundSeconds,
		CountdownSteps: constants.CountdownSteps,
		CountdownStep:  constants.CountdownStep,
		StartDelay:     constants.StartDelay,

		CorrectRatio: constants.CorrectWordRatio,
		Rules:        score.DefaultRules(),
		Timing: mole.Timing{
			Rise:     constants.RiseDuration,
			Fall:     constants.FallDuration,
			HitDelay: constants.HitDelay,
		},
		Spawn: spawn.Config{
			FirstDelay:  constants.FirstSpawnDelay,
			IntervalMin: constants.SpawnIntervalMin,
			IntervalMax: constants.SpawnIntervalMax,
			Dwell:       constants.DwellWindow,
		},
		Input: input.Config{
			Debounce:         constants.DebounceWindow,
			TouchProximity:   constants.TouchProximity,
			PointerProximity: constants.PointerProximity,
			YScale:           1,
		},

		InstructionsDuration: constants.InstructionsDuration,
		BonusDuration:        constants.StreakBonusDuration,
	}
}
