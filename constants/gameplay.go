package constants

import "time"

// Scoring
const (
	// CorrectPoints is awarded for hitting a mole showing a target word
	CorrectPoints = 10

	// IncorrectPenalty is deducted for hitting a distractor, score floors at zero
	IncorrectPenalty = 5

	// StreakBonusEvery is the streak length that earns a bonus (and each multiple of it)
	StreakBonusEvery = 3

	// StreakBonusPoints is the bonus awarded on each streak multiple
	StreakBonusPoints = 10
)

// Word Draw
const (
	// CorrectWordRatio is the probability a spawned mole shows a target word
	CorrectWordRatio = 0.7
)

// Input Resolution
const (
	// DebounceWindow discards interactions arriving this soon after an accepted one
	DebounceWindow = 300 * time.Millisecond

	// TouchProximity is the screen distance under which a touch snaps to the nearest mole
	TouchProximity = 150.0

	// PointerProximity is the pointer equivalent of TouchProximity, 0 disables the fallback
	PointerProximity = 0.0

	// TerminalCellAspect converts terminal rows to the same unit as columns for distances
	TerminalCellAspect = 2.0
)
