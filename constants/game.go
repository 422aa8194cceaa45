package constants

import "time"

// Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InboxSize is the capacity of the game loop inbox
	InboxSize = 256
)

// Mole Animation Constants
const (
	// RiseDuration is how long a mole takes to come up out of its hole
	RiseDuration = 200 * time.Millisecond

	// FallDuration is how long a mole takes to drop back into its hole
	FallDuration = 200 * time.Millisecond

	// DwellWindow is measured from spawn; an unhit mole auto-hides when it expires
	DwellWindow = 1500 * time.Millisecond

	// HitDelay separates a resolved hit from the start of the fall animation
	HitDelay = 50 * time.Millisecond
)

// Spawn Cadence Constants
const (
	// SpawnIntervalMin is the lower bound of the randomized delay between spawn ticks
	SpawnIntervalMin = 1200 * time.Millisecond

	// SpawnIntervalMax is the upper bound of the randomized delay between spawn ticks
	SpawnIntervalMax = 2000 * time.Millisecond

	// FirstSpawnDelay is the pause between round start and the first spawn tick
	FirstSpawnDelay = 500 * time.Millisecond
)

// Round Constants
const (
	// RoundSeconds is the length of a round
	RoundSeconds = 30

	// CountdownSteps is the number of numbered countdown steps before "Start!"
	CountdownSteps = 3

	// CountdownStep is the duration of one countdown step
	CountdownStep = 1 * time.Second

	// StartDelay separates "Start!" from the round becoming active
	StartDelay = 500 * time.Millisecond

	// FinalSecondsWarning is the remaining time from which each second ticks audibly
	FinalSecondsWarning = 5

	// HoleCount is the number of holes, one mole each
	HoleCount = 4

	// DefaultCategory is selected until the player picks another one
	DefaultCategory = "short_a"
)
