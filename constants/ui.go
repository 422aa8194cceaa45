package constants

import "time"

// Message Durations
const (
	// InstructionsDuration is how long the round instructions stay on screen
	InstructionsDuration = 3 * time.Second

	// StreakBonusDuration is how long the streak celebration stays on screen
	StreakBonusDuration = 800 * time.Millisecond

	// PersistentMessage keeps a message until it is replaced
	PersistentMessage time.Duration = 0
)

// Message Text
const (
	InstructionsFormat = "Hit the mole when you see a word from the %q list!"
	StreakBonusText    = "+10 BONUS!"
	GameOverFormat     = "Game Over! Final Score: %d"
	StartText          = "Start!"
	SelectPrompt       = "Choose a list (1-9), then click anywhere to start"
	GameOverHint       = "Click anywhere to choose a new game"
)

// Terminal HUD
const (
	AudioStr       = " ♪ "
	StatusHeight   = 1
	HUDHeight      = 1
	ScoreFormat    = "Score: %d"
	TimerFormat    = "Time: %d"
	MenuItemFormat = "%d. %s"
	KeyHint        = "1-9 list  enter start  m mute  q quit"

	// HoleFlatten squashes the hole ellipse to suggest a ground plane seen from above
	HoleFlatten = 0.45
)
