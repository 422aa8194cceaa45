package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit      SoundType = iota // Target word hit
	SoundMiss                      // Distractor hit
	SoundBonus                     // Streak bonus
	SoundTick                      // Countdown step and final seconds
	SoundStart                     // Round start
	SoundGameOver                  // Round end

	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"hit", "miss", "bonus", "tick", "start", "game_over"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundTypeByName resolves a configured effect name
func SoundTypeByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
