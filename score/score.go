// Package score holds the round session and its pure scoring transitions
package score

import "github.com/lixenwraith/word-mole/constants"

// Outcome is the result of one resolved mole appearance
type Outcome int

const (
	Correct Outcome = iota
	Incorrect
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Timeout:
		return "timeout"
	}
	return "unknown"
}

// Rules are the point values of a round
type Rules struct {
	CorrectPoints     int
	IncorrectPenalty  int
	StreakBonusEvery  int
	StreakBonusPoints int
}

// DefaultRules returns the standard point values
func DefaultRules() Rules {
	return Rules{
		CorrectPoints:     constants.CorrectPoints,
		IncorrectPenalty:  constants.IncorrectPenalty,
		StreakBonusEvery:  constants.StreakBonusEvery,
		StreakBonusPoints: constants.StreakBonusPoints,
	}
}

// Session is the per-round game state, passed and returned by value
type Session struct {
	Score             int
	TimeRemaining     int
	Streak            int
	LastStreakBonusAt int
	Active            bool
}

// NewSession returns the state at the start of an active round
func NewSession(seconds int) Session {
	return Session{TimeRemaining: seconds, Active: true}
}

// Effects describes what a transition changed, for feedback
type Effects struct {
	Delta       int
	StreakBonus bool
}

// Apply scores one outcome
// A correct hit extends the streak and earns a bonus at each multiple of the bonus cadence,
// at most once per streak value; an incorrect hit resets the streak and never drops the score
// below zero; a timeout changes nothing. An inactive session is returned unchanged
func Apply(s Session, o Outcome, r Rules) (Session, Effects) {
	if !s.Active {
		return s, Effects{}
	}

	var fx Effects
	before := s.Score

	switch o {
	case Correct:
		s.Score += r.CorrectPoints
		s.Streak++
		if r.StreakBonusEvery > 0 &&
			s.Streak >= r.StreakBonusEvery &&
			s.Streak%r.StreakBonusEvery == 0 &&
			s.Streak != s.LastStreakBonusAt {
			s.Score += r.StreakBonusPoints
			s.LastStreakBonusAt = s.Streak
			fx.StreakBonus = true
		}

	case Incorrect:
		s.Score = max(0, s.Score-r.IncorrectPenalty)
		s.Streak = 0

	case Timeout:
	}

	fx.Delta = s.Score - before
	return s, fx
}

// Tick removes one second from an active session and reports whether time ran out
func Tick(s Session) (Session, bool) {
	if !s.Active {
		return s, false
	}
	if s.TimeRemaining > 0 {
		s.TimeRemaining--
	}
	if s.TimeRemaining == 0 {
		s.Active = false
		return s, true
	}
	return s, false
}
