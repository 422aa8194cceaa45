package score

import "testing"

func applyAll(s Session, outcomes ...Outcome) (Session, []Effects) {
	var fx []Effects
	for _, o := range outcomes {
		var e Effects
		s, e = Apply(s, o, DefaultRules())
		fx = append(fx, e)
	}
	return s, fx
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		outcomes   []Outcome
		wantScore  int
		wantStreak int
		wantBonus  int
	}{
		{"single correct", []Outcome{Correct}, 10, 1, 0},
		{"three correct earns bonus", []Outcome{Correct, Correct, Correct}, 40, 3, 1},
		{"fourth correct no second bonus", []Outcome{Correct, Correct, Correct, Correct}, 50, 4, 1},
		{"six correct two bonuses", []Outcome{Correct, Correct, Correct, Correct, Correct, Correct}, 80, 6, 2},
		{"incorrect from zero floors", []Outcome{Incorrect}, 0, 0, 0},
		{"incorrect after correct", []Outcome{Correct, Incorrect}, 5, 0, 0},
		{"incorrect breaks streak", []Outcome{Correct, Correct, Incorrect, Correct, Correct}, 35, 2, 0},
		{"timeout is lenient", []Outcome{Correct, Correct, Timeout, Correct}, 40, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fx := applyAll(NewSession(30), tt.outcomes...)
			if s.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", s.Score, tt.wantScore)
			}
			if s.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", s.Streak, tt.wantStreak)
			}
			bonuses := 0
			for _, e := range fx {
				if e.StreakBonus {
					bonuses++
				}
			}
			if bonuses != tt.wantBonus {
				t.Errorf("Bonuses = %d, want %d", bonuses, tt.wantBonus)
			}
		})
	}
}

func TestApplyBonusOncePerStreakValue(t *testing.T) {
	// A session restored at streak 3 with the bonus already paid must not pay it again
	s := Session{Score: 40, Streak: 2, LastStreakBonusAt: 3, Active: true}
	s, fx := Apply(s, Correct, DefaultRules())
	if fx.StreakBonus || s.Score != 50 {
		t.Errorf("Expected no repeat bonus, got score %d bonus %v", s.Score, fx.StreakBonus)
	}
}

func TestApplyScoreNeverNegative(t *testing.T) {
	s := NewSession(30)
	s.Score = 3
	s, fx := Apply(s, Incorrect, DefaultRules())
	if s.Score != 0 || fx.Delta != -3 {
		t.Errorf("Expected floor at 0 with delta -3, got %d delta %d", s.Score, fx.Delta)
	}
}

func TestApplyInactiveSession(t *testing.T) {
	s := Session{Score: 10}
	got, fx := Apply(s, Correct, DefaultRules())
	if got != s || fx != (Effects{}) {
		t.Errorf("Inactive session changed: %+v %+v", got, fx)
	}
}

func TestTick(t *testing.T) {
	s := NewSession(2)
	s, done := Tick(s)
	if done || s.TimeRemaining != 1 || !s.Active {
		t.Fatalf("Unexpected after first tick: %+v done=%v", s, done)
	}
	s, done = Tick(s)
	if !done || s.TimeRemaining != 0 || s.Active {
		t.Fatalf("Expected round over after second tick: %+v done=%v", s, done)
	}
	if _, done = Tick(s); done {
		t.Error("Tick on an inactive session must not report expiry again")
	}
}

func TestOutcomeString(t *testing.T) {
	if Correct.String() != "correct" || Timeout.String() != "timeout" || Outcome(7).String() != "unknown" {
		t.Error("Outcome strings mismatch")
	}
}
