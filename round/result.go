package round

import (
	"time"

	"github.com/google/uuid"
)

// Result is the summary of a finished round
type Result struct {
	RoundID    uuid.UUID `json:"round_id"`
	CategoryID string    `json:"category_id"`
	Title      string    `json:"title"`
	Score      int       `json:"score"`
	Correct    int       `json:"correct"`
	Incorrect  int       `json:"incorrect"`
	Misses     int       `json:"misses"`
	Expired    int       `json:"expired"`
	Bonuses    int       `json:"bonuses"`
	BestStreak int       `json:"best_streak"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
}
