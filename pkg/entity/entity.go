package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	// IANA zone name, the user's civil-day boundary for streak counting
	Timezone   string
	WeeklyGoal int
}

const (
	SourceManual = "manual"
	SourceTimer  = "timer-session"
)

type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Amount    int       `json:"amount"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Deleted   bool      `json:"-"`
}

type Achievement struct {
	UserID     uuid.UUID `json:"uid"`
	BadgeType  string    `json:"badge_type"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Progress is assembled on demand. Level and Title are derived from
// Points and LifetimeTotal, never stored on their own.
type Progress struct {
	Points        int64  `json:"points"`
	Level         int    `json:"level"`
	LifetimeTotal int64  `json:"lifetime_total"`
	Title         string `json:"title"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}
