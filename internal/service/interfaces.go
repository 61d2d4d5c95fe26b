package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pushlog/pushlog/internal/leaderboard"
	"github.com/pushlog/pushlog/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
	Timezone string `validate:"omitempty,max=64"`
}

type SettingsRequest struct {
	Timezone   string `validate:"required,max=64"`
	WeeklyGoal int    `validate:"min=0,max=100000"`
}

type LogEntryRequest struct {
	Amount int    `validate:"required,min=1,max=10000"`
	Source string `validate:"required,oneof=manual timer-session"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// BadgeInfo is the outward description of one badge, static registry
// data plus the unlock moment when known.
type BadgeInfo struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`
	Points      int    `json:"points"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

// EvaluationResult reports what one badge evaluation actually awarded.
type EvaluationResult struct {
	NewBadges     []BadgeInfo `json:"new_badges"`
	PointsAwarded int         `json:"points_awarded"`
}

// LogResult is everything one logged entry produced.
type LogResult struct {
	Entry         *entity.Entry     `json:"entry"`
	EntryPoints   int               `json:"entry_points"`
	CurrentStreak int               `json:"current_streak"`
	Evaluation    *EvaluationResult `json:"evaluation"`
}

// LeaderboardView wraps the pure ranking with period context.
type LeaderboardView struct {
	Period           string `json:"period"`
	leaderboard.View
	RequesterPercent float64 `json:"requester_percent_of_goal"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Updates timezone and weekly goal
	UpdateSettings(ctx context.Context, id uuid.UUID, req *SettingsRequest) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type EntriesServiceI interface {
	// Validates and persists one entry, scores it and runs badge evaluation
	LogEntry(ctx context.Context, uid uuid.UUID, req *LogEntryRequest) (*LogResult, error)
	// Soft-deletes owner's entry. Earned points stay
	DeleteEntry(ctx context.Context, id, uid uuid.UUID) error
	// Lists user's non-deleted entries
	ListEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Entry, error)
}

type ProgressServiceI interface {
	// Assembles the user's current progress (points, level, title, streaks)
	GetProgress(ctx context.Context, uid uuid.UUID) (*entity.Progress, error)
	// Lists unlocked badges with registry metadata
	ListAchievements(ctx context.Context, uid uuid.UUID) ([]BadgeInfo, error)
	// Builds a fresh stats snapshot and applies any qualifying badges
	EvaluateBadges(ctx context.Context, uid uuid.UUID) (*EvaluationResult, error)
}

type LeaderboardServiceI interface {
	// Ranked, paginated standings for the period ("week" or "all")
	Get(ctx context.Context, requester uuid.UUID, period string, pagination PaginationOpts) (*LeaderboardView, error)
}
