package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pushlog/pushlog/internal/leaderboard"
	"github.com/pushlog/pushlog/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's settings (timezone, weekly goal)
	UpdateSettings(ctx context.Context, uid uuid.UUID, timezone string, weeklyGoal int) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

// EntryAggregates is the per-user rollup feeding the badge snapshot.
type EntryAggregates struct {
	LifetimeTotal int64
	EntryCount    int
	MaxAmount     int
	TimerCount    int
}

type EntriesRepositoryI interface {
	// Inserts entry (UserID, Amount, Source are necessary), fills ID and CreatedAt
	Create(ctx context.Context, entry *entity.Entry) error
	// Searches entry with given id, deleted ones included
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)
	// Lists user's non-deleted entries, newest first. Requires pagination params
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Entry, error)
	// Marks entry deleted. Soft only, the row stays
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// Returns timestamps of all non-deleted entries of user
	Timestamps(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Returns lifetime rollup over non-deleted entries
	Aggregates(ctx context.Context, uid uuid.UUID) (*EntryAggregates, error)
	// Returns sum and count of non-deleted entries inside [from, to)
	RangeStats(ctx context.Context, uid uuid.UUID, from, to time.Time) (int64, int, error)
	// Per-user totals since the given instant; users without entries are absent
	TotalsSince(ctx context.Context, since time.Time) ([]leaderboard.Row, error)
	// Per-user lifetime totals across the whole population, zero totals included
	AllTimeTotals(ctx context.Context) ([]leaderboard.Row, error)
}

// BadgeUnlock is one pending achievement insert with its point award.
type BadgeUnlock struct {
	Type   string
	Name   string
	Points int
}

type ProgressRepositoryI interface {
	// Returns user's current points, zero if no progress row yet
	GetPoints(ctx context.Context, uid uuid.UUID) (int64, error)
	// Atomically increments user's points. Delta is never negative
	AddPoints(ctx context.Context, uid uuid.UUID, delta int) error
	// Returns the set of badge types already unlocked by user
	UnlockedTypes(ctx context.Context, uid uuid.UUID) (map[string]struct{}, error)
	// Lists unlocked achievements, newest first
	ListAchievements(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error)
	// Applies badge unlocks in one transaction: insert-if-absent achievement
	// rows, points for the rows actually inserted, one notification each.
	// Returns the points actually awarded
	ApplyUnlocks(ctx context.Context, uid uuid.UUID, unlocks []BadgeUnlock) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
