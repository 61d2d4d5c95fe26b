package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pushlog/pushlog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pointsUpsertQuery = regexp.QuoteMeta(`INSERT INTO progress (user_id, points) VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET points = progress.points + EXCLUDED.points;`)
	achievementInsertQuery  = regexp.QuoteMeta(`INSERT INTO achievements (user_id, badge_type) VALUES ($1, $2) ON CONFLICT DO NOTHING;`)
	notificationInsertQuery = regexp.QuoteMeta(`INSERT INTO notifications (user_id, kind, payload) VALUES ($1, 'badge_unlocked', $2);`)
)

func TestGetPoints(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT points FROM progress WHERE user_id = $1;`)
	uid := uuid.New()
	ctx := context.Background()
	t.Run("has points", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"points"}).AddRow(int64(740)))
		points, err := repo.GetPoints(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(740), points)
	})
	t.Run("no progress row means zero", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		points, err := repo.GetPoints(ctx, uid)
		require.NoError(t, err)
		assert.Zero(t, points)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetPoints(ctx, uid)
		assert.Error(t, err)
	})
}

func TestAddPoints(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(mock)
	uid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO progress (user_id, points) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET points = progress.points + EXCLUDED.points;`)
	ctx := context.Background()
	t.Run("successful increment", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, 110).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.AddPoints(ctx, uid, 110))
	})
	t.Run("zero delta is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.AddPoints(ctx, uid, 0))
	})
	t.Run("negative delta rejected", func(t *testing.T) {
		assert.Error(t, repo.AddPoints(ctx, uid, -10))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(uid, 50).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.AddPoints(ctx, uid, 50))
	})
}

func TestUnlockedTypes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT badge_type FROM achievements WHERE user_id = $1;`)
	uid := uuid.New()
	ctx := context.Background()
	mock.ExpectQuery(query).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows([]string{"badge_type"}).AddRow("first_entry").AddRow("streak_3"))
	unlocked, err := repo.UnlockedTypes(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"first_entry": {}, "streak_3": {}}, unlocked)
}

func TestListAchievements(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProgressRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT user_id, badge_type, unlocked_at FROM achievements WHERE user_id = $1 ORDER BY unlocked_at DESC;`)
	uid := uuid.New()
	unlockedAt := time.Now()
	ctx := context.Background()
	mock.ExpectQuery(query).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "badge_type", "unlocked_at"}).
			AddRow(uid, "century_total", unlockedAt))
	achievements, err := repo.ListAchievements(ctx, uid)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, "century_total", achievements[0].BadgeType)
}

func TestApplyUnlocks(t *testing.T) {
	uid := uuid.New()
	unlocks := []repository.BadgeUnlock{
		{Type: "first_entry", Name: "First Rep", Points: 100},
		{Type: "century_total", Name: "Century", Points: 100},
	}
	ctx := context.Background()

	t.Run("all inserted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewProgressRepoWithConn(mock)
		mock.ExpectBegin()
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "first_entry").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(notificationInsertQuery).
			WithArgs(uid, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "century_total").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(notificationInsertQuery).
			WithArgs(uid, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(pointsUpsertQuery).
			WithArgs(uid, 200).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		awarded, err := repo.ApplyUnlocks(ctx, uid, unlocks)
		require.NoError(t, err)
		assert.Equal(t, 200, awarded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate no-ops without points", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewProgressRepoWithConn(mock)
		mock.ExpectBegin()
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "first_entry").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "century_total").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(notificationInsertQuery).
			WithArgs(uid, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(pointsUpsertQuery).
			WithArgs(uid, 100).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		awarded, err := repo.ApplyUnlocks(ctx, uid, unlocks)
		require.NoError(t, err)
		assert.Equal(t, 100, awarded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("everything already unlocked commits nothing extra", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewProgressRepoWithConn(mock)
		mock.ExpectBegin()
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "first_entry").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "century_total").
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectCommit()

		awarded, err := repo.ApplyUnlocks(ctx, uid, unlocks)
		require.NoError(t, err)
		assert.Zero(t, awarded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure rolls everything back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewProgressRepoWithConn(mock)
		mock.ExpectBegin()
		mock.ExpectExec(achievementInsertQuery).
			WithArgs(uid, "first_entry").
			WillReturnError(errors.New("storage unavailable"))
		mock.ExpectRollback()

		_, err = repo.ApplyUnlocks(ctx, uid, unlocks)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no pending unlocks skips the tx", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewProgressRepoWithConn(mock)
		awarded, err := repo.ApplyUnlocks(ctx, uid, nil)
		require.NoError(t, err)
		assert.Zero(t, awarded)
	})
}
