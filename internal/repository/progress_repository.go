package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pushlog/pushlog/pkg/cleanup"
	"github.com/pushlog/pushlog/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) GetPoints(ctx context.Context, uid uuid.UUID) (int64, error) {
	row := pr.conn.QueryRow(ctx, `SELECT points FROM progress WHERE user_id = $1;`, uid)
	var points int64
	if err := row.Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.New("getting points error: " + err.Error())
	}
	return points, nil
}

func (pr *ProgressRepository) AddPoints(ctx context.Context, uid uuid.UUID, delta int) error {
	if delta < 0 {
		return errors.New("points delta must not be negative")
	}
	if delta == 0 {
		return nil
	}
	_, err := pr.conn.Exec(
		ctx,
		`INSERT INTO progress (user_id, points) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET points = progress.points + EXCLUDED.points;`,
		uid,
		delta,
	)
	if err != nil {
		return errors.New("incrementing points error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) UnlockedTypes(ctx context.Context, uid uuid.UUID) (map[string]struct{}, error) {
	rows, err := pr.conn.Query(ctx, `SELECT badge_type FROM achievements WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting unlocked badges error: " + err.Error())
	}
	defer rows.Close()
	unlocked := make(map[string]struct{})
	for rows.Next() {
		var badgeType string
		if err = rows.Scan(&badgeType); err != nil {
			return nil, errors.New("badge type row parsing error: " + err.Error())
		}
		unlocked[badgeType] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected badge rows error: " + rows.Err().Error())
	}
	return unlocked, nil
}

func (pr *ProgressRepository) ListAchievements(ctx context.Context, uid uuid.UUID) ([]entity.Achievement, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT user_id, badge_type, unlocked_at FROM achievements WHERE user_id = $1 ORDER BY unlocked_at DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Achievement, 0)
	for rows.Next() {
		var a entity.Achievement
		if err = rows.Scan(&a.UserID, &a.BadgeType, &a.UnlockedAt); err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}

type badgeNotification struct {
	BadgeType string `json:"badge_type"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
}

// ApplyUnlocks runs the whole side-effect set of one evaluation as a
// single transaction. The (user_id, badge_type) primary key plus
// ON CONFLICT DO NOTHING makes a concurrent duplicate award a no-op:
// points and notifications follow only rows this call actually inserted.
func (pr *ProgressRepository) ApplyUnlocks(ctx context.Context, uid uuid.UUID, unlocks []BadgeUnlock) (int, error) {
	if len(unlocks) == 0 {
		return 0, nil
	}
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning unlock tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	awarded := 0
	for _, unlock := range unlocks {
		ct, err := tx.Exec(
			ctx,
			`INSERT INTO achievements (user_id, badge_type) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			uid,
			unlock.Type,
		)
		if err != nil {
			return 0, errors.New("inserting achievement error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			// already unlocked by a concurrent evaluation
			continue
		}
		awarded += unlock.Points
		payload, err := sonic.Marshal(badgeNotification{
			BadgeType: unlock.Type,
			Name:      unlock.Name,
			Points:    unlock.Points,
		})
		if err != nil {
			return 0, errors.New("marshalling notification payload error: " + err.Error())
		}
		_, err = tx.Exec(
			ctx,
			`INSERT INTO notifications (user_id, kind, payload) VALUES ($1, 'badge_unlocked', $2);`,
			uid,
			payload,
		)
		if err != nil {
			return 0, errors.New("inserting notification error: " + err.Error())
		}
	}
	if awarded > 0 {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO progress (user_id, points) VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET points = progress.points + EXCLUDED.points;`,
			uid,
			awarded,
		)
		if err != nil {
			return 0, errors.New("incrementing points error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing unlock tx error: " + err.Error())
	}
	return awarded, nil
}
