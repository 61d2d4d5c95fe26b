package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/pushlog/pushlog/internal/error_values"
	"github.com/pushlog/pushlog/internal/leaderboard"
	"github.com/pushlog/pushlog/pkg/cleanup"
	"github.com/pushlog/pushlog/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.Entry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	row := er.conn.QueryRow(ctx, `INSERT INTO entries (user_id, amount, source) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		entry.UserID,
		entry.Amount,
		entry.Source,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating entry db error: " + err.Error())
	}
	return nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entry entity.Entry
	entry.ID = id
	row := er.conn.QueryRow(ctx, `SELECT user_id, amount, source, created_at, deleted FROM entries WHERE id = $1;`, id)
	if err := row.Scan(&entry.UserID, &entry.Amount, &entry.Source, &entry.CreatedAt, &entry.Deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by id error: " + err.Error())
	}
	return &entry, nil
}

func (er *EntriesRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Entry, error) {
	entries := make([]*entity.Entry, 0)
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, amount, source, created_at, deleted
		FROM entries WHERE user_id = $1 AND NOT deleted ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting entries by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.Entry{}
		err = rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Source, &e.CreatedAt, &e.Deleted)
		if err != nil {
			return nil, errors.New("unmarshalling entry error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return entries, nil
}

func (er *EntriesRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `UPDATE entries SET deleted = TRUE WHERE id = $1 AND NOT deleted;`, id)
	if err != nil {
		return errors.New("deleting entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) Timestamps(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := er.conn.Query(ctx, `SELECT created_at FROM entries WHERE user_id = $1 AND NOT deleted;`, uid)
	if err != nil {
		return nil, errors.New("getting entry timestamps error: " + err.Error())
	}
	defer rows.Close()
	stamps := make([]time.Time, 0)
	for rows.Next() {
		var ts time.Time
		if err = rows.Scan(&ts); err != nil {
			return nil, errors.New("timestamp row parsing error: " + err.Error())
		}
		stamps = append(stamps, ts)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected timestamp rows error: " + rows.Err().Error())
	}
	return stamps, nil
}

func (er *EntriesRepository) Aggregates(ctx context.Context, uid uuid.UUID) (*EntryAggregates, error) {
	row := er.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*), COALESCE(MAX(amount), 0), COUNT(*) FILTER (WHERE source = 'timer-session')
		FROM entries WHERE user_id = $1 AND NOT deleted;`,
		uid,
	)
	var agg EntryAggregates
	if err := row.Scan(&agg.LifetimeTotal, &agg.EntryCount, &agg.MaxAmount, &agg.TimerCount); err != nil {
		return nil, errors.New("getting entry aggregates error: " + err.Error())
	}
	return &agg, nil
}

func (er *EntriesRepository) RangeStats(ctx context.Context, uid uuid.UUID, from, to time.Time) (int64, int, error) {
	row := er.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM entries
		WHERE user_id = $1 AND NOT deleted AND created_at >= $2 AND created_at < $3;`,
		uid,
		from,
		to,
	)
	var total int64
	var count int
	if err := row.Scan(&total, &count); err != nil {
		return 0, 0, errors.New("getting range stats error: " + err.Error())
	}
	return total, count, nil
}

func (er *EntriesRepository) TotalsSince(ctx context.Context, since time.Time) ([]leaderboard.Row, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT user_id, SUM(amount) FROM entries WHERE NOT deleted AND created_at >= $1 GROUP BY user_id;`,
		since,
	)
	if err != nil {
		return nil, errors.New("getting period totals error: " + err.Error())
	}
	defer rows.Close()
	return scanTotals(rows)
}

func (er *EntriesRepository) AllTimeTotals(ctx context.Context) ([]leaderboard.Row, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT u.id, COALESCE(SUM(e.amount) FILTER (WHERE NOT e.deleted), 0)
		FROM users u LEFT JOIN entries e ON e.user_id = u.id GROUP BY u.id;`,
	)
	if err != nil {
		return nil, errors.New("getting all-time totals error: " + err.Error())
	}
	defer rows.Close()
	return scanTotals(rows)
}

func scanTotals(rows pgx.Rows) ([]leaderboard.Row, error) {
	result := make([]leaderboard.Row, 0)
	for rows.Next() {
		var row leaderboard.Row
		if err := rows.Scan(&row.UserID, &row.PeriodTotal); err != nil {
			return nil, errors.New("totals row parsing error: " + err.Error())
		}
		result = append(result, row)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected totals rows error: " + rows.Err().Error())
	}
	return result, nil
}
