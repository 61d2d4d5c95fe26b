package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/pushlog/pushlog/internal/error_values"
	"github.com/pushlog/pushlog/internal/leaderboard"
	"github.com/pushlog/pushlog/internal/repository"
)

const (
	PeriodWeek    = "week"
	PeriodAllTime = "all"
)

type LeaderboardService struct {
	usersRepo   repository.UsersRepositoryI
	entriesRepo repository.EntriesRepositoryI
	now         func() time.Time
}

func NewLeaderboardService(usersRepo repository.UsersRepositoryI, entriesRepo repository.EntriesRepositoryI) *LeaderboardService {
	if usersRepo == nil || entriesRepo == nil {
		log.Fatal("on leaderboard service provided nil repos")
	}
	return &LeaderboardService{
		usersRepo:   usersRepo,
		entriesRepo: entriesRepo,
		now:         time.Now,
	}
}

// weekStart is Monday 00:00 UTC of the week containing now.
func weekStart(now time.Time) time.Time {
	utc := now.UTC()
	weekday := int(utc.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(weekday - 1))
}

func (serv *LeaderboardService) Get(ctx context.Context, requester uuid.UUID, period string, pagination PaginationOpts) (*LeaderboardView, error) {
	var rows []leaderboard.Row
	var err error
	switch period {
	case PeriodWeek:
		rows, err = serv.entriesRepo.TotalsSince(ctx, weekStart(serv.now()))
	case PeriodAllTime:
		rows, err = serv.entriesRepo.AllTimeTotals(ctx)
	default:
		return nil, errors.New("unknown leaderboard period: " + period)
	}
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	limit := pagination.Limit
	if limit < 1 {
		limit = 10
	}
	page := pagination.Offset/limit + 1
	view := leaderboard.Rank(rows, requester, page, limit)

	result := &LeaderboardView{
		Period: period,
		View:   view,
	}
	if period == PeriodWeek && view.Requester != nil {
		user, err := serv.usersRepo.FindByID(ctx, requester)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		result.RequesterPercent = leaderboard.PercentOfGoal(view.Requester.PeriodTotal, user.WeeklyGoal)
	}
	return result, nil
}
