package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/pushlog/pushlog/internal/error_values"
	"github.com/pushlog/pushlog/internal/progress"
	"github.com/pushlog/pushlog/internal/repository"
	"github.com/pushlog/pushlog/pkg/entity"
)

type EntriesService struct {
	usersRepo    repository.UsersRepositoryI
	entriesRepo  repository.EntriesRepositoryI
	progressRepo repository.ProgressRepositoryI
	evaluator    ProgressServiceI
	now          func() time.Time
}

func NewEntriesService(usersRepo repository.UsersRepositoryI, entriesRepo repository.EntriesRepositoryI, progressRepo repository.ProgressRepositoryI, evaluator ProgressServiceI) *EntriesService {
	if usersRepo == nil || entriesRepo == nil || progressRepo == nil || evaluator == nil {
		log.Fatal("on entries service provided nil dependencies")
	}
	return &EntriesService{
		usersRepo:    usersRepo,
		entriesRepo:  entriesRepo,
		progressRepo: progressRepo,
		evaluator:    evaluator,
		now:          time.Now,
	}
}

// LogEntry persists one activity entry and scores it: base points for
// the amount, the first-of-day bonus, the streak bonus, then a badge
// evaluation pass. Points only ever go up; a later deletion of this
// entry will not claw them back.
func (serv *EntriesService) LogEntry(ctx context.Context, uid uuid.UUID, req *LogEntryRequest) (*LogResult, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, validationErr(err)
	}
	user, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	loc := userLocation(user)
	now := serv.now()
	dayStart, dayEnd := dayBounds(now, loc)
	_, todayCount, err := serv.entriesRepo.RangeStats(ctx, uid, dayStart, dayEnd)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	firstOfDay := todayCount == 0

	entry := &entity.Entry{
		UserID: uid,
		Amount: req.Amount,
		Source: req.Source,
	}
	if err = serv.entriesRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}

	// streak context includes the day this entry just opened
	stamps, err := serv.entriesRepo.Timestamps(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	streak := progress.CalcStreak(stamps, loc, now)

	entryPoints := progress.PointsForEntry(req.Amount, firstOfDay, streak.Current)
	if err = serv.progressRepo.AddPoints(ctx, uid, entryPoints); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	evaluation, err := serv.evaluator.EvaluateBadges(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &LogResult{
		Entry:         entry,
		EntryPoints:   entryPoints,
		CurrentStreak: streak.Current,
		Evaluation:    evaluation,
	}, nil
}

func (serv *EntriesService) DeleteEntry(ctx context.Context, id, uid uuid.UUID) error {
	entry, err := serv.entriesRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	err = serv.entriesRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *EntriesService) ListEntries(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Entry, error) {
	entries, err := serv.entriesRepo.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}
