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

type ProgressService struct {
	usersRepo    repository.UsersRepositoryI
	entriesRepo  repository.EntriesRepositoryI
	progressRepo repository.ProgressRepositoryI
	now          func() time.Time
}

func NewProgressService(usersRepo repository.UsersRepositoryI, entriesRepo repository.EntriesRepositoryI, progressRepo repository.ProgressRepositoryI) *ProgressService {
	if usersRepo == nil || entriesRepo == nil || progressRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		usersRepo:    usersRepo,
		entriesRepo:  entriesRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

func userLocation(user *entity.User) *time.Location {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// dayBounds is the [start, end) window of the civil day containing now.
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// buildSnapshot aggregates the user's stats for badge evaluation.
func (serv *ProgressService) buildSnapshot(ctx context.Context, uid uuid.UUID, loc *time.Location) (progress.Snapshot, progress.Streak, error) {
	agg, err := serv.entriesRepo.Aggregates(ctx, uid)
	if err != nil {
		return progress.Snapshot{}, progress.Streak{}, errors.New("repository error: " + err.Error())
	}
	stamps, err := serv.entriesRepo.Timestamps(ctx, uid)
	if err != nil {
		return progress.Snapshot{}, progress.Streak{}, errors.New("repository error: " + err.Error())
	}
	now := serv.now()
	streak := progress.CalcStreak(stamps, loc, now)
	dayStart, dayEnd := dayBounds(now, loc)
	todayTotal, _, err := serv.entriesRepo.RangeStats(ctx, uid, dayStart, dayEnd)
	if err != nil {
		return progress.Snapshot{}, progress.Streak{}, errors.New("repository error: " + err.Error())
	}
	snap := progress.Snapshot{
		LifetimeTotal:   agg.LifetimeTotal,
		EntryCount:      agg.EntryCount,
		MaxEntryAmount:  agg.MaxAmount,
		TodayTotal:      int(todayTotal),
		DistinctDays:    progress.CountDistinctDays(stamps, loc),
		CurrentStreak:   streak.Current,
		LongestStreak:   streak.Longest,
		TimerEntryCount: agg.TimerCount,
	}
	return snap, streak, nil
}

func (serv *ProgressService) GetProgress(ctx context.Context, uid uuid.UUID) (*entity.Progress, error) {
	user, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	snap, streak, err := serv.buildSnapshot(ctx, uid, userLocation(user))
	if err != nil {
		return nil, err
	}
	points, err := serv.progressRepo.GetPoints(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.Progress{
		Points:        points,
		Level:         progress.LevelForPoints(points),
		LifetimeTotal: snap.LifetimeTotal,
		Title:         progress.TitleForTotal(snap.LifetimeTotal),
		CurrentStreak: streak.Current,
		LongestStreak: streak.Longest,
	}, nil
}

func (serv *ProgressService) ListAchievements(ctx context.Context, uid uuid.UUID) ([]BadgeInfo, error) {
	achievements, err := serv.progressRepo.ListAchievements(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	byType := make(map[string]progress.Definition, len(progress.Registry()))
	for _, def := range progress.Registry() {
		byType[def.Type] = def
	}
	result := make([]BadgeInfo, 0, len(achievements))
	for _, a := range achievements {
		def, known := byType[a.BadgeType]
		if !known {
			// a badge retired from the registry still stays unlocked
			result = append(result, BadgeInfo{
				Type:       a.BadgeType,
				UnlockedAt: a.UnlockedAt.Format(time.RFC3339),
			})
			continue
		}
		result = append(result, BadgeInfo{
			Type:        def.Type,
			Name:        def.Name,
			Description: def.Description,
			Rarity:      string(def.Rarity),
			Points:      def.Points(),
			UnlockedAt:  a.UnlockedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// EvaluateBadges rebuilds the stats snapshot and applies any qualifying
// badges. Safe to call from any trigger: the evaluation itself is pure
// and the side effects are one atomic repository transaction keyed on
// (user, badge type), so concurrent calls cannot double-award.
func (serv *ProgressService) EvaluateBadges(ctx context.Context, uid uuid.UUID) (*EvaluationResult, error) {
	user, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	snap, _, err := serv.buildSnapshot(ctx, uid, userLocation(user))
	if err != nil {
		return nil, err
	}
	unlocked, err := serv.progressRepo.UnlockedTypes(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	newly, _ := progress.Evaluate(snap, unlocked)
	if len(newly) == 0 {
		return &EvaluationResult{NewBadges: []BadgeInfo{}}, nil
	}
	unlocks := make([]repository.BadgeUnlock, 0, len(newly))
	infos := make([]BadgeInfo, 0, len(newly))
	for _, def := range newly {
		unlocks = append(unlocks, repository.BadgeUnlock{
			Type:   def.Type,
			Name:   def.Name,
			Points: def.Points(),
		})
		infos = append(infos, BadgeInfo{
			Type:        def.Type,
			Name:        def.Name,
			Description: def.Description,
			Rarity:      string(def.Rarity),
			Points:      def.Points(),
		})
	}
	awarded, err := serv.progressRepo.ApplyUnlocks(ctx, uid, unlocks)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &EvaluationResult{
		NewBadges:     infos,
		PointsAwarded: awarded,
	}, nil
}
