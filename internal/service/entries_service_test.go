package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/pushlog/pushlog/internal/error_values"
	"github.com/pushlog/pushlog/internal/repository"
	"github.com/pushlog/pushlog/internal/repository/mocks"
	"github.com/pushlog/pushlog/internal/service"
	"github.com/pushlog/pushlog/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestLogEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	progressRepo := mocks.NewMockProgressRepositoryI(ctrl)
	evaluator := service.NewProgressService(usersRepo, entriesRepo, progressRepo)
	serv := service.NewEntriesService(usersRepo, entriesRepo, progressRepo, evaluator)

	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "test_user", Timezone: "UTC"}
	now := time.Now()

	testCases := []struct {
		Desc          string
		Req           *service.LogEntryRequest
		Error         error
		WantPoints    int
		WantStreak    int
		WantNewBadges int
		MockPrepFunc  func()
	}{
		{
			// first entry ever: first-of-day bonus, streak of one,
			// first_entry badge unlocks
			Desc:          "first entry of the day",
			Req:           &service.LogEntryRequest{Amount: 20, Source: entity.SourceManual},
			WantPoints:    70,
			WantStreak:    1,
			WantNewBadges: 1,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil).Times(2)
				entriesRepo.EXPECT().RangeStats(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(int64(0), 0, nil)
				entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				entriesRepo.EXPECT().Timestamps(gomock.Any(), userID).Return([]time.Time{now}, nil).Times(2)
				progressRepo.EXPECT().AddPoints(gomock.Any(), userID, 70).Return(nil)
				entriesRepo.EXPECT().Aggregates(gomock.Any(), userID).Return(&repository.EntryAggregates{
					LifetimeTotal: 20,
					EntryCount:    1,
					MaxAmount:     20,
				}, nil)
				entriesRepo.EXPECT().RangeStats(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(int64(20), 1, nil)
				progressRepo.EXPECT().UnlockedTypes(gomock.Any(), userID).Return(map[string]struct{}{}, nil)
				progressRepo.EXPECT().ApplyUnlocks(gomock.Any(), userID, []repository.BadgeUnlock{
					{Type: "first_entry", Name: "First Rep", Points: 100},
				}).Return(100, nil)
			},
		},
		{
			// third day in a row, second entry today: streak bonus only
			Desc:       "streak bonus on repeat entry",
			Req:        &service.LogEntryRequest{Amount: 15, Source: entity.SourceManual},
			WantPoints: 45,
			WantStreak: 3,
			MockPrepFunc: func() {
				stamps := []time.Time{now.Add(-48 * time.Hour), now.Add(-24 * time.Hour), now}
				usersRepo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil).Times(2)
				entriesRepo.EXPECT().RangeStats(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(int64(20), 1, nil)
				entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				entriesRepo.EXPECT().Timestamps(gomock.Any(), userID).Return(stamps, nil).Times(2)
				progressRepo.EXPECT().AddPoints(gomock.Any(), userID, 45).Return(nil)
				entriesRepo.EXPECT().Aggregates(gomock.Any(), userID).Return(&repository.EntryAggregates{
					LifetimeTotal: 55,
					EntryCount:    4,
					MaxAmount:     20,
				}, nil)
				entriesRepo.EXPECT().RangeStats(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(int64(35), 2, nil)
				progressRepo.EXPECT().UnlockedTypes(gomock.Any(), userID).Return(map[string]struct{}{
					"first_entry": {},
					"streak_3":    {},
				}, nil)
			},
		},
		{
			Desc:  "error user not found",
			Req:   &service.LogEntryRequest{Amount: 20, Source: entity.SourceManual},
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := serv.LogEntry(ctx, userID, tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.WantPoints, res.EntryPoints)
			assert.Equal(t, tc.WantStreak, res.CurrentStreak)
			assert.Len(t, res.Evaluation.NewBadges, tc.WantNewBadges)
		})
	}
}

func TestLogEntryValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	progressRepo := mocks.NewMockProgressRepositoryI(ctrl)
	evaluator := service.NewProgressService(usersRepo, entriesRepo, progressRepo)
	serv := service.NewEntriesService(usersRepo, entriesRepo, progressRepo, evaluator)

	testCases := []struct {
		Desc string
		Req  *service.LogEntryRequest
	}{
		{Desc: "zero amount", Req: &service.LogEntryRequest{Amount: 0, Source: entity.SourceManual}},
		{Desc: "negative amount", Req: &service.LogEntryRequest{Amount: -5, Source: entity.SourceManual}},
		{Desc: "amount above cap", Req: &service.LogEntryRequest{Amount: 10001, Source: entity.SourceManual}},
		{Desc: "unknown source", Req: &service.LogEntryRequest{Amount: 10, Source: "telepathy"}},
		{Desc: "missing source", Req: &service.LogEntryRequest{Amount: 10}},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := serv.LogEntry(ctx, uuid.New(), tc.Req)
			assert.Error(t, err)
		})
	}
}

func TestDeleteEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	progressRepo := mocks.NewMockProgressRepositoryI(ctrl)
	evaluator := service.NewProgressService(usersRepo, entriesRepo, progressRepo)
	serv := service.NewEntriesService(usersRepo, entriesRepo, progressRepo, evaluator)

	entryID := uuid.New()
	ownerID := uuid.New()
	testCases := []struct {
		Desc         string
		UserID       uuid.UUID
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:   "success",
			UserID: ownerID,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.Entry{
					ID:     entryID,
					UserID: ownerID,
					Amount: 20,
				}, nil)
				entriesRepo.EXPECT().SoftDelete(gomock.Any(), entryID).Return(nil)
			},
		},
		{
			Desc:   "error wrong owner",
			UserID: uuid.New(),
			Error:  errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.Entry{
					ID:     entryID,
					UserID: ownerID,
					Amount: 20,
				}, nil)
			},
		},
		{
			Desc:   "error entry not found",
			UserID: ownerID,
			Error:  errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(nil, errorvalues.ErrEntryNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.DeleteEntry(ctx, entryID, tc.UserID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestListEntries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	progressRepo := mocks.NewMockProgressRepositoryI(ctrl)
	evaluator := service.NewProgressService(usersRepo, entriesRepo, progressRepo)
	serv := service.NewEntriesService(usersRepo, entriesRepo, progressRepo, evaluator)

	userID := uuid.New()
	expected := []*entity.Entry{
		{ID: uuid.New(), UserID: userID, Amount: 20, Source: entity.SourceManual},
		{ID: uuid.New(), UserID: userID, Amount: 35, Source: entity.SourceTimer},
	}
	entriesRepo.EXPECT().ListByUser(gomock.Any(), userID, 10, 0).Return(expected, nil)

	entries, err := serv.ListEntries(context.Background(), userID, service.PaginationOpts{Limit: 10, Offset: 0})
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
}
