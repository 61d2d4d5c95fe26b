package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pushlog/pushlog/internal/leaderboard"
	"github.com/pushlog/pushlog/internal/repository/mocks"
	"github.com/pushlog/pushlog/internal/service"
	"github.com/pushlog/pushlog/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestLeaderboardGet(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	serv := service.NewLeaderboardService(usersRepo, entriesRepo)

	requester := uuid.New()
	rival := uuid.New()
	rows := []leaderboard.Row{
		{UserID: requester, PeriodTotal: 120},
		{UserID: rival, PeriodTotal: 300},
	}

	t.Run("weekly standings with goal percent", func(t *testing.T) {
		entriesRepo.EXPECT().TotalsSince(gomock.Any(), gomock.Any()).Return(rows, nil)
		usersRepo.EXPECT().FindByID(gomock.Any(), requester).Return(&entity.User{
			ID:         requester,
			Name:       "test_user",
			Timezone:   "UTC",
			WeeklyGoal: 240,
		}, nil)

		view, err := serv.Get(context.Background(), requester, service.PeriodWeek, service.PaginationOpts{Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, service.PeriodWeek, view.Period)
		assert.Len(t, view.Rows, 2)
		assert.Equal(t, rival, view.Rows[0].UserID)
		assert.Equal(t, 1, view.Rows[0].Rank)
		assert.Equal(t, requester, view.Rows[1].UserID)
		assert.Equal(t, 2, view.Rows[1].Rank)
		assert.NotNil(t, view.Requester)
		assert.Equal(t, 2, view.Requester.Rank)
		assert.InDelta(t, 50.0, view.RequesterPercent, 0.001)
	})

	t.Run("all-time standings skip the goal lookup", func(t *testing.T) {
		entriesRepo.EXPECT().AllTimeTotals(gomock.Any()).Return(rows, nil)

		view, err := serv.Get(context.Background(), requester, service.PeriodAllTime, service.PaginationOpts{Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, service.PeriodAllTime, view.Period)
		assert.Len(t, view.Rows, 2)
		assert.Zero(t, view.RequesterPercent)
	})

	t.Run("requester without entries this week", func(t *testing.T) {
		entriesRepo.EXPECT().TotalsSince(gomock.Any(), gomock.Any()).Return([]leaderboard.Row{
			{UserID: rival, PeriodTotal: 300},
		}, nil)

		view, err := serv.Get(context.Background(), requester, service.PeriodWeek, service.PaginationOpts{Limit: 10})
		assert.NoError(t, err)
		assert.Nil(t, view.Requester)
		assert.Zero(t, view.RequesterPercent)
	})

	t.Run("error unknown period", func(t *testing.T) {
		_, err := serv.Get(context.Background(), requester, "fortnight", service.PaginationOpts{Limit: 10})
		assert.Error(t, err)
	})
}
