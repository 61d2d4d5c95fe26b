package leaderboard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pushlog/pushlog/internal/leaderboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrderAndTieBreak(t *testing.T) {
	low := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	high := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	mid := uuid.MustParse("55555555-5555-5555-5555-555555555555")
	rows := []leaderboard.Row{
		{UserID: high, PeriodTotal: 200},
		{UserID: low, PeriodTotal: 200},
		{UserID: mid, PeriodTotal: 450},
	}
	view := leaderboard.Rank(rows, low, 1, 10)
	require.Len(t, view.Rows, 3)
	assert.Equal(t, mid, view.Rows[0].UserID)
	// equal totals: lower uuid first
	assert.Equal(t, low, view.Rows[1].UserID)
	assert.Equal(t, high, view.Rows[2].UserID)
	for i, row := range view.Rows {
		assert.Equal(t, i+1, row.Rank)
	}
	require.NotNil(t, view.Requester)
	assert.Equal(t, 2, view.Requester.Rank)
	assert.Equal(t, 3, view.Total)
}

func TestRankRequesterOutsidePage(t *testing.T) {
	rows := make([]leaderboard.Row, 0, 25)
	var last uuid.UUID
	for i := 0; i < 25; i++ {
		id := uuid.New()
		rows = append(rows, leaderboard.Row{UserID: id, PeriodTotal: int64(1000 - i)})
		last = id
	}
	view := leaderboard.Rank(rows, last, 1, 10)
	assert.Len(t, view.Rows, 10)
	require.NotNil(t, view.Requester)
	assert.Equal(t, 25, view.Requester.Rank)
	assert.Equal(t, 25, view.Total)
}

func TestRankDeterministicAcrossCalls(t *testing.T) {
	rows := []leaderboard.Row{
		{UserID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000"), PeriodTotal: 10},
		{UserID: uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000"), PeriodTotal: 10},
		{UserID: uuid.MustParse("cccccccc-0000-0000-0000-000000000000"), PeriodTotal: 10},
	}
	first := leaderboard.Rank(rows, uuid.Nil, 1, 10)
	second := leaderboard.Rank(rows, uuid.Nil, 1, 10)
	assert.Equal(t, first, second)

	seen := make(map[int]struct{})
	for _, row := range first.Rows {
		_, dup := seen[row.Rank]
		assert.False(t, dup, "rank %d duplicated", row.Rank)
		seen[row.Rank] = struct{}{}
	}
}

func TestRankPastLastPage(t *testing.T) {
	rows := []leaderboard.Row{{UserID: uuid.New(), PeriodTotal: 5}}
	view := leaderboard.Rank(rows, uuid.Nil, 4, 10)
	assert.Empty(t, view.Rows)
	assert.Equal(t, 1, view.Total)
	assert.Nil(t, view.Requester)
}

func TestPercentOfGoal(t *testing.T) {
	assert.Zero(t, leaderboard.PercentOfGoal(100, 0))
	assert.Zero(t, leaderboard.PercentOfGoal(100, -5))
	assert.InDelta(t, 50.0, leaderboard.PercentOfGoal(50, 100), 0.001)
	assert.InDelta(t, 150.0, leaderboard.PercentOfGoal(150, 100), 0.001)
}
