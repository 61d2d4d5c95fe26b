package progress_test

import (
	"testing"

	"github.com/pushlog/pushlog/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestPointsForEntry(t *testing.T) {
	testCases := []struct {
		Desc       string
		Amount     int
		FirstOfDay bool
		StreakDays int
		Expected   int
	}{
		{
			Desc:       "plain repeat entry",
			Amount:     10,
			StreakDays: 1,
			Expected:   10,
		},
		{
			Desc:       "first of day with five day streak",
			Amount:     10,
			FirstOfDay: true,
			StreakDays: 5,
			Expected:   10 + 50 + 10*5,
		},
		{
			Desc:       "streak of one earns no streak bonus",
			Amount:     20,
			FirstOfDay: true,
			StreakDays: 1,
			Expected:   70,
		},
		{
			Desc:       "streak bonus capped at thirty days",
			Amount:     5,
			StreakDays: 365,
			Expected:   5 + 10*30,
		},
		{
			Desc:       "second entry of streak day",
			Amount:     15,
			StreakDays: 2,
			Expected:   15 + 20,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got := progress.PointsForEntry(tc.Amount, tc.FirstOfDay, tc.StreakDays)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, progress.LevelForPoints(0))
	assert.Equal(t, 1, progress.LevelForPoints(99))
	assert.Equal(t, 2, progress.LevelForPoints(100))
	assert.Equal(t, 2, progress.LevelForPoints(299))
	assert.Equal(t, 3, progress.LevelForPoints(300))
	assert.Equal(t, 5, progress.LevelForPoints(1000))

	// monotonic non-decreasing over a dense sweep
	prev := 0
	for points := int64(0); points <= 30000; points += 50 {
		level := progress.LevelForPoints(points)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestTitleForTotal(t *testing.T) {
	assert.Equal(t, "Rookie", progress.TitleForTotal(0))
	assert.Equal(t, "Rookie", progress.TitleForTotal(99))
	assert.Equal(t, "Beginner", progress.TitleForTotal(100))
	assert.Equal(t, "Grinder", progress.TitleForTotal(2499))
	assert.Equal(t, "Athlete", progress.TitleForTotal(2500))
	assert.Equal(t, "Titan", progress.TitleForTotal(1_000_000))
}
