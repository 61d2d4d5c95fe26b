package progress

import (
	"sort"
	"time"
)

type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// dayIndex collapses a timestamp to its civil day in loc. The day is
// re-anchored in UTC so arithmetic stays immune to DST offsets.
func dayIndex(ts time.Time, loc *time.Location) int64 {
	local := ts.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// CountDistinctDays reports how many distinct civil days in loc have at
// least one timestamp.
func CountDistinctDays(stamps []time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	seen := make(map[int64]struct{}, len(stamps))
	for _, ts := range stamps {
		seen[dayIndex(ts, loc)] = struct{}{}
	}
	return len(seen)
}

// CalcStreak reduces entry timestamps to distinct civil days and counts
// consecutive runs. Current is zero unless the most recent day is today
// or yesterday relative to now. Multiple entries on one day count once.
func CalcStreak(stamps []time.Time, loc *time.Location, now time.Time) Streak {
	if len(stamps) == 0 {
		return Streak{}
	}
	if loc == nil {
		loc = time.UTC
	}
	seen := make(map[int64]struct{}, len(stamps))
	for _, ts := range stamps {
		seen[dayIndex(ts, loc)] = struct{}{}
	}
	days := make([]int64, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] > days[j] })

	today := dayIndex(now, loc)
	current := 0
	if days[0] == today || days[0] == today-1 {
		current = 1
		for i := 1; i < len(days); i++ {
			if days[i] != days[i-1]-1 {
				break
			}
			current++
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]-1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if current > longest {
		longest = current
	}
	return Streak{Current: current, Longest: longest}
}
