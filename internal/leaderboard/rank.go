package leaderboard

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Row struct {
	UserID      uuid.UUID `json:"uid"`
	PeriodTotal int64     `json:"period_total"`
}

type Ranked struct {
	Row
	Rank int `json:"rank"`
}

// View is one page of the full ranking. Requester is resolved even when
// the requesting user falls outside the page; nil if they have no row.
type View struct {
	Rows      []Ranked `json:"rows"`
	Requester *Ranked  `json:"requester,omitempty"`
	Total     int      `json:"total"`
}

// Rank orders rows by period total descending with ties broken by
// ascending user id, assigns gapless 1-based ranks and slices out the
// requested page. The order is deterministic for identical input.
func Rank(rows []Row, requester uuid.UUID, page, limit int) View {
	ranked := make([]Ranked, len(rows))
	for i, row := range rows {
		ranked[i] = Ranked{Row: row}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PeriodTotal != ranked[j].PeriodTotal {
			return ranked[i].PeriodTotal > ranked[j].PeriodTotal
		}
		return strings.Compare(ranked[i].UserID.String(), ranked[j].UserID.String()) < 0
	})
	view := View{Total: len(ranked)}
	for i := range ranked {
		ranked[i].Rank = i + 1
		if ranked[i].UserID == requester {
			r := ranked[i]
			view.Requester = &r
		}
	}
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(ranked) {
		view.Rows = []Ranked{}
		return view
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	view.Rows = ranked[offset:end]
	return view
}

// PercentOfGoal reports progress toward a period goal, uncapped.
// A non-positive goal means no goal is set and reads as zero.
func PercentOfGoal(total int64, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(total) / float64(goal) * 100
}
