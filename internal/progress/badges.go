package progress

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

var rarityPoints = map[Rarity]int{
	RarityCommon:    100,
	RarityUncommon:  250,
	RarityRare:      500,
	RarityEpic:      1000,
	RarityLegendary: 2500,
}

// Snapshot is the ephemeral aggregate of a user's stats the evaluator
// works on. It is computed on demand and never persisted.
type Snapshot struct {
	LifetimeTotal   int64
	EntryCount      int
	MaxEntryAmount  int
	TodayTotal      int
	DistinctDays    int
	CurrentStreak   int
	LongestStreak   int
	TimerEntryCount int
}

type Definition struct {
	Type        string
	Name        string
	Description string
	Rarity      Rarity
	Check       func(Snapshot) bool
}

func (d Definition) Points() int {
	return rarityPoints[d.Rarity]
}

// registry is fixed at process start and evaluated in order.
var registry = []Definition{
	{
		Type: "first_entry", Name: "First Rep", Rarity: RarityCommon,
		Description: "Log your first activity entry",
		Check:       func(s Snapshot) bool { return s.EntryCount >= 1 },
	},
	{
		Type: "century_total", Name: "Century", Rarity: RarityCommon,
		Description: "Reach 100 lifetime pushups",
		Check:       func(s Snapshot) bool { return s.LifetimeTotal >= 100 },
	},
	{
		Type: "half_k_total", Name: "Halfway to a Thousand", Rarity: RarityUncommon,
		Description: "Reach 500 lifetime pushups",
		Check:       func(s Snapshot) bool { return s.LifetimeTotal >= 500 },
	},
	{
		Type: "thousand_total", Name: "Club 1000", Rarity: RarityRare,
		Description: "Reach 1000 lifetime pushups",
		Check:       func(s Snapshot) bool { return s.LifetimeTotal >= 1000 },
	},
	{
		Type: "ten_k_total", Name: "Ten Thousand Strong", Rarity: RarityEpic,
		Description: "Reach 10000 lifetime pushups",
		Check:       func(s Snapshot) bool { return s.LifetimeTotal >= 10000 },
	},
	{
		Type: "fifty_k_total", Name: "Iron Will", Rarity: RarityLegendary,
		Description: "Reach 50000 lifetime pushups",
		Check:       func(s Snapshot) bool { return s.LifetimeTotal >= 50000 },
	},
	{
		Type: "streak_3", Name: "Warming Up", Rarity: RarityCommon,
		Description: "Keep a 3-day streak",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 3 || s.LongestStreak >= 3 },
	},
	{
		Type: "streak_7", Name: "Full Week", Rarity: RarityUncommon,
		Description: "Keep a 7-day streak",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 7 || s.LongestStreak >= 7 },
	},
	{
		Type: "streak_30", Name: "Habit Formed", Rarity: RarityRare,
		Description: "Keep a 30-day streak",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 30 || s.LongestStreak >= 30 },
	},
	{
		Type: "streak_100", Name: "Unbreakable", Rarity: RarityLegendary,
		Description: "Keep a 100-day streak",
		Check:       func(s Snapshot) bool { return s.CurrentStreak >= 100 || s.LongestStreak >= 100 },
	},
	{
		Type: "big_set", Name: "Big Set", Rarity: RarityUncommon,
		Description: "Log 50 or more pushups in one entry",
		Check:       func(s Snapshot) bool { return s.MaxEntryAmount >= 50 },
	},
	{
		Type: "monster_set", Name: "Monster Set", Rarity: RarityEpic,
		Description: "Log 100 or more pushups in one entry",
		Check:       func(s Snapshot) bool { return s.MaxEntryAmount >= 100 },
	},
	{
		Type: "daily_hundred", Name: "Hundred a Day", Rarity: RarityRare,
		Description: "Log 100 pushups within a single day",
		Check:       func(s Snapshot) bool { return s.TodayTotal >= 100 },
	},
	{
		Type: "thirty_days_active", Name: "Regular Customer", Rarity: RarityUncommon,
		Description: "Be active on 30 distinct days",
		Check:       func(s Snapshot) bool { return s.DistinctDays >= 30 },
	},
	{
		Type: "timer_user", Name: "Deep Worker", Rarity: RarityCommon,
		Description: "Submit a focus-timer session",
		Check:       func(s Snapshot) bool { return s.TimerEntryCount >= 1 },
	},
	{
		Type: "timer_regular", Name: "Pomodoro Pro", Rarity: RarityRare,
		Description: "Submit 25 focus-timer sessions",
		Check:       func(s Snapshot) bool { return s.TimerEntryCount >= 25 },
	},
}

// Registry returns the ordered badge definitions.
func Registry() []Definition {
	return registry
}

// Evaluate reports badges whose predicate holds on snap and that are not
// yet unlocked, plus the rarity points they award together. Pure and
// idempotent: feeding the result back into unlocked yields nothing new.
func Evaluate(snap Snapshot, unlocked map[string]struct{}) ([]Definition, int) {
	var newly []Definition
	points := 0
	for _, def := range registry {
		if _, ok := unlocked[def.Type]; ok {
			continue
		}
		if def.Check(snap) {
			newly = append(newly, def)
			points += def.Points()
		}
	}
	return newly, points
}
