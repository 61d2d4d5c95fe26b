package progress

const (
	firstEntryBonus   = 50
	streakBonusPerDay = 10
	streakBonusCapDay = 30
)

// levelThresholds[i] is the cumulative point total at which level i+1 begins.
var levelThresholds = []int64{
	0, 100, 300, 600, 1000,
	1500, 2100, 2800, 3600, 4500,
	5500, 6600, 7800, 9100, 10500,
	12500, 15000, 18000, 21500, 25500,
}

type titleRank struct {
	total int64
	title string
}

// titleRanks maps cumulative lifetime amount to a title.
var titleRanks = []titleRank{
	{0, "Rookie"},
	{100, "Beginner"},
	{500, "Regular"},
	{1000, "Grinder"},
	{2500, "Athlete"},
	{5000, "Beast"},
	{10000, "Machine"},
	{25000, "Legend"},
	{50000, "Titan"},
}

// PointsForEntry scores one logged entry. Streak bonus applies from the
// second consecutive day on and is capped at 30 days.
func PointsForEntry(amount int, firstOfDay bool, streakDays int) int {
	points := amount
	if firstOfDay {
		points += firstEntryBonus
	}
	if streakDays > 1 {
		capped := streakDays
		if capped > streakBonusCapDay {
			capped = streakBonusCapDay
		}
		points += streakBonusPerDay * capped
	}
	return points
}

// LevelForPoints returns 1 + index of the last threshold <= points.
func LevelForPoints(points int64) int {
	level := 1
	for i, threshold := range levelThresholds {
		if points < threshold {
			break
		}
		level = i + 1
	}
	return level
}

func TitleForTotal(total int64) string {
	title := titleRanks[0].title
	for _, rank := range titleRanks {
		if total < rank.total {
			break
		}
		title = rank.title
	}
	return title
}
