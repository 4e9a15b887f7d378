package domain

import "time"

// RoommateUpdate describes what a completion did to the acting roommate.
type RoommateUpdate struct {
	Roommate      Roommate  `json:"roommate"`
	PointsAwarded int       `json:"pointsAwarded"`
	LeveledUp     bool      `json:"leveledUp"`
	PreviousLevel int       `json:"previousLevel"`
	NewBadges     []BadgeID `json:"newBadges"`
}

// ChoreToggle is the outcome of toggling a chore's completion.
type ChoreToggle struct {
	Chore Chore `json:"chore"`
	// Update is nil when the chore was toggled back to pending.
	Update *RoommateUpdate `json:"update,omitempty"`
}

// FrequencyTab and StatusTab select which chores a list shows.
type (
	FrequencyTab string
	StatusTab    string
)

const (
	FrequencyAll     FrequencyTab = "all"
	FrequencyDaily   FrequencyTab = "daily"
	FrequencyWeekly  FrequencyTab = "weekly"
	FrequencyMonthly FrequencyTab = "monthly"
	FrequencyOnce    FrequencyTab = "once"

	StatusAll     StatusTab = "all"
	StatusMine    StatusTab = "mine"
	StatusOverdue StatusTab = "overdue"
)

// ChoreFilter is the composed frequency and status filter.
type ChoreFilter struct {
	Frequency FrequencyTab
	Status    StatusTab
	UserID    string
}

// LeaderboardEntry is one roommate's standing.
type LeaderboardEntry struct {
	Rank                int      `json:"rank"`
	Roommate            Roommate `json:"roommate"`
	TotalPoints         int      `json:"totalPoints"`
	Completions         int      `json:"completions"`
	ThisWeekPoints      int      `json:"thisWeekPoints"`
	ThisWeekCompletions int      `json:"thisWeekCompletions"`
}

// Leaderboard ranks roommates by total points.
type Leaderboard struct {
	Entries      []LeaderboardEntry `json:"entries"`
	TopPerformer *LeaderboardEntry  `json:"topPerformer,omitempty"` // by this week's points
}

// HeatmapDay counts chores completed on one day.
type HeatmapDay struct {
	Date        time.Time `json:"date"`
	Day         int       `json:"day"`
	Completions int       `json:"completions"`
}

// Dashboard is a roommate's personal progress view.
type Dashboard struct {
	Roommate       Roommate `json:"roommate"`
	CompletionRate float64  `json:"completionRate"` // percent
	CurrentStreak  int      `json:"currentStreak"`
	// ThisWeekCompletions counts chores completed at least once in the last seven days.
	ThisWeekCompletions int            `json:"thisWeekCompletions"`
	PointsToNextLevel   int            `json:"pointsToNextLevel"`
	LevelProgress       int            `json:"levelProgress"`
	Heatmap             []HeatmapDay   `json:"heatmap"`
	PointsByCategory    map[string]int `json:"pointsByCategory"`
	Badges              []BadgeInfo    `json:"badges"`
}

// CategoryStat is completed versus assigned chores in one category.
type CategoryStat struct {
	Category  string  `json:"category"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"` // percent
}

// InsightKind is the tone of a generated insight.
type InsightKind string

const (
	InsightSuccess InsightKind = "success"
	InsightWarning InsightKind = "warning"
	InsightInfo    InsightKind = "info"
)

// Insight is a short generated remark about a roommate's week.
type Insight struct {
	Kind        InsightKind `json:"kind"`
	Icon        string      `json:"icon"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// WeeklySummary reviews a roommate's last seven days.
type WeeklySummary struct {
	Roommate         Roommate       `json:"roommate"`
	CompletionRate   float64        `json:"completionRate"`
	CompletedChores  int            `json:"completedChores"`
	AssignedChores   int            `json:"assignedChores"`
	Categories       []CategoryStat `json:"categories"`
	WeakSpots        []string       `json:"weakSpots"`
	Strengths        []string       `json:"strengths"`
	Insights         []Insight      `json:"insights"`
	PointsThisWeek   int            `json:"pointsThisWeek"`
	TeamAverage      float64        `json:"teamAverage"`
	ComparisonToTeam float64        `json:"comparisonToTeam"`
}

// SpinResult is a random chore and roommate pairing suggestion.
type SpinResult struct {
	Chore    Chore    `json:"chore"`
	Roommate Roommate `json:"roommate"`
}
