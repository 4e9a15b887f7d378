package gamification

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

const (
	heatmapDays       = 30
	weakSpotRate      = 0.5
	strengthRate      = 0.8
	almostLevelPoints = 50
)

func weekAgo(now time.Time) time.Time {
	return now.AddDate(0, 0, -7)
}

// Leaderboard ranks roommates by the points in their completion history.
// The top performer is whoever earned the most in the last seven days.
func (e *Engine) Leaderboard(chores []domain.Chore, roommates []domain.Roommate, now time.Time) domain.Leaderboard {
	since := weekAgo(now)
	entries := make([]domain.LeaderboardEntry, 0, len(roommates))

	for _, rm := range roommates {
		entry := domain.LeaderboardEntry{Roommate: rm}
		for _, c := range chores {
			for _, comp := range c.CompletionsBy(rm.RoommateID) {
				entry.TotalPoints += comp.Points
				entry.Completions++
				if !comp.CompletedAt.Before(since) {
					entry.ThisWeekPoints += comp.Points
					entry.ThisWeekCompletions++
				}
			}
		}
		entries = append(entries, entry)
	}

	board := domain.Leaderboard{Entries: entries}
	if len(entries) == 0 {
		return board
	}

	top := entries[0]
	for _, entry := range entries[1:] {
		if entry.ThisWeekPoints > top.ThisWeekPoints {
			top = entry
		}
	}

	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].TotalPoints > board.Entries[j].TotalPoints
	})
	for i := range board.Entries {
		board.Entries[i].Rank = i + 1
		if board.Entries[i].Roommate.RoommateID == top.Roommate.RoommateID {
			top.Rank = i + 1
		}
	}
	board.TopPerformer = &top
	return board
}

// Dashboard builds a roommate's personal progress view.
func (e *Engine) Dashboard(chores []domain.Chore, roommate domain.Roommate, now time.Time) domain.Dashboard {
	since := weekAgo(now)
	userID := roommate.RoommateID

	assigned, completed := 0, 0
	for _, c := range chores {
		if c.DueDate.Before(since) {
			continue
		}
		if c.IsAssignedTo(userID) {
			assigned++
		}
		if completedSince(c, userID, since) {
			completed++
		}
	}

	today := domain.StartOfDay(now, e.Location)
	heatmap := make([]domain.HeatmapDay, 0, heatmapDays)
	for i := heatmapDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		heatmap = append(heatmap, domain.HeatmapDay{
			Date:        day,
			Day:         day.Day(),
			Completions: e.choresCompletedOn(chores, userID, day),
		})
	}

	byCategory := make(map[string]int)
	thisWeek := 0
	for _, c := range chores {
		if completedSince(c, userID, since) {
			thisWeek++
		}
		if c.Category == "" {
			continue
		}
		for _, comp := range c.CompletionsBy(userID) {
			byCategory[string(c.Category)] += comp.Points
		}
	}

	badges := make([]domain.BadgeInfo, len(roommate.Badges))
	for i, id := range roommate.Badges {
		badges[i] = domain.LookupBadge(id)
	}

	return domain.Dashboard{
		Roommate:            roommate,
		CompletionRate:      percent(completed, assigned),
		CurrentStreak:       e.ComputeStreak(chores, userID, now),
		ThisWeekCompletions: thisWeek,
		PointsToNextLevel:   roommate.PointsToNextLevel(),
		LevelProgress:       roommate.LevelProgress(),
		Heatmap:             heatmap,
		PointsByCategory:    byCategory,
		Badges:              badges,
	}
}

// WeeklySummary reviews the last seven days for userID and compares them to the team.
func (e *Engine) WeeklySummary(chores []domain.Chore, roommates []domain.Roommate, roommate domain.Roommate, now time.Time) domain.WeeklySummary {
	since := weekAgo(now)
	userID := roommate.RoommateID

	doneThisWeek := make(map[string]bool)
	mine := 0
	pointsThisWeek := 0
	for _, c := range chores {
		if c.IsAssignedTo(userID) {
			mine++
		}
		for _, comp := range c.CompletionsBy(userID) {
			if !comp.CompletedAt.Before(since) {
				doneThisWeek[c.ChoreID] = true
				pointsThisWeek += comp.Points
			}
		}
	}

	var categories []domain.CategoryStat
	index := make(map[string]int)
	for _, c := range chores {
		if !c.IsAssignedTo(userID) || c.Category == "" {
			continue
		}
		cat := string(c.Category)
		i, ok := index[cat]
		if !ok {
			i = len(categories)
			index[cat] = i
			categories = append(categories, domain.CategoryStat{Category: cat})
		}
		categories[i].Total++
		if doneThisWeek[c.ChoreID] {
			categories[i].Completed++
		}
	}

	weak, strong := []string{}, []string{}
	for i := range categories {
		stat := &categories[i]
		stat.Rate = percent(stat.Completed, stat.Total)
		ratio := float64(stat.Completed) / float64(stat.Total)
		if ratio < weakSpotRate {
			weak = append(weak, stat.Category)
		}
		if ratio >= strengthRate {
			strong = append(strong, stat.Category)
		}
	}

	teamAverage := 0.0
	if len(roommates) > 0 {
		total := 0
		for _, rm := range roommates {
			for _, c := range chores {
				if completedSince(c, rm.RoommateID, since) {
					total++
				}
			}
		}
		teamAverage = float64(total) / float64(len(roommates))
	}

	rate := percent(len(doneThisWeek), mine)
	if categories == nil {
		categories = []domain.CategoryStat{}
	}
	return domain.WeeklySummary{
		Roommate:         roommate,
		CompletionRate:   rate,
		CompletedChores:  len(doneThisWeek),
		AssignedChores:   mine,
		Categories:       categories,
		WeakSpots:        weak,
		Strengths:        strong,
		Insights:         generateInsights(rate, weak, strong, len(doneThisWeek), roommate),
		PointsThisWeek:   pointsThisWeek,
		TeamAverage:      teamAverage,
		ComparisonToTeam: float64(len(doneThisWeek)) - teamAverage,
	}
}

func generateInsights(rate float64, weak, strong []string, completions int, roommate domain.Roommate) []domain.Insight {
	rounded := int(math.Round(rate))
	var insights []domain.Insight

	switch {
	case rate >= 80:
		insights = append(insights, domain.Insight{
			Kind: domain.InsightSuccess, Icon: "🎉", Title: "Excellent Performance!",
			Description: fmt.Sprintf("You completed %d%% of your chores this week. You're crushing it!", rounded),
		})
	case rate >= 50:
		insights = append(insights, domain.Insight{
			Kind: domain.InsightInfo, Icon: "👍", Title: "Good Progress",
			Description: fmt.Sprintf("You completed %d%% of your chores. There's room for improvement, but you're doing well!", rounded),
		})
	default:
		insights = append(insights, domain.Insight{
			Kind: domain.InsightWarning, Icon: "⚠️", Title: "Need to Catch Up",
			Description: fmt.Sprintf("You only completed %d%% of your chores this week. Let's get back on track!", rounded),
		})
	}

	if len(weak) > 0 {
		verb, noun := "are", "spots"
		if len(weak) == 1 {
			verb, noun = "is", "spot"
		}
		insights = append(insights, domain.Insight{
			Kind: domain.InsightWarning, Icon: "📊", Title: "Areas for Improvement",
			Description: fmt.Sprintf("%s %s your weak %s. Focus on these categories next week!", titleList(weak), verb, noun),
		})
	}

	if len(strong) > 0 {
		area := "these areas"
		if len(strong) == 1 {
			area = "this area"
		}
		insights = append(insights, domain.Insight{
			Kind: domain.InsightSuccess, Icon: "⭐", Title: "Your Strengths",
			Description: fmt.Sprintf("You're excelling at %s! Keep up the great work in %s.", titleList(strong), area),
		})
	}

	if completions > 0 {
		insights = append(insights, domain.Insight{
			Kind: domain.InsightInfo, Icon: "🔥", Title: "Consistency Tip",
			Description: "Try to complete at least one chore every day to build a streak and earn the Streak Master badge!",
		})
	}

	if toGo := roommate.PointsToNextLevel(); toGo <= almostLevelPoints {
		insights = append(insights, domain.Insight{
			Kind: domain.InsightInfo, Icon: "🎯", Title: "Almost There!",
			Description: fmt.Sprintf("You're only %d points away from level %d! Keep going!", toGo, roommate.Level+1),
		})
	}
	return insights
}

func titleList(categories []string) string {
	titled := make([]string, len(categories))
	for i, c := range categories {
		if c == "" {
			continue
		}
		titled[i] = strings.ToUpper(c[:1]) + c[1:]
	}
	return strings.Join(titled, ", ")
}

func completedSince(c domain.Chore, userID string, since time.Time) bool {
	for _, comp := range c.CompletionsBy(userID) {
		if !comp.CompletedAt.Before(since) {
			return true
		}
	}
	return false
}

// percent is part/whole*100, capped at 100, and 0 for an empty whole.
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Min(100, float64(part)/float64(whole)*100)
}
