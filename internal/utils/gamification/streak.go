package gamification

import (
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// MaxStreakDays bounds how far back a streak is counted.
const MaxStreakDays = 30

// ComputeStreak counts consecutive days, starting today and walking back at
// most MaxStreakDays, on which userID completed at least one chore.
func (e *Engine) ComputeStreak(chores []domain.Chore, userID string, now time.Time) int {
	days := e.completionDays(chores, userID)
	today := domain.StartOfDay(now, e.Location)

	streak := 0
	for i := 0; i < MaxStreakDays; i++ {
		if !days[today.AddDate(0, 0, -i)] {
			break
		}
		streak++
	}
	return streak
}

// completionDays is the set of local days on which userID completed something.
func (e *Engine) completionDays(chores []domain.Chore, userID string) map[time.Time]bool {
	days := make(map[time.Time]bool)
	for _, c := range chores {
		for _, comp := range c.CompletionsBy(userID) {
			days[domain.StartOfDay(comp.CompletedAt, e.Location)] = true
		}
	}
	return days
}

// choresCompletedOn counts chores with at least one completion by userID on day.
func (e *Engine) choresCompletedOn(chores []domain.Chore, userID string, day time.Time) int {
	count := 0
	for _, c := range chores {
		for _, comp := range c.CompletionsBy(userID) {
			if domain.SameDay(comp.CompletedAt, day, e.Location) {
				count++
				break
			}
		}
	}
	return count
}
