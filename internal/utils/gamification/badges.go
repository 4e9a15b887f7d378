package gamification

import (
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

const (
	plantWhispererThreshold = 3
	earlyBirdThreshold      = 5
	streakMasterDays        = 7
)

// EvaluateBadges returns the badges roommate newly qualifies for, in unlock
// order. Badges already held are never returned again.
func (e *Engine) EvaluateBadges(roommate domain.Roommate, chores []domain.Chore, now time.Time) []domain.BadgeID {
	var unlocked []domain.BadgeID
	grant := func(id domain.BadgeID, ok bool) {
		if ok && !roommate.HasBadge(id) {
			unlocked = append(unlocked, id)
		}
	}

	grant(domain.BadgePlantWhisperer, plantCompletions(chores, roommate.RoommateID) >= plantWhispererThreshold)
	grant(domain.BadgeEarlyBird, earlyCompletions(chores, roommate.RoommateID) >= earlyBirdThreshold)
	grant(domain.BadgeStreakMaster, e.ComputeStreak(chores, roommate.RoommateID, now) >= streakMasterDays)

	return unlocked
}

func plantCompletions(chores []domain.Chore, userID string) int {
	count := 0
	for _, c := range chores {
		if c.Category != domain.CategoryPlants {
			continue
		}
		count += len(c.CompletionsBy(userID))
	}
	return count
}

// earlyCompletions counts completions recorded before the due date in force at
// the time. Completions without a snapshot fall back to the chore's due date.
func earlyCompletions(chores []domain.Chore, userID string) int {
	count := 0
	for _, c := range chores {
		for _, comp := range c.CompletionsBy(userID) {
			due := comp.DueAt
			if due.IsZero() {
				due = c.DueDate
			}
			if comp.CompletedAt.Before(due) {
				count++
			}
		}
	}
	return count
}
