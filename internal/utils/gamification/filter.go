package gamification

import (
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// Filter applies the frequency tab and then the status tab. Empty tabs mean "all".
func (e *Engine) Filter(chores []domain.Chore, filter domain.ChoreFilter, now time.Time) []domain.Chore {
	out := make([]domain.Chore, 0, len(chores))
	for _, c := range chores {
		if filter.Frequency != "" && filter.Frequency != domain.FrequencyAll && string(c.Frequency) != string(filter.Frequency) {
			continue
		}
		switch filter.Status {
		case domain.StatusMine:
			if !c.IsAssignedTo(filter.UserID) {
				continue
			}
		case domain.StatusOverdue:
			if !c.IsOverdue(now, e.Location) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// PendingCounts counts chores not yet completed per frequency.
func PendingCounts(chores []domain.Chore) map[domain.ChoreFrequency]int {
	counts := map[domain.ChoreFrequency]int{
		domain.ChoreOnce:    0,
		domain.ChoreDaily:   0,
		domain.ChoreWeekly:  0,
		domain.ChoreMonthly: 0,
	}
	for _, c := range chores {
		if !c.Completed {
			counts[c.Frequency]++
		}
	}
	return counts
}
