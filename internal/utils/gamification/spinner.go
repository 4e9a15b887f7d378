package gamification

import "github.com/SscSPs/homeledger/internal/core/domain"

// Spin picks a random pending chore and a random roommate to suggest for it.
// It reports false when there is nothing to pick from.
func (e *Engine) Spin(chores []domain.Chore, roommates []domain.Roommate) (domain.SpinResult, bool) {
	pending := make([]domain.Chore, 0, len(chores))
	for _, c := range chores {
		if !c.Completed {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 || len(roommates) == 0 {
		return domain.SpinResult{}, false
	}
	return domain.SpinResult{
		Chore:    pending[e.Intn(len(pending))],
		Roommate: roommates[e.Intn(len(roommates))],
	}, true
}
