package dto

import (
	"fmt"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// CreateRoommateRequest defines the data needed to add a roommate.
type CreateRoommateRequest struct {
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
	Color  string `json:"color" binding:"omitempty,hexcolor"`
}

// CreateChoreRequest defines a new chore.
type CreateChoreRequest struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Frequency      domain.ChoreFrequency `json:"frequency"`
	DueDate        string                `json:"dueDate"`
	Assignees      []string              `json:"assignees"`
	Points         int                   `json:"points"`
	Category       domain.ChoreCategory  `json:"category" binding:"omitempty,oneof=cleaning kitchen plants shopping laundry other"`
	EnableRotation bool                  `json:"enableRotation"`
}

// ListChoresParams holds the frequency and status tabs.
type ListChoresParams struct {
	Frequency domain.FrequencyTab `form:"frequency" binding:"omitempty,oneof=all daily weekly monthly once"`
	Status    domain.StatusTab    `form:"status" binding:"omitempty,oneof=all mine overdue"`
}

// AddReactionRequest toggles an emoji on a chore.
type AddReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

// AddCommentRequest appends a comment to a chore.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// AssignChoreRequest hands a chore to one roommate.
type AssignChoreRequest struct {
	RoommateID string `json:"roommateID" binding:"required"`
}

// ToggleChoreResponse is the chore after toggling plus the notifications it produced.
type ToggleChoreResponse struct {
	Chore         domain.Chore           `json:"chore"`
	Update        *domain.RoommateUpdate `json:"update,omitempty"`
	Notifications []string               `json:"notifications"`
}

// ToToggleChoreResponse renders the points, level and badge messages for a toggle.
func ToToggleChoreResponse(t domain.ChoreToggle) ToggleChoreResponse {
	res := ToggleChoreResponse{Chore: t.Chore, Update: t.Update, Notifications: []string{}}
	if t.Update == nil {
		return res
	}
	res.Notifications = append(res.Notifications, fmt.Sprintf("+%d points!", t.Update.PointsAwarded))
	if t.Update.LeveledUp {
		res.Notifications = append(res.Notifications, fmt.Sprintf("Level up! You reached level %d", t.Update.Roommate.Level))
	}
	for _, id := range t.Update.NewBadges {
		badge := domain.LookupBadge(id)
		res.Notifications = append(res.Notifications, fmt.Sprintf("Badge unlocked: %s %s", badge.Emoji, badge.Label))
	}
	return res
}

// PendingCountsResponse holds the counts shown on the frequency tabs.
type PendingCountsResponse struct {
	Counts map[domain.ChoreFrequency]int `json:"counts"`
}
