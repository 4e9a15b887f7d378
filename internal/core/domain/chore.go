package domain

import (
	"slices"
	"time"
)

// ChoreFrequency is how often a chore repeats.
type ChoreFrequency string

const (
	ChoreOnce    ChoreFrequency = "once"
	ChoreDaily   ChoreFrequency = "daily"
	ChoreWeekly  ChoreFrequency = "weekly"
	ChoreMonthly ChoreFrequency = "monthly"
)

// IsValid reports whether f is a known frequency.
func (f ChoreFrequency) IsValid() bool {
	switch f {
	case ChoreOnce, ChoreDaily, ChoreWeekly, ChoreMonthly:
		return true
	}
	return false
}

// ChoreCategory groups chores for stats and badges.
type ChoreCategory string

const (
	CategoryCleaning ChoreCategory = "cleaning"
	CategoryKitchen  ChoreCategory = "kitchen"
	CategoryPlants   ChoreCategory = "plants"
	CategoryShopping ChoreCategory = "shopping"
	CategoryLaundry  ChoreCategory = "laundry"
	CategoryOther    ChoreCategory = "other"
)

// DefaultChorePoints and DefaultChoreCategory apply when a new chore leaves them unset.
const (
	DefaultChorePoints   = 10
	DefaultChoreCategory = CategoryCleaning
)

// ChoreCompletion records one time a chore was done.
type ChoreCompletion struct {
	CompletionID string    `json:"completionID"`
	CompletedBy  string    `json:"completedBy"`
	CompletedAt  time.Time `json:"completedAt"`
	Points       int       `json:"points"`
	// DueAt is the chore's due date when this completion was recorded.
	DueAt time.Time `json:"dueAt"`
}

// ChoreReaction is an emoji left on a chore. At most one per (UserID, Emoji).
type ChoreReaction struct {
	ReactionID string `json:"reactionID"`
	UserID     string `json:"userID"`
	Emoji      string `json:"emoji"`
}

// ChoreComment is a note left on a chore.
type ChoreComment struct {
	CommentID string    `json:"commentID"`
	UserID    string    `json:"userID"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Chore is a household task. For rotating chores Assignees holds only the
// roommate whose turn it is; RotationOrder never changes after creation.
type Chore struct {
	ChoreID       string            `json:"choreID"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Frequency     ChoreFrequency    `json:"frequency"`
	DueDate       time.Time         `json:"dueDate"`
	Assignees     []string          `json:"assignees"`
	Points        int               `json:"points"`
	Completed     bool              `json:"completed"`
	Completions   []ChoreCompletion `json:"completions"`
	RotationOrder []string          `json:"rotationOrder,omitempty"`
	Reactions     []ChoreReaction   `json:"reactions"`
	Comments      []ChoreComment    `json:"comments"`
	Category      ChoreCategory     `json:"category,omitempty"`
}

// IsRecurring reports whether the chore repeats.
func (c Chore) IsRecurring() bool {
	return c.Frequency != ChoreOnce
}

// Rotates reports whether completing the chore hands it to the next roommate.
func (c Chore) Rotates() bool {
	return c.IsRecurring() && len(c.RotationOrder) > 1
}

// IsAssignedTo reports whether userID is a current assignee.
func (c Chore) IsAssignedTo(userID string) bool {
	for _, a := range c.Assignees {
		if a == userID {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the due day is before today and the chore is not done.
func (c Chore) IsOverdue(now time.Time, loc *time.Location) bool {
	return !c.Completed && StartOfDay(c.DueDate, loc).Before(StartOfDay(now, loc))
}

// CompletionsBy returns the completions recorded by userID.
func (c Chore) CompletionsBy(userID string) []ChoreCompletion {
	var out []ChoreCompletion
	for _, comp := range c.Completions {
		if comp.CompletedBy == userID {
			out = append(out, comp)
		}
	}
	return out
}

// Clone returns a deep copy so callers can modify slices without aliasing stored state.
func (c Chore) Clone() Chore {
	out := c
	out.Assignees = slices.Clone(c.Assignees)
	out.Completions = slices.Clone(c.Completions)
	out.RotationOrder = slices.Clone(c.RotationOrder)
	out.Reactions = slices.Clone(c.Reactions)
	out.Comments = slices.Clone(c.Comments)
	return out
}
