// Package gamification holds the pure chore rules: completion effects, rotation,
// badges, streaks, filters and the derived statistics views.
package gamification

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/google/uuid"
)

// Engine applies chore state transitions. It holds no chore state itself.
type Engine struct {
	Location *time.Location
	NewID    func() string
	Intn     func(n int) int
}

// NewEngine returns an engine computing calendar days in loc.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		Location: loc,
		NewID:    uuid.NewString,
		Intn:     rand.IntN,
	}
}

// ChoreDraft is the user input for a new chore.
type ChoreDraft struct {
	Title          string
	Description    string
	Frequency      domain.ChoreFrequency
	DueDate        time.Time
	Assignees      []string
	Points         int
	Category       domain.ChoreCategory
	EnableRotation bool
}

// NewChore validates a draft and builds the chore. With rotation enabled on a
// recurring chore with several assignees, the assignees become the rotation
// order and only the first of them is assigned.
func (e *Engine) NewChore(draft ChoreDraft) (domain.Chore, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return domain.Chore{}, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "title", "title is required")
	}
	if len(draft.Assignees) == 0 {
		return domain.Chore{}, apperrors.NewValidationError(apperrors.CodeNoParticipants, "assignees", "assign the chore to at least one roommate")
	}
	if draft.DueDate.IsZero() {
		return domain.Chore{}, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "dueDate", "due date is required")
	}
	frequency := draft.Frequency
	if frequency == "" {
		frequency = domain.ChoreOnce
	}
	if !frequency.IsValid() {
		return domain.Chore{}, apperrors.NewValidationError(apperrors.CodeInvalidFrequency, "frequency", "frequency must be once, daily, weekly or monthly")
	}
	points := draft.Points
	if points == 0 {
		points = domain.DefaultChorePoints
	}
	if points < 0 {
		return domain.Chore{}, apperrors.NewValidationError(apperrors.CodeInvalidAmount, "points", "points must be positive")
	}
	category := draft.Category
	if category == "" {
		category = domain.DefaultChoreCategory
	}

	chore := domain.Chore{
		ChoreID:     e.NewID(),
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Frequency:   frequency,
		DueDate:     draft.DueDate,
		Assignees:   append([]string(nil), draft.Assignees...),
		Points:      points,
		Completions: []domain.ChoreCompletion{},
		Reactions:   []domain.ChoreReaction{},
		Comments:    []domain.ChoreComment{},
		Category:    category,
	}
	if draft.EnableRotation && frequency != domain.ChoreOnce && len(draft.Assignees) > 1 {
		chore.RotationOrder = append([]string(nil), draft.Assignees...)
		chore.Assignees = []string{draft.Assignees[0]}
	}
	return chore, nil
}

// ToggleComplete flips a chore's completion on behalf of actor.
//
// Completing appends a completion, credits the chore's points, recomputes the
// level and unlocks badges against the updated history. A recurring chore with
// more than one roommate in its rotation is handed to the next roommate, its due
// date moves forward one period and it stays pending.
//
// Toggling a completed chore back only clears the flag: the completion record,
// points and badges stay.
func (e *Engine) ToggleComplete(chore domain.Chore, actor domain.Roommate, allChores []domain.Chore, now time.Time) domain.ChoreToggle {
	updated := chore.Clone()
	if chore.Completed {
		updated.Completed = false
		return domain.ChoreToggle{Chore: updated}
	}

	updated.Completions = append(updated.Completions, domain.ChoreCompletion{
		CompletionID: e.NewID(),
		CompletedBy:  actor.RoommateID,
		CompletedAt:  now,
		Points:       chore.Points,
		DueAt:        chore.DueDate,
	})

	if chore.Rotates() {
		updated.Assignees = []string{nextInRotation(chore)}
		updated.DueDate = advanceDueDate(chore.DueDate, chore.Frequency)
		updated.Completed = false
	} else {
		updated.Completed = true
	}

	previousLevel := actor.Level
	credited := actor
	credited.Badges = append([]domain.BadgeID(nil), actor.Badges...)
	credited.TotalPoints = actor.TotalPoints + chore.Points
	credited.Level = domain.LevelFor(credited.TotalPoints)

	history := replaceChore(allChores, updated)
	newBadges := e.EvaluateBadges(credited, history, now)
	credited.Badges = append(credited.Badges, newBadges...)

	return domain.ChoreToggle{
		Chore: updated,
		Update: &domain.RoommateUpdate{
			Roommate:      credited,
			PointsAwarded: chore.Points,
			LeveledUp:     credited.Level > previousLevel,
			PreviousLevel: previousLevel,
			NewBadges:     newBadges,
		},
	}
}

func nextInRotation(chore domain.Chore) string {
	current := -1
	if len(chore.Assignees) > 0 {
		for i, id := range chore.RotationOrder {
			if id == chore.Assignees[0] {
				current = i
				break
			}
		}
	}
	return chore.RotationOrder[(current+1)%len(chore.RotationOrder)]
}

func advanceDueDate(due time.Time, frequency domain.ChoreFrequency) time.Time {
	switch frequency {
	case domain.ChoreDaily:
		return due.AddDate(0, 0, 1)
	case domain.ChoreWeekly:
		return due.AddDate(0, 0, 7)
	case domain.ChoreMonthly:
		return due.AddDate(0, 1, 0)
	}
	return due
}

// replaceChore returns allChores with the entry matching updated swapped in,
// appending it if absent.
func replaceChore(allChores []domain.Chore, updated domain.Chore) []domain.Chore {
	out := make([]domain.Chore, 0, len(allChores)+1)
	found := false
	for _, c := range allChores {
		if c.ChoreID == updated.ChoreID {
			out = append(out, updated)
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, updated)
	}
	return out
}

// AddReaction toggles userID's emoji on the chore.
func (e *Engine) AddReaction(chore domain.Chore, userID, emoji string) domain.Chore {
	updated := chore.Clone()
	for i, r := range updated.Reactions {
		if r.UserID == userID && r.Emoji == emoji {
			updated.Reactions = append(updated.Reactions[:i], updated.Reactions[i+1:]...)
			return updated
		}
	}
	updated.Reactions = append(updated.Reactions, domain.ChoreReaction{
		ReactionID: e.NewID(),
		UserID:     userID,
		Emoji:      emoji,
	})
	return updated
}

// AddComment appends a comment stamped with now.
func (e *Engine) AddComment(chore domain.Chore, userID, text string, now time.Time) (domain.Chore, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Chore{}, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "text", "comment text is required")
	}
	updated := chore.Clone()
	updated.Comments = append(updated.Comments, domain.ChoreComment{
		CommentID: e.NewID(),
		UserID:    userID,
		Text:      text,
		Timestamp: now,
	})
	return updated, nil
}

// Assign replaces the chore's assignees with a single roommate.
func (e *Engine) Assign(chore domain.Chore, roommateID string) domain.Chore {
	updated := chore.Clone()
	updated.Assignees = []string{roommateID}
	return updated
}
