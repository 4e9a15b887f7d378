package memory

import (
	"time"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// SeedDemoData loads the demo household: four roommates and six chores. Dates
// are laid out relative to today so the demo always has something due.
func (s *Store) SeedDemoData(now time.Time, loc *time.Location) {
	today := domain.StartOfDay(now, loc)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	roommates := []domain.Roommate{
		{RoommateID: "1", Name: "Alex", Avatar: "A", Color: "#3b82f6", Level: 5, TotalPoints: 250,
			Badges: []domain.BadgeID{domain.BadgeEarlyBird, domain.BadgePlantWhisperer}},
		{RoommateID: "2", Name: "Sam", Avatar: "S", Color: "#8b5cf6", Level: 4, TotalPoints: 180,
			Badges: []domain.BadgeID{domain.BadgeCleanFreak}},
		{RoommateID: "3", Name: "Jordan", Avatar: "J", Color: "#ec4899", Level: 6, TotalPoints: 320,
			Badges: []domain.BadgeID{domain.BadgeStreakMaster, domain.BadgeTeamPlayer}},
		{RoommateID: "4", Name: "Taylor", Avatar: "T", Color: "#10b981", Level: 3, TotalPoints: 120,
			Badges: []domain.BadgeID{domain.BadgeNewbie}},
	}

	chores := []domain.Chore{
		{
			ChoreID:     "1",
			Title:       "Take out trash",
			Description: "Empty all trash bins and take bags to outdoor bins",
			Frequency:   domain.ChoreWeekly,
			DueDate:     day(1),
			Assignees:   []string{"1"},
			Points:      10,
			Completions: []domain.ChoreCompletion{
				{CompletionID: "c1", CompletedBy: "1", CompletedAt: day(-6), Points: 10, DueAt: day(-6)},
				{CompletionID: "c2", CompletedBy: "2", CompletedAt: day(-13), Points: 10, DueAt: day(-13)},
			},
			RotationOrder: []string{"1", "2", "3", "4"},
			Reactions:     []domain.ChoreReaction{{ReactionID: "r1", UserID: "2", Emoji: "💪"}},
			Comments: []domain.ChoreComment{
				{CommentID: "cm1", UserID: "2", Text: "Thanks for keeping up with this!", Timestamp: day(-6)},
			},
			Category: domain.CategoryCleaning,
		},
		{
			ChoreID:     "2",
			Title:       "Clean bathroom",
			Description: "Scrub toilet, sink, shower, and mop floor",
			Frequency:   domain.ChoreWeekly,
			DueDate:     day(2),
			Assignees:   []string{"2"},
			Points:      20,
			Completions: []domain.ChoreCompletion{
				{CompletionID: "c3", CompletedBy: "2", CompletedAt: day(-5), Points: 20, DueAt: day(-5)},
			},
			RotationOrder: []string{"2", "3", "4", "1"},
			Reactions:     []domain.ChoreReaction{},
			Comments:      []domain.ChoreComment{},
			Category:      domain.CategoryCleaning,
		},
		{
			ChoreID:     "3",
			Title:       "Vacuum living room",
			Description: "Vacuum all carpets and rugs in common areas",
			Frequency:   domain.ChoreWeekly,
			DueDate:     day(0),
			Assignees:   []string{"3"},
			Points:      15,
			Completed:   true,
			Completions: []domain.ChoreCompletion{
				{CompletionID: "c4", CompletedBy: "3", CompletedAt: day(0), Points: 15, DueAt: day(0)},
				{CompletionID: "c5", CompletedBy: "3", CompletedAt: day(-7), Points: 15, DueAt: day(-7)},
			},
			RotationOrder: []string{"3", "4", "1", "2"},
			Reactions: []domain.ChoreReaction{
				{ReactionID: "r2", UserID: "1", Emoji: "✨"},
				{ReactionID: "r3", UserID: "4", Emoji: "🎉"},
			},
			Comments: []domain.ChoreComment{},
			Category: domain.CategoryCleaning,
		},
		{
			ChoreID:       "4",
			Title:         "Do dishes",
			Description:   "Wash, dry, and put away all dishes in sink",
			Frequency:     domain.ChoreDaily,
			DueDate:       day(0),
			Assignees:     []string{"4"},
			Points:        5,
			Completions:   []domain.ChoreCompletion{},
			RotationOrder: []string{"4", "1", "2", "3"},
			Reactions:     []domain.ChoreReaction{},
			Comments:      []domain.ChoreComment{},
			Category:      domain.CategoryKitchen,
		},
		{
			ChoreID:     "5",
			Title:       "Water plants",
			Description: "Water all indoor and balcony plants",
			Frequency:   domain.ChoreWeekly,
			DueDate:     day(-3),
			Assignees:   []string{"1"},
			Points:      5,
			Completions: []domain.ChoreCompletion{},
			Reactions:   []domain.ChoreReaction{{ReactionID: "r4", UserID: "3", Emoji: "🌿"}},
			Comments:    []domain.ChoreComment{},
			Category:    domain.CategoryPlants,
		},
		{
			ChoreID:     "6",
			Title:       "Grocery shopping",
			Description: "Buy household essentials and groceries",
			Frequency:   domain.ChoreWeekly,
			DueDate:     day(3),
			Assignees:   []string{"2", "3"},
			Points:      15,
			Completions: []domain.ChoreCompletion{},
			Reactions:   []domain.ChoreReaction{},
			Comments:    []domain.ChoreComment{},
			Category:    domain.CategoryShopping,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roommates = roommates
	s.chores = chores
}
