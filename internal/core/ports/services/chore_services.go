package services

import (
	"context"

	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/SscSPs/homeledger/internal/dto"
)

// RoommateSvcFacade manages the household's roommates
type RoommateSvcFacade interface {
	CreateRoommate(ctx context.Context, req dto.CreateRoommateRequest) (*domain.Roommate, error)
	GetRoommateByID(ctx context.Context, roommateID string) (*domain.Roommate, error)
	ListRoommates(ctx context.Context) ([]domain.Roommate, error)
}

// ChoreReaderSvc defines read operations for chores
type ChoreReaderSvc interface {
	GetChoreByID(ctx context.Context, choreID string) (*domain.Chore, error)

	// ListChores applies the frequency tab and then the status tab.
	ListChores(ctx context.Context, filter domain.ChoreFilter) ([]domain.Chore, error)

	// PendingCounts counts chores not yet completed per frequency.
	PendingCounts(ctx context.Context) (map[domain.ChoreFrequency]int, error)
}

// ChoreWriterSvc defines the chore state transitions
type ChoreWriterSvc interface {
	AddChore(ctx context.Context, req dto.CreateChoreRequest, userID string) (*domain.Chore, error)

	// ToggleComplete flips completion on behalf of userID and applies its effects.
	ToggleComplete(ctx context.Context, choreID, userID string) (*domain.ChoreToggle, error)

	AddReaction(ctx context.Context, choreID, userID, emoji string) (*domain.Chore, error)
	AddComment(ctx context.Context, choreID, userID, text string) (*domain.Chore, error)
	AssignChore(ctx context.Context, choreID, roommateID string) (*domain.Chore, error)
	DeleteChore(ctx context.Context, choreID string) error

	// SpinAssignment suggests a random pending chore and roommate. It does not assign.
	SpinAssignment(ctx context.Context) (*domain.SpinResult, error)
}

// ChoreSvcFacade combines all chore-related service interfaces
type ChoreSvcFacade interface {
	ChoreReaderSvc
	ChoreWriterSvc
}

// ChoreStatsSvc derives the household and personal progress views
type ChoreStatsSvc interface {
	Leaderboard(ctx context.Context) (*domain.Leaderboard, error)
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
	WeeklySummary(ctx context.Context, userID string) (*domain.WeeklySummary, error)
	Streak(ctx context.Context, userID string) (int, error)
}
