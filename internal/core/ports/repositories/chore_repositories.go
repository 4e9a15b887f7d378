package repositories

import (
	"context"

	"github.com/SscSPs/homeledger/internal/core/domain"
)

// RoommateReader defines read operations for roommates
type RoommateReader interface {
	// FindRoommateByID retrieves a roommate, or apperrors.ErrNotFound.
	FindRoommateByID(ctx context.Context, roommateID string) (*domain.Roommate, error)

	// ListRoommates returns all roommates in creation order.
	ListRoommates(ctx context.Context) ([]domain.Roommate, error)
}

// RoommateWriter defines write operations for roommates
type RoommateWriter interface {
	// SaveRoommate inserts or replaces a roommate by id.
	SaveRoommate(ctx context.Context, roommate domain.Roommate) error
}

// RoommateRepositoryFacade combines all roommate-related repository interfaces
type RoommateRepositoryFacade interface {
	RoommateReader
	RoommateWriter
}

// ChoreReader defines read operations for chores
type ChoreReader interface {
	// FindChoreByID retrieves a chore, or apperrors.ErrNotFound.
	FindChoreByID(ctx context.Context, choreID string) (*domain.Chore, error)

	// ListChores returns all chores in creation order.
	ListChores(ctx context.Context) ([]domain.Chore, error)
}

// ChoreWriter defines write operations for chores
type ChoreWriter interface {
	// SaveChore inserts or replaces a chore by id.
	SaveChore(ctx context.Context, chore domain.Chore) error

	// DeleteChore removes a chore, or returns apperrors.ErrNotFound.
	DeleteChore(ctx context.Context, choreID string) error
}

// ChoreRepositoryFacade combines all chore-related repository interfaces
type ChoreRepositoryFacade interface {
	ChoreReader
	ChoreWriter
}
