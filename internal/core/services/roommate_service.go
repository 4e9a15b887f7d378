package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
)

// DefaultRoommateColor is used when a new roommate has no color.
const DefaultRoommateColor = "#6366f1"

type roommateService struct {
	BaseService
	mu           sync.Mutex
	roommateRepo portsrepo.RoommateRepositoryFacade
}

func NewRoommateService(roommateRepo portsrepo.RoommateRepositoryFacade, options ...ServiceOption) portssvc.RoommateSvcFacade {
	return &roommateService{
		BaseService:  newBaseService(options),
		roommateRepo: roommateRepo,
	}
}

var _ portssvc.RoommateSvcFacade = (*roommateService)(nil)

func (s *roommateService) CreateRoommate(ctx context.Context, req dto.CreateRoommateRequest) (*domain.Roommate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "name", "name is required")
	}

	roommate := domain.Roommate{
		RoommateID:  s.newID(),
		Name:        name,
		Avatar:      strings.TrimSpace(req.Avatar),
		Color:       strings.TrimSpace(req.Color),
		Level:       domain.LevelFor(0),
		TotalPoints: 0,
		Badges:      []domain.BadgeID{},
	}
	if roommate.Avatar == "" {
		roommate.Avatar = initial(name)
	}
	if roommate.Color == "" {
		roommate.Color = DefaultRoommateColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.roommateRepo.SaveRoommate(ctx, roommate); err != nil {
		s.LogError(ctx, err, "Failed to save roommate", slog.String("name", name))
		return nil, fmt.Errorf("failed to save roommate: %w", err)
	}
	s.LogInfo(ctx, "Roommate created", slog.String("roommate_id", roommate.RoommateID))
	return &roommate, nil
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

func (s *roommateService) GetRoommateByID(ctx context.Context, roommateID string) (*domain.Roommate, error) {
	return s.roommateRepo.FindRoommateByID(ctx, roommateID)
}

func (s *roommateService) ListRoommates(ctx context.Context) ([]domain.Roommate, error) {
	roommates, err := s.roommateRepo.ListRoommates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roommates")
		return nil, fmt.Errorf("failed to list roommates: %w", err)
	}
	return roommates, nil
}
