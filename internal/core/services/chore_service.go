package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/utils/gamification"
)

type choreService struct {
	BaseService
	mu           sync.Mutex
	engine       *gamification.Engine
	choreRepo    portsrepo.ChoreRepositoryFacade
	roommateRepo portsrepo.RoommateRepositoryFacade
}

// NewChoreService creates the chore service. A nil engine gets one for the
// service location.
func NewChoreService(
	choreRepo portsrepo.ChoreRepositoryFacade,
	roommateRepo portsrepo.RoommateRepositoryFacade,
	engine *gamification.Engine,
	options ...ServiceOption,
) portssvc.ChoreSvcFacade {
	base := newBaseService(options)
	if engine == nil {
		engine = gamification.NewEngine(base.location)
	}
	return &choreService{
		BaseService:  base,
		engine:       engine,
		choreRepo:    choreRepo,
		roommateRepo: roommateRepo,
	}
}

var _ portssvc.ChoreSvcFacade = (*choreService)(nil)

func (s *choreService) GetChoreByID(ctx context.Context, choreID string) (*domain.Chore, error) {
	return s.choreRepo.FindChoreByID(ctx, choreID)
}

func (s *choreService) listChores(ctx context.Context) ([]domain.Chore, error) {
	chores, err := s.choreRepo.ListChores(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chores")
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}
	return chores, nil
}

func (s *choreService) ListChores(ctx context.Context, filter domain.ChoreFilter) ([]domain.Chore, error) {
	chores, err := s.listChores(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Filter(chores, filter, s.Now()), nil
}

func (s *choreService) PendingCounts(ctx context.Context) (map[domain.ChoreFrequency]int, error) {
	chores, err := s.listChores(ctx)
	if err != nil {
		return nil, err
	}
	return gamification.PendingCounts(chores), nil
}

func (s *choreService) AddChore(ctx context.Context, req dto.CreateChoreRequest, userID string) (*domain.Chore, error) {
	dueDate, err := dto.ParseDate(req.DueDate, s.location)
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidDate, "dueDate", err.Error())
	}

	chore, err := s.engine.NewChore(gamification.ChoreDraft{
		Title:          req.Title,
		Description:    req.Description,
		Frequency:      req.Frequency,
		DueDate:        dueDate,
		Assignees:      req.Assignees,
		Points:         req.Points,
		Category:       req.Category,
		EnableRotation: req.EnableRotation,
	})
	if err != nil {
		return nil, err
	}
	for _, id := range req.Assignees {
		if _, err := s.roommateRepo.FindRoommateByID(ctx, id); err != nil {
			return nil, fmt.Errorf("assignee %s: %w", id, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.choreRepo.SaveChore(ctx, chore); err != nil {
		s.LogError(ctx, err, "Failed to save chore", slog.String("title", chore.Title))
		return nil, fmt.Errorf("failed to save chore: %w", err)
	}

	s.LogInfo(ctx, "Chore created",
		slog.String("chore_id", chore.ChoreID),
		slog.String("frequency", string(chore.Frequency)),
		slog.Bool("rotates", chore.Rotates()))
	s.Track(userID, "chore.created", map[string]any{
		"frequency": string(chore.Frequency),
		"category":  string(chore.Category),
		"rotates":   chore.Rotates(),
	})
	return &chore, nil
}

// ToggleComplete saves the chore and, on completion, the credited roommate.
// Points, level-ups and badges are reported as events; nothing is delivered.
func (s *choreService) ToggleComplete(ctx context.Context, choreID, userID string) (*domain.ChoreToggle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chore, err := s.choreRepo.FindChoreByID(ctx, choreID)
	if err != nil {
		return nil, err
	}
	actor, err := s.roommateRepo.FindRoommateByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("acting roommate %s: %w", userID, err)
	}
	allChores, err := s.listChores(ctx)
	if err != nil {
		return nil, err
	}

	toggle := s.engine.ToggleComplete(*chore, *actor, allChores, s.Now())

	if err := s.choreRepo.SaveChore(ctx, toggle.Chore); err != nil {
		s.LogError(ctx, err, "Failed to save chore", slog.String("chore_id", choreID))
		return nil, fmt.Errorf("failed to save chore: %w", err)
	}
	if toggle.Update == nil {
		s.LogInfo(ctx, "Chore marked pending", slog.String("chore_id", choreID))
		return &toggle, nil
	}

	update := toggle.Update
	if err := s.roommateRepo.SaveRoommate(ctx, update.Roommate); err != nil {
		s.LogError(ctx, err, "Failed to save credited roommate", slog.String("roommate_id", userID))
		return nil, fmt.Errorf("failed to save roommate: %w", err)
	}

	badges := make([]string, len(update.NewBadges))
	for i, b := range update.NewBadges {
		badges[i] = string(b)
	}
	s.LogInfo(ctx, "Chore completed",
		slog.String("chore_id", choreID),
		slog.Int("points", update.PointsAwarded),
		slog.Int("level", update.Roommate.Level),
		slog.Any("new_badges", badges))
	s.metrics.ChoreCompleted(string(chore.Category), update.LeveledUp, badges)

	s.Track(userID, "chore.completed", map[string]any{
		"chore_id": choreID,
		"points":   update.PointsAwarded,
		"category": string(chore.Category),
	})
	if update.LeveledUp {
		s.Track(userID, "roommate.level_up", map[string]any{"level": update.Roommate.Level})
	}
	for _, b := range badges {
		s.Track(userID, "badge.unlocked", map[string]any{"badge": b})
	}
	return &toggle, nil
}

func (s *choreService) AddReaction(ctx context.Context, choreID, userID, emoji string) (*domain.Chore, error) {
	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "emoji", "emoji is required")
	}
	return s.update(ctx, choreID, func(c domain.Chore) (domain.Chore, error) {
		return s.engine.AddReaction(c, userID, emoji), nil
	})
}

func (s *choreService) AddComment(ctx context.Context, choreID, userID, text string) (*domain.Chore, error) {
	return s.update(ctx, choreID, func(c domain.Chore) (domain.Chore, error) {
		return s.engine.AddComment(c, userID, text, s.Now())
	})
}

func (s *choreService) AssignChore(ctx context.Context, choreID, roommateID string) (*domain.Chore, error) {
	if _, err := s.roommateRepo.FindRoommateByID(ctx, roommateID); err != nil {
		return nil, fmt.Errorf("roommate %s: %w", roommateID, err)
	}
	return s.update(ctx, choreID, func(c domain.Chore) (domain.Chore, error) {
		return s.engine.Assign(c, roommateID), nil
	})
}

// update runs one read-modify-write of a chore under the service lock.
func (s *choreService) update(ctx context.Context, choreID string, apply func(domain.Chore) (domain.Chore, error)) (*domain.Chore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chore, err := s.choreRepo.FindChoreByID(ctx, choreID)
	if err != nil {
		return nil, err
	}
	updated, err := apply(*chore)
	if err != nil {
		return nil, err
	}
	if err := s.choreRepo.SaveChore(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save chore", slog.String("chore_id", choreID))
		return nil, fmt.Errorf("failed to save chore: %w", err)
	}
	return &updated, nil
}

func (s *choreService) DeleteChore(ctx context.Context, choreID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.choreRepo.DeleteChore(ctx, choreID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Chore deleted", slog.String("chore_id", choreID))
	return nil
}

func (s *choreService) SpinAssignment(ctx context.Context) (*domain.SpinResult, error) {
	chores, err := s.listChores(ctx)
	if err != nil {
		return nil, err
	}
	roommates, err := s.roommateRepo.ListRoommates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roommates")
		return nil, fmt.Errorf("failed to list roommates: %w", err)
	}

	result, ok := s.engine.Spin(chores, roommates)
	if !ok {
		return nil, fmt.Errorf("no pending chore to suggest: %w", apperrors.ErrNotFound)
	}
	return &result, nil
}
