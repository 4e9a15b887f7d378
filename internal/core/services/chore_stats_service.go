package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/utils/gamification"
)

type choreStatsService struct {
	BaseService
	engine       *gamification.Engine
	choreRepo    portsrepo.ChoreReader
	roommateRepo portsrepo.RoommateReader
}

// NewChoreStatsService creates the read-only chore statistics service.
func NewChoreStatsService(
	choreRepo portsrepo.ChoreReader,
	roommateRepo portsrepo.RoommateReader,
	engine *gamification.Engine,
	options ...ServiceOption,
) portssvc.ChoreStatsSvc {
	base := newBaseService(options)
	if engine == nil {
		engine = gamification.NewEngine(base.location)
	}
	return &choreStatsService{
		BaseService:  base,
		engine:       engine,
		choreRepo:    choreRepo,
		roommateRepo: roommateRepo,
	}
}

var _ portssvc.ChoreStatsSvc = (*choreStatsService)(nil)

type householdSnapshot struct {
	chores    []domain.Chore
	roommates []domain.Roommate
}

func (s *choreStatsService) snapshot(ctx context.Context) (householdSnapshot, error) {
	chores, err := s.choreRepo.ListChores(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chores")
		return householdSnapshot{}, fmt.Errorf("failed to list chores: %w", err)
	}
	roommates, err := s.roommateRepo.ListRoommates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roommates")
		return householdSnapshot{}, fmt.Errorf("failed to list roommates: %w", err)
	}
	return householdSnapshot{chores: chores, roommates: roommates}, nil
}

func (s *choreStatsService) Leaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	board := s.engine.Leaderboard(snap.chores, snap.roommates, s.Now())
	return &board, nil
}

func (s *choreStatsService) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	roommate, err := s.roommateRepo.FindRoommateByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	chores, err := s.choreRepo.ListChores(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chores")
		return nil, fmt.Errorf("failed to list chores: %w", err)
	}
	dashboard := s.engine.Dashboard(chores, *roommate, s.Now())
	return &dashboard, nil
}

func (s *choreStatsService) WeeklySummary(ctx context.Context, userID string) (*domain.WeeklySummary, error) {
	roommate, err := s.roommateRepo.FindRoommateByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := s.engine.WeeklySummary(snap.chores, snap.roommates, *roommate, s.Now())
	return &summary, nil
}

func (s *choreStatsService) Streak(ctx context.Context, userID string) (int, error) {
	if _, err := s.roommateRepo.FindRoommateByID(ctx, userID); err != nil {
		return 0, err
	}
	chores, err := s.choreRepo.ListChores(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chores")
		return 0, fmt.Errorf("failed to list chores: %w", err)
	}
	return s.engine.ComputeStreak(chores, userID, s.Now()), nil
}
