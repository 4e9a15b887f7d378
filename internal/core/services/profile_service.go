package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
)

// DefaultProfileName is the display name of a profile nobody has edited yet.
const DefaultProfileName = "You"

type profileService struct {
	BaseService
	mu          sync.Mutex
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates the profile service.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade, options ...ServiceOption) portssvc.ProfileSvcFacade {
	return &profileService{
		BaseService: newBaseService(options),
		profileRepo: profileRepo,
	}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrCreate(ctx, userID)
}

// loadOrCreate must be called with s.mu held.
func (s *profileService) loadOrCreate(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	created := domain.NewUserProfile(userID, DefaultProfileName)
	if err := s.profileRepo.SaveProfile(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to create default profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.LogInfo(ctx, "Default profile created", slog.String("user_id", userID))
	return &created, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated := *profile

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "name", "name cannot be empty")
		}
		updated.Name = name
	}
	if req.Email != nil {
		updated.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		updated.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Avatar != nil {
		updated.Avatar = strings.TrimSpace(*req.Avatar)
	}
	if req.NotificationsEnabled != nil {
		updated.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.ReminderDaysBefore != nil {
		if *req.ReminderDaysBefore < 0 {
			return nil, apperrors.NewValidationError(apperrors.CodeInvalidDueDay, "reminderDaysBefore", "reminder days cannot be negative")
		}
		updated.ReminderDaysBefore = *req.ReminderDaysBefore
	}

	if err := s.profileRepo.SaveProfile(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	s.LogInfo(ctx, "Profile updated", slog.String("user_id", userID))
	return &updated, nil
}
