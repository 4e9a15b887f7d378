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
	"github.com/SscSPs/homeledger/internal/utils/accounting"
)

type recurringService struct {
	BaseService
	mu            sync.Mutex
	recurringRepo portsrepo.RecurringRepositoryFacade
	contactRepo   portsrepo.ContactReader
	profileRepo   portsrepo.ProfileRepositoryFacade
}

// NewRecurringService creates the recurring expense service.
func NewRecurringService(
	recurringRepo portsrepo.RecurringRepositoryFacade,
	contactRepo portsrepo.ContactReader,
	profileRepo portsrepo.ProfileRepositoryFacade,
	options ...ServiceOption,
) portssvc.RecurringSvcFacade {
	return &recurringService{
		BaseService:   newBaseService(options),
		recurringRepo: recurringRepo,
		contactRepo:   contactRepo,
		profileRepo:   profileRepo,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

// CreateRecurringExpense splits the amount equally between the participants
// and you, and schedules the first due date from now.
func (s *recurringService) CreateRecurringExpense(ctx context.Context, req dto.CreateRecurringExpenseRequest, userID string) (*domain.RecurringExpense, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "title", "title is required")
	}
	amount, err := accounting.ParseAmount(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidAmount, "amount", "amount must be a positive number")
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = domain.RecurMonthly
	}
	now := s.Now()
	nextDue, err := accounting.ComputeNextDueDate(req.DueDay, frequency, now, s.location)
	if err != nil {
		return nil, err
	}

	splits, err := accounting.SplitEqually(amount, req.ParticipantIDs, true)
	if err != nil {
		return nil, err
	}
	for _, split := range splits {
		if _, err := s.contactRepo.FindContactByID(ctx, split.ContactID); err != nil {
			return nil, fmt.Errorf("participant %s: %w", split.ContactID, err)
		}
	}

	expense := domain.RecurringExpense{
		RecurringID: s.newID(),
		Title:       title,
		Amount:      amount,
		Frequency:   frequency,
		DueDay:      req.DueDay,
		Splits:      splits,
		NextDueDate: nextDue,
		Description: strings.TrimSpace(req.Description),
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: userID},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.recurringRepo.SaveRecurringExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save recurring expense", slog.String("title", title))
		return nil, fmt.Errorf("failed to save recurring expense: %w", err)
	}

	s.LogInfo(ctx, "Recurring expense created",
		slog.String("recurring_id", expense.RecurringID),
		slog.Time("next_due", nextDue))
	s.Track(userID, "recurring.created", map[string]any{"frequency": string(frequency)})
	return &expense, nil
}

func (s *recurringService) ListRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error) {
	expenses, err := s.recurringRepo.ListRecurringExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring expenses")
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return expenses, nil
}

func (s *recurringService) UpcomingPayments(ctx context.Context, userID string) ([]domain.UpcomingPayment, error) {
	reminderDays := domain.DefaultReminderDaysBefore
	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		reminderDays = profile.ReminderDaysBefore
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to load profile for reminders", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	expenses, err := s.ListRecurringExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.UpcomingPayments(expenses, reminderDays, s.Now(), s.location), nil
}
