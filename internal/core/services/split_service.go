package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/utils/accounting"
	"github.com/SscSPs/homeledger/internal/utils/pagination"
)

// DefaultTransactionPageSize applies when a list request leaves the limit unset.
const DefaultTransactionPageSize = 20

type splitService struct {
	BaseService
	mu          sync.Mutex
	txnRepo     portsrepo.TransactionRepositoryFacade
	contactRepo portsrepo.ContactReader
}

// NewSplitService creates the service that records expenses and payments.
func NewSplitService(txnRepo portsrepo.TransactionRepositoryFacade, contactRepo portsrepo.ContactReader, options ...ServiceOption) portssvc.SplitSvcFacade {
	return &splitService{
		BaseService: newBaseService(options),
		txnRepo:     txnRepo,
		contactRepo: contactRepo,
	}
}

var _ portssvc.SplitSvcFacade = (*splitService)(nil)

// CreateSplit checks, in order: the amount, the participants, the description,
// the date and the participants' existence. Custom shares are checked last.
func (s *splitService) CreateSplit(ctx context.Context, req dto.CreateSplitRequest, userID string) (*domain.Transaction, error) {
	mode := req.Mode
	if mode == "" {
		mode = dto.SplitEqual
	}

	total, err := accounting.ParseAmount(req.Amount)
	if err != nil || (mode == dto.SplitEqual && !total.IsPositive()) {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidAmount, "amount", "amount must be a positive number")
	}

	participants := splitParticipants(req)
	if len(participants) == 0 {
		return nil, apperrors.NewValidationError(apperrors.CodeNoParticipants, "participantIDs", "select at least one person to split with")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingRequiredField, "description", "description is required")
	}

	date, err := dto.ParseDate(req.Date, s.location)
	if err != nil {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidDate, "date", err.Error())
	}
	if date.IsZero() {
		date = s.Now()
	}

	for _, contactID := range participants {
		if _, err := s.contactRepo.FindContactByID(ctx, contactID); err != nil {
			return nil, fmt.Errorf("participant %s: %w", contactID, err)
		}
	}

	var splits []domain.SplitDetail
	switch mode {
	case dto.SplitCustom:
		splits, err = accounting.SplitCustom(total, customAmounts(participants, req.CustomAmounts))
	default:
		splits, err = accounting.SplitEqually(total, participants, req.IncludeSelf)
	}
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = accounting.Categorize(description)
	}

	txn := domain.Transaction{
		TransactionID: s.newID(),
		Type:          domain.TransactionExpense,
		From:          domain.SelfLabel,
		Amount:        total,
		Description:   description,
		Date:          date,
		Splits:        splits,
		Category:      category,
	}
	if err := s.save(ctx, txn); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Split created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("mode", string(mode)),
		slog.Int("participants", len(splits)))
	s.Track(userID, "split.created", map[string]any{
		"mode":         string(mode),
		"participants": len(splits),
		"include_self": req.IncludeSelf,
	})
	return &txn, nil
}

// splitParticipants falls back to the custom amount rows when no explicit
// participant list is sent. Duplicates are dropped.
func splitParticipants(req dto.CreateSplitRequest) []string {
	ids := req.ParticipantIDs
	if len(ids) == 0 && req.Mode == dto.SplitCustom {
		for _, ca := range req.CustomAmounts {
			ids = append(ids, ca.ContactID)
		}
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// customAmounts pairs each participant with its typed amount; participants
// without a row get a blank (zero) amount.
func customAmounts(participants []string, rows []dto.CustomAmountRequest) []accounting.CustomAmount {
	typed := make(map[string]string, len(rows))
	for _, row := range rows {
		typed[row.ContactID] = row.Amount
	}
	amounts := make([]accounting.CustomAmount, len(participants))
	for i, id := range participants {
		amounts[i] = accounting.CustomAmount{ContactID: id, Amount: typed[id]}
	}
	return amounts
}

// RecordPayment records money handed over between you and one contact. A
// received payment lowers what the contact owes you; a sent one lowers what
// you owe them.
func (s *splitService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.Transaction, error) {
	amount, err := accounting.ParseAmount(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidAmount, "amount", "amount must be a positive number")
	}

	contact, err := s.contactRepo.FindContactByID(ctx, req.ContactID)
	if err != nil {
		return nil, fmt.Errorf("payment contact %s: %w", req.ContactID, err)
	}

	direction := req.Direction
	if direction == "" {
		direction = dto.PaymentReceived
	}

	txn := domain.Transaction{
		TransactionID: s.newID(),
		Type:          domain.TransactionPayment,
		Amount:        amount,
		Description:   strings.TrimSpace(req.Description),
		Date:          s.Now(),
	}
	switch direction {
	case dto.PaymentSent:
		txn.From = domain.SelfLabel
		txn.Splits = []domain.SplitDetail{{ContactID: contact.ContactID, Amount: amount}}
		if txn.Description == "" {
			txn.Description = "Payment to " + contact.Name
		}
	default:
		txn.From = contact.Name
		txn.Splits = []domain.SplitDetail{{ContactID: contact.ContactID, Amount: amount.Neg()}}
		if txn.Description == "" {
			txn.Description = "Payment from " + contact.Name
		}
	}

	if err := s.save(ctx, txn); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("contact_id", contact.ContactID),
		slog.String("direction", string(direction)))
	s.Track(userID, "payment.recorded", map[string]any{"direction": string(direction)})
	return &txn, nil
}

func (s *splitService) save(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	s.mirrorTransaction(ctx, txn, s.contactRepo, s.txnRepo)
	return nil
}

func (s *splitService) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = DefaultTransactionPageSize
	}

	var after *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(apperrors.CodeInvalidToken, "nextToken", err.Error())
		}
		after = &cursor
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	sorted := slices.Clone(txns)
	pagination.SortNewestFirst(sorted, transactionCursor)
	page, next := pagination.Page(sorted, limit, after, transactionCursor)
	if next == nil {
		return page, nil, nil
	}
	token := pagination.EncodeCursor(*next)
	return page, &token, nil
}

func transactionCursor(t domain.Transaction) pagination.Cursor {
	return pagination.Cursor{Date: t.Date, ID: t.TransactionID}
}
