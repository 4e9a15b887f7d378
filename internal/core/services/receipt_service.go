package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/utils/accounting"
)

// DefaultScanDelay is the pause that stands in for OCR processing.
const DefaultScanDelay = 2 * time.Second

type receiptService struct {
	BaseService
	mu          sync.Mutex
	scanDelay   time.Duration
	receiptRepo portsrepo.ReceiptRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
	contactRepo portsrepo.ContactReader
}

// NewReceiptService creates the receipt service. A negative scanDelay selects DefaultScanDelay.
func NewReceiptService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	contactRepo portsrepo.ContactReader,
	scanDelay time.Duration,
	options ...ServiceOption,
) portssvc.ReceiptSvcFacade {
	if scanDelay < 0 {
		scanDelay = DefaultScanDelay
	}
	return &receiptService{
		BaseService: newBaseService(options),
		scanDelay:   scanDelay,
		receiptRepo: receiptRepo,
		txnRepo:     txnRepo,
		contactRepo: contactRepo,
	}
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// ScanReceipt waits out the scan delay even if ctx is cancelled, then stores
// the mock scan result as a draft.
func (s *receiptService) ScanReceipt(ctx context.Context, userID string) (*domain.Receipt, error) {
	time.Sleep(s.scanDelay)

	receipt := accounting.MockScannedReceipt(s.newID(), s.Now(), s.newID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save scanned receipt")
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	s.LogInfo(ctx, "Receipt scanned", slog.String("receipt_id", receipt.ReceiptID), slog.Int("items", len(receipt.Items)))
	s.Track(userID, "receipt.scanned", map[string]any{"items": len(receipt.Items)})
	return &receipt, nil
}

func (s *receiptService) ToggleItemAssignment(ctx context.Context, receiptID, itemID, contactID string) (*domain.Receipt, error) {
	if _, err := s.contactRepo.FindContactByID(ctx, contactID); err != nil {
		return nil, fmt.Errorf("contact %s: %w", contactID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt.IsFinalized() {
		return nil, apperrors.NewConflictError("receipt " + receiptID + " is already finalized")
	}

	items, ok := accounting.ToggleItemAssignee(receipt.Items, itemID, contactID)
	if !ok {
		return nil, fmt.Errorf("receipt item %s: %w", itemID, apperrors.ErrNotFound)
	}
	receipt.Items = items

	if err := s.receiptRepo.SaveReceipt(ctx, *receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}
	return receipt, nil
}

// FinalizeReceipt records the receipt total as one transaction. Items nobody
// shares are reported, not rejected; their cost and tax are not collected.
func (s *receiptService) FinalizeReceipt(ctx context.Context, receiptID, userID string) (*domain.ReceiptFinalization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt.IsFinalized() {
		return nil, apperrors.NewConflictError("receipt " + receiptID + " is already finalized")
	}

	split := accounting.SplitReceiptItems(*receipt)
	if len(split.Shares) == 0 {
		return nil, apperrors.NewValidationError(apperrors.CodeNoParticipants, "items", "assign at least one item before finalizing")
	}

	rid := receipt.ReceiptID
	description := receipt.Merchant + " - Receipt"
	txn := domain.Transaction{
		TransactionID: s.newID(),
		Type:          domain.TransactionReceipt,
		From:          domain.SelfLabel,
		Amount:        receipt.Total,
		Description:   description,
		Date:          s.Now(),
		Splits:        split.Shares,
		ReceiptID:     &rid,
		Category:      accounting.Categorize(description),
	}
	// Mark the receipt first; a failed transaction save restores the draft.
	draft := *receipt
	tid := txn.TransactionID
	receipt.Status = domain.ReceiptFinalized
	receipt.TransactionID = &tid
	if err := s.receiptRepo.SaveReceipt(ctx, *receipt); err != nil {
		s.LogError(ctx, err, "Failed to mark receipt finalized", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save receipt transaction", slog.String("receipt_id", receiptID), slog.String("transaction_id", tid))
		if restoreErr := s.receiptRepo.SaveReceipt(ctx, draft); restoreErr != nil {
			s.LogError(ctx, restoreErr, "Failed to restore draft receipt", slog.String("receipt_id", receiptID))
			err = errors.Join(err, restoreErr)
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if len(split.UnassignedItems) > 0 {
		s.GetLogger(ctx).Warn("Receipt finalized with unassigned items",
			slog.String("receipt_id", receiptID),
			slog.Int("unassigned", len(split.UnassignedItems)))
	}
	s.LogInfo(ctx, "Receipt finalized", slog.String("receipt_id", receiptID), slog.String("transaction_id", tid))
	s.mirrorTransaction(ctx, txn, s.contactRepo, s.txnRepo)
	s.Track(userID, "receipt.finalized", map[string]any{
		"shares":     len(split.Shares),
		"unassigned": len(split.UnassignedItems),
	})

	return &domain.ReceiptFinalization{
		Receipt:         *receipt,
		Transaction:     txn,
		UnassignedItems: split.UnassignedItems,
	}, nil
}

func (s *receiptService) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, receiptID)
}

func (s *receiptService) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceipts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts")
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}
