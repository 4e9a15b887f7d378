package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	"github.com/SscSPs/homeledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// mirrorTransaction forwards the transaction and the refreshed balance of
// every contact on it. Failures here are logged and never reach the caller.
func (s *BaseService) mirrorTransaction(ctx context.Context, txn domain.Transaction, contactRepo portsrepo.ContactReader, txnRepo portsrepo.TransactionReader) {
	s.mirror.MirrorExpense(ctx, domain.NewExpenseRecord(txn, s.groupID))
	s.mirrorContacts(ctx, txn.ContactIDs(), contactRepo, txnRepo)
}

func (s *BaseService) mirrorContacts(ctx context.Context, contactIDs []string, contactRepo portsrepo.ContactReader, txnRepo portsrepo.TransactionReader) {
	txns, err := txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for mirrored balances")
		return
	}
	balances := make(map[string]decimal.Decimal)
	for _, b := range accounting.CalculateBalances(txns) {
		balances[b.ContactID] = b.Amount
	}

	for _, contactID := range contactIDs {
		contact, err := contactRepo.FindContactByID(ctx, contactID)
		if err != nil {
			s.LogError(ctx, err, "Skipping mirror of unknown contact", slog.String("contact_id", contactID))
			continue
		}
		s.mirror.MirrorRoommate(ctx, domain.NewRoommateRecordFromContact(*contact, balances[contactID], s.groupID))
	}
}

// mirrorGroup forwards the household group with every contact as a member.
func (s *BaseService) mirrorGroup(ctx context.Context, contactRepo portsrepo.ContactReader) {
	contacts, err := contactRepo.ListContacts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load contacts for mirrored group")
		return
	}
	group := domain.GroupRecord{
		ID:        s.groupID,
		Name:      s.groupName,
		Members:   make([]string, len(contacts)),
		CreatedAt: s.Now(),
	}
	for i, c := range contacts {
		group.Members[i] = c.ContactID
	}
	if len(contacts) > 0 {
		group.CreatedAt = contacts[0].CreatedAt
	}
	s.mirror.MirrorGroup(ctx, group)
}
