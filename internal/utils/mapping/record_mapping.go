package mapping

import (
	"github.com/SscSPs/homeledger/internal/core/domain"
	"github.com/SscSPs/homeledger/internal/models"
)

// ToModelExpense converts a domain ExpenseRecord to a model Expense
func ToModelExpense(d domain.ExpenseRecord) models.Expense {
	splitBetween := d.SplitBetween
	if splitBetween == nil {
		splitBetween = []string{}
	}
	return models.Expense{
		ID:           d.ID,
		Amount:       d.Amount,
		Description:  d.Description,
		Payer:        d.Payer,
		GroupID:      d.GroupID,
		Timestamp:    d.Timestamp,
		Category:     d.Category,
		SplitBetween: splitBetween,
		Settled:      d.Settled,
	}
}

// ToDomainExpense converts a model Expense to a domain ExpenseRecord
func ToDomainExpense(m models.Expense) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ID:           m.ID,
		Amount:       m.Amount,
		Description:  m.Description,
		Payer:        m.Payer,
		GroupID:      m.GroupID,
		Timestamp:    m.Timestamp,
		Category:     m.Category,
		SplitBetween: m.SplitBetween,
		Settled:      m.Settled,
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain ExpenseRecords
func ToDomainExpenseSlice(ms []models.Expense) []domain.ExpenseRecord {
	ds := make([]domain.ExpenseRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelRoommate converts a domain RoommateRecord to a model Roommate.
// An empty email is stored as NULL.
func ToModelRoommate(d domain.RoommateRecord) models.Roommate {
	m := models.Roommate{
		ID:      d.ID,
		Name:    d.Name,
		GroupID: d.GroupID,
		Balance: d.Balance,
	}
	if d.Email != "" {
		email := d.Email
		m.Email = &email
	}
	return m
}

// ToDomainRoommate converts a model Roommate to a domain RoommateRecord
func ToDomainRoommate(m models.Roommate) domain.RoommateRecord {
	d := domain.RoommateRecord{
		ID:      m.ID,
		Name:    m.Name,
		GroupID: m.GroupID,
		Balance: m.Balance,
	}
	if m.Email != nil {
		d.Email = *m.Email
	}
	return d
}

// ToModelGroup converts a domain GroupRecord to a model Group
func ToModelGroup(d domain.GroupRecord) models.Group {
	members := d.Members
	if members == nil {
		members = []string{}
	}
	return models.Group{
		ID:        d.ID,
		Name:      d.Name,
		Members:   members,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainGroup converts a model Group to a domain GroupRecord
func ToDomainGroup(m models.Group) domain.GroupRecord {
	return domain.GroupRecord{
		ID:        m.ID,
		Name:      m.Name,
		Members:   m.Members,
		CreatedAt: m.CreatedAt,
	}
}
