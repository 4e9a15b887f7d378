package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceFrequency is how often a recurring expense comes due.
type RecurrenceFrequency string

const (
	RecurWeekly  RecurrenceFrequency = "weekly"
	RecurMonthly RecurrenceFrequency = "monthly"
	RecurYearly  RecurrenceFrequency = "yearly"
)

// IsValid reports whether f is a known frequency.
func (f RecurrenceFrequency) IsValid() bool {
	switch f {
	case RecurWeekly, RecurMonthly, RecurYearly:
		return true
	}
	return false
}

// RecurringExpense is a bill that repeats on a schedule. For weekly expenses
// DueDay is a weekday index (0 = Sunday); otherwise it is a day of month.
type RecurringExpense struct {
	RecurringID string              `json:"recurringID"`
	Title       string              `json:"title"`
	Amount      decimal.Decimal     `json:"amount"`
	Frequency   RecurrenceFrequency `json:"frequency"`
	DueDay      int                 `json:"dueDay"`
	Splits      []SplitDetail       `json:"splits"`
	NextDueDate time.Time           `json:"nextDueDate"`
	Description string              `json:"description,omitempty"`
	AuditFields
}

// UpcomingPayment is a recurring expense that falls inside the reminder window.
type UpcomingPayment struct {
	Expense   RecurringExpense `json:"expense"`
	DaysUntil int              `json:"daysUntil"`
}
