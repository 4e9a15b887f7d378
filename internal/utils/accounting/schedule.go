package accounting

import (
	"math"
	"sort"
	"time"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/core/domain"
)

// ValidateDueDay checks dueDay against the range the frequency allows.
func ValidateDueDay(dueDay int, frequency domain.RecurrenceFrequency) error {
	if !frequency.IsValid() {
		return apperrors.NewValidationError(apperrors.CodeInvalidFrequency, "frequency", "frequency must be weekly, monthly or yearly")
	}
	if frequency == domain.RecurWeekly {
		if dueDay < 0 || dueDay > 6 {
			return apperrors.NewValidationError(apperrors.CodeInvalidDueDay, "dueDay", "weekly due day must be a weekday index 0-6")
		}
		return nil
	}
	if dueDay < 1 || dueDay > 31 {
		return apperrors.NewValidationError(apperrors.CodeInvalidDueDay, "dueDay", "due day must be between 1 and 31")
	}
	return nil
}

// ComputeNextDueDate returns the next start-of-day the expense comes due after now.
//
// Monthly and yearly set the day of the current month; a day past the month's
// end rolls over into the following month (dueDay 31 in September is October 1).
// If that date is not after now it moves one month or one year forward.
// Weekly returns the next day with weekday dueDay, today included.
func ComputeNextDueDate(dueDay int, frequency domain.RecurrenceFrequency, now time.Time, loc *time.Location) (time.Time, error) {
	if err := ValidateDueDay(dueDay, frequency); err != nil {
		return time.Time{}, err
	}
	today := domain.StartOfDay(now, loc)

	switch frequency {
	case domain.RecurWeekly:
		days := (dueDay - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, days), nil
	case domain.RecurMonthly:
		next := time.Date(today.Year(), today.Month(), dueDay, 0, 0, 0, 0, today.Location())
		if !next.After(now) {
			next = next.AddDate(0, 1, 0)
		}
		return next, nil
	default:
		next := time.Date(today.Year(), today.Month(), dueDay, 0, 0, 0, 0, today.Location())
		if !next.After(now) {
			next = next.AddDate(1, 0, 0)
		}
		return next, nil
	}
}

// DaysUntil is the number of days from now to due, rounded up.
// A due date earlier today yields 0.
func DaysUntil(due, now time.Time) int {
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// UpcomingPayments lists recurring expenses due between the start of today and
// reminderDaysBefore days from now, soonest first.
func UpcomingPayments(expenses []domain.RecurringExpense, reminderDaysBefore int, now time.Time, loc *time.Location) []domain.UpcomingPayment {
	if reminderDaysBefore < 0 {
		reminderDaysBefore = 0
	}
	from := domain.StartOfDay(now, loc)
	until := now.AddDate(0, 0, reminderDaysBefore)

	upcoming := make([]domain.UpcomingPayment, 0)
	for _, exp := range expenses {
		if exp.NextDueDate.Before(from) || exp.NextDueDate.After(until) {
			continue
		}
		upcoming = append(upcoming, domain.UpcomingPayment{
			Expense:   exp,
			DaysUntil: DaysUntil(exp.NextDueDate, now),
		})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Expense.NextDueDate.Before(upcoming[j].Expense.NextDueDate)
	})
	return upcoming
}
