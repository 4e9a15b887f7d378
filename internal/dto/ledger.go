package dto

import (
	"github.com/SscSPs/homeledger/internal/core/domain"
)

// CreateContactRequest defines the data needed to add a contact.
type CreateContactRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

// SplitMode selects how a new expense is divided.
type SplitMode string

const (
	SplitEqual  SplitMode = "equal"
	SplitCustom SplitMode = "custom"
)

// CustomAmountRequest is one contact's typed share in a custom split.
type CustomAmountRequest struct {
	ContactID string `json:"contactID" binding:"required"`
	Amount    string `json:"amount"` // blank means zero
}

// CreateSplitRequest defines a new shared expense.
// Amounts are decimal strings so that unparseable input can be reported as invalid_amount.
type CreateSplitRequest struct {
	Amount         string                `json:"amount"`
	Description    string                `json:"description"`
	Mode           SplitMode             `json:"mode" binding:"omitempty,oneof=equal custom"`
	ParticipantIDs []string              `json:"participantIDs"`
	IncludeSelf    bool                  `json:"includeSelf"`
	CustomAmounts  []CustomAmountRequest `json:"customAmounts" binding:"omitempty,dive"`
	Category       string                `json:"category"`
	Date           string                `json:"date"` // optional, defaults to now
}

// PaymentDirection says who handed the money over.
type PaymentDirection string

const (
	PaymentReceived PaymentDirection = "received" // the contact paid you
	PaymentSent     PaymentDirection = "sent"     // you paid the contact
)

// RecordPaymentRequest defines a settlement between you and one contact.
type RecordPaymentRequest struct {
	ContactID   string           `json:"contactID" binding:"required"`
	Amount      string           `json:"amount" binding:"required,decimal"`
	Direction   PaymentDirection `json:"direction" binding:"omitempty,oneof=received sent"`
	Description string           `json:"description"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of the ledger, newest first.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// ToggleItemAssignmentRequest adds or removes a contact on a receipt item.
type ToggleItemAssignmentRequest struct {
	ContactID string `json:"contactID" binding:"required"`
}

// CreateRecurringExpenseRequest defines a repeating bill split equally with you included.
type CreateRecurringExpenseRequest struct {
	Title          string                     `json:"title"`
	Amount         string                     `json:"amount"`
	Frequency      domain.RecurrenceFrequency `json:"frequency"`
	DueDay         int                        `json:"dueDay"`
	ParticipantIDs []string                   `json:"participantIDs"`
	Description    string                     `json:"description"`
}

// UpdateProfileRequest defines the profile fields allowed to change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProfileRequest struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email" binding:"omitempty,email"`
	Phone                *string `json:"phone"`
	Avatar               *string `json:"avatar"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	ReminderDaysBefore   *int    `json:"reminderDaysBefore" binding:"omitempty,min=0,max=30"`
}

// PaymentLinkParams selects the payment app for a settlement link.
type PaymentLinkParams struct {
	Provider domain.PaymentProvider `form:"provider" binding:"omitempty,oneof=venmo paypal splitpay"`
}
