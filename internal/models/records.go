package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ID           string          `db:"id"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	Payer        string          `db:"payer"`
	GroupID      string          `db:"group_id"`
	Timestamp    time.Time       `db:"timestamp"`
	Category     string          `db:"category"`
	SplitBetween []string        `db:"split_between"`
	Settled      bool            `db:"settled"`
}

// Roommate is a row of the roommates table.
type Roommate struct {
	ID      string          `db:"id"`
	Name    string          `db:"name"`
	Email   *string         `db:"email"` // nullable
	GroupID string          `db:"group_id"`
	Balance decimal.Decimal `db:"balance"`
}

// Group is a row of the groups table.
type Group struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Members   []string  `db:"members"`
	CreatedAt time.Time `db:"created_at"`
}
