package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the expenses table row.
type Expense struct {
	ExpenseID      string           `db:"expense_id"`
	ApartmentID    *string          `db:"apartment_id"` // Nullable for general expenses
	BookingID      *string          `db:"booking_id"`
	Category       string           `db:"category"`
	Description    string           `db:"description"`
	Amount         decimal.Decimal  `db:"amount"`
	AmountCurrency *string          `db:"amount_currency"`
	AmountUSD      *decimal.Decimal `db:"amount_usd"`
	Currency       string           `db:"currency"`
	ExpenseDate    time.Time        `db:"expense_date"`
	AuditFields
}
