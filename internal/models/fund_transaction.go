package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundTransaction is the fund_transactions table row.
type FundTransaction struct {
	TransactionID     string          `db:"transaction_id"`
	Type              string          `db:"transaction_type"`
	Amount            decimal.Decimal `db:"amount"`
	AmountEGP         decimal.Decimal `db:"amount_egp"`
	Currency          string          `db:"currency"`
	Description       string          `db:"description"`
	BookingID         *string         `db:"booking_id"`
	InventoryItemID   *string         `db:"inventory_item_id"`
	IsSystemGenerated bool            `db:"is_system_generated"`
	TransactionDate   time.Time       `db:"transaction_date"`
	AuditFields
}
