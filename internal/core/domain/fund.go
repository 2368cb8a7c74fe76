package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundTransactionType is the direction of a development-fund movement.
type FundTransactionType string

const (
	FundDeposit    FundTransactionType = "deposit"
	FundWithdrawal FundTransactionType = "withdrawal"
)

// FundTransaction is one development-fund ledger entry.
// Amount is the USD equivalent and AmountEGP an independently recorded EGP mirror.
type FundTransaction struct {
	TransactionID     string              `json:"transactionID"`
	Type              FundTransactionType `json:"type"`
	Amount            decimal.Decimal     `json:"amount"`
	AmountEGP         decimal.Decimal     `json:"amountEGP"`
	Currency          string              `json:"currency"`
	Description       string              `json:"description"`
	BookingID         *string             `json:"bookingID,omitempty"`
	InventoryItemID   *string             `json:"inventoryItemID,omitempty"`
	IsSystemGenerated bool                `json:"isSystemGenerated"`
	TransactionDate   time.Time           `json:"transactionDate"`
	AuditFields
}

// FundBalance is the running development-fund balance in both denominations.
type FundBalance struct {
	USD decimal.Decimal `json:"usd"`
	EGP decimal.Decimal `json:"egp"`
}
