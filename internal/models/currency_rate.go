package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is the currency_rates table row.
type CurrencyRate struct {
	CurrencyCode string          `db:"currency_code"` // Primary Key
	RateToBase   decimal.Decimal `db:"rate_to_base"`
	Symbol       string          `db:"symbol"`
	Source       string          `db:"source"`
	FetchedAt    *time.Time      `db:"fetched_at"`
	AuditFields
}
