package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well known currency codes.
const (
	USD = "USD"
	EGP = "EGP"
)

// RateSource tells apart manually entered rates from fetched ones.
type RateSource string

const (
	RateSourceManual RateSource = "manual"
	RateSourceAPI    RateSource = "api"
)

// CurrencyRate is the live conversion rate of one currency into the base currency.
type CurrencyRate struct {
	CurrencyCode string          `json:"currencyCode"` // e.g. "USD"
	RateToBase   decimal.Decimal `json:"rateToBase"`   // units of base currency per 1 unit of CurrencyCode
	Symbol       string          `json:"symbol"`
	Source       RateSource      `json:"source"`
	FetchedAt    *time.Time      `json:"fetchedAt,omitempty"`
	AuditFields
}

// RateSnapshot maps currency code to rate-to-base. Bookings keep one locked at creation time.
type RateSnapshot map[string]decimal.Decimal

// SnapshotFromRates builds a RateSnapshot from a list of live rates.
func SnapshotFromRates(rates []CurrencyRate) RateSnapshot {
	snap := make(RateSnapshot, len(rates))
	for _, r := range rates {
		if r.RateToBase.IsPositive() {
			snap[r.CurrencyCode] = r.RateToBase
		}
	}
	return snap
}

// Money is a stored amount together with whatever currency evidence was stored beside it.
// Currency is the explicit per-field tag and USDMirror the USD copy some records carry;
// both may be missing on legacy records.
type Money struct {
	Amount    decimal.Decimal  `json:"amount"`
	Currency  string           `json:"currency,omitempty"`
	USDMirror *decimal.Decimal `json:"usdMirror,omitempty"`
}

// NewMoney returns an explicitly tagged amount.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// MoneyField names a monetary field on a record.
type MoneyField string

const (
	FieldTotalAmount          MoneyField = "totalAmount"
	FieldPaidAmount           MoneyField = "paidAmount"
	FieldRemainingAmount      MoneyField = "remainingAmount"
	FieldPlatformCommission   MoneyField = "platformCommission"
	FieldTransferCommission   MoneyField = "transferCommissionAmount"
	FieldDevelopmentDeduction MoneyField = "developmentDeduction"
	FieldOwnerAmount          MoneyField = "ownerAmount"
	FieldBrokerProfit         MoneyField = "brokerProfit"
	FieldAmount               MoneyField = "amount"
)
