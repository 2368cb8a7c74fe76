package models

import (
	"github.com/shopspring/decimal"
)

// Apartment is the apartments table row.
type Apartment struct {
	ApartmentID           string          `db:"apartment_id"`
	Name                  string          `db:"name"`
	DefaultCommissionRate decimal.Decimal `db:"default_commission_rate"`
	MonthlyExpenses       []byte          `db:"monthly_expenses"` // JSONB
	InvestmentAmountUSD   decimal.Decimal `db:"investment_amount_usd"`
	AuditFields
}

// ApartmentPartner is an apartment_partners row joined with its partner's name.
type ApartmentPartner struct {
	ApartmentID string          `db:"apartment_id"`
	PartnerID   string          `db:"partner_id"`
	PartnerName string          `db:"name"`
	Type        string          `db:"partner_type"`
	Percentage  decimal.Decimal `db:"percentage"`
}
