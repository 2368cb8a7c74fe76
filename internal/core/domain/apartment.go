package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PartnerType distinguishes the two tiers of the profit waterfall.
type PartnerType string

const (
	PartnerInvestor     PartnerType = "investor"
	PartnerCompanyOwner PartnerType = "company_owner"
)

// IsValid reports whether t is a known partner type.
func (t PartnerType) IsValid() bool {
	return t == PartnerInvestor || t == PartnerCompanyOwner
}

// Partner is the normalized partner record. Type is only a default; percentage and the
// type that counts in the waterfall live on ApartmentPartner.
type Partner struct {
	PartnerID string      `json:"partnerID"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone,omitempty"`
	Email     string      `json:"email,omitempty"`
	Type      PartnerType `json:"type,omitempty"`
	AuditFields
}

// ApartmentPartner is the join record between an apartment and a partner.
type ApartmentPartner struct {
	ApartmentID string          `json:"apartmentID"`
	PartnerID   string          `json:"partnerID"`
	PartnerName string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"`
	Type        PartnerType     `json:"type"`
}

// NormalizedName is the key used to merge the same partner across rosters.
func (p ApartmentPartner) NormalizedName() string {
	return NormalizePartnerName(p.PartnerName)
}

// NormalizePartnerName trims and case-folds a partner name.
func NormalizePartnerName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// MonthlyExpense is a recurring fixed cost of an apartment.
type MonthlyExpense struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Apartment is a rental unit together with its partner roster.
type Apartment struct {
	ApartmentID           string             `json:"apartmentID"`
	Name                  string             `json:"name"`
	DefaultCommissionRate decimal.Decimal    `json:"defaultCommissionRate"` // percent of totalAmount
	MonthlyExpenses       []MonthlyExpense   `json:"monthlyExpenses"`
	InvestmentAmountUSD   decimal.Decimal    `json:"investmentAmountUSD"`
	Partners              []ApartmentPartner `json:"partners"`
	AuditFields
}

// PartnersOfType returns roster entries of the given type in roster order.
func (a *Apartment) PartnersOfType(t PartnerType) []ApartmentPartner {
	var out []ApartmentPartner
	for _, p := range a.Partners {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// InvestorPercentage sums the investor percentages on the roster.
func (a *Apartment) InvestorPercentage() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.PartnersOfType(PartnerInvestor) {
		total = total.Add(p.Percentage)
	}
	return total
}
