package reconciliation

import (
	"sort"
	"strings"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BookingLine is one completed booking's USD contribution to an apartment waterfall.
type BookingLine struct {
	BookingID             string
	RevenueUSD            decimal.Decimal
	CommissionUSD         decimal.Decimal
	TransferCommissionUSD decimal.Decimal
	Counted               bool // whether the booking adds to BookingCount
}

// WaterfallInput is everything the waterfall needs for one apartment.
type WaterfallInput struct {
	Apartment   *domain.Apartment
	Lines       []BookingLine
	ExpensesUSD decimal.Decimal
}

// Distribute runs the two-tier waterfall for one apartment.
//
// Investors take their percentage of positive operating profit. The company keeps
// the residual, and company owners split that residual by their percentages. With
// no roster everything is company profit. A tier whose percentages add up to more
// than 100 is scaled down so it never hands out more than it has. Roster members appear even with nothing
// to share so the payout list is stable across periods.
func Distribute(in WaterfallInput) domain.ApartmentFinancials {
	fin := domain.ApartmentFinancials{
		ApartmentID:   in.Apartment.ApartmentID,
		ApartmentName: in.Apartment.Name,
		Revenue:       decimal.Zero,
		Expenses:      in.ExpensesUSD,
	}
	fin.PlatformCommission = decimal.Zero
	fin.TransferCommission = decimal.Zero

	for _, line := range in.Lines {
		fin.Revenue = fin.Revenue.Add(line.RevenueUSD)
		fin.PlatformCommission = fin.PlatformCommission.Add(line.CommissionUSD)
		fin.TransferCommission = fin.TransferCommission.Add(line.TransferCommissionUSD)
		if line.Counted {
			fin.BookingCount++
		}
	}

	fin.OperatingProfit = fin.Revenue.
		Sub(fin.PlatformCommission).
		Sub(fin.TransferCommission).
		Sub(fin.Expenses)
	distributable := decimal.Max(decimal.Zero, fin.OperatingProfit)

	fin.InvestorPayouts = []domain.PartnerPayout{}
	fin.TotalInvestorPayouts = decimal.Zero
	investors := in.Apartment.PartnersOfType(domain.PartnerInvestor)
	investorBase := shareBase(investors)
	for _, p := range investors {
		payout := newPayout(p, distributable.Mul(p.Percentage).Div(investorBase))
		fin.InvestorPayouts = append(fin.InvestorPayouts, payout)
		fin.TotalInvestorPayouts = fin.TotalInvestorPayouts.Add(payout.Amount)
	}

	if investorBase.GreaterThan(hundred) {
		settleResidual(fin.InvestorPayouts, distributable.Sub(fin.TotalInvestorPayouts))
		fin.TotalInvestorPayouts = distributable
	}

	fin.CompanyProfit = decimal.Max(decimal.Zero, fin.OperatingProfit.Sub(fin.TotalInvestorPayouts))

	fin.CompanyOwnerPayouts = []domain.PartnerPayout{}
	fin.TotalCompanyOwnerPayouts = decimal.Zero
	owners := in.Apartment.PartnersOfType(domain.PartnerCompanyOwner)
	ownerBase := shareBase(owners)
	for _, p := range owners {
		payout := newPayout(p, fin.CompanyProfit.Mul(p.Percentage).Div(ownerBase))
		fin.CompanyOwnerPayouts = append(fin.CompanyOwnerPayouts, payout)
		fin.TotalCompanyOwnerPayouts = fin.TotalCompanyOwnerPayouts.Add(payout.Amount)
	}
	if ownerBase.GreaterThan(hundred) {
		settleResidual(fin.CompanyOwnerPayouts, fin.CompanyProfit.Sub(fin.TotalCompanyOwnerPayouts))
		fin.TotalCompanyOwnerPayouts = fin.CompanyProfit
	}
	return fin
}

// shareBase is the divisor for a tier's percentages: 100, or the tier total when the
// roster is over-allocated.
func shareBase(partners []domain.ApartmentPartner) decimal.Decimal {
	total := decimal.Zero
	for _, p := range partners {
		total = total.Add(p.Percentage)
	}
	return decimal.Max(hundred, total)
}

// settleResidual adds the division remainder of a scaled tier to its last payout.
func settleResidual(payouts []domain.PartnerPayout, residual decimal.Decimal) {
	if len(payouts) == 0 {
		return
	}
	last := &payouts[len(payouts)-1]
	last.Amount = last.Amount.Add(residual)
}

// RosterOverAllocated reports whether either tier of the roster exceeds 100 percent.
func RosterOverAllocated(a *domain.Apartment) bool {
	return shareBase(a.PartnersOfType(domain.PartnerInvestor)).GreaterThan(hundred) ||
		shareBase(a.PartnersOfType(domain.PartnerCompanyOwner)).GreaterThan(hundred)
}

func newPayout(p domain.ApartmentPartner, amount decimal.Decimal) domain.PartnerPayout {
	return domain.PartnerPayout{
		PartnerID:  p.PartnerID,
		Name:       strings.TrimSpace(p.PartnerName),
		Type:       p.Type,
		Percentage: p.Percentage,
		Amount:     amount,
	}
}

// AggregatePartners merges payouts of the same partner across apartments.
// Partners are keyed by normalized name; the first spelling and type seen are kept.
// Results are ordered by USD total, largest first.
func AggregatePartners(financials []domain.ApartmentFinancials, usdRate decimal.Decimal) []domain.PartnerProfit {
	byName := make(map[string]*domain.PartnerProfit)
	var order []string

	add := func(apartmentID string, payouts []domain.PartnerPayout) {
		for _, p := range payouts {
			key := domain.NormalizePartnerName(p.Name)
			if key == "" {
				key = p.PartnerID
			}
			agg, ok := byName[key]
			if !ok {
				agg = &domain.PartnerProfit{Name: p.Name, Type: p.Type, TotalUSD: decimal.Zero, ApartmentIDs: []string{}}
				byName[key] = agg
				order = append(order, key)
			}
			agg.TotalUSD = agg.TotalUSD.Add(p.Amount)
			if !containsString(agg.ApartmentIDs, apartmentID) {
				agg.ApartmentIDs = append(agg.ApartmentIDs, apartmentID)
			}
		}
	}

	for _, fin := range financials {
		add(fin.ApartmentID, fin.InvestorPayouts)
		add(fin.ApartmentID, fin.CompanyOwnerPayouts)
	}

	out := make([]domain.PartnerProfit, 0, len(order))
	for _, key := range order {
		agg := byName[key]
		agg.TotalEGP = agg.TotalUSD.Mul(usdRate)
		out = append(out, *agg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalUSD.GreaterThan(out[j].TotalUSD)
	})
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
