package reconciliation_test

import (
	"testing"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(entries ...domain.ApartmentPartner) *domain.Apartment {
	return &domain.Apartment{ApartmentID: "apt-1", Name: "Nile View", Partners: entries}
}

func investor(name, pct string) domain.ApartmentPartner {
	return domain.ApartmentPartner{PartnerID: "p-" + name, PartnerName: name, Percentage: dec(pct), Type: domain.PartnerInvestor}
}

func owner(name, pct string) domain.ApartmentPartner {
	return domain.ApartmentPartner{PartnerID: "p-" + name, PartnerName: name, Percentage: dec(pct), Type: domain.PartnerCompanyOwner}
}

func line(revenue, commission string) reconciliation.BookingLine {
	return reconciliation.BookingLine{RevenueUSD: dec(revenue), CommissionUSD: dec(commission), TransferCommissionUSD: decimal.Zero, Counted: true}
}

func TestDistribute_SingleInvestor(t *testing.T) {
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment:   roster(investor("Mona", "20")),
		Lines:       []reconciliation.BookingLine{line("1000", "150")},
		ExpensesUSD: decimal.Zero,
	})

	assertDecimal(t, "850", fin.OperatingProfit)
	require.Len(t, fin.InvestorPayouts, 1)
	assertDecimal(t, "170", fin.InvestorPayouts[0].Amount)
	assertDecimal(t, "680", fin.CompanyProfit)
	assert.Equal(t, 1, fin.BookingCount)
}

func TestDistribute_CompanyOwnersSplitResidual(t *testing.T) {
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment: roster(investor("Mona", "30"), investor("Karim", "10"), owner("Sara", "60"), owner("Omar", "40")),
		Lines: []reconciliation.BookingLine{
			line("700", "70"),
			{RevenueUSD: dec("300"), CommissionUSD: decimal.Zero, TransferCommissionUSD: dec("30")},
		},
		ExpensesUSD: dec("100"),
	})

	assertDecimal(t, "800", fin.OperatingProfit)
	assertDecimal(t, "30", fin.TransferCommission)
	assertDecimal(t, "320", fin.TotalInvestorPayouts)
	assertDecimal(t, "480", fin.CompanyProfit)
	assertDecimal(t, "288", fin.CompanyOwnerPayouts[0].Amount)
	assertDecimal(t, "192", fin.CompanyOwnerPayouts[1].Amount)
	assert.Equal(t, 1, fin.BookingCount)
}

func TestDistribute_LossIsAbsorbedByCompany(t *testing.T) {
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment:   roster(investor("Mona", "50"), owner("Sara", "100")),
		Lines:       []reconciliation.BookingLine{line("100", "10")},
		ExpensesUSD: dec("500"),
	})

	assertDecimal(t, "-410", fin.OperatingProfit)
	assertDecimal(t, "0", fin.InvestorPayouts[0].Amount)
	assertDecimal(t, "0", fin.CompanyProfit)
	assertDecimal(t, "0", fin.CompanyOwnerPayouts[0].Amount)
}

func TestDistribute_NoRosterAllToCompany(t *testing.T) {
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment:   roster(),
		Lines:       []reconciliation.BookingLine{line("1000", "150")},
		ExpensesUSD: decimal.Zero,
	})

	assertDecimal(t, "850", fin.CompanyProfit)
	assert.Empty(t, fin.InvestorPayouts)
	assert.Empty(t, fin.CompanyOwnerPayouts)
}

func TestDistribute_ResidualReconcilesExactly(t *testing.T) {
	apt := roster(investor("A", "33.333"), investor("B", "17.5"), investor("C", "12.25"))
	for _, revenue := range []string{"1000", "999.99", "0.07", "123456.78", "10", "0"} {
		fin := reconciliation.Distribute(reconciliation.WaterfallInput{
			Apartment:   apt,
			Lines:       []reconciliation.BookingLine{line(revenue, "0")},
			ExpensesUSD: dec("3.33"),
		})
		sum := fin.TotalInvestorPayouts.Add(fin.CompanyProfit)
		want := decimal.Max(decimal.Zero, fin.OperatingProfit)
		assert.True(t, sum.Sub(want).Abs().LessThan(dec("0.000001")), "revenue %s: %s vs %s", revenue, sum, want)
		for _, p := range fin.InvestorPayouts {
			assert.False(t, p.Amount.IsNegative())
		}
	}
}

func TestDistribute_InactiveRosterAppearsWithZero(t *testing.T) {
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment:   roster(investor("Mona", "20"), owner("Sara", "100")),
		ExpensesUSD: decimal.Zero,
	})

	require.Len(t, fin.InvestorPayouts, 1)
	require.Len(t, fin.CompanyOwnerPayouts, 1)
	assertDecimal(t, "0", fin.InvestorPayouts[0].Amount)
	assert.Equal(t, 0, fin.BookingCount)
}

func TestAggregatePartners_MergesByNormalizedName(t *testing.T) {
	financials := []domain.ApartmentFinancials{
		{
			ApartmentID:     "apt-1",
			InvestorPayouts: []domain.PartnerPayout{{Name: "Mona Adel", Type: domain.PartnerInvestor, Amount: dec("100")}},
			CompanyOwnerPayouts: []domain.PartnerPayout{
				{Name: "Sara", Type: domain.PartnerCompanyOwner, Amount: dec("300")},
			},
		},
		{
			ApartmentID:     "apt-2",
			InvestorPayouts: []domain.PartnerPayout{{Name: "  mona   ADEL ", Type: domain.PartnerInvestor, Amount: dec("50")}},
		},
		{
			ApartmentID:     "apt-3",
			InvestorPayouts: []domain.PartnerPayout{{Name: "Karim", Type: domain.PartnerInvestor, Amount: decimal.Zero}},
		},
	}

	got := reconciliation.AggregatePartners(financials, dec("50"))

	require.Len(t, got, 3)
	assert.Equal(t, "Sara", got[0].Name)
	assert.Equal(t, "Mona Adel", got[1].Name)
	assertDecimal(t, "150", got[1].TotalUSD)
	assertDecimal(t, "7500", got[1].TotalEGP)
	assert.Equal(t, []string{"apt-1", "apt-2"}, got[1].ApartmentIDs)
	assert.Equal(t, "Karim", got[2].Name)
	assertDecimal(t, "0", got[2].TotalUSD)
}

func TestDistribute_OverAllocatedRosterScaledToProfit(t *testing.T) {
	apt := roster(investor("Mona", "70"), investor("Karim", "50"), owner("Sara", "80"), owner("Omar", "40"))
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment:   apt,
		Lines:       []reconciliation.BookingLine{line("1000", "0")},
		ExpensesUSD: decimal.Zero,
	})

	assert.True(t, reconciliation.RosterOverAllocated(apt))
	assertDecimal(t, "1000", fin.OperatingProfit)
	assertDecimal(t, "1000", fin.TotalInvestorPayouts)
	assertDecimal(t, "1000", fin.InvestorPayouts[0].Amount.Add(fin.InvestorPayouts[1].Amount))
	assert.True(t, fin.InvestorPayouts[0].Amount.GreaterThan(fin.InvestorPayouts[1].Amount))
	assertDecimal(t, "0", fin.CompanyProfit)
	assertDecimal(t, "1000", fin.TotalInvestorPayouts.Add(fin.CompanyProfit))
	assertDecimal(t, "0", fin.TotalCompanyOwnerPayouts)
}

func TestDistribute_OverAllocatedOwnersSplitWholeCompanyProfit(t *testing.T) {
	apt := roster(investor("Mona", "40"), owner("Sara", "90"), owner("Omar", "60"))
	fin := reconciliation.Distribute(reconciliation.WaterfallInput{
		Apartment:   apt,
		Lines:       []reconciliation.BookingLine{line("1000", "0")},
		ExpensesUSD: decimal.Zero,
	})

	assertDecimal(t, "400", fin.TotalInvestorPayouts)
	assertDecimal(t, "600", fin.CompanyProfit)
	assertDecimal(t, "360", fin.CompanyOwnerPayouts[0].Amount)
	assertDecimal(t, "240", fin.CompanyOwnerPayouts[1].Amount)
	assertDecimal(t, "600", fin.TotalCompanyOwnerPayouts)
}

func TestRosterOverAllocated_WithinLimits(t *testing.T) {
	assert.False(t, reconciliation.RosterOverAllocated(roster(investor("Mona", "60"), investor("Karim", "40"), owner("Sara", "100"))))
}
