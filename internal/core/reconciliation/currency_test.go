package reconciliation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/stretchr/testify/assert"
)

func TestResolveAmount_Priority(t *testing.T) {
	mirror := dec("100")
	tests := []struct {
		name       string
		booking    domain.Booking
		field      domain.MoneyField
		wantCur    string
		wantSource reconciliation.ResolutionSource
	}{
		{
			name:       "explicit field tag wins over record tag",
			booking:    domain.Booking{Currency: domain.EGP, TotalAmount: usd("200")},
			field:      domain.FieldTotalAmount,
			wantCur:    domain.USD,
			wantSource: reconciliation.SourceExplicitTag,
		},
		{
			name:       "mirror equal to raw value means USD",
			booking:    domain.Booking{Currency: domain.EGP, TotalAmount: domain.Money{Amount: dec("100"), USDMirror: &mirror}},
			field:      domain.FieldTotalAmount,
			wantCur:    domain.USD,
			wantSource: reconciliation.SourceUSDMirror,
		},
		{
			name:       "raw value divided by USD rate reproducing mirror means base",
			booking:    domain.Booking{Currency: domain.USD, TotalAmount: domain.Money{Amount: dec("5000"), USDMirror: &mirror}},
			field:      domain.FieldTotalAmount,
			wantCur:    domain.EGP,
			wantSource: reconciliation.SourceUSDMirror,
		},
		{
			name:       "record tag when field has no evidence",
			booking:    domain.Booking{Currency: "egp", TotalAmount: untagged("700")},
			field:      domain.FieldTotalAmount,
			wantCur:    domain.EGP,
			wantSource: reconciliation.SourceRecordTag,
		},
		{
			name:       "fractional untagged value is USD",
			booking:    domain.Booking{TotalAmount: untagged("0.5")},
			field:      domain.FieldTotalAmount,
			wantCur:    domain.USD,
			wantSource: reconciliation.SourceMagnitudeGuess,
		},
		{
			name:       "large untagged value is base currency",
			booking:    domain.Booking{TotalAmount: untagged("15000")},
			field:      domain.FieldTotalAmount,
			wantCur:    domain.EGP,
			wantSource: reconciliation.SourceMagnitudeGuess,
		},
		{
			name:       "middle band follows a base-sized record",
			booking:    domain.Booking{TotalAmount: untagged("15000"), PaidAmount: untagged("500")},
			field:      domain.FieldPaidAmount,
			wantCur:    domain.EGP,
			wantSource: reconciliation.SourceMagnitudeGuess,
		},
		{
			name:       "middle band follows a USD-sized record",
			booking:    domain.Booking{TotalAmount: untagged("800"), PaidAmount: untagged("500")},
			field:      domain.FieldPaidAmount,
			wantCur:    domain.USD,
			wantSource: reconciliation.SourceMagnitudeGuess,
		},
	}

	ledger := newLedger(liveRates("50"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ledger.ResolveAmount(&tt.booking, tt.field)
			assert.Equal(t, tt.wantCur, res.Currency)
			assert.Equal(t, tt.wantSource, res.Source)
		})
	}
}

func TestResolveAmount_BaseValue(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	b := domain.Booking{TotalAmount: usd("20")}

	res := ledger.ResolveAmount(&b, domain.FieldTotalAmount)

	assertDecimal(t, "20", res.Amount)
	assertDecimal(t, "1000", res.BaseValue)
}

func TestToUSD_LockedRatesIgnoreLiveTable(t *testing.T) {
	b := domain.Booking{
		Currency:              domain.EGP,
		TotalAmount:           domain.NewMoney(dec("5000"), domain.EGP),
		ExchangeRateAtBooking: domain.RateSnapshot{domain.USD: dec("50")},
	}

	for _, live := range []string{"50", "60", "47.5"} {
		got := newLedger(liveRates(live)).ToUSD(&b, domain.FieldTotalAmount)
		assertDecimal(t, "100", got)
	}
}

func TestToUSD_UsesLiveRatesWithoutSnapshot(t *testing.T) {
	b := domain.Booking{Currency: domain.EGP, TotalAmount: domain.NewMoney(dec("6000"), domain.EGP)}

	assertDecimal(t, "120", newLedger(liveRates("50")).ToUSD(&b, domain.FieldTotalAmount))
	assertDecimal(t, "100", newLedger(liveRates("60")).ToUSD(&b, domain.FieldTotalAmount))
}

func TestToUSD_CrossRateGoesThroughBase(t *testing.T) {
	ledger := newLedger(domain.RateSnapshot{domain.USD: dec("50"), "EUR": dec("55")})
	b := domain.Booking{TotalAmount: domain.NewMoney(dec("100"), "EUR")}

	assertDecimal(t, "110", ledger.ToUSD(&b, domain.FieldTotalAmount))
}

func TestLiveConvert(t *testing.T) {
	ledger := newLedger(liveRates("50"))

	assertDecimal(t, "5000", ledger.LiveConvert(dec("100"), domain.USD, domain.EGP))
	assertDecimal(t, "2", ledger.LiveConvert(dec("100"), domain.EGP, domain.USD))
	assertDecimal(t, "100", ledger.LiveConvert(dec("100"), domain.USD, domain.USD))
}

func TestToUSD_MissingUSDRateFallsBackToDefault(t *testing.T) {
	ledger := newLedger(domain.RateSnapshot{})
	b := domain.Booking{TotalAmount: domain.NewMoney(dec("2500"), domain.EGP)}

	assertDecimal(t, "50", ledger.LiveUSDRate())
	assertDecimal(t, "50", ledger.ToUSD(&b, domain.FieldTotalAmount))
}

func TestToUSD_Expense(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	e := domain.Expense{Currency: domain.EGP, Amount: untagged("1500")}

	assertDecimal(t, "30", ledger.ExpenseUSD(&e))
}

func TestNormalizeBooking_PaymentsInMixedCurrencies(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	b := domain.Booking{
		Currency:    domain.EGP,
		CheckIn:     day(2026, 3, 1),
		CheckOut:    dayPtr(2026, 3, 5),
		TotalAmount: domain.NewMoney(dec("10000"), domain.EGP),
		PaidAmount:  domain.NewMoney(dec("1"), domain.EGP),
		Payments: []domain.Payment{
			{Amount: dec("50"), Currency: domain.USD, Method: "cash"},
			{Amount: dec("2500"), Currency: domain.EGP, Method: "transfer"},
		},
	}

	n := ledger.NormalizeBooking(&b, day(2026, 2, 1), dec("1"))

	assertDecimal(t, "200", n.TotalUSD)
	assertDecimal(t, "100", n.PaidUSD)
	assertDecimal(t, "100", n.RemainingUSD)
	assert.False(t, n.Completed)
	assert.Equal(t, domain.CommissionPending, n.CommissionStatus)
}

func TestNormalizeBooking_PaidNeverExceedsTotal(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	tests := []struct {
		name    string
		booking domain.Booking
	}{
		{"stored paid amount above total", domain.Booking{TotalAmount: usd("200"), PaidAmount: usd("300")}},
		{"payments above total", domain.Booking{TotalAmount: usd("200"), Payments: []domain.Payment{
			{Amount: dec("150"), Currency: domain.USD},
			{Amount: dec("7500"), Currency: domain.EGP},
		}}},
		{"untagged legacy paid amount", domain.Booking{TotalAmount: untagged("900"), PaidAmount: untagged("20000")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.booking.CheckIn = day(2026, 1, 1)
			tt.booking.CheckOut = dayPtr(2026, 1, 3)
			n := ledger.NormalizeBooking(&tt.booking, day(2026, 6, 1), dec("1"))
			assert.True(t, n.PaidUSD.LessThanOrEqual(n.TotalUSD))
			assert.False(t, n.RemainingUSD.IsNegative())
		})
	}
}

func TestNormalizeBooking_CompletedResidualBelowEpsilonIsZero(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	b := domain.Booking{
		CheckIn:     day(2026, 1, 10),
		CheckOut:    dayPtr(2026, 1, 12),
		TotalAmount: usd("100"),
		PaidAmount:  usd("99.5"),
	}

	completed := ledger.NormalizeBooking(&b, day(2026, 1, 20), dec("1"))
	assertDecimal(t, "0", completed.RemainingUSD)
	assert.True(t, completed.Completed)

	active := ledger.NormalizeBooking(&b, day(2026, 1, 11), dec("1"))
	assertDecimal(t, "0.5", active.RemainingUSD)
}

func TestMonthlyExpensesUSD(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	apt := domain.Apartment{MonthlyExpenses: []domain.MonthlyExpense{
		{Name: "rent", Amount: dec("2500")},
		{Name: "internet", Amount: dec("10"), Currency: domain.USD},
	}}

	assertDecimal(t, "60", ledger.MonthlyExpensesUSD(&apt))
}

func TestNormalizeBooking_ZeroTransferCommissionNeedsNoGuess(t *testing.T) {
	ledger := newLedger(liveRates("50"))
	b := domain.Booking{TotalAmount: untagged("900"), CheckIn: time.Now()}

	res := ledger.ResolveAmount(&b, domain.FieldTransferCommission)
	assert.NotEqual(t, reconciliation.SourceMagnitudeGuess, res.Source)
}
