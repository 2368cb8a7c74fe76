package reconciliation_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	p, err := reconciliation.ParsePeriod(0, 0)
	require.NoError(t, err)
	assert.True(t, p.IsAll())

	p, err = reconciliation.ParsePeriod(2026, 0)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 1, 1), p.Start())
	assert.Equal(t, day(2026, 12, 31), p.End())

	p, err = reconciliation.ParsePeriod(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 29), p.End())
	assert.Equal(t, "2024-02", p.String())

	for _, bad := range [][2]int{{0, 3}, {1999, 1}, {2026, 13}, {2026, -1}} {
		_, err := reconciliation.ParsePeriod(bad[0], bad[1])
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "year=%d month=%d", bad[0], bad[1])
	}
}

func TestOverlapsPeriod_InclusiveBounds(t *testing.T) {
	start, end := day(2026, 3, 1), day(2026, 3, 31)

	assert.True(t, reconciliation.OverlapsPeriod(day(2026, 2, 20), dayPtr(2026, 3, 1), start, end), "checkout on first day")
	assert.True(t, reconciliation.OverlapsPeriod(day(2026, 3, 31), dayPtr(2026, 4, 3), start, end), "check-in on last day")
	assert.True(t, reconciliation.OverlapsPeriod(day(2026, 3, 10), nil, start, end), "open ended")
	assert.False(t, reconciliation.OverlapsPeriod(day(2026, 2, 1), dayPtr(2026, 2, 28), start, end))
	assert.False(t, reconciliation.OverlapsPeriod(day(2026, 4, 1), dayPtr(2026, 4, 2), start, end))
}

func TestNightsInPeriod(t *testing.T) {
	checkIn, checkOut := day(2026, 1, 28), day(2026, 2, 7)

	assert.Equal(t, 4, reconciliation.NightsInPeriod(checkIn, checkOut, day(2026, 1, 1), day(2026, 1, 31)))
	assert.Equal(t, 6, reconciliation.NightsInPeriod(checkIn, checkOut, day(2026, 2, 1), day(2026, 2, 28)))
	assert.Equal(t, 0, reconciliation.NightsInPeriod(checkIn, checkOut, day(2026, 3, 1), day(2026, 3, 31)))
	assert.Equal(t, 10, reconciliation.TotalNights(checkIn, checkOut))
	assert.Equal(t, 1, reconciliation.TotalNights(checkIn, checkIn))
}

func TestStrategies_CrossMonthStay(t *testing.T) {
	b := domain.Booking{CheckIn: day(2026, 1, 28), CheckOut: dayPtr(2026, 2, 7), TotalAmount: usd("500")}
	jan, feb := reconciliation.MonthPeriod(2026, 1), reconciliation.MonthPeriod(2026, 2)
	total := dec("500")

	proportional := reconciliation.ProportionalByNights{}
	assertDecimal(t, "200", total.Mul(proportional.Fraction(&b, jan)))
	assertDecimal(t, "300", total.Mul(proportional.Fraction(&b, feb)))
	assert.True(t, proportional.Includes(&b, feb))

	checkInOnly := reconciliation.CheckInMonthOnly{}
	assertDecimal(t, "500", total.Mul(checkInOnly.Fraction(&b, jan)))
	assertDecimal(t, "0", total.Mul(checkInOnly.Fraction(&b, feb)))
	assert.False(t, checkInOnly.Includes(&b, feb))
}

func TestSplitByNights_EdgeCases(t *testing.T) {
	march := reconciliation.MonthPeriod(2026, 3)

	sameDay := domain.Booking{CheckIn: day(2026, 3, 5), CheckOut: dayPtr(2026, 3, 5)}
	assertDecimal(t, "1", reconciliation.SplitByNights(&sameDay, march))

	openEnded := domain.Booking{CheckIn: day(2026, 3, 20)}
	assertDecimal(t, "1", reconciliation.SplitByNights(&openEnded, march))
	assertDecimal(t, "0", reconciliation.SplitByNights(&openEnded, reconciliation.MonthPeriod(2026, 4)))

	longStay := domain.Booking{CheckIn: day(2026, 2, 15), CheckOut: dayPtr(2026, 4, 15)}
	f := reconciliation.SplitByNights(&longStay, march)
	assert.True(t, f.IsPositive() && f.LessThan(dec("1")))

	assertDecimal(t, "1", reconciliation.SplitByNights(&longStay, reconciliation.AllTime()))
}

func TestStrategyByName(t *testing.T) {
	assert.Equal(t, reconciliation.CheckInMonthOnly{}, reconciliation.StrategyByName("check_in_month_only"))
	assert.Equal(t, reconciliation.ProportionalByNights{}, reconciliation.StrategyByName(""))
}
