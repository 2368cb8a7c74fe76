package reconciliation_test

import (
	"testing"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/stretchr/testify/assert"
)

func TestCommissionStatus(t *testing.T) {
	b := domain.Booking{
		CheckIn:          day(2026, 5, 1),
		CheckOut:         dayPtr(2026, 5, 4),
		CommissionStatus: domain.CommissionApplied, // stale cache, must be ignored
	}

	assert.Equal(t, domain.CommissionPending, reconciliation.CommissionStatus(&b, day(2026, 5, 3)))
	assert.Equal(t, domain.CommissionApplied, reconciliation.CommissionStatus(&b, day(2026, 5, 4)))

	open := domain.Booking{CheckIn: day(2026, 5, 1)}
	assert.Equal(t, domain.CommissionPending, reconciliation.CommissionStatus(&open, day(2030, 1, 1)))
}

func TestRecognizedInPeriod_ExactlyOnce(t *testing.T) {
	asOf := day(2026, 10, 17)
	stays := []domain.Booking{
		{CheckIn: day(2026, 1, 28), CheckOut: dayPtr(2026, 2, 7)},
		{CheckIn: day(2025, 12, 30), CheckOut: dayPtr(2026, 1, 2)},
		{CheckIn: day(2026, 9, 1), CheckOut: dayPtr(2026, 9, 30)},
	}

	for _, b := range stays {
		b := b
		count := 0
		for year := 2025; year <= 2026; year++ {
			for month := 1; month <= 12; month++ {
				if reconciliation.RecognizedInPeriod(&b, reconciliation.MonthPeriod(year, month), asOf) {
					count++
				}
			}
		}
		assert.Equal(t, 1, count, "checkout %s", b.CheckOut.Format("2006-01-02"))
		assert.True(t, reconciliation.RecognizedInPeriod(&b, reconciliation.AllTime(), asOf))
		assert.True(t, reconciliation.RecognizedBy(&b, *b.CheckOut))
	}
}

func TestRecognizedInPeriod_FutureCheckoutNotYetRecognized(t *testing.T) {
	b := domain.Booking{CheckIn: day(2026, 10, 10), CheckOut: dayPtr(2026, 10, 20)}

	assert.False(t, reconciliation.RecognizedInPeriod(&b, reconciliation.MonthPeriod(2026, 10), day(2026, 10, 17)))
	assert.True(t, reconciliation.RecognizedInPeriod(&b, reconciliation.MonthPeriod(2026, 10), day(2026, 10, 20)))
	assert.False(t, reconciliation.RecognizedBy(&b, day(2026, 10, 19)))
}

func TestRecognizedInPeriod_OpenEndedNever(t *testing.T) {
	b := domain.Booking{CheckIn: day(2026, 1, 1)}

	assert.False(t, reconciliation.RecognizedInPeriod(&b, reconciliation.AllTime(), day(2030, 1, 1)))
	assert.False(t, reconciliation.RecognizedBy(&b, day(2030, 1, 1)))
}
