package reconciliation

import (
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
)

// IsCompleted reports whether the stay has checked out on or before asOf.
func IsCompleted(b *domain.Booking, asOf time.Time) bool {
	return b.CheckOut != nil && !dateOnly(*b.CheckOut).After(dateOnly(asOf))
}

// CommissionStatus derives the commission status from the checkout date.
// The stored status is never trusted; it is recomputed on every read.
func CommissionStatus(b *domain.Booking, asOf time.Time) domain.CommissionStatus {
	if IsCompleted(b, asOf) {
		return domain.CommissionApplied
	}
	return domain.CommissionPending
}

// RecognitionDate is the day a booking's commission is earned: its checkout day.
func RecognitionDate(b *domain.Booking) (time.Time, bool) {
	if b.CheckOut == nil {
		return time.Time{}, false
	}
	return dateOnly(*b.CheckOut), true
}

// RecognizedInPeriod reports whether the booking's commission is recognized in p.
// A commission is recognized in the single period containing the checkout day, and
// only once that day has passed, so summing periods never counts it twice.
// The same rule covers the transfer commission.
func RecognizedInPeriod(b *domain.Booking, p Period, asOf time.Time) bool {
	if CommissionStatus(b, asOf) != domain.CommissionApplied {
		return false
	}
	day, _ := RecognitionDate(b)
	return p.Contains(day)
}

// RecognizedBy reports whether the commission is earned by periodEnd.
func RecognizedBy(b *domain.Booking, periodEnd time.Time) bool {
	day, ok := RecognitionDate(b)
	return ok && !day.After(dateOnly(periodEnd))
}
