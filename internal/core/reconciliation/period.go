package reconciliation

import (
	"fmt"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	minReportYear = 2000
	maxReportYear = 2100
)

// Period is a reporting window. A zero Year means all time and a zero Month the whole year.
type Period struct {
	Year  int
	Month int
}

// AllTime is the unbounded reporting window.
func AllTime() Period { return Period{} }

// YearPeriod is a calendar year.
func YearPeriod(year int) Period { return Period{Year: year} }

// MonthPeriod is a calendar month.
func MonthPeriod(year, month int) Period { return Period{Year: year, Month: month} }

// ParsePeriod validates a year/month pair coming from a query.
func ParsePeriod(year, month int) (Period, error) {
	if year == 0 && month == 0 {
		return AllTime(), nil
	}
	if year == 0 {
		return Period{}, apperrors.NewValidationError("month requires a year")
	}
	if year < minReportYear || year > maxReportYear {
		return Period{}, apperrors.NewValidationError(fmt.Sprintf("year must be between %d and %d", minReportYear, maxReportYear))
	}
	if month < 0 || month > 12 {
		return Period{}, apperrors.NewValidationError("month must be between 1 and 12")
	}
	return Period{Year: year, Month: month}, nil
}

// IsAll reports whether p is unbounded.
func (p Period) IsAll() bool { return p.Year == 0 }

// IsMonth reports whether p is a single month.
func (p Period) IsMonth() bool { return p.Year != 0 && p.Month != 0 }

// Start returns the first day of the period. It is the zero time for AllTime.
func (p Period) Start() time.Time {
	switch {
	case p.IsAll():
		return time.Time{}
	case p.IsMonth():
		return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

// End returns the last day of the period, inclusive.
func (p Period) End() time.Time {
	switch {
	case p.IsAll():
		return time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	case p.IsMonth():
		return p.Start().AddDate(0, 1, -1)
	default:
		return time.Date(p.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
}

// Contains reports whether the calendar day of t falls inside p.
func (p Period) Contains(t time.Time) bool {
	if p.IsAll() {
		return true
	}
	d := dateOnly(t)
	return !d.Before(p.Start()) && !d.After(p.End())
}

func (p Period) String() string {
	switch {
	case p.IsAll():
		return "all"
	case p.IsMonth():
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}

// dateOnly truncates t to its calendar day, keeping the day as written in t's location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

// OverlapsPeriod reports whether a stay touches [start, end] at day granularity, bounds inclusive.
// A nil checkOut is an open-ended stay.
func OverlapsPeriod(checkIn time.Time, checkOut *time.Time, start, end time.Time) bool {
	ci := dateOnly(checkIn)
	if ci.After(dateOnly(end)) {
		return false
	}
	if checkOut == nil {
		return true
	}
	return !dateOnly(*checkOut).Before(dateOnly(start))
}

// NightsInPeriod counts the nights of a stay that fall inside [start, end].
// A night belongs to the day it starts on.
func NightsInPeriod(checkIn, checkOut, start, end time.Time) int {
	from := dateOnly(checkIn)
	if s := dateOnly(start); s.After(from) {
		from = s
	}
	to := dateOnly(checkOut)
	if e := dateOnly(end).AddDate(0, 0, 1); e.Before(to) {
		to = e
	}
	if n := daysBetween(from, to); n > 0 {
		return n
	}
	return 0
}

// TotalNights is the length of a stay, with same-day stays counted as one night.
func TotalNights(checkIn, checkOut time.Time) int {
	if n := daysBetween(checkIn, checkOut); n > 0 {
		return n
	}
	return 1
}

// SplitByNights returns the fraction of a booking's nights inside p, clamped to [0, 1].
// Open-ended stays fall back to check-in month attribution.
func SplitByNights(b *domain.Booking, p Period) decimal.Decimal {
	if p.IsAll() {
		return one
	}
	if b.CheckOut == nil {
		return checkInFraction(b, p)
	}
	if daysBetween(b.CheckIn, *b.CheckOut) <= 0 {
		return checkInFraction(b, p)
	}
	total := TotalNights(b.CheckIn, *b.CheckOut)
	inPeriod := NightsInPeriod(b.CheckIn, *b.CheckOut, p.Start(), p.End())
	return clampFraction(decimal.NewFromInt(int64(inPeriod)).Div(decimal.NewFromInt(int64(total))))
}

func checkInFraction(b *domain.Booking, p Period) decimal.Decimal {
	if p.Contains(b.CheckIn) {
		return one
	}
	return decimal.Zero
}

func clampFraction(f decimal.Decimal) decimal.Decimal {
	if f.IsNegative() {
		return decimal.Zero
	}
	if f.GreaterThan(one) {
		return one
	}
	return f
}

// AllocationStrategy decides how much of a booking's revenue lands in a period.
type AllocationStrategy interface {
	Name() string
	// Includes reports whether the booking is listed in the period at all.
	Includes(b *domain.Booking, p Period) bool
	// Fraction is the share of the booking's revenue attributed to the period.
	Fraction(b *domain.Booking, p Period) decimal.Decimal
}

// ProportionalByNights splits revenue across periods by nights stayed. Used by the dashboard.
type ProportionalByNights struct{}

func (ProportionalByNights) Name() string { return "proportional_by_nights" }

func (ProportionalByNights) Includes(b *domain.Booking, p Period) bool {
	if p.IsAll() {
		return true
	}
	if b.CheckOut == nil {
		return p.Contains(b.CheckIn)
	}
	return OverlapsPeriod(b.CheckIn, b.CheckOut, p.Start(), p.End())
}

func (ProportionalByNights) Fraction(b *domain.Booking, p Period) decimal.Decimal {
	return SplitByNights(b, p)
}

// CheckInMonthOnly attributes all revenue to the period holding the check-in date.
// Used by the monthly statement.
type CheckInMonthOnly struct{}

func (CheckInMonthOnly) Name() string { return "check_in_month_only" }

func (CheckInMonthOnly) Includes(b *domain.Booking, p Period) bool {
	return p.Contains(b.CheckIn)
}

func (CheckInMonthOnly) Fraction(b *domain.Booking, p Period) decimal.Decimal {
	return checkInFraction(b, p)
}

// StrategyByName maps a query value to a strategy. Unknown names get ProportionalByNights.
func StrategyByName(name string) AllocationStrategy {
	if name == (CheckInMonthOnly{}).Name() {
		return CheckInMonthOnly{}
	}
	return ProportionalByNights{}
}

// monthsCovered counts calendar months of [from, to] that lie inside p.
func monthsCovered(p Period, from, to time.Time) int {
	if to.IsZero() || (!from.IsZero() && from.After(to)) {
		return 0
	}
	start := monthStart(from)
	if !p.IsAll() && p.Start().After(start) {
		start = p.Start()
	}
	end := monthStart(to)
	if !p.IsAll() {
		if pe := monthStart(p.End()); pe.Before(end) {
			end = pe
		}
	}
	if start.IsZero() || start.After(end) {
		return 0
	}
	return (end.Year()-start.Year())*12 + int(end.Month()-start.Month()) + 1
}

func monthStart(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
