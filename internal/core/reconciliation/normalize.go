package reconciliation

import (
	"log/slog"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalizedBooking is a booking with every figure in USD.
type NormalizedBooking struct {
	Booking                 *domain.Booking
	Currency                string
	TotalUSD                decimal.Decimal
	PaidUSD                 decimal.Decimal
	RemainingUSD            decimal.Decimal
	CommissionUSD           decimal.Decimal
	TransferCommissionUSD   decimal.Decimal
	DevelopmentDeductionUSD decimal.Decimal
	Completed               bool
	CommissionStatus        domain.CommissionStatus
}

// NormalizeBooking converts a booking into USD figures as of asOf.
// Paid is derived from the payment sub-ledger when it has entries and is capped at the
// total. A completed stay with less than epsilon USD outstanding is treated as settled.
func (l *CurrencyLedger) NormalizeBooking(b *domain.Booking, asOf time.Time, epsilon decimal.Decimal) NormalizedBooking {
	total := l.ResolveAmount(b, domain.FieldTotalAmount)
	rates := l.RatesFor(b)

	n := NormalizedBooking{
		Booking:                 b,
		Currency:                total.Currency,
		TotalUSD:                l.Convert(total.Amount, total.Currency, domain.USD, rates),
		CommissionUSD:           l.ToUSD(b, domain.FieldPlatformCommission),
		TransferCommissionUSD:   l.ToUSD(b, domain.FieldTransferCommission),
		DevelopmentDeductionUSD: l.ToUSD(b, domain.FieldDevelopmentDeduction),
		Completed:               IsCompleted(b, asOf),
		CommissionStatus:        CommissionStatus(b, asOf),
	}

	if len(b.Payments) > 0 {
		paid := decimal.Zero
		for _, p := range b.Payments {
			cur := p.Currency
			if cur == "" {
				cur = total.Currency
			}
			paid = paid.Add(l.Convert(p.Amount, cur, domain.USD, rates))
		}
		n.PaidUSD = paid
	} else {
		n.PaidUSD = l.ToUSD(b, domain.FieldPaidAmount)
	}

	if n.PaidUSD.IsNegative() {
		n.PaidUSD = decimal.Zero
	}
	if n.PaidUSD.GreaterThan(n.TotalUSD) {
		l.logger.Debug("Paid amount exceeds total, capping",
			slog.String("booking_id", b.BookingID),
			slog.String("paid_usd", n.PaidUSD.String()),
			slog.String("total_usd", n.TotalUSD.String()))
		n.PaidUSD = n.TotalUSD
	}

	n.RemainingUSD = n.TotalUSD.Sub(n.PaidUSD)
	if n.Completed && n.RemainingUSD.LessThan(epsilon) {
		n.RemainingUSD = decimal.Zero
	}
	return n
}

// ExpenseUSD converts an expense at live rates.
func (l *CurrencyLedger) ExpenseUSD(e *domain.Expense) decimal.Decimal {
	return l.ToUSD(e, domain.FieldAmount)
}

// MonthlyExpensesUSD sums an apartment's fixed monthly costs in USD at live rates.
func (l *CurrencyLedger) MonthlyExpensesUSD(a *domain.Apartment) decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.MonthlyExpenses {
		cur := m.Currency
		if cur == "" {
			cur = l.base
		}
		total = total.Add(l.LiveToUSD(m.Amount, cur))
	}
	return total
}
