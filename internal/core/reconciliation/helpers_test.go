package reconciliation_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func usd(v string) domain.Money {
	return domain.NewMoney(dec(v), domain.USD)
}

func untagged(v string) domain.Money {
	return domain.Money{Amount: dec(v)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func newLedger(rates domain.RateSnapshot) *reconciliation.CurrencyLedger {
	return reconciliation.NewCurrencyLedger(domain.EGP, rates, dec("50"), quietLogger)
}

func liveRates(usdRate string) domain.RateSnapshot {
	return domain.RateSnapshot{domain.USD: dec(usdRate)}
}
