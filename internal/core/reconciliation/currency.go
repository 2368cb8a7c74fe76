// Package reconciliation holds the financial engine: currency normalization,
// period allocation, commission recognition, the partner waterfall and the
// development-fund ledger. Everything here is pure computation over records
// that were already loaded; nothing performs I/O or keeps state between calls.
package reconciliation

import (
	"log/slog"
	"strings"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// mirrorTolerance absorbs the rounding of USD mirrors stored with two decimals.
	mirrorTolerance = decimal.RequireFromString("0.01")
)

// MonetaryRecord is any stored record with monetary fields whose currency may be ambiguous.
type MonetaryRecord interface {
	MoneyField(field domain.MoneyField) domain.Money
	RecordCurrency() string
	LockedRates() domain.RateSnapshot
}

// RateTable is a set of rates-to-base. The base currency always converts at 1.
type RateTable struct {
	base  string
	rates domain.RateSnapshot
}

// NewRateTable creates a RateTable anchored at base.
func NewRateTable(base string, rates domain.RateSnapshot) RateTable {
	normalized := make(domain.RateSnapshot, len(rates))
	for code, rate := range rates {
		normalized[normalizeCode(code)] = rate
	}
	return RateTable{base: normalizeCode(base), rates: normalized}
}

// RateToBase returns how many base units one unit of code is worth.
// ok is false when the table has no usable rate for code.
func (t RateTable) RateToBase(code string) (decimal.Decimal, bool) {
	code = normalizeCode(code)
	if code == t.base {
		return one, true
	}
	rate, ok := t.rates[code]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

// Len returns the number of explicit rates in the table.
func (t RateTable) Len() int {
	return len(t.rates)
}

// ResolutionSource records which rule decided a field's currency.
type ResolutionSource string

const (
	SourceExplicitTag    ResolutionSource = "explicit_tag"
	SourceUSDMirror      ResolutionSource = "usd_mirror"
	SourceRecordTag      ResolutionSource = "record_tag"
	SourceMagnitudeGuess ResolutionSource = "magnitude_guess"
)

// Resolution is a monetary field with its currency decided.
type Resolution struct {
	Currency  string
	Amount    decimal.Decimal // as stored, in Currency
	BaseValue decimal.Decimal // Amount in the base currency
	Source    ResolutionSource
}

// CurrencyLedger resolves and converts monetary fields using locked or live rates.
type CurrencyLedger struct {
	base           string
	live           RateTable
	defaultUSDRate decimal.Decimal
	logger         *slog.Logger
}

// NewCurrencyLedger creates a ledger over the live rate table.
// defaultUSDRate is used whenever a table has no USD rate.
func NewCurrencyLedger(base string, live domain.RateSnapshot, defaultUSDRate decimal.Decimal, logger *slog.Logger) *CurrencyLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurrencyLedger{
		base:           normalizeCode(base),
		live:           NewRateTable(base, live),
		defaultUSDRate: defaultUSDRate,
		logger:         logger,
	}
}

// BaseCurrency returns the currency all rates are expressed against.
func (l *CurrencyLedger) BaseCurrency() string {
	return l.base
}

// LiveUSDRate returns base units per USD from the live table.
func (l *CurrencyLedger) LiveUSDRate() decimal.Decimal {
	return l.usdRate(l.live)
}

// RatesFor returns the locked snapshot of rec when it has one, else the live table.
// Locked rates are authoritative so historical reports never drift.
func (l *CurrencyLedger) RatesFor(rec MonetaryRecord) RateTable {
	if locked := rec.LockedRates(); len(locked) > 0 {
		return NewRateTable(l.base, locked)
	}
	return l.live
}

// ResolveAmount decides the true currency of a monetary field.
// Priority: explicit field tag, USD mirror comparison, record tag, magnitude guess.
func (l *CurrencyLedger) ResolveAmount(rec MonetaryRecord, field domain.MoneyField) Resolution {
	res := l.resolve(rec, field)
	res.BaseValue = l.Convert(res.Amount, res.Currency, l.base, l.RatesFor(rec))
	return res
}

func (l *CurrencyLedger) resolve(rec MonetaryRecord, field domain.MoneyField) Resolution {
	m := rec.MoneyField(field)

	if tag := normalizeCode(m.Currency); tag != "" {
		return Resolution{Currency: tag, Amount: m.Amount, Source: SourceExplicitTag}
	}

	if m.USDMirror != nil && m.USDMirror.IsPositive() && m.Amount.IsPositive() {
		if m.Amount.Equal(*m.USDMirror) {
			return Resolution{Currency: domain.USD, Amount: m.Amount, Source: SourceUSDMirror}
		}
		usdRate := l.usdRate(l.RatesFor(rec))
		if m.Amount.Div(usdRate).Sub(*m.USDMirror).Abs().LessThanOrEqual(mirrorTolerance) {
			return Resolution{Currency: l.base, Amount: m.Amount, Source: SourceUSDMirror}
		}
	}

	if tag := normalizeCode(rec.RecordCurrency()); tag != "" {
		return Resolution{Currency: tag, Amount: m.Amount, Source: SourceRecordTag}
	}

	if m.Amount.IsZero() {
		return Resolution{Currency: l.base, Amount: m.Amount, Source: SourceRecordTag}
	}

	guess := legacyCurrencyGuess(m.Amount, detectRecordCurrency(rec, l.base), l.base)
	l.logger.Warn("Currency of monetary field guessed from magnitude",
		slog.String("field", string(field)),
		slog.String("amount", m.Amount.String()),
		slog.String("currency", guess))
	return Resolution{Currency: guess, Amount: m.Amount, Source: SourceMagnitudeGuess}
}

// ToUSD converts a monetary field of rec to USD.
func (l *CurrencyLedger) ToUSD(rec MonetaryRecord, field domain.MoneyField) decimal.Decimal {
	res := l.resolve(rec, field)
	return l.Convert(res.Amount, res.Currency, domain.USD, l.RatesFor(rec))
}

// ToBase converts a monetary field of rec to the base currency.
func (l *CurrencyLedger) ToBase(rec MonetaryRecord, field domain.MoneyField) decimal.Decimal {
	return l.ResolveAmount(rec, field).BaseValue
}

// LiveToUSD converts an amount at live rates.
func (l *CurrencyLedger) LiveToUSD(amount decimal.Decimal, currency string) decimal.Decimal {
	return l.Convert(amount, currency, domain.USD, l.live)
}

// LiveConvert converts amount between two currencies at live rates.
func (l *CurrencyLedger) LiveConvert(amount decimal.Decimal, from, to string) decimal.Decimal {
	return l.Convert(amount, from, to, l.live)
}

// Convert moves amount from one currency to another through the base currency.
func (l *CurrencyLedger) Convert(amount decimal.Decimal, from, to string, table RateTable) decimal.Decimal {
	from, to = normalizeCode(from), normalizeCode(to)
	if from == "" {
		from = l.base
	}
	if from == to || amount.IsZero() {
		return amount
	}
	inBase := amount.Mul(l.rateToBase(table, from))
	return inBase.Div(l.rateToBase(table, to))
}

func (l *CurrencyLedger) rateToBase(table RateTable, code string) decimal.Decimal {
	if code == domain.USD {
		return l.usdRate(table)
	}
	if rate, ok := table.RateToBase(code); ok {
		return rate
	}
	// Unknown currencies are treated as USD-valued rather than failing the report.
	l.logger.Warn("No rate for currency, treating it as USD valued",
		slog.String("currency", code))
	return l.usdRate(table)
}

func (l *CurrencyLedger) usdRate(table RateTable) decimal.Decimal {
	if rate, ok := table.RateToBase(domain.USD); ok {
		return rate
	}
	l.logger.Warn("USD rate missing, using default rate",
		slog.String("default_rate", l.defaultUSDRate.String()))
	return l.defaultUSDRate
}

// Magnitude bands for legacyCurrencyGuess.
var (
	usdFractionCeiling = one
	baseCurrencyFloor  = decimal.NewFromInt(10000)
)

// legacyCurrencyGuess infers the currency of an untagged legacy amount from its size.
// Values under 1 are taken as USD, values from baseCurrencyFloor up as the base
// currency, and the band in between falls back to the record's detected currency.
// It is a heuristic kept for old records and may misclassify mid-range values.
func legacyCurrencyGuess(value decimal.Decimal, recordGuess, base string) string {
	abs := value.Abs()
	switch {
	case abs.IsPositive() && abs.LessThan(usdFractionCeiling):
		return domain.USD
	case abs.GreaterThanOrEqual(baseCurrencyFloor):
		return base
	default:
		return recordGuess
	}
}

// detectRecordCurrency guesses a whole record's currency from its headline amount.
func detectRecordCurrency(rec MonetaryRecord, base string) string {
	headline := rec.MoneyField(domain.FieldTotalAmount).Amount
	if headline.IsZero() {
		headline = rec.MoneyField(domain.FieldAmount).Amount
	}
	if headline.Abs().GreaterThanOrEqual(baseCurrencyFloor) {
		return base
	}
	return domain.USD
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
