package repositories

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
)

// CurrencyRateReader defines read operations for live currency rates
type CurrencyRateReader interface {
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)
	FindCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for live currency rates
type CurrencyRateWriter interface {
	// UpsertCurrencyRate inserts the rate or replaces the existing one for its code.
	UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error
}

// CurrencyRateRepositoryFacade combines all currency rate repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
