package services

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
)

// CurrencyRateReaderSvc defines read operations for live currency rates
type CurrencyRateReaderSvc interface {
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// LiveRates returns the current rates keyed by currency code.
	LiveRates(ctx context.Context) (domain.RateSnapshot, error)
}

// CurrencyRateWriterSvc defines write operations for live currency rates
type CurrencyRateWriterSvc interface {
	// UpsertRate records a manually entered rate for a currency.
	UpsertRate(ctx context.Context, currencyCode string, req dto.UpsertCurrencyRateRequest, userID string) (*domain.CurrencyRate, error)
}

// CurrencyRateSvcFacade combines all currency rate service interfaces
type CurrencyRateSvcFacade interface {
	CurrencyRateReaderSvc
	CurrencyRateWriterSvc
}
