package dto

import (
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertCurrencyRateRequest sets the live rate of one currency against the base currency.
type UpsertCurrencyRateRequest struct {
	RateToBase decimal.Decimal `json:"rateToBase" binding:"required,decimalgt0"`
	Symbol     string          `json:"symbol"`
}

// CurrencyRateResponse defines the data returned for a currency rate.
type CurrencyRateResponse struct {
	CurrencyCode  string            `json:"currencyCode"`
	RateToBase    decimal.Decimal   `json:"rateToBase"`
	Symbol        string            `json:"symbol"`
	Source        domain.RateSource `json:"source"`
	FetchedAt     *time.Time        `json:"fetchedAt,omitempty"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy string            `json:"lastUpdatedBy"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to CurrencyRateResponse DTO
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		CurrencyCode:  rate.CurrencyCode,
		RateToBase:    rate.RateToBase,
		Symbol:        rate.Symbol,
		Source:        rate.Source,
		FetchedAt:     rate.FetchedAt,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// ToListCurrencyRateResponse converts a slice of domain.CurrencyRate to a slice of CurrencyRateResponse DTOs
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i := range rates {
		res[i] = ToCurrencyRateResponse(&rates[i])
	}
	return res
}
