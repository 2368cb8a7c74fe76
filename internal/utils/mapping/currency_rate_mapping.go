package mapping

import (
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		CurrencyCode: d.CurrencyCode,
		RateToBase:   d.RateToBase,
		Symbol:       d.Symbol,
		Source:       string(d.Source),
		FetchedAt:    d.FetchedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		CurrencyCode: m.CurrencyCode,
		RateToBase:   m.RateToBase,
		Symbol:       m.Symbol,
		Source:       domain.RateSource(m.Source),
		FetchedAt:    m.FetchedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
