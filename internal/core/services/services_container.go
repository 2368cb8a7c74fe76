package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/SscSPs/stay_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	opts := EngineOptions(cfg)

	return &portssvc.ServiceContainer{
		Reporting:    NewReportingService(repos, opts),
		Booking:      NewBookingService(repos.BookingRepo, repos.ApartmentRepo, repos.FundRepo, repos.CurrencyRateRepo, opts),
		Fund:         NewFundService(repos.FundRepo, repos.CurrencyRateRepo, opts),
		CurrencyRate: NewCurrencyRateService(repos.CurrencyRateRepo, cfg.BaseCurrency),
	}
}

// EngineOptions maps configuration onto reconciliation engine options.
// Services replace Logger with the request logger on every call.
func EngineOptions(cfg *config.Config) reconciliation.Options {
	return reconciliation.Options{
		BaseCurrency:            cfg.BaseCurrency,
		DefaultUSDRate:          cfg.DefaultUSDRate,
		CompletedBalanceEpsilon: cfg.CompletedBalanceEpsilon,
		Logger:                  slog.Default(),
	}
}
