package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
)

type currencyRateService struct {
	BaseService
	rateRepo     portsrepo.CurrencyRateRepositoryFacade
	baseCurrency string
}

// CurrencyRateServiceOption is a functional option for configuring the currency rate service
type CurrencyRateServiceOption func(*currencyRateService)

// WithCurrencyRateClock overrides the clock used for audit fields.
func WithCurrencyRateClock(now func() time.Time) CurrencyRateServiceOption {
	return func(s *currencyRateService) {
		s.now = now
	}
}

// NewCurrencyRateService creates a new currency rate service
func NewCurrencyRateService(rateRepo portsrepo.CurrencyRateRepositoryFacade, baseCurrency string, options ...CurrencyRateServiceOption) portssvc.CurrencyRateSvcFacade {
	svc := &currencyRateService{rateRepo: rateRepo, baseCurrency: strings.ToUpper(baseCurrency)}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencyRateSvcFacade = (*currencyRateService)(nil)

func (s *currencyRateService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency rates")
		return nil, fmt.Errorf("failed to list currency rates in service: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

func (s *currencyRateService) LiveRates(ctx context.Context) (domain.RateSnapshot, error) {
	rates, err := s.ListRates(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SnapshotFromRates(rates), nil
}

func (s *currencyRateService) UpsertRate(ctx context.Context, currencyCode string, req dto.UpsertCurrencyRateRequest, userID string) (*domain.CurrencyRate, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(code) != 3 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid currency code %q", currencyCode))
	}
	if code == s.baseCurrency {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s is the base currency and always has rate 1", code))
	}
	if !req.RateToBase.IsPositive() {
		return nil, apperrors.NewValidationError("rate must be positive")
	}

	now := s.Now()
	rate := domain.CurrencyRate{
		CurrencyCode: code,
		RateToBase:   req.RateToBase,
		Symbol:       req.Symbol,
		Source:       domain.RateSourceManual,
		FetchedAt:    &now,
	}
	rate.Stamp(userID, now)

	if err := s.rateRepo.UpsertCurrencyRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to upsert currency rate", slog.String("currency", code))
		return nil, fmt.Errorf("failed to upsert currency rate in service: %w", err)
	}

	s.LogInfo(ctx, "Currency rate updated", slog.String("currency", code), slog.String("rate_to_base", rate.RateToBase.String()))
	return &rate, nil
}
