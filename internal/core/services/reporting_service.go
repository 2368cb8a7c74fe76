package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	bookingRepo   portsrepo.BookingReader
	apartmentRepo portsrepo.ApartmentReader
	expenseRepo   portsrepo.ExpenseReader
	rateRepo      portsrepo.CurrencyRateReader
	opts          reconciliation.Options
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the as-of time used for completion and recognition.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, opts reconciliation.Options, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		bookingRepo:   repos.BookingRepo,
		apartmentRepo: repos.ApartmentRepo,
		expenseRepo:   repos.ExpenseRepo,
		rateRepo:      repos.CurrencyRateRepo,
		opts:          opts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// engine returns an engine that logs currency decisions through the request logger.
func (s *reportingService) engine(ctx context.Context) *reconciliation.Engine {
	opts := s.opts
	opts.Logger = s.GetLogger(ctx)
	return reconciliation.NewEngine(opts)
}

// loadSnapshot reads every collection a report needs. Filtering by apartment
// happens in the engine so that general expenses stay visible.
func (s *reportingService) loadSnapshot(ctx context.Context) (reconciliation.Snapshot, error) {
	var snap reconciliation.Snapshot
	var err error

	if snap.Bookings, err = s.bookingRepo.ListBookings(ctx, ""); err != nil {
		s.LogError(ctx, err, "Failed to load bookings for report")
		return snap, fmt.Errorf("failed to load bookings: %w", err)
	}
	if snap.Apartments, err = s.apartmentRepo.ListApartments(ctx); err != nil {
		s.LogError(ctx, err, "Failed to load apartments for report")
		return snap, fmt.Errorf("failed to load apartments: %w", err)
	}
	if snap.Expenses, err = s.expenseRepo.ListExpenses(ctx, ""); err != nil {
		s.LogError(ctx, err, "Failed to load expenses for report")
		return snap, fmt.Errorf("failed to load expenses: %w", err)
	}
	if snap.Rates, err = s.rateRepo.ListCurrencyRates(ctx); err != nil {
		s.LogError(ctx, err, "Failed to load currency rates for report")
		return snap, fmt.Errorf("failed to load currency rates: %w", err)
	}
	return snap, nil
}

// Dashboard builds the financial report for the requested period
func (s *reportingService) Dashboard(ctx context.Context, query dto.DashboardQuery) (*domain.FinancialReport, error) {
	period, err := reconciliation.ParsePeriod(query.Year, query.Month)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	strategy := reconciliation.StrategyByName(query.Strategy)
	report := s.engine(ctx).BuildReport(snap, reconciliation.ReportQuery{Period: period, ApartmentID: query.ApartmentID}, strategy, s.Now())

	s.LogInfo(ctx, "Dashboard report generated",
		slog.String("period", period.String()),
		slog.String("apartment_id", query.ApartmentID),
		slog.String("strategy", strategy.Name()),
		slog.Int("booking_count", len(report.Bookings)))
	return &report, nil
}

// MonthlySummary builds the twelve-month statement for a year
func (s *reportingService) MonthlySummary(ctx context.Context, year int, apartmentID string) ([]domain.MonthlySummaryRow, error) {
	if _, err := reconciliation.ParsePeriod(year, 0); err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows := s.engine(ctx).BuildMonthlySummary(snap, year, apartmentID, s.Now())
	s.LogInfo(ctx, "Monthly summary generated", slog.Int("year", year), slog.String("apartment_id", apartmentID))
	return rows, nil
}

// ROI compares invested capital with cumulative operating profit
func (s *reportingService) ROI(ctx context.Context, apartmentID string) ([]domain.ApartmentROI, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows := s.engine(ctx).BuildROI(snap, apartmentID, s.Now())
	s.LogInfo(ctx, "ROI report generated", slog.String("apartment_id", apartmentID), slog.Int("row_count", len(rows)))
	return rows, nil
}
