package services_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/stay_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// testCtx carries a logger that discards output.
func testCtx() context.Context {
	return middleware.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, apartmentID string) ([]domain.Booking, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ApplyBookingWrite(ctx context.Context, write portsrepo.BookingWrite) error {
	args := m.Called(ctx, write)
	return args.Error(0)
}

// --- Mock ApartmentRepository ---
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Apartment), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, apartmentID string) ([]domain.Expense, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Mock FundRepository ---
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) ListAllFundTransactions(ctx context.Context) ([]domain.FundTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundTransaction), args.Error(1)
}

func (m *MockFundRepository) ListFundTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.FundTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.FundTransaction), next, args.Error(2)
}

func (m *MockFundRepository) FindFundTransactionByBookingID(ctx context.Context, bookingID string) (*domain.FundTransaction, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundTransaction), args.Error(1)
}

func (m *MockFundRepository) SaveFundTransaction(ctx context.Context, tx domain.FundTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func usdRates(rate string) []domain.CurrencyRate {
	return []domain.CurrencyRate{{CurrencyCode: domain.USD, RateToBase: dec(rate), Source: domain.RateSourceManual}}
}
