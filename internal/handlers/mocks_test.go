package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/handlers"
	"github.com/SscSPs/stay_ledger_app/internal/middleware"
	"github.com/SscSPs/stay_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ExtendBooking(ctx context.Context, bookingID string, req dto.ExtendBookingRequest, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Mock FundService ---
type MockFundService struct {
	mock.Mock
}

func (m *MockFundService) Balance(ctx context.Context) (*domain.FundBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundBalance), args.Error(1)
}

func (m *MockFundService) ListTransactions(ctx context.Context, params dto.ListFundTransactionsParams) ([]domain.FundTransaction, *string, error) {
	args := m.Called(ctx, params)
	var txs []domain.FundTransaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]domain.FundTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txs, token, args.Error(2)
}

func (m *MockFundService) Deposit(ctx context.Context, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundTransaction), args.Error(1)
}

func (m *MockFundService) Withdraw(ctx context.Context, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, string, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.FundTransaction), args.String(1), args.Error(2)
}

func (m *MockFundService) RecordInventoryPurchase(ctx context.Context, req dto.InventoryPurchaseRequest, userID string) (*domain.FundTransaction, string, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.FundTransaction), args.String(1), args.Error(2)
}

var _ portssvc.FundSvcFacade = (*MockFundService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Dashboard(ctx context.Context, query dto.DashboardQuery) (*domain.FinancialReport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialReport), args.Error(1)
}

func (m *MockReportingService) MonthlySummary(ctx context.Context, year int, apartmentID string) ([]domain.MonthlySummaryRow, error) {
	args := m.Called(ctx, year, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummaryRow), args.Error(1)
}

func (m *MockReportingService) ROI(ctx context.Context, apartmentID string) ([]domain.ApartmentROI, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApartmentROI), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock CurrencyRateService ---
type MockCurrencyRateService struct {
	mock.Mock
}

func (m *MockCurrencyRateService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateService) LiveRates(ctx context.Context) (domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateSnapshot), args.Error(1)
}

func (m *MockCurrencyRateService) UpsertRate(ctx context.Context, currencyCode string, req dto.UpsertCurrencyRateRequest, userID string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

var _ portssvc.CurrencyRateSvcFacade = (*MockCurrencyRateService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockBooking      *MockBookingService
	mockFund         *MockFundService
	mockReporting    *MockReportingService
	mockCurrencyRate *MockCurrencyRateService
	jwtSecret        string
	userID           string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockBooking = new(MockBookingService)
	suite.mockFund = new(MockFundService)
	suite.mockReporting = new(MockReportingService)
	suite.mockCurrencyRate = new(MockCurrencyRateService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterBookingRoutes(v1, suite.mockBooking)
	handlers.RegisterFundRoutes(v1, suite.mockFund)
	handlers.RegisterReportingRoutes(v1, suite.mockReporting)
	handlers.RegisterCurrencyRateRoutes(v1, suite.mockCurrencyRate)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockBooking.AssertExpectations(suite.T())
	suite.mockFund.AssertExpectations(suite.T())
	suite.mockReporting.AssertExpectations(suite.T())
	suite.mockCurrencyRate.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for the suite's user.
func (suite *HandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "stay-ledger-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

// do sends an authenticated request. A nil body sends no payload.
func (suite *HandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			payload = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			suite.Require().NoError(err)
			payload = bytes.NewBuffer(raw)
		}
	} else {
		payload = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, payload)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return suite.serve(req)
}

func (suite *HandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded JSON body into out.
func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
