package handlers_test

import (
	"net/http"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestDashboard_Success() {
	report := &domain.FinancialReport{
		Year:  2026,
		Month: 3,
		Summary: domain.ReportSummary{
			TotalRevenue:         decimal.NewFromInt(1000),
			TotalOperatingProfit: decimal.NewFromInt(850),
			USDRate:              decimal.NewFromInt(50),
		},
		ApartmentFinancials: []domain.ApartmentFinancials{
			{ApartmentID: "apt-1", ApartmentName: "Nile View", Revenue: decimal.NewFromInt(1000), BookingCount: 1},
		},
	}
	suite.mockReporting.On("Dashboard", mock.Anything,
		mock.MatchedBy(func(q dto.DashboardQuery) bool {
			return q.Year == 2026 && q.Month == 3 && q.ApartmentID == "apt-1"
		}),
	).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard?year=2026&month=3&apartmentId=apt-1", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.FinancialReportResponse
	suite.decode(w, &res)
	suite.True(decimal.NewFromInt(1000).Equal(res.Summary.TotalRevenue))
	suite.True(decimal.NewFromInt(850).Equal(res.Summary.TotalOperatingProfit))
	suite.Require().Len(res.ApartmentFinancials, 1)
	suite.Equal("Nile View", res.ApartmentFinancials[0].ApartmentName)
	suite.NotNil(res.Bookings)
}

func (suite *HandlerTestSuite) TestDashboard_InvalidQuery() {
	testCases := []struct {
		name  string
		query string
	}{
		{"month out of range", "?year=2026&month=13"},
		{"year out of range", "?year=1900"},
		{"unknown strategy", "?year=2026&strategy=weekly"},
		{"non numeric year", "?year=abc"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(http.MethodGet, "/api/v1/reports/dashboard"+tc.query, nil)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestDashboard_ServiceValidationError() {
	suite.mockReporting.On("Dashboard", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("month requires a year")).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/dashboard?month=3", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "month requires a year")
}

func (suite *HandlerTestSuite) TestMonthlySummary_RequiresYear() {
	w := suite.do(http.MethodGet, "/api/v1/reports/monthly-summary", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestMonthlySummary_Success() {
	rows := make([]domain.MonthlySummaryRow, 12)
	for i := range rows {
		rows[i] = domain.MonthlySummaryRow{Year: 2026, Month: i + 1}
	}
	rows[2].Revenue = decimal.NewFromInt(1000)
	suite.mockReporting.On("MonthlySummary", mock.Anything, 2026, "").Return(rows, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/monthly-summary?year=2026", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res []dto.MonthlySummaryRowResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 12)
	suite.True(decimal.NewFromInt(1000).Equal(res[2].Revenue))
}

func (suite *HandlerTestSuite) TestROI_Success() {
	payback := 16
	suite.mockReporting.On("ROI", mock.Anything, "apt-1").Return([]domain.ApartmentROI{
		{
			ApartmentID:       "apt-1",
			InvestedUSD:       decimal.NewFromInt(1700),
			OperatingProfit:   decimal.NewFromInt(850),
			ROIPercent:        decimal.NewFromInt(50),
			MonthsOperating:   8,
			MonthsToPayback:   &payback,
			AverageMonthlyUSD: decimal.RequireFromString("106.25"),
		},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/roi?apartmentId=apt-1", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res []dto.ApartmentROIResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 1)
	suite.True(decimal.NewFromInt(50).Equal(res[0].ROIPercent))
	suite.Require().NotNil(res[0].MonthsToPayback)
	suite.Equal(16, *res[0].MonthsToPayback)
}
