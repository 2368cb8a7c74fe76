package handlers_test

import (
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestListRates_Success() {
	suite.mockCurrencyRate.On("ListRates", mock.Anything).Return([]domain.CurrencyRate{
		{CurrencyCode: domain.USD, RateToBase: decimal.NewFromInt(50), Source: domain.RateSourceManual},
		{CurrencyCode: "EUR", RateToBase: decimal.NewFromInt(54), Source: domain.RateSourceAPI},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency-rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.CurrencyRateResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 2)
	suite.Equal(domain.USD, res[0].CurrencyCode)
}

func (suite *HandlerTestSuite) TestListRates_Failure() {
	suite.mockCurrencyRate.On("ListRates", mock.Anything).Return(nil, errors.New("db down")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency-rates", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "db down")
}

func (suite *HandlerTestSuite) TestUpsertRate_UppercasesCode() {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	suite.mockCurrencyRate.On("UpsertRate", mock.Anything, "USD",
		mock.MatchedBy(func(req dto.UpsertCurrencyRateRequest) bool {
			return req.RateToBase.Equal(decimal.RequireFromString("48.5"))
		}),
		suite.userID,
	).Return(&domain.CurrencyRate{
		CurrencyCode: domain.USD,
		RateToBase:   decimal.RequireFromString("48.5"),
		Source:       domain.RateSourceManual,
		FetchedAt:    &now,
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/currency-rates/usd", `{"rateToBase":"48.5","symbol":"$"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.CurrencyRateResponse
	suite.decode(w, &res)
	suite.Equal(domain.RateSourceManual, res.Source)
}

func (suite *HandlerTestSuite) TestUpsertRate_RejectsNegativeRate() {
	w := suite.do(http.MethodPut, "/api/v1/currency-rates/USD", `{"rateToBase":-1}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}
