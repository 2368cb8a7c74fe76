package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func fundTx(id string, txType domain.FundTransactionType, amount int64) *domain.FundTransaction {
	return &domain.FundTransaction{
		TransactionID:   id,
		Type:            txType,
		Amount:          decimal.NewFromInt(amount),
		AmountEGP:       decimal.NewFromInt(amount * 50),
		Currency:        domain.USD,
		Description:     "test movement",
		TransactionDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *HandlerTestSuite) TestFundBalance_Success() {
	suite.mockFund.On("Balance", mock.Anything).
		Return(&domain.FundBalance{USD: decimal.RequireFromString("120.456"), EGP: decimal.NewFromInt(6000)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/fund/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.FundBalanceResponse
	suite.decode(w, &res)
	suite.True(decimal.RequireFromString("120.46").Equal(res.USD), res.USD.String())
	suite.True(decimal.NewFromInt(6000).Equal(res.EGP))
}

func (suite *HandlerTestSuite) TestListFundTransactions_PassesPagination() {
	token := "next-page"
	suite.mockFund.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(p dto.ListFundTransactionsParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "abc"
		}),
	).Return([]domain.FundTransaction{*fundTx("t-1", domain.FundDeposit, 10)}, &token, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/fund/transactions?limit=5&nextToken=abc", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListFundTransactionsResponse
	suite.decode(w, &res)
	suite.Len(res.Transactions, 1)
	suite.Require().NotNil(res.NextToken)
	suite.Equal(token, *res.NextToken)
}

func (suite *HandlerTestSuite) TestListFundTransactions_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/fund/transactions?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeposit_Success() {
	suite.mockFund.On("Deposit", mock.Anything,
		mock.MatchedBy(func(req dto.FundMovementRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(10)) && req.Currency == domain.USD
		}),
		suite.userID,
	).Return(fundTx("t-1", domain.FundDeposit, 10), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/fund/deposits", `{"amount":10,"currency":"USD","description":"top up"}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.FundMutationResponse
	suite.decode(w, &res)
	suite.Equal("t-1", res.Transaction.TransactionID)
	suite.Empty(res.Warning)
}

func (suite *HandlerTestSuite) TestDeposit_RejectsZeroAmount() {
	w := suite.do(http.MethodPost, "/api/v1/fund/deposits", `{"amount":0,"currency":"USD","description":"top up"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestWithdraw_ReturnsOverdraftWarning() {
	warning := "Development fund balance is negative: -30.00 USD"
	suite.mockFund.On("Withdraw", mock.Anything, mock.Anything, suite.userID).
		Return(fundTx("t-2", domain.FundWithdrawal, 50), warning, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/fund/withdrawals", `{"amount":50,"currency":"USD","description":"repairs"}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.FundMutationResponse
	suite.decode(w, &res)
	suite.Equal(warning, res.Warning)
	suite.Equal(domain.FundWithdrawal, res.Transaction.Type)
}

func (suite *HandlerTestSuite) TestInventoryPurchase_MissingItem() {
	w := suite.do(http.MethodPost, "/api/v1/fund/inventory-purchases", `{"itemName":"Kettle","amount":20,"currency":"USD"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}
