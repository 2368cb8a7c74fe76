package dto

import (
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// FundMovementRequest defines a manual deposit into or withdrawal from the development fund.
type FundMovementRequest struct {
	Amount          decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	AmountEGP       decimal.Decimal `json:"amountEGP" binding:"decimalgte0"`
	Currency        string          `json:"currency" binding:"required,iso4217"`
	Description     string          `json:"description" binding:"required"`
	TransactionDate *time.Time      `json:"transactionDate,omitempty"`
}

// InventoryPurchaseRequest records an inventory item paid for out of the development fund.
type InventoryPurchaseRequest struct {
	InventoryItemID string          `json:"inventoryItemID" binding:"required"`
	ItemName        string          `json:"itemName" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	AmountEGP       decimal.Decimal `json:"amountEGP" binding:"decimalgte0"`
	Currency        string          `json:"currency" binding:"required,iso4217"`
}

// ListFundTransactionsParams defines the query parameters for listing fund transactions.
type ListFundTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// FundTransactionResponse defines the data returned for a fund transaction.
type FundTransactionResponse struct {
	TransactionID     string                     `json:"transactionID"`
	Type              domain.FundTransactionType `json:"type"`
	Amount            decimal.Decimal            `json:"amount"`
	AmountEGP         decimal.Decimal            `json:"amountEGP"`
	Currency          string                     `json:"currency"`
	Description       string                     `json:"description"`
	BookingID         *string                    `json:"bookingID,omitempty"`
	InventoryItemID   *string                    `json:"inventoryItemID,omitempty"`
	IsSystemGenerated bool                       `json:"isSystemGenerated"`
	TransactionDate   time.Time                  `json:"transactionDate"`
	CreatedAt         time.Time                  `json:"createdAt"`
	CreatedBy         string                     `json:"createdBy"`
}

// FundMutationResponse is returned by deposits and withdrawals.
// Warning is set when the fund balance went negative.
type FundMutationResponse struct {
	Transaction FundTransactionResponse `json:"transaction"`
	Warning     string                  `json:"warning,omitempty"`
}

// FundBalanceResponse is the development fund balance in both denominations.
type FundBalanceResponse struct {
	USD decimal.Decimal `json:"usd"`
	EGP decimal.Decimal `json:"egp"`
}

// ListFundTransactionsResponse is one page of the fund ledger.
type ListFundTransactionsResponse struct {
	Transactions []FundTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToFundTransactionResponse converts a domain.FundTransaction to FundTransactionResponse DTO
func ToFundTransactionResponse(tx *domain.FundTransaction) FundTransactionResponse {
	return FundTransactionResponse{
		TransactionID:     tx.TransactionID,
		Type:              tx.Type,
		Amount:            utils.RoundMoney(tx.Amount),
		AmountEGP:         utils.RoundMoney(tx.AmountEGP),
		Currency:          tx.Currency,
		Description:       tx.Description,
		BookingID:         tx.BookingID,
		InventoryItemID:   tx.InventoryItemID,
		IsSystemGenerated: tx.IsSystemGenerated,
		TransactionDate:   tx.TransactionDate,
		CreatedAt:         tx.CreatedAt,
		CreatedBy:         tx.CreatedBy,
	}
}

// ToListFundTransactionsResponse converts a page of fund transactions.
func ToListFundTransactionsResponse(txs []domain.FundTransaction, nextToken *string) ListFundTransactionsResponse {
	res := ListFundTransactionsResponse{
		Transactions: make([]FundTransactionResponse, len(txs)),
		NextToken:    nextToken,
	}
	for i := range txs {
		res.Transactions[i] = ToFundTransactionResponse(&txs[i])
	}
	return res
}

// ToFundBalanceResponse converts a domain.FundBalance.
func ToFundBalanceResponse(bal domain.FundBalance) FundBalanceResponse {
	return FundBalanceResponse{USD: utils.RoundMoney(bal.USD), EGP: utils.RoundMoney(bal.EGP)}
}
