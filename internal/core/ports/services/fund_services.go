package services

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
)

// FundReaderSvc defines read operations for the development fund
type FundReaderSvc interface {
	Balance(ctx context.Context) (*domain.FundBalance, error)
	ListTransactions(ctx context.Context, params dto.ListFundTransactionsParams) ([]domain.FundTransaction, *string, error)
}

// FundWriterSvc defines write operations for the development fund
type FundWriterSvc interface {
	Deposit(ctx context.Context, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, error)

	// Withdraw records a withdrawal. The returned warning is non-empty when the fund goes negative.
	Withdraw(ctx context.Context, req dto.FundMovementRequest, userID string) (*domain.FundTransaction, string, error)

	RecordInventoryPurchase(ctx context.Context, req dto.InventoryPurchaseRequest, userID string) (*domain.FundTransaction, string, error)
}

// FundSvcFacade combines all fund-related service interfaces
type FundSvcFacade interface {
	FundReaderSvc
	FundWriterSvc
}
