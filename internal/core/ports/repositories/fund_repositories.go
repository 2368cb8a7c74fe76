package repositories

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
)

// FundReader defines read operations for the development fund ledger
type FundReader interface {
	// ListAllFundTransactions retrieves the whole ledger for balance computation.
	ListAllFundTransactions(ctx context.Context) ([]domain.FundTransaction, error)

	// ListFundTransactions retrieves one page, newest first.
	ListFundTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.FundTransaction, *string, error)

	// FindFundTransactionByBookingID retrieves the entry linked to a booking, or apperrors.ErrNotFound.
	FindFundTransactionByBookingID(ctx context.Context, bookingID string) (*domain.FundTransaction, error)
}

// FundWriter defines write operations for the development fund ledger
type FundWriter interface {
	SaveFundTransaction(ctx context.Context, tx domain.FundTransaction) error
}

// FundRepositoryFacade combines all fund-related repository interfaces
type FundRepositoryFacade interface {
	FundReader
	FundWriter
}
