package repositories

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses
type ExpenseReader interface {
	// ListExpenses retrieves every expense, optionally limited to one apartment.
	ListExpenses(ctx context.Context, apartmentID string) ([]domain.Expense, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
}
