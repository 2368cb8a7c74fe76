package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/stay_ledger_app/internal/models"
	"github.com/SscSPs/stay_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var expenseColumns = []string{
	"expense_id", "apartment_id", "booking_id", "category", "description",
	"amount", "amount_currency", "amount_usd", "currency", "expense_date",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

var insertExpenseQuery = fmt.Sprintf(`
		INSERT INTO expenses (%s)
		VALUES (%s);
	`, strings.Join(expenseColumns, ", "), placeholders(len(expenseColumns)))

func expenseArgs(m models.Expense) []interface{} {
	return []interface{}{
		m.ExpenseID, m.ApartmentID, m.BookingID, m.Category, m.Description,
		m.Amount, m.AmountCurrency, m.AmountUSD, m.Currency, m.ExpenseDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// ListExpenses retrieves every expense ordered by date, optionally for one apartment.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, apartmentID string) ([]domain.Expense, error) {
	query := "SELECT " + strings.Join(expenseColumns, ", ") + ` FROM expenses
		WHERE ($1::text = '' OR apartment_id = $1)
		ORDER BY expense_date, created_at;`

	rows, err := r.Pool.Query(ctx, query, apartmentID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query expenses", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID, &m.ApartmentID, &m.BookingID, &m.Category, &m.Description,
			&m.Amount, &m.AmountCurrency, &m.AmountUSD, &m.Currency, &m.ExpenseDate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan expense row", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating expense rows", err)
	}
	return expenses, nil
}
