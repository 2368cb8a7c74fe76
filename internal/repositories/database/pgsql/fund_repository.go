package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/stay_ledger_app/internal/models"
	"github.com/SscSPs/stay_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/stay_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var fundTransactionColumns = []string{
	"transaction_id", "transaction_type", "amount", "amount_egp", "currency", "description",
	"booking_id", "inventory_item_id", "is_system_generated", "transaction_date",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

var (
	selectFundTransactionQuery = "SELECT " + strings.Join(fundTransactionColumns, ", ") + " FROM fund_transactions"

	insertFundTransactionQuery = fmt.Sprintf(`
		INSERT INTO fund_transactions (%s)
		VALUES (%s);
	`, strings.Join(fundTransactionColumns, ", "), placeholders(len(fundTransactionColumns)))

	upsertFundTransactionQuery = fmt.Sprintf(`
		INSERT INTO fund_transactions (%s)
		VALUES (%s)
		ON CONFLICT (transaction_id) DO UPDATE SET
			%s;
	`, strings.Join(fundTransactionColumns, ", "), placeholders(len(fundTransactionColumns)),
		excludedSet(fundTransactionColumns, "transaction_id", "created_at", "created_by"))
)

// fundPageOrder is the stable keyset order of the ledger, newest first.
const fundPageOrder = "ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC"

func fundTransactionArgs(m models.FundTransaction) []interface{} {
	return []interface{}{
		m.TransactionID, m.Type, m.Amount, m.AmountEGP, m.Currency, m.Description,
		m.BookingID, m.InventoryItemID, m.IsSystemGenerated, m.TransactionDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func scanFundTransaction(row pgx.Row) (models.FundTransaction, error) {
	var m models.FundTransaction
	err := row.Scan(
		&m.TransactionID, &m.Type, &m.Amount, &m.AmountEGP, &m.Currency, &m.Description,
		&m.BookingID, &m.InventoryItemID, &m.IsSystemGenerated, &m.TransactionDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

type PgxFundRepository struct {
	BaseRepository
}

// newPgxFundRepository creates a new repository for the development fund ledger.
func newPgxFundRepository(pool *pgxpool.Pool) portsrepo.FundRepositoryFacade {
	return &PgxFundRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

// SaveFundTransaction inserts a fund entry or replaces the stored one with the same ID.
func (r *PgxFundRepository) SaveFundTransaction(ctx context.Context, tx domain.FundTransaction) error {
	m := mapping.ToModelFundTransaction(tx)
	if _, err := r.Pool.Exec(ctx, upsertFundTransactionQuery, fundTransactionArgs(m)...); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save fund transaction "+m.TransactionID, err)
	}
	return nil
}

// FindFundTransactionByBookingID retrieves the system entry linked to a booking.
func (r *PgxFundRepository) FindFundTransactionByBookingID(ctx context.Context, bookingID string) (*domain.FundTransaction, error) {
	query := selectFundTransactionQuery + " WHERE booking_id = $1 AND is_system_generated ORDER BY created_at LIMIT 1;"
	m, err := scanFundTransaction(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("fund transaction for booking " + bookingID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find fund transaction for booking "+bookingID, err)
	}
	tx := mapping.ToDomainFundTransaction(m)
	return &tx, nil
}

// ListAllFundTransactions retrieves the whole ledger, newest first.
func (r *PgxFundRepository) ListAllFundTransactions(ctx context.Context) ([]domain.FundTransaction, error) {
	rows, err := r.Pool.Query(ctx, selectFundTransactionQuery+" "+fundPageOrder+";")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query fund transactions", err)
	}
	defer rows.Close()

	var txs []models.FundTransaction
	for rows.Next() {
		m, err := scanFundTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan fund transaction row", err)
		}
		txs = append(txs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating fund transaction rows", err)
	}
	return mapping.ToDomainFundTransactionSlice(txs), nil
}

// ListFundTransactions retrieves one page of the ledger using token-based pagination.
// It returns the transactions, a token for the next page, and an error.
func (r *PgxFundRepository) ListFundTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.FundTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", decodeErr)
		}
		query := selectFundTransactionQuery +
			" WHERE (transaction_date, created_at, transaction_id) < ($1, $2, $3) " + fundPageOrder + " LIMIT $4;"
		rows, err = r.Pool.Query(ctx, query, cursor.Date, cursor.CreatedAt, cursor.ID, fetchLimit)
	} else {
		rows, err = r.Pool.Query(ctx, selectFundTransactionQuery+" "+fundPageOrder+" LIMIT $1;", fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query fund transactions page", err)
	}
	defer rows.Close()

	page := make([]models.FundTransaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanFundTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan fund transaction row", err)
		}
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating fund transaction rows", err)
	}

	var nextTokenVal *string
	if len(page) > limit {
		last := page[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.TransactionDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
		page = page[:limit]
	}
	return mapping.ToDomainFundTransactionSlice(page), nextTokenVal, nil
}
