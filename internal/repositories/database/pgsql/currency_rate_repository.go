package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/stay_ledger_app/internal/models"
	"github.com/SscSPs/stay_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRateRepository struct {
	BaseRepository
}

// newPgxCurrencyRateRepository creates a new repository for live currency rates.
func newPgxCurrencyRateRepository(pool *pgxpool.Pool) portsrepo.CurrencyRateRepositoryFacade {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRateRepositoryFacade = (*PgxCurrencyRateRepository)(nil)

const selectCurrencyRateQuery = `
		SELECT currency_code, rate_to_base, symbol, source, fetched_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM currency_rates`

func scanCurrencyRate(row pgx.Row) (models.CurrencyRate, error) {
	var m models.CurrencyRate
	err := row.Scan(
		&m.CurrencyCode, &m.RateToBase, &m.Symbol, &m.Source, &m.FetchedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// UpsertCurrencyRate inserts a rate or replaces the one stored for its currency code.
func (r *PgxCurrencyRateRepository) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	m := mapping.ToModelCurrencyRate(rate)

	query := `
		INSERT INTO currency_rates (currency_code, rate_to_base, symbol, source, fetched_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (currency_code) DO UPDATE SET
			rate_to_base = EXCLUDED.rate_to_base,
			symbol = EXCLUDED.symbol,
			source = EXCLUDED.source,
			fetched_at = EXCLUDED.fetched_at,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CurrencyCode, m.RateToBase, m.Symbol, m.Source, m.FetchedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save currency rate "+m.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyRateByCode retrieves the live rate of one currency.
func (r *PgxCurrencyRateRepository) FindCurrencyRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	m, err := scanCurrencyRate(r.Pool.QueryRow(ctx, selectCurrencyRateQuery+" WHERE currency_code = $1;", currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency rate " + currencyCode + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find currency rate "+currencyCode, err)
	}
	rate := mapping.ToDomainCurrencyRate(m)
	return &rate, nil
}

// ListCurrencyRates retrieves all live rates ordered by code.
func (r *PgxCurrencyRateRepository) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rows, err := r.Pool.Query(ctx, selectCurrencyRateQuery+" ORDER BY currency_code;")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query currency rates", err)
	}
	defer rows.Close()

	rates := []domain.CurrencyRate{}
	for rows.Next() {
		m, err := scanCurrencyRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan currency rate row", err)
		}
		rates = append(rates, mapping.ToDomainCurrencyRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating currency rate rows", err)
	}
	return rates, nil
}
