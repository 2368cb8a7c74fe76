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

type PgxApartmentRepository struct {
	BaseRepository
}

// newPgxApartmentRepository creates a new repository for apartments and their partner rosters.
func newPgxApartmentRepository(pool *pgxpool.Pool) portsrepo.ApartmentRepositoryFacade {
	return &PgxApartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ApartmentRepositoryFacade = (*PgxApartmentRepository)(nil)

const selectApartmentQuery = `
		SELECT apartment_id, name, default_commission_rate, monthly_expenses, investment_amount_usd,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM apartments`

// Type and percentage come from the roster row; the partner record only supplies the name.
const selectRosterQuery = `
		SELECT ap.apartment_id, ap.partner_id, p.name, ap.partner_type, ap.percentage
		FROM apartment_partners ap
		JOIN partners p ON p.partner_id = ap.partner_id
		WHERE ($1::text = '' OR ap.apartment_id = $1)
		ORDER BY ap.apartment_id, ap.position, p.name;`

func scanApartment(row pgx.Row) (models.Apartment, error) {
	var m models.Apartment
	err := row.Scan(
		&m.ApartmentID, &m.Name, &m.DefaultCommissionRate, &m.MonthlyExpenses, &m.InvestmentAmountUSD,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// loadRosters returns the roster rows grouped by apartment ID.
func (r *PgxApartmentRepository) loadRosters(ctx context.Context, apartmentID string) (map[string][]models.ApartmentPartner, error) {
	rows, err := r.Pool.Query(ctx, selectRosterQuery, apartmentID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query apartment partners", err)
	}
	defer rows.Close()

	rosters := make(map[string][]models.ApartmentPartner)
	for rows.Next() {
		var p models.ApartmentPartner
		if err := rows.Scan(&p.ApartmentID, &p.PartnerID, &p.PartnerName, &p.Type, &p.Percentage); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan apartment partner row", err)
		}
		rosters[p.ApartmentID] = append(rosters[p.ApartmentID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating apartment partner rows", err)
	}
	return rosters, nil
}

// FindApartmentByID retrieves an apartment with its partner roster.
func (r *PgxApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	m, err := scanApartment(r.Pool.QueryRow(ctx, selectApartmentQuery+" WHERE apartment_id = $1;", apartmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("apartment " + apartmentID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find apartment by ID "+apartmentID, err)
	}

	rosters, err := r.loadRosters(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	apartment, err := mapping.ToDomainApartment(m, rosters[apartmentID])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode apartment "+apartmentID, err)
	}
	return &apartment, nil
}

// ListApartments retrieves every apartment with its partner roster, ordered by name.
func (r *PgxApartmentRepository) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	rows, err := r.Pool.Query(ctx, selectApartmentQuery+" ORDER BY name, apartment_id;")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query apartments", err)
	}
	defer rows.Close()

	var apartmentModels []models.Apartment
	for rows.Next() {
		m, err := scanApartment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan apartment row", err)
		}
		apartmentModels = append(apartmentModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating apartment rows", err)
	}
	rows.Close()

	rosters, err := r.loadRosters(ctx, "")
	if err != nil {
		return nil, err
	}

	apartments := make([]domain.Apartment, 0, len(apartmentModels))
	for _, m := range apartmentModels {
		apartment, err := mapping.ToDomainApartment(m, rosters[m.ApartmentID])
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode apartment "+m.ApartmentID, err)
		}
		apartments = append(apartments, apartment)
	}
	return apartments, nil
}
