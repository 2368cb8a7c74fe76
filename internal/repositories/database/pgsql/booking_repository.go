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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var bookingColumns = []string{
	"booking_id", "apartment_id", "room_id", "guest_name", "check_in", "check_out", "currency",
	"total_amount", "total_currency", "total_usd",
	"paid_amount", "paid_currency", "paid_usd",
	"remaining_amount", "remaining_currency", "remaining_usd",
	"payment_method", "payments",
	"platform_commission", "platform_commission_currency", "platform_commission_usd",
	"original_platform_commission", "commission_status", "commission_applied_date",
	"dev_deduction_type", "dev_deduction_value", "development_deduction",
	"final_distributable_amount", "owner_amount", "broker_profit",
	"exchange_rate_at_booking",
	"transfer_from_booking_id", "transferred_to_booking_id",
	"transfer_commission_amount", "transfer_commission_currency", "transfer_commission_usd",
	"notes", "created_at", "created_by", "last_updated_at", "last_updated_by",
}

var (
	selectBookingQuery = "SELECT " + strings.Join(bookingColumns, ", ") + " FROM bookings"

	upsertBookingQuery = fmt.Sprintf(`
		INSERT INTO bookings (%s)
		VALUES (%s)
		ON CONFLICT (booking_id) DO UPDATE SET
			%s;
	`, strings.Join(bookingColumns, ", "), placeholders(len(bookingColumns)),
		excludedSet(bookingColumns, "booking_id", "created_at", "created_by"))
)

// bookingArgs returns the values of m in bookingColumns order.
func bookingArgs(m models.Booking) []interface{} {
	return []interface{}{
		m.BookingID, m.ApartmentID, m.RoomID, m.GuestName, m.CheckIn, m.CheckOut, m.Currency,
		m.TotalAmount, m.TotalCurrency, m.TotalUSD,
		m.PaidAmount, m.PaidCurrency, m.PaidUSD,
		m.RemainingAmount, m.RemainingCurrency, m.RemainingUSD,
		m.PaymentMethod, m.Payments,
		m.PlatformCommission, m.PlatformCommissionCurrency, m.PlatformCommissionUSD,
		m.OriginalPlatformCommission, m.CommissionStatus, m.CommissionAppliedDate,
		m.DevDeductionType, m.DevDeductionValue, m.DevelopmentDeduction,
		m.FinalDistributableAmount, m.OwnerAmount, m.BrokerProfit,
		m.ExchangeRateAtBooking,
		m.TransferFromBookingID, m.TransferredToBookingID,
		m.TransferCommissionAmount, m.TransferCommissionCurrency, m.TransferCommissionUSD,
		m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func scanBooking(row pgx.Row) (models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID, &m.ApartmentID, &m.RoomID, &m.GuestName, &m.CheckIn, &m.CheckOut, &m.Currency,
		&m.TotalAmount, &m.TotalCurrency, &m.TotalUSD,
		&m.PaidAmount, &m.PaidCurrency, &m.PaidUSD,
		&m.RemainingAmount, &m.RemainingCurrency, &m.RemainingUSD,
		&m.PaymentMethod, &m.Payments,
		&m.PlatformCommission, &m.PlatformCommissionCurrency, &m.PlatformCommissionUSD,
		&m.OriginalPlatformCommission, &m.CommissionStatus, &m.CommissionAppliedDate,
		&m.DevDeductionType, &m.DevDeductionValue, &m.DevelopmentDeduction,
		&m.FinalDistributableAmount, &m.OwnerAmount, &m.BrokerProfit,
		&m.ExchangeRateAtBooking,
		&m.TransferFromBookingID, &m.TransferredToBookingID,
		&m.TransferCommissionAmount, &m.TransferCommissionCurrency, &m.TransferCommissionUSD,
		&m.Notes, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for bookings and their side effects.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryWithTx {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBookingRepository implements portsrepo.BookingRepositoryWithTx
var _ portsrepo.BookingRepositoryWithTx = (*PgxBookingRepository)(nil)

// FindBookingByID retrieves a booking by its ID.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	m, err := scanBooking(r.Pool.QueryRow(ctx, selectBookingQuery+" WHERE booking_id = $1;", bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("booking " + bookingID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find booking by ID "+bookingID, err)
	}

	booking, err := mapping.ToDomainBooking(m)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode booking "+bookingID, err)
	}
	return &booking, nil
}

// ListBookings retrieves every booking ordered by check-in, optionally for one apartment.
func (r *PgxBookingRepository) ListBookings(ctx context.Context, apartmentID string) ([]domain.Booking, error) {
	query := selectBookingQuery + " WHERE ($1::text = '' OR apartment_id = $1) ORDER BY check_in, created_at;"
	rows, err := r.Pool.Query(ctx, query, apartmentID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query bookings", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		m, err := scanBooking(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan booking row", err)
		}
		booking, err := mapping.ToDomainBooking(m)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode booking "+m.BookingID, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating booking rows", err)
	}
	return bookings, nil
}

// ApplyBookingWrite saves a booking, the transfer source it replaces, the transfer expense
// and the linked development-fund entry within a single DB transaction.
func (r *PgxBookingRepository) ApplyBookingWrite(ctx context.Context, write portsrepo.BookingWrite) error {
	bookingID := write.Booking.BookingID

	batch := &pgx.Batch{}

	modelBooking, err := mapping.ToModelBooking(write.Booking)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode booking "+bookingID, err)
	}
	batch.Queue(upsertBookingQuery, bookingArgs(modelBooking)...)

	if write.TransferSource != nil {
		modelSource, err := mapping.ToModelBooking(*write.TransferSource)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode transfer source "+write.TransferSource.BookingID, err)
		}
		batch.Queue(upsertBookingQuery, bookingArgs(modelSource)...)
	}

	if write.TransferExpense != nil {
		batch.Queue(insertExpenseQuery, expenseArgs(mapping.ToModelExpense(*write.TransferExpense))...)
	}

	if write.FundEntry != nil {
		modelEntry := mapping.ToModelFundTransaction(*write.FundEntry)
		if write.FundEntryIsNew {
			batch.Queue(insertFundTransactionQuery, fundTransactionArgs(modelEntry)...)
		} else {
			batch.Queue(upsertFundTransactionQuery, fundTransactionArgs(modelEntry)...)
		}
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to execute write batch for booking "+bookingID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit write for booking "+bookingID, err)
	}
	return nil
}
