package repositories

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
)

// BookingWrite is everything a single booking operation persists.
// Implementations must write it atomically.
type BookingWrite struct {
	Booking domain.Booking
	IsNew   bool

	// TransferSource is the booking the guest moved from; it is updated alongside Booking.
	TransferSource *domain.Booking
	// TransferExpense is the transfer_commission expense created for a guest transfer.
	TransferExpense *domain.Expense

	// FundEntry is the development-fund entry linked to Booking, inserted when FundEntryIsNew.
	FundEntry      *domain.FundTransaction
	FundEntryIsNew bool
}

// BookingReader defines read operations for bookings
type BookingReader interface {
	// FindBookingByID retrieves a booking, returning apperrors.ErrNotFound when missing.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves every booking, optionally limited to one apartment.
	ListBookings(ctx context.Context, apartmentID string) ([]domain.Booking, error)
}

// BookingWriter defines write operations for bookings
type BookingWriter interface {
	// ApplyBookingWrite persists a booking together with its side effects in one transaction.
	ApplyBookingWrite(ctx context.Context, write BookingWrite) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

// BookingRepositoryWithTx extends BookingRepositoryFacade with transaction capabilities
type BookingRepositoryWithTx interface {
	BookingRepositoryFacade
	TransactionManager
}
