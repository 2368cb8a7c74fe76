package services

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
)

// BookingReaderSvc defines read operations for bookings
type BookingReaderSvc interface {
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// BookingWriterSvc defines write operations for bookings
type BookingWriterSvc interface {
	// CreateBooking settles and persists a new booking, locking the live rates.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error)

	// UpdateBooking re-settles an existing booking with the edited values.
	UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest, userID string) (*domain.Booking, error)

	// ExtendBooking moves the checkout forward and adds to the total.
	ExtendBooking(ctx context.Context, bookingID string, req dto.ExtendBookingRequest, userID string) (*domain.Booking, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
