package dto

import (
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// PaymentRequest is one payment sub-ledger entry.
type PaymentRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Currency string          `json:"currency" binding:"omitempty,iso4217"`
	Method   string          `json:"method"`
	PaidAt   *time.Time      `json:"paidAt,omitempty"`
}

// CreateBookingRequest defines the data needed to create a booking.
type CreateBookingRequest struct {
	ApartmentID        string                  `json:"apartmentID" binding:"required"`
	RoomID             string                  `json:"roomID"`
	GuestName          string                  `json:"guestName" binding:"required"`
	CheckIn            time.Time               `json:"checkIn" binding:"required"`
	CheckOut           *time.Time              `json:"checkOut,omitempty"`
	Currency           string                  `json:"currency" binding:"required,iso4217"`
	TotalAmount        decimal.Decimal         `json:"totalAmount" binding:"required,decimalgt0"`
	PaidAmount         decimal.Decimal         `json:"paidAmount" binding:"decimalgte0"`
	PaymentMethod      string                  `json:"paymentMethod"`
	Payments           []PaymentRequest        `json:"payments" binding:"omitempty,dive"`
	PlatformCommission *decimal.Decimal        `json:"platformCommission,omitempty" binding:"omitempty,decimalgte0"`
	DevDeductionType   domain.DevDeductionType `json:"devDeductionType" binding:"omitempty,devdeduction"`
	DevDeductionValue  decimal.Decimal         `json:"devDeductionValue" binding:"decimalgte0"`
	// TransferFromBookingID moves the guest from another unit's active booking.
	TransferFromBookingID *string `json:"transferFromBookingID,omitempty"`
	Notes                 string  `json:"notes"`
}

// UpdateBookingRequest replaces the editable fields of a booking.
type UpdateBookingRequest struct {
	GuestName          string                  `json:"guestName" binding:"required"`
	RoomID             string                  `json:"roomID"`
	CheckIn            time.Time               `json:"checkIn" binding:"required"`
	CheckOut           *time.Time              `json:"checkOut,omitempty"`
	TotalAmount        decimal.Decimal         `json:"totalAmount" binding:"required,decimalgt0"`
	PaidAmount         decimal.Decimal         `json:"paidAmount" binding:"decimalgte0"`
	PaymentMethod      string                  `json:"paymentMethod"`
	Payments           []PaymentRequest        `json:"payments" binding:"omitempty,dive"`
	PlatformCommission *decimal.Decimal        `json:"platformCommission,omitempty" binding:"omitempty,decimalgte0"`
	DevDeductionType   domain.DevDeductionType `json:"devDeductionType" binding:"omitempty,devdeduction"`
	DevDeductionValue  decimal.Decimal         `json:"devDeductionValue" binding:"decimalgte0"`
	Notes              string                  `json:"notes"`
}

// ExtendBookingRequest pushes a stay's checkout forward.
type ExtendBookingRequest struct {
	NewCheckOut      time.Time       `json:"newCheckOut" binding:"required"`
	AdditionalAmount decimal.Decimal `json:"additionalAmount" binding:"decimalgte0"`
	Payment          *PaymentRequest `json:"payment,omitempty"`
}

// ToPayments converts payment requests into sub-ledger entries.
func ToPayments(reqs []PaymentRequest) []domain.Payment {
	payments := make([]domain.Payment, len(reqs))
	for i, p := range reqs {
		payments[i] = domain.Payment{Amount: p.Amount, Currency: p.Currency, Method: p.Method, PaidAt: p.PaidAt}
	}
	return payments
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	BookingID                string                  `json:"bookingID"`
	ApartmentID              string                  `json:"apartmentID"`
	RoomID                   string                  `json:"roomID,omitempty"`
	GuestName                string                  `json:"guestName"`
	CheckIn                  time.Time               `json:"checkIn"`
	CheckOut                 *time.Time              `json:"checkOut,omitempty"`
	Currency                 string                  `json:"currency"`
	TotalAmount              decimal.Decimal         `json:"totalAmount"`
	PaidAmount               decimal.Decimal         `json:"paidAmount"`
	RemainingAmount          decimal.Decimal         `json:"remainingAmount"`
	PaymentMethod            string                  `json:"paymentMethod,omitempty"`
	Payments                 []domain.Payment        `json:"payments"`
	PlatformCommission       decimal.Decimal         `json:"platformCommission"`
	OriginalCommission       decimal.Decimal         `json:"originalPlatformCommission"`
	CommissionStatus         domain.CommissionStatus `json:"commissionStatus"`
	CommissionAppliedDate    *time.Time              `json:"commissionAppliedDate,omitempty"`
	DevDeductionType         domain.DevDeductionType `json:"devDeductionType"`
	DevDeductionValue        decimal.Decimal         `json:"devDeductionValue"`
	DevelopmentDeduction     decimal.Decimal         `json:"developmentDeduction"`
	FinalDistributableAmount decimal.Decimal         `json:"finalDistributableAmount"`
	OwnerAmount              decimal.Decimal         `json:"ownerAmount"`
	BrokerProfit             decimal.Decimal         `json:"brokerProfit"`
	ExchangeRateAtBooking    domain.RateSnapshot     `json:"exchangeRateAtBooking,omitempty"`
	TransferFromBookingID    *string                 `json:"transferFromBookingID,omitempty"`
	TransferredToBookingID   *string                 `json:"transferredToBookingID,omitempty"`
	TransferCommissionAmount decimal.Decimal         `json:"transferCommissionAmount"`
	Notes                    string                  `json:"notes,omitempty"`
	CreatedAt                time.Time               `json:"createdAt"`
	CreatedBy                string                  `json:"createdBy"`
	LastUpdatedAt            time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy            string                  `json:"lastUpdatedBy"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	payments := b.Payments
	if payments == nil {
		payments = []domain.Payment{}
	}
	return BookingResponse{
		BookingID:                b.BookingID,
		ApartmentID:              b.ApartmentID,
		RoomID:                   b.RoomID,
		GuestName:                b.GuestName,
		CheckIn:                  b.CheckIn,
		CheckOut:                 b.CheckOut,
		Currency:                 b.Currency,
		TotalAmount:              utils.RoundMoney(b.TotalAmount.Amount),
		PaidAmount:               utils.RoundMoney(b.PaidAmount.Amount),
		RemainingAmount:          utils.RoundMoney(b.RemainingAmount.Amount),
		PaymentMethod:            b.PaymentMethod,
		Payments:                 payments,
		PlatformCommission:       utils.RoundMoney(b.PlatformCommission.Amount),
		OriginalCommission:       utils.RoundMoney(b.OriginalPlatformCommission),
		CommissionStatus:         b.CommissionStatus,
		CommissionAppliedDate:    b.CommissionAppliedDate,
		DevDeductionType:         b.DevDeductionType,
		DevDeductionValue:        b.DevDeductionValue,
		DevelopmentDeduction:     utils.RoundMoney(b.DevelopmentDeduction),
		FinalDistributableAmount: utils.RoundMoney(b.FinalDistributableAmount),
		OwnerAmount:              utils.RoundMoney(b.OwnerAmount),
		BrokerProfit:             utils.RoundMoney(b.BrokerProfit),
		ExchangeRateAtBooking:    b.ExchangeRateAtBooking,
		TransferFromBookingID:    b.TransferFromBookingID,
		TransferredToBookingID:   b.TransferredToBookingID,
		TransferCommissionAmount: utils.RoundMoney(b.TransferCommissionAmount.Amount),
		Notes:                    b.Notes,
		CreatedAt:                b.CreatedAt,
		CreatedBy:                b.CreatedBy,
		LastUpdatedAt:            b.LastUpdatedAt,
		LastUpdatedBy:            b.LastUpdatedBy,
	}
}
