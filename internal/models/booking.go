package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is the bookings table row.
// Each tagged money field is stored as amount, optional currency tag and optional USD mirror.
type Booking struct {
	BookingID   string     `db:"booking_id"`
	ApartmentID string     `db:"apartment_id"`
	RoomID      string     `db:"room_id"`
	GuestName   string     `db:"guest_name"`
	CheckIn     time.Time  `db:"check_in"`
	CheckOut    *time.Time `db:"check_out"` // Nullable
	Currency    string     `db:"currency"`

	TotalAmount       decimal.Decimal  `db:"total_amount"`
	TotalCurrency     *string          `db:"total_currency"`
	TotalUSD          *decimal.Decimal `db:"total_usd"`
	PaidAmount        decimal.Decimal  `db:"paid_amount"`
	PaidCurrency      *string          `db:"paid_currency"`
	PaidUSD           *decimal.Decimal `db:"paid_usd"`
	RemainingAmount   decimal.Decimal  `db:"remaining_amount"`
	RemainingCurrency *string          `db:"remaining_currency"`
	RemainingUSD      *decimal.Decimal `db:"remaining_usd"`
	PaymentMethod     string           `db:"payment_method"`
	Payments          []byte           `db:"payments"` // JSONB

	PlatformCommission         decimal.Decimal  `db:"platform_commission"`
	PlatformCommissionCurrency *string          `db:"platform_commission_currency"`
	PlatformCommissionUSD      *decimal.Decimal `db:"platform_commission_usd"`
	OriginalPlatformCommission decimal.Decimal  `db:"original_platform_commission"`
	CommissionStatus           string           `db:"commission_status"`
	CommissionAppliedDate      *time.Time       `db:"commission_applied_date"`

	DevDeductionType         string          `db:"dev_deduction_type"`
	DevDeductionValue        decimal.Decimal `db:"dev_deduction_value"`
	DevelopmentDeduction     decimal.Decimal `db:"development_deduction"`
	FinalDistributableAmount decimal.Decimal `db:"final_distributable_amount"`
	OwnerAmount              decimal.Decimal `db:"owner_amount"`
	BrokerProfit             decimal.Decimal `db:"broker_profit"`

	ExchangeRateAtBooking []byte `db:"exchange_rate_at_booking"` // JSONB

	TransferFromBookingID      *string          `db:"transfer_from_booking_id"`
	TransferredToBookingID     *string          `db:"transferred_to_booking_id"`
	TransferCommissionAmount   decimal.Decimal  `db:"transfer_commission_amount"`
	TransferCommissionCurrency *string          `db:"transfer_commission_currency"`
	TransferCommissionUSD      *decimal.Decimal `db:"transfer_commission_usd"`

	Notes string `db:"notes"`
	AuditFields
}
