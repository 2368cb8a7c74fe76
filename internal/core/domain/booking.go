package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus tracks whether a booking's platform commission has been earned.
type CommissionStatus string

const (
	CommissionPending CommissionStatus = "pending"
	CommissionApplied CommissionStatus = "applied"
)

// DevDeductionType selects how the development-fund deduction is derived from a booking.
type DevDeductionType string

const (
	DevDeductionNone    DevDeductionType = "none"
	DevDeductionFixed   DevDeductionType = "fixed"
	DevDeductionPercent DevDeductionType = "percent"
)

// Payment is one entry of a booking's payment sub-ledger.
type Payment struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Method   string          `json:"method"`
	PaidAt   *time.Time      `json:"paidAt,omitempty"`
}

// Booking is a single guest stay.
type Booking struct {
	BookingID   string     `json:"bookingID"`
	ApartmentID string     `json:"apartmentID"`
	RoomID      string     `json:"roomID"`
	GuestName   string     `json:"guestName"`
	CheckIn     time.Time  `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut,omitempty"` // nil means an open-ended stay

	// Currency is the record level tag and also the settlement currency.
	Currency        string    `json:"currency"`
	TotalAmount     Money     `json:"totalAmount"`
	PaidAmount      Money     `json:"paidAmount"`
	RemainingAmount Money     `json:"remainingAmount"`
	PaymentMethod   string    `json:"paymentMethod,omitempty"` // legacy single-payment bookings
	Payments        []Payment `json:"payments"`

	PlatformCommission         Money            `json:"platformCommission"`
	OriginalPlatformCommission decimal.Decimal  `json:"originalPlatformCommission"`
	CommissionStatus           CommissionStatus `json:"commissionStatus"`
	CommissionAppliedDate      *time.Time       `json:"commissionAppliedDate,omitempty"`

	DevDeductionType         DevDeductionType `json:"devDeductionType"`
	DevDeductionValue        decimal.Decimal  `json:"devDeductionValue"`
	DevelopmentDeduction     decimal.Decimal  `json:"developmentDeduction"`
	FinalDistributableAmount decimal.Decimal  `json:"finalDistributableAmount"`
	OwnerAmount              decimal.Decimal  `json:"ownerAmount"`
	BrokerProfit             decimal.Decimal  `json:"brokerProfit"`

	ExchangeRateAtBooking RateSnapshot `json:"exchangeRateAtBooking,omitempty"`

	TransferFromBookingID    *string `json:"transferFromBookingID,omitempty"`
	TransferredToBookingID   *string `json:"transferredToBookingID,omitempty"`
	TransferCommissionAmount Money   `json:"transferCommissionAmount"`

	Notes string `json:"notes,omitempty"`
	AuditFields
}

// MoneyField returns the stored value of a monetary field.
// Settlement fields have no stored tag of their own and are always in the settlement currency.
func (b *Booking) MoneyField(field MoneyField) Money {
	switch field {
	case FieldTotalAmount:
		return b.TotalAmount
	case FieldPaidAmount:
		return b.PaidAmount
	case FieldRemainingAmount:
		return b.RemainingAmount
	case FieldPlatformCommission:
		return b.PlatformCommission
	case FieldTransferCommission:
		return b.TransferCommissionAmount
	case FieldDevelopmentDeduction:
		return NewMoney(b.DevelopmentDeduction, b.Currency)
	case FieldOwnerAmount:
		return NewMoney(b.OwnerAmount, b.Currency)
	case FieldBrokerProfit:
		return NewMoney(b.BrokerProfit, b.Currency)
	}
	return Money{}
}

// RecordCurrency returns the booking level currency tag (may be empty on legacy rows).
func (b *Booking) RecordCurrency() string {
	return b.Currency
}

// LockedRates returns the rate snapshot captured when the booking was created.
func (b *Booking) LockedRates() RateSnapshot {
	return b.ExchangeRateAtBooking
}

// IsOpenEnded reports whether the stay has no checkout yet.
func (b *Booking) IsOpenEnded() bool {
	return b.CheckOut == nil
}
