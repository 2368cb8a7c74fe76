package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking, encoding the JSONB columns.
func ToModelBooking(d domain.Booking) (models.Booking, error) {
	payments := d.Payments
	if payments == nil {
		payments = []domain.Payment{}
	}
	paymentsJSON, err := json.Marshal(payments)
	if err != nil {
		return models.Booking{}, fmt.Errorf("encode payments of booking %s: %w", d.BookingID, err)
	}
	snapshot := d.ExchangeRateAtBooking
	if snapshot == nil {
		snapshot = domain.RateSnapshot{}
	}
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return models.Booking{}, fmt.Errorf("encode rate snapshot of booking %s: %w", d.BookingID, err)
	}

	m := models.Booking{
		BookingID:                  d.BookingID,
		ApartmentID:                d.ApartmentID,
		RoomID:                     d.RoomID,
		GuestName:                  d.GuestName,
		CheckIn:                    d.CheckIn,
		CheckOut:                   d.CheckOut,
		Currency:                   d.Currency,
		PaymentMethod:              d.PaymentMethod,
		Payments:                   paymentsJSON,
		OriginalPlatformCommission: d.OriginalPlatformCommission,
		CommissionStatus:           string(d.CommissionStatus),
		CommissionAppliedDate:      d.CommissionAppliedDate,
		DevDeductionType:           string(d.DevDeductionType),
		DevDeductionValue:          d.DevDeductionValue,
		DevelopmentDeduction:       d.DevelopmentDeduction,
		FinalDistributableAmount:   d.FinalDistributableAmount,
		OwnerAmount:                d.OwnerAmount,
		BrokerProfit:               d.BrokerProfit,
		ExchangeRateAtBooking:      snapshotJSON,
		TransferFromBookingID:      d.TransferFromBookingID,
		TransferredToBookingID:     d.TransferredToBookingID,
		Notes:                      d.Notes,
		AuditFields:                ToModelAuditFields(d.AuditFields),
	}
	m.TotalAmount, m.TotalCurrency, m.TotalUSD = splitMoney(d.TotalAmount)
	m.PaidAmount, m.PaidCurrency, m.PaidUSD = splitMoney(d.PaidAmount)
	m.RemainingAmount, m.RemainingCurrency, m.RemainingUSD = splitMoney(d.RemainingAmount)
	m.PlatformCommission, m.PlatformCommissionCurrency, m.PlatformCommissionUSD = splitMoney(d.PlatformCommission)
	m.TransferCommissionAmount, m.TransferCommissionCurrency, m.TransferCommissionUSD = splitMoney(d.TransferCommissionAmount)
	return m, nil
}

// ToDomainBooking converts a model Booking to a domain Booking, decoding the JSONB columns.
func ToDomainBooking(m models.Booking) (domain.Booking, error) {
	d := domain.Booking{
		BookingID:                  m.BookingID,
		ApartmentID:                m.ApartmentID,
		RoomID:                     m.RoomID,
		GuestName:                  m.GuestName,
		CheckIn:                    m.CheckIn,
		CheckOut:                   m.CheckOut,
		Currency:                   m.Currency,
		TotalAmount:                joinMoney(m.TotalAmount, m.TotalCurrency, m.TotalUSD),
		PaidAmount:                 joinMoney(m.PaidAmount, m.PaidCurrency, m.PaidUSD),
		RemainingAmount:            joinMoney(m.RemainingAmount, m.RemainingCurrency, m.RemainingUSD),
		PaymentMethod:              m.PaymentMethod,
		PlatformCommission:         joinMoney(m.PlatformCommission, m.PlatformCommissionCurrency, m.PlatformCommissionUSD),
		OriginalPlatformCommission: m.OriginalPlatformCommission,
		CommissionStatus:           domain.CommissionStatus(m.CommissionStatus),
		CommissionAppliedDate:      m.CommissionAppliedDate,
		DevDeductionType:           domain.DevDeductionType(m.DevDeductionType),
		DevDeductionValue:          m.DevDeductionValue,
		DevelopmentDeduction:       m.DevelopmentDeduction,
		FinalDistributableAmount:   m.FinalDistributableAmount,
		OwnerAmount:                m.OwnerAmount,
		BrokerProfit:               m.BrokerProfit,
		TransferFromBookingID:      m.TransferFromBookingID,
		TransferredToBookingID:     m.TransferredToBookingID,
		TransferCommissionAmount:   joinMoney(m.TransferCommissionAmount, m.TransferCommissionCurrency, m.TransferCommissionUSD),
		Notes:                      m.Notes,
		AuditFields:                ToDomainAuditFields(m.AuditFields),
	}
	if len(m.Payments) > 0 {
		if err := json.Unmarshal(m.Payments, &d.Payments); err != nil {
			return domain.Booking{}, fmt.Errorf("decode payments of booking %s: %w", m.BookingID, err)
		}
	}
	if len(m.ExchangeRateAtBooking) > 0 {
		if err := json.Unmarshal(m.ExchangeRateAtBooking, &d.ExchangeRateAtBooking); err != nil {
			return domain.Booking{}, fmt.Errorf("decode rate snapshot of booking %s: %w", m.BookingID, err)
		}
	}
	return d, nil
}
