package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type bookingService struct {
	BaseService
	bookingRepo   portsrepo.BookingRepositoryFacade
	apartmentRepo portsrepo.ApartmentReader
	fundRepo      portsrepo.FundReader
	rateRepo      portsrepo.CurrencyRateReader
	opts          reconciliation.Options
}

// BookingServiceOption is a functional option for configuring the booking service
type BookingServiceOption func(*bookingService)

// WithBookingClock overrides the clock used for audit fields and commission status.
func WithBookingClock(now func() time.Time) BookingServiceOption {
	return func(s *bookingService) {
		s.now = now
	}
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo portsrepo.BookingRepositoryFacade,
	apartmentRepo portsrepo.ApartmentReader,
	fundRepo portsrepo.FundReader,
	rateRepo portsrepo.CurrencyRateReader,
	opts reconciliation.Options,
	options ...BookingServiceOption,
) portssvc.BookingSvcFacade {
	svc := &bookingService{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		fundRepo:      fundRepo,
		rateRepo:      rateRepo,
		opts:          opts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get booking", slog.String("booking_id", bookingID))
		}
		return nil, err
	}
	return booking, nil
}

// liveLedger loads the live rates and returns them with a ledger over them.
func (s *bookingService) liveLedger(ctx context.Context) (*reconciliation.CurrencyLedger, domain.RateSnapshot, error) {
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load live currency rates")
		return nil, nil, fmt.Errorf("failed to load currency rates: %w", err)
	}
	opts := s.opts
	opts.Logger = s.GetLogger(ctx)
	return reconciliation.NewEngine(opts).Ledger(rates), domain.SnapshotFromRates(rates), nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	if err := validateStay(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}

	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, req.ApartmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load apartment for booking", slog.String("apartment_id", req.ApartmentID))
		}
		return nil, err
	}

	ledger, live, err := s.liveLedger(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	currency := strings.ToUpper(req.Currency)
	booking := domain.Booking{
		BookingID:             uuid.NewString(),
		ApartmentID:           apartment.ApartmentID,
		RoomID:                req.RoomID,
		GuestName:             strings.TrimSpace(req.GuestName),
		CheckIn:               req.CheckIn,
		CheckOut:              req.CheckOut,
		Currency:              currency,
		TotalAmount:           domain.NewMoney(req.TotalAmount, currency),
		PaidAmount:            domain.NewMoney(req.PaidAmount, currency),
		PaymentMethod:         req.PaymentMethod,
		Payments:              dto.ToPayments(req.Payments),
		DevDeductionType:      req.DevDeductionType,
		DevDeductionValue:     req.DevDeductionValue,
		ExchangeRateAtBooking: live,
		Notes:                 req.Notes,
	}
	booking.Stamp(creatorUserID, now)

	write := portsrepo.BookingWrite{IsNew: true}

	commission := req.PlatformCommission
	if req.TransferFromBookingID != nil {
		source, expense, err := s.transferFrom(ctx, ledger, *req.TransferFromBookingID, &booking, creatorUserID, now)
		if err != nil {
			return nil, err
		}
		write.TransferSource = source
		write.TransferExpense = expense
	}

	if err := s.settle(ledger, &booking, apartment, commission); err != nil {
		return nil, err
	}
	booking.OriginalPlatformCommission = booking.PlatformCommission.Amount
	refreshCommissionStatus(&booking, now)

	if err := s.syncFund(ctx, ledger, &booking, nil, creatorUserID, now, &write); err != nil {
		return nil, err
	}

	write.Booking = booking
	if err := s.bookingRepo.ApplyBookingWrite(ctx, write); err != nil {
		s.LogError(ctx, err, "Failed to save booking", slog.String("apartment_id", booking.ApartmentID))
		return nil, fmt.Errorf("failed to create booking in service: %w", err)
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("apartment_id", booking.ApartmentID),
		slog.String("currency", booking.Currency),
		slog.Bool("transfer", write.TransferSource != nil))
	return &booking, nil
}

// transferFrom moves the guest off source onto dest. The source commission becomes the
// destination's transfer commission and is booked as a transfer_commission expense.
func (s *bookingService) transferFrom(ctx context.Context, ledger *reconciliation.CurrencyLedger, sourceID string, dest *domain.Booking, userID string, now time.Time) (*domain.Booking, *domain.Expense, error) {
	source, err := s.bookingRepo.FindBookingByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewValidationError(fmt.Sprintf("transfer source booking %s not found", sourceID))
		}
		s.LogError(ctx, err, "Failed to load transfer source", slog.String("booking_id", sourceID))
		return nil, nil, err
	}
	if source.TransferredToBookingID != nil {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("booking %s has already been transferred", sourceID))
	}
	if reconciliation.IsCompleted(source, now) {
		return nil, nil, apperrors.NewValidationError(fmt.Sprintf("booking %s has already checked out and cannot be transferred", sourceID))
	}

	moved := ledger.ResolveAmount(source, domain.FieldPlatformCommission)
	dest.TransferFromBookingID = &source.BookingID
	dest.TransferCommissionAmount = domain.NewMoney(moved.Amount, moved.Currency)

	sourceApartment, err := s.apartmentRepo.FindApartmentByID(ctx, source.ApartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transfer source apartment", slog.String("apartment_id", source.ApartmentID))
		return nil, nil, err
	}
	updated := *source
	updated.TransferredToBookingID = &dest.BookingID
	noCommission := decimal.Zero
	if err := s.settle(ledger, &updated, sourceApartment, &noCommission); err != nil {
		return nil, nil, err
	}
	updated.Touch(userID, now)

	var expense *domain.Expense
	if moved.Amount.IsPositive() {
		apartmentID := dest.ApartmentID
		bookingID := dest.BookingID
		expense = &domain.Expense{
			ExpenseID:   uuid.NewString(),
			ApartmentID: &apartmentID,
			BookingID:   &bookingID,
			Category:    domain.ExpenseCategoryTransferCommission,
			Description: fmt.Sprintf("Transfer commission from booking %s", source.BookingID),
			Amount:      domain.NewMoney(moved.Amount, moved.Currency),
			Currency:    moved.Currency,
			Date:        now,
		}
		expense.Stamp(userID, now)
	}

	s.LogInfo(ctx, "Guest transferred",
		slog.String("from_booking_id", source.BookingID),
		slog.String("to_booking_id", dest.BookingID),
		slog.String("commission", moved.Amount.String()),
		slog.String("currency", moved.Currency))
	return &updated, expense, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req dto.UpdateBookingRequest, userID string) (*domain.Booking, error) {
	if err := validateStay(req.CheckIn, req.CheckOut); err != nil {
		return nil, err
	}

	existing, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, existing.ApartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load apartment for booking", slog.String("apartment_id", existing.ApartmentID))
		return nil, err
	}
	ledger, _, err := s.liveLedger(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	booking := *existing
	booking.Currency = bookingCurrency(ledger, existing)
	booking.GuestName = strings.TrimSpace(req.GuestName)
	booking.RoomID = req.RoomID
	booking.CheckIn = req.CheckIn
	booking.CheckOut = req.CheckOut
	booking.TotalAmount = domain.NewMoney(req.TotalAmount, booking.Currency)
	booking.PaidAmount = domain.NewMoney(req.PaidAmount, booking.Currency)
	booking.PaymentMethod = req.PaymentMethod
	booking.Payments = dto.ToPayments(req.Payments)
	booking.DevDeductionType = req.DevDeductionType
	booking.DevDeductionValue = req.DevDeductionValue
	booking.Notes = req.Notes
	booking.Touch(userID, now)

	commission := req.PlatformCommission
	if booking.TransferredToBookingID != nil {
		noCommission := decimal.Zero
		commission = &noCommission
	}
	if err := s.settle(ledger, &booking, apartment, commission); err != nil {
		return nil, err
	}
	booking.OriginalPlatformCommission = booking.PlatformCommission.Amount
	refreshCommissionStatus(&booking, now)

	return s.saveExisting(ctx, ledger, booking, userID, now)
}

// ExtendBooking pushes checkout forward. The commission stays at the value the booking was
// originally settled with; the development deduction is recomputed on the new total.
func (s *bookingService) ExtendBooking(ctx context.Context, bookingID string, req dto.ExtendBookingRequest, userID string) (*domain.Booking, error) {
	existing, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !req.NewCheckOut.After(existing.CheckIn) {
		return nil, apperrors.NewValidationError("new checkout must be after check-in")
	}
	if existing.CheckOut != nil && !req.NewCheckOut.After(*existing.CheckOut) {
		return nil, apperrors.NewValidationError("new checkout must be after the current checkout")
	}

	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, existing.ApartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load apartment for booking", slog.String("apartment_id", existing.ApartmentID))
		return nil, err
	}
	ledger, _, err := s.liveLedger(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	booking := *existing
	checkOut := req.NewCheckOut
	booking.CheckOut = &checkOut
	booking.Currency = bookingCurrency(ledger, existing)
	booking.TotalAmount = domain.NewMoney(existing.TotalAmount.Amount.Add(req.AdditionalAmount), booking.Currency)
	booking.Payments = append([]domain.Payment(nil), existing.Payments...)
	if len(booking.Payments) == 0 && existing.PaidAmount.Amount.IsPositive() && req.Payment != nil {
		// Carry the lump-sum paid amount into the sub-ledger before it starts driving paid.
		booking.Payments = append(booking.Payments, domain.Payment{
			Amount:   existing.PaidAmount.Amount,
			Currency: ledger.ResolveAmount(existing, domain.FieldPaidAmount).Currency,
			Method:   existing.PaymentMethod,
		})
	}
	if req.Payment != nil {
		booking.Payments = append(booking.Payments, dto.ToPayments([]dto.PaymentRequest{*req.Payment})...)
	}
	booking.Touch(userID, now)

	commission := existing.OriginalPlatformCommission
	if commission.IsZero() {
		commission = existing.PlatformCommission.Amount
	}
	if booking.TransferredToBookingID != nil {
		commission = decimal.Zero
	}
	if err := s.settle(ledger, &booking, apartment, &commission); err != nil {
		return nil, err
	}
	refreshCommissionStatus(&booking, now)

	return s.saveExisting(ctx, ledger, booking, userID, now)
}

func (s *bookingService) saveExisting(ctx context.Context, ledger *reconciliation.CurrencyLedger, booking domain.Booking, userID string, now time.Time) (*domain.Booking, error) {
	entry, err := s.fundRepo.FindFundTransactionByBookingID(ctx, booking.BookingID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load fund entry for booking", slog.String("booking_id", booking.BookingID))
		return nil, err
	}

	write := portsrepo.BookingWrite{}
	if err := s.syncFund(ctx, ledger, &booking, entry, userID, now, &write); err != nil {
		return nil, err
	}

	write.Booking = booking
	if err := s.bookingRepo.ApplyBookingWrite(ctx, write); err != nil {
		s.LogError(ctx, err, "Failed to save booking", slog.String("booking_id", booking.BookingID))
		return nil, fmt.Errorf("failed to update booking in service: %w", err)
	}

	s.LogInfo(ctx, "Booking updated", slog.String("booking_id", booking.BookingID))
	return &booking, nil
}

// bookingCurrency is the stored currency of b, or for untagged legacy records the
// currency its total resolves to.
func bookingCurrency(ledger *reconciliation.CurrencyLedger, b *domain.Booking) string {
	if b.Currency != "" {
		return b.Currency
	}
	return ledger.ResolveAmount(b, domain.FieldTotalAmount).Currency
}

// settle recomputes the paid balance and the settlement split of b.
func (s *bookingService) settle(ledger *reconciliation.CurrencyLedger, b *domain.Booking, apartment *domain.Apartment, commission *decimal.Decimal) error {
	settlement, err := reconciliation.Settle(reconciliation.SettlementInput{
		TotalAmount:           b.TotalAmount.Amount,
		PlatformCommission:    commission,
		DefaultCommissionRate: apartment.DefaultCommissionRate,
		DevDeductionType:      b.DevDeductionType,
		DevDeductionValue:     b.DevDeductionValue,
		InvestorPercentage:    apartment.InvestorPercentage(),
	})
	if err != nil {
		return err
	}

	if b.DevDeductionType == "" {
		b.DevDeductionType = domain.DevDeductionNone
	}
	b.PlatformCommission = domain.NewMoney(settlement.PlatformCommission, b.Currency)
	b.DevelopmentDeduction = settlement.DevelopmentDeduction
	b.FinalDistributableAmount = settlement.FinalDistributableAmount
	b.OwnerAmount = settlement.OwnerAmount
	b.BrokerProfit = settlement.BrokerProfit

	table := ledger.RatesFor(b)
	total := b.TotalAmount.Amount
	paid := b.PaidAmount.Amount
	if len(b.Payments) > 0 {
		paid = decimal.Zero
		for _, p := range b.Payments {
			cur := p.Currency
			if cur == "" {
				cur = b.Currency
			}
			paid = paid.Add(ledger.Convert(p.Amount, cur, b.Currency, table))
		}
		paid = utils.RoundMoney(paid)
	}
	if paid.GreaterThan(total) {
		paid = total
	}
	b.PaidAmount = s.tagged(ledger, b, paid)
	b.RemainingAmount = s.tagged(ledger, b, total.Sub(paid))
	b.TotalAmount = s.tagged(ledger, b, total)
	return nil
}

// tagged returns amount in the booking's currency with its USD mirror attached.
func (s *bookingService) tagged(ledger *reconciliation.CurrencyLedger, b *domain.Booking, amount decimal.Decimal) domain.Money {
	mirror := utils.RoundMoney(ledger.Convert(amount, b.Currency, domain.USD, ledger.RatesFor(b)))
	return domain.Money{Amount: amount, Currency: b.Currency, USDMirror: &mirror}
}

// syncFund plans the change to the booking's development fund entry and adds it to write.
func (s *bookingService) syncFund(ctx context.Context, ledger *reconciliation.CurrencyLedger, b *domain.Booking, existing *domain.FundTransaction, userID string, now time.Time, write *portsrepo.BookingWrite) error {
	table := ledger.RatesFor(b)
	deduction := reconciliation.Deduction{
		BookingID: b.BookingID,
		USD:       utils.RoundMoney(ledger.Convert(b.DevelopmentDeduction, b.Currency, domain.USD, table)),
		EGP:       utils.RoundMoney(ledger.Convert(b.DevelopmentDeduction, b.Currency, domain.EGP, table)),
		Currency:  b.Currency,
	}

	change := reconciliation.PlanBookingDeduction(existing, deduction, now)
	switch change.Action {
	case reconciliation.FundActionNone:
		return nil
	case reconciliation.FundActionCreate:
		change.Transaction.TransactionID = uuid.NewString()
		change.Transaction.Stamp(userID, now)
		write.FundEntryIsNew = true
	default:
		change.Transaction.Touch(userID, now)
	}
	write.FundEntry = &change.Transaction

	s.LogDebug(ctx, "Development fund entry planned",
		slog.String("booking_id", b.BookingID),
		slog.String("action", string(change.Action)),
		slog.String("amount_usd", deduction.USD.String()))
	return nil
}

func refreshCommissionStatus(b *domain.Booking, now time.Time) {
	b.CommissionStatus = reconciliation.CommissionStatus(b, now)
	b.CommissionAppliedDate = nil
	if b.CommissionStatus == domain.CommissionApplied {
		if date, ok := reconciliation.RecognitionDate(b); ok {
			b.CommissionAppliedDate = &date
		}
	}
}

func validateStay(checkIn time.Time, checkOut *time.Time) error {
	if checkIn.IsZero() {
		return apperrors.NewValidationError("check-in date is required")
	}
	if checkOut != nil && checkOut.Before(checkIn) {
		return apperrors.NewValidationError("checkout cannot be before check-in")
	}
	return nil
}
