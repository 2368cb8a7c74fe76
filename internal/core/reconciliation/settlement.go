package reconciliation

import (
	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SettlementInput is a single booking's figures in its settlement currency.
type SettlementInput struct {
	TotalAmount           decimal.Decimal
	PlatformCommission    *decimal.Decimal // nil uses DefaultCommissionRate
	DefaultCommissionRate decimal.Decimal  // percent of TotalAmount
	DevDeductionType      domain.DevDeductionType
	DevDeductionValue     decimal.Decimal
	InvestorPercentage    decimal.Decimal
}

// Settlement is the per-booking split, all in the booking's settlement currency.
type Settlement struct {
	PlatformCommission       decimal.Decimal
	DevelopmentDeduction     decimal.Decimal
	FinalDistributableAmount decimal.Decimal
	OwnerAmount              decimal.Decimal
	BrokerProfit             decimal.Decimal
}

// Settle splits one booking between platform, development fund, investors and company.
// OwnerAmount is the investors' share of the distributable amount and BrokerProfit the
// residual, so the two always add back up to FinalDistributableAmount.
func Settle(in SettlementInput) (Settlement, error) {
	if !in.TotalAmount.IsPositive() {
		return Settlement{}, apperrors.NewValidationError("total amount must be positive")
	}
	if in.InvestorPercentage.IsNegative() || in.InvestorPercentage.GreaterThan(hundred) {
		return Settlement{}, apperrors.NewValidationError("investor percentages must total between 0 and 100")
	}

	var s Settlement
	if in.PlatformCommission != nil {
		s.PlatformCommission = *in.PlatformCommission
	} else {
		s.PlatformCommission = in.TotalAmount.Mul(in.DefaultCommissionRate).Div(hundred).Round(2)
	}
	if s.PlatformCommission.IsNegative() {
		return Settlement{}, apperrors.NewValidationError("platform commission cannot be negative")
	}
	if s.PlatformCommission.GreaterThan(in.TotalAmount) {
		return Settlement{}, apperrors.NewValidationError("platform commission cannot exceed total amount")
	}

	deduction, err := DevelopmentDeduction(in.TotalAmount, in.DevDeductionType, in.DevDeductionValue)
	if err != nil {
		return Settlement{}, err
	}
	s.DevelopmentDeduction = deduction

	s.FinalDistributableAmount = in.TotalAmount.Sub(s.PlatformCommission).Sub(s.DevelopmentDeduction)
	if s.FinalDistributableAmount.IsNegative() {
		return Settlement{}, apperrors.NewValidationError("development deduction exceeds the amount left after commission")
	}

	s.OwnerAmount = s.FinalDistributableAmount.Mul(in.InvestorPercentage).Div(hundred).Round(2)
	s.BrokerProfit = s.FinalDistributableAmount.Sub(s.OwnerAmount)
	return s, nil
}

// DevelopmentDeduction computes the fund deduction for a booking total.
func DevelopmentDeduction(total decimal.Decimal, kind domain.DevDeductionType, value decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case "", domain.DevDeductionNone:
		return decimal.Zero, nil
	case domain.DevDeductionFixed:
		if value.IsNegative() {
			return decimal.Zero, apperrors.NewValidationError("fixed development deduction cannot be negative")
		}
		return value, nil
	case domain.DevDeductionPercent:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return decimal.Zero, apperrors.NewValidationError("development deduction percent must be between 0 and 100")
		}
		return total.Mul(value).Div(hundred).Round(2), nil
	}
	return decimal.Zero, apperrors.NewValidationError("unknown development deduction type: " + string(kind))
}
