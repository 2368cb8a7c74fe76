package reconciliation_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/core/reconciliation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func TestSettle_ExplicitCommissionNoDeduction(t *testing.T) {
	s, err := reconciliation.Settle(reconciliation.SettlementInput{
		TotalAmount:        dec("1000"),
		PlatformCommission: decPtr("150"),
		DevDeductionType:   domain.DevDeductionNone,
		InvestorPercentage: dec("20"),
	})

	require.NoError(t, err)
	assertDecimal(t, "150", s.PlatformCommission)
	assertDecimal(t, "0", s.DevelopmentDeduction)
	assertDecimal(t, "850", s.FinalDistributableAmount)
	assertDecimal(t, "170", s.OwnerAmount)
	assertDecimal(t, "680", s.BrokerProfit)
}

func TestSettle_DefaultRateAndPercentDeduction(t *testing.T) {
	s, err := reconciliation.Settle(reconciliation.SettlementInput{
		TotalAmount:           dec("1000"),
		DefaultCommissionRate: dec("15"),
		DevDeductionType:      domain.DevDeductionPercent,
		DevDeductionValue:     dec("10"),
		InvestorPercentage:    dec("20"),
	})

	require.NoError(t, err)
	assertDecimal(t, "150", s.PlatformCommission)
	assertDecimal(t, "100", s.DevelopmentDeduction)
	assertDecimal(t, "750", s.FinalDistributableAmount)
	assertDecimal(t, "150", s.OwnerAmount)
	assertDecimal(t, "600", s.BrokerProfit)
}

func TestSettle_OwnerAndBrokerAddUp(t *testing.T) {
	s, err := reconciliation.Settle(reconciliation.SettlementInput{
		TotalAmount:        dec("333.33"),
		PlatformCommission: decPtr("33.33"),
		DevDeductionType:   domain.DevDeductionFixed,
		DevDeductionValue:  dec("7.77"),
		InvestorPercentage: dec("33.3"),
	})

	require.NoError(t, err)
	assert.True(t, s.OwnerAmount.Add(s.BrokerProfit).Equal(s.FinalDistributableAmount))
}

func TestSettle_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   reconciliation.SettlementInput
	}{
		{"zero total", reconciliation.SettlementInput{TotalAmount: decimal.Zero}},
		{"negative commission", reconciliation.SettlementInput{TotalAmount: dec("100"), PlatformCommission: decPtr("-1")}},
		{"commission above total", reconciliation.SettlementInput{TotalAmount: dec("100"), PlatformCommission: decPtr("101")}},
		{"percent above 100", reconciliation.SettlementInput{TotalAmount: dec("100"), DevDeductionType: domain.DevDeductionPercent, DevDeductionValue: dec("101")}},
		{"negative fixed deduction", reconciliation.SettlementInput{TotalAmount: dec("100"), DevDeductionType: domain.DevDeductionFixed, DevDeductionValue: dec("-5")}},
		{"deduction exceeds remainder", reconciliation.SettlementInput{TotalAmount: dec("100"), PlatformCommission: decPtr("60"), DevDeductionType: domain.DevDeductionFixed, DevDeductionValue: dec("50")}},
		{"unknown deduction type", reconciliation.SettlementInput{TotalAmount: dec("100"), DevDeductionType: "bonus"}},
		{"investor percentages above 100", reconciliation.SettlementInput{TotalAmount: dec("100"), InvestorPercentage: dec("120")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reconciliation.Settle(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}
