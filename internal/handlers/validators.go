package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the decimal and domain-specific tags to gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("decimalgt0", decimalGreaterThanZero)
		_ = v.RegisterValidation("decimalgte0", decimalNotNegative)
		_ = v.RegisterValidation("devdeduction", validDevDeductionType)
	})
}

// decimalValue lets validator see decimal.Decimal fields as their string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && d.IsPositive()
}

func decimalNotNegative(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative()
}

func validDevDeductionType(fl validator.FieldLevel) bool {
	switch domain.DevDeductionType(fl.Field().String()) {
	case domain.DevDeductionNone, domain.DevDeductionFixed, domain.DevDeductionPercent:
		return true
	}
	return false
}
