package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimals monetary values are reported with.
const MoneyPrecision = 2

// RoundMoney rounds an amount to MoneyPrecision for presentation.
// Example: 12.3456 returns 12.35
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// RoundPercent rounds a percentage to four decimals.
func RoundPercent(pct decimal.Decimal) decimal.Decimal {
	return pct.Round(4)
}
