package mapping

import (
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// splitMoney breaks a tagged amount into its stored columns. An empty tag is stored as NULL.
func splitMoney(m domain.Money) (decimal.Decimal, *string, *decimal.Decimal) {
	var tag *string
	if m.Currency != "" {
		c := m.Currency
		tag = &c
	}
	return m.Amount, tag, m.USDMirror
}

// joinMoney rebuilds a tagged amount from its stored columns.
func joinMoney(amount decimal.Decimal, tag *string, usd *decimal.Decimal) domain.Money {
	m := domain.Money{Amount: amount, USDMirror: usd}
	if tag != nil {
		m.Currency = *tag
	}
	return m
}
