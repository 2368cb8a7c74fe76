package reconciliation

import (
	"fmt"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundBalance sums the development fund. USD and EGP are each summed from their own
// recorded amounts; neither is derived from the other.
func FundBalance(txs []domain.FundTransaction) domain.FundBalance {
	bal := domain.FundBalance{USD: decimal.Zero, EGP: decimal.Zero}
	for _, tx := range txs {
		switch tx.Type {
		case domain.FundDeposit:
			bal.USD = bal.USD.Add(tx.Amount)
			bal.EGP = bal.EGP.Add(tx.AmountEGP)
		case domain.FundWithdrawal:
			bal.USD = bal.USD.Sub(tx.Amount)
			bal.EGP = bal.EGP.Sub(tx.AmountEGP)
		}
	}
	return bal
}

// FundAction is what has to happen to a booking's linked fund entry.
type FundAction string

const (
	FundActionNone    FundAction = "none"
	FundActionCreate  FundAction = "create"
	FundActionUpdate  FundAction = "update"
	FundActionReverse FundAction = "reverse" // deposit converted into a withdrawal
	FundActionRestore FundAction = "restore" // reversed entry turned back into a deposit
)

// Deduction is a booking's development deduction in both fund denominations.
type Deduction struct {
	BookingID string
	USD       decimal.Decimal
	EGP       decimal.Decimal
	Currency  string
}

// FundChange is the planned change to the fund ledger. Transaction is the full
// row to persist and is only meaningful when Action is not FundActionNone.
type FundChange struct {
	Action      FundAction
	Transaction domain.FundTransaction
}

// PlanBookingDeduction reconciles the single fund entry linked to a booking with its
// current development deduction. Edits update the entry in place; removing the
// deduction turns the deposit into a withdrawal instead of deleting it.
func PlanBookingDeduction(existing *domain.FundTransaction, d Deduction, now time.Time) FundChange {
	hasDeduction := d.USD.IsPositive() || d.EGP.IsPositive()

	if existing == nil {
		if !hasDeduction {
			return FundChange{Action: FundActionNone}
		}
		bookingID := d.BookingID
		return FundChange{
			Action: FundActionCreate,
			Transaction: domain.FundTransaction{
				Type:              domain.FundDeposit,
				Amount:            d.USD,
				AmountEGP:         d.EGP,
				Currency:          d.Currency,
				Description:       fmt.Sprintf("Development deduction from booking %s", d.BookingID),
				BookingID:         &bookingID,
				IsSystemGenerated: true,
				TransactionDate:   now,
			},
		}
	}

	tx := *existing
	switch {
	case tx.Type == domain.FundDeposit && !hasDeduction:
		tx.Type = domain.FundWithdrawal
		tx.Description = fmt.Sprintf("Reversal: development deduction removed from booking %s", d.BookingID)
		tx.TransactionDate = now
		return FundChange{Action: FundActionReverse, Transaction: tx}
	case tx.Type == domain.FundWithdrawal && hasDeduction:
		tx.Type = domain.FundDeposit
		tx.Amount, tx.AmountEGP, tx.Currency = d.USD, d.EGP, d.Currency
		tx.Description = fmt.Sprintf("Development deduction from booking %s", d.BookingID)
		tx.TransactionDate = now
		return FundChange{Action: FundActionRestore, Transaction: tx}
	case tx.Type == domain.FundDeposit && (!tx.Amount.Equal(d.USD) || !tx.AmountEGP.Equal(d.EGP)):
		tx.Amount, tx.AmountEGP, tx.Currency = d.USD, d.EGP, d.Currency
		return FundChange{Action: FundActionUpdate, Transaction: tx}
	}
	return FundChange{Action: FundActionNone, Transaction: tx}
}

// CheckWithdrawal returns the USD balance after withdrawing amountUSD and, when that
// balance is negative, a warning for the caller. Overdrawing is allowed.
func CheckWithdrawal(balance domain.FundBalance, amountUSD decimal.Decimal) (decimal.Decimal, string) {
	after := balance.USD.Sub(amountUSD)
	if after.IsNegative() {
		return after, fmt.Sprintf("withdrawal leaves the development fund at %s USD", after.StringFixed(2))
	}
	return after, ""
}

// InventoryPurchase builds the system-generated withdrawal for an inventory purchase.
func InventoryPurchase(itemID, itemName string, amountUSD, amountEGP decimal.Decimal, currency string, now time.Time) domain.FundTransaction {
	id := itemID
	return domain.FundTransaction{
		Type:              domain.FundWithdrawal,
		Amount:            amountUSD,
		AmountEGP:         amountEGP,
		Currency:          currency,
		Description:       fmt.Sprintf("Inventory purchase: %s", itemName),
		InventoryItemID:   &id,
		IsSystemGenerated: true,
		TransactionDate:   now,
	}
}
