package domain

import "time"

// ExpenseCategoryTransferCommission marks expenses generated by guest transfers.
// They are already counted through Booking.TransferCommissionAmount.
const ExpenseCategoryTransferCommission = "transfer_commission"

// Expense is an ad hoc cost, optionally tied to an apartment.
type Expense struct {
	ExpenseID   string    `json:"expenseID"`
	ApartmentID *string   `json:"apartmentID,omitempty"`
	BookingID   *string   `json:"bookingID,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      Money     `json:"amount"`
	Currency    string    `json:"currency"`
	Date        time.Time `json:"date"`
	AuditFields
}

// MoneyField returns the stored value of a monetary field.
func (e *Expense) MoneyField(field MoneyField) Money {
	if field == FieldAmount {
		return e.Amount
	}
	return Money{}
}

// RecordCurrency returns the expense level currency tag.
func (e *Expense) RecordCurrency() string {
	return e.Currency
}

// LockedRates is always empty: expenses convert at live rates.
func (e *Expense) LockedRates() RateSnapshot {
	return nil
}

// IsTransferCommission reports whether the expense was generated by a guest transfer.
func (e *Expense) IsTransferCommission() bool {
	return e.Category == ExpenseCategoryTransferCommission
}

// BelongsTo reports whether the expense is tied to apartmentID.
func (e *Expense) BelongsTo(apartmentID string) bool {
	return e.ApartmentID != nil && *e.ApartmentID == apartmentID
}
