package mapping

import (
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID:   d.ExpenseID,
		ApartmentID: d.ApartmentID,
		BookingID:   d.BookingID,
		Category:    d.Category,
		Description: d.Description,
		Currency:    d.Currency,
		ExpenseDate: d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	m.Amount, m.AmountCurrency, m.AmountUSD = splitMoney(d.Amount)
	return m
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		ApartmentID: m.ApartmentID,
		BookingID:   m.BookingID,
		Category:    m.Category,
		Description: m.Description,
		Amount:      joinMoney(m.Amount, m.AmountCurrency, m.AmountUSD),
		Currency:    m.Currency,
		Date:        m.ExpenseDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
