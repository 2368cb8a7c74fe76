package mapping

import (
	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/models"
)

// ToModelFundTransaction converts a domain FundTransaction to a model FundTransaction
func ToModelFundTransaction(d domain.FundTransaction) models.FundTransaction {
	return models.FundTransaction{
		TransactionID:     d.TransactionID,
		Type:              string(d.Type),
		Amount:            d.Amount,
		AmountEGP:         d.AmountEGP,
		Currency:          d.Currency,
		Description:       d.Description,
		BookingID:         d.BookingID,
		InventoryItemID:   d.InventoryItemID,
		IsSystemGenerated: d.IsSystemGenerated,
		TransactionDate:   d.TransactionDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFundTransaction converts a model FundTransaction to a domain FundTransaction
func ToDomainFundTransaction(m models.FundTransaction) domain.FundTransaction {
	return domain.FundTransaction{
		TransactionID:     m.TransactionID,
		Type:              domain.FundTransactionType(m.Type),
		Amount:            m.Amount,
		AmountEGP:         m.AmountEGP,
		Currency:          m.Currency,
		Description:       m.Description,
		BookingID:         m.BookingID,
		InventoryItemID:   m.InventoryItemID,
		IsSystemGenerated: m.IsSystemGenerated,
		TransactionDate:   m.TransactionDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFundTransactionSlice converts a slice of model FundTransactions to domain FundTransactions
func ToDomainFundTransactionSlice(ms []models.FundTransaction) []domain.FundTransaction {
	ds := make([]domain.FundTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFundTransaction(m)
	}
	return ds
}
