package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/models"
)

// ToDomainApartment converts a model Apartment and its joined roster rows to a domain Apartment.
func ToDomainApartment(m models.Apartment, roster []models.ApartmentPartner) (domain.Apartment, error) {
	d := domain.Apartment{
		ApartmentID:           m.ApartmentID,
		Name:                  m.Name,
		DefaultCommissionRate: m.DefaultCommissionRate,
		InvestmentAmountUSD:   m.InvestmentAmountUSD,
		Partners:              make([]domain.ApartmentPartner, len(roster)),
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
	if len(m.MonthlyExpenses) > 0 {
		if err := json.Unmarshal(m.MonthlyExpenses, &d.MonthlyExpenses); err != nil {
			return domain.Apartment{}, fmt.Errorf("decode monthly expenses of apartment %s: %w", m.ApartmentID, err)
		}
	}
	for i, p := range roster {
		d.Partners[i] = domain.ApartmentPartner{
			ApartmentID: p.ApartmentID,
			PartnerID:   p.PartnerID,
			PartnerName: p.PartnerName,
			Percentage:  p.Percentage,
			Type:        domain.PartnerType(p.Type),
		}
	}
	return d, nil
}
