package repositories

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
)

// ApartmentReader defines read operations for apartments and their partner rosters.
// Roster entries are returned already joined with the partner records they reference.
type ApartmentReader interface {
	FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)
	ListApartments(ctx context.Context) ([]domain.Apartment, error)
}

// ApartmentRepositoryFacade combines all apartment-related repository interfaces
type ApartmentRepositoryFacade interface {
	ApartmentReader
}
