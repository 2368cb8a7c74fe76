package pgsql

import (
	portsrepo "github.com/SscSPs/stay_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookingRepo:      newPgxBookingRepository(dbPool),
		ApartmentRepo:    newPgxApartmentRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		FundRepo:         newPgxFundRepository(dbPool),
		CurrencyRateRepo: newPgxCurrencyRateRepository(dbPool),
	}
}
