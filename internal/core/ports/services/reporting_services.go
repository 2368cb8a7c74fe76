package services

import (
	"context"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// Dashboard builds the financial report for a period, optionally for one apartment.
	Dashboard(ctx context.Context, query dto.DashboardQuery) (*domain.FinancialReport, error)

	// MonthlySummary builds twelve monthly rows for a year using check-in month attribution.
	MonthlySummary(ctx context.Context, year int, apartmentID string) ([]domain.MonthlySummaryRow, error)

	// ROI compares invested capital with cumulative operating profit per apartment.
	ROI(ctx context.Context, apartmentID string) ([]domain.ApartmentROI, error)
}
