package dto

import (
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/SscSPs/stay_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// DashboardQuery selects the reporting window. No year means all time.
type DashboardQuery struct {
	Year        int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month       int    `form:"month" binding:"omitempty,min=1,max=12"`
	ApartmentID string `form:"apartmentId"`
	Strategy    string `form:"strategy" binding:"omitempty,oneof=proportional_by_nights check_in_month_only"`
}

// MonthlySummaryQuery selects the year of the monthly statement.
type MonthlySummaryQuery struct {
	Year        int    `form:"year" binding:"required,min=2000,max=2100"`
	ApartmentID string `form:"apartmentId"`
}

// ROIQuery optionally limits the ROI report to one apartment.
type ROIQuery struct {
	ApartmentID string `form:"apartmentId"`
}

// ReportSummaryResponse is the roll-up of a financial report, in USD.
type ReportSummaryResponse struct {
	TotalRevenue              decimal.Decimal `json:"totalRevenue"`
	TotalPlatformCommission   decimal.Decimal `json:"totalPlatformCommission"`
	TotalTransferCommission   decimal.Decimal `json:"totalTransferCommission"`
	TotalExpenses             decimal.Decimal `json:"totalExpenses"`
	TotalOperatingProfit      decimal.Decimal `json:"totalOperatingProfit"`
	TotalInvestorPayouts      decimal.Decimal `json:"totalInvestorPayouts"`
	TotalCompanyProfit        decimal.Decimal `json:"totalCompanyProfit"`
	TotalCompanyOwnerPayouts  decimal.Decimal `json:"totalCompanyOwnerPayouts"`
	NetProfit                 decimal.Decimal `json:"netProfit"`
	PendingAmount             decimal.Decimal `json:"pendingAmount"`
	CollectedAmount           decimal.Decimal `json:"collectedAmount"`
	TotalDevelopmentDeduction decimal.Decimal `json:"totalDevelopmentDeduction"`
	CompletedBookings         int             `json:"completedBookings"`
	ActiveBookings            int             `json:"activeBookings"`
	USDRate                   decimal.Decimal `json:"usdRate"`
}

// PartnerPayoutResponse is one partner's share inside an apartment.
type PartnerPayoutResponse struct {
	PartnerID  string             `json:"partnerID"`
	Name       string             `json:"name"`
	Type       domain.PartnerType `json:"type"`
	Percentage decimal.Decimal    `json:"percentage"`
	Amount     decimal.Decimal    `json:"amount"`
}

// ApartmentFinancialsResponse is one apartment's waterfall.
type ApartmentFinancialsResponse struct {
	ApartmentID              string                  `json:"apartmentId"`
	ApartmentName            string                  `json:"apartmentName"`
	Revenue                  decimal.Decimal         `json:"revenue"`
	PlatformCommission       decimal.Decimal         `json:"platformCommission"`
	TransferCommission       decimal.Decimal         `json:"transferCommission"`
	Expenses                 decimal.Decimal         `json:"expenses"`
	OperatingProfit          decimal.Decimal         `json:"operatingProfit"`
	InvestorPayouts          []PartnerPayoutResponse `json:"investorPayouts"`
	TotalInvestorPayouts     decimal.Decimal         `json:"totalInvestorPayouts"`
	CompanyProfit            decimal.Decimal         `json:"companyProfit"`
	CompanyOwnerPayouts      []PartnerPayoutResponse `json:"companyOwnerPayouts"`
	TotalCompanyOwnerPayouts decimal.Decimal         `json:"totalCompanyOwnerPayouts"`
	BookingCount             int                     `json:"bookingCount"`
}

// PartnerProfitResponse is a partner's total across apartments.
type PartnerProfitResponse struct {
	Name         string             `json:"name"`
	Type         domain.PartnerType `json:"type"`
	TotalUSD     decimal.Decimal    `json:"totalUSD"`
	TotalEGP     decimal.Decimal    `json:"totalEGP"`
	ApartmentIDs []string           `json:"apartmentIds"`
}

// ReportBookingResponse is a booking line of the report.
type ReportBookingResponse struct {
	BookingID             string                  `json:"bookingID"`
	ApartmentID           string                  `json:"apartmentId"`
	GuestName             string                  `json:"guestName"`
	CheckIn               time.Time               `json:"checkIn"`
	CheckOut              *time.Time              `json:"checkOut,omitempty"`
	Currency              string                  `json:"currency"`
	TotalUSD              decimal.Decimal         `json:"totalUSD"`
	PaidUSD               decimal.Decimal         `json:"paidUSD"`
	RemainingUSD          decimal.Decimal         `json:"remainingUSD"`
	PlatformCommissionUSD decimal.Decimal         `json:"platformCommissionUSD"`
	TransferCommissionUSD decimal.Decimal         `json:"transferCommissionUSD"`
	AllocatedRevenueUSD   decimal.Decimal         `json:"allocatedRevenueUSD"`
	CommissionStatus      domain.CommissionStatus `json:"commissionStatus"`
	CommissionRecognized  bool                    `json:"commissionRecognized"`
	Completed             bool                    `json:"completed"`
}

// ReportExpenseResponse is an expense line of the report.
type ReportExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	ApartmentID *string         `json:"apartmentId,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Currency    string          `json:"currency"`
	AmountUSD   decimal.Decimal `json:"amountUSD"`
}

// FinancialReportResponse is the dashboard aggregate.
type FinancialReportResponse struct {
	Year                int                           `json:"year,omitempty"`
	Month               int                           `json:"month,omitempty"`
	ApartmentID         string                        `json:"apartmentId,omitempty"`
	Summary             ReportSummaryResponse         `json:"summary"`
	ApartmentFinancials []ApartmentFinancialsResponse `json:"apartmentFinancials"`
	PartnerProfits      []PartnerProfitResponse       `json:"partnerProfits"`
	Bookings            []ReportBookingResponse       `json:"bookings"`
	Expenses            []ReportExpenseResponse       `json:"expenses"`
}

// MonthlySummaryRowResponse is one month of the monthly statement.
type MonthlySummaryRowResponse struct {
	Year                 int             `json:"year"`
	Month                int             `json:"month"`
	Revenue              decimal.Decimal `json:"revenue"`
	PlatformCommission   decimal.Decimal `json:"platformCommission"`
	TransferCommission   decimal.Decimal `json:"transferCommission"`
	Expenses             decimal.Decimal `json:"expenses"`
	OperatingProfit      decimal.Decimal `json:"operatingProfit"`
	TotalInvestorPayouts decimal.Decimal `json:"totalInvestorPayouts"`
	CompanyProfit        decimal.Decimal `json:"companyProfit"`
	BookingCount         int             `json:"bookingCount"`
}

// ApartmentROIResponse is one apartment's return on investment.
type ApartmentROIResponse struct {
	ApartmentID       string          `json:"apartmentId"`
	ApartmentName     string          `json:"apartmentName"`
	InvestedUSD       decimal.Decimal `json:"investedUSD"`
	OperatingProfit   decimal.Decimal `json:"operatingProfit"`
	ROIPercent        decimal.Decimal `json:"roiPercent"`
	MonthsOperating   int             `json:"monthsOperating"`
	MonthsToPayback   *int            `json:"monthsToPayback,omitempty"`
	AverageMonthlyUSD decimal.Decimal `json:"averageMonthlyUSD"`
}

// ToFinancialReportResponse converts a domain report to a DTO response, rounding money for display.
func ToFinancialReportResponse(r *domain.FinancialReport) FinancialReportResponse {
	s := r.Summary
	res := FinancialReportResponse{
		Year:        r.Year,
		Month:       r.Month,
		ApartmentID: r.ApartmentID,
		Summary: ReportSummaryResponse{
			TotalRevenue:              utils.RoundMoney(s.TotalRevenue),
			TotalPlatformCommission:   utils.RoundMoney(s.TotalPlatformCommission),
			TotalTransferCommission:   utils.RoundMoney(s.TotalTransferCommission),
			TotalExpenses:             utils.RoundMoney(s.TotalExpenses),
			TotalOperatingProfit:      utils.RoundMoney(s.TotalOperatingProfit),
			TotalInvestorPayouts:      utils.RoundMoney(s.TotalInvestorPayouts),
			TotalCompanyProfit:        utils.RoundMoney(s.TotalCompanyProfit),
			TotalCompanyOwnerPayouts:  utils.RoundMoney(s.TotalCompanyOwnerPayouts),
			NetProfit:                 utils.RoundMoney(s.NetProfit),
			PendingAmount:             utils.RoundMoney(s.PendingAmount),
			CollectedAmount:           utils.RoundMoney(s.CollectedAmount),
			TotalDevelopmentDeduction: utils.RoundMoney(s.TotalDevelopmentDeduction),
			CompletedBookings:         s.CompletedBookings,
			ActiveBookings:            s.ActiveBookings,
			USDRate:                   s.USDRate,
		},
		ApartmentFinancials: make([]ApartmentFinancialsResponse, len(r.ApartmentFinancials)),
		PartnerProfits:      make([]PartnerProfitResponse, len(r.PartnerProfits)),
		Bookings:            make([]ReportBookingResponse, len(r.Bookings)),
		Expenses:            make([]ReportExpenseResponse, len(r.Expenses)),
	}

	for i, fin := range r.ApartmentFinancials {
		res.ApartmentFinancials[i] = ApartmentFinancialsResponse{
			ApartmentID:              fin.ApartmentID,
			ApartmentName:            fin.ApartmentName,
			Revenue:                  utils.RoundMoney(fin.Revenue),
			PlatformCommission:       utils.RoundMoney(fin.PlatformCommission),
			TransferCommission:       utils.RoundMoney(fin.TransferCommission),
			Expenses:                 utils.RoundMoney(fin.Expenses),
			OperatingProfit:          utils.RoundMoney(fin.OperatingProfit),
			InvestorPayouts:          toPartnerPayoutResponses(fin.InvestorPayouts),
			TotalInvestorPayouts:     utils.RoundMoney(fin.TotalInvestorPayouts),
			CompanyProfit:            utils.RoundMoney(fin.CompanyProfit),
			CompanyOwnerPayouts:      toPartnerPayoutResponses(fin.CompanyOwnerPayouts),
			TotalCompanyOwnerPayouts: utils.RoundMoney(fin.TotalCompanyOwnerPayouts),
			BookingCount:             fin.BookingCount,
		}
	}

	for i, p := range r.PartnerProfits {
		res.PartnerProfits[i] = PartnerProfitResponse{
			Name:         p.Name,
			Type:         p.Type,
			TotalUSD:     utils.RoundMoney(p.TotalUSD),
			TotalEGP:     utils.RoundMoney(p.TotalEGP),
			ApartmentIDs: p.ApartmentIDs,
		}
	}

	for i, b := range r.Bookings {
		res.Bookings[i] = ReportBookingResponse{
			BookingID:             b.BookingID,
			ApartmentID:           b.ApartmentID,
			GuestName:             b.GuestName,
			CheckIn:               b.CheckIn,
			CheckOut:              b.CheckOut,
			Currency:              b.Currency,
			TotalUSD:              utils.RoundMoney(b.TotalUSD),
			PaidUSD:               utils.RoundMoney(b.PaidUSD),
			RemainingUSD:          utils.RoundMoney(b.RemainingUSD),
			PlatformCommissionUSD: utils.RoundMoney(b.PlatformCommissionUSD),
			TransferCommissionUSD: utils.RoundMoney(b.TransferCommissionUSD),
			AllocatedRevenueUSD:   utils.RoundMoney(b.AllocatedRevenueUSD),
			CommissionStatus:      b.CommissionStatus,
			CommissionRecognized:  b.CommissionRecognized,
			Completed:             b.Completed,
		}
	}

	for i, e := range r.Expenses {
		res.Expenses[i] = ReportExpenseResponse{
			ExpenseID:   e.ExpenseID,
			ApartmentID: e.ApartmentID,
			Category:    e.Category,
			Description: e.Description,
			Date:        e.Date,
			Currency:    e.Currency,
			AmountUSD:   utils.RoundMoney(e.AmountUSD),
		}
	}
	return res
}

func toPartnerPayoutResponses(payouts []domain.PartnerPayout) []PartnerPayoutResponse {
	res := make([]PartnerPayoutResponse, len(payouts))
	for i, p := range payouts {
		res[i] = PartnerPayoutResponse{
			PartnerID:  p.PartnerID,
			Name:       p.Name,
			Type:       p.Type,
			Percentage: p.Percentage,
			Amount:     utils.RoundMoney(p.Amount),
		}
	}
	return res
}

// ToMonthlySummaryResponse converts monthly statement rows.
func ToMonthlySummaryResponse(rows []domain.MonthlySummaryRow) []MonthlySummaryRowResponse {
	res := make([]MonthlySummaryRowResponse, len(rows))
	for i, row := range rows {
		res[i] = MonthlySummaryRowResponse{
			Year:                 row.Year,
			Month:                row.Month,
			Revenue:              utils.RoundMoney(row.Revenue),
			PlatformCommission:   utils.RoundMoney(row.PlatformCommission),
			TransferCommission:   utils.RoundMoney(row.TransferCommission),
			Expenses:             utils.RoundMoney(row.Expenses),
			OperatingProfit:      utils.RoundMoney(row.OperatingProfit),
			TotalInvestorPayouts: utils.RoundMoney(row.TotalInvestorPayouts),
			CompanyProfit:        utils.RoundMoney(row.CompanyProfit),
			BookingCount:         row.BookingCount,
		}
	}
	return res
}

// ToApartmentROIResponse converts ROI rows.
func ToApartmentROIResponse(rows []domain.ApartmentROI) []ApartmentROIResponse {
	res := make([]ApartmentROIResponse, len(rows))
	for i, row := range rows {
		res[i] = ApartmentROIResponse{
			ApartmentID:       row.ApartmentID,
			ApartmentName:     row.ApartmentName,
			InvestedUSD:       utils.RoundMoney(row.InvestedUSD),
			OperatingProfit:   utils.RoundMoney(row.OperatingProfit),
			ROIPercent:        utils.RoundPercent(row.ROIPercent),
			MonthsOperating:   row.MonthsOperating,
			MonthsToPayback:   row.MonthsToPayback,
			AverageMonthlyUSD: utils.RoundMoney(row.AverageMonthlyUSD),
		}
	}
	return res
}
