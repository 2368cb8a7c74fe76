package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportSummary is the top-level roll-up of a financial report. All amounts are USD.
type ReportSummary struct {
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

// PartnerPayout is one partner's share inside a single apartment's waterfall.
type PartnerPayout struct {
	PartnerID  string          `json:"partnerID"`
	Name       string          `json:"name"`
	Type       PartnerType     `json:"type"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
}

// ApartmentFinancials is the waterfall result for one apartment.
type ApartmentFinancials struct {
	ApartmentID              string          `json:"apartmentID"`
	ApartmentName            string          `json:"apartmentName"`
	Revenue                  decimal.Decimal `json:"revenue"`
	PlatformCommission       decimal.Decimal `json:"platformCommission"`
	TransferCommission       decimal.Decimal `json:"transferCommission"`
	Expenses                 decimal.Decimal `json:"expenses"`
	OperatingProfit          decimal.Decimal `json:"operatingProfit"`
	InvestorPayouts          []PartnerPayout `json:"investorPayouts"`
	TotalInvestorPayouts     decimal.Decimal `json:"totalInvestorPayouts"`
	CompanyProfit            decimal.Decimal `json:"companyProfit"`
	CompanyOwnerPayouts      []PartnerPayout `json:"companyOwnerPayouts"`
	TotalCompanyOwnerPayouts decimal.Decimal `json:"totalCompanyOwnerPayouts"`
	BookingCount             int             `json:"bookingCount"`
}

// PartnerProfit is a partner's total across every apartment they participate in.
type PartnerProfit struct {
	Name         string          `json:"name"`
	Type         PartnerType     `json:"type"`
	TotalUSD     decimal.Decimal `json:"totalUSD"`
	TotalEGP     decimal.Decimal `json:"totalEGP"`
	ApartmentIDs []string        `json:"apartmentIDs"`
}

// BookingView is a booking after currency normalization and period allocation.
type BookingView struct {
	BookingID             string           `json:"bookingID"`
	ApartmentID           string           `json:"apartmentID"`
	GuestName             string           `json:"guestName"`
	CheckIn               time.Time        `json:"checkIn"`
	CheckOut              *time.Time       `json:"checkOut,omitempty"`
	Currency              string           `json:"currency"`
	TotalUSD              decimal.Decimal  `json:"totalUSD"`
	PaidUSD               decimal.Decimal  `json:"paidUSD"`
	RemainingUSD          decimal.Decimal  `json:"remainingUSD"`
	PlatformCommissionUSD decimal.Decimal  `json:"platformCommissionUSD"`
	TransferCommissionUSD decimal.Decimal  `json:"transferCommissionUSD"`
	AllocatedRevenueUSD   decimal.Decimal  `json:"allocatedRevenueUSD"`
	CommissionStatus      CommissionStatus `json:"commissionStatus"`
	CommissionRecognized  bool             `json:"commissionRecognized"`
	Completed             bool             `json:"completed"`
}

// ExpenseView is an expense after currency normalization.
type ExpenseView struct {
	ExpenseID   string          `json:"expenseID"`
	ApartmentID *string         `json:"apartmentID,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Currency    string          `json:"currency"`
	AmountUSD   decimal.Decimal `json:"amountUSD"`
}

// FinancialReport is the aggregate returned by the dashboard query.
type FinancialReport struct {
	Year                int                   `json:"year,omitempty"`
	Month               int                   `json:"month,omitempty"`
	ApartmentID         string                `json:"apartmentID,omitempty"`
	Summary             ReportSummary         `json:"summary"`
	ApartmentFinancials []ApartmentFinancials `json:"apartmentFinancials"`
	PartnerProfits      []PartnerProfit       `json:"partnerProfits"`
	Bookings            []BookingView         `json:"bookings"`
	Expenses            []ExpenseView         `json:"expenses"`
}

// MonthlySummaryRow is one month of the monthly statement.
type MonthlySummaryRow struct {
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

// ApartmentROI compares invested capital with the apartment's cumulative operating profit.
type ApartmentROI struct {
	ApartmentID       string          `json:"apartmentID"`
	ApartmentName     string          `json:"apartmentName"`
	InvestedUSD       decimal.Decimal `json:"investedUSD"`
	OperatingProfit   decimal.Decimal `json:"operatingProfit"`
	ROIPercent        decimal.Decimal `json:"roiPercent"`
	MonthsOperating   int             `json:"monthsOperating"`
	MonthsToPayback   *int            `json:"monthsToPayback,omitempty"`
	AverageMonthlyUSD decimal.Decimal `json:"averageMonthlyUSD"`
}
