package reconciliation

import (
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/stay_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Snapshot is one consistent read of every collection a report needs.
type Snapshot struct {
	Bookings   []domain.Booking
	Apartments []domain.Apartment
	Expenses   []domain.Expense
	Rates      []domain.CurrencyRate
}

// ReportQuery selects the reporting window and optionally one apartment.
type ReportQuery struct {
	Period      Period
	ApartmentID string
}

// Options are the engine settings that come from configuration.
type Options struct {
	BaseCurrency            string
	DefaultUSDRate          decimal.Decimal
	CompletedBalanceEpsilon decimal.Decimal
	Logger                  *slog.Logger
}

// Engine builds reports from snapshots. It holds no state besides its options.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	if opts.BaseCurrency == "" {
		opts.BaseCurrency = domain.EGP
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Engine{opts: opts}
}

// Ledger returns a currency ledger over the given live rates.
func (e *Engine) Ledger(rates []domain.CurrencyRate) *CurrencyLedger {
	return NewCurrencyLedger(e.opts.BaseCurrency, domain.SnapshotFromRates(rates), e.opts.DefaultUSDRate, e.opts.Logger)
}

// BuildReport normalizes, allocates and distributes a snapshot for one window as of asOf.
func (e *Engine) BuildReport(snap Snapshot, q ReportQuery, strategy AllocationStrategy, asOf time.Time) domain.FinancialReport {
	ledger := e.Ledger(snap.Rates)
	usdRate := ledger.LiveUSDRate()

	report := domain.FinancialReport{
		Year:                q.Period.Year,
		Month:               q.Period.Month,
		ApartmentID:         q.ApartmentID,
		ApartmentFinancials: []domain.ApartmentFinancials{},
		Bookings:            []domain.BookingView{},
		Expenses:            []domain.ExpenseView{},
	}
	summary := domain.ReportSummary{
		TotalRevenue:              decimal.Zero,
		TotalPlatformCommission:   decimal.Zero,
		TotalTransferCommission:   decimal.Zero,
		TotalExpenses:             decimal.Zero,
		TotalOperatingProfit:      decimal.Zero,
		TotalInvestorPayouts:      decimal.Zero,
		TotalCompanyProfit:        decimal.Zero,
		TotalCompanyOwnerPayouts:  decimal.Zero,
		NetProfit:                 decimal.Zero,
		PendingAmount:             decimal.Zero,
		CollectedAmount:           decimal.Zero,
		TotalDevelopmentDeduction: decimal.Zero,
		USDRate:                   usdRate,
	}

	apartments := selectApartments(snap, q.ApartmentID)
	lines := make(map[string][]BookingLine, len(apartments))
	firstStay := make(map[string]time.Time, len(apartments))

	for i := range snap.Bookings {
		b := &snap.Bookings[i]
		if q.ApartmentID != "" && b.ApartmentID != q.ApartmentID {
			continue
		}
		if first, ok := firstStay[b.ApartmentID]; !ok || b.CheckIn.Before(first) {
			firstStay[b.ApartmentID] = b.CheckIn
		}

		included := strategy.Includes(b, q.Period)
		recognized := RecognizedInPeriod(b, q.Period, asOf)
		if !included && !recognized {
			continue
		}

		n := ledger.NormalizeBooking(b, asOf, e.opts.CompletedBalanceEpsilon)
		fraction := decimal.Zero
		if included {
			fraction = strategy.Fraction(b, q.Period)
		}
		view := bookingView(n, fraction.Mul(n.TotalUSD), recognized)

		if included {
			summary.PendingAmount = summary.PendingAmount.Add(n.RemainingUSD)
			summary.CollectedAmount = summary.CollectedAmount.Add(n.PaidUSD)
			summary.TotalDevelopmentDeduction = summary.TotalDevelopmentDeduction.Add(n.DevelopmentDeductionUSD)
			if n.Completed {
				summary.CompletedBookings++
			} else {
				summary.ActiveBookings++
			}
		}

		if n.Completed {
			line := BookingLine{
				BookingID:             b.BookingID,
				RevenueUSD:            view.AllocatedRevenueUSD,
				CommissionUSD:         decimal.Zero,
				TransferCommissionUSD: decimal.Zero,
				Counted:               included,
			}
			if recognized {
				line.CommissionUSD = n.CommissionUSD
				line.TransferCommissionUSD = n.TransferCommissionUSD
			}
			lines[b.ApartmentID] = append(lines[b.ApartmentID], line)
		}
		report.Bookings = append(report.Bookings, view)
	}

	apartments = appendUnknownApartments(apartments, lines)

	expensesByApartment := make(map[string]decimal.Decimal, len(apartments))
	generalExpenses := decimal.Zero
	for i := range snap.Expenses {
		ex := &snap.Expenses[i]
		if !q.Period.Contains(ex.Date) {
			continue
		}
		if q.ApartmentID != "" && !ex.BelongsTo(q.ApartmentID) {
			continue
		}
		amount := ledger.ExpenseUSD(ex)
		report.Expenses = append(report.Expenses, expenseView(ex, ledger.ResolveAmount(ex, domain.FieldAmount).Currency, amount))
		if ex.IsTransferCommission() {
			continue
		}
		if ex.ApartmentID == nil {
			generalExpenses = generalExpenses.Add(amount)
			continue
		}
		expensesByApartment[*ex.ApartmentID] = expensesByApartment[*ex.ApartmentID].Add(amount)
	}

	for i := range apartments {
		apt := &apartments[i]
		since := apt.CreatedAt
		if since.IsZero() {
			since = firstStay[apt.ApartmentID]
		}
		months := monthsCovered(q.Period, since, asOf)
		fixed := ledger.MonthlyExpensesUSD(apt).Mul(decimal.NewFromInt(int64(months)))

		if RosterOverAllocated(apt) {
			e.opts.Logger.Warn("Roster percentages exceed 100; scaling partner shares",
				slog.String("apartment_id", apt.ApartmentID))
		}
		fin := Distribute(WaterfallInput{
			Apartment:   apt,
			Lines:       lines[apt.ApartmentID],
			ExpensesUSD: fixed.Add(expensesByApartment[apt.ApartmentID]),
		})
		report.ApartmentFinancials = append(report.ApartmentFinancials, fin)

		summary.TotalRevenue = summary.TotalRevenue.Add(fin.Revenue)
		summary.TotalPlatformCommission = summary.TotalPlatformCommission.Add(fin.PlatformCommission)
		summary.TotalTransferCommission = summary.TotalTransferCommission.Add(fin.TransferCommission)
		summary.TotalExpenses = summary.TotalExpenses.Add(fin.Expenses)
		summary.TotalOperatingProfit = summary.TotalOperatingProfit.Add(fin.OperatingProfit)
		summary.TotalInvestorPayouts = summary.TotalInvestorPayouts.Add(fin.TotalInvestorPayouts)
		summary.TotalCompanyProfit = summary.TotalCompanyProfit.Add(fin.CompanyProfit)
		summary.TotalCompanyOwnerPayouts = summary.TotalCompanyOwnerPayouts.Add(fin.TotalCompanyOwnerPayouts)
	}

	summary.TotalExpenses = summary.TotalExpenses.Add(generalExpenses)
	summary.NetProfit = summary.TotalOperatingProfit.Sub(generalExpenses)

	report.Summary = summary
	report.PartnerProfits = AggregatePartners(report.ApartmentFinancials, usdRate)

	sort.SliceStable(report.Bookings, func(i, j int) bool {
		return report.Bookings[i].CheckIn.Before(report.Bookings[j].CheckIn)
	})
	sort.SliceStable(report.Expenses, func(i, j int) bool {
		return report.Expenses[i].Date.Before(report.Expenses[j].Date)
	})
	return report
}

// BuildMonthlySummary produces twelve rows for year using check-in month attribution.
func (e *Engine) BuildMonthlySummary(snap Snapshot, year int, apartmentID string, asOf time.Time) []domain.MonthlySummaryRow {
	rows := make([]domain.MonthlySummaryRow, 0, 12)
	for month := 1; month <= 12; month++ {
		r := e.BuildReport(snap, ReportQuery{Period: MonthPeriod(year, month), ApartmentID: apartmentID}, CheckInMonthOnly{}, asOf)
		count := 0
		for _, fin := range r.ApartmentFinancials {
			count += fin.BookingCount
		}
		rows = append(rows, domain.MonthlySummaryRow{
			Year:                 year,
			Month:                month,
			Revenue:              r.Summary.TotalRevenue,
			PlatformCommission:   r.Summary.TotalPlatformCommission,
			TransferCommission:   r.Summary.TotalTransferCommission,
			Expenses:             r.Summary.TotalExpenses,
			OperatingProfit:      r.Summary.TotalOperatingProfit,
			TotalInvestorPayouts: r.Summary.TotalInvestorPayouts,
			CompanyProfit:        r.Summary.TotalCompanyProfit,
			BookingCount:         count,
		})
	}
	return rows
}

// BuildROI compares each apartment's invested capital with its all-time operating profit.
func (e *Engine) BuildROI(snap Snapshot, apartmentID string, asOf time.Time) []domain.ApartmentROI {
	r := e.BuildReport(snap, ReportQuery{Period: AllTime(), ApartmentID: apartmentID}, ProportionalByNights{}, asOf)

	created := make(map[string]time.Time, len(snap.Apartments))
	invested := make(map[string]decimal.Decimal, len(snap.Apartments))
	for _, a := range snap.Apartments {
		created[a.ApartmentID] = a.CreatedAt
		invested[a.ApartmentID] = a.InvestmentAmountUSD
	}
	firstStay := make(map[string]time.Time)
	for _, b := range snap.Bookings {
		if first, ok := firstStay[b.ApartmentID]; !ok || b.CheckIn.Before(first) {
			firstStay[b.ApartmentID] = b.CheckIn
		}
	}

	out := make([]domain.ApartmentROI, 0, len(r.ApartmentFinancials))
	for _, fin := range r.ApartmentFinancials {
		since := created[fin.ApartmentID]
		if since.IsZero() {
			since = firstStay[fin.ApartmentID]
		}
		roi := domain.ApartmentROI{
			ApartmentID:       fin.ApartmentID,
			ApartmentName:     fin.ApartmentName,
			InvestedUSD:       invested[fin.ApartmentID],
			OperatingProfit:   fin.OperatingProfit,
			ROIPercent:        decimal.Zero,
			MonthsOperating:   monthsCovered(AllTime(), since, asOf),
			AverageMonthlyUSD: decimal.Zero,
		}
		if roi.InvestedUSD.IsPositive() {
			roi.ROIPercent = roi.OperatingProfit.Div(roi.InvestedUSD).Mul(hundred)
		}
		if roi.MonthsOperating > 0 {
			roi.AverageMonthlyUSD = roi.OperatingProfit.Div(decimal.NewFromInt(int64(roi.MonthsOperating)))
		}
		roi.MonthsToPayback = monthsToPayback(roi.InvestedUSD, roi.OperatingProfit, roi.AverageMonthlyUSD)
		out = append(out, roi)
	}
	return out
}

// monthsToPayback is nil when the investment cannot be paid back at the current average.
func monthsToPayback(invested, earned, monthly decimal.Decimal) *int {
	if !invested.IsPositive() {
		return nil
	}
	if earned.GreaterThanOrEqual(invested) {
		zero := 0
		return &zero
	}
	if !monthly.IsPositive() {
		return nil
	}
	months := int(invested.Sub(earned).Div(monthly).Ceil().IntPart())
	return &months
}

func selectApartments(snap Snapshot, apartmentID string) []domain.Apartment {
	out := make([]domain.Apartment, 0, len(snap.Apartments))
	for _, a := range snap.Apartments {
		if apartmentID == "" || a.ApartmentID == apartmentID {
			out = append(out, a)
		}
	}
	return out
}

// appendUnknownApartments adds rosterless placeholders for bookings whose apartment
// is missing from the snapshot, so their profit still lands with the company.
func appendUnknownApartments(apartments []domain.Apartment, lines map[string][]BookingLine) []domain.Apartment {
	known := make(map[string]bool, len(apartments))
	for _, a := range apartments {
		known[a.ApartmentID] = true
	}
	var missing []string
	for id := range lines {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	for _, id := range missing {
		apartments = append(apartments, domain.Apartment{ApartmentID: id, Name: id})
	}
	return apartments
}

func bookingView(n NormalizedBooking, allocated decimal.Decimal, recognized bool) domain.BookingView {
	b := n.Booking
	return domain.BookingView{
		BookingID:             b.BookingID,
		ApartmentID:           b.ApartmentID,
		GuestName:             b.GuestName,
		CheckIn:               b.CheckIn,
		CheckOut:              b.CheckOut,
		Currency:              n.Currency,
		TotalUSD:              n.TotalUSD,
		PaidUSD:               n.PaidUSD,
		RemainingUSD:          n.RemainingUSD,
		PlatformCommissionUSD: n.CommissionUSD,
		TransferCommissionUSD: n.TransferCommissionUSD,
		AllocatedRevenueUSD:   allocated,
		CommissionStatus:      n.CommissionStatus,
		CommissionRecognized:  recognized,
		Completed:             n.Completed,
	}
}

func expenseView(ex *domain.Expense, currency string, amountUSD decimal.Decimal) domain.ExpenseView {
	return domain.ExpenseView{
		ExpenseID:   ex.ExpenseID,
		ApartmentID: ex.ApartmentID,
		Category:    ex.Category,
		Description: ex.Description,
		Date:        ex.Date,
		Currency:    currency,
		AmountUSD:   amountUSD,
	}
}
