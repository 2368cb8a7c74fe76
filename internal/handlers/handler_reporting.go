package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/monthly-summary", h.getMonthlySummary)
		reportingGroup.GET("/roi", h.getROI)
	}
}

// getDashboard godoc
// @Summary Generate the financial dashboard
// @Description Revenue, expenses and the partner waterfall for a year, a month or all time
// @Tags reports
// @Produce json
// @Param year query int false "Report year; omit for all time"
// @Param month query int false "Report month (1-12); requires year"
// @Param apartmentId query string false "Limit the report to one apartment"
// @Param strategy query string false "Revenue attribution" Enums(proportional_by_nights, check_in_month_only)
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid dashboard query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.Int("year", query.Year),
		slog.Int("month", query.Month),
		slog.String("apartment_id", query.ApartmentID),
	)
	logger.Info("Received request to generate dashboard")

	report, err := h.reportingService.Dashboard(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate dashboard")
		return
	}

	logger.Info("Dashboard generated successfully", slog.Int("booking_count", len(report.Bookings)))
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// getMonthlySummary godoc
// @Summary Generate the monthly statement
// @Description Twelve monthly rows for a year, attributing each booking to its check-in month
// @Tags reports
// @Produce json
// @Param year query int true "Statement year"
// @Param apartmentId query string false "Limit the statement to one apartment"
// @Success 200 {array} dto.MonthlySummaryRowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/monthly-summary [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.MonthlySummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid monthly summary query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.MonthlySummary(c.Request.Context(), query.Year, query.ApartmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(rows))
}

// getROI godoc
// @Summary Generate the ROI report
// @Description Compares invested capital with cumulative operating profit per apartment
// @Tags reports
// @Produce json
// @Param apartmentId query string false "Limit the report to one apartment"
// @Success 200 {array} dto.ApartmentROIResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/roi [get]
func (h *reportingHandler) getROI(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ROIQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.ROI(c.Request.Context(), query.ApartmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate ROI report")
		return
	}
	c.JSON(http.StatusOK, dto.ToApartmentROIResponse(rows))
}
