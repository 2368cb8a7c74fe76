package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyRateHandler handles HTTP requests related to live currency rates.
type currencyRateHandler struct {
	rateService portssvc.CurrencyRateSvcFacade
}

func newCurrencyRateHandler(rs portssvc.CurrencyRateSvcFacade) *currencyRateHandler {
	return &currencyRateHandler{rateService: rs}
}

// RegisterCurrencyRateRoutes registers routes related to live currency rates.
func RegisterCurrencyRateRoutes(rg *gin.RouterGroup, rateService portssvc.CurrencyRateSvcFacade) {
	h := newCurrencyRateHandler(rateService)

	rates := rg.Group("/currency-rates")
	{
		rates.GET("", h.listRates)
		rates.PUT("/:code", h.upsertRate)
	}
}

// listRates godoc
// @Summary List live currency rates
// @Description Lists the current rate of every currency against the base currency
// @Tags currency-rates
// @Produce json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /currency-rates [get]
func (h *currencyRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currency rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// upsertRate godoc
// @Summary Set a live currency rate
// @Description Records a manual rate for a currency. Existing bookings keep their locked rates.
// @Tags currency-rates
// @Accept json
// @Produce json
// @Param code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param rate body dto.UpsertCurrencyRateRequest true "Rate details"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save rate"
// @Security BearerAuth
// @Router /currency-rates/{code} [put]
func (h *currencyRateHandler) upsertRate(c *gin.Context) {
	code := strings.ToUpper(c.Param("code"))
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("currency_code", code))

	var req dto.UpsertCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.UpsertRate(c.Request.Context(), code, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save currency rate")
		return
	}

	logger.Info("Currency rate saved", slog.String("rate", rate.RateToBase.String()))
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}
