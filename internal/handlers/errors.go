package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/stay_ledger_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error onto a JSON error response.
// Server-side failures are logged and answered with fallbackMsg so internals do not leak.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}
	logger.Warn("Request rejected by service", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
