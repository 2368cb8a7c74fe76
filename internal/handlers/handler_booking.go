package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// RegisterBookingRoutes registers routes related to bookings.
func RegisterBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("/:bookingID", h.getBooking)
		bookings.PUT("/:bookingID", h.updateBooking)
		bookings.POST("/:bookingID/extend", h.extendBooking)
	}
}

// createBooking godoc
// @Summary Create a booking
// @Description Settles a new booking against the live exchange rates and locks them on the booking.
// @Description Setting transferFromBookingID moves the guest's platform commission from that booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Apartment or source booking not found"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Security BearerAuth
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("apartment_id", req.ApartmentID))
	logger.Info("Received request to create booking")

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create booking")
		return
	}

	logger.Info("Booking created successfully", slog.String("booking_id", booking.BookingID))
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// getBooking godoc
// @Summary Get a booking
// @Description Retrieves a booking with its settlement breakdown
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Security BearerAuth
// @Router /bookings/{bookingID} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("booking_id", bookingID))

	booking, err := h.bookingService.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve booking")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// updateBooking godoc
// @Summary Update a booking
// @Description Replaces the editable fields of a booking and settles it again with its locked rates
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param booking body dto.UpdateBookingRequest true "Updated booking details"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update booking"
// @Security BearerAuth
// @Router /bookings/{bookingID} [put]
func (h *bookingHandler) updateBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("booking_id", bookingID))

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), bookingID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update booking")
		return
	}

	logger.Info("Booking updated successfully")
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// extendBooking godoc
// @Summary Extend a booking
// @Description Moves the checkout forward, adds to the total and optionally records a payment
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param extension body dto.ExtendBookingRequest true "Extension details"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to extend booking"
// @Security BearerAuth
// @Router /bookings/{bookingID}/extend [post]
func (h *bookingHandler) extendBooking(c *gin.Context) {
	bookingID := c.Param("bookingID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("booking_id", bookingID))

	var req dto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExtendBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.bookingService.ExtendBooking(c.Request.Context(), bookingID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to extend booking")
		return
	}

	logger.Info("Booking extended successfully")
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
