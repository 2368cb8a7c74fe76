package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stay_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/stay_ledger_app/internal/dto"
	"github.com/SscSPs/stay_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundHandler handles HTTP requests related to the development fund.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fs portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fs}
}

// RegisterFundRoutes registers routes related to the development fund.
func RegisterFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	fund := rg.Group("/fund")
	{
		fund.GET("/balance", h.getBalance)
		fund.GET("/transactions", h.listTransactions)
		fund.POST("/deposits", h.deposit)
		fund.POST("/withdrawals", h.withdraw)
		fund.POST("/inventory-purchases", h.recordInventoryPurchase)
	}
}

// getBalance godoc
// @Summary Get development fund balance
// @Description Returns the fund balance in USD and EGP
// @Tags fund
// @Produce json
// @Success 200 {object} dto.FundBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to calculate balance"
// @Security BearerAuth
// @Router /fund/balance [get]
func (h *fundHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balance, err := h.fundService.Balance(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate fund balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundBalanceResponse(*balance))
}

// listTransactions godoc
// @Summary List development fund transactions
// @Description Lists fund transactions newest first using token-based pagination
// @Tags fund
// @Produce json
// @Param limit query int false "Number of transactions to return" default(20)
// @Param nextToken query string false "Token for fetching the next page"
// @Success 200 {object} dto.ListFundTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /fund/transactions [get]
func (h *fundHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListFundTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txs, nextToken, err := h.fundService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fund transactions")
		return
	}

	logger.Debug("Fund transactions listed", slog.Int("count", len(txs)))
	c.JSON(http.StatusOK, dto.ToListFundTransactionsResponse(txs, nextToken))
}

// deposit godoc
// @Summary Deposit into the development fund
// @Tags fund
// @Accept json
// @Produce json
// @Param deposit body dto.FundMovementRequest true "Deposit details"
// @Success 201 {object} dto.FundMutationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record deposit"
// @Security BearerAuth
// @Router /fund/deposits [post]
func (h *fundHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tx, err := h.fundService.Deposit(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record deposit")
		return
	}

	logger.Info("Fund deposit recorded", slog.String("transaction_id", tx.TransactionID))
	c.JSON(http.StatusCreated, dto.FundMutationResponse{Transaction: dto.ToFundTransactionResponse(tx)})
}

// withdraw godoc
// @Summary Withdraw from the development fund
// @Description Records a withdrawal. The response carries a warning when the balance goes negative.
// @Tags fund
// @Accept json
// @Produce json
// @Param withdrawal body dto.FundMovementRequest true "Withdrawal details"
// @Success 201 {object} dto.FundMutationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record withdrawal"
// @Security BearerAuth
// @Router /fund/withdrawals [post]
func (h *fundHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tx, warning, err := h.fundService.Withdraw(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record withdrawal")
		return
	}

	logger.Info("Fund withdrawal recorded", slog.String("transaction_id", tx.TransactionID))
	c.JSON(http.StatusCreated, dto.FundMutationResponse{Transaction: dto.ToFundTransactionResponse(tx), Warning: warning})
}

// recordInventoryPurchase godoc
// @Summary Pay for an inventory item from the development fund
// @Tags fund
// @Accept json
// @Produce json
// @Param purchase body dto.InventoryPurchaseRequest true "Purchase details"
// @Success 201 {object} dto.FundMutationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /fund/inventory-purchases [post]
func (h *fundHandler) recordInventoryPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InventoryPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordInventoryPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tx, warning, err := h.fundService.RecordInventoryPurchase(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record inventory purchase")
		return
	}

	logger.Info("Inventory purchase recorded", slog.String("transaction_id", tx.TransactionID), slog.String("inventory_item_id", req.InventoryItemID))
	c.JSON(http.StatusCreated, dto.FundMutationResponse{Transaction: dto.ToFundTransactionResponse(tx), Warning: warning})
}
