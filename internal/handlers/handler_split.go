package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// splitHandler handles expense splits, payments and the transaction list.
type splitHandler struct {
	splitService portssvc.SplitSvcFacade
}

func registerSplitRoutes(rg *gin.RouterGroup, splitService portssvc.SplitSvcFacade) {
	h := &splitHandler{splitService: splitService}

	rg.POST("/splits", h.createSplit)
	rg.POST("/payments", h.recordPayment)
	rg.GET("/transactions", h.listTransactions)
}

// createSplit godoc
// @Summary Split an expense
// @Description Records an expense you paid, divided equally or by custom amounts.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   split body dto.CreateSplitRequest true "Expense details"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse "invalid_amount, no_participants_selected, missing_required_field, sum_mismatch or invalid_total"
// @Failure 404 {object} ErrorResponse "Unknown participant"
// @Router /splits [post]
func (h *splitHandler) createSplit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	txn, err := h.splitService.CreateSplit(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create split")
		return
	}
	logger.Info("Split created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, txn)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records money received from or sent to a contact.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Router /payments [post]
func (h *splitHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	txn, err := h.splitService.RecordPayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	logger.Info("Payment recorded successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, txn)
}

// listTransactions godoc
// @Summary List transactions
// @Description Pages through the ledger newest first.
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Router /transactions [get]
func (h *splitHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	txns, next, err := h.splitService.ListTransactions(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: txns, NextToken: next})
}
