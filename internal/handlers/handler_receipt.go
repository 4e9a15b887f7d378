package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/homeledger/internal/core/domain"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles itemized receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := &receiptHandler{receiptService: receiptService}

	receipts := rg.Group("/receipts")
	{
		receipts.POST("/scan", h.scanReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receiptID", h.getReceipt)
		receipts.POST("/:receiptID/items/:itemID/assignees", h.toggleItemAssignment)
		receipts.POST("/:receiptID/finalize", h.finalizeReceipt)
	}
}

// scanReceipt godoc
// @Summary Scan a receipt
// @Description Returns a draft receipt after a short pause. The scan result is sample data.
// @Tags receipts
// @Produce  json
// @Success 201 {object} domain.Receipt
// @Router /receipts/scan [post]
func (h *receiptHandler) scanReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	receipt, err := h.receiptService.ScanReceipt(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to scan receipt")
		return
	}
	logger.Info("Receipt scanned", slog.String("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusCreated, receipt)
}

// listReceipts godoc
// @Summary List receipts
// @Tags receipts
// @Produce  json
// @Success 200 {array} domain.Receipt
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receipts, err := h.receiptService.ListReceipts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list receipts")
		return
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	c.JSON(http.StatusOK, receipts)
}

// getReceipt godoc
// @Summary Get a receipt
// @Tags receipts
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Success 200 {object} domain.Receipt
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Router /receipts/{receiptID} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("receipt_id", c.Param("receiptID")))
	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), c.Param("receiptID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// toggleItemAssignment godoc
// @Summary Toggle who shares a receipt item
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Param   itemID path string true "Item ID"
// @Param   assignment body dto.ToggleItemAssignmentRequest true "Contact to add or remove"
// @Success 200 {object} domain.Receipt
// @Failure 404 {object} ErrorResponse "Receipt, item or contact not found"
// @Failure 409 {object} ErrorResponse "Receipt already finalized"
// @Router /receipts/{receiptID}/items/{itemID}/assignees [post]
func (h *receiptHandler) toggleItemAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("receipt_id", c.Param("receiptID")),
		slog.String("item_id", c.Param("itemID")))
	var req dto.ToggleItemAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	receipt, err := h.receiptService.ToggleItemAssignment(c.Request.Context(), c.Param("receiptID"), c.Param("itemID"), req.ContactID)
	if err != nil {
		respondError(c, logger, err, "Failed to update receipt item")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// finalizeReceipt godoc
// @Summary Finalize a receipt
// @Description Splits the receipt between the assigned contacts and records it as a transaction.
// @Tags receipts
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Success 201 {object} domain.ReceiptFinalization
// @Failure 400 {object} ErrorResponse "No items assigned"
// @Failure 409 {object} ErrorResponse "Receipt already finalized"
// @Router /receipts/{receiptID}/finalize [post]
func (h *receiptHandler) finalizeReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("receipt_id", c.Param("receiptID")))
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	result, err := h.receiptService.FinalizeReceipt(c.Request.Context(), c.Param("receiptID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to finalize receipt")
		return
	}
	logger.Info("Receipt finalized",
		slog.String("transaction_id", result.Transaction.TransactionID),
		slog.Int("unassigned_items", len(result.UnassignedItems)))
	c.JSON(http.StatusCreated, result)
}
