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

type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := &recurringHandler{recurringService: recurringService}

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurringExpense)
		recurring.GET("", h.listRecurringExpenses)
		recurring.GET("/upcoming", h.upcomingPayments)
	}
}

// createRecurringExpense godoc
// @Summary Add a recurring expense
// @Description Splits the amount equally between the participants and you.
// @Tags recurring
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateRecurringExpenseRequest true "Recurring expense"
// @Success 201 {object} domain.RecurringExpense
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /recurring [post]
func (h *recurringHandler) createRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	expense, err := h.recurringService.CreateRecurringExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create recurring expense")
		return
	}
	logger.Info("Recurring expense created successfully", slog.String("recurring_id", expense.RecurringID))
	c.JSON(http.StatusCreated, expense)
}

// listRecurringExpenses godoc
// @Summary List recurring expenses
// @Tags recurring
// @Produce  json
// @Success 200 {array} domain.RecurringExpense
// @Router /recurring [get]
func (h *recurringHandler) listRecurringExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenses, err := h.recurringService.ListRecurringExpenses(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list recurring expenses")
		return
	}
	if expenses == nil {
		expenses = []domain.RecurringExpense{}
	}
	c.JSON(http.StatusOK, expenses)
}

// upcomingPayments godoc
// @Summary Upcoming payments
// @Description Recurring expenses due within the acting user's reminder window, soonest first.
// @Tags recurring
// @Produce  json
// @Success 200 {array} domain.UpcomingPayment
// @Router /recurring/upcoming [get]
func (h *recurringHandler) upcomingPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	upcoming, err := h.recurringService.UpcomingPayments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list upcoming payments")
		return
	}
	if upcoming == nil {
		upcoming = []domain.UpcomingPayment{}
	}
	c.JSON(http.StatusOK, upcoming)
}
