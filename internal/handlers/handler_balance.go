package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := &balanceHandler{balanceService: balanceService}

	rg.GET("/balances", h.getBalances)
	rg.GET("/insights", h.getInsights)
}

// getBalances godoc
// @Summary Current balances
// @Description Net balance per contact, largest first. Positive means the contact owes you.
// @Tags balances
// @Produce  json
// @Success 200 {object} domain.BalanceSummary
// @Router /balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.balanceService.GetBalances(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getInsights godoc
// @Summary Spending insights
// @Tags balances
// @Produce  json
// @Success 200 {object} domain.LedgerInsights
// @Router /insights [get]
func (h *balanceHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	insights, err := h.balanceService.GetInsights(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute insights")
		return
	}
	c.JSON(http.StatusOK, insights)
}
