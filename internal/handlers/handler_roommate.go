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

// roommateHandler serves roommates and their progress views.
type roommateHandler struct {
	roommateService portssvc.RoommateSvcFacade
	statsService    portssvc.ChoreStatsSvc
}

func registerRoommateRoutes(rg *gin.RouterGroup, roommateService portssvc.RoommateSvcFacade, statsService portssvc.ChoreStatsSvc) {
	h := &roommateHandler{roommateService: roommateService, statsService: statsService}

	roommates := rg.Group("/roommates")
	{
		roommates.POST("", h.createRoommate)
		roommates.GET("", h.listRoommates)
		roommates.GET("/:roommateID", h.getRoommate)
		roommates.GET("/:roommateID/dashboard", h.getDashboard)
		roommates.GET("/:roommateID/weekly-summary", h.getWeeklySummary)
		roommates.GET("/:roommateID/streak", h.getStreak)
	}
	rg.GET("/leaderboard", h.getLeaderboard)
}

// createRoommate godoc
// @Summary Add a roommate
// @Tags roommates
// @Accept  json
// @Produce  json
// @Param   roommate body dto.CreateRoommateRequest true "Roommate details"
// @Success 201 {object} domain.Roommate
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /roommates [post]
func (h *roommateHandler) createRoommate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoommateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	roommate, err := h.roommateService.CreateRoommate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create roommate")
		return
	}
	logger.Info("Roommate created successfully", slog.String("roommate_id", roommate.RoommateID))
	c.JSON(http.StatusCreated, roommate)
}

// listRoommates godoc
// @Summary List roommates
// @Tags roommates
// @Produce  json
// @Success 200 {array} domain.Roommate
// @Router /roommates [get]
func (h *roommateHandler) listRoommates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roommates, err := h.roommateService.ListRoommates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list roommates")
		return
	}
	if roommates == nil {
		roommates = []domain.Roommate{}
	}
	c.JSON(http.StatusOK, roommates)
}

// getRoommate godoc
// @Summary Get a roommate
// @Tags roommates
// @Produce  json
// @Param   roommateID path string true "Roommate ID"
// @Success 200 {object} domain.Roommate
// @Failure 404 {object} ErrorResponse "Roommate not found"
// @Router /roommates/{roommateID} [get]
func (h *roommateHandler) getRoommate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("roommate_id", c.Param("roommateID")))
	roommate, err := h.roommateService.GetRoommateByID(c.Request.Context(), c.Param("roommateID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve roommate")
		return
	}
	c.JSON(http.StatusOK, roommate)
}

// getDashboard godoc
// @Summary Personal dashboard
// @Tags stats
// @Produce  json
// @Param   roommateID path string true "Roommate ID"
// @Success 200 {object} domain.Dashboard
// @Failure 404 {object} ErrorResponse "Roommate not found"
// @Router /roommates/{roommateID}/dashboard [get]
func (h *roommateHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("roommate_id", c.Param("roommateID")))
	dashboard, err := h.statsService.Dashboard(c.Request.Context(), c.Param("roommateID"))
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// getWeeklySummary godoc
// @Summary Weekly summary
// @Tags stats
// @Produce  json
// @Param   roommateID path string true "Roommate ID"
// @Success 200 {object} domain.WeeklySummary
// @Failure 404 {object} ErrorResponse "Roommate not found"
// @Router /roommates/{roommateID}/weekly-summary [get]
func (h *roommateHandler) getWeeklySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("roommate_id", c.Param("roommateID")))
	summary, err := h.statsService.WeeklySummary(c.Request.Context(), c.Param("roommateID"))
	if err != nil {
		respondError(c, logger, err, "Failed to build weekly summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// StreakResponse is a roommate's current completion streak in days.
type StreakResponse struct {
	RoommateID string `json:"roommateID"`
	Days       int    `json:"days"`
}

// getStreak godoc
// @Summary Current streak
// @Tags stats
// @Produce  json
// @Param   roommateID path string true "Roommate ID"
// @Success 200 {object} StreakResponse
// @Failure 404 {object} ErrorResponse "Roommate not found"
// @Router /roommates/{roommateID}/streak [get]
func (h *roommateHandler) getStreak(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("roommate_id", c.Param("roommateID")))
	days, err := h.statsService.Streak(c.Request.Context(), c.Param("roommateID"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute streak")
		return
	}
	c.JSON(http.StatusOK, StreakResponse{RoommateID: c.Param("roommateID"), Days: days})
}

// getLeaderboard godoc
// @Summary Leaderboard
// @Tags stats
// @Produce  json
// @Success 200 {object} domain.Leaderboard
// @Router /leaderboard [get]
func (h *roommateHandler) getLeaderboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	board, err := h.statsService.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build leaderboard")
		return
	}
	c.JSON(http.StatusOK, board)
}
