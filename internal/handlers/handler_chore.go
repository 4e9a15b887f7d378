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

// choreHandler handles HTTP requests related to chores.
type choreHandler struct {
	choreService portssvc.ChoreSvcFacade
}

// registerChoreRoutes registers routes related to chores.
func registerChoreRoutes(rg *gin.RouterGroup, choreService portssvc.ChoreSvcFacade) {
	h := &choreHandler{choreService: choreService}

	chores := rg.Group("/chores")
	{
		chores.POST("", h.addChore)
		chores.GET("", h.listChores)
		chores.GET("/pending-counts", h.pendingCounts)
		chores.GET("/spin", h.spin)
		chores.GET("/:choreID", h.getChore)
		chores.DELETE("/:choreID", h.deleteChore)
		chores.POST("/:choreID/complete", h.toggleComplete)
		chores.POST("/:choreID/reactions", h.addReaction)
		chores.POST("/:choreID/comments", h.addComment)
		chores.PUT("/:choreID/assignee", h.assignChore)
	}
}

// addChore godoc
// @Summary Add a chore
// @Description With rotation enabled on a recurring chore, the assignees become the rotation order and only the first is assigned.
// @Tags chores
// @Accept  json
// @Produce  json
// @Param   chore body dto.CreateChoreRequest true "Chore details"
// @Success 201 {object} domain.Chore
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Unknown assignee"
// @Router /chores [post]
func (h *choreHandler) addChore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	chore, err := h.choreService.AddChore(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create chore")
		return
	}
	logger.Info("Chore created successfully", slog.String("chore_id", chore.ChoreID))
	c.JSON(http.StatusCreated, chore)
}

// listChores godoc
// @Summary List chores
// @Description Applies the frequency tab and then the status tab. "mine" means assigned to the acting user.
// @Tags chores
// @Produce  json
// @Param   frequency query string false "Frequency tab" Enums(all, daily, weekly, monthly, once)
// @Param   status query string false "Status tab" Enums(all, mine, overdue)
// @Success 200 {array} domain.Chore
// @Router /chores [get]
func (h *choreHandler) listChores(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListChoresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	chores, err := h.choreService.ListChores(c.Request.Context(), domain.ChoreFilter{
		Frequency: params.Frequency,
		Status:    params.Status,
		UserID:    userID,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to list chores")
		return
	}
	c.JSON(http.StatusOK, chores)
}

// pendingCounts godoc
// @Summary Pending chores per frequency
// @Tags chores
// @Produce  json
// @Success 200 {object} dto.PendingCountsResponse
// @Router /chores/pending-counts [get]
func (h *choreHandler) pendingCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	counts, err := h.choreService.PendingCounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to count chores")
		return
	}
	c.JSON(http.StatusOK, dto.PendingCountsResponse{Counts: counts})
}

// spin godoc
// @Summary Suggest a random chore and roommate
// @Description Picks a pending chore and a roommate at random. Nothing is assigned.
// @Tags chores
// @Produce  json
// @Success 200 {object} domain.SpinResult
// @Failure 404 {object} ErrorResponse "Nothing to pick from"
// @Router /chores/spin [get]
func (h *choreHandler) spin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := h.choreService.SpinAssignment(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to spin")
		return
	}
	c.JSON(http.StatusOK, result)
}

// getChore godoc
// @Summary Get a chore
// @Tags chores
// @Produce  json
// @Param   choreID path string true "Chore ID"
// @Success 200 {object} domain.Chore
// @Failure 404 {object} ErrorResponse "Chore not found"
// @Router /chores/{choreID} [get]
func (h *choreHandler) getChore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chore_id", c.Param("choreID")))
	chore, err := h.choreService.GetChoreByID(c.Request.Context(), c.Param("choreID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve chore")
		return
	}
	c.JSON(http.StatusOK, chore)
}

// deleteChore godoc
// @Summary Delete a chore
// @Tags chores
// @Param   choreID path string true "Chore ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Chore not found"
// @Router /chores/{choreID} [delete]
func (h *choreHandler) deleteChore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chore_id", c.Param("choreID")))
	if err := h.choreService.DeleteChore(c.Request.Context(), c.Param("choreID")); err != nil {
		respondError(c, logger, err, "Failed to delete chore")
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleComplete godoc
// @Summary Toggle a chore's completion
// @Description Completing credits the acting roommate with points, levels and badges. Toggling back only clears the flag.
// @Tags chores
// @Produce  json
// @Param   choreID path string true "Chore ID"
// @Success 200 {object} dto.ToggleChoreResponse
// @Failure 404 {object} ErrorResponse "Chore or roommate not found"
// @Router /chores/{choreID}/complete [post]
func (h *choreHandler) toggleComplete(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chore_id", c.Param("choreID")))
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	toggle, err := h.choreService.ToggleComplete(c.Request.Context(), c.Param("choreID"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to toggle chore")
		return
	}
	c.JSON(http.StatusOK, dto.ToToggleChoreResponse(*toggle))
}

// addReaction godoc
// @Summary Toggle a reaction
// @Tags chores
// @Accept  json
// @Produce  json
// @Param   choreID path string true "Chore ID"
// @Param   reaction body dto.AddReactionRequest true "Emoji"
// @Success 200 {object} domain.Chore
// @Router /chores/{choreID}/reactions [post]
func (h *choreHandler) addReaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chore_id", c.Param("choreID")))
	var req dto.AddReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	chore, err := h.choreService.AddReaction(c.Request.Context(), c.Param("choreID"), userID, req.Emoji)
	if err != nil {
		respondError(c, logger, err, "Failed to react to chore")
		return
	}
	c.JSON(http.StatusOK, chore)
}

// addComment godoc
// @Summary Comment on a chore
// @Tags chores
// @Accept  json
// @Produce  json
// @Param   choreID path string true "Chore ID"
// @Param   comment body dto.AddCommentRequest true "Comment"
// @Success 201 {object} domain.Chore
// @Router /chores/{choreID}/comments [post]
func (h *choreHandler) addComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chore_id", c.Param("choreID")))
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	chore, err := h.choreService.AddComment(c.Request.Context(), c.Param("choreID"), userID, req.Text)
	if err != nil {
		respondError(c, logger, err, "Failed to comment on chore")
		return
	}
	c.JSON(http.StatusCreated, chore)
}

// assignChore godoc
// @Summary Assign a chore
// @Tags chores
// @Accept  json
// @Produce  json
// @Param   choreID path string true "Chore ID"
// @Param   assignee body dto.AssignChoreRequest true "Roommate"
// @Success 200 {object} domain.Chore
// @Failure 404 {object} ErrorResponse "Chore or roommate not found"
// @Router /chores/{choreID}/assignee [put]
func (h *choreHandler) assignChore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chore_id", c.Param("choreID")))
	var req dto.AssignChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	chore, err := h.choreService.AssignChore(c.Request.Context(), c.Param("choreID"), req.RoommateID)
	if err != nil {
		respondError(c, logger, err, "Failed to assign chore")
		return
	}
	logger.Info("Chore assigned", slog.String("roommate_id", req.RoommateID))
	c.JSON(http.StatusOK, chore)
}
