package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/homeledger/internal/apperrors"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// actingUser returns the user id set by ActorMiddleware, writing a 400 when absent.
func actingUser(c *gin.Context, logger *slog.Logger) (string, *slog.Logger, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "missing " + middleware.UserIDHeader + " header",
			Code:  string(apperrors.CodeMissingRequiredField),
		})
		return "", logger, false
	}
	return userID, logger.With(slog.String("acting_user_id", userID)), true
}
