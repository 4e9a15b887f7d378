package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader names the acting household member. There is no authentication:
// the header only selects whose view of the ledger a request sees.
const UserIDHeader = "X-User-ID"

const maxUserIDLength = 64

// ActorMiddleware resolves the acting user from the request header, falling
// back to defaultUserID, and stores it in both contexts.
func ActorMiddleware(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			userID = defaultUserID
		}
		if len(userID) > maxUserIDLength {
			GetLoggerFromContext(c).Warn("Rejected oversized user id header", slog.Int("length", len(userID)))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": UserIDHeader + " header is too long"})
			return
		}

		enrichedLogger := GetLoggerFromContext(c).With(slog.String("user_id", userID))

		c.Set(string(userIDKey), userID)
		c.Set(string(loggerKey), enrichedLogger)
		ctx := WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
