package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/dto"
	"github.com/SscSPs/homeledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: profileService}

	rg.GET("/profile", h.getProfile)
	rg.PATCH("/profile", h.updateProfile)
}

// getProfile godoc
// @Summary Get your profile
// @Tags profile
// @Produce  json
// @Success 200 {object} domain.UserProfile
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// updateProfile godoc
// @Summary Update your profile
// @Description Only the fields present in the body change.
// @Tags profile
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Router /profile [patch]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, logger, ok := actingUser(c, logger)
	if !ok {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}
	logger.Info("Profile updated successfully")
	c.JSON(http.StatusOK, profile)
}
