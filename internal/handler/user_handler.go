package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/response"
)

type profileService interface {
	Profile(ctx context.Context, userID string, at time.Time) (*dto.ProfileResponse, error)
	UpdateAvatar(ctx context.Context, userID string, req dto.UpdateAvatarRequest) (models.User, error)
}

// UserHandler serves the caller's own profile endpoints.
type UserHandler struct {
	service profileService
	now     func() time.Time
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc profileService) *UserHandler {
	return &UserHandler{service: svc, now: time.Now}
}

// Me godoc
// @Summary Current user's profile
// @Description Profile with manual status, availability and current/next/recent class context
// @Tags Users
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), claims.UserID, h.now().UTC())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// UpdateAvatar godoc
// @Summary Set avatar URL
// @Description Update the only mutable profile field
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.UpdateAvatarRequest true "Avatar payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/avatar [put]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid avatar payload"))
		return
	}

	user, err := h.service.UpdateAvatar(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}
