package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/response"
)

type statusService interface {
	Get(ctx context.Context, userID string) (dto.StatusResponse, error)
	Update(ctx context.Context, userID string, req dto.UpdateStatusRequest) (models.UserStatus, error)
}

// StatusHandler serves the caller's manual status endpoints.
type StatusHandler struct {
	service statusService
}

// NewStatusHandler constructs the handler.
func NewStatusHandler(svc statusService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// Get godoc
// @Summary Current manual status
// @Description The caller's manual status tag; free when never set
// @Tags Status
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /status [get]
func (h *StatusHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	status, err := h.service.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

// Update godoc
// @Summary Set manual status
// @Description Replace the caller's status with one of the closed tag set
// @Tags Status
// @Accept json
// @Produce json
// @Param payload body dto.UpdateStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /status [put]
func (h *StatusHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	status, err := h.service.Update(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StatusResponse{
		Status:    string(status.Status),
		UpdatedAt: &status.UpdatedAt,
	})
}
