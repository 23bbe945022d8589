package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/pkg/response"
)

type locationService interface {
	List(ctx context.Context) ([]models.Location, error)
}

// LocationHandler serves the campus building directory.
type LocationHandler struct {
	service locationService
}

// NewLocationHandler constructs the handler.
func NewLocationHandler(svc locationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// List godoc
// @Summary Campus building directory
// @Tags Locations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, locations)
}
