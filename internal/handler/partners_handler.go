package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/middleware"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/response"
)

type partnerService interface {
	Recommend(ctx context.Context, userID string, at time.Time) ([]dto.StudyPartner, error)
}

// PartnerHandler serves study partner recommendations.
type PartnerHandler struct {
	service partnerService
	now     func() time.Time
}

// NewPartnerHandler constructs the handler.
func NewPartnerHandler(svc partnerService) *PartnerHandler {
	return &PartnerHandler{service: svc, now: time.Now}
}

// Partners godoc
// @Summary Recommended study partners
// @Description Top five scored candidates sharing at least one class with the caller
// @Tags Partners
// @Produce json
// @Param at query string false "Reference instant (RFC3339), defaults to now"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /partners [get]
func (h *PartnerHandler) Partners(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	at, err := referenceInstant(c, h.now)
	if err != nil {
		response.Error(c, err)
		return
	}

	started := time.Now()
	partners, err := h.service.Recommend(c.Request.Context(), claims.UserID, at)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetGeneratedIn(c, time.Since(started))

	response.JSON(c, http.StatusOK, partners, middleware.ExtractMeta(c))
}
