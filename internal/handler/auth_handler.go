package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/service"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Sign in by identity
// @Description Resolve username plus major to an account, creating it on first sight, and issue a session token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary Logout current session
// @Description Revoke the caller's session so the token stops working
// @Tags Authentication
// @Produce json
// @Success 204
// @Failure 401 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
