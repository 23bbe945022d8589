package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/middleware"
	"github.com/campuspulse/campus-api/pkg/response"
)

type boardService interface {
	Build(ctx context.Context, at time.Time) (*dto.StatusBoardResponse, error)
}

// BoardHandler serves the public campus status board.
type BoardHandler struct {
	service boardService
	now     func() time.Time
}

// NewBoardHandler constructs the handler.
func NewBoardHandler(svc boardService) *BoardHandler {
	return &BoardHandler{service: svc, now: time.Now}
}

// Board godoc
// @Summary Campus status board
// @Description Every user partitioned into in-class and free as of the reference instant
// @Tags Board
// @Produce json
// @Param at query string false "Reference instant (RFC3339), defaults to now"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /status-board [get]
func (h *BoardHandler) Board(c *gin.Context) {
	at, err := referenceInstant(c, h.now)
	if err != nil {
		response.Error(c, err)
		return
	}

	started := time.Now()
	board, err := h.service.Build(c.Request.Context(), at)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetGeneratedIn(c, time.Since(started))

	response.JSON(c, http.StatusOK, board, middleware.ExtractMeta(c))
}
