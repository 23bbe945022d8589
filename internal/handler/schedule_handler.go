package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	"github.com/campuspulse/campus-api/internal/service"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
	"github.com/campuspulse/campus-api/pkg/response"
)

// maxCalendarUpload caps uploaded calendar files at 5MB unless configured
// otherwise.
const maxCalendarUpload = 5 << 20

type scheduleService interface {
	List(ctx context.Context, userID string) ([]models.ScheduleEntry, error)
	Add(ctx context.Context, userID string, req dto.CreateScheduleEntryRequest) (models.ScheduleEntry, error)
	Remove(ctx context.Context, entryID, userID string) error
	Import(ctx context.Context, userID string, r io.Reader) (*dto.ImportReportResponse, error)
}

type scheduleExporter interface {
	Export(ctx context.Context, userID, format string) (*service.ExportResult, error)
}

// ScheduleHandler manages the caller's weekly schedule endpoints.
type ScheduleHandler struct {
	service   scheduleService
	exporter  scheduleExporter
	maxUpload int64
}

// NewScheduleHandler constructs handler. maxUpload bounds calendar uploads
// in bytes; zero or negative falls back to the 5MB default.
func NewScheduleHandler(svc scheduleService, exporter scheduleExporter, maxUpload int64) *ScheduleHandler {
	if maxUpload <= 0 {
		maxUpload = maxCalendarUpload
	}
	return &ScheduleHandler{service: svc, exporter: exporter, maxUpload: maxUpload}
}

// List godoc
// @Summary List own schedule entries
// @Tags Schedules
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	entries, err := h.service.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Add godoc
// @Summary Add a schedule entry
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.CreateScheduleEntryRequest true "Schedule entry"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule [post]
func (h *ScheduleHandler) Add(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateScheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	entry, err := h.service.Add(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// Delete godoc
// @Summary Remove an owned schedule entry
// @Tags Schedules
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Remove(c.Request.Context(), c.Param("id"), claims.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Import godoc
// @Summary Import schedule entries from an iCalendar file
// @Tags Schedules
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Calendar (.ics) file"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /schedule/import [post]
func (h *ScheduleHandler) Import(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "calendar file is required"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".ics") {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file must be an .ics calendar"))
		return
	}
	if fileHeader.Size > h.maxUpload {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "calendar file exceeds the upload limit"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close()

	report, err := h.service.Import(c.Request.Context(), claims.UserID, src)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}

// Export godoc
// @Summary Download the weekly schedule
// @Tags Schedules
// @Produce text/csv
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /schedule/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "csv")))
	result, err := h.exporter.Export(c.Request.Context(), claims.UserID, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
