package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campuspulse/campus-api/internal/dto"
)

type fakeBoardSrv struct {
	resp   *dto.StatusBoardResponse
	err    error
	lastAt time.Time
}

func (f *fakeBoardSrv) Build(_ context.Context, at time.Time) (*dto.StatusBoardResponse, error) {
	f.lastAt = at
	return f.resp, f.err
}

func TestBoardHandlerRejectsBadTimestamp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewBoardHandler(&fakeBoardSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/status-board?at=tomorrow", nil)

	handler.Board(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBoardHandlerUsesQueryInstant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeBoardSrv{resp: &dto.StatusBoardResponse{}}
	handler := NewBoardHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/status-board?at=2025-01-06T09:30:00Z", nil)

	handler.Board(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC), service.lastAt)
}

func TestBoardHandlerDefaultsToClock(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeBoardSrv{resp: &dto.StatusBoardResponse{}}
	handler := NewBoardHandler(service)
	fixed := time.Date(2025, time.January, 6, 14, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return fixed }

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/status-board", nil)

	handler.Board(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixed, service.lastAt)
}

func TestBoardHandlerEnvelopesBoardWithTiming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	service := &fakeBoardSrv{resp: &dto.StatusBoardResponse{
		Now: now,
		InClass: []dto.StatusBoardEntry{
			{ID: "user-1", Username: "alice", Major: "CS", ManualStatus: "studying", CurrentClass: "CS 15-122"},
		},
		Free: []dto.StatusBoardEntry{
			{ID: "user-2", Username: "carol", Major: "MATH", ManualStatus: "social"},
		},
	}}
	handler := NewBoardHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/status-board", nil)

	handler.Board(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Contains(t, envelope.Meta, "generated_in_ms")
	inClass, ok := envelope.Data["in_class"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, inClass, 1)
	free, ok := envelope.Data["free"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, free, 1)
}

type responseEnvelope struct {
	Data map[string]interface{} `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}
