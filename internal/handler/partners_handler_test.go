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
	"github.com/campuspulse/campus-api/internal/middleware"
	"github.com/campuspulse/campus-api/internal/models"
)

type fakePartnerSrv struct {
	partners []dto.StudyPartner
	err      error
	last     struct {
		userID string
		at     time.Time
	}
}

func (f *fakePartnerSrv) Recommend(_ context.Context, userID string, at time.Time) ([]dto.StudyPartner, error) {
	f.last.userID = userID
	f.last.at = at
	return f.partners, f.err
}

func TestPartnerHandlerRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPartnerHandler(&fakePartnerSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/partners", nil)

	handler.Partners(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPartnerHandlerRejectsBadTimestamp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPartnerHandler(&fakePartnerSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/partners?at=noon", nil)
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "user-1"})

	handler.Partners(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPartnerHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakePartnerSrv{partners: []dto.StudyPartner{
		{ID: "user-2", Username: "bob", Score: 45, SharedClasses: []string{"CS 15-122"}, Reason: "Shares 1 class with you; Same major (CS)"},
	}}
	handler := NewPartnerHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/partners?at=2025-01-06T08:30:00Z", nil)
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "user-1"})

	handler.Partners(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", service.last.userID)
	assert.Equal(t, time.Date(2025, time.January, 6, 8, 30, 0, 0, time.UTC), service.last.at)

	var envelope struct {
		Data []dto.StudyPartner     `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, "bob", envelope.Data[0].Username)
	assert.Contains(t, envelope.Meta, "generated_in_ms")
}
