package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/middleware"
	"github.com/campuspulse/campus-api/internal/models"
)

type fakeProfileSrv struct {
	profile    *dto.ProfileResponse
	profileErr error
	avatarUser models.User
	avatarErr  error
	last       struct {
		userID string
		at     time.Time
		avatar string
	}
}

func (f *fakeProfileSrv) Profile(_ context.Context, userID string, at time.Time) (*dto.ProfileResponse, error) {
	f.last.userID = userID
	f.last.at = at
	return f.profile, f.profileErr
}

func (f *fakeProfileSrv) UpdateAvatar(_ context.Context, userID string, req dto.UpdateAvatarRequest) (models.User, error) {
	f.last.userID = userID
	f.last.avatar = req.Avatar
	return f.avatarUser, f.avatarErr
}

func TestUserHandlerMeRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(&fakeProfileSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)

	handler.Me(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandlerMeSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeProfileSrv{profile: &dto.ProfileResponse{
		User:   models.User{ID: "user-1", Username: "alice", Major: "CS"},
		Status: "studying",
		Availability: models.Availability{
			Status:           "studying",
			SocialPreference: models.PreferenceLow,
			StudyPreference:  models.PreferenceHigh,
		},
	}}
	handler := NewUserHandler(service)
	fixed := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	handler.now = func() time.Time { return fixed }

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/me", nil)
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "user-1"})

	handler.Me(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", service.last.userID)
	assert.Equal(t, fixed, service.last.at)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, "studying", envelope.Data["status"])
}

func TestUserHandlerUpdateAvatarRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(&fakeProfileSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/me/avatar", strings.NewReader(`{"avatar":"https://cdn.example.edu/a.png"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.UpdateAvatar(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandlerUpdateAvatarRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(&fakeProfileSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/me/avatar", strings.NewReader(`{"avatar"`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "user-1"})

	handler.UpdateAvatar(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandlerUpdateAvatarSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeProfileSrv{avatarUser: models.User{
		ID:       "user-1",
		Username: "alice",
		Avatar:   "https://cdn.example.edu/a.png",
	}}
	handler := NewUserHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/me/avatar", strings.NewReader(`{"avatar":"https://cdn.example.edu/a.png"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, &models.SessionClaims{UserID: "user-1"})

	handler.UpdateAvatar(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://cdn.example.edu/a.png", service.last.avatar)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, "alice", envelope.Data["username"])
}
