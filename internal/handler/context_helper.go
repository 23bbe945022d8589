package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/middleware"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.SessionClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// referenceInstant resolves the optional ?at= query parameter, defaulting to
// the supplied clock. RFC3339 only.
func referenceInstant(c *gin.Context, now func() time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("at"))
	if raw == "" {
		return now(), nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid at parameter, expected RFC3339 timestamp")
	}
	return at, nil
}
