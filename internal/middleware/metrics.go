package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/campus-api/internal/service"
)

// Metrics observes request rate and latency per route template. Probe and
// scrape endpoints are excluded so the histograms track API traffic only.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if isProbePath(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

func isProbePath(path string) bool {
	switch path {
	case "/health", "/ready", "/metrics":
		return true
	}
	return strings.HasPrefix(path, "/docs")
}
