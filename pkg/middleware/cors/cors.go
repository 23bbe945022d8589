// Package cors provides a small CORS middleware driven by the configured
// origin allowlist.
package cors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// New returns CORS middleware honoring a list of allowed origins. An empty
// list allows any origin, which is the development default.
func New(allowedOrigins []string) gin.HandlerFunc {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.TrimRight(origin, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.Writer.Header()
		origin := c.GetHeader("Origin")

		switch {
		case origin == "" && allowAll:
			header.Set("Access-Control-Allow-Origin", "*")
		case origin != "" && allowAll:
			header.Set("Access-Control-Allow-Origin", origin)
		case origin != "":
			if _, ok := allowed[strings.TrimRight(origin, "/")]; ok {
				header.Set("Access-Control-Allow-Origin", origin)
			}
		}

		header.Set("Vary", "Origin")
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		// Content-Disposition must be exposed for schedule export downloads.
		header.Set("Access-Control-Expose-Headers", "X-Request-ID, Content-Disposition")
		header.Set("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
