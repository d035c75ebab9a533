package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/config"
	"github.com/inmobiliaria-uufh/inmobiliaria-api/internal/httperr"
)

// CORSMiddleware fija los orígenes permitidos. Cualquier otro origen se
// rechaza acá, antes de llegar a los handlers. Requests sin header
// Origin (curl, health checks) pasan.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			if !cfg.OriginAllowed(origin) {
				httperr.Forbidden(c, "origin_not_allowed", "Origen no permitido")
				c.Abort()
				return
			}

			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Authorization",
			)
			c.Writer.Header().Set(
				"Access-Control-Allow-Methods",
				"GET, POST, PUT, DELETE, OPTIONS",
			)
		}

		// PRE-FLIGHT: 200 vacío
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
