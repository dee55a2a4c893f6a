package http

import (
	"github.com/gin-gonic/gin"

	"halsologg/internal/middleware"
)

// RegisterRoutes maps the logbook routes under the given group. The omnibox
// endpoint is rate-limited; listings are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/omnibox", mw.RateLimit(), h.Process)
	rg.GET("/entries/:kind", h.List)
	rg.GET("/suggest", h.Suggest)
}
