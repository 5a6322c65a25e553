package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every voice route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	voice := rg.Group("", mw.RateLimit())
	{
		voice.POST("/parse", h.Parse)
		voice.POST("/test", h.Test)
	}
}
