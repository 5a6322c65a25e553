package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	voiceHTTP "voice-task-tracker/internal/voice/delivery/http"
)

// setupVoiceDomain wires the voice handler and registers /api/voice/*.
func (srv HTTPServer) setupVoiceDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := voiceHTTP.New(srv.l, srv.voiceUC)
	voiceHTTP.RegisterRoutes(api.Group("/voice"), h, srv.mw)

	srv.l.Infof(ctx, "Voice domain registered")
	return nil
}
