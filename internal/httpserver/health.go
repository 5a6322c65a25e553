package httpserver

import (
	"github.com/gin-gonic/gin"

	"voice-task-tracker/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "voice-task-tracker"
)

// VoiceInfo describes how the parser behind /api/voice is configured.
type VoiceInfo struct {
	Timezone          string `json:"timezone"`
	ClassifierEnabled bool   `json:"classifier_enabled"`
}

type healthResp struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Voice       VoiceInfo `json:"voice"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:      status,
		Service:     ServiceName,
		Version:     HealthVersion,
		Environment: srv.environment,
		Voice:       srv.voiceInfo,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Service identity and parser settings
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck is ready once routes are mapped, since the parser has no
// external dependencies to wait for.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
