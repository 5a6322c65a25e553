package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-tracker/internal/middleware"
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Voice domain
	voiceUC   voice.UseCase
	voiceInfo VoiceInfo
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Middleware
	AllowedOrigin   string
	RateLimitPerMin int

	// Voice domain
	VoiceUseCase voice.UseCase
	VoiceInfo    VoiceInfo
}

// New creates a new HTTPServer instance and maps its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		voiceUC:     cfg.VoiceUseCase,
		voiceInfo:   cfg.VoiceInfo,
		mw: middleware.New(logger, middleware.Config{
			AllowedOrigin:   cfg.AllowedOrigin,
			RateLimitPerMin: cfg.RateLimitPerMin,
		}),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.voiceUC == nil {
		return errors.New("voice use case is required")
	}
	return nil
}

// Handler exposes the underlying engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
