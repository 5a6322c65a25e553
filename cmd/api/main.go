package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-tracker/config"
	_ "voice-task-tracker/docs" // Swagger docs
	"voice-task-tracker/internal/httpserver"
	"voice-task-tracker/internal/voice/parser"
	voiceUC "voice-task-tracker/internal/voice/usecase"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/log"
)

// @title       Voice Task Tracker API
// @description Turns spoken task descriptions into structured task fields.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Voice domain
	calendar, err := datemath.NewCalendar(cfg.Voice.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Voice.Timezone, err)
		calendar = datemath.NewCalendarIn(nil)
	}

	opts := []parser.Option{parser.WithCalendar(calendar)}
	if !cfg.Voice.ClassifierEnabled {
		logger.Info(ctx, "Priority classifier disabled, keyword rules only")
		opts = append(opts, parser.WithClassifier(nil))
	}

	voiceParser, err := parser.New(opts...)
	if err != nil {
		logger.Error(ctx, "Failed to initialize voice parser: ", err)
		return
	}
	uc := voiceUC.New(logger, voiceParser)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigin:   cfg.CORS.AllowedOrigin,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		VoiceUseCase:    uc,
		VoiceInfo: httpserver.VoiceInfo{
			Timezone:          voiceParser.Location().String(),
			ClassifierEnabled: voiceParser.ClassifierEnabled(),
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
