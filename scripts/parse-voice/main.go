package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"voice-task-tracker/config"
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/internal/voice/parser"
	voiceUC "voice-task-tracker/internal/voice/usecase"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/log"
)

type result struct {
	Input       string     `json:"input"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AutoCreate  bool       `json:"autoCreate"`
}

func toResult(cmd voice.ParsedCommand) result {
	return result{
		Input:       cmd.Transcript,
		Title:       cmd.Title,
		Description: cmd.Description,
		DueDate:     cmd.DueDate,
		Priority:    string(cmd.Priority),
		Status:      string(cmd.Status),
		AutoCreate:  cmd.AutoCreate,
	}
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println("Usage: go run scripts/parse-voice/main.go [transcript words...]")
		fmt.Println("       echo \"call mom tomorrow\" | go run scripts/parse-voice/main.go")
		fmt.Println("       go run scripts/parse-voice/main.go --samples")
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	calendar, err := datemath.NewCalendar(cfg.Voice.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Voice.Timezone, err)
	}
	opts := []parser.Option{parser.WithCalendar(calendar)}
	if !cfg.Voice.ClassifierEnabled {
		opts = append(opts, parser.WithClassifier(nil))
	}
	p, err := parser.New(opts...)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize parser: %v", err)
	}
	uc := voiceUC.New(logger, p)

	var out any
	switch {
	case len(os.Args) > 1 && os.Args[1] == "--samples":
		samples, err := uc.TestSamples(ctx)
		if err != nil {
			logger.Fatalf(ctx, "Failed to parse samples: %v", err)
		}
		results := make([]result, len(samples.Samples))
		for i, s := range samples.Samples {
			results[i] = toResult(s.Parsed)
		}
		out = results

	default:
		text := strings.Join(os.Args[1:], " ")
		if text == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				logger.Fatalf(ctx, "Failed to read stdin: %v", err)
			}
			text = strings.TrimRight(string(data), "\r\n")
		}

		parsed, err := uc.Parse(ctx, voice.ParseInput{Text: text})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		out = toResult(parsed.Command)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatalf(ctx, "Failed to encode output: %v", err)
	}
}
