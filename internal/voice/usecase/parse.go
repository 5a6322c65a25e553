package usecase

import (
	"context"
	"errors"
	"strings"

	"voice-task-tracker/internal/voice"
)

// Parse validates the transcript and runs it through the interpreter.
func (uc *implUseCase) Parse(ctx context.Context, input voice.ParseInput) (voice.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		rejectedTotal.Inc()
		uc.l.Warnf(ctx, "uc.Parse: %v", voice.ErrEmptyInput)
		return voice.ParseOutput{}, voice.ErrEmptyInput
	}

	cmd, err := uc.parser.Parse(input.Text)
	if err != nil {
		if errors.Is(err, voice.ErrEmptyInput) {
			rejectedTotal.Inc()
		}
		uc.l.Errorf(ctx, "uc.Parse parser.Parse: %v", err)
		return voice.ParseOutput{}, err
	}

	observe(cmd)
	uc.l.Debugf(ctx, "uc.Parse: title=%q priority=%s status=%s due=%v auto_create=%t",
		cmd.Title, cmd.Priority, cmd.Status, cmd.DueDate, cmd.AutoCreate)

	return voice.ParseOutput{Command: cmd}, nil
}
