package usecase

import (
	"context"

	"voice-task-tracker/internal/voice"
)

// TestSamples parses the fixed sample transcripts. It does not touch metrics.
func (uc *implUseCase) TestSamples(ctx context.Context) (voice.TestSamplesOutput, error) {
	samples := uc.parser.Samples()
	uc.l.Infof(ctx, "uc.TestSamples: parsed %d samples", len(samples))
	return voice.TestSamplesOutput{Samples: samples}, nil
}
