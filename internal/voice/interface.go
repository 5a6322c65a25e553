package voice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse interprets a single transcript. Returns ErrEmptyInput for blank text.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// TestSamples runs the fixed sample transcripts through the same pipeline.
	TestSamples(ctx context.Context) (TestSamplesOutput, error)
}
