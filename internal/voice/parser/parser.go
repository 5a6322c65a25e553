package parser

import (
	"strings"

	"voice-task-tracker/internal/voice"
)

// Parse turns a raw transcript into a ParsedCommand. The only failure is
// voice.ErrEmptyInput; every other input yields a complete record.
func (p *Parser) Parse(transcript string) (voice.ParsedCommand, error) {
	text := strings.ToLower(strings.TrimSpace(transcript))
	if text == "" {
		return voice.ParsedCommand{}, voice.ErrEmptyInput
	}

	cmd := voice.ParsedCommand{Transcript: transcript}
	cmd.Title = extractTitle(text)
	cmd.Priority = p.extractPriority(text)
	cmd.Status = extractStatus(text)
	cmd.DueDate = p.extractDueDate(text, p.now())
	cmd.Description = extractDescription(text, cmd.Title)
	cmd.AutoCreate = shouldAutoCreate(text)

	return cmd, nil
}

// Samples parses every entry of SampleTranscripts.
func (p *Parser) Samples() []voice.Sample {
	samples := make([]voice.Sample, 0, len(SampleTranscripts))
	for _, in := range SampleTranscripts {
		cmd, err := p.Parse(in)
		if err != nil {
			continue
		}
		samples = append(samples, voice.Sample{Input: in, Parsed: cmd})
	}
	return samples
}
