package parser

import (
	"testing"

	"voice-task-tracker/internal/voice"
)

type stubClassifier struct {
	label string
	ok    bool
	calls int
}

func (s *stubClassifier) Classify(text string) (string, bool) {
	s.calls++
	return s.label, s.ok
}

func TestExtractPriority_Rules(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name string
		text string
		want voice.Priority
	}{
		{"Critical keywords", "fix login page bug critical urgent", voice.PriorityCritical},
		{"ASAP", "send the invoice asap", voice.PriorityCritical},
		{"Negated urgency still critical", "this is not urgent", voice.PriorityCritical},
		{"High priority phrase", "review pr high priority", voice.PriorityHigh},
		{"Hyphenated", "a high-priority ticket", voice.PriorityHigh},
		{"Important", "prepare presentation for next week important", voice.PriorityHigh},
		{"Low priority phrase", "update documentation low priority whenever", voice.PriorityLow},
		{"Whenever", "clean the garage whenever", voice.PriorityLow},
		{"Not important still matches important", "not important but high on the list", voice.PriorityHigh},
		{"Normal priority", "normal priority chores", voice.PriorityMedium},
		{"Bare high", "highlight the slides", voice.PriorityHigh},
		{"Bare low", "below the fold", voice.PriorityLow},
		{"Bare medium", "buy a medium pizza", voice.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.extractPriority(tt.text); got != tt.want {
				t.Errorf("extractPriority(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPriority_ClassifierFallback(t *testing.T) {
	t.Run("Trained model picks up known words", func(t *testing.T) {
		p := newTestParser(t)
		if got := p.extractPriority("there is an issue with the server"); got != voice.PriorityCritical {
			t.Errorf("got %q, want critical", got)
		}
	})

	t.Run("Unknown words default to medium", func(t *testing.T) {
		p := newTestParser(t)
		if got := p.extractPriority("email client about project updates"); got != voice.PriorityMedium {
			t.Errorf("got %q, want medium", got)
		}
	})

	t.Run("Rules short-circuit the classifier", func(t *testing.T) {
		stub := &stubClassifier{label: "low", ok: true}
		p := newTestParser(t, WithClassifier(stub))
		if got := p.extractPriority("critical outage"); got != voice.PriorityCritical {
			t.Errorf("got %q, want critical", got)
		}
		if stub.calls != 0 {
			t.Errorf("classifier called %d times, want 0", stub.calls)
		}
	})

	t.Run("Invalid label falls back to medium", func(t *testing.T) {
		p := newTestParser(t, WithClassifier(&stubClassifier{label: "bogus", ok: true}))
		if got := p.extractPriority("water the plants"); got != voice.PriorityMedium {
			t.Errorf("got %q, want medium", got)
		}
	})

	t.Run("Failed classification falls back to medium", func(t *testing.T) {
		p := newTestParser(t, WithClassifier(&stubClassifier{ok: false}))
		if got := p.extractPriority("water the plants"); got != voice.PriorityMedium {
			t.Errorf("got %q, want medium", got)
		}
	})

	t.Run("Disabled classifier", func(t *testing.T) {
		p := newTestParser(t, WithClassifier(nil))
		if got := p.extractPriority("there is an issue with the server"); got != voice.PriorityMedium {
			t.Errorf("got %q, want medium", got)
		}
	})
}
