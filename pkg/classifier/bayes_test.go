package classifier_test

import (
	"errors"
	"sync"
	"testing"

	"voice-task-tracker/pkg/classifier"
)

var corpus = []classifier.Example{
	{Text: "critical issue", Label: "critical"},
	{Text: "critical bug", Label: "critical"},
	{Text: "urgent fix", Label: "high"},
	{Text: "urgent matter", Label: "high"},
	{Text: "low priority", Label: "low"},
	{Text: "whenever you have time", Label: "low"},
	{Text: "normal priority", Label: "medium"},
}

func TestNewNaiveBayes_Validation(t *testing.T) {
	tests := []struct {
		name     string
		examples []classifier.Example
		wantErr  error
	}{
		{"No examples", nil, classifier.ErrNoExamples},
		{"Single label", []classifier.Example{{Text: "a b", Label: "x"}, {Text: "c", Label: "x"}}, classifier.ErrTooFewLabels},
		{"Empty label", []classifier.Example{{Text: "a", Label: ""}}, classifier.ErrEmptyLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifier.NewNaiveBayes(tt.examples)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewNaiveBayes() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNaiveBayes_Classify(t *testing.T) {
	nb, err := classifier.NewNaiveBayes(corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		text      string
		wantLabel string
		wantOK    bool
	}{
		{"Issue is critical", "there is an issue with the server", "critical", true},
		{"Matter is high", "a small matter", "high", true},
		{"Time is low", "do it when there is time", "low", true},
		{"Normal is medium", "normal schedule", "medium", true},
		{"No known tokens", "email client about updates", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := nb.Classify(tt.text)
			if ok != tt.wantOK || label != tt.wantLabel {
				t.Errorf("Classify(%q) = (%q, %v), want (%q, %v)", tt.text, label, ok, tt.wantLabel, tt.wantOK)
			}
		})
	}
}

func TestNaiveBayes_UnseenWordsIgnorePrior(t *testing.T) {
	// "high" dominates the prior three to one.
	nb, err := classifier.NewNaiveBayes([]classifier.Example{
		{Text: "asap", Label: "high"},
		{Text: "quickly", Label: "high"},
		{Text: "soon", Label: "high"},
		{Text: "someday", Label: "low"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if label, ok := nb.Classify("water the plants"); ok || label != "" {
		t.Errorf("Classify() = (%q, %v), want no label", label, ok)
	}
	if label, ok := nb.Classify("water the plants someday"); !ok || label != "low" {
		t.Errorf("Classify() = (%q, %v), want (low, true)", label, ok)
	}
}

func TestNaiveBayes_ConcurrentClassify(t *testing.T) {
	nb, err := classifier.NewNaiveBayes(corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if label, _ := nb.Classify("critical bug"); label != "critical" {
				t.Errorf("got %q, want critical", label)
			}
		}()
	}
	wg.Wait()
}

func TestTokenize(t *testing.T) {
	got := classifier.Tokenize("Whenever you have TIME, fix the bugs!")
	// "you", "have" and "the" are stop words.
	if len(got) != 4 {
		t.Fatalf("Tokenize() = %v, want 4 tokens", got)
	}
	if got[2] != "fix" || got[3] != "bug" {
		t.Errorf("Tokenize() = %v, want ... fix bug", got)
	}
}
