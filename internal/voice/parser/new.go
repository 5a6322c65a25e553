package parser

import (
	"fmt"
	"sync"
	"time"

	"voice-task-tracker/pkg/classifier"
	"voice-task-tracker/pkg/datemath"
)

// Parser is the voice-command interpreter. It holds no mutable state, so one
// instance can serve concurrent calls.
type Parser struct {
	calendar   *datemath.Calendar
	classifier classifier.TextClassifier
	now        func() time.Time
}

// Option customises a Parser.
type Option func(*Parser)

// WithClock pins the reference "now" used by the due-date resolver.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// WithCalendar sets the timezone due dates are resolved in.
func WithCalendar(cal *datemath.Calendar) Option {
	return func(p *Parser) { p.calendar = cal }
}

// WithClassifier replaces the statistical priority fallback. Passing nil
// disables it, leaving medium as the default.
func WithClassifier(c classifier.TextClassifier) Option {
	return func(p *Parser) { p.classifier = c }
}

var (
	priorityModelOnce sync.Once
	priorityModel     *classifier.NaiveBayes
	priorityModelErr  error
)

// PriorityClassifier returns the process-wide naive Bayes model trained on
// PriorityTrainingData. It is built on first use and read-only afterwards.
func PriorityClassifier() (*classifier.NaiveBayes, error) {
	priorityModelOnce.Do(func() {
		priorityModel, priorityModelErr = classifier.NewNaiveBayes(PriorityTrainingData)
	})
	return priorityModel, priorityModelErr
}

// New creates a Parser. Defaults: UTC calendar, time.Now clock and the
// shared priority classifier.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{now: time.Now}

	model, err := PriorityClassifier()
	if err != nil {
		return nil, fmt.Errorf("parser.New: train priority classifier: %w", err)
	}
	p.classifier = model

	for _, opt := range opts {
		opt(p)
	}

	if p.calendar == nil {
		cal, err := datemath.NewCalendar(defaultTimezone)
		if err != nil {
			return nil, fmt.Errorf("parser.New: %w", err)
		}
		p.calendar = cal
	}
	if p.now == nil {
		p.now = time.Now
	}

	return p, nil
}

// Location is the timezone due dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.calendar.Location()
}

// ClassifierEnabled reports whether unmatched priorities go to the classifier.
func (p *Parser) ClassifierEnabled() bool {
	return p.classifier != nil
}
