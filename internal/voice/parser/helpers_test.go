package parser

import (
	"testing"
	"time"
)

// refNow is Wednesday 2024-01-10 00:00:00 UTC.
var refNow = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func newTestParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return refNow })}, opts...)
	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return p
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}
