package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"voice-task-tracker/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"UTC", time.Date(2024, 1, 11, 18, 0, 0, 0, time.UTC), `"2024-01-11T18:00:00Z"`},
		{"Offset", time.Date(2024, 1, 11, 9, 0, 0, 0, loc), `"2024-01-11T09:00:00+07:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling DateTime: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
