package datemath_test

import (
	"testing"
	"time"

	"voice-task-tracker/pkg/datemath"
)

func TestNewCalendar(t *testing.T) {
	_, err := datemath.NewCalendar("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}

	_, err = datemath.NewCalendar("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestAt(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	base := time.Date(2024, 1, 10, 15, 30, 12, 999, time.UTC) // Wednesday

	tests := []struct {
		name   string
		offset int
		hour   int
		minute int
		want   time.Time
	}{
		{"Today 18:00", 0, 18, 0, time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)},
		{"Tomorrow 09:00", 1, 9, 0, time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)},
		{"End of day", 0, 23, 59, time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)},
		{"Month rollover", 22, 18, 0, time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cal.At(base, tt.offset, tt.hour, tt.minute)
			if !got.Equal(tt.want) {
				t.Errorf("At() got = %v, want %v", got, tt.want)
			}
			if got.Nanosecond() != 0 {
				t.Errorf("At() should zero sub-second fields, got %d ns", got.Nanosecond())
			}
		})
	}
}

func TestAtUsesCalendarLocation(t *testing.T) {
	cal, err := datemath.NewCalendar("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 20:00 UTC on Jan 10 is already Jan 11 in UTC+7.
	base := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	got := cal.At(base, 0, 18, 0)
	if got.Day() != 11 || got.Hour() != 18 {
		t.Errorf("At() got = %v, want Jan 11 18:00 local", got)
	}
}

func TestAddMonthsAt(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")

	got := cal.AddMonthsAt(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 1, 18, 0)
	want := time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddMonthsAt() got = %v, want %v", got, want)
	}

	got = cal.AddMonthsAt(time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC), 1, 18, 0)
	want = time.Date(2025, 1, 5, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddMonthsAt() across year got = %v, want %v", got, want)
	}
}

func TestDaysUntil(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	wed := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	sat := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		base      time.Time
		target    time.Weekday
		inclusive bool
		want      int
	}{
		{"Wed to Fri exclusive", wed, time.Friday, false, 2},
		{"Wed to Mon exclusive", wed, time.Monday, false, 5},
		{"Wed to Wed exclusive", wed, time.Wednesday, false, 7},
		{"Wed to Wed inclusive", wed, time.Wednesday, true, 0},
		{"Wed to Tue inclusive", wed, time.Tuesday, true, 6},
		{"Sat to Fri inclusive", sat, time.Friday, true, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.DaysUntil(tt.base, tt.target, tt.inclusive); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewCalendarIn(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	if got := datemath.NewCalendarIn(loc).Location(); got != loc {
		t.Errorf("Location() = %v, want %v", got, loc)
	}
	if got := datemath.NewCalendarIn(nil).Location(); got != time.UTC {
		t.Errorf("nil location should default to UTC, got %v", got)
	}
}
