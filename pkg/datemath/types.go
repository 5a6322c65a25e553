package datemath

import "time"

// Weekdays maps lower-case English day names to time.Weekday (Sunday=0 ... Saturday=6),
// listed Monday first, which is the order callers scan them in.
var Weekdays = []struct {
	Name    string
	Weekday time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}
