package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	WorkHours      string `json:"work_hours"` // Format "HH:MM-HH:MM" in 24h
}

// TimeWindow is a doctor's daily working window as minutes from midnight,
// half-open: [Start, End).
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseTimeWindow parses a "HH:MM-HH:MM" work-hours string. The window must
// have exactly two endpoints and start before it ends.
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeWindow{}, fmt.Errorf("work hours %q: expected \"HH:MM-HH:MM\"", s)
	}

	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeWindow{}, fmt.Errorf("work hours %q: %w", s, err)
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeWindow{}, fmt.Errorf("work hours %q: %w", s, err)
	}

	if start >= end {
		return TimeWindow{}, fmt.Errorf("work hours %q: start must be before end", s)
	}

	return TimeWindow{Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Contains reports whether the candidate interval [start, end), also in
// minutes from midnight, fits entirely inside the window. Intervals that
// would cross midnight never fit.
func (w TimeWindow) Contains(start, end int) bool {
	return start >= w.Start && end <= w.End
}

// Window parses the doctor's stored work-hours string.
func (d *Doctor) Window() (TimeWindow, error) {
	return ParseTimeWindow(d.WorkHours)
}
