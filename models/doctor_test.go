package models

import "testing"

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeWindow
		wantErr bool
	}{
		{"standard day", "09:00-17:00", TimeWindow{Start: 540, End: 1020}, false},
		{"early shift", "06:30-14:15", TimeWindow{Start: 390, End: 855}, false},
		{"whitespace around endpoints", "09:00 - 17:00", TimeWindow{Start: 540, End: 1020}, false},
		{"empty string", "", TimeWindow{}, true},
		{"single endpoint", "09:00", TimeWindow{}, true},
		{"three endpoints", "09:00-12:00-17:00", TimeWindow{}, true},
		{"garbage start", "abc-17:00", TimeWindow{}, true},
		{"garbage end", "09:00-xyz", TimeWindow{}, true},
		{"start equals end", "09:00-09:00", TimeWindow{}, true},
		{"start after end", "17:00-09:00", TimeWindow{}, true},
		{"out of range hour", "25:00-26:00", TimeWindow{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeWindow(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeWindow(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeWindow(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeWindow(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeWindowContains(t *testing.T) {
	w := TimeWindow{Start: 540, End: 1020} // 09:00-17:00

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"inside", 600, 630, true},
		{"flush with window start", 540, 570, true},
		{"flush with window end", 990, 1020, true},
		{"whole window", 540, 1020, true},
		{"starts before window", 510, 570, false},
		{"runs past window end", 1000, 1030, false},
		{"entirely before", 0, 60, false},
		{"entirely after", 1080, 1140, false},
		{"runs past midnight", 1410, 1470, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.start, tt.end); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDoctorWindow(t *testing.T) {
	d := Doctor{Name: "Dr. House", WorkHours: "08:00-16:00"}
	w, err := d.Window()
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Start != 480 || w.End != 960 {
		t.Errorf("Window = %+v, want {480 960}", w)
	}

	d.WorkHours = "not-a-schedule"
	if _, err := d.Window(); err == nil {
		t.Error("Window on malformed hours: want error")
	}
}
