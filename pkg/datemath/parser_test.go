package datemath_test

import (
	"testing"
	"time"

	"task-planner/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tomorrow", relative: "Tomorrow ", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Unknown fallback", relative: "some random day", want: startOfBase},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDue(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name       string
		value      string
		want       time.Time
		wantAllDay bool
		wantOK     bool
	}{
		{name: "calendar date", value: "2025-12-14", want: time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC), wantAllDay: true, wantOK: true},
		{name: "RFC3339 with Z", value: "2025-12-14T23:59:00Z", want: time.Date(2025, 12, 14, 23, 59, 0, 0, time.UTC), wantOK: true},
		{name: "RFC3339 with offset", value: "2025-12-14T10:00:00-05:00", want: time.Date(2025, 12, 14, 15, 0, 0, 0, time.UTC), wantOK: true},
		{name: "naive timestamp", value: "2025-12-14T08:30:00", want: time.Date(2025, 12, 14, 8, 30, 0, 0, time.UTC), wantOK: true},
		{name: "truncated fallback", value: "2025-12-14 at noon", want: time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC), wantAllDay: true, wantOK: true},
		{name: "empty", value: "  ", wantOK: false},
		{name: "garbage", value: "soon", wantOK: false},
		{name: "garbage long", value: "not-a-date-at-all", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseDue(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ParseDue(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.AbsoluteTime.Equal(tt.want) {
				t.Errorf("ParseDue(%q) = %v, want %v", tt.value, got.AbsoluteTime, tt.want)
			}
			if got.IsAllDay != tt.wantAllDay {
				t.Errorf("ParseDue(%q) IsAllDay = %v, want %v", tt.value, got.IsAllDay, tt.wantAllDay)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	res, err := parser.Resolve("tomorrow", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsAllDay || !res.AbsoluteTime.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected result: %+v", res)
	}

	res, err = parser.Resolve("2024-06-01", base)
	if err != nil || !res.AbsoluteTime.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected absolute resolve: %+v, %v", res, err)
	}

	if _, err := parser.Resolve("whenever", base); err == nil {
		t.Errorf("expected error for unrecognized date")
	}
}

func TestDaysBetween(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)

	if got := parser.DaysBetween(now, time.Date(2024, 5, 2, 0, 30, 0, 0, time.UTC)); got != 1 {
		t.Errorf("DaysBetween next morning = %d, want 1", got)
	}
	if got := parser.DaysBetween(now, time.Date(2024, 4, 29, 12, 0, 0, 0, time.UTC)); got != -2 {
		t.Errorf("DaysBetween past = %d, want -2", got)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}
