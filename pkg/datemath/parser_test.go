package datemath_test

import (
	"errors"
	"testing"
	"time"

	"task-console/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Ho_Chi_Minh"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
	p, err := datemath.NewParser("")
	if err != nil || p.Location() != time.Local {
		t.Fatalf("expected local timezone for empty name, got %v %v", p, err)
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "Absolute", input: "2024-12-25", want: day(2024, 12, 25)},
		{name: "Today", input: "today", want: day(2024, 5, 1)},
		{name: "Tomorrow mixed case", input: "  Tomorrow ", want: day(2024, 5, 2)},
		{name: "Yesterday", input: "yesterday", want: day(2024, 4, 30)},
		{name: "In 3 days", input: "in 3 days", want: day(2024, 5, 4)},
		{name: "In 1 week", input: "in 1 week", want: day(2024, 5, 8)},
		{name: "In 2 months", input: "in 2 months", want: day(2024, 7, 1)},
		{name: "Next Friday", input: "next friday", want: day(2024, 5, 3)},
		{name: "Next Wednesday skips today", input: "next wednesday", want: day(2024, 5, 8)},
		{name: "Empty", input: " ", wantErr: datemath.ErrEmpty},
		{name: "Unknown", input: "someday", wantErr: datemath.ErrUnrecognized},
		{name: "Bad weekday", input: "next funday", wantErr: datemath.ErrUnrecognized},
		{name: "Bad duration", input: "in many days", wantErr: datemath.ErrUnrecognized},
		{name: "Overflowing amount", input: "in 99999999999999999999 days", wantErr: datemath.ErrUnrecognized},
		{name: "Amount too large", input: "in 20000 weeks", wantErr: datemath.ErrUnrecognized},
		{name: "Largest amount", input: "in 10000 days", want: day(2024, 5, 1).AddDate(0, 0, 10000)},
		{name: "Bad calendar date", input: "2024-02-30", wantErr: datemath.ErrUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, base)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithClockAndFormat(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	day := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	clock := time.Date(2024, 5, 1, 9, 45, 10, 0, time.UTC)

	got := parser.WithClock(day, clock)
	want := time.Date(2024, 12, 25, 9, 45, 10, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("WithClock = %v, want %v", got, want)
	}
	if s := parser.Format(got); s != "2024-12-25" {
		t.Errorf("Format = %q", s)
	}
}
