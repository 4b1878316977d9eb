package repositories

import (
	"testing"
	"time"
)

func TestAttendanceDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midday truncates to midnight",
			input:    time.Date(2026, time.March, 14, 13, 45, 30, 0, time.UTC),
			expected: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already midnight unchanged",
			input:    time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-UTC zone converts before truncation",
			input:    time.Date(2026, time.March, 14, 1, 0, 0, 0, time.FixedZone("UTC+7", 7*3600)),
			expected: time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := AttendanceDay(tc.input)
			if !got.Equal(tc.expected) {
				t.Fatalf("AttendanceDay(%v) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}

	// Two marks on the same day must share the upsert key.
	a := AttendanceDay(time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC))
	b := AttendanceDay(time.Date(2026, time.March, 14, 17, 30, 0, 0, time.UTC))
	if !a.Equal(b) {
		t.Fatalf("expected same day key, got %v and %v", a, b)
	}
}
