package utils

import "testing"

func TestCalculateGrade(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected string
	}{
		{name: "top of scale", score: 100, expected: "A+"},
		{name: "A+ boundary", score: 90, expected: "A+"},
		{name: "just below A+", score: 89, expected: "A"},
		{name: "A boundary", score: 80, expected: "A"},
		{name: "B+ boundary", score: 70, expected: "B+"},
		{name: "B boundary", score: 60, expected: "B"},
		{name: "C boundary", score: 50, expected: "C"},
		{name: "just below C", score: 49, expected: "F"},
		{name: "zero", score: 0, expected: "F"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateGrade(tc.score)
			if got != tc.expected {
				t.Fatalf("CalculateGrade(%d) = %s, expected %s", tc.score, got, tc.expected)
			}
		})
	}
}
