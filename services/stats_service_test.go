package services

import (
	"math"
	"testing"
)

func TestTruncateAverage(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{name: "whole number", input: 75.0, expected: 75},
		{name: "truncates not rounds", input: 89.9, expected: 89},
		{name: "empty class averages to zero", input: 0, expected: 0},
		{name: "NaN collapses to zero", input: math.NaN(), expected: 0},
		{name: "infinity collapses to zero", input: math.Inf(1), expected: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateAverage(tc.input)
			if got != tc.expected {
				t.Fatalf("TruncateAverage(%v) = %d, expected %d", tc.input, got, tc.expected)
			}
		})
	}
}
