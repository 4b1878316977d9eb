package repositories

import (
	"fmt"
	"testing"
)

func TestFormatTeacherCode(t *testing.T) {
	tests := []struct {
		seq      int64
		expected string
	}{
		{1, "T001"},
		{7, "T007"},
		{42, "T042"},
		{999, "T999"},
		{1000, "T1000"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			got := FormatTeacherCode(tc.seq)
			if got != tc.expected {
				t.Fatalf("FormatTeacherCode(%d) = %s, expected %s", tc.seq, got, tc.expected)
			}
		})
	}
}

func TestFormatTeacherCodeSequenceUnique(t *testing.T) {
	// Sequential creation must yield T001..T00N with no duplicates.
	seen := make(map[string]bool)
	for i := int64(1); i <= 250; i++ {
		code := FormatTeacherCode(i)
		if seen[code] {
			t.Fatalf("duplicate code %s at sequence %d", code, i)
		}
		seen[code] = true
	}
	if !seen["T001"] || !seen["T250"] {
		t.Fatal("expected range to cover T001 through T250")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "full_name", Reason: "must not be empty"}
	expected := "validation failed on full_name: must not be empty"
	if err.Error() != expected {
		t.Fatalf("got %q, expected %q", err.Error(), expected)
	}
}

func TestPersistenceErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("duplicate key value violates unique constraint \"idx_teachers_code\"")
	err := &PersistenceError{Op: "create teacher", Err: cause}

	if err.Unwrap() != cause {
		t.Fatal("expected Unwrap to return the cause")
	}
	if !IsDuplicateKey(err) {
		t.Fatal("expected duplicate key detection on wrapped error")
	}
	if IsDuplicateKey(fmt.Errorf("connection refused")) {
		t.Fatal("expected non-constraint error to not match")
	}
}
