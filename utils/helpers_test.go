package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "preserves order",
			input:    []string{"10A", "10B"},
			expected: []string{"10A", "10B"},
		},
		{
			name:     "trims whitespace",
			input:    []string{" 10A ", "10B "},
			expected: []string{"10A", "10B"},
		},
		{
			name:     "drops empties",
			input:    []string{"10A", "", "  ", "9C"},
			expected: []string{"10A", "9C"},
		},
		{
			name:     "nil input yields empty slice",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeClasses(tc.input)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("NormalizeClasses(%v) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSplitClasses(t *testing.T) {
	got := SplitClasses("10A, 10B ,9C")
	expected := []string{"10A", "10B", "9C"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("SplitClasses = %v, expected %v", got, expected)
	}

	if got := SplitClasses("   "); len(got) != 0 {
		t.Fatalf("expected empty slice for blank input, got %v", got)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in clear")
	}

	if err := CheckPassword("s3cret-pass", hash); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPassword("wrong-pass", hash); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{"admin", "teacher"} {
		if !IsValidRole(role) {
			t.Fatalf("expected %s to be valid", role)
		}
	}
	for _, role := range []string{"student", "owner", ""} {
		if IsValidRole(role) {
			t.Fatalf("expected %s to be invalid", role)
		}
	}
}

func TestIsValidFileExtension(t *testing.T) {
	allowed := []string{"pdf", "docx", "png"}

	if !IsValidFileExtension("notes.PDF", allowed) {
		t.Fatal("expected case-insensitive match")
	}
	if IsValidFileExtension("malware.exe", allowed) {
		t.Fatal("expected exe to be rejected")
	}
	if IsValidFileExtension("noextension", allowed) {
		t.Fatal("expected bare name to be rejected")
	}
	if IsValidFileExtension("", allowed) {
		t.Fatal("expected empty name to be rejected")
	}
}
