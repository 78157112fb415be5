package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-31", "2024-02-29", "1999-12-01"}
	invalid := []string{"2025-02-30", "31-01-2025", "2025/01/31", "2025-1-5", "", "yesterday"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "17:59", "23:59", "24:00"}
	invalid := []string{"24:01", "25:00", "8:00", "08:60", "0800", ""}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, u := range valid {
		if !IsValidUUID(u) {
			t.Errorf("IsValidUUID(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUUID(u) {
			t.Errorf("IsValidUUID(%q) = true, want false", u)
		}
	}
}
