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

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	valid := []string{"01", "09", "10", "12"}
	invalid := []string{"00", "13", "1", "005", "ab", ""}
	for _, s := range valid {
		if !IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonth(s) {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	valid := []string{"2024", "1999"}
	invalid := []string{"24", "20245", "duemila", ""}
	for _, s := range valid {
		if !IsValidYear(s) {
			t.Errorf("IsValidYear(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidYear(s) {
			t.Errorf("IsValidYear(%q) = true, want false", s)
		}
	}
}
