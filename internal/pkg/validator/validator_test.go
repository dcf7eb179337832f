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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"", // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-05"); !ok {
		t.Error("IsValidDate(2024-03-05) = false, want true")
	}
	if _, ok := IsValidDate("05-03-2024"); ok {
		t.Error("IsValidDate(05-03-2024) = true, want false")
	}
	if _, ok := IsValidDate(""); ok {
		t.Error("IsValidDate(\"\") = true, want false")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"regular", "off_cycle"}
	if !IsInSlice("regular", slice) {
		t.Error("IsInSlice(regular) = false, want true")
	}
	if IsInSlice("bonus", slice) {
		t.Error("IsInSlice(bonus) = true, want false")
	}
	if IsInSlice("regular", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}
