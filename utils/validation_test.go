package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"international with plus", "+5491155551234", true},
		{"plain digits", "91155551234", true},
		{"spaces and dashes stripped", "+54 9 11 5555-1234", true},
		{"parentheses stripped", "+1 (415) 5550123", true},
		{"leading zero rejected", "0111555512", false},
		{"letters rejected", "+54phone", false},
		{"too short", "+1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePhone(tt.phone); got != tt.want {
				t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestValidateClock(t *testing.T) {
	tests := []struct {
		name  string
		clock string
		want  bool
	}{
		{"morning", "09:00", true},
		{"midnight", "00:00", true},
		{"last minute", "23:59", true},
		{"hour out of range", "24:00", false},
		{"minute out of range", "09:60", false},
		{"missing zero padding", "9:00", false},
		{"with seconds", "09:00:00", false},
		{"words", "morning", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateClock(tt.clock); got != tt.want {
				t.Errorf("ValidateClock(%q) = %v, want %v", tt.clock, got, tt.want)
			}
		})
	}
}
