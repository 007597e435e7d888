package errors

import (
	"strings"
	"testing"
)

func TestValidatePlaintext(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "ATTACK AT DAWN", false},
		{"valid mixed case", "Hello, World!", false},
		{"valid digits", "MEET AT 0600", false},
		{"valid max length", strings.Repeat("A", MaxPlaintextLength), false},

		{"empty", "", true},
		{"too long", strings.Repeat("A", MaxPlaintextLength+1), true},
		{"newline", "foo\nbar", true},
		{"tab", "foo\tbar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"carriage return", "foo\rbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlaintext(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlaintext(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 70, false},
		{"max", 100, false},

		{"negative", -1, true},
		{"above max", 100.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThreshold(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThreshold(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
