package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already e164", input: "+911234567890", expected: "+911234567890"},
		{name: "indian national format", input: "09876543210", expected: "+919876543210"},
		{name: "with spaces", input: " +91 98765 43210 ", expected: "+919876543210"},
		{name: "empty", input: "", expected: ""},
		{name: "unparseable passes through trimmed", input: " front desk ", expected: "front desk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
