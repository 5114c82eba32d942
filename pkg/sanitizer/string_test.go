package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Asha", expected: "Asha"},
		{name: "surrounding whitespace", input: "  Asha  ", expected: "Asha"},
		{name: "interior runs collapse", input: "Asha   \t Rao", expected: "Asha Rao"},
		{name: "newlines collapse", input: "Asha\nRao", expected: "Asha Rao"},
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \t\n ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeNotesKeepsLineBreaks(t *testing.T) {
	input := "  limping since Monday\nnot eating well  "
	expected := "limping since Monday\nnot eating well"
	if got := NormalizeNotes(input); got != expected {
		t.Errorf("NormalizeNotes(%q) = %q, want %q", input, got, expected)
	}
}
