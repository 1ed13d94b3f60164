package base64_test

import (
	"testing"

	"clinic/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid data url",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "jpeg data url",
			input:    "data:image/jpeg;base64,/9j/4AAQ",
			expected: "image/jpeg",
		},
		{
			name:     "missing base64 marker",
			input:    "data:image/png",
			expected: "",
		},
		{
			name:     "plain string",
			input:    "hello",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base64.GetContentType(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
