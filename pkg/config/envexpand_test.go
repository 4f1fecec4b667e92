package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_TOKEN", "tok-123")
	t.Setenv("TEST_HOST", "db.example.com")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "token: {{.TEST_TOKEN}}",
			expected: "token: tok-123",
		},
		{
			name:     "multiple variables in one value",
			input:    "url: {{.TEST_HOST}}:{{.TEST_TOKEN}}",
			expected: "url: db.example.com:tok-123",
		},
		{
			name:     "missing variable expands to empty",
			input:    "token: '{{.DOES_NOT_EXIST_XYZ}}'",
			expected: "token: ''",
		},
		{
			name:     "literal dollar untouched",
			input:    `pattern: "^secret.*$"`,
			expected: `pattern: "^secret.*$"`,
		},
		{
			name:     "shell-style reference untouched",
			input:    `args: ["$HOME", "${PATH}"]`,
			expected: `args: ["$HOME", "${PATH}"]`,
		},
		{
			name:     "no template syntax passes through",
			input:    "worker:\n  poll_interval: 5s\n",
			expected: "worker:\n  poll_interval: 5s\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestExpandEnvMalformedTemplate(t *testing.T) {
	// Unclosed action: parse fails, original bytes come back so the
	// YAML parser can produce the real error.
	input := []byte("value: {{.UNCLOSED")
	got := ExpandEnv(input)
	assert.Equal(t, input, got)
}
