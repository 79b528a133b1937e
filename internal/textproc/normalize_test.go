package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "carriage returns become spaces",
			input:    "hola\r\nmundo",
			expected: "hola\nmundo",
		},
		{
			name:     "horizontal runs collapse",
			input:    "hola   \t mundo",
			expected: "hola mundo",
		},
		{
			name:     "newline runs collapse",
			input:    "primera\n\n\n\nsegunda",
			expected: "primera\nsegunda",
		},
		{
			name:     "whitespace around newlines trimmed",
			input:    "primera  \n   segunda",
			expected: "primera\nsegunda",
		},
		{
			name:     "leading and trailing trimmed",
			input:    "  texto con espacios  ",
			expected: "texto con espacios",
		},
		{
			name:     "only whitespace",
			input:    " \t\r\n \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"una sola línea",
		"línea uno\nlínea dos\nlínea tres",
		Normalize("texto \r con \t\t mucho\n\n\nruido  "),
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
