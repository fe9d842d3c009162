package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadInput_Formats(t *testing.T) {
	expected := Input{Capital: 2500.5, Interest: 1.05, Contribution: -100, Years: 12}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "input.json",
			content: `{"Capital": 2500.5, "Interest": 1.05, "Contribution": -100, "Years": 12}`,
		},
		{
			name: "yaml",
			file: "input.yaml",
			content: `Capital: 2500.5
Interest: 1.05
Contribution: -100
Years: 12`,
		},
		{
			name: "toml",
			file: "input.toml",
			content: `Capital = 2500.5
Interest = 1.05
Contribution = -100
Years = 12`,
		},
		{
			name: "hjson",
			file: "input.hjson",
			content: `{
  # yearly withdrawal
  Capital: 2500.5
  Interest: 1.05
  Contribution: -100
  Years: 12
}`,
		},
		{
			name:    "json without extension",
			file:    "Data.txt",
			content: `{"Capital": 2500.5, "Interest": 1.05, "Contribution": -100, "Years": 12}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			path := writeFile(t, tt.file, tt.content)

			// When
			in, err := LoadInput(path)

			// Then
			require.NoError(t, err)
			assert.Equal(t, expected, in)
		})
	}
}

func TestLoadInput_MissingField_ReturnsError(t *testing.T) {
	path := writeFile(t, "input.json", `{"Capital": 1000, "Interest": 1.05, "Years": 12}`)

	_, err := LoadInput(path)

	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Contains(t, err.Error(), "Contribution")
}

func TestLoadInput_InvalidJSON_ReturnsError(t *testing.T) {
	path := writeFile(t, "input.json", `{"Capital": 1000,`)

	_, err := LoadInput(path)

	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoadInput_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadInput(filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoadInput_NonNumericValue_ReturnsError(t *testing.T) {
	path := writeFile(t, "input.json", `{"Capital": "lots", "Interest": 1.05, "Contribution": 1, "Years": 12}`)

	_, err := LoadInput(path)

	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoadInput_MalformedValues_ReturnsError(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{
			name:     "boolean capital",
			file:     "input.json",
			content:  `{"Capital": true, "Interest": 1.05, "Contribution": 1, "Years": 3}`,
			expected: "bad input for capital",
		},
		{
			name:     "empty years",
			file:     "input.json",
			content:  `{"Capital": 1000, "Interest": 1.05, "Contribution": 1, "Years": ""}`,
			expected: "bad input for years",
		},
		{
			name:     "fractional years",
			file:     "Data.txt",
			content:  `{"Capital": 0, "Interest": 1.1, "Contribution": 1000, "Years": 2.7}`,
			expected: "bad input for years",
		},
		{
			name:     "fractional years in hjson",
			file:     "input.hjson",
			content:  "{\n  Capital: 0\n  Interest: 1.1\n  Contribution: 1000\n  Years: 2.7\n}",
			expected: "bad input for years",
		},
		{
			name:     "years overflow",
			file:     "input.json",
			content:  `{"Capital": 1000, "Interest": 1.05, "Contribution": 1, "Years": 1e19}`,
			expected: "number overflow for years",
		},
		{
			name:     "list interest",
			file:     "input.yaml",
			content:  "Capital: 1000\nInterest: [1.05]\nContribution: 1\nYears: 3",
			expected: "bad input for interest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			path := writeFile(t, tt.file, tt.content)

			// When
			_, err := LoadInput(path)

			// Then
			require.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestLoadInput_NumericStrings_UseArgumentParsing(t *testing.T) {
	// Given
	path := writeFile(t, "input.json", `{"Capital": "2500.5", "Interest": "1.05", "Contribution": "-100", "Years": "12"}`)

	// When
	in, err := LoadInput(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, Input{Capital: 2500.5, Interest: 1.05, Contribution: -100, Years: 12}, in)
}
