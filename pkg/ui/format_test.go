package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.FormatYAML, "yaml"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"TEXT", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yml", ui.FormatYAML, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, name := range ui.Formats {
		f, err := ui.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
}

func TestDetectFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	// a regular file is never a terminal
	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}
