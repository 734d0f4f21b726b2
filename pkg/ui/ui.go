// Package ui renders command results as styled terminal output, plain
// text, JSON or YAML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/npaths/pkg/errors"
	"github.com/arthur-debert/npaths/pkg/ui/json"
	"github.com/arthur-debert/npaths/pkg/ui/terminal"
	"github.com/arthur-debert/npaths/pkg/ui/text"
	"github.com/arthur-debert/npaths/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a display.Value, display.List or display.Record
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects output when it is a file and falls back to plain
// text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
