// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/npaths/pkg/ui/display"
)

// Renderer writes one value per line, suitable for pipes
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Value:
		_, err := fmt.Fprintln(r.output, v.Value)
		return err
	case *display.List:
		for _, item := range v.Items {
			if _, err := fmt.Fprintln(r.output, item); err != nil {
				return err
			}
		}
		return nil
	case *display.Record:
		width := v.Width()
		for _, f := range v.Fields {
			if _, err := fmt.Fprintf(r.output, "%-*s  %s\n", width+1, f.Name+":", f.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(r.output, "%v\n", result)
		return err
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
