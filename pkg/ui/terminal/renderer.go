// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/npaths/pkg/ui/display"
	"github.com/arthur-debert/npaths/pkg/ui/styles"
)

// Renderer styles results with the lipgloss registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// value renders s, or a muted placeholder when it is empty
func value(s, style string) string {
	if s == "" {
		return styles.GetStyle("Muted").Render("(none)")
	}
	return styles.GetStyle(style).Render(s)
}

// RenderResult renders a result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Value:
		return r.println(value(v.Value, "Value"))
	case *display.List:
		if len(v.Items) == 0 {
			return r.println(styles.GetStyle("Muted").Render("(none)"))
		}
		index := styles.GetStyle("Index").Width(len(fmt.Sprint(len(v.Items) - 1)))
		for i, item := range v.Items {
			line := index.Render(fmt.Sprint(i)) + " " + value(item, "FilePath")
			if err := r.println(line); err != nil {
				return err
			}
		}
		return nil
	case *display.Record:
		if err := r.println(styles.GetStyle("Header").Render(v.Input)); err != nil {
			return err
		}
		key := styles.GetStyle("Key")
		width := v.Width()
		for _, f := range v.Fields {
			name := f.Name + strings.Repeat(" ", width-len(f.Name))
			if err := r.println("  " + key.Render(name) + "  " + value(f.Value, "FilePath")); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.println(fmt.Sprintf("%v", result))
	}
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	return r.println(styles.GetStyle("Error").Render("Error:") + " " + err.Error())
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(styles.GetStyle("Success").Render(msg))
}
