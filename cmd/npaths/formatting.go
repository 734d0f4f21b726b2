package npaths

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledHelp reports whether help output may carry ANSI styling
func styledHelp() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatBold returns s in bold when stdout is a terminal
func formatBold(s string) string {
	if !styledHelp() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns s in uppercase, bold when stdout is a terminal
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds the formatting functions used by MsgUsageTemplate
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
