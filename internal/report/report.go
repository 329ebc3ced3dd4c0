// Package report prints preflight findings to the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/flex-plugins/flex-plugin/internal/preflight"
)

// Terminal renders findings as styled blocks. Colors are dropped
// automatically when out is not a terminal.
type Terminal struct {
	out     io.Writer
	printer *message.Printer

	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	codeStyle    lipgloss.Style
	hintStyle    lipgloss.Style
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:          out,
		printer:      message.NewPrinter(language.English),
		errorStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		warningStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		codeStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
		hintStyle:    r.NewStyle().Foreground(lipgloss.Color("86")),
	}
}

// Report prints e. Fatal findings are headed ERROR, the rest WARNING.
func (t *Terminal) Report(e *preflight.Error) {
	label, style := "ERROR", t.errorStyle
	if !e.Fatal {
		label, style = "WARNING", t.warningStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", style.Render(label), e.Kind.Title(), t.codeStyle.Render("["+e.Kind.Code()+"]"))
	fmt.Fprintf(&b, "  %s\n", t.message(e))
	if e.Detail != "" {
		fmt.Fprintf(&b, "  %s\n", e.Detail)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s %s\n", t.hintStyle.Render("hint:"), e.Suggestion)
	}
	if !e.Fatal {
		b.WriteString("  Continuing because SKIP_PREFLIGHT_CHECK is set.\n")
	}
	fmt.Fprintln(t.out, b.String())
}

// Warn prints an informational notice.
func (t *Terminal) Warn(msg string) {
	fmt.Fprintf(t.out, "%s %s\n", t.warningStyle.Render("WARNING"), msg)
}

// Error prints an error that is not a preflight finding.
func (t *Terminal) Error(err error) {
	fmt.Fprintf(t.out, "%s %v\n", t.errorStyle.Render("ERROR"), err)
}

func (t *Terminal) message(e *preflight.Error) string {
	if e.Kind != preflight.PluginLoadCountError {
		return e.Message
	}
	if e.Count == 0 {
		return t.printer.Sprintf("No %s call was found in the entry file.", preflight.PluginMarker)
	}
	return t.printer.Sprintf("Found %d %s calls in the entry file; a plugin bundle loads exactly one plugin.", e.Count, preflight.PluginMarker)
}
