// Package ui formats command results for the terminal.
// Styling is applied only when the output is a TTY; piped output stays
// plain so it can be consumed by scripts.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer writes verdicts to an output stream.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter creates a printer for w. Styling is enabled when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: isTerminal(w)}
}

// NewPlainPrinter creates a printer that never styles its output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// OK reports a successful check.
func (p *Printer) OK(msg, detail string) {
	p.line("✓", okStyle, msg, detail)
}

// Fail reports a failed check.
func (p *Printer) Fail(msg, detail string) {
	p.line("✗", failStyle, msg, detail)
}

// Println writes a raw line, e.g. markup or a URL meant for piping.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *Printer) line(mark string, style lipgloss.Style, msg, detail string) {
	head := mark + " " + msg
	if p.styled {
		head = style.Render(head)
		if detail != "" {
			detail = detailStyle.Render(detail)
		}
	}
	if detail == "" {
		fmt.Fprintln(p.w, head)
		return
	}
	fmt.Fprintf(p.w, "%s  %s\n", head, detail)
}
