package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// printer writes status lines styled for w. Color is only emitted when w is
// a terminal.
type printer struct {
	w io.Writer

	styleSuccess lipgloss.Style
	styleError   lipgloss.Style
	styleDim     lipgloss.Style
	styleName    lipgloss.Style
	styleKey     lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:            w,
		styleSuccess: r.NewStyle().Foreground(colorGreen),
		styleError:   r.NewStyle().Foreground(colorRed),
		styleDim:     r.NewStyle().Foreground(colorDim),
		styleName:    r.NewStyle().Foreground(colorCyan),
		styleKey:     r.NewStyle().Foreground(colorGray).Width(24),
	}
}

func (p *printer) printSuccess(format string, args ...any) {
	fmt.Fprintln(p.w, p.styleSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (p *printer) printError(format string, args ...any) {
	fmt.Fprintln(p.w, p.styleError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func (p *printer) printDetail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+p.styleDim.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) printFile(path string) {
	fmt.Fprintln(p.w, "  "+p.styleDim.Render(iconArrow)+" "+p.styleName.Render(path))
}

// printKeyValue prints a labeled value in a fixed-width key column.
func (p *printer) printKeyValue(key, value string) {
	fmt.Fprintln(p.w, p.styleKey.Render(key)+" "+p.styleDim.Render(value))
}
