// Package output renders CLI results in terminal, markdown, and JSON
// form. Auto mode picks styled text on a TTY and markdown when piped,
// so scripted consumers get stable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Renderer writes formatted output to a writer pair.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styled bool
}

// NewRenderer creates a renderer. Unknown modes fall back to auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON, ModeAuto:
	default:
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styled: termenv.EnvColorProfile() != termenv.Ascii,
	}
}

// EffectiveMode resolves auto mode: text on a TTY, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Out returns the underlying output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Println writes a plain line.
func (r *Renderer) Println(args ...any) {
	_, _ = fmt.Fprintln(r.out, args...)
}

// Printf writes formatted text.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a section header styled for the effective mode.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeText {
		if r.styled {
			text = headerStyle.Render(text)
		}
		_, _ = fmt.Fprintln(r.out, text)
		return
	}
	_, _ = fmt.Fprintln(r.out, FormatHeader(level, text))
}

// KeyValue writes a "Key: value" line.
func (r *Renderer) KeyValue(key, value string) {
	_, _ = fmt.Fprintln(r.out, FormatKeyValue(key, value))
}

// Detail writes a secondary, de-emphasized line.
func (r *Renderer) Detail(text string) {
	if r.EffectiveMode() == ModeText && r.styled {
		text = dimStyle.Render(text)
	}
	_, _ = fmt.Fprintln(r.out, text)
}

// Error writes an error line to the error writer.
func (r *Renderer) Error(text string) {
	if r.EffectiveMode() == ModeText && r.styled {
		text = errorStyle.Render(text)
	}
	_, _ = fmt.Fprintln(r.errOut, text)
}

// Table renders a table: go-pretty in text mode, a markdown table
// otherwise.
func (r *Renderer) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.out, "(0 rows)")
		return
	}

	if r.EffectiveMode() == ModeText {
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)

		headerRow := make(table.Row, len(headers))
		for i, h := range headers {
			headerRow[i] = h
		}
		t.AppendHeader(headerRow)

		for _, row := range rows {
			tr := make(table.Row, len(row))
			for i, cell := range row {
				tr[i] = cell
			}
			t.AppendRow(tr)
		}
		t.Render()
		return
	}

	writeMarkdownTable(r.out, headers, rows)
}

// JSON writes the value as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
