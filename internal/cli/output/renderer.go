// Package output renders command results for terminals, pipes and machines.
//
// Output adapts to the environment: a terminal gets styled text, a pipe gets
// markdown, and --output json gets machine-readable JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the effective mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(out, isTTY),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EffectiveMode resolves auto to text on a terminal and markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	switch r.mode {
	case ModeText, ModeMarkdown, ModeJSON:
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the text-mode styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the primary writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Println writes a line to the primary writer.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Printf writes formatted output to the primary writer.
func (r *Renderer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Header writes a styled heading.
func (r *Renderer) Header(level int, text string) {
	style := r.styles.Header1
	if level > 1 {
		style = r.styles.Header2
	}
	r.Println(style.Render(text))
}

// Muted writes de-emphasized text.
func (r *Renderer) Muted(text string) {
	r.Println(r.styles.Muted.Render(text))
}

// Success writes a success message.
func (r *Renderer) Success(text string) {
	r.Println(r.styles.Success.Render(IconSuccess + " " + text))
}

// Warning writes a warning message to the error writer.
func (r *Renderer) Warning(text string) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render(IconWarning+" "+text))
}

// StatusLine writes "icon name  detail" with the icon and color chosen by status.
func (r *Renderer) StatusLine(name, status, detail string) {
	icon, style := IconSuccess, r.styles.Success
	switch status {
	case "error", "failed":
		icon, style = IconError, r.styles.Error
	case "warning", "skipped":
		icon, style = IconWarning, r.styles.Warning
	}
	line := style.Render(icon) + " " + name
	if detail != "" {
		line += "  " + r.styles.Muted.Render(detail)
	}
	r.Println(line)
}

// KeyValue writes an aligned key/value line.
func (r *Renderer) KeyValue(key string, value any) {
	r.Println(fmt.Sprintf("%s %v", r.styles.Bold.Render(fmt.Sprintf("%-10s", key+":")), value))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders rows as a box table in text mode and a pipe table otherwise.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	if r.EffectiveMode() == ModeText {
		t.SetStyle(table.StyleLight)
		t.Render()
		return
	}
	t.RenderMarkdown()
}
