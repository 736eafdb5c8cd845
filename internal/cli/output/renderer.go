// Package output renders command results in a terminal-aware way: styled
// text on a TTY, plain text when piped, JSON on request.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mdtidy/mdtidy/pkg/lint"
)

// Mode selects the output format.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes command output. It also serves as the user notification
// channel: notices are printed fire-and-forget, never awaited or retried.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer for the given mode. Empty or "auto"
// resolves to styled text on a terminal and plain text otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	styled := false
	if mode == ModeAuto || mode == ModeText {
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			styled = true
		}
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(styled),
	}
}

// EffectiveMode returns the resolved output mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Styles exposes the style set for callers composing their own lines.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line to standard output.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Success writes a success notice.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.styles.Success.Render("✓")+" "+msg)
}

// Notify implements lint.Notifier: a short user-facing message on stderr.
func (r *Renderer) Notify(msg string) {
	fmt.Fprintln(r.errOut, r.styles.Warning.Render(msg))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatLintError turns a pipeline failure into its user-facing message.
// Structured-metadata failures quote the file path and the tail of the
// parser's message; everything else points at the logs.
func FormatLintError(err error) string {
	var ce *lint.ContentError
	if errors.As(err, &ce) {
		if ce.Kind == lint.KindMetadata {
			return fmt.Sprintf("failed to parse front matter in %s: %s", ce.Path, tail(ce.Err.Error(), 120))
		}
		return fmt.Sprintf("an error occurred while linting %s, see logs for details", ce.Path)
	}
	return fmt.Sprintf("an error occurred: %v", err)
}

// tail returns the last n bytes of a message, trimmed to a rune boundary.
func tail(msg string, n int) string {
	if len(msg) <= n {
		return msg
	}
	cut := msg[len(msg)-n:]
	for len(cut) > 0 && (cut[0]&0xC0) == 0x80 {
		cut = cut[1:]
	}
	return "..." + cut
}

var _ lint.Notifier = (*Renderer)(nil)
