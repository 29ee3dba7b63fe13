// Package output provides context-aware output for tprompt.
// Stdout carries the value the user entered so it can be captured
// (e.g. name=$(tprompt ask --title Name)); diagnostics go through the
// log package on stderr.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Value writes an entered value, optionally followed by a newline.
func (p *Printer) Value(text string, newline bool) {
	if newline {
		fmt.Fprintln(p.w, text)
		return
	}
	fmt.Fprint(p.w, text)
}

// JSON writes v as a single line of JSON.
func (p *Printer) JSON(v any) error {
	if err := json.NewEncoder(p.w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
