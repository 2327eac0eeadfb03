package pretty

import (
	"io"
	"strings"
)

// PrettyWriter writes indented lines, and remembers the first write error.
type PrettyWriter struct {
	w      io.Writer
	indent string
	err    error
}

func NewPrettyWriter(w io.Writer, indent string) *PrettyWriter {
	return &PrettyWriter{w: w, indent: indent}
}

// Write writes p to the underlying writer, unless a previous write failed.
func (pw *PrettyWriter) Write(p string) {
	if pw.err != nil {
		return
	}
	_, pw.err = io.WriteString(pw.w, p)
}

// WriteIndent writes the indentation for the given depth.
func (pw *PrettyWriter) WriteIndent(indent uint32) {
	pw.Write(strings.Repeat(pw.indent, int(indent)))
}

// Line writes one indented line.
func (pw *PrettyWriter) Line(indent uint32, line string) {
	pw.WriteIndent(indent)
	pw.Write(line)
	pw.Write("\n")
}

// Err returns the first write error.
func (pw *PrettyWriter) Err() error {
	return pw.err
}
