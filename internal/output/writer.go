// Package output renders boards, square sets, move lists and reports for
// the terminal.
package output

import (
	"fmt"
	"io"
)

// ColumnWriter writes entries separated by tabs, starting a new line after
// every perLine entries.
type ColumnWriter struct {
	w       io.Writer
	perLine int
	column  int
}

// NewColumnWriter creates a new column writer. perLine below 1 means 4.
func NewColumnWriter(w io.Writer, perLine int) *ColumnWriter {
	if perLine <= 0 {
		perLine = 4
	}
	return &ColumnWriter{
		w:       w,
		perLine: perLine,
	}
}

// Write writes one entry followed by a tab.
func (c *ColumnWriter) Write(s string) {
	fmt.Fprint(c.w, s, "\t")
	c.column++
	if c.column == c.perLine {
		c.NewLine()
	}
}

// NewLine ends the current line if it has any entries.
func (c *ColumnWriter) NewLine() {
	if c.column == 0 {
		return
	}
	fmt.Fprintln(c.w)
	c.column = 0
}
