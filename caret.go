// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

// Annotator prints source lines followed by caret lines that point at
// node positions, the way a compiler prints a diagnostic.
//
// The annotator keeps a cursor into the source. Lines are printed at most
// once; a node on a line that has already been printed only gets a new
// caret line.
type Annotator struct {
	w      *bufio.Writer
	src    []byte
	line   int // 1-based line of the cursor
	offset int // byte offset of the cursor
	eof    bool
	logger *slog.Logger
}

// AnnotateOption configures an Annotator.
type AnnotateOption func(a *Annotator)

// WithLogger reports nodes without position metadata at debug level.
func WithLogger(logger *slog.Logger) AnnotateOption {
	return func(a *Annotator) {
		a.logger = logger
	}
}

// NewAnnotator returns an annotator with the cursor at the start of src.
func NewAnnotator(w io.Writer, src []byte, options ...AnnotateOption) *Annotator {
	a := &Annotator{
		w:    bufio.NewWriter(w),
		src:  src,
		line: 1,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Annotate prints a caret listing for every node in order.
func Annotate(w io.Writer, src []byte, nodes []Node, options ...AnnotateOption) error {
	a := NewAnnotator(w, src, options...)
	for _, node := range nodes {
		a.Mark(node)
	}
	return a.Flush()
}

// Mark prints every source line up to and including the node's line,
// then a line of column spaces followed by a caret.
//
// A node without position metadata is marked at (0, 0).
func (a *Annotator) Mark(node Node) {
	line, col, err := ResolvePosition(node)
	if err != nil && a.logger != nil {
		a.logger.Debug("caret: position unresolved", "line", line, "column", col)
	}
	a.MarkAt(line, col)
}

// MarkAt is Mark for an explicit position.
func (a *Annotator) MarkAt(line, col int) {
	for a.line <= line && !a.eof {
		a.printLine()
	}
	if col < 0 {
		col = 0
	}
	a.w.WriteString(strings.Repeat(" ", col))
	a.w.WriteString("^\n")
}

// printLine copies the current line, without carriage returns, and moves
// the cursor to the start of the next line. At end of input the cursor
// stops; lines past the end are never printed.
func (a *Annotator) printLine() {
	for {
		if a.offset >= len(a.src) {
			a.eof = true
			break
		}
		c := a.src[a.offset]
		a.offset++
		if c == '\n' {
			a.line++
			break
		} else if c != '\r' {
			a.w.WriteByte(c)
		}
	}
	a.w.WriteByte('\n')
}

// Flush writes any buffered output.
func (a *Annotator) Flush() error {
	return a.w.Flush()
}
