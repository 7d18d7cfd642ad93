// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package renderer prints the structure of a parse tree in one of four
// text styles.
package renderer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mdhender/trash"
)

type Renderer struct {
	style  Style
	prefix string
	indent string
	vocab  *Vocabulary
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		style:  DefaultStyle,
		indent: "  ",
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Renderer) Style() Style {
	return r.style
}

// Render returns the text of the subtree at root, without a trailing
// new-line. The result depends only on the tree and the options.
func (r *Renderer) Render(root trash.Node) (string, error) {
	s, err := r.render(root)
	if err != nil {
		return "", &trash.RenderError{Err: err}
	}
	return s, nil
}

// RenderSet writes the rendering of every root node of set to w,
// each followed by a new-line.
func (r *Renderer) RenderSet(w io.Writer, set *trash.ParsingResultSet) error {
	for _, root := range set.Nodes {
		s, err := r.render(root)
		if err != nil {
			return &trash.RenderError{FileName: set.FileName, Err: err}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) render(root trash.Node) (string, error) {
	if root == nil {
		return "", errors.New("nil node")
	}
	var sb strings.Builder
	switch r.style {
	case Antlr:
		r.antlr(&sb, root)
	case ParenIndent:
		r.parenIndent(&sb, root)
	case Indent:
		r.indented(&sb, root)
	case Block:
		r.block(&sb, root)
	default:
		return "", fmt.Errorf("unknown style %v", r.style)
	}
	return sb.String(), nil
}

// name returns the display name of an element. Numeric names are
// indices: token types for terminals and rule indices otherwise.
func (r *Renderer) name(e *trash.Element) string {
	i, err := strconv.Atoi(e.Name)
	if err != nil {
		return e.Name
	}
	if e.IsTerminal() {
		if name, ok := r.vocab.TokenName(i); ok {
			return name
		}
	} else if name, ok := r.vocab.RuleName(i); ok {
		return name
	}
	return e.Name
}

// visit is one step of an iterative walk.
type visit struct {
	node  trash.Node
	depth int
	leave bool
}

// walk calls fn when entering every node and again when leaving an
// element. If fn returns false on entry the element's children are
// skipped and there is no leave call. The walk keeps its own stack.
func walk(root trash.Node, fn func(n trash.Node, depth int, leave bool) bool) {
	stack := []visit{{node: root}}
	for len(stack) != 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v.leave {
			fn(v.node, v.depth, true)
			continue
		}
		if !fn(v.node, v.depth, false) {
			continue
		}
		e, ok := v.node.(*trash.Element)
		if !ok {
			continue
		}
		stack = append(stack, visit{node: e, depth: v.depth, leave: true})
		for i := len(e.Children) - 1; i >= 0; i-- {
			stack = append(stack, visit{node: e.Children[i], depth: v.depth + 1})
		}
	}
}

// lineWriter starts every line with the prefix and indentation.
type lineWriter struct {
	sb      *strings.Builder
	prefix  string
	indent  string
	started bool
}

func (l *lineWriter) line(depth int, text string) {
	if l.started {
		l.sb.WriteByte('\n')
	}
	l.started = true
	l.sb.WriteString(l.prefix)
	for i := 0; i < depth; i++ {
		l.sb.WriteString(l.indent)
	}
	l.sb.WriteString(text)
}

// leafItems formats the attributes and text of a terminal for the
// single line styles.
func leafItems(e *trash.Element) []string {
	var items []string
	for _, ch := range e.Children {
		switch ch := ch.(type) {
		case *trash.Attr:
			items = append(items, ch.Name+"="+strconv.Quote(ch.Value))
		case *trash.Text:
			items = append(items, strconv.Quote(ch.Value))
		case *trash.Element:
			// terminals have no element children
		}
	}
	return items
}

// terminalText joins the text children of a terminal.
func terminalText(e *trash.Element) (string, bool) {
	var sb strings.Builder
	found := false
	for _, ch := range e.Children {
		if t, ok := ch.(*trash.Text); ok {
			sb.WriteString(t.Value)
			found = true
		}
	}
	return sb.String(), found
}
