// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"io"
	"strings"
)

// Reconstruct rebuilds the source text that a tree was derived from.
//
// The text is the concatenation, in pre-order, of every Before attribute
// and every Text node. No other attribute contributes. If the parser
// dropped trivia the result is only an approximation of the source.
func Reconstruct(root Node) string {
	var sb strings.Builder
	// a strings.Builder never returns an error
	_ = ReconstructTo(&sb, root)
	return sb.String()
}

// ReconstructTo writes the reconstructed text of root to w.
//
// The walk uses an explicit stack, so deep trees do not grow the call
// stack. Children are pushed in reverse so they pop in source order.
func ReconstructTo(w io.Writer, root Node) error {
	if root == nil {
		return nil
	}
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = stringWriter{w}
	}
	stack := []Node{root}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := n.(type) {
		case *Attr:
			if n.Name == AttrBefore {
				if _, err := sw.WriteString(n.Value); err != nil {
					return err
				}
			}
		case *Text:
			if _, err := sw.WriteString(n.Value); err != nil {
				return err
			}
		case *Element:
			for i := len(n.Children) - 1; i >= 0; i-- {
				stack = append(stack, n.Children[i])
			}
		}
	}
	return nil
}

type stringWriter struct {
	w io.Writer
}

func (s stringWriter) WriteString(str string) (int, error) {
	return s.w.Write([]byte(str))
}
