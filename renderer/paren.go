// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"strconv"
	"strings"

	"github.com/mdhender/trash"
)

// parenIndent writes one node per line, each subtree in parentheses.
// A terminal fits on a single line with its attributes and text.
func (r *Renderer) parenIndent(sb *strings.Builder, root trash.Node) {
	lw := &lineWriter{sb: sb, prefix: r.prefix, indent: r.indent}
	walk(root, func(n trash.Node, depth int, leave bool) bool {
		switch n := n.(type) {
		case *trash.Element:
			if leave {
				lw.line(depth, ")")
				return true
			}
			if n.IsTerminal() {
				text := "( " + r.name(n)
				for _, item := range leafItems(n) {
					text += " " + item
				}
				lw.line(depth, text+" )")
				return false
			}
			lw.line(depth, "( "+r.name(n))
		case *trash.Text:
			lw.line(depth, strconv.Quote(n.Value))
		case *trash.Attr:
			lw.line(depth, n.Name+"="+strconv.Quote(n.Value))
		}
		return true
	})
}
