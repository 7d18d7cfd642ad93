// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"strconv"
	"strings"

	"github.com/mdhender/trash"
)

// block writes every non-terminal as "name {" ... "}".
func (r *Renderer) block(sb *strings.Builder, root trash.Node) {
	lw := &lineWriter{sb: sb, prefix: r.prefix, indent: r.indent}
	walk(root, func(n trash.Node, depth int, leave bool) bool {
		switch n := n.(type) {
		case *trash.Element:
			if leave {
				lw.line(depth, "}")
				return true
			}
			if n.IsTerminal() {
				items := leafItems(n)
				if len(items) == 0 {
					lw.line(depth, r.name(n)+" { }")
				} else {
					lw.line(depth, r.name(n)+" { "+strings.Join(items, " ")+" }")
				}
				return false
			}
			lw.line(depth, r.name(n)+" {")
		case *trash.Text:
			lw.line(depth, strconv.Quote(n.Value))
		case *trash.Attr:
			lw.line(depth, n.Name+"="+strconv.Quote(n.Value))
		}
		return true
	})
}
