// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"strings"

	"github.com/mdhender/trash"
)

var whitespaceEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)

// antlr writes the tree on one line as (rule child child ...).
// Terminals print as their text and attributes are not shown.
func (r *Renderer) antlr(sb *strings.Builder, root trash.Node) {
	sb.WriteString(r.prefix)
	needSpace := false
	item := func(s string) {
		if needSpace {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
		needSpace = true
	}
	walk(root, func(n trash.Node, depth int, leave bool) bool {
		switch n := n.(type) {
		case *trash.Element:
			if leave {
				sb.WriteByte(')')
				needSpace = true
				return true
			}
			if n.IsTerminal() {
				if text, ok := terminalText(n); ok {
					item(whitespaceEscaper.Replace(text))
				} else {
					item(r.name(n))
				}
				return false
			}
			item("(" + r.name(n))
		case *trash.Text:
			item(whitespaceEscaper.Replace(n.Value))
		case *trash.Attr:
		}
		return true
	})
}
