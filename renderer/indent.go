// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"strconv"
	"strings"

	"github.com/mdhender/trash"
)

// indented writes one node per line. Depth is shown by indentation only.
func (r *Renderer) indented(sb *strings.Builder, root trash.Node) {
	lw := &lineWriter{sb: sb, prefix: r.prefix, indent: r.indent}
	walk(root, func(n trash.Node, depth int, leave bool) bool {
		if leave {
			return true
		}
		switch n := n.(type) {
		case *trash.Element:
			lw.line(depth, r.name(n))
		case *trash.Text:
			lw.line(depth, strconv.Quote(n.Value))
		case *trash.Attr:
			lw.line(depth, "@"+n.Name+"="+strconv.Quote(n.Value))
		}
		return true
	})
}
