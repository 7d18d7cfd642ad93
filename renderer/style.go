// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import "fmt"

// Style is a tree output format.
type Style int

const (
	// Antlr is the single line, Lisp-like format of the ANTLR tools.
	Antlr Style = iota
	// ParenIndent is parenthesized, one node per line, indented by depth.
	ParenIndent
	// Indent shows depth by indentation only.
	Indent
	// Block wraps every subtree in braces.
	Block
)

// DefaultStyle is used when no style is selected.
const DefaultStyle = ParenIndent

func (s Style) String() string {
	switch s {
	case Antlr:
		return "antlr"
	case ParenIndent:
		return "paren-indent"
	case Indent:
		return "indent"
	case Block:
		return "block"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for _, s := range []Style{Antlr, ParenIndent, Indent, Block} {
		if s.String() == name {
			return s, nil
		}
	}
	return DefaultStyle, fmt.Errorf("unknown style %q", name)
}

// SelectStyle maps the style flags to a single style.
//
// Setting more than one flag is a caller error, but it is not rejected:
// the first set flag wins, in the order antlr, paren-indent, indent,
// block. With no flag set the result is DefaultStyle.
func SelectStyle(antlr, parenIndent, indent, block bool) Style {
	switch {
	case antlr:
		return Antlr
	case parenIndent:
		return ParenIndent
	case indent:
		return Indent
	case block:
		return Block
	}
	return DefaultStyle
}
