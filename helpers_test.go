// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash_test

import "github.com/mdhender/trash"

func elem(name string, children ...trash.Node) *trash.Element {
	return &trash.Element{Name: name, Children: children}
}

func text(value string) *trash.Text {
	return &trash.Text{Value: value}
}

func attr(name, value string) *trash.Attr {
	return &trash.Attr{Name: name, Value: value}
}

// token builds a terminal the way the upstream parser does: leading
// trivia, position, then the token text.
func token(name, before string, line, col string, value string) *trash.Element {
	var kids []trash.Node
	if before != "" {
		kids = append(kids, attr(trash.AttrBefore, before))
	}
	kids = append(kids, attr(trash.AttrLine, line), attr(trash.AttrColumn, col), text(value))
	return elem(name, kids...)
}

// assignment is the tree for "x = 1;\ny = 22;\n".
func assignment() *trash.Element {
	return elem("file",
		elem("stmt",
			token("ID", "", "1", "0", "x"),
			token("EQ", " ", "1", "2", "="),
			token("INT", " ", "1", "4", "1"),
			token("SEMI", "", "1", "5", ";"),
		),
		elem("stmt",
			token("ID", "\n", "2", "0", "y"),
			token("EQ", " ", "2", "2", "="),
			token("INT", " ", "2", "4", "22"),
			token("SEMI", "", "2", "6", ";"),
		),
		elem("EOF", attr(trash.AttrBefore, "\n"), attr(trash.AttrLine, "3"), attr(trash.AttrColumn, "0")),
	)
}
