// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

// Node is the interface implemented by all parse tree nodes.
//
// The set of implementations is closed: *Element, *Text and *Attr.
// Code that walks a tree should switch on those three types and
// nothing else.
//
// Only an Element has children. Text and Attr are always leaves.
type Node interface {
	// Kind returns "Element", "Text" or "Attr".
	Kind() string

	node()
}

// Element is an interior node of the tree. Children are kept in parse
// order; the order is significant.
type Element struct {
	Name     string
	Children []Node
}

// Text holds the literal text of a token.
type Text struct {
	Value string
}

// Attr attaches metadata to its parent Element.
//
// Names seen in practice are Before (leading trivia), Line and Column,
// but the set is open-ended.
type Attr struct {
	Name  string
	Value string
}

// Names of the attributes that the engine interprets.
const (
	AttrBefore = "Before"
	AttrLine   = "Line"
	AttrColumn = "Column"
)

func (e *Element) Kind() string { return "Element" }
func (t *Text) Kind() string    { return "Text" }
func (a *Attr) Kind() string    { return "Attr" }

func (e *Element) node() {}
func (t *Text) node()    {}
func (a *Attr) node()    {}

// Attr returns the value of the first direct Attr child with the given name.
func (e *Element) Attr(name string) (string, bool) {
	for _, ch := range e.Children {
		if a, ok := ch.(*Attr); ok && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// IsTerminal reports whether the element has no Element children.
// Terminals are the token-level nodes of the tree.
func (e *Element) IsTerminal() bool {
	for _, ch := range e.Children {
		if _, ok := ch.(*Element); ok {
			return false
		}
	}
	return true
}

// children returns the children of n. Leaves have none.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Element:
		return n.Children
	case *Text:
		return nil
	case *Attr:
		return nil
	}
	return nil
}

// ParsingResultSet is the parse output for a single file.
//
// FileName is the path of the original source. The source is read again
// when it is needed; it is not stored here. Lexer and Parser identify the
// grammar and are used to resolve symbolic names when rendering.
type ParsingResultSet struct {
	FileName string
	Lexer    string
	Parser   string
	Nodes    []Node
}
