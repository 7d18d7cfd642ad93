// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import "strconv"

// Line returns the line number recorded for n, or 0 if none is found.
//
// The search is a leftmost descent: the direct children of n are checked
// for a Line attribute, and if there is none the search moves to the
// first child and repeats. Siblings after the first child are never
// consulted. Tree producers place position metadata on the leftmost
// chain, and callers depend on exactly this behavior.
func Line(n Node) int {
	return leftmostAttr(n, AttrLine)
}

// Column returns the column recorded for n, or 0 if none is found.
// It uses the same leftmost descent as Line.
func Column(n Node) int {
	return leftmostAttr(n, AttrColumn)
}

// Position returns Line(n) and Column(n).
func Position(n Node) (line, column int) {
	return Line(n), Column(n)
}

// ResolvePosition is Position with an explicit report of missing
// metadata. The error is always ErrPositionUnresolved and the returned
// position is still usable.
func ResolvePosition(n Node) (line, column int, err error) {
	line, column = Position(n)
	if line == 0 || column == 0 {
		if _, ok := findLeftmost(n, AttrLine); !ok {
			return line, column, ErrPositionUnresolved
		}
		if _, ok := findLeftmost(n, AttrColumn); !ok {
			return line, column, ErrPositionUnresolved
		}
	}
	return line, column, nil
}

func leftmostAttr(n Node, name string) int {
	value, ok := findLeftmost(n, name)
	if !ok {
		return 0
	}
	// decimal digits only, no sign
	i, err := strconv.ParseUint(value, 10, strconv.IntSize-1)
	if err != nil {
		return 0
	}
	return int(i)
}

func findLeftmost(n Node, name string) (string, bool) {
	for n != nil {
		kids := children(n)
		if len(kids) == 0 {
			return "", false
		}
		for _, ch := range kids {
			if a, ok := ch.(*Attr); ok && a.Name == name {
				return a.Value, true
			}
		}
		n = kids[0]
	}
	return "", false
}
