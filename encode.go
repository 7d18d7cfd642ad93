// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash

import (
	"bufio"
	"encoding/json"
	"io"
)

// Encode writes result sets using the same schema that Decode reads.
// The output is compact and deterministic.
func Encode(w io.Writer, sets []*ParsingResultSet) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	for i, set := range sets {
		if i > 0 {
			bw.WriteByte(',')
		}
		bw.WriteString(`{"FileName":`)
		writeJSONString(bw, set.FileName)
		bw.WriteString(`,"Lexer":`)
		writeJSONString(bw, set.Lexer)
		bw.WriteString(`,"Parser":`)
		writeJSONString(bw, set.Parser)
		bw.WriteString(`,"Nodes":[`)
		for j, root := range set.Nodes {
			if j > 0 {
				bw.WriteByte(',')
			}
			encodeNode(bw, root)
		}
		bw.WriteString(`]}`)
	}
	bw.WriteByte(']')
	return bw.Flush()
}

// encodeNode writes a subtree without recursion. A frame tracks how many
// children of an element have been written so far.
func encodeNode(bw *bufio.Writer, root Node) {
	type frame struct {
		elem *Element
		next int
	}
	var stack []*frame
	write := func(n Node) {
		switch n := n.(type) {
		case *Element:
			bw.WriteString(`{"kind":"Element","name":`)
			writeJSONString(bw, n.Name)
			bw.WriteString(`,"children":[`)
			stack = append(stack, &frame{elem: n})
		case *Text:
			bw.WriteString(`{"kind":"Text","value":`)
			writeJSONString(bw, n.Value)
			bw.WriteByte('}')
		case *Attr:
			bw.WriteString(`{"kind":"Attr","name":`)
			writeJSONString(bw, n.Name)
			bw.WriteString(`,"value":`)
			writeJSONString(bw, n.Value)
			bw.WriteByte('}')
		}
	}
	write(root)
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.elem.Children) {
			bw.WriteString(`]}`)
			stack = stack[:len(stack)-1]
			continue
		}
		if top.next > 0 {
			bw.WriteByte(',')
		}
		ch := top.elem.Children[top.next]
		top.next++
		write(ch)
	}
}

func writeJSONString(bw *bufio.Writer, s string) {
	data, _ := json.Marshal(s) // marshaling a string cannot fail
	bw.Write(data)
}
