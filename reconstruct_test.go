// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package trash_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdhender/trash"
)

func TestReconstruct_RoundTrip(t *testing.T) {
	if got, want := trash.Reconstruct(assignment()), "x = 1;\ny = 22;\n"; got != want {
		t.Fatalf("Reconstruct = %q, want %q", got, want)
	}
}

func TestReconstruct_OnlyBeforeAttributesContribute(t *testing.T) {
	root := elem("r",
		attr("Line", "1"),
		attr("Column", "0"),
		attr("After", "ignored"),
		attr(trash.AttrBefore, "  "),
		text("a"),
		elem("e", attr(trash.AttrBefore, "\t"), text("b")),
	)
	if got, want := trash.Reconstruct(root), "  a\tb"; got != want {
		t.Fatalf("Reconstruct = %q, want %q", got, want)
	}
}

func TestReconstruct_Leaves(t *testing.T) {
	for _, tc := range []struct {
		name string
		node trash.Node
		want string
	}{
		{"text", text("abc"), "abc"},
		{"before", attr(trash.AttrBefore, " "), " "},
		{"other attr", attr("Line", "1"), ""},
		{"empty element", elem("x"), ""},
		{"nil", nil, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := trash.Reconstruct(tc.node); got != tc.want {
				t.Errorf("Reconstruct = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReconstruct_DeepChain(t *testing.T) {
	// deep enough that a recursive walk would be in trouble
	const depth = 200_000
	var n trash.Node = text("leaf")
	for i := 0; i < depth; i++ {
		n = elem("e", n)
	}
	if got := trash.Reconstruct(n); got != "leaf" {
		t.Fatalf("Reconstruct = %q, want %q", got, "leaf")
	}
}

func TestReconstructTo_Writer(t *testing.T) {
	var buf bytes.Buffer
	if err := trash.ReconstructTo(&buf, assignment()); err != nil {
		t.Fatalf("ReconstructTo: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "x = 1;") {
		t.Errorf("ReconstructTo = %q", got)
	}
}
