// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mdhender/trash"
	"github.com/mdhender/trash/renderer"
)

func elem(name string, children ...trash.Node) *trash.Element {
	return &trash.Element{Name: name, Children: children}
}

func text(value string) *trash.Text {
	return &trash.Text{Value: value}
}

func attr(name, value string) *trash.Attr {
	return &trash.Attr{Name: name, Value: value}
}

// sample is the tree for "1 + 2".
func sample() trash.Node {
	return elem("expr",
		elem("INT", attr("Line", "1"), text("1")),
		elem("PLUS", attr("Before", " "), text("+")),
		elem("atom",
			elem("INT", attr("Before", " "), text("2")),
		),
	)
}

func render(t *testing.T, root trash.Node, options ...renderer.Option) string {
	t.Helper()
	r, err := renderer.New(options...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s, err := r.Render(root)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return s
}

func TestRender_Styles(t *testing.T) {
	for _, tc := range []struct {
		style renderer.Style
		want  string
	}{
		{renderer.Antlr, `(expr 1 + (atom 2))`},
		{renderer.ParenIndent, strings.Join([]string{
			`( expr`,
			`  ( INT Line="1" "1" )`,
			`  ( PLUS Before=" " "+" )`,
			`  ( atom`,
			`    ( INT Before=" " "2" )`,
			`  )`,
			`)`,
		}, "\n")},
		{renderer.Indent, strings.Join([]string{
			`expr`,
			`  INT`,
			`    @Line="1"`,
			`    "1"`,
			`  PLUS`,
			`    @Before=" "`,
			`    "+"`,
			`  atom`,
			`    INT`,
			`      @Before=" "`,
			`      "2"`,
		}, "\n")},
		{renderer.Block, strings.Join([]string{
			`expr {`,
			`  INT { Line="1" "1" }`,
			`  PLUS { Before=" " "+" }`,
			`  atom {`,
			`    INT { Before=" " "2" }`,
			`  }`,
			`}`,
		}, "\n")},
	} {
		t.Run(tc.style.String(), func(t *testing.T) {
			if got := render(t, sample(), renderer.WithStyle(tc.style)); got != tc.want {
				t.Errorf("Render:\ngot\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestRender_BlockAttributes(t *testing.T) {
	// attributes read the same under terminals and non-terminals
	root := elem("stmt", attr("Line", "1"), elem("ID", attr("Before", " "), text("x")))
	want := strings.Join([]string{
		`stmt {`,
		`  Line="1"`,
		`  ID { Before=" " "x" }`,
		`}`,
	}, "\n")
	if got := render(t, root, renderer.WithStyle(renderer.Block)); got != want {
		t.Errorf("Render:\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestRender_StylesAreDistinctAndDeterministic(t *testing.T) {
	seen := map[string]renderer.Style{}
	for _, style := range []renderer.Style{renderer.Antlr, renderer.ParenIndent, renderer.Indent, renderer.Block} {
		first := render(t, sample(), renderer.WithStyle(style))
		second := render(t, sample(), renderer.WithStyle(style))
		if first == "" {
			t.Errorf("%v: empty output", style)
		}
		if first != second {
			t.Errorf("%v: output differs between calls", style)
		}
		if other, ok := seen[first]; ok {
			t.Errorf("%v: same output as %v", style, other)
		}
		seen[first] = style
	}
}

func TestRender_Prefix(t *testing.T) {
	got := render(t, sample(), renderer.WithStyle(renderer.Block), renderer.WithPrefix("a.txt: "))
	for i, line := range strings.Split(got, "\n") {
		if !strings.HasPrefix(line, "a.txt: ") {
			t.Errorf("line %d: %q: missing prefix", i+1, line)
		}
	}
	if got := render(t, sample(), renderer.WithStyle(renderer.Antlr), renderer.WithPrefix("a.txt: ")); got != "a.txt: (expr 1 + (atom 2))" {
		t.Errorf("Render = %q", got)
	}
}

func TestRender_AntlrEscapesWhitespace(t *testing.T) {
	root := elem("s", elem("WS", text("\t\r\n")), elem("EOF"))
	if got, want := render(t, root, renderer.WithStyle(renderer.Antlr)), `(s \t\r\n EOF)`; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_Leaves(t *testing.T) {
	if got := render(t, text("a b"), renderer.WithStyle(renderer.Indent)); got != `"a b"` {
		t.Errorf("Render(text) = %q", got)
	}
	if got := render(t, elem("empty"), renderer.WithStyle(renderer.Block)); got != `empty { }` {
		t.Errorf("Render(empty) = %q", got)
	}
}

func TestRender_Vocabulary(t *testing.T) {
	reg := renderer.NewRegistry()
	reg.AddLexer("ExprLexer", map[int]string{3: "ID"})
	reg.AddParser("ExprParser", []string{"start", "expr"})
	root := elem("0",
		elem("1", elem("3", text("a"))),
		elem("-1"),
		elem("7", text("?")),
	)
	want := strings.Join([]string{
		`( start`,
		`  ( expr`,
		`    ( ID "a" )`,
		`  )`,
		`  ( EOF )`,
		`  ( 7 "?" )`,
		`)`,
	}, "\n")
	got := render(t, root,
		renderer.WithStyle(renderer.ParenIndent),
		renderer.WithVocabulary(reg.Lookup("ExprLexer", "ExprParser")),
	)
	if got != want {
		t.Errorf("Render:\ngot\n%s\nwant\n%s", got, want)
	}

	// another grammar in the same process does not see these names
	got = render(t, root,
		renderer.WithStyle(renderer.Antlr),
		renderer.WithVocabulary(reg.Lookup("OtherLexer", "OtherParser")),
	)
	if want := `(0 (1 a) EOF ?)`; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_DeepTree(t *testing.T) {
	const depth = 100_000
	var n trash.Node = elem("leaf", text("x"))
	for i := 0; i < depth; i++ {
		n = elem("e", n)
	}
	got := render(t, n, renderer.WithStyle(renderer.Antlr))
	if !strings.HasPrefix(got, "(e (e ") || !strings.HasSuffix(got, "x))") {
		t.Errorf("Render: unexpected output around the edges")
	}
}

func TestRender_Nil(t *testing.T) {
	r, err := renderer.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = r.Render(nil)
	var re *trash.RenderError
	if !errors.As(err, &re) {
		t.Fatalf("Render(nil) err = %v, want *trash.RenderError", err)
	}
}

func TestRenderSet(t *testing.T) {
	r, err := renderer.New(renderer.WithStyle(renderer.Antlr), renderer.WithPrefix("f: "))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	set := &trash.ParsingResultSet{FileName: "f", Nodes: []trash.Node{sample(), elem("x", elem("Y", text("y")))}}
	var buf bytes.Buffer
	if err := r.RenderSet(&buf, set); err != nil {
		t.Fatalf("RenderSet: %v", err)
	}
	if got, want := buf.String(), "f: (expr 1 + (atom 2))\nf: (x y)\n"; got != want {
		t.Errorf("RenderSet = %q, want %q", got, want)
	}
}

func TestNew_UnknownStyle(t *testing.T) {
	if _, err := renderer.New(renderer.WithStyle(renderer.Style(42))); err == nil {
		t.Fatal("New: want error for unknown style")
	}
}
