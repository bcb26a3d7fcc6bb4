package spanfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"csfmt/internal/suppress"
	"csfmt/internal/syntax"
	"csfmt/internal/token"
)

func buildReturnTree(t *testing.T) (*syntax.Tree, syntax.TokenID, syntax.TokenID) {
	t.Helper()
	b := syntax.NewBuilder(syntax.Hints{})
	ret := b.Token(token.KwReturn, "return")
	x := b.Token(token.Ident, "x")
	semi := b.TokenAdj(token.Semicolon, ";")
	stmt := b.Node(syntax.KindReturnStatement, syntax.Tok(ret), syntax.Tok(x), syntax.Tok(semi))
	return b.Build(stmt), ret, semi
}

func TestExcerpt(t *testing.T) {
	tree, ret, semi := buildReturnTree(t)

	if got := Excerpt(tree, ret, semi); got != "return x;" {
		t.Fatalf("Excerpt = %q", got)
	}
	if got := Excerpt(tree, semi, ret); got != "" {
		t.Fatalf("inverted span Excerpt = %q, want empty", got)
	}
	if got := Excerpt(tree, syntax.NoTokenID, semi); got != "" {
		t.Fatalf("invalid span Excerpt = %q, want empty", got)
	}
}

func TestPrettyPlain(t *testing.T) {
	tree, ret, semi := buildReturnTree(t)
	records := []suppress.Record{{Start: ret, End: semi, Mode: suppress.PreserveSingleLine}}

	var buf bytes.Buffer
	Pretty(&buf, "a.cstree", tree, records, PrettyOpts{Color: false})
	out := buf.String()

	if !strings.Contains(out, "a.cstree") {
		t.Fatalf("missing path header:\n%s", out)
	}
	if !strings.Contains(out, suppress.PreserveSingleLine.String()) {
		t.Fatalf("missing mode column:\n%s", out)
	}
	if !strings.Contains(out, "return x;") {
		t.Fatalf("missing excerpt:\n%s", out)
	}
	if !strings.Contains(out, "1 record(s)") {
		t.Fatalf("missing summary:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain output contains escape codes:\n%q", out)
	}
}

func TestPrettyNoRecords(t *testing.T) {
	tree, _, _ := buildReturnTree(t)

	var buf bytes.Buffer
	Pretty(&buf, "a.cstree", tree, nil, PrettyOpts{})
	if !strings.Contains(buf.String(), "no suppression records") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestPrettyTruncatesExcerpt(t *testing.T) {
	tree, ret, semi := buildReturnTree(t)
	records := []suppress.Record{{Start: ret, End: semi, Mode: suppress.ForceSingleLine}}

	var buf bytes.Buffer
	Pretty(&buf, "a.cstree", tree, records, PrettyOpts{MaxExcerpt: 6})
	if !strings.Contains(buf.String(), "retur…") {
		t.Fatalf("excerpt not truncated:\n%s", buf.String())
	}
}

func TestJSONShape(t *testing.T) {
	tree, ret, semi := buildReturnTree(t)
	records := []suppress.Record{{Start: ret, End: semi, Mode: suppress.PreserveSingleLine}}

	var buf bytes.Buffer
	if err := JSON(&buf, "a.cstree", tree, records); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out FileJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Path != "a.cstree" || len(out.Records) != 1 {
		t.Fatalf("unexpected payload %+v", out)
	}
	rec := out.Records[0]
	if rec.Mode != suppress.PreserveSingleLine.String() {
		t.Fatalf("mode = %q", rec.Mode)
	}
	if rec.StartToken != uint32(ret) || rec.EndToken != uint32(semi) {
		t.Fatalf("token ids = %d..%d, want %d..%d", rec.StartToken, rec.EndToken, ret, semi)
	}
	if rec.Excerpt != "return x;" {
		t.Fatalf("excerpt = %q", rec.Excerpt)
	}
	// "return" starts after its leading space; ";" ends the statement.
	if rec.StartByte != 1 || rec.EndByte != 10 {
		t.Fatalf("byte range = %d..%d, want 1..10", rec.StartByte, rec.EndByte)
	}
	if rec.MultiLine {
		t.Fatal("single-line span reported as multi-line")
	}
}

func TestJSONMultiLineIgnoresElastic(t *testing.T) {
	b := syntax.NewBuilder(syntax.Hints{})
	a := b.Token(token.Ident, "a")
	c := b.TokenElastic(token.Ident, "b")
	node := b.Node(syntax.KindExpressionStatement, syntax.Tok(a), syntax.Tok(c))
	tree := b.Build(node)

	var buf bytes.Buffer
	records := []suppress.Record{
		{Start: a, End: c, Mode: suppress.PreserveSingleLine},
		{Start: a, End: c, Mode: suppress.PreserveSingleLineIgnoreElastic},
	}
	if err := JSON(&buf, "a.cstree", tree, records); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out FileJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Records[0].MultiLine {
		t.Fatal("elastic break must count for the plain mode")
	}
	if out.Records[1].MultiLine {
		t.Fatal("elastic break must not count for the ignore-elastic mode")
	}
}
