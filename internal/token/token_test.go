package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  Kind
		ok    bool
	}{
		{"if", KwIf, true},
		{"foreach", KwForeach, true},
		{"init", KwInit, true},
		{"readonly", KwReadonly, true},
		{"If", Invalid, false},
		{"whenever", Invalid, false},
		{"", Invalid, false},
	}
	for _, tc := range cases {
		kind, ok := LookupKeyword(tc.ident)
		if ok != tc.ok || (ok && kind != tc.kind) {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want %v, %v", tc.ident, kind, ok, tc.kind, tc.ok)
		}
	}
}

func TestKeywordKindsRoundTrip(t *testing.T) {
	// Every keyword in the table must classify as a keyword token and
	// stringify to its spelling.
	for spelling, kind := range keywords {
		tok := Token{Kind: kind}
		if !tok.IsKeyword() {
			t.Fatalf("%q (%v) not classified as keyword", spelling, kind)
		}
		if got := kind.String(); got != spelling {
			t.Fatalf("Kind(%q).String() = %q", spelling, got)
		}
	}
}

func TestTokenClassification(t *testing.T) {
	if !(Token{Kind: StringLit}).IsLiteral() {
		t.Fatal("StringLit must be a literal")
	}
	if !(Token{Kind: KwNull}).IsLiteral() {
		t.Fatal("null must be a literal")
	}
	if (Token{Kind: Ident}).IsLiteral() {
		t.Fatal("identifier is not a literal")
	}
	if !(Token{Kind: FatArrow}).IsPunctOrOp() {
		t.Fatal("=> must be punctuation")
	}
	if (Token{Kind: KwIf}).IsPunctOrOp() {
		t.Fatal("keyword is not punctuation")
	}
}

func TestPresent(t *testing.T) {
	if (Token{Kind: Semicolon, Missing: true}).Present() {
		t.Fatal("missing token must not be present")
	}
	if !(Token{Kind: Ident, ZeroWidth: true}).Present() {
		t.Fatal("zero-width token is still present unless missing")
	}
}

func TestTriviaHasNewline(t *testing.T) {
	cases := []struct {
		trivia Trivia
		want   bool
	}{
		{Trivia{Kind: TriviaSpace, Text: " "}, false},
		{Trivia{Kind: TriviaNewline, Text: "\n"}, true},
		{Trivia{Kind: TriviaElastic, Text: "\n"}, true},
		{Trivia{Kind: TriviaLineComment, Text: "// x"}, false},
		{Trivia{Kind: TriviaBlockComment, Text: "/* a\nb */"}, true},
	}
	for _, tc := range cases {
		if got := tc.trivia.HasNewline(); got != tc.want {
			t.Fatalf("HasNewline(%v %q) = %v, want %v", tc.trivia.Kind, tc.trivia.Text, got, tc.want)
		}
	}
}
