package token

import "csfmt/internal/source"

// TriviaKind classifies whitespace and comments attached to a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaElastic is spacing synthesized by earlier formatting passes.
	// It carries no author intent: single-line tests that ignore elastic
	// trivia treat any line break inside it as absent.
	TriviaElastic
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaElastic:      "Elastic",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "Invalid"
}

// Trivia is a single run of whitespace or comment text preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// HasNewline reports whether the trivia contains a line break.
func (t Trivia) HasNewline() bool {
	if t.Kind == TriviaNewline {
		return true
	}
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			return true
		}
	}
	return false
}
