package token

import (
	"csfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
//
// ZeroWidth marks tokens synthesized during error recovery that occupy no
// source text. Missing marks required tokens that were absent from the
// source; the parser inserts them as empty placeholders so the tree keeps
// its regular shape. A missing token is always zero-width; a zero-width
// token is not necessarily missing.
type Token struct {
	Kind      Kind
	Span      source.Span
	Text      string
	Leading   []Trivia
	ZeroWidth bool
	Missing   bool
}

// Present reports whether the token came from real source text, i.e. it is
// neither a missing placeholder nor otherwise synthesized.
func (t Token) Present() bool {
	return !t.Missing
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIf, KwElse, KwDo, KwWhile, KwFor, KwForeach, KwSwitch, KwCase, KwDefault,
		KwTry, KwCatch, KwFinally, KwIs, KwWhen, KwNew, KwVar, KwReturn, KwBreak,
		KwContinue, KwThis, KwBase, KwGet, KwSet, KwInit, KwAdd, KwRemove, KwClass,
		KwStruct, KwPublic, KwPrivate, KwProtected, KwInternal, KwStatic, KwReadonly,
		KwDelegate, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Assign, EqEq, Bang, BangEq, Lt, Gt, Amp, AndAnd,
		OrOr, Question, Colon, Semicolon, Comma, Dot, Arrow, FatArrow, LParen, RParen,
		LBrace, RBrace, LBracket, RBracket, Underscore:
		return true
	default:
		return false
	}
}
