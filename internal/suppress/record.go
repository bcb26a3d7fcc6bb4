package suppress

import (
	"csfmt/internal/syntax"
)

// Mode tells the line-break solver what it may do with the layout inside a
// record's span.
type Mode uint8

const (
	// PreserveSingleLine: if the span was authored without a line break,
	// do not introduce one. Authored multi-line spans are unconstrained.
	PreserveSingleLine Mode = iota
	// PreserveSingleLineIgnoreElastic is PreserveSingleLine with elastic
	// (formatter-owned) trivia treated as absent by the single-line test.
	PreserveSingleLineIgnoreElastic
	// ForceSingleLine: collapse the span to one line regardless of how it
	// was authored.
	ForceSingleLine
	// PreserveMultiLine: if the span already contains a line break, keep
	// its internal layout exactly as authored. Single-line spans are
	// unconstrained.
	PreserveMultiLine
)

var modeNames = [...]string{
	PreserveSingleLine:              "PreserveSingleLine",
	PreserveSingleLineIgnoreElastic: "PreserveSingleLineIgnoreElastic",
	ForceSingleLine:                 "ForceSingleLine",
	PreserveMultiLine:               "PreserveMultiLine",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Invalid"
}

// Record constrains how later passes may change line breaks between two
// tokens.
type Record struct {
	Start syntax.TokenID
	End   syntax.TokenID
	Mode  Mode
}

// List is the ordered, append-only accumulator for one invocation of the
// policy chain. Records may duplicate and overlap; the solver arbitrates by
// nesting depth, so the only guarantee kept here is that each appended
// record is well-formed.
type List struct {
	recs []Record
}

func NewList() *List {
	return &List{}
}

// Records exposes the accumulated records in append order. READONLY.
func (l *List) Records() []Record {
	return l.recs
}

func (l *List) Len() int {
	return len(l.recs)
}

// Add appends a record after checking it is well-formed: both boundaries
// must exist, neither may be a missing placeholder, and the span must not
// invert. Ill-formed spans are skipped, never clamped.
func (l *List) Add(t *syntax.Tree, start, end syntax.TokenID, mode Mode) {
	if !start.IsValid() || !end.IsValid() {
		return
	}
	startTok := t.Token(start)
	endTok := t.Token(end)
	if startTok == nil || endTok == nil {
		return
	}
	if startTok.Missing || endTok.Missing {
		return
	}
	if startTok.Span.Start > endTok.Span.Start {
		return
	}
	l.recs = append(l.recs, Record{Start: start, End: end, Mode: mode})
}
