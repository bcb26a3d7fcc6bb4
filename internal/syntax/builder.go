package syntax

import (
	"csfmt/internal/source"
	"csfmt/internal/token"
)

// Builder constructs a Tree bottom-up. Tokens must be created in source
// order; nodes take their children (tokens or previously built nodes) in
// source order. The builder assigns byte positions from a running offset so
// span ordering mirrors creation order.
type Builder struct {
	tokens *Arena[token.Token]
	nodes  *Arena[Node]
	file   source.FileID
	pos    uint32
}

// Hints sizes the builder's arenas up front.
type Hints struct {
	Tokens uint
	Nodes  uint
}

func NewBuilder(hints Hints) *Builder {
	return &Builder{
		tokens: NewArena[token.Token](hints.Tokens),
		nodes:  NewArena[Node](hints.Nodes),
		file:   1,
	}
}

func (b *Builder) lead(kind token.TriviaKind, text string) token.Trivia {
	start := b.pos
	b.pos += uint32(len(text))
	return token.Trivia{
		Kind: kind,
		Span: source.Span{File: b.file, Start: start, End: b.pos},
		Text: text,
	}
}

func (b *Builder) emit(kind token.Kind, text string, leading []token.Trivia, zeroWidth, missing bool) TokenID {
	start := b.pos
	b.pos += uint32(len(text))
	return TokenID(b.tokens.Allocate(token.Token{
		Kind:      kind,
		Span:      source.Span{File: b.file, Start: start, End: b.pos},
		Text:      text,
		Leading:   leading,
		ZeroWidth: zeroWidth,
		Missing:   missing,
	}))
}

// Token appends a token preceded by a single space.
func (b *Builder) Token(kind token.Kind, text string) TokenID {
	return b.emit(kind, text, []token.Trivia{b.lead(token.TriviaSpace, " ")}, false, false)
}

// TokenAdj appends a token with no leading trivia.
func (b *Builder) TokenAdj(kind token.Kind, text string) TokenID {
	return b.emit(kind, text, nil, false, false)
}

// TokenNL appends a token preceded by a line break.
func (b *Builder) TokenNL(kind token.Kind, text string) TokenID {
	return b.emit(kind, text, []token.Trivia{b.lead(token.TriviaNewline, "\n")}, false, false)
}

// TokenElastic appends a token preceded by an elastic line break (formatter-
// owned spacing with no author intent).
func (b *Builder) TokenElastic(kind token.Kind, text string) TokenID {
	return b.emit(kind, text, []token.Trivia{b.lead(token.TriviaElastic, "\n")}, false, false)
}

// MissingToken appends a placeholder for a required token absent from the
// source. Missing tokens are zero-width.
func (b *Builder) MissingToken(kind token.Kind) TokenID {
	return b.emit(kind, "", nil, true, true)
}

// ZeroWidthToken appends a synthesized token with no source text.
func (b *Builder) ZeroWidthToken(kind token.Kind) TokenID {
	return b.emit(kind, "", nil, true, false)
}

// Node allocates a node with the given children and wires parent links for
// its child nodes.
func (b *Builder) Node(kind NodeKind, children ...Child) NodeID {
	id := NodeID(b.nodes.Allocate(Node{
		Kind:     kind,
		Children: children,
	}))
	for _, c := range children {
		if c.IsToken() {
			continue
		}
		if child := b.nodes.Get(uint32(c.Node)); child != nil {
			child.Parent = id
		}
	}
	return id
}

// Build finalizes the tree with root as its root node. The builder must not
// be used afterwards.
func (b *Builder) Build(root NodeID) *Tree {
	return &Tree{
		tokens: b.tokens,
		nodes:  b.nodes,
		root:   root,
	}
}
