package syntax

import (
	"csfmt/internal/token"
)

// Child is one ordered child of a node: either a token or a sub-node.
// Exactly one of the two fields is set.
type Child struct {
	Token TokenID
	Node  NodeID
}

// Tok wraps a token ID as a child reference.
func Tok(id TokenID) Child { return Child{Token: id} }

// Sub wraps a node ID as a child reference.
func Sub(id NodeID) Child { return Child{Node: id} }

// IsToken reports whether the child references a token.
func (c Child) IsToken() bool { return c.Token.IsValid() }

// Node is one node of a syntax tree. Children are stored in source order.
// Parent is a non-owning back-reference into the same arena; the root has
// Parent == NoNodeID.
type Node struct {
	Kind     NodeKind
	Parent   NodeID
	Children []Child
}

// Tree is an immutable parsed file: a token arena in source order plus a
// node arena. Trees are built once (Builder or codec) and never mutated
// afterwards, so they are safe to share across goroutines.
type Tree struct {
	tokens *Arena[token.Token]
	nodes  *Arena[Node]
	root   NodeID
}

// Root returns the root node, normally a KindCompilationUnit.
func (t *Tree) Root() NodeID { return t.root }

// TokenCount returns the number of tokens in the tree.
func (t *Tree) TokenCount() uint32 { return t.tokens.Len() }

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() uint32 { return t.nodes.Len() }

// Token returns the token for id, or nil for NoTokenID.
func (t *Tree) Token(id TokenID) *token.Token {
	return t.tokens.Get(uint32(id))
}

// Node returns the node for id, or nil for NoNodeID.
func (t *Tree) Node(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Kind returns the node's kind, or KindInvalid for NoNodeID.
func (t *Tree) Kind(id NodeID) NodeKind {
	n := t.Node(id)
	if n == nil {
		return KindInvalid
	}
	return n.Kind
}

// Parent returns the node's parent, or NoNodeID for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNodeID
	}
	return n.Parent
}

// TokenBefore returns the token immediately preceding id in source order.
func (t *Tree) TokenBefore(id TokenID) TokenID {
	if id <= 1 {
		return NoTokenID
	}
	return id - 1
}

// TokenAfter returns the token immediately following id in source order,
// or NoTokenID at the end of the file.
func (t *Tree) TokenAfter(id TokenID) TokenID {
	if !id.IsValid() || uint32(id) >= t.tokens.Len() {
		return NoTokenID
	}
	return id + 1
}

// FirstToken returns the first token under id. When includeZeroWidth is
// false, zero-width tokens are skipped; with it set, synthesized placeholders
// count, which keeps span boundaries defined for trees in error-recovery
// state.
func (t *Tree) FirstToken(id NodeID, includeZeroWidth bool) TokenID {
	n := t.Node(id)
	if n == nil {
		return NoTokenID
	}
	for _, c := range n.Children {
		if c.IsToken() {
			if includeZeroWidth || !t.Token(c.Token).ZeroWidth {
				return c.Token
			}
			continue
		}
		if tok := t.FirstToken(c.Node, includeZeroWidth); tok.IsValid() {
			return tok
		}
	}
	return NoTokenID
}

// LastToken is the mirror of FirstToken.
func (t *Tree) LastToken(id NodeID, includeZeroWidth bool) TokenID {
	n := t.Node(id)
	if n == nil {
		return NoTokenID
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if c.IsToken() {
			if includeZeroWidth || !t.Token(c.Token).ZeroWidth {
				return c.Token
			}
			continue
		}
		if tok := t.LastToken(c.Node, includeZeroWidth); tok.IsValid() {
			return tok
		}
	}
	return NoTokenID
}

// ChildToken returns the first direct child token whose kind is one of
// kinds, or NoTokenID.
func (t *Tree) ChildToken(id NodeID, kinds ...token.Kind) TokenID {
	n := t.Node(id)
	if n == nil {
		return NoTokenID
	}
	for _, c := range n.Children {
		if !c.IsToken() {
			continue
		}
		k := t.Token(c.Token).Kind
		for _, want := range kinds {
			if k == want {
				return c.Token
			}
		}
	}
	return NoTokenID
}

// ChildNode returns the first direct child node whose kind is one of kinds,
// or NoNodeID.
func (t *Tree) ChildNode(id NodeID, kinds ...NodeKind) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNodeID
	}
	for _, c := range n.Children {
		if c.IsToken() {
			continue
		}
		k := t.Kind(c.Node)
		for _, want := range kinds {
			if k == want {
				return c.Node
			}
		}
	}
	return NoNodeID
}

// ChildNodeWhere returns the first direct child node whose kind satisfies
// pred, or NoNodeID.
func (t *Tree) ChildNodeWhere(id NodeID, pred func(NodeKind) bool) NodeID {
	n := t.Node(id)
	if n == nil {
		return NoNodeID
	}
	for _, c := range n.Children {
		if c.IsToken() {
			continue
		}
		if pred(t.Kind(c.Node)) {
			return c.Node
		}
	}
	return NoNodeID
}

// ChildNodes returns every direct child node, filtered to kinds when any are
// given, in source order.
func (t *Tree) ChildNodes(id NodeID, kinds ...NodeKind) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	for _, c := range n.Children {
		if c.IsToken() {
			continue
		}
		if len(kinds) == 0 {
			out = append(out, c.Node)
			continue
		}
		k := t.Kind(c.Node)
		for _, want := range kinds {
			if k == want {
				out = append(out, c.Node)
				break
			}
		}
	}
	return out
}

// SpanHasNewline reports whether any token in [start, end] or the leading
// trivia strictly inside the range contains a line break. Trivia leading the
// start token itself is outside the range and not consulted. When
// ignoreElastic is set, elastic trivia is treated as absent.
func (t *Tree) SpanHasNewline(start, end TokenID, ignoreElastic bool) bool {
	if !start.IsValid() || !end.IsValid() || start > end {
		return false
	}
	for id := start + 1; id <= end; id++ {
		tok := t.Token(id)
		if tok == nil {
			return false
		}
		for _, tr := range tok.Leading {
			if ignoreElastic && tr.Kind == token.TriviaElastic {
				continue
			}
			if tr.HasNewline() {
				return true
			}
		}
	}
	return false
}
