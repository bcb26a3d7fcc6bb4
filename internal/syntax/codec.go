package syntax

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"csfmt/internal/source"
	"csfmt/internal/token"
)

// Current schema version - increment when the dump format changes.
const treeSchemaVersion uint16 = 1

type triviaDump struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

type tokenDump struct {
	Kind    uint8
	Start   uint32
	End     uint32
	Text    string
	Zero    bool
	Missing bool
	Leading []triviaDump
}

type nodeDump struct {
	Kind   uint8
	Tokens []uint32 // interleaved child encoding, see childDump
	Nodes  []uint32
	Order  []bool // true = next entry from Tokens, false = from Nodes
}

type treeDump struct {
	Schema uint16
	File   uint32
	Root   uint32
	Tokens []tokenDump
	Nodes  []nodeDump
}

// Encode serializes a tree into the versioned msgpack dump format read back
// by Decode. Parent links are not stored; they are rebuilt on decode.
func Encode(t *Tree) ([]byte, error) {
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   uint32(t.root),
	}
	if first := t.Token(1); first != nil {
		dump.File = uint32(first.Span.File)
	}

	dump.Tokens = make([]tokenDump, 0, t.tokens.Len())
	for _, tok := range t.tokens.Slice() {
		td := tokenDump{
			Kind:    uint8(tok.Kind),
			Start:   tok.Span.Start,
			End:     tok.Span.End,
			Text:    tok.Text,
			Zero:    tok.ZeroWidth,
			Missing: tok.Missing,
		}
		for _, tr := range tok.Leading {
			td.Leading = append(td.Leading, triviaDump{
				Kind:  uint8(tr.Kind),
				Start: tr.Span.Start,
				End:   tr.Span.End,
				Text:  tr.Text,
			})
		}
		dump.Tokens = append(dump.Tokens, td)
	}

	dump.Nodes = make([]nodeDump, 0, t.nodes.Len())
	for _, n := range t.nodes.Slice() {
		nd := nodeDump{Kind: uint8(n.Kind)}
		for _, c := range n.Children {
			if c.IsToken() {
				nd.Tokens = append(nd.Tokens, uint32(c.Token))
				nd.Order = append(nd.Order, true)
			} else {
				nd.Nodes = append(nd.Nodes, uint32(c.Node))
				nd.Order = append(nd.Order, false)
			}
		}
		dump.Nodes = append(dump.Nodes, nd)
	}

	return msgpack.Marshal(&dump)
}

// Decode deserializes a tree dump, validating schema version, index ranges,
// parent uniqueness, and that every node hangs off the root. Structural
// invariants are enforced here, at tree construction, so the policies
// downstream can assume a regular shape.
func Decode(data []byte) (*Tree, error) {
	var dump treeDump
	if err := msgpack.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("syntax: decode tree dump: %w", err)
	}
	if dump.Schema != treeSchemaVersion {
		return nil, fmt.Errorf("syntax: tree dump schema %d, want %d", dump.Schema, treeSchemaVersion)
	}

	tokenCount, err := safecast.Conv[uint32](len(dump.Tokens))
	if err != nil {
		return nil, fmt.Errorf("syntax: token count: %w", err)
	}
	nodeCount, err := safecast.Conv[uint32](len(dump.Nodes))
	if err != nil {
		return nil, fmt.Errorf("syntax: node count: %w", err)
	}

	file := source.FileID(dump.File)
	tokens := NewArena[token.Token](uint(len(dump.Tokens)))
	for _, td := range dump.Tokens {
		tok := token.Token{
			Kind:      token.Kind(td.Kind),
			Span:      source.Span{File: file, Start: td.Start, End: td.End},
			Text:      td.Text,
			ZeroWidth: td.Zero,
			Missing:   td.Missing,
		}
		for _, tr := range td.Leading {
			tok.Leading = append(tok.Leading, token.Trivia{
				Kind: token.TriviaKind(tr.Kind),
				Span: source.Span{File: file, Start: tr.Start, End: tr.End},
				Text: tr.Text,
			})
		}
		tokens.Allocate(tok)
	}

	nodes := NewArena[Node](uint(len(dump.Nodes)))
	for i, nd := range dump.Nodes {
		if len(nd.Order) != len(nd.Tokens)+len(nd.Nodes) {
			return nil, fmt.Errorf("syntax: node %d: malformed child encoding", i+1)
		}
		children := make([]Child, 0, len(nd.Order))
		ti, ni := 0, 0
		for _, isToken := range nd.Order {
			if isToken {
				id := nd.Tokens[ti]
				ti++
				if id == 0 || id > tokenCount {
					return nil, fmt.Errorf("syntax: node %d: token child %d out of range", i+1, id)
				}
				children = append(children, Tok(TokenID(id)))
			} else {
				id := nd.Nodes[ni]
				ni++
				if id == 0 || id > nodeCount {
					return nil, fmt.Errorf("syntax: node %d: node child %d out of range", i+1, id)
				}
				children = append(children, Sub(NodeID(id)))
			}
		}
		nodes.Allocate(Node{Kind: NodeKind(nd.Kind), Children: children})
	}

	// Rebuild parent links; a node adopted twice means the dump is not a tree.
	for i, n := range nodes.Slice() {
		parent := NodeID(uint32(i) + 1)
		for _, c := range n.Children {
			if c.IsToken() {
				continue
			}
			child := nodes.Get(uint32(c.Node))
			if child.Parent.IsValid() {
				return nil, fmt.Errorf("syntax: node %d has two parents", c.Node)
			}
			child.Parent = parent
		}
	}

	root := NodeID(dump.Root)
	if uint32(root) > nodeCount {
		return nil, fmt.Errorf("syntax: root %d out of range", dump.Root)
	}
	if nodeCount > 0 && !root.IsValid() {
		return nil, fmt.Errorf("syntax: dump has %d nodes but no root", nodeCount)
	}

	// Unique parents alone do not rule out a detached cycle, and the token
	// queries recurse through children without a visited set. Walk from the
	// root so only genuine trees get through.
	if nodeCount > 0 {
		visited := make([]bool, nodeCount+1)
		visited[root] = true
		reached := uint32(1)
		stack := []NodeID{root}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range nodes.Get(uint32(id)).Children {
				if c.IsToken() {
					continue
				}
				if visited[c.Node] {
					return nil, fmt.Errorf("syntax: node %d reached twice from root", c.Node)
				}
				visited[c.Node] = true
				reached++
				stack = append(stack, c.Node)
			}
		}
		if reached != nodeCount {
			return nil, fmt.Errorf("syntax: %d node(s) unreachable from root", nodeCount-reached)
		}
	}

	return &Tree{tokens: tokens, nodes: nodes, root: root}, nil
}
