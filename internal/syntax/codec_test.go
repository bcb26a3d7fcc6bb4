package syntax

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"csfmt/internal/token"
)

func buildSampleTree() (*Tree, NodeID) {
	b := NewBuilder(Hints{})
	ifKw := b.Token(token.KwIf, "if")
	lp := b.Token(token.LParen, "(")
	x := b.TokenAdj(token.Ident, "x")
	cond := b.Node(KindIdentifierName, Tok(x))
	rp := b.TokenAdj(token.RParen, ")")
	ret := b.TokenNL(token.KwReturn, "return")
	semi := b.MissingToken(token.Semicolon)
	thenStmt := b.Node(KindReturnStatement, Tok(ret), Tok(semi))
	ifStmt := b.Node(KindIfStatement, Tok(ifKw), Tok(lp), Sub(cond), Tok(rp), Sub(thenStmt))
	return b.Build(ifStmt), ifStmt
}

func TestCodecRoundTrip(t *testing.T) {
	tree, root := buildSampleTree()

	data, err := Encode(tree)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.Root() != root {
		t.Fatalf("root = %d, want %d", decoded.Root(), root)
	}
	if decoded.TokenCount() != tree.TokenCount() || decoded.NodeCount() != tree.NodeCount() {
		t.Fatalf("counts changed: %d/%d tokens, %d/%d nodes",
			decoded.TokenCount(), tree.TokenCount(), decoded.NodeCount(), tree.NodeCount())
	}

	// Structure that the policies rely on must survive: kinds, parent
	// links, token flags and trivia.
	for id := NodeID(1); uint32(id) <= tree.NodeCount(); id++ {
		if decoded.Kind(id) != tree.Kind(id) {
			t.Fatalf("node %d kind = %v, want %v", id, decoded.Kind(id), tree.Kind(id))
		}
		if decoded.Parent(id) != tree.Parent(id) {
			t.Fatalf("node %d parent = %d, want %d", id, decoded.Parent(id), tree.Parent(id))
		}
	}
	for id := TokenID(1); uint32(id) <= tree.TokenCount(); id++ {
		want, got := tree.Token(id), decoded.Token(id)
		if got.Kind != want.Kind || got.Missing != want.Missing || got.ZeroWidth != want.ZeroWidth {
			t.Fatalf("token %d = %+v, want %+v", id, got, want)
		}
		if len(got.Leading) != len(want.Leading) {
			t.Fatalf("token %d trivia count = %d, want %d", id, len(got.Leading), len(want.Leading))
		}
	}
}

func TestDecodeRejectsWrongSchema(t *testing.T) {
	data, err := msgpack.Marshal(&treeDump{Schema: treeSchemaVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestDecodeRejectsOutOfRangeChild(t *testing.T) {
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   1,
		Tokens: []tokenDump{{Kind: uint8(token.Ident), Text: "x"}},
		Nodes: []nodeDump{{
			Kind:   uint8(KindIdentifierName),
			Tokens: []uint32{2}, // only one token exists
			Order:  []bool{true},
		}},
	}
	data, err := msgpack.Marshal(&dump)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestDecodeRejectsDetachedCycle(t *testing.T) {
	// Nodes 2 and 3 adopt each other: each ends up with exactly one parent,
	// but neither hangs off the root, and the token queries would recurse
	// through the cycle forever.
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   1,
		Tokens: []tokenDump{{Kind: uint8(token.Ident), Text: "x"}},
		Nodes: []nodeDump{
			{Kind: uint8(KindIdentifierName), Tokens: []uint32{1}, Order: []bool{true}},
			{Kind: uint8(KindBlock), Nodes: []uint32{3}, Order: []bool{false}},
			{Kind: uint8(KindBlock), Nodes: []uint32{2}, Order: []bool{false}},
		},
	}
	data, err := msgpack.Marshal(&dump)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected unreachable-node error")
	}
}

func TestDecodeRejectsAdoptedRoot(t *testing.T) {
	// A descendant adopting the root back is a cycle through the root; the
	// parent-uniqueness check alone cannot see it.
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   1,
		Tokens: []tokenDump{{Kind: uint8(token.Ident), Text: "x"}},
		Nodes: []nodeDump{
			{Kind: uint8(KindBlock), Nodes: []uint32{2}, Order: []bool{false}},
			{Kind: uint8(KindBlock), Nodes: []uint32{1}, Order: []bool{false}},
		},
	}
	data, err := msgpack.Marshal(&dump)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected cycle error")
	}
}

func TestDecodeRejectsOrphanNode(t *testing.T) {
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   1,
		Tokens: []tokenDump{{Kind: uint8(token.Ident), Text: "x"}},
		Nodes: []nodeDump{
			{Kind: uint8(KindIdentifierName), Tokens: []uint32{1}, Order: []bool{true}},
			{Kind: uint8(KindIdentifierName), Tokens: []uint32{1}, Order: []bool{true}},
		},
	}
	data, err := msgpack.Marshal(&dump)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected unreachable-node error")
	}
}

func TestDecodeRejectsMissingRoot(t *testing.T) {
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   0,
		Tokens: []tokenDump{{Kind: uint8(token.Ident), Text: "x"}},
		Nodes: []nodeDump{
			{Kind: uint8(KindIdentifierName), Tokens: []uint32{1}, Order: []bool{true}},
		},
	}
	data, err := msgpack.Marshal(&dump)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected missing-root error")
	}
}

func TestDecodeRejectsSharedChild(t *testing.T) {
	dump := treeDump{
		Schema: treeSchemaVersion,
		Root:   3,
		Tokens: []tokenDump{{Kind: uint8(token.Ident), Text: "x"}},
		Nodes: []nodeDump{
			{Kind: uint8(KindIdentifierName), Tokens: []uint32{1}, Order: []bool{true}},
			{Kind: uint8(KindExpressionStatement), Nodes: []uint32{1}, Order: []bool{false}},
			{Kind: uint8(KindBlock), Nodes: []uint32{1, 2}, Order: []bool{false, false}},
		},
	}
	data, err := msgpack.Marshal(&dump)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); err == nil {
		t.Fatal("expected two-parents error")
	}
}
