package suppress

import (
	"csfmt/internal/config"
	"csfmt/internal/syntax"
	"csfmt/internal/token"
)

// BracePolicy is the sibling policy that keeps matched braces of
// brace-delimited bodies on one authored line. Rule composes with it at a
// fixed chain position; it also satisfies Policy on its own so hosts can run
// it standalone.
type BracePolicy struct{}

// SuppressSpans implements Policy.
func (BracePolicy) SuppressSpans(list *List, tree *syntax.Tree, node syntax.NodeID, trailing syntax.TokenID, opts config.Formatting, next Next) {
	if next != nil {
		next(list)
	}

	switch kind := tree.Kind(node); {
	case kind == syntax.KindBlock,
		kind == syntax.KindObjectInitializer,
		kind == syntax.KindCollectionInitializer,
		kind == syntax.KindArrayInitializer:
		if !opts.KeepBlocksOnSingleLine {
			return
		}
	case kind == syntax.KindAccessorList:
		if !opts.KeepAccessorsOnSingleLine {
			return
		}
	default:
		return
	}

	open := tree.ChildToken(node, token.LBrace)
	closing := tree.ChildToken(node, token.RBrace)
	if !open.IsValid() || !closing.IsValid() {
		return
	}
	if tree.Token(open).Missing || tree.Token(closing).Missing {
		return
	}
	list.Add(tree, open, closing, PreserveSingleLine)
}
