package suppress

import (
	"csfmt/internal/config"
	"csfmt/internal/syntax"
)

// Rule emits the suppression spans that keep authored line layout intact:
// per-construct spans, the initializer spans, and the bare-statement span.
// Braces is the companion brace policy; it is a separate link that Rule
// invokes at a fixed point between the initializer and bare-statement
// passes, because downstream arbitration is order-sensitive.
type Rule struct {
	Braces Policy
}

// NewRule returns a Rule wired with the default brace policy.
func NewRule() *Rule {
	return &Rule{Braces: BracePolicy{}}
}

// SuppressSpans implements Policy. The chained policies run first so their
// records keep their position in the accumulator; then, in fixed order:
// initializer spans, brace spans, the bare-statement span, and the
// per-construct table.
func (r *Rule) SuppressSpans(list *List, tree *syntax.Tree, node syntax.NodeID, trailing syntax.TokenID, opts config.Formatting, next Next) {
	if next != nil {
		next(list)
	}

	r.addInitializerSpans(list, tree, node)
	if r.Braces != nil {
		r.Braces.SuppressSpans(list, tree, node, trailing, opts, nil)
	}
	r.addStatementSpan(list, tree, node)
	r.addConstructSpans(list, tree, node)
}

// addStatementSpan keeps any non-compound statement on its authored single
// line. Blocks are excluded: their interior belongs to the brace policy, and
// constraining them here would fight it.
func (r *Rule) addStatementSpan(list *List, tree *syntax.Tree, node syntax.NodeID) {
	kind := tree.Kind(node)
	if !kind.IsStatement() || kind == syntax.KindBlock {
		return
	}
	list.Add(tree,
		tree.FirstToken(node, true),
		tree.LastToken(node, true),
		PreserveSingleLine)
}

// addInitializerSpans handles the two initializer cases. They are disjoint
// per node: the literal case fires on the initializer node itself, the
// creation case on the owning creation expression.
func (r *Rule) addInitializerSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	switch tree.Kind(node) {
	case syntax.KindArrayInitializer, syntax.KindCollectionInitializer:
		// A literal split across lines by the author keeps its interior
		// verbatim; a single-line literal is left to later passes. The span
		// starts one token before the open brace so the solver sees the
		// brace's own line position.
		open := tree.FirstToken(node, true)
		closing := tree.LastToken(node, true)
		prev := tree.TokenBefore(open)
		if !tree.SpanHasNewline(prev, closing, false) {
			return
		}
		list.Add(tree, prev, closing, PreserveMultiLine)

	case syntax.KindObjectCreationExpression,
		syntax.KindImplicitObjectCreationExpression,
		syntax.KindArrayCreationExpression,
		syntax.KindImplicitArrayCreationExpression:
		init := tree.ChildNodeWhere(node, syntax.NodeKind.IsInitializer)
		if !init.IsValid() {
			return
		}
		r.addElementwiseSpans(list, tree, node, tree.ChildNodes(init))

	case syntax.KindAnonymousObjectCreationExpression:
		r.addElementwiseSpans(list, tree, node,
			tree.ChildNodes(node, syntax.KindAnonymousObjectMember))
	}
}

// addElementwiseSpans lets a whole creation expression collapse as a unit
// while each multi-token element may still break internally without
// disturbing its siblings.
func (r *Rule) addElementwiseSpans(list *List, tree *syntax.Tree, whole syntax.NodeID, elements []syntax.NodeID) {
	list.Add(tree,
		tree.FirstToken(whole, true),
		tree.LastToken(whole, true),
		PreserveSingleLine)

	for _, el := range elements {
		first := tree.FirstToken(el, true)
		last := tree.LastToken(el, true)
		if first == last {
			continue
		}
		list.Add(tree, first, last, PreserveSingleLine)
	}
}
