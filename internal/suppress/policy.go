package suppress

import (
	"csfmt/internal/config"
	"csfmt/internal/syntax"
)

// Next runs the rest of the policy chain against the same accumulator.
type Next func(list *List)

// Policy is one link of the suppression chain. Implementations must invoke
// next with the accumulator before appending their own records, so spans
// from policies further down the chain keep their relative order. trailing
// is the token that follows the node in source order (NoTokenID at end of
// file); it is chain context, not consumed by the policies in this package.
type Policy interface {
	SuppressSpans(list *List, tree *syntax.Tree, node syntax.NodeID, trailing syntax.TokenID, opts config.Formatting, next Next)
}

// Runner applies an ordered set of policies to one node. Policy i receives a
// next that runs policies i+1..n, so the records of the last policy land
// first and the first policy appends last.
type Runner struct {
	policies []Policy
}

func NewRunner(policies ...Policy) *Runner {
	return &Runner{policies: policies}
}

// Apply runs the chain for a single node. It is a pure function of the tree
// and node: the only effect is appending to list.
func (r *Runner) Apply(list *List, tree *syntax.Tree, node syntax.NodeID, trailing syntax.TokenID, opts config.Formatting) {
	r.applyFrom(0, list, tree, node, trailing, opts)
}

func (r *Runner) applyFrom(i int, list *List, tree *syntax.Tree, node syntax.NodeID, trailing syntax.TokenID, opts config.Formatting) {
	if i >= len(r.policies) {
		return
	}
	next := func(l *List) {
		r.applyFrom(i+1, l, tree, node, trailing, opts)
	}
	r.policies[i].SuppressSpans(list, tree, node, trailing, opts, next)
}

// ApplyAll runs the chain over every node of the tree in arena order,
// passing each node the token that follows it as trailing context.
func (r *Runner) ApplyAll(list *List, tree *syntax.Tree, opts config.Formatting) {
	for id := syntax.NodeID(1); uint32(id) <= tree.NodeCount(); id++ {
		last := tree.LastToken(id, true)
		trailing := tree.TokenAfter(last)
		r.Apply(list, tree, id, trailing, opts)
	}
}
