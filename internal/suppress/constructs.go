package suppress

import (
	"csfmt/internal/syntax"
	"csfmt/internal/token"
)

// addConstructSpans dispatches on the node's construct kind. The cases test
// disjoint kind sets, so the first match is the only match and exactly one
// arm fires per node.
func (r *Rule) addConstructSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	kind := tree.Kind(node)
	switch {
	case kind == syntax.KindIfStatement:
		r.addIfSpans(list, tree, node)

	case kind == syntax.KindRecursivePattern:
		r.addRecursivePatternSpans(list, tree, node)

	case kind == syntax.KindSwitchExpressionArm,
		kind == syntax.KindSwitchExpression,
		kind == syntax.KindCasePatternSwitchLabel:
		list.Add(tree,
			tree.FirstToken(node, true),
			tree.LastToken(node, true),
			PreserveSingleLine)

	case kind == syntax.KindIsPatternExpression:
		r.addIsPatternSpans(list, tree, node)

	case kind == syntax.KindConstructorInitializer:
		r.addConstructorInitializerSpan(list, tree, node)

	case kind == syntax.KindDoStatement:
		body := tree.ChildNodeWhere(node, syntax.NodeKind.IsStatement)
		list.Add(tree,
			tree.FirstToken(node, true),
			tree.LastToken(body, true),
			PreserveSingleLine)

	case kind.IsMemberDeclaration():
		r.addMemberDeclarationSpans(list, tree, node)

	case kind == syntax.KindAccessorDeclaration:
		kw := tree.ChildToken(node,
			token.KwGet, token.KwSet, token.KwInit, token.KwAdd, token.KwRemove)
		list.Add(tree, kw, tree.LastToken(node, true), PreserveSingleLine)

	case kind == syntax.KindSwitchSection:
		r.addSwitchSectionSpans(list, tree, node)

	case kind.IsAnonymousFunction():
		// Earlier passes may already have placed elastic breaks inside the
		// body; they must not defeat the single-line test.
		list.Add(tree,
			tree.FirstToken(node, true),
			tree.LastToken(node, true),
			PreserveSingleLineIgnoreElastic)

	case kind == syntax.KindParameter:
		r.addParameterSpan(list, tree, node)

	case kind == syntax.KindTryStatement:
		r.addGuardedBlockSpan(list, tree, node, token.KwTry)

	case kind == syntax.KindCatchClause:
		r.addGuardedBlockSpan(list, tree, node, token.KwCatch)

	case kind == syntax.KindFinallyClause:
		r.addGuardedBlockSpan(list, tree, node, token.KwFinally)

	case kind == syntax.KindInterpolatedString:
		list.Add(tree,
			tree.ChildToken(node, token.InterpStart),
			tree.ChildToken(node, token.InterpEnd),
			PreserveSingleLine)
	}
}

// addIfSpans spans the if-branch and, independently, the else-branch. Two
// records, so either branch may collapse without the other.
func (r *Rule) addIfSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	ifKw := tree.ChildToken(node, token.KwIf)
	thenStmt := tree.ChildNodeWhere(node, syntax.NodeKind.IsStatement)
	list.Add(tree, ifKw, tree.LastToken(thenStmt, true), PreserveSingleLine)

	elseClause := tree.ChildNode(node, syntax.KindElseClause)
	if !elseClause.IsValid() {
		return
	}
	elseKw := tree.ChildToken(elseClause, token.KwElse)
	elseStmt := tree.ChildNodeWhere(elseClause, syntax.NodeKind.IsStatement)
	list.Add(tree, elseKw, tree.LastToken(elseStmt, true), PreserveSingleLine)
}

// addRecursivePatternSpans covers deconstruction and property patterns.
// With a positional clause the parens bound the span; a trailing property
// clause widens it in a second record. A lone property clause spans its own
// braces.
func (r *Rule) addRecursivePatternSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	positional := tree.ChildNode(node, syntax.KindPositionalPatternClause)
	property := tree.ChildNode(node, syntax.KindPropertyPatternClause)

	if positional.IsValid() {
		open := tree.ChildToken(positional, token.LParen)
		closing := tree.ChildToken(positional, token.RParen)
		list.Add(tree, open, closing, PreserveSingleLine)
		if property.IsValid() {
			list.Add(tree, open, tree.LastToken(property, true), PreserveSingleLine)
		}
		return
	}
	if property.IsValid() {
		list.Add(tree,
			tree.ChildToken(property, token.LBrace),
			tree.ChildToken(property, token.RBrace),
			PreserveSingleLine)
	}
}

// addIsPatternSpans spans the whole test. For `x is Type { ... }` an extra
// span runs from the `is` keyword through the property clause: without a
// terminator on the same line, a following statement would otherwise read
// as adjoining the pattern. Deliberately narrow; do not generalize to other
// pattern shapes.
func (r *Rule) addIsPatternSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	list.Add(tree,
		tree.FirstToken(node, true),
		tree.LastToken(node, true),
		PreserveSingleLine)

	pattern := tree.ChildNode(node, syntax.KindRecursivePattern)
	if !pattern.IsValid() {
		return
	}
	property := tree.ChildNode(pattern, syntax.KindPropertyPatternClause)
	if !property.IsValid() {
		return
	}
	list.Add(tree,
		tree.ChildToken(node, token.KwIs),
		tree.LastToken(property, true),
		PreserveSingleLine)
}

// addConstructorInitializerSpan glues `: this(...)` / `: base(...)` to the
// constructor body, but only when the owning constructor actually has one.
func (r *Rule) addConstructorInitializerSpan(list *List, tree *syntax.Tree, node syntax.NodeID) {
	ctor := tree.Parent(node)
	if tree.Kind(ctor) != syntax.KindConstructorDeclaration {
		return
	}
	body := tree.ChildNode(ctor, syntax.KindBlock)
	if !body.IsValid() {
		return
	}
	list.Add(tree,
		tree.ChildToken(node, token.Colon),
		tree.LastToken(body, true),
		PreserveSingleLine)
}

// addMemberDeclarationSpans emits (a) the declaration without its leading
// attribute lists, (b) one span per attribute list through the declaration's
// end, so a fully attributed single-line member stays intact, and (c) for a
// property with both an initializer and accessors, a span that stops at the
// accessor list.
func (r *Rule) addMemberDeclarationSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	last := tree.LastToken(node, true)
	start := r.firstTokenAfterAttributes(tree, node)
	list.Add(tree, start, last, PreserveSingleLine)

	for _, attrList := range tree.ChildNodes(node, syntax.KindAttributeList) {
		list.Add(tree, tree.FirstToken(attrList, true), last, PreserveSingleLine)
	}

	if tree.Kind(node) != syntax.KindPropertyDeclaration {
		return
	}
	accessors := tree.ChildNode(node, syntax.KindAccessorList)
	initializer := tree.ChildNode(node, syntax.KindEqualsValueClause)
	if !accessors.IsValid() || !initializer.IsValid() {
		return
	}
	list.Add(tree, start, tree.LastToken(accessors, true), PreserveSingleLine)
}

// firstTokenAfterAttributes returns the first token of node once leading
// attribute lists are skipped.
func (r *Rule) firstTokenAfterAttributes(tree *syntax.Tree, node syntax.NodeID) syntax.TokenID {
	n := tree.Node(node)
	if n == nil {
		return syntax.NoTokenID
	}
	for _, c := range n.Children {
		if c.IsToken() {
			return c.Token
		}
		if tree.Kind(c.Node) == syntax.KindAttributeList {
			continue
		}
		if tok := tree.FirstToken(c.Node, true); tok.IsValid() {
			return tok
		}
	}
	return syntax.NoTokenID
}

// addSwitchSectionSpans keeps a single-label section whole. With several
// labels, each label but the last spans only itself; the statements belong
// visually to the final label, whose span runs to the end of the section.
func (r *Rule) addSwitchSectionSpans(list *List, tree *syntax.Tree, node syntax.NodeID) {
	var labels []syntax.NodeID
	for _, child := range tree.ChildNodes(node) {
		if tree.Kind(child).IsSwitchLabel() {
			labels = append(labels, child)
		}
	}

	if len(labels) < 2 {
		list.Add(tree,
			tree.FirstToken(node, true),
			tree.LastToken(node, true),
			PreserveSingleLine)
		return
	}

	for _, label := range labels[:len(labels)-1] {
		list.Add(tree,
			tree.FirstToken(label, true),
			tree.LastToken(label, true),
			PreserveSingleLine)
	}
	lastLabel := labels[len(labels)-1]
	list.Add(tree,
		tree.FirstToken(lastLabel, true),
		tree.LastToken(node, true),
		PreserveSingleLine)
}

// addParameterSpan collapses an attributed parameter unconditionally: an
// attribute split from its parameter never survives.
func (r *Rule) addParameterSpan(list *List, tree *syntax.Tree, node syntax.NodeID) {
	attrLists := tree.ChildNodes(node, syntax.KindAttributeList)
	if len(attrLists) == 0 {
		return
	}
	list.Add(tree,
		tree.FirstToken(attrLists[0], true),
		tree.LastToken(node, true),
		ForceSingleLine)
}

// addGuardedBlockSpan spans keyword..close-brace for try/catch/finally, but
// only when both ends survived parsing. A missing keyword or an unclosed
// block yields no record at all.
func (r *Rule) addGuardedBlockSpan(list *List, tree *syntax.Tree, node syntax.NodeID, kw token.Kind) {
	keyword := tree.ChildToken(node, kw)
	if !keyword.IsValid() || tree.Token(keyword).Missing {
		return
	}
	block := tree.ChildNode(node, syntax.KindBlock)
	if !block.IsValid() {
		return
	}
	closing := tree.ChildToken(block, token.RBrace)
	if !closing.IsValid() || tree.Token(closing).Missing {
		return
	}
	list.Add(tree, keyword, closing, PreserveSingleLine)
}
