package syntax

import "testing"

func TestNodeKindClassifiers(t *testing.T) {
	cases := []struct {
		kind      NodeKind
		statement bool
		member    bool
		label     bool
		anon      bool
		init      bool
	}{
		{kind: KindBlock, statement: true},
		{kind: KindReturnStatement, statement: true},
		{kind: KindLocalFunctionStatement, statement: true, anon: true},
		{kind: KindFieldDeclaration, member: true},
		{kind: KindClassDeclaration, member: true},
		{kind: KindCaseSwitchLabel, label: true},
		{kind: KindCasePatternSwitchLabel, label: true},
		{kind: KindDefaultSwitchLabel, label: true},
		{kind: KindSimpleLambda, anon: true},
		{kind: KindAnonymousMethod, anon: true},
		{kind: KindArrayInitializer, init: true},
		{kind: KindObjectInitializer, init: true},
		{kind: KindIdentifierName},
		{kind: KindElseClause},
	}
	for _, tc := range cases {
		if got := tc.kind.IsStatement(); got != tc.statement {
			t.Errorf("%v.IsStatement() = %v, want %v", tc.kind, got, tc.statement)
		}
		if got := tc.kind.IsMemberDeclaration(); got != tc.member {
			t.Errorf("%v.IsMemberDeclaration() = %v, want %v", tc.kind, got, tc.member)
		}
		if got := tc.kind.IsSwitchLabel(); got != tc.label {
			t.Errorf("%v.IsSwitchLabel() = %v, want %v", tc.kind, got, tc.label)
		}
		if got := tc.kind.IsAnonymousFunction(); got != tc.anon {
			t.Errorf("%v.IsAnonymousFunction() = %v, want %v", tc.kind, got, tc.anon)
		}
		if got := tc.kind.IsInitializer(); got != tc.init {
			t.Errorf("%v.IsInitializer() = %v, want %v", tc.kind, got, tc.init)
		}
	}
}
