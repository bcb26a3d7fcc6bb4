package syntax

// NodeKind identifies the grammatical form a node represents. The set is
// closed: dispatch in the suppression engine switches over it exhaustively.
type NodeKind uint8

const (
	// KindInvalid indicates an erroneous node.
	KindInvalid NodeKind = iota
	// KindCompilationUnit is the root of a parsed file.
	KindCompilationUnit

	// Statements.

	KindBlock
	KindExpressionStatement
	KindLocalDeclarationStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindEmptyStatement
	KindIfStatement
	KindDoStatement
	KindWhileStatement
	KindForStatement
	KindForeachStatement
	KindSwitchStatement
	KindTryStatement
	KindLocalFunctionStatement

	// Clauses and sub-structure.

	KindElseClause
	KindCatchClause
	KindFinallyClause
	KindSwitchSection
	KindCaseSwitchLabel
	KindCasePatternSwitchLabel
	KindDefaultSwitchLabel
	KindConstructorInitializer
	KindAccessorList
	KindAccessorDeclaration
	KindAttributeList
	KindAttribute
	KindParameterList
	KindParameter
	KindArgumentList
	KindArgument
	KindEqualsValueClause
	KindInterpolation

	// Member declarations.

	KindClassDeclaration
	KindStructDeclaration
	KindFieldDeclaration
	KindMethodDeclaration
	KindPropertyDeclaration
	KindConstructorDeclaration
	KindEventDeclaration

	// Expressions.

	KindIdentifierName
	KindLiteralExpression
	KindMemberAccessExpression
	KindInvocationExpression
	KindAssignmentExpression
	KindBinaryExpression
	KindObjectCreationExpression
	KindImplicitObjectCreationExpression
	KindArrayCreationExpression
	KindImplicitArrayCreationExpression
	KindAnonymousObjectCreationExpression
	KindAnonymousObjectMember
	KindObjectInitializer
	KindCollectionInitializer
	KindArrayInitializer
	KindSwitchExpression
	KindSwitchExpressionArm
	KindIsPatternExpression
	KindInterpolatedString
	KindSimpleLambda
	KindParenthesizedLambda
	KindAnonymousMethod

	// Patterns.

	KindRecursivePattern
	KindPositionalPatternClause
	KindPropertyPatternClause
	KindConstantPattern
	KindDeclarationPattern
	KindVarPattern
	KindDiscardPattern
	KindSubpattern
)

var nodeKindNames = map[NodeKind]string{
	KindInvalid:                           "Invalid",
	KindCompilationUnit:                   "CompilationUnit",
	KindBlock:                             "Block",
	KindExpressionStatement:               "ExpressionStatement",
	KindLocalDeclarationStatement:         "LocalDeclarationStatement",
	KindReturnStatement:                   "ReturnStatement",
	KindBreakStatement:                    "BreakStatement",
	KindContinueStatement:                 "ContinueStatement",
	KindEmptyStatement:                    "EmptyStatement",
	KindIfStatement:                       "IfStatement",
	KindDoStatement:                       "DoStatement",
	KindWhileStatement:                    "WhileStatement",
	KindForStatement:                      "ForStatement",
	KindForeachStatement:                  "ForeachStatement",
	KindSwitchStatement:                   "SwitchStatement",
	KindTryStatement:                      "TryStatement",
	KindLocalFunctionStatement:            "LocalFunctionStatement",
	KindElseClause:                        "ElseClause",
	KindCatchClause:                       "CatchClause",
	KindFinallyClause:                     "FinallyClause",
	KindSwitchSection:                     "SwitchSection",
	KindCaseSwitchLabel:                   "CaseSwitchLabel",
	KindCasePatternSwitchLabel:            "CasePatternSwitchLabel",
	KindDefaultSwitchLabel:                "DefaultSwitchLabel",
	KindConstructorInitializer:            "ConstructorInitializer",
	KindAccessorList:                      "AccessorList",
	KindAccessorDeclaration:               "AccessorDeclaration",
	KindAttributeList:                     "AttributeList",
	KindAttribute:                         "Attribute",
	KindParameterList:                     "ParameterList",
	KindParameter:                         "Parameter",
	KindArgumentList:                      "ArgumentList",
	KindArgument:                          "Argument",
	KindEqualsValueClause:                 "EqualsValueClause",
	KindInterpolation:                     "Interpolation",
	KindClassDeclaration:                  "ClassDeclaration",
	KindStructDeclaration:                 "StructDeclaration",
	KindFieldDeclaration:                  "FieldDeclaration",
	KindMethodDeclaration:                 "MethodDeclaration",
	KindPropertyDeclaration:               "PropertyDeclaration",
	KindConstructorDeclaration:            "ConstructorDeclaration",
	KindEventDeclaration:                  "EventDeclaration",
	KindIdentifierName:                    "IdentifierName",
	KindLiteralExpression:                 "LiteralExpression",
	KindMemberAccessExpression:            "MemberAccessExpression",
	KindInvocationExpression:              "InvocationExpression",
	KindAssignmentExpression:              "AssignmentExpression",
	KindBinaryExpression:                  "BinaryExpression",
	KindObjectCreationExpression:          "ObjectCreationExpression",
	KindImplicitObjectCreationExpression:  "ImplicitObjectCreationExpression",
	KindArrayCreationExpression:           "ArrayCreationExpression",
	KindImplicitArrayCreationExpression:   "ImplicitArrayCreationExpression",
	KindAnonymousObjectCreationExpression: "AnonymousObjectCreationExpression",
	KindAnonymousObjectMember:             "AnonymousObjectMember",
	KindObjectInitializer:                 "ObjectInitializer",
	KindCollectionInitializer:             "CollectionInitializer",
	KindArrayInitializer:                  "ArrayInitializer",
	KindSwitchExpression:                  "SwitchExpression",
	KindSwitchExpressionArm:               "SwitchExpressionArm",
	KindIsPatternExpression:               "IsPatternExpression",
	KindInterpolatedString:                "InterpolatedString",
	KindSimpleLambda:                      "SimpleLambda",
	KindParenthesizedLambda:               "ParenthesizedLambda",
	KindAnonymousMethod:                   "AnonymousMethod",
	KindRecursivePattern:                  "RecursivePattern",
	KindPositionalPatternClause:           "PositionalPatternClause",
	KindPropertyPatternClause:             "PropertyPatternClause",
	KindConstantPattern:                   "ConstantPattern",
	KindDeclarationPattern:                "DeclarationPattern",
	KindVarPattern:                        "VarPattern",
	KindDiscardPattern:                    "DiscardPattern",
	KindSubpattern:                        "Subpattern",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Invalid"
}

// IsStatement reports whether the kind is a statement construct.
// Blocks count: callers that need to exclude compound statements compare
// against KindBlock themselves.
func (k NodeKind) IsStatement() bool {
	switch k {
	case KindBlock, KindExpressionStatement, KindLocalDeclarationStatement,
		KindReturnStatement, KindBreakStatement, KindContinueStatement,
		KindEmptyStatement, KindIfStatement, KindDoStatement, KindWhileStatement,
		KindForStatement, KindForeachStatement, KindSwitchStatement,
		KindTryStatement, KindLocalFunctionStatement:
		return true
	default:
		return false
	}
}

// IsMemberDeclaration reports whether the kind declares a type member
// (field, method, property, constructor, event) or a type itself.
func (k NodeKind) IsMemberDeclaration() bool {
	switch k {
	case KindClassDeclaration, KindStructDeclaration, KindFieldDeclaration,
		KindMethodDeclaration, KindPropertyDeclaration,
		KindConstructorDeclaration, KindEventDeclaration:
		return true
	default:
		return false
	}
}

// IsSwitchLabel reports whether the kind is one of the switch-section labels.
func (k NodeKind) IsSwitchLabel() bool {
	switch k {
	case KindCaseSwitchLabel, KindCasePatternSwitchLabel, KindDefaultSwitchLabel:
		return true
	default:
		return false
	}
}

// IsAnonymousFunction reports whether the kind is a lambda, anonymous
// method, or local function.
func (k NodeKind) IsAnonymousFunction() bool {
	switch k {
	case KindSimpleLambda, KindParenthesizedLambda, KindAnonymousMethod,
		KindLocalFunctionStatement:
		return true
	default:
		return false
	}
}

// IsInitializer reports whether the kind is a brace-delimited initializer
// list.
func (k NodeKind) IsInitializer() bool {
	switch k {
	case KindObjectInitializer, KindCollectionInitializer, KindArrayInitializer:
		return true
	default:
		return false
	}
}
