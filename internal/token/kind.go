package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwForeach represents the 'foreach' keyword.
	KwForeach // foreach
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwWhen represents the 'when' keyword.
	KwWhen // when
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwBase represents the 'base' keyword.
	KwBase // base
	// KwGet represents the contextual 'get' keyword.
	KwGet // get
	// KwSet represents the contextual 'set' keyword.
	KwSet // set
	// KwInit represents the contextual 'init' keyword.
	KwInit // init
	// KwAdd represents the contextual 'add' keyword.
	KwAdd // add
	// KwRemove represents the contextual 'remove' keyword.
	KwRemove // remove
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwInternal represents the 'internal' keyword.
	KwInternal // internal
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwReadonly represents the 'readonly' keyword.
	KwReadonly // readonly
	// KwDelegate represents the 'delegate' keyword.
	KwDelegate // delegate
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// CharLit represents a character literal token.
	CharLit
	// StringLit represents a string literal token.
	StringLit
	// InterpStart represents the opening delimiter of an interpolated string ($").
	InterpStart // $"
	// InterpText represents raw text inside an interpolated string.
	InterpText
	// InterpEnd represents the closing delimiter of an interpolated string.
	InterpEnd // "

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// Amp represents the ampersand operator token.
	Amp // &
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the member-access arrow token.
	Arrow // ->
	// FatArrow represents the lambda/arm arrow token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Underscore represents the discard token.
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwIf:        "if",
	KwElse:      "else",
	KwDo:        "do",
	KwWhile:     "while",
	KwFor:       "for",
	KwForeach:   "foreach",
	KwSwitch:    "switch",
	KwCase:      "case",
	KwDefault:   "default",
	KwTry:       "try",
	KwCatch:     "catch",
	KwFinally:   "finally",
	KwIs:        "is",
	KwWhen:      "when",
	KwNew:       "new",
	KwVar:       "var",
	KwReturn:    "return",
	KwBreak:     "break",
	KwContinue:  "continue",
	KwThis:      "this",
	KwBase:      "base",
	KwGet:       "get",
	KwSet:       "set",
	KwInit:      "init",
	KwAdd:       "add",
	KwRemove:    "remove",
	KwClass:     "class",
	KwStruct:    "struct",
	KwPublic:    "public",
	KwPrivate:   "private",
	KwProtected: "protected",
	KwInternal:  "internal",
	KwStatic:    "static",
	KwReadonly:  "readonly",
	KwDelegate:  "delegate",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNull:      "null",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	CharLit:     "CharLit",
	StringLit:   "StringLit",
	InterpStart: "InterpStart",
	InterpText:  "InterpText",
	InterpEnd:   "InterpEnd",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Assign:      "=",
	EqEq:        "==",
	Bang:        "!",
	BangEq:      "!=",
	Lt:          "<",
	Gt:          ">",
	Amp:         "&",
	AndAnd:      "&&",
	OrOr:        "||",
	Question:    "?",
	Colon:       ":",
	Semicolon:   ";",
	Comma:       ",",
	Dot:         ".",
	Arrow:       "->",
	FatArrow:    "=>",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
	Underscore:  "_",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}
