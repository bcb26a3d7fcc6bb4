package token

var keywords = map[string]Kind{
	"if":        KwIf,
	"else":      KwElse,
	"do":        KwDo,
	"while":     KwWhile,
	"for":       KwFor,
	"foreach":   KwForeach,
	"switch":    KwSwitch,
	"case":      KwCase,
	"default":   KwDefault,
	"try":       KwTry,
	"catch":     KwCatch,
	"finally":   KwFinally,
	"is":        KwIs,
	"when":      KwWhen,
	"new":       KwNew,
	"var":       KwVar,
	"return":    KwReturn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"this":      KwThis,
	"base":      KwBase,
	"get":       KwGet,
	"set":       KwSet,
	"init":      KwInit,
	"add":       KwAdd,
	"remove":    KwRemove,
	"class":     KwClass,
	"struct":    KwStruct,
	"public":    KwPublic,
	"private":   KwPrivate,
	"protected": KwProtected,
	"internal":  KwInternal,
	"static":    KwStatic,
	"readonly":  KwReadonly,
	"delegate":  KwDelegate,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
