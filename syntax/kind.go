package syntax

// Kind identifies the grammatical category of a token or tree node.
// Token kinds occupy the low end of the range so that fast membership
// tests can be expressed as comparisons against the marker constants
// declared at the bottom of this file. The relative order of kinds is
// load-bearing: do not reorder.
type Kind int16

const (
	KindUnknown Kind = iota
	KindEndOfFile

	// Trivia
	KindSingleLineCommentTrivia
	KindMultiLineCommentTrivia
	KindNewLineTrivia
	KindWhitespaceTrivia
	KindShebangTrivia
	KindConflictMarkerTrivia
	KindNonTextFileMarkerTrivia

	// Literals
	KindNumericLiteral
	KindBigIntLiteral
	KindStringLiteral
	KindJsxText
	KindRegularExpressionLiteral
	KindNoSubstitutionTemplateLiteral

	// Template parts
	KindTemplateHead
	KindTemplateMiddle
	KindTemplateTail

	// Punctuation
	KindOpenBraceToken
	KindCloseBraceToken
	KindOpenParenToken
	KindCloseParenToken
	KindOpenBracketToken
	KindCloseBracketToken
	KindDotToken
	KindDotDotDotToken
	KindSemicolonToken
	KindCommaToken
	KindQuestionDotToken
	KindLessThanToken
	KindLessThanSlashToken
	KindGreaterThanToken
	KindLessThanEqualsToken
	KindGreaterThanEqualsToken
	KindEqualsEqualsToken
	KindExclamationEqualsToken
	KindEqualsEqualsEqualsToken
	KindExclamationEqualsEqualsToken
	KindEqualsGreaterThanToken
	KindPlusToken
	KindMinusToken
	KindAsteriskToken
	KindAsteriskAsteriskToken
	KindSlashToken
	KindPercentToken
	KindPlusPlusToken
	KindMinusMinusToken
	KindLessThanLessThanToken
	KindGreaterThanGreaterThanToken
	KindGreaterThanGreaterThanGreaterThanToken
	KindAmpersandToken
	KindBarToken
	KindCaretToken
	KindExclamationToken
	KindTildeToken
	KindAmpersandAmpersandToken
	KindBarBarToken
	KindQuestionToken
	KindColonToken
	KindAtToken
	KindQuestionQuestionToken
	KindBacktickToken
	KindHashToken

	// Assignment operators (must stay last within punctuation)
	KindEqualsToken
	KindPlusEqualsToken
	KindMinusEqualsToken
	KindAsteriskEqualsToken
	KindAsteriskAsteriskEqualsToken
	KindSlashEqualsToken
	KindPercentEqualsToken
	KindLessThanLessThanEqualsToken
	KindGreaterThanGreaterThanEqualsToken
	KindGreaterThanGreaterThanGreaterThanEqualsToken
	KindAmpersandEqualsToken
	KindBarEqualsToken
	KindBarBarEqualsToken
	KindAmpersandAmpersandEqualsToken
	KindQuestionQuestionEqualsToken
	KindCaretEqualsToken

	// Identifiers
	KindIdentifier
	KindPrivateIdentifier

	// Reserved words
	KindBreakKeyword
	KindCaseKeyword
	KindCatchKeyword
	KindClassKeyword
	KindConstKeyword
	KindContinueKeyword
	KindDebuggerKeyword
	KindDefaultKeyword
	KindDeleteKeyword
	KindDoKeyword
	KindElseKeyword
	KindEnumKeyword
	KindExportKeyword
	KindExtendsKeyword
	KindFalseKeyword
	KindFinallyKeyword
	KindForKeyword
	KindFunctionKeyword
	KindIfKeyword
	KindImportKeyword
	KindInKeyword
	KindInstanceOfKeyword
	KindNewKeyword
	KindNullKeyword
	KindReturnKeyword
	KindSuperKeyword
	KindSwitchKeyword
	KindThisKeyword
	KindThrowKeyword
	KindTrueKeyword
	KindTryKeyword
	KindTypeOfKeyword
	KindVarKeyword
	KindVoidKeyword
	KindWhileKeyword
	KindWithKeyword

	// Strict-mode reserved words
	KindImplementsKeyword
	KindInterfaceKeyword
	KindLetKeyword
	KindPackageKeyword
	KindPrivateKeyword
	KindProtectedKeyword
	KindPublicKeyword
	KindStaticKeyword
	KindYieldKeyword

	// Contextual keywords
	KindAbstractKeyword
	KindAccessorKeyword
	KindAsKeyword
	KindAssertsKeyword
	KindAssertKeyword
	KindAnyKeyword
	KindAsyncKeyword
	KindAwaitKeyword
	KindBooleanKeyword
	KindConstructorKeyword
	KindDeclareKeyword
	KindGetKeyword
	KindInferKeyword
	KindIntrinsicKeyword
	KindIsKeyword
	KindKeyOfKeyword
	KindModuleKeyword
	KindNamespaceKeyword
	KindNeverKeyword
	KindOutKeyword
	KindReadonlyKeyword
	KindRequireKeyword
	KindNumberKeyword
	KindObjectKeyword
	KindSatisfiesKeyword
	KindSetKeyword
	KindStringKeyword
	KindSymbolKeyword
	KindTypeKeyword
	KindUndefinedKeyword
	KindUniqueKeyword
	KindUnknownKeyword
	KindUsingKeyword
	KindFromKeyword
	KindGlobalKeyword
	KindBigIntKeyword
	KindOverrideKeyword
	KindOfKeyword

	// Names
	KindQualifiedName
	KindComputedPropertyName

	// Signature elements
	KindTypeParameter
	KindParameter
	KindDecorator

	// Type members
	KindPropertySignature
	KindPropertyDeclaration
	KindMethodSignature
	KindMethodDeclaration
	KindClassStaticBlockDeclaration
	KindConstructor
	KindGetAccessor
	KindSetAccessor
	KindCallSignature
	KindConstructSignature
	KindIndexSignature

	// Types
	KindTypePredicate
	KindTypeReference
	KindFunctionType
	KindConstructorType
	KindTypeQuery
	KindTypeLiteral
	KindArrayType
	KindTupleType
	KindOptionalType
	KindRestType
	KindUnionType
	KindIntersectionType
	KindConditionalType
	KindInferType
	KindParenthesizedType
	KindThisType
	KindTypeOperator
	KindIndexedAccessType
	KindMappedType
	KindLiteralType
	KindTemplateLiteralType
	KindTemplateLiteralTypeSpan
	KindImportType

	// Binding patterns
	KindObjectBindingPattern
	KindArrayBindingPattern
	KindBindingElement

	// Expressions
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	KindPropertyAccessExpression
	KindElementAccessExpression
	KindCallExpression
	KindNewExpression
	KindTaggedTemplateExpression
	KindTypeAssertionExpression
	KindParenthesizedExpression
	KindFunctionExpression
	KindArrowFunction
	KindDeleteExpression
	KindTypeOfExpression
	KindVoidExpression
	KindAwaitExpression
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
	KindBinaryExpression
	KindConditionalExpression
	KindTemplateExpression
	KindYieldExpression
	KindSpreadElement
	KindClassExpression
	KindOmittedExpression
	KindExpressionWithTypeArguments
	KindAsExpression
	KindNonNullExpression
	KindMetaProperty
	KindSatisfiesExpression

	// Misc
	KindTemplateSpan
	KindSemicolonClassElement

	// Statements
	KindBlock
	KindEmptyStatement
	KindVariableStatement
	KindExpressionStatement
	KindIfStatement
	KindDoStatement
	KindWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindContinueStatement
	KindBreakStatement
	KindReturnStatement
	KindWithStatement
	KindSwitchStatement
	KindLabeledStatement
	KindThrowStatement
	KindTryStatement
	KindDebuggerStatement
	KindVariableDeclaration
	KindVariableDeclarationList
	KindFunctionDeclaration
	KindClassDeclaration
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindEnumDeclaration
	KindModuleDeclaration
	KindModuleBlock
	KindCaseBlock
	KindNamespaceExportDeclaration
	KindImportEqualsDeclaration
	KindImportDeclaration
	KindImportClause
	KindNamespaceImport
	KindNamedImports
	KindImportSpecifier
	KindExportAssignment
	KindExportDeclaration
	KindNamedExports
	KindNamespaceExport
	KindExportSpecifier
	KindMissingDeclaration
	KindExternalModuleReference

	// JSX
	KindJsxElement
	KindJsxSelfClosingElement
	KindJsxOpeningElement
	KindJsxClosingElement
	KindJsxFragment
	KindJsxOpeningFragment
	KindJsxClosingFragment
	KindJsxAttribute
	KindJsxAttributes
	KindJsxSpreadAttribute
	KindJsxExpression
	KindJsxNamespacedName

	// Clauses
	KindCaseClause
	KindDefaultClause
	KindHeritageClause
	KindCatchClause

	// Import attributes
	KindImportAttributes
	KindImportAttribute

	// Property assignments
	KindPropertyAssignment
	KindShorthandPropertyAssignment
	KindSpreadAssignment

	// Enum
	KindEnumMember

	// Top-level
	KindSourceFile

	KindCount
)

// Range markers. Membership tests compare against these; they must track
// the declaration order above.
const (
	KindFirstToken            = KindUnknown
	KindLastToken             = KindLastKeyword
	KindFirstTriviaToken      = KindSingleLineCommentTrivia
	KindLastTriviaToken       = KindNonTextFileMarkerTrivia
	KindFirstLiteralToken     = KindNumericLiteral
	KindLastLiteralToken      = KindNoSubstitutionTemplateLiteral
	KindFirstTemplateToken    = KindNoSubstitutionTemplateLiteral
	KindLastTemplateToken     = KindTemplateTail
	KindFirstPunctuation      = KindOpenBraceToken
	KindLastPunctuation       = KindCaretEqualsToken
	KindFirstAssignment       = KindEqualsToken
	KindLastAssignment        = KindCaretEqualsToken
	KindFirstCompoundAssignment = KindPlusEqualsToken
	KindLastCompoundAssignment  = KindCaretEqualsToken
	KindFirstBinaryOperator   = KindLessThanToken
	KindLastBinaryOperator    = KindCaretEqualsToken
	KindFirstKeyword          = KindBreakKeyword
	KindLastKeyword           = KindOfKeyword
	KindFirstReservedWord     = KindBreakKeyword
	KindLastReservedWord      = KindWithKeyword
	KindFirstFutureReservedWord = KindImplementsKeyword
	KindLastFutureReservedWord  = KindYieldKeyword
	KindFirstContextualKeyword  = KindAbstractKeyword
	KindLastContextualKeyword   = KindOfKeyword
	KindFirstTypeNode         = KindTypePredicate
	KindLastTypeNode          = KindImportType
	KindFirstStatement        = KindVariableStatement
	KindLastStatement         = KindDebuggerStatement
	KindFirstNode             = KindQualifiedName
)

// Deprecated aliases kept so older callers keep compiling.
const (
	// Deprecated: use KindImportAttributes.
	KindAssertClause = KindImportAttributes
	// Deprecated: use KindImportAttribute.
	KindAssertEntry = KindImportAttribute
	// Deprecated: use KindTypeAssertionExpression.
	KindTypeAssertion = KindTypeAssertionExpression
)

// IsToken reports whether k is a lexical token kind rather than a tree
// node kind.
func (k Kind) IsToken() bool {
	return k >= KindFirstToken && k <= KindLastToken
}

func (k Kind) IsTrivia() bool {
	return k >= KindFirstTriviaToken && k <= KindLastTriviaToken
}

func (k Kind) IsKeyword() bool {
	return k >= KindFirstKeyword && k <= KindLastKeyword
}

func (k Kind) IsReservedWord() bool {
	return k >= KindFirstReservedWord && k <= KindLastReservedWord
}

func (k Kind) IsFutureReservedWord() bool {
	return k >= KindFirstFutureReservedWord && k <= KindLastFutureReservedWord
}

func (k Kind) IsContextualKeyword() bool {
	return k >= KindFirstContextualKeyword && k <= KindLastContextualKeyword
}

// IsIdentifierOrKeyword reports whether the token can serve as a name in
// positions where keywords degrade to plain identifiers (property names,
// import specifiers and the like).
func (k Kind) IsIdentifierOrKeyword() bool {
	return k == KindIdentifier || k.IsKeyword()
}

func (k Kind) IsPunctuation() bool {
	return k >= KindFirstPunctuation && k <= KindLastPunctuation
}

func (k Kind) IsAssignmentOperator() bool {
	return k >= KindFirstAssignment && k <= KindLastAssignment
}

func (k Kind) IsCompoundAssignment() bool {
	return k >= KindFirstCompoundAssignment && k <= KindLastCompoundAssignment
}

// IsBinaryOperator reports range membership only; `in`, `instanceof`,
// `as` and `satisfies` sit outside the punctuation range and are mapped
// by GetBinaryOperatorPrecedence instead.
func (k Kind) IsBinaryOperator() bool {
	return k >= KindFirstBinaryOperator && k <= KindLastBinaryOperator
}

func (k Kind) IsLiteral() bool {
	return k >= KindFirstLiteralToken && k <= KindLastLiteralToken
}

func (k Kind) IsTemplateLiteralToken() bool {
	return k >= KindFirstTemplateToken && k <= KindLastTemplateToken
}

func (k Kind) IsTypeNode() bool {
	return k >= KindFirstTypeNode && k <= KindLastTypeNode || k.IsKeywordTypeNode() || k == KindExpressionWithTypeArguments
}

// IsKeywordTypeNode reports whether a bare keyword token doubles as a
// complete type node (e.g. `string`, `never`, `undefined`).
func (k Kind) IsKeywordTypeNode() bool {
	switch k {
	case KindAnyKeyword, KindBigIntKeyword, KindBooleanKeyword, KindIntrinsicKeyword,
		KindNeverKeyword, KindNumberKeyword, KindObjectKeyword, KindStringKeyword,
		KindSymbolKeyword, KindUndefinedKeyword, KindUnknownKeyword, KindVoidKeyword:
		return true
	}
	return false
}

func (k Kind) IsStatementKind() bool {
	switch k {
	case KindBlock, KindEmptyStatement, KindExpressionStatement, KindMissingDeclaration,
		KindFunctionDeclaration, KindClassDeclaration, KindInterfaceDeclaration,
		KindTypeAliasDeclaration, KindEnumDeclaration, KindModuleDeclaration,
		KindImportDeclaration, KindImportEqualsDeclaration, KindExportDeclaration,
		KindExportAssignment, KindNamespaceExportDeclaration:
		return true
	}
	return k >= KindFirstStatement && k <= KindLastStatement
}

// IsModifierKind reports whether the token kind may appear in a modifier
// list on a declaration.
func (k Kind) IsModifierKind() bool {
	switch k {
	case KindAbstractKeyword, KindAccessorKeyword, KindAsyncKeyword, KindConstKeyword,
		KindDeclareKeyword, KindDefaultKeyword, KindExportKeyword, KindInKeyword,
		KindPublicKeyword, KindPrivateKeyword, KindProtectedKeyword, KindReadonlyKeyword,
		KindStaticKeyword, KindOutKeyword, KindOverrideKeyword:
		return true
	}
	return false
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// TokenText returns the fixed source spelling of a punctuation or keyword
// kind, or the empty string for kinds whose text varies.
func TokenText(k Kind) string {
	if k.IsKeyword() {
		return kindNames[k]
	}
	if text, ok := punctuationText[k]; ok {
		return text
	}
	return ""
}

// LookupKeyword classifies an identifier spelling, returning the keyword
// kind when the spelling is reserved or contextual and KindIdentifier
// otherwise.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return KindIdentifier
}

var keywords = map[string]Kind{
	"break":       KindBreakKeyword,
	"case":        KindCaseKeyword,
	"catch":       KindCatchKeyword,
	"class":       KindClassKeyword,
	"const":       KindConstKeyword,
	"continue":    KindContinueKeyword,
	"debugger":    KindDebuggerKeyword,
	"default":     KindDefaultKeyword,
	"delete":      KindDeleteKeyword,
	"do":          KindDoKeyword,
	"else":        KindElseKeyword,
	"enum":        KindEnumKeyword,
	"export":      KindExportKeyword,
	"extends":     KindExtendsKeyword,
	"false":       KindFalseKeyword,
	"finally":     KindFinallyKeyword,
	"for":         KindForKeyword,
	"function":    KindFunctionKeyword,
	"if":          KindIfKeyword,
	"import":      KindImportKeyword,
	"in":          KindInKeyword,
	"instanceof":  KindInstanceOfKeyword,
	"new":         KindNewKeyword,
	"null":        KindNullKeyword,
	"return":      KindReturnKeyword,
	"super":       KindSuperKeyword,
	"switch":      KindSwitchKeyword,
	"this":        KindThisKeyword,
	"throw":       KindThrowKeyword,
	"true":        KindTrueKeyword,
	"try":         KindTryKeyword,
	"typeof":      KindTypeOfKeyword,
	"var":         KindVarKeyword,
	"void":        KindVoidKeyword,
	"while":       KindWhileKeyword,
	"with":        KindWithKeyword,
	"implements":  KindImplementsKeyword,
	"interface":   KindInterfaceKeyword,
	"let":         KindLetKeyword,
	"package":     KindPackageKeyword,
	"private":     KindPrivateKeyword,
	"protected":   KindProtectedKeyword,
	"public":      KindPublicKeyword,
	"static":      KindStaticKeyword,
	"yield":       KindYieldKeyword,
	"abstract":    KindAbstractKeyword,
	"accessor":    KindAccessorKeyword,
	"as":          KindAsKeyword,
	"asserts":     KindAssertsKeyword,
	"assert":      KindAssertKeyword,
	"any":         KindAnyKeyword,
	"async":       KindAsyncKeyword,
	"await":       KindAwaitKeyword,
	"boolean":     KindBooleanKeyword,
	"constructor": KindConstructorKeyword,
	"declare":     KindDeclareKeyword,
	"get":         KindGetKeyword,
	"infer":       KindInferKeyword,
	"intrinsic":   KindIntrinsicKeyword,
	"is":          KindIsKeyword,
	"keyof":       KindKeyOfKeyword,
	"module":      KindModuleKeyword,
	"namespace":   KindNamespaceKeyword,
	"never":       KindNeverKeyword,
	"out":         KindOutKeyword,
	"readonly":    KindReadonlyKeyword,
	"require":     KindRequireKeyword,
	"number":      KindNumberKeyword,
	"object":      KindObjectKeyword,
	"satisfies":   KindSatisfiesKeyword,
	"set":         KindSetKeyword,
	"string":      KindStringKeyword,
	"symbol":      KindSymbolKeyword,
	"type":        KindTypeKeyword,
	"undefined":   KindUndefinedKeyword,
	"unique":      KindUniqueKeyword,
	"unknown":     KindUnknownKeyword,
	"using":       KindUsingKeyword,
	"from":        KindFromKeyword,
	"global":      KindGlobalKeyword,
	"bigint":      KindBigIntKeyword,
	"override":    KindOverrideKeyword,
	"of":          KindOfKeyword,
}

var punctuationText = map[Kind]string{
	KindOpenBraceToken:                               "{",
	KindCloseBraceToken:                              "}",
	KindOpenParenToken:                               "(",
	KindCloseParenToken:                              ")",
	KindOpenBracketToken:                             "[",
	KindCloseBracketToken:                            "]",
	KindDotToken:                                     ".",
	KindDotDotDotToken:                               "...",
	KindSemicolonToken:                               ";",
	KindCommaToken:                                   ",",
	KindQuestionDotToken:                             "?.",
	KindLessThanToken:                                "<",
	KindLessThanSlashToken:                           "</",
	KindGreaterThanToken:                             ">",
	KindLessThanEqualsToken:                          "<=",
	KindGreaterThanEqualsToken:                       ">=",
	KindEqualsEqualsToken:                            "==",
	KindExclamationEqualsToken:                       "!=",
	KindEqualsEqualsEqualsToken:                      "===",
	KindExclamationEqualsEqualsToken:                 "!==",
	KindEqualsGreaterThanToken:                       "=>",
	KindPlusToken:                                    "+",
	KindMinusToken:                                   "-",
	KindAsteriskToken:                                "*",
	KindAsteriskAsteriskToken:                        "**",
	KindSlashToken:                                   "/",
	KindPercentToken:                                 "%",
	KindPlusPlusToken:                                "++",
	KindMinusMinusToken:                              "--",
	KindLessThanLessThanToken:                        "<<",
	KindGreaterThanGreaterThanToken:                  ">>",
	KindGreaterThanGreaterThanGreaterThanToken:       ">>>",
	KindAmpersandToken:                               "&",
	KindBarToken:                                     "|",
	KindCaretToken:                                   "^",
	KindExclamationToken:                             "!",
	KindTildeToken:                                   "~",
	KindAmpersandAmpersandToken:                      "&&",
	KindBarBarToken:                                  "||",
	KindQuestionToken:                                "?",
	KindColonToken:                                   ":",
	KindAtToken:                                      "@",
	KindQuestionQuestionToken:                        "??",
	KindBacktickToken:                                "`",
	KindHashToken:                                    "#",
	KindEqualsToken:                                  "=",
	KindPlusEqualsToken:                              "+=",
	KindMinusEqualsToken:                             "-=",
	KindAsteriskEqualsToken:                          "*=",
	KindAsteriskAsteriskEqualsToken:                  "**=",
	KindSlashEqualsToken:                             "/=",
	KindPercentEqualsToken:                           "%=",
	KindLessThanLessThanEqualsToken:                  "<<=",
	KindGreaterThanGreaterThanEqualsToken:            ">>=",
	KindGreaterThanGreaterThanGreaterThanEqualsToken: ">>>=",
	KindAmpersandEqualsToken:                         "&=",
	KindBarEqualsToken:                               "|=",
	KindBarBarEqualsToken:                            "||=",
	KindAmpersandAmpersandEqualsToken:                "&&=",
	KindQuestionQuestionEqualsToken:                  "??=",
	KindCaretEqualsToken:                             "^=",
}

var kindNames = map[Kind]string{
	KindUnknown:                       "Unknown",
	KindEndOfFile:                     "EndOfFile",
	KindSingleLineCommentTrivia:       "SingleLineCommentTrivia",
	KindMultiLineCommentTrivia:        "MultiLineCommentTrivia",
	KindNewLineTrivia:                 "NewLineTrivia",
	KindWhitespaceTrivia:              "WhitespaceTrivia",
	KindShebangTrivia:                 "ShebangTrivia",
	KindConflictMarkerTrivia:          "ConflictMarkerTrivia",
	KindNonTextFileMarkerTrivia:       "NonTextFileMarkerTrivia",
	KindNumericLiteral:                "NumericLiteral",
	KindBigIntLiteral:                 "BigIntLiteral",
	KindStringLiteral:                 "StringLiteral",
	KindJsxText:                       "JsxText",
	KindRegularExpressionLiteral:      "RegularExpressionLiteral",
	KindNoSubstitutionTemplateLiteral: "NoSubstitutionTemplateLiteral",
	KindTemplateHead:                  "TemplateHead",
	KindTemplateMiddle:                "TemplateMiddle",
	KindTemplateTail:                  "TemplateTail",
	KindOpenBraceToken:                "OpenBraceToken",
	KindCloseBraceToken:               "CloseBraceToken",
	KindOpenParenToken:                "OpenParenToken",
	KindCloseParenToken:               "CloseParenToken",
	KindOpenBracketToken:              "OpenBracketToken",
	KindCloseBracketToken:             "CloseBracketToken",
	KindDotToken:                      "DotToken",
	KindDotDotDotToken:                "DotDotDotToken",
	KindSemicolonToken:                "SemicolonToken",
	KindCommaToken:                    "CommaToken",
	KindQuestionDotToken:              "QuestionDotToken",
	KindLessThanToken:                 "LessThanToken",
	KindLessThanSlashToken:            "LessThanSlashToken",
	KindGreaterThanToken:              "GreaterThanToken",
	KindLessThanEqualsToken:           "LessThanEqualsToken",
	KindGreaterThanEqualsToken:        "GreaterThanEqualsToken",
	KindEqualsEqualsToken:             "EqualsEqualsToken",
	KindExclamationEqualsToken:        "ExclamationEqualsToken",
	KindEqualsEqualsEqualsToken:       "EqualsEqualsEqualsToken",
	KindExclamationEqualsEqualsToken:  "ExclamationEqualsEqualsToken",
	KindEqualsGreaterThanToken:        "EqualsGreaterThanToken",
	KindPlusToken:                     "PlusToken",
	KindMinusToken:                    "MinusToken",
	KindAsteriskToken:                 "AsteriskToken",
	KindAsteriskAsteriskToken:         "AsteriskAsteriskToken",
	KindSlashToken:                    "SlashToken",
	KindPercentToken:                  "PercentToken",
	KindPlusPlusToken:                 "PlusPlusToken",
	KindMinusMinusToken:               "MinusMinusToken",
	KindLessThanLessThanToken:         "LessThanLessThanToken",
	KindGreaterThanGreaterThanToken:   "GreaterThanGreaterThanToken",
	KindGreaterThanGreaterThanGreaterThanToken:       "GreaterThanGreaterThanGreaterThanToken",
	KindAmpersandToken:                               "AmpersandToken",
	KindBarToken:                                     "BarToken",
	KindCaretToken:                                   "CaretToken",
	KindExclamationToken:                             "ExclamationToken",
	KindTildeToken:                                   "TildeToken",
	KindAmpersandAmpersandToken:                      "AmpersandAmpersandToken",
	KindBarBarToken:                                  "BarBarToken",
	KindQuestionToken:                                "QuestionToken",
	KindColonToken:                                   "ColonToken",
	KindAtToken:                                      "AtToken",
	KindQuestionQuestionToken:                        "QuestionQuestionToken",
	KindBacktickToken:                                "BacktickToken",
	KindHashToken:                                    "HashToken",
	KindEqualsToken:                                  "EqualsToken",
	KindPlusEqualsToken:                              "PlusEqualsToken",
	KindMinusEqualsToken:                             "MinusEqualsToken",
	KindAsteriskEqualsToken:                          "AsteriskEqualsToken",
	KindAsteriskAsteriskEqualsToken:                  "AsteriskAsteriskEqualsToken",
	KindSlashEqualsToken:                             "SlashEqualsToken",
	KindPercentEqualsToken:                           "PercentEqualsToken",
	KindLessThanLessThanEqualsToken:                  "LessThanLessThanEqualsToken",
	KindGreaterThanGreaterThanEqualsToken:            "GreaterThanGreaterThanEqualsToken",
	KindGreaterThanGreaterThanGreaterThanEqualsToken: "GreaterThanGreaterThanGreaterThanEqualsToken",
	KindAmpersandEqualsToken:                         "AmpersandEqualsToken",
	KindBarEqualsToken:                               "BarEqualsToken",
	KindBarBarEqualsToken:                            "BarBarEqualsToken",
	KindAmpersandAmpersandEqualsToken:                "AmpersandAmpersandEqualsToken",
	KindQuestionQuestionEqualsToken:                  "QuestionQuestionEqualsToken",
	KindCaretEqualsToken:                             "CaretEqualsToken",
	KindIdentifier:                                   "Identifier",
	KindPrivateIdentifier:                            "PrivateIdentifier",
	KindBreakKeyword:                                 "break",
	KindCaseKeyword:                                  "case",
	KindCatchKeyword:                                 "catch",
	KindClassKeyword:                                 "class",
	KindConstKeyword:                                 "const",
	KindContinueKeyword:                              "continue",
	KindDebuggerKeyword:                              "debugger",
	KindDefaultKeyword:                               "default",
	KindDeleteKeyword:                                "delete",
	KindDoKeyword:                                    "do",
	KindElseKeyword:                                  "else",
	KindEnumKeyword:                                  "enum",
	KindExportKeyword:                                "export",
	KindExtendsKeyword:                               "extends",
	KindFalseKeyword:                                 "false",
	KindFinallyKeyword:                               "finally",
	KindForKeyword:                                   "for",
	KindFunctionKeyword:                              "function",
	KindIfKeyword:                                    "if",
	KindImportKeyword:                                "import",
	KindInKeyword:                                    "in",
	KindInstanceOfKeyword:                            "instanceof",
	KindNewKeyword:                                   "new",
	KindNullKeyword:                                  "null",
	KindReturnKeyword:                                "return",
	KindSuperKeyword:                                 "super",
	KindSwitchKeyword:                                "switch",
	KindThisKeyword:                                  "this",
	KindThrowKeyword:                                 "throw",
	KindTrueKeyword:                                  "true",
	KindTryKeyword:                                   "try",
	KindTypeOfKeyword:                                "typeof",
	KindVarKeyword:                                   "var",
	KindVoidKeyword:                                  "void",
	KindWhileKeyword:                                 "while",
	KindWithKeyword:                                  "with",
	KindImplementsKeyword:                            "implements",
	KindInterfaceKeyword:                             "interface",
	KindLetKeyword:                                   "let",
	KindPackageKeyword:                               "package",
	KindPrivateKeyword:                               "private",
	KindProtectedKeyword:                             "protected",
	KindPublicKeyword:                                "public",
	KindStaticKeyword:                                "static",
	KindYieldKeyword:                                 "yield",
	KindAbstractKeyword:                              "abstract",
	KindAccessorKeyword:                              "accessor",
	KindAsKeyword:                                    "as",
	KindAssertsKeyword:                               "asserts",
	KindAssertKeyword:                                "assert",
	KindAnyKeyword:                                   "any",
	KindAsyncKeyword:                                 "async",
	KindAwaitKeyword:                                 "await",
	KindBooleanKeyword:                               "boolean",
	KindConstructorKeyword:                           "constructor",
	KindDeclareKeyword:                               "declare",
	KindGetKeyword:                                   "get",
	KindInferKeyword:                                 "infer",
	KindIntrinsicKeyword:                             "intrinsic",
	KindIsKeyword:                                    "is",
	KindKeyOfKeyword:                                 "keyof",
	KindModuleKeyword:                                "module",
	KindNamespaceKeyword:                             "namespace",
	KindNeverKeyword:                                 "never",
	KindOutKeyword:                                   "out",
	KindReadonlyKeyword:                              "readonly",
	KindRequireKeyword:                               "require",
	KindNumberKeyword:                                "number",
	KindObjectKeyword:                                "object",
	KindSatisfiesKeyword:                             "satisfies",
	KindSetKeyword:                                   "set",
	KindStringKeyword:                                "string",
	KindSymbolKeyword:                                "symbol",
	KindTypeKeyword:                                  "type",
	KindUndefinedKeyword:                             "undefined",
	KindUniqueKeyword:                                "unique",
	KindUnknownKeyword:                               "unknown",
	KindUsingKeyword:                                 "using",
	KindFromKeyword:                                  "from",
	KindGlobalKeyword:                                "global",
	KindBigIntKeyword:                                "bigint",
	KindOverrideKeyword:                              "override",
	KindOfKeyword:                                    "of",
	KindQualifiedName:                                "QualifiedName",
	KindComputedPropertyName:                         "ComputedPropertyName",
	KindTypeParameter:                                "TypeParameter",
	KindParameter:                                    "Parameter",
	KindDecorator:                                    "Decorator",
	KindPropertySignature:                            "PropertySignature",
	KindPropertyDeclaration:                          "PropertyDeclaration",
	KindMethodSignature:                              "MethodSignature",
	KindMethodDeclaration:                            "MethodDeclaration",
	KindClassStaticBlockDeclaration:                  "ClassStaticBlockDeclaration",
	KindConstructor:                                  "Constructor",
	KindGetAccessor:                                  "GetAccessor",
	KindSetAccessor:                                  "SetAccessor",
	KindCallSignature:                                "CallSignature",
	KindConstructSignature:                           "ConstructSignature",
	KindIndexSignature:                               "IndexSignature",
	KindTypePredicate:                                "TypePredicate",
	KindTypeReference:                                "TypeReference",
	KindFunctionType:                                 "FunctionType",
	KindConstructorType:                              "ConstructorType",
	KindTypeQuery:                                    "TypeQuery",
	KindTypeLiteral:                                  "TypeLiteral",
	KindArrayType:                                    "ArrayType",
	KindTupleType:                                    "TupleType",
	KindOptionalType:                                 "OptionalType",
	KindRestType:                                     "RestType",
	KindUnionType:                                    "UnionType",
	KindIntersectionType:                             "IntersectionType",
	KindConditionalType:                              "ConditionalType",
	KindInferType:                                    "InferType",
	KindParenthesizedType:                            "ParenthesizedType",
	KindThisType:                                     "ThisType",
	KindTypeOperator:                                 "TypeOperator",
	KindIndexedAccessType:                            "IndexedAccessType",
	KindMappedType:                                   "MappedType",
	KindLiteralType:                                  "LiteralType",
	KindTemplateLiteralType:                          "TemplateLiteralType",
	KindTemplateLiteralTypeSpan:                      "TemplateLiteralTypeSpan",
	KindImportType:                                   "ImportType",
	KindObjectBindingPattern:                         "ObjectBindingPattern",
	KindArrayBindingPattern:                          "ArrayBindingPattern",
	KindBindingElement:                               "BindingElement",
	KindArrayLiteralExpression:                       "ArrayLiteralExpression",
	KindObjectLiteralExpression:                      "ObjectLiteralExpression",
	KindPropertyAccessExpression:                     "PropertyAccessExpression",
	KindElementAccessExpression:                      "ElementAccessExpression",
	KindCallExpression:                               "CallExpression",
	KindNewExpression:                                "NewExpression",
	KindTaggedTemplateExpression:                     "TaggedTemplateExpression",
	KindTypeAssertionExpression:                      "TypeAssertionExpression",
	KindParenthesizedExpression:                      "ParenthesizedExpression",
	KindFunctionExpression:                           "FunctionExpression",
	KindArrowFunction:                                "ArrowFunction",
	KindDeleteExpression:                             "DeleteExpression",
	KindTypeOfExpression:                             "TypeOfExpression",
	KindVoidExpression:                               "VoidExpression",
	KindAwaitExpression:                              "AwaitExpression",
	KindPrefixUnaryExpression:                        "PrefixUnaryExpression",
	KindPostfixUnaryExpression:                       "PostfixUnaryExpression",
	KindBinaryExpression:                             "BinaryExpression",
	KindConditionalExpression:                        "ConditionalExpression",
	KindTemplateExpression:                           "TemplateExpression",
	KindYieldExpression:                              "YieldExpression",
	KindSpreadElement:                                "SpreadElement",
	KindClassExpression:                              "ClassExpression",
	KindOmittedExpression:                            "OmittedExpression",
	KindExpressionWithTypeArguments:                  "ExpressionWithTypeArguments",
	KindAsExpression:                                 "AsExpression",
	KindNonNullExpression:                            "NonNullExpression",
	KindMetaProperty:                                 "MetaProperty",
	KindSatisfiesExpression:                          "SatisfiesExpression",
	KindTemplateSpan:                                 "TemplateSpan",
	KindSemicolonClassElement:                        "SemicolonClassElement",
	KindBlock:                                        "Block",
	KindEmptyStatement:                               "EmptyStatement",
	KindVariableStatement:                            "VariableStatement",
	KindExpressionStatement:                          "ExpressionStatement",
	KindIfStatement:                                  "IfStatement",
	KindDoStatement:                                  "DoStatement",
	KindWhileStatement:                               "WhileStatement",
	KindForStatement:                                 "ForStatement",
	KindForInStatement:                               "ForInStatement",
	KindForOfStatement:                               "ForOfStatement",
	KindContinueStatement:                            "ContinueStatement",
	KindBreakStatement:                               "BreakStatement",
	KindReturnStatement:                              "ReturnStatement",
	KindWithStatement:                                "WithStatement",
	KindSwitchStatement:                              "SwitchStatement",
	KindLabeledStatement:                             "LabeledStatement",
	KindThrowStatement:                               "ThrowStatement",
	KindTryStatement:                                 "TryStatement",
	KindDebuggerStatement:                            "DebuggerStatement",
	KindVariableDeclaration:                          "VariableDeclaration",
	KindVariableDeclarationList:                      "VariableDeclarationList",
	KindFunctionDeclaration:                          "FunctionDeclaration",
	KindClassDeclaration:                             "ClassDeclaration",
	KindInterfaceDeclaration:                         "InterfaceDeclaration",
	KindTypeAliasDeclaration:                         "TypeAliasDeclaration",
	KindEnumDeclaration:                              "EnumDeclaration",
	KindModuleDeclaration:                            "ModuleDeclaration",
	KindModuleBlock:                                  "ModuleBlock",
	KindCaseBlock:                                    "CaseBlock",
	KindNamespaceExportDeclaration:                   "NamespaceExportDeclaration",
	KindImportEqualsDeclaration:                      "ImportEqualsDeclaration",
	KindImportDeclaration:                            "ImportDeclaration",
	KindImportClause:                                 "ImportClause",
	KindNamespaceImport:                              "NamespaceImport",
	KindNamedImports:                                 "NamedImports",
	KindImportSpecifier:                              "ImportSpecifier",
	KindExportAssignment:                             "ExportAssignment",
	KindExportDeclaration:                            "ExportDeclaration",
	KindNamedExports:                                 "NamedExports",
	KindNamespaceExport:                              "NamespaceExport",
	KindExportSpecifier:                              "ExportSpecifier",
	KindMissingDeclaration:                           "MissingDeclaration",
	KindExternalModuleReference:                      "ExternalModuleReference",
	KindJsxElement:                                   "JsxElement",
	KindJsxSelfClosingElement:                        "JsxSelfClosingElement",
	KindJsxOpeningElement:                            "JsxOpeningElement",
	KindJsxClosingElement:                            "JsxClosingElement",
	KindJsxFragment:                                  "JsxFragment",
	KindJsxOpeningFragment:                           "JsxOpeningFragment",
	KindJsxClosingFragment:                           "JsxClosingFragment",
	KindJsxAttribute:                                 "JsxAttribute",
	KindJsxAttributes:                                "JsxAttributes",
	KindJsxSpreadAttribute:                           "JsxSpreadAttribute",
	KindJsxExpression:                                "JsxExpression",
	KindJsxNamespacedName:                            "JsxNamespacedName",
	KindCaseClause:                                   "CaseClause",
	KindDefaultClause:                                "DefaultClause",
	KindHeritageClause:                               "HeritageClause",
	KindCatchClause:                                  "CatchClause",
	KindImportAttributes:                             "ImportAttributes",
	KindImportAttribute:                              "ImportAttribute",
	KindPropertyAssignment:                           "PropertyAssignment",
	KindShorthandPropertyAssignment:                  "ShorthandPropertyAssignment",
	KindSpreadAssignment:                             "SpreadAssignment",
	KindEnumMember:                                   "EnumMember",
	KindSourceFile:                                   "SourceFile",
}
