package ast

import "github.com/dhamidi/yomi/syntax"

// ModifierFlags summarize which modifier keywords apply to a
// declaration. They are decoded on demand from the node's modifier list
// rather than stored.
type ModifierFlags uint32

const (
	ModifierFlagsNone      ModifierFlags = 0
	ModifierFlagsExport    ModifierFlags = 1 << 0
	ModifierFlagsAmbient   ModifierFlags = 1 << 1
	ModifierFlagsPublic    ModifierFlags = 1 << 2
	ModifierFlagsPrivate   ModifierFlags = 1 << 3
	ModifierFlagsProtected ModifierFlags = 1 << 4
	ModifierFlagsStatic    ModifierFlags = 1 << 5
	ModifierFlagsReadonly  ModifierFlags = 1 << 6
	ModifierFlagsAbstract  ModifierFlags = 1 << 7
	ModifierFlagsAsync     ModifierFlags = 1 << 8
	ModifierFlagsDefault   ModifierFlags = 1 << 9
	ModifierFlagsConst     ModifierFlags = 1 << 10
	ModifierFlagsAccessor  ModifierFlags = 1 << 11
	ModifierFlagsOverride  ModifierFlags = 1 << 12
	ModifierFlagsIn        ModifierFlags = 1 << 13
	ModifierFlagsOut       ModifierFlags = 1 << 14
	ModifierFlagsDecorator ModifierFlags = 1 << 15

	ModifierFlagsAccessibilityModifier = ModifierFlagsPublic | ModifierFlagsPrivate | ModifierFlagsProtected
	ModifierFlagsParameterPropertyModifier = ModifierFlagsAccessibilityModifier | ModifierFlagsReadonly | ModifierFlagsOverride
)

// ModifierToFlag maps a modifier keyword kind to its bit. Kinds that are
// not modifiers map to the zero flag.
func ModifierToFlag(kind syntax.Kind) ModifierFlags {
	switch kind {
	case syntax.KindExportKeyword:
		return ModifierFlagsExport
	case syntax.KindDeclareKeyword:
		return ModifierFlagsAmbient
	case syntax.KindPublicKeyword:
		return ModifierFlagsPublic
	case syntax.KindPrivateKeyword:
		return ModifierFlagsPrivate
	case syntax.KindProtectedKeyword:
		return ModifierFlagsProtected
	case syntax.KindStaticKeyword:
		return ModifierFlagsStatic
	case syntax.KindReadonlyKeyword:
		return ModifierFlagsReadonly
	case syntax.KindAbstractKeyword:
		return ModifierFlagsAbstract
	case syntax.KindAsyncKeyword:
		return ModifierFlagsAsync
	case syntax.KindDefaultKeyword:
		return ModifierFlagsDefault
	case syntax.KindConstKeyword:
		return ModifierFlagsConst
	case syntax.KindAccessorKeyword:
		return ModifierFlagsAccessor
	case syntax.KindOverrideKeyword:
		return ModifierFlagsOverride
	case syntax.KindInKeyword:
		return ModifierFlagsIn
	case syntax.KindOutKeyword:
		return ModifierFlagsOut
	case syntax.KindDecorator:
		return ModifierFlagsDecorator
	}
	return ModifierFlagsNone
}

// GetModifierFlags decodes the node's modifier list. Members of a
// dotted-namespace shorthand count as exported even without an explicit
// keyword. Querying a kind that cannot carry modifiers yields None.
func GetModifierFlags(node *Node) ModifierFlags {
	flags := ModifierFlagsNone
	for _, mod := range node.Modifiers {
		flags |= ModifierToFlag(mod.Kind)
	}
	if node.Flags&NodeFlagsNestedNamespace != 0 {
		flags |= ModifierFlagsExport
	}
	return flags
}

// CanHaveModifiers gates, by kind, which nodes are eligible to carry a
// modifier list.
func CanHaveModifiers(kind syntax.Kind) bool {
	switch kind {
	case syntax.KindTypeParameter,
		syntax.KindParameter,
		syntax.KindPropertySignature,
		syntax.KindPropertyDeclaration,
		syntax.KindMethodSignature,
		syntax.KindMethodDeclaration,
		syntax.KindConstructor,
		syntax.KindGetAccessor,
		syntax.KindSetAccessor,
		syntax.KindIndexSignature,
		syntax.KindConstructorType,
		syntax.KindFunctionExpression,
		syntax.KindArrowFunction,
		syntax.KindClassExpression,
		syntax.KindVariableStatement,
		syntax.KindFunctionDeclaration,
		syntax.KindClassDeclaration,
		syntax.KindInterfaceDeclaration,
		syntax.KindTypeAliasDeclaration,
		syntax.KindEnumDeclaration,
		syntax.KindModuleDeclaration,
		syntax.KindImportEqualsDeclaration,
		syntax.KindImportDeclaration,
		syntax.KindExportAssignment,
		syntax.KindExportDeclaration:
		return true
	}
	return false
}

// CanHaveJSDoc gates, by kind, which nodes may own JSDoc comments.
func CanHaveJSDoc(kind syntax.Kind) bool {
	if CanHaveModifiers(kind) {
		return true
	}
	switch kind {
	case syntax.KindVariableDeclaration,
		syntax.KindPropertyAssignment,
		syntax.KindShorthandPropertyAssignment,
		syntax.KindEnumMember,
		syntax.KindCallSignature,
		syntax.KindConstructSignature,
		syntax.KindExpressionStatement,
		syntax.KindLabeledStatement,
		syntax.KindExportSpecifier,
		syntax.KindCaseClause:
		return true
	}
	return false
}

// GetTextOfNodeFromSourceText slices the exact source text of a node:
// from the first non-trivia position at or after Pos up to End. Missing
// nodes yield the empty string. An End past the buffer (or the zero
// value in partial contexts) is clamped to the end of the buffer.
func GetTextOfNodeFromSourceText(sourceText string, node *Node) string {
	if NodeIsMissing(node) {
		return ""
	}
	start := SkipTrivia(sourceText, node.Pos)
	end := node.End
	if end <= 0 || end > len(sourceText) {
		end = len(sourceText)
	}
	if start >= end {
		return ""
	}
	return sourceText[start:end]
}

// IsLeftHandSideExpressionKind reports whether the kind is grammatically
// valid as the target of a call, member access or assignment.
func IsLeftHandSideExpressionKind(kind syntax.Kind) bool {
	switch kind {
	case syntax.KindPropertyAccessExpression,
		syntax.KindElementAccessExpression,
		syntax.KindNewExpression,
		syntax.KindCallExpression,
		syntax.KindJsxElement,
		syntax.KindJsxSelfClosingElement,
		syntax.KindJsxFragment,
		syntax.KindTaggedTemplateExpression,
		syntax.KindArrayLiteralExpression,
		syntax.KindParenthesizedExpression,
		syntax.KindObjectLiteralExpression,
		syntax.KindClassExpression,
		syntax.KindFunctionExpression,
		syntax.KindIdentifier,
		syntax.KindPrivateIdentifier,
		syntax.KindRegularExpressionLiteral,
		syntax.KindNumericLiteral,
		syntax.KindBigIntLiteral,
		syntax.KindStringLiteral,
		syntax.KindNoSubstitutionTemplateLiteral,
		syntax.KindTemplateExpression,
		syntax.KindFalseKeyword,
		syntax.KindNullKeyword,
		syntax.KindThisKeyword,
		syntax.KindTrueKeyword,
		syntax.KindSuperKeyword,
		syntax.KindNonNullExpression,
		syntax.KindMetaProperty,
		syntax.KindImportKeyword:
		return true
	}
	return false
}

// TagNamesAreEquivalent reports structural identity of two JSX tag-name
// expressions: same identifier spelling, both `this`, same namespaced
// pair, or recursively equivalent property-access chains. Any kind
// mismatch or nil input is not equivalent.
func TagNamesAreEquivalent(lhs, rhs *Node) bool {
	if lhs == nil || rhs == nil || lhs.Kind != rhs.Kind {
		return false
	}
	switch lhs.Kind {
	case syntax.KindIdentifier, syntax.KindPrivateIdentifier:
		return lhs.Text == rhs.Text
	case syntax.KindThisKeyword:
		return true
	case syntax.KindJsxNamespacedName:
		return len(lhs.Children) == 2 && len(rhs.Children) == 2 &&
			TagNamesAreEquivalent(lhs.Children[0], rhs.Children[0]) &&
			TagNamesAreEquivalent(lhs.Children[1], rhs.Children[1])
	case syntax.KindPropertyAccessExpression:
		return len(lhs.Children) == 2 && len(rhs.Children) == 2 &&
			TagNamesAreEquivalent(lhs.Children[0], rhs.Children[0]) &&
			TagNamesAreEquivalent(lhs.Children[1], rhs.Children[1])
	}
	return false
}
