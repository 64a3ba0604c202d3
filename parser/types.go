package parser

import (
	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/syntax"
)

// parseTypeAnnotation consumes `: T` if present. Return-type positions
// also admit type predicates (`x is T`, `asserts x`).
func (p *Parser) parseTypeAnnotation() *ast.Node {
	if !p.parseOptional(syntax.KindColonToken) {
		return nil
	}
	return p.parseTypeOrTypePredicate()
}

func (p *Parser) parseTypeOrTypePredicate() *ast.Node {
	if p.token == syntax.KindAssertsKeyword && p.lookAhead(p.nextTokenIsIdentifierOrThisOnSameLine) {
		pos := p.nodePos()
		node := p.newNode(syntax.KindTypePredicate, pos)
		node.AddChild(p.parseTokenNode())
		if p.token == syntax.KindThisKeyword {
			node.AddChild(p.parseTokenNode())
		} else {
			node.AddChild(p.parseIdentifier())
		}
		if p.parseOptional(syntax.KindIsKeyword) {
			node.AddChild(p.parseType())
		}
		return p.finishNode(node)
	}
	if (p.isIdentifier() || p.token == syntax.KindThisKeyword) && p.lookAhead(p.nextTokenIsIsKeywordOnSameLine) {
		pos := p.nodePos()
		node := p.newNode(syntax.KindTypePredicate, pos)
		if p.token == syntax.KindThisKeyword {
			node.AddChild(p.parseTokenNode())
		} else {
			node.AddChild(p.parseIdentifier())
		}
		p.parseExpected(syntax.KindIsKeyword)
		node.AddChild(p.parseType())
		return p.finishNode(node)
	}
	return p.parseType()
}

func (p *Parser) nextTokenIsIdentifierOrThisOnSameLine() bool {
	p.nextToken()
	if p.scanner.HasPrecedingLineBreak() {
		return false
	}
	return p.isIdentifier() || p.token == syntax.KindThisKeyword
}

func (p *Parser) nextTokenIsIsKeywordOnSameLine() bool {
	p.nextToken()
	return p.token == syntax.KindIsKeyword && !p.scanner.HasPrecedingLineBreak()
}

func (p *Parser) parseType() *ast.Node {
	if p.isStartOfFunctionTypeOrConstructorType() {
		return p.parseFunctionOrConstructorType()
	}
	pos := p.nodePos()
	typ := p.parseUnionTypeOrHigher()
	if p.token == syntax.KindExtendsKeyword && !p.scanner.HasPrecedingLineBreak() {
		node := p.newNode(syntax.KindConditionalType, pos)
		node.AddChild(typ)
		p.nextToken()
		node.AddChild(p.parseUnionTypeOrHigher())
		p.parseExpected(syntax.KindQuestionToken)
		node.AddChild(p.parseType())
		p.parseExpected(syntax.KindColonToken)
		node.AddChild(p.parseType())
		return p.finishNode(node)
	}
	return typ
}

func (p *Parser) isStartOfFunctionTypeOrConstructorType() bool {
	switch p.token {
	case syntax.KindLessThanToken:
		return true
	case syntax.KindNewKeyword:
		return true
	case syntax.KindAbstractKeyword:
		return p.lookAhead(func() bool { return p.nextToken() == syntax.KindNewKeyword })
	case syntax.KindOpenParenToken:
		return p.lookAhead(p.isUnambiguouslyStartOfFunctionType)
	}
	return false
}

// isUnambiguouslyStartOfFunctionType peeks past `(` to separate
// `(x: T) => U` from the parenthesized type `(T)`.
func (p *Parser) isUnambiguouslyStartOfFunctionType() bool {
	p.nextToken()
	if p.token == syntax.KindCloseParenToken || p.token == syntax.KindDotDotDotToken {
		return true
	}
	if !p.skipParameterStart() {
		return false
	}
	switch p.token {
	case syntax.KindColonToken, syntax.KindCommaToken, syntax.KindQuestionToken, syntax.KindEqualsToken:
		return true
	case syntax.KindCloseParenToken:
		p.nextToken()
		return p.token == syntax.KindEqualsGreaterThanToken
	}
	return false
}

func (p *Parser) skipParameterStart() bool {
	if p.token.IsModifierKind() {
		p.parseModifiers(false)
	}
	if p.isIdentifier() || p.token == syntax.KindThisKeyword {
		p.nextToken()
		return true
	}
	if p.token == syntax.KindOpenBracketToken || p.token == syntax.KindOpenBraceToken {
		errors := len(p.diagnostics)
		p.parseBindingName()
		return errors == len(p.diagnostics)
	}
	return false
}

func (p *Parser) parseFunctionOrConstructorType() *ast.Node {
	pos := p.nodePos()
	kind := syntax.KindFunctionType
	var abstractModifier *ast.Node
	if p.token == syntax.KindAbstractKeyword {
		abstractModifier = p.parseTokenNode()
	}
	if p.token == syntax.KindNewKeyword {
		kind = syntax.KindConstructorType
		p.nextToken()
	}
	node := p.newNode(kind, pos)
	if abstractModifier != nil {
		node.AddModifier(abstractModifier)
	}
	for _, tp := range p.parseTypeParameters() {
		node.AddChild(tp)
	}
	for _, param := range p.parseParameters() {
		node.AddChild(param)
	}
	p.parseExpected(syntax.KindEqualsGreaterThanToken)
	node.AddChild(p.parseType())
	return p.finishNode(node)
}

func (p *Parser) parseUnionTypeOrHigher() *ast.Node {
	return p.parseUnionOrIntersectionType(syntax.KindBarToken, syntax.KindUnionType, p.parseIntersectionTypeOrHigher)
}

func (p *Parser) parseIntersectionTypeOrHigher() *ast.Node {
	return p.parseUnionOrIntersectionType(syntax.KindAmpersandToken, syntax.KindIntersectionType, p.parseTypeOperatorOrHigher)
}

func (p *Parser) parseUnionOrIntersectionType(operator, kind syntax.Kind, parseConstituent func() *ast.Node) *ast.Node {
	pos := p.nodePos()
	p.parseOptional(operator) // leading separator is allowed
	first := parseConstituent()
	if p.token != operator {
		return first
	}
	node := p.newNode(kind, pos)
	node.AddChild(first)
	for p.parseOptional(operator) {
		node.AddChild(parseConstituent())
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeOperatorOrHigher() *ast.Node {
	switch p.token {
	case syntax.KindKeyOfKeyword, syntax.KindUniqueKeyword, syntax.KindReadonlyKeyword:
		pos := p.nodePos()
		node := p.newNode(syntax.KindTypeOperator, pos)
		node.AddChild(p.parseTokenNode())
		node.AddChild(p.parseTypeOperatorOrHigher())
		return p.finishNode(node)
	case syntax.KindInferKeyword:
		pos := p.nodePos()
		node := p.newNode(syntax.KindInferType, pos)
		p.nextToken()
		param := p.newNode(syntax.KindTypeParameter, p.nodePos())
		param.AddChild(p.parseIdentifier())
		node.AddChild(p.finishNode(param))
		return p.finishNode(node)
	}
	return p.parsePostfixTypeOrHigher()
}

func (p *Parser) parsePostfixTypeOrHigher() *ast.Node {
	pos := p.nodePos()
	typ := p.parseNonArrayType()
	for p.token == syntax.KindOpenBracketToken && !p.scanner.HasPrecedingLineBreak() {
		p.nextToken()
		if p.token == syntax.KindCloseBracketToken {
			p.nextToken()
			node := p.newNode(syntax.KindArrayType, pos)
			node.AddChild(typ)
			typ = p.finishNode(node)
		} else {
			node := p.newNode(syntax.KindIndexedAccessType, pos)
			node.AddChild(typ)
			node.AddChild(p.parseType())
			p.parseExpected(syntax.KindCloseBracketToken)
			typ = p.finishNode(node)
		}
	}
	return typ
}

func (p *Parser) parseNonArrayType() *ast.Node {
	switch p.token {
	case syntax.KindAnyKeyword, syntax.KindUnknownKeyword, syntax.KindStringKeyword,
		syntax.KindNumberKeyword, syntax.KindBigIntKeyword, syntax.KindSymbolKeyword,
		syntax.KindBooleanKeyword, syntax.KindUndefinedKeyword, syntax.KindNeverKeyword,
		syntax.KindObjectKeyword, syntax.KindVoidKeyword, syntax.KindIntrinsicKeyword:
		// Keyword type names may still be type references (`object<T>`
		// is not, but user identifiers shadow nothing here); the plain
		// token node is the type.
		return p.parseTokenNode()
	case syntax.KindStringLiteral, syntax.KindNumericLiteral, syntax.KindBigIntLiteral,
		syntax.KindTrueKeyword, syntax.KindFalseKeyword, syntax.KindNullKeyword,
		syntax.KindNoSubstitutionTemplateLiteral:
		return p.parseLiteralTypeNode(false)
	case syntax.KindMinusToken:
		return p.parseLiteralTypeNode(true)
	case syntax.KindThisKeyword:
		pos := p.nodePos()
		node := p.newNode(syntax.KindThisType, pos)
		p.nextToken()
		return p.finishNode(node)
	case syntax.KindTypeOfKeyword:
		return p.parseTypeQuery()
	case syntax.KindOpenBraceToken:
		return p.parseTypeLiteral()
	case syntax.KindOpenBracketToken:
		return p.parseTupleType()
	case syntax.KindOpenParenToken:
		return p.parseParenthesizedType()
	case syntax.KindImportKeyword:
		return p.parseImportType()
	case syntax.KindTemplateHead:
		return p.parseTemplateLiteralType()
	}
	return p.parseTypeReference()
}

func (p *Parser) parseLiteralTypeNode(negative bool) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindLiteralType, pos)
	if negative {
		literal := p.newNode(syntax.KindPrefixUnaryExpression, pos)
		literal.AddChild(p.parseTokenNode()) // minus
		literal.AddChild(p.parseLiteralNode())
		node.AddChild(p.finishNode(literal))
	} else {
		node.AddChild(p.parseTokenNode())
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeQuery() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTypeQuery, pos)
	p.parseExpected(syntax.KindTypeOfKeyword)
	if p.token == syntax.KindImportKeyword {
		node.AddChild(p.parseImportType())
	} else {
		node.AddChild(p.parseEntityName())
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeLiteral() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTypeLiteral, pos)
	if p.isMappedType() {
		return p.parseMappedType()
	}
	for _, member := range p.parseObjectTypeMembers() {
		node.AddChild(member)
	}
	return p.finishNode(node)
}

// isMappedType looks for `{ [K in ...` (with optional +/- readonly).
func (p *Parser) isMappedType() bool {
	return p.lookAhead(func() bool {
		p.nextToken()
		if p.token == syntax.KindPlusToken || p.token == syntax.KindMinusToken {
			return p.nextToken() == syntax.KindReadonlyKeyword
		}
		if p.token == syntax.KindReadonlyKeyword {
			p.nextToken()
		}
		if p.token != syntax.KindOpenBracketToken {
			return false
		}
		p.nextToken()
		if !p.isIdentifier() {
			return false
		}
		return p.nextToken() == syntax.KindInKeyword
	})
}

func (p *Parser) parseMappedType() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindMappedType, pos)
	p.parseExpected(syntax.KindOpenBraceToken)
	if p.token == syntax.KindPlusToken || p.token == syntax.KindMinusToken {
		node.AddChild(p.parseTokenNode())
	}
	if p.token == syntax.KindReadonlyKeyword {
		node.AddChild(p.parseTokenNode())
	}
	p.parseExpected(syntax.KindOpenBracketToken)
	param := p.newNode(syntax.KindTypeParameter, p.nodePos())
	param.AddChild(p.parseIdentifier())
	p.parseExpected(syntax.KindInKeyword)
	param.AddChild(p.parseType())
	node.AddChild(p.finishNode(param))
	if p.parseOptional(syntax.KindAsKeyword) {
		node.AddChild(p.parseType())
	}
	p.parseExpected(syntax.KindCloseBracketToken)
	if p.token == syntax.KindPlusToken || p.token == syntax.KindMinusToken {
		node.AddChild(p.parseTokenNode())
	}
	if p.token == syntax.KindQuestionToken {
		node.AddChild(p.parseTokenNode())
	}
	node.AddChild(p.parseTypeAnnotation())
	p.parseOptional(syntax.KindSemicolonToken)
	p.parseExpected(syntax.KindCloseBraceToken)
	return p.finishNode(node)
}

func (p *Parser) parseTupleType() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTupleType, pos)
	p.parseExpected(syntax.KindOpenBracketToken)
	for p.token != syntax.KindCloseBracketToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		node.AddChild(p.parseTupleElementType())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
		if p.scanner.TokenStart() == before {
			break
		}
	}
	p.parseExpected(syntax.KindCloseBracketToken)
	return p.finishNode(node)
}

func (p *Parser) parseTupleElementType() *ast.Node {
	pos := p.nodePos()
	if p.parseOptional(syntax.KindDotDotDotToken) {
		node := p.newNode(syntax.KindRestType, pos)
		node.AddChild(p.parseType())
		return p.finishNode(node)
	}
	// Tuple member labels carry no semantic weight here; the label is
	// consumed and the element is represented by its type.
	if p.isIdentifier() && p.lookAhead(p.nextTokenIsColonOrQuestionColon) {
		p.parseIdentifier()
		optional := p.parseOptional(syntax.KindQuestionToken)
		p.parseExpected(syntax.KindColonToken)
		typ := p.parseType()
		if optional {
			node := p.newNode(syntax.KindOptionalType, pos)
			node.AddChild(typ)
			return p.finishNode(node)
		}
		return typ
	}
	typ := p.parseType()
	if p.parseOptional(syntax.KindQuestionToken) {
		node := p.newNode(syntax.KindOptionalType, pos)
		node.AddChild(typ)
		return p.finishNode(node)
	}
	return typ
}

func (p *Parser) nextTokenIsColonOrQuestionColon() bool {
	p.nextToken()
	if p.token == syntax.KindColonToken {
		return true
	}
	return p.token == syntax.KindQuestionToken &&
		p.lookAhead(func() bool { return p.nextToken() == syntax.KindColonToken })
}

func (p *Parser) parseParenthesizedType() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindParenthesizedType, pos)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.parseType())
	p.parseExpected(syntax.KindCloseParenToken)
	return p.finishNode(node)
}

func (p *Parser) parseImportType() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindImportType, pos)
	p.parseExpected(syntax.KindImportKeyword)
	p.parseExpected(syntax.KindOpenParenToken)
	if p.token == syntax.KindStringLiteral {
		node.AddChild(p.parseLiteralNode())
	} else {
		node.AddChild(p.createMissingNode(syntax.KindStringLiteral, "String literal expected.", ""))
	}
	p.parseExpected(syntax.KindCloseParenToken)
	if p.parseOptional(syntax.KindDotToken) {
		node.AddChild(p.parseEntityName())
	}
	if p.token == syntax.KindLessThanToken && !p.scanner.HasPrecedingLineBreak() {
		for _, ta := range p.parseTypeArguments() {
			node.AddChild(ta)
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseTemplateLiteralType() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTemplateLiteralType, pos)
	node.AddChild(p.parseLiteralNode()) // head
	for {
		span := p.newNode(syntax.KindTemplateLiteralTypeSpan, p.nodePos())
		span.AddChild(p.parseType())
		if p.token != syntax.KindCloseBraceToken {
			p.parseErrorAtCurrentToken("'%s' expected.", "}")
			node.AddChild(p.finishNode(span))
			break
		}
		p.token = p.scanner.ReScanTemplateToken()
		literal := p.parseLiteralNode()
		span.AddChild(literal)
		node.AddChild(p.finishNode(span))
		if literal.Kind != syntax.KindTemplateMiddle {
			break
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeReference() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTypeReference, pos)
	node.AddChild(p.parseEntityNameOfTypeReference())
	if p.token == syntax.KindLessThanToken && !p.scanner.HasPrecedingLineBreak() {
		for _, ta := range p.parseTypeArguments() {
			node.AddChild(ta)
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseEntityNameOfTypeReference() *ast.Node {
	if !p.isIdentifier() {
		return p.createMissingNode(syntax.KindIdentifier, "Type expected.", "")
	}
	return p.parseEntityName()
}

func (p *Parser) parseTypeArguments() []*ast.Node {
	var args []*ast.Node
	p.parseExpected(syntax.KindLessThanToken)
	for p.token != syntax.KindGreaterThanToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		args = append(args, p.parseType())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
		if p.scanner.TokenStart() == before {
			break
		}
	}
	p.scanner.ReScanGreaterThanToken()
	p.token = p.scanner.Token()
	p.parseExpected(syntax.KindGreaterThanToken)
	return args
}
