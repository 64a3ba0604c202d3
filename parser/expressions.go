package parser

import (
	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/syntax"
	"github.com/dhamidi/yomi/tspath"
)

// parseExpression parses the full comma-expression grammar.
func (p *Parser) parseExpression() *ast.Node {
	pos := p.nodePos()
	expr := p.parseAssignmentExpressionOrHigher()
	for p.token == syntax.KindCommaToken {
		op := p.parseTokenNode()
		expr = p.makeBinaryExpression(expr, op, p.parseAssignmentExpressionOrHigher(), pos)
	}
	return expr
}

func (p *Parser) parseAssignmentExpressionOrHigher() *ast.Node {
	if p.isYieldExpression() {
		return p.parseYieldExpression()
	}
	if arrow := p.tryParseParenthesizedArrowFunction(); arrow != nil {
		return arrow
	}
	if p.token == syntax.KindAsyncKeyword && p.lookAhead(p.nextIsUnparenthesizedAsyncArrow) {
		return p.parseSimpleArrowFunction()
	}

	pos := p.nodePos()
	expr := p.parseBinaryExpressionOrHigher(syntax.OperatorPrecedenceAssignment)

	// `x => ...`: the identifier turns out to be an arrow parameter.
	if expr.Kind == syntax.KindIdentifier && p.token == syntax.KindEqualsGreaterThanToken {
		return p.finishSimpleArrowFunction(pos, nil, expr)
	}

	if p.token.IsAssignmentOperator() && ast.IsLeftHandSideExpressionKind(expr.Kind) {
		op := p.parseTokenNode()
		// Right-associative: recurse at the same level.
		return p.makeBinaryExpression(expr, op, p.parseAssignmentExpressionOrHigher(), pos)
	}

	return p.parseConditionalExpressionRest(pos, expr)
}

func (p *Parser) makeBinaryExpression(left, op, right *ast.Node, pos int) *ast.Node {
	node := p.newNode(syntax.KindBinaryExpression, pos)
	node.AddChild(left)
	node.AddChild(op)
	node.AddChild(right)
	return p.finishNode(node)
}

func (p *Parser) parseConditionalExpressionRest(pos int, condition *ast.Node) *ast.Node {
	if p.token != syntax.KindQuestionToken {
		return condition
	}
	p.nextToken()
	node := p.newNode(syntax.KindConditionalExpression, pos)
	node.AddChild(condition)
	node.AddChild(p.allowInAnd(p.parseAssignmentExpressionOrHigher))
	p.parseExpected(syntax.KindColonToken)
	node.AddChild(p.parseAssignmentExpressionOrHigher())
	return p.finishNode(node)
}

func (p *Parser) parseBinaryExpressionOrHigher(precedence syntax.OperatorPrecedence) *ast.Node {
	pos := p.nodePos()
	left := p.parseUnaryExpressionOrHigher()
	return p.parseBinaryExpressionRest(precedence, left, pos)
}

// parseBinaryExpressionRest climbs operator tiers. An operator is
// consumed when it binds tighter than the current tier; `**` also binds
// at equal tiers, which makes it right-associative.
func (p *Parser) parseBinaryExpressionRest(precedence syntax.OperatorPrecedence, left *ast.Node, pos int) *ast.Node {
	for {
		newPrecedence := syntax.GetBinaryOperatorPrecedence(p.token)
		var consume bool
		if p.token == syntax.KindAsteriskAsteriskToken {
			consume = newPrecedence >= precedence
		} else {
			consume = newPrecedence > precedence
		}
		if !consume {
			break
		}
		if p.token == syntax.KindInKeyword && p.disallowIn {
			break
		}

		if p.token == syntax.KindAsKeyword || p.token == syntax.KindSatisfiesKeyword {
			// On a new line these are identifiers, not operators; ASI
			// would otherwise never fire after `x` in `x \n as(y)`.
			if p.scanner.HasPrecedingLineBreak() {
				break
			}
			kind := syntax.KindAsExpression
			if p.token == syntax.KindSatisfiesKeyword {
				kind = syntax.KindSatisfiesExpression
			}
			p.nextToken()
			node := p.newNode(kind, pos)
			node.AddChild(left)
			node.AddChild(p.parseType())
			left = p.finishNode(node)
			continue
		}

		op := p.parseTokenNode()
		right := p.parseBinaryExpressionOrHigher(newPrecedence)
		left = p.makeBinaryExpression(left, op, right, pos)
	}
	return left
}

func (p *Parser) parseUnaryExpressionOrHigher() *ast.Node {
	switch p.token {
	case syntax.KindPlusToken, syntax.KindMinusToken, syntax.KindTildeToken, syntax.KindExclamationToken:
		return p.parsePrefixUnaryExpression()
	case syntax.KindDeleteKeyword:
		return p.parseUnaryWrapper(syntax.KindDeleteExpression)
	case syntax.KindTypeOfKeyword:
		return p.parseUnaryWrapper(syntax.KindTypeOfExpression)
	case syntax.KindVoidKeyword:
		return p.parseUnaryWrapper(syntax.KindVoidExpression)
	case syntax.KindAwaitKeyword:
		if p.isAwaitExpression() {
			return p.parseUnaryWrapper(syntax.KindAwaitExpression)
		}
	case syntax.KindPlusPlusToken, syntax.KindMinusMinusToken:
		return p.parsePrefixUnaryExpression()
	case syntax.KindLessThanToken, syntax.KindLessThanLessThanToken:
		if p.variant == tspath.LanguageVariantJSX {
			if p.token == syntax.KindLessThanLessThanToken {
				p.token = p.scanner.ReScanLessThanToken()
			}
			return p.parseJsxElementOrSelfClosingElementOrFragment(true)
		}
		return p.parseTypeAssertionExpression()
	}
	return p.parseUpdateExpression()
}

func (p *Parser) parsePrefixUnaryExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindPrefixUnaryExpression, pos)
	node.AddChild(p.parseTokenNode())
	node.AddChild(p.parseUnaryExpressionOrHigher())
	return p.finishNode(node)
}

func (p *Parser) parseUnaryWrapper(kind syntax.Kind) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(kind, pos)
	p.nextToken()
	node.AddChild(p.parseUnaryExpressionOrHigher())
	return p.finishNode(node)
}

// parseTypeAssertionExpression parses the angle-bracket assertion form
// `<T>expr`, which only exists outside JSX files.
func (p *Parser) parseTypeAssertionExpression() *ast.Node {
	pos := p.nodePos()
	if p.token == syntax.KindLessThanLessThanToken {
		p.token = p.scanner.ReScanLessThanToken()
	}
	node := p.newNode(syntax.KindTypeAssertionExpression, pos)
	p.parseExpected(syntax.KindLessThanToken)
	node.AddChild(p.parseType())
	p.scanner.ReScanGreaterThanToken()
	p.token = p.scanner.Token()
	p.parseExpected(syntax.KindGreaterThanToken)
	node.AddChild(p.parseUnaryExpressionOrHigher())
	return p.finishNode(node)
}

func (p *Parser) parseUpdateExpression() *ast.Node {
	pos := p.nodePos()
	expr := p.parseLeftHandSideExpressionOrHigher()
	if (p.token == syntax.KindPlusPlusToken || p.token == syntax.KindMinusMinusToken) &&
		!p.scanner.HasPrecedingLineBreak() {
		node := p.newNode(syntax.KindPostfixUnaryExpression, pos)
		node.AddChild(expr)
		node.AddChild(p.parseTokenNode())
		return p.finishNode(node)
	}
	return expr
}

func (p *Parser) parseLeftHandSideExpressionOrHigher() *ast.Node {
	pos := p.nodePos()
	var expr *ast.Node
	switch {
	case p.token == syntax.KindImportKeyword && p.lookAhead(p.nextTokenIsOpenParen):
		// Dynamic import: the keyword itself is the callee.
		expr = p.parseTokenNode()
	case p.token == syntax.KindImportKeyword && p.lookAhead(p.nextTokenIsDot):
		expr = p.parseMetaProperty()
	case p.token == syntax.KindSuperKeyword:
		expr = p.parseTokenNode()
	default:
		expr = p.parsePrimaryExpression()
		expr = p.parseMemberExpressionRest(pos, expr)
	}
	return p.parseCallExpressionRest(pos, expr)
}

func (p *Parser) nextTokenIsDot() bool {
	return p.nextToken() == syntax.KindDotToken
}

// parseMetaProperty covers `import.meta` and `new.target`. The keyword
// token is the first child, the name the second; the node's Text carries
// the name for cheap classification.
func (p *Parser) parseMetaProperty() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindMetaProperty, pos)
	node.AddChild(p.parseTokenNode())
	p.parseExpected(syntax.KindDotToken)
	name := p.parseIdentifierName()
	node.AddChild(name)
	node.Text = name.Text
	return p.finishNode(node)
}

func (p *Parser) parseMemberExpressionRest(pos int, expr *ast.Node) *ast.Node {
	for {
		switch p.token {
		case syntax.KindDotToken:
			p.nextToken()
			node := p.newNode(syntax.KindPropertyAccessExpression, pos)
			node.AddChild(expr)
			node.AddChild(p.parseMemberName())
			expr = p.finishNode(node)
		case syntax.KindQuestionDotToken:
			p.nextToken()
			switch p.token {
			case syntax.KindOpenBracketToken:
				expr = p.parseElementAccessRest(pos, expr)
			case syntax.KindOpenParenToken:
				expr = p.parseCallRest(pos, expr)
			default:
				node := p.newNode(syntax.KindPropertyAccessExpression, pos)
				node.AddChild(expr)
				node.AddChild(p.parseMemberName())
				expr = p.finishNode(node)
			}
		case syntax.KindOpenBracketToken:
			expr = p.parseElementAccessRest(pos, expr)
		case syntax.KindExclamationToken:
			if p.scanner.HasPrecedingLineBreak() {
				return expr
			}
			p.nextToken()
			node := p.newNode(syntax.KindNonNullExpression, pos)
			node.AddChild(expr)
			expr = p.finishNode(node)
		case syntax.KindNoSubstitutionTemplateLiteral, syntax.KindTemplateHead:
			node := p.newNode(syntax.KindTaggedTemplateExpression, pos)
			node.AddChild(expr)
			if p.token == syntax.KindNoSubstitutionTemplateLiteral {
				node.AddChild(p.parseLiteralNode())
			} else {
				node.AddChild(p.parseTemplateExpression())
			}
			expr = p.finishNode(node)
		default:
			return expr
		}
	}
}

func (p *Parser) parseMemberName() *ast.Node {
	if p.token == syntax.KindPrivateIdentifier {
		return p.parseTokenNode()
	}
	return p.parseIdentifierName()
}

func (p *Parser) parseElementAccessRest(pos int, expr *ast.Node) *ast.Node {
	p.parseExpected(syntax.KindOpenBracketToken)
	node := p.newNode(syntax.KindElementAccessExpression, pos)
	node.AddChild(expr)
	if p.token == syntax.KindCloseBracketToken {
		node.AddChild(p.createMissingNode(syntax.KindIdentifier, "An element access expression should take an argument.", ""))
	} else {
		node.AddChild(p.allowInAnd(p.parseExpression))
	}
	p.parseExpected(syntax.KindCloseBracketToken)
	return p.finishNode(node)
}

func (p *Parser) parseCallRest(pos int, expr *ast.Node) *ast.Node {
	node := p.newNode(syntax.KindCallExpression, pos)
	node.AddChild(expr)
	for _, arg := range p.parseArgumentList() {
		node.AddChild(arg)
	}
	return p.finishNode(node)
}

func (p *Parser) parseCallExpressionRest(pos int, expr *ast.Node) *ast.Node {
	for {
		expr = p.parseMemberExpressionRest(pos, expr)
		if p.token == syntax.KindLessThanToken {
			call := p.tryParseCallWithTypeArguments(pos, expr)
			if call == nil {
				return expr
			}
			expr = call
			continue
		}
		if p.token == syntax.KindOpenParenToken {
			expr = p.parseCallRest(pos, expr)
			continue
		}
		return expr
	}
}

// tryParseCallWithTypeArguments speculates on `f<T>(...)`. If no
// argument list follows the closing angle bracket this was a comparison
// chain and the speculation is rolled back.
func (p *Parser) tryParseCallWithTypeArguments(pos int, expr *ast.Node) *ast.Node {
	return p.tryParse(func() *ast.Node {
		p.nextToken()
		var typeArguments []*ast.Node
		for p.token != syntax.KindGreaterThanToken && p.token != syntax.KindEndOfFile {
			before := p.scanner.TokenStart()
			typeArguments = append(typeArguments, p.parseType())
			if !p.parseOptional(syntax.KindCommaToken) {
				break
			}
			if p.scanner.TokenStart() == before {
				return nil
			}
		}
		p.scanner.ReScanGreaterThanToken()
		p.token = p.scanner.Token()
		if p.token != syntax.KindGreaterThanToken {
			return nil
		}
		p.nextToken()
		if p.token != syntax.KindOpenParenToken {
			return nil
		}
		node := p.newNode(syntax.KindCallExpression, pos)
		node.AddChild(expr)
		for _, ta := range typeArguments {
			node.AddChild(ta)
		}
		for _, arg := range p.parseArgumentList() {
			node.AddChild(arg)
		}
		return p.finishNode(node)
	})
}

func (p *Parser) parseArgumentList() []*ast.Node {
	var args []*ast.Node
	p.parseExpected(syntax.KindOpenParenToken)
	saved := p.disallowIn
	p.disallowIn = false
	for p.token != syntax.KindCloseParenToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		args = append(args, p.parseArgumentOrSpread())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
		if p.scanner.TokenStart() == before {
			break
		}
	}
	p.disallowIn = saved
	p.parseExpected(syntax.KindCloseParenToken)
	return args
}

func (p *Parser) parseArgumentOrSpread() *ast.Node {
	if p.token == syntax.KindDotDotDotToken {
		return p.parseSpreadElement()
	}
	return p.parseAssignmentExpressionOrHigher()
}

func (p *Parser) parseSpreadElement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindSpreadElement, pos)
	p.parseExpected(syntax.KindDotDotDotToken)
	node.AddChild(p.parseAssignmentExpressionOrHigher())
	return p.finishNode(node)
}

// --- primaries ---

func (p *Parser) parsePrimaryExpression() *ast.Node {
	switch p.token {
	case syntax.KindSlashToken, syntax.KindSlashEqualsToken:
		// At expression start a slash opens a regular expression; only
		// the parser knows this, so it directs the rescan.
		p.token = p.scanner.ReScanSlashToken()
		return p.parseLiteralNode()
	case syntax.KindNumericLiteral, syntax.KindBigIntLiteral, syntax.KindStringLiteral,
		syntax.KindNoSubstitutionTemplateLiteral, syntax.KindRegularExpressionLiteral:
		return p.parseLiteralNode()
	case syntax.KindTemplateHead:
		return p.parseTemplateExpression()
	case syntax.KindThisKeyword, syntax.KindSuperKeyword, syntax.KindNullKeyword,
		syntax.KindTrueKeyword, syntax.KindFalseKeyword:
		return p.parseTokenNode()
	case syntax.KindOpenParenToken:
		return p.parseParenthesizedExpression()
	case syntax.KindOpenBracketToken:
		return p.parseArrayLiteralExpression()
	case syntax.KindOpenBraceToken:
		return p.parseObjectLiteralExpression()
	case syntax.KindAsyncKeyword:
		if p.lookAhead(p.nextTokenIsFunctionKeywordOnSameLine) {
			return p.parseFunctionExpression()
		}
	case syntax.KindFunctionKeyword:
		return p.parseFunctionExpression()
	case syntax.KindClassKeyword:
		return p.parseClassDeclarationOrExpression(p.nodePos(), nil, syntax.KindClassExpression)
	case syntax.KindNewKeyword:
		return p.parseNewExpression()
	case syntax.KindPrivateIdentifier:
		// `#field in obj` brand checks.
		return p.parseTokenNode()
	}
	if p.isIdentifier() {
		return p.parseIdentifier()
	}
	return p.createMissingNode(syntax.KindIdentifier, "Expression expected.", "")
}

func (p *Parser) nextTokenIsFunctionKeywordOnSameLine() bool {
	p.nextToken()
	return p.token == syntax.KindFunctionKeyword && !p.scanner.HasPrecedingLineBreak()
}

func (p *Parser) parseParenthesizedExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindParenthesizedExpression, pos)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.allowInAnd(p.parseExpression))
	p.parseExpected(syntax.KindCloseParenToken)
	return p.finishNode(node)
}

func (p *Parser) parseArrayLiteralExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindArrayLiteralExpression, pos)
	p.parseExpected(syntax.KindOpenBracketToken)
	saved := p.disallowIn
	p.disallowIn = false
	for p.token != syntax.KindCloseBracketToken && p.token != syntax.KindEndOfFile {
		if p.token == syntax.KindCommaToken {
			elision := p.newNode(syntax.KindOmittedExpression, p.nodePos())
			node.AddChild(p.finishNode(elision))
			p.nextToken()
			continue
		}
		before := p.scanner.TokenStart()
		node.AddChild(p.parseArgumentOrSpread())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
		if p.scanner.TokenStart() == before {
			break
		}
	}
	p.disallowIn = saved
	p.parseExpected(syntax.KindCloseBracketToken)
	return p.finishNode(node)
}

func (p *Parser) parseObjectLiteralExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindObjectLiteralExpression, pos)
	p.parseExpected(syntax.KindOpenBraceToken)
	saved := p.disallowIn
	p.disallowIn = false
	for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		node.AddChild(p.parseObjectLiteralElement())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
		if p.scanner.TokenStart() == before {
			break
		}
	}
	p.disallowIn = saved
	p.parseExpected(syntax.KindCloseBraceToken)
	return p.finishNode(node)
}

func (p *Parser) parseObjectLiteralElement() *ast.Node {
	pos := p.nodePos()

	if p.token == syntax.KindDotDotDotToken {
		node := p.newNode(syntax.KindSpreadAssignment, pos)
		p.nextToken()
		node.AddChild(p.parseAssignmentExpressionOrHigher())
		return p.finishNode(node)
	}

	modifiers := p.parseModifiers(true)

	if p.token == syntax.KindGetKeyword || p.token == syntax.KindSetKeyword {
		if accessor := p.tryParseAccessorDeclaration(pos, modifiers); accessor != nil {
			return accessor
		}
	}

	asterisk := p.parseOptionalToken(syntax.KindAsteriskToken)
	name := p.parsePropertyName()
	question := p.parseOptionalToken(syntax.KindQuestionToken)

	if asterisk != nil || p.token == syntax.KindOpenParenToken || p.token == syntax.KindLessThanToken {
		node := p.newNode(syntax.KindMethodDeclaration, pos)
		for _, m := range modifiers {
			node.AddModifier(m)
		}
		node.AddChild(asterisk)
		node.AddChild(name)
		node.AddChild(question)
		p.parseSignature(node)
		node.AddChild(p.parseBlock())
		return p.finishNode(node)
	}

	if p.parseOptional(syntax.KindColonToken) {
		node := p.newNode(syntax.KindPropertyAssignment, pos)
		node.AddChild(name)
		node.AddChild(p.parseAssignmentExpressionOrHigher())
		return p.finishNode(node)
	}

	// Shorthand; `{ a = 1 }` only makes sense as a destructuring target
	// but parses here to keep recovery local.
	node := p.newNode(syntax.KindShorthandPropertyAssignment, pos)
	node.AddChild(name)
	node.AddChild(question)
	if p.parseOptional(syntax.KindEqualsToken) {
		node.AddChild(p.parseAssignmentExpressionOrHigher())
	}
	return p.finishNode(node)
}

func (p *Parser) parseFunctionExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindFunctionExpression, pos)
	if p.token == syntax.KindAsyncKeyword {
		node.AddModifier(p.parseTokenNode())
	}
	p.parseExpected(syntax.KindFunctionKeyword)
	node.AddChild(p.parseOptionalToken(syntax.KindAsteriskToken))
	if p.isIdentifier() {
		node.AddChild(p.parseIdentifier())
	}
	p.parseSignature(node)
	node.AddChild(p.parseBlock())
	return p.finishNode(node)
}

func (p *Parser) parseNewExpression() *ast.Node {
	pos := p.nodePos()
	newKeyword := p.parseTokenNode()

	if p.token == syntax.KindDotToken {
		// new.target
		node := p.newNode(syntax.KindMetaProperty, pos)
		node.AddChild(newKeyword)
		p.nextToken()
		name := p.parseIdentifierName()
		node.AddChild(name)
		node.Text = name.Text
		return p.finishNode(node)
	}

	callee := p.parsePrimaryExpression()
	callee = p.parseMemberExpressionRest(pos, callee)

	node := p.newNode(syntax.KindNewExpression, pos)
	node.AddChild(callee)
	if p.token == syntax.KindOpenParenToken {
		for _, arg := range p.parseArgumentList() {
			node.AddChild(arg)
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseTemplateExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTemplateExpression, pos)
	node.AddChild(p.parseLiteralNode()) // head
	for {
		span := p.newNode(syntax.KindTemplateSpan, p.nodePos())
		span.AddChild(p.allowInAnd(p.parseExpression))
		if p.token != syntax.KindCloseBraceToken {
			p.parseErrorAtCurrentToken("'%s' expected.", "}")
			node.AddChild(p.finishNode(span))
			break
		}
		// The `}` closing a substitution restarts template scanning.
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

// --- yield, await, arrows ---

func (p *Parser) isYieldExpression() bool {
	if p.token != syntax.KindYieldKeyword {
		return false
	}
	return p.lookAhead(func() bool {
		p.nextToken()
		if p.scanner.HasPrecedingLineBreak() {
			return false
		}
		return p.token == syntax.KindAsteriskToken || p.isStartOfExpression()
	})
}

func (p *Parser) parseYieldExpression() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindYieldExpression, pos)
	p.nextToken()
	if !p.scanner.HasPrecedingLineBreak() {
		node.AddChild(p.parseOptionalToken(syntax.KindAsteriskToken))
		if p.isStartOfExpression() {
			node.AddChild(p.parseAssignmentExpressionOrHigher())
		}
	}
	return p.finishNode(node)
}

func (p *Parser) isAwaitExpression() bool {
	return p.lookAhead(func() bool {
		p.nextToken()
		if p.scanner.HasPrecedingLineBreak() {
			return false
		}
		if p.token == syntax.KindEqualsGreaterThanToken {
			return false
		}
		return p.isStartOfExpression()
	})
}

func (p *Parser) isStartOfExpression() bool {
	switch p.token {
	case syntax.KindPlusToken, syntax.KindMinusToken, syntax.KindTildeToken,
		syntax.KindExclamationToken, syntax.KindPlusPlusToken, syntax.KindMinusMinusToken,
		syntax.KindDeleteKeyword, syntax.KindTypeOfKeyword, syntax.KindVoidKeyword,
		syntax.KindAwaitKeyword, syntax.KindYieldKeyword, syntax.KindLessThanToken,
		syntax.KindAtToken, syntax.KindPrivateIdentifier,
		syntax.KindThisKeyword, syntax.KindSuperKeyword, syntax.KindNullKeyword,
		syntax.KindTrueKeyword, syntax.KindFalseKeyword,
		syntax.KindNumericLiteral, syntax.KindBigIntLiteral, syntax.KindStringLiteral,
		syntax.KindNoSubstitutionTemplateLiteral, syntax.KindTemplateHead,
		syntax.KindRegularExpressionLiteral,
		syntax.KindOpenParenToken, syntax.KindOpenBracketToken, syntax.KindOpenBraceToken,
		syntax.KindFunctionKeyword, syntax.KindClassKeyword, syntax.KindNewKeyword,
		syntax.KindSlashToken, syntax.KindSlashEqualsToken, syntax.KindImportKeyword:
		return true
	}
	return p.isIdentifier()
}

func (p *Parser) nextIsUnparenthesizedAsyncArrow() bool {
	p.nextToken()
	if p.scanner.HasPrecedingLineBreak() {
		return false
	}
	if !p.isIdentifier() {
		return false
	}
	p.nextToken()
	return p.token == syntax.KindEqualsGreaterThanToken
}

// parseSimpleArrowFunction handles `x => ...` and `async x => ...`.
func (p *Parser) parseSimpleArrowFunction() *ast.Node {
	pos := p.nodePos()
	var asyncModifier *ast.Node
	if p.token == syntax.KindAsyncKeyword {
		asyncModifier = p.parseTokenNode()
	}
	identifier := p.parseIdentifier()
	return p.finishSimpleArrowFunction(pos, asyncModifier, identifier)
}

func (p *Parser) finishSimpleArrowFunction(pos int, asyncModifier, identifier *ast.Node) *ast.Node {
	node := p.newNode(syntax.KindArrowFunction, pos)
	if asyncModifier != nil {
		node.AddModifier(asyncModifier)
	}
	param := p.newNode(syntax.KindParameter, identifier.Pos)
	param.AddChild(identifier)
	param.End = identifier.End
	node.AddChild(param)
	node.AddChild(p.parseExpectedToken(syntax.KindEqualsGreaterThanToken))
	node.AddChild(p.parseArrowFunctionBody())
	return p.finishNode(node)
}

// tryParseParenthesizedArrowFunction speculates on arrow functions that
// start with `(`, `<`, or `async (`. Commitment happens only at `=>`;
// anything else rolls back to ordinary expression parsing.
func (p *Parser) tryParseParenthesizedArrowFunction() *ast.Node {
	switch p.token {
	case syntax.KindOpenParenToken, syntax.KindLessThanToken:
	case syntax.KindAsyncKeyword:
		if !p.lookAhead(p.nextTokenIsOpenParenOrLessThanOnSameLine) {
			return nil
		}
	default:
		return nil
	}
	return p.tryParse(func() *ast.Node {
		pos := p.nodePos()
		node := p.newNode(syntax.KindArrowFunction, pos)
		if p.token == syntax.KindAsyncKeyword {
			node.AddModifier(p.parseTokenNode())
		}
		if p.token != syntax.KindOpenParenToken && p.token != syntax.KindLessThanToken {
			return nil
		}
		for _, tp := range p.parseTypeParameters() {
			node.AddChild(tp)
		}
		if p.token != syntax.KindOpenParenToken {
			return nil
		}
		for _, param := range p.parseParameters() {
			node.AddChild(param)
		}
		node.AddChild(p.parseTypeAnnotation())
		if p.token != syntax.KindEqualsGreaterThanToken {
			return nil
		}
		node.AddChild(p.parseTokenNode())
		node.AddChild(p.parseArrowFunctionBody())
		return p.finishNode(node)
	})
}

func (p *Parser) nextTokenIsOpenParenOrLessThanOnSameLine() bool {
	p.nextToken()
	if p.scanner.HasPrecedingLineBreak() {
		return false
	}
	return p.token == syntax.KindOpenParenToken || p.token == syntax.KindLessThanToken
}

func (p *Parser) parseArrowFunctionBody() *ast.Node {
	if p.token == syntax.KindOpenBraceToken {
		return p.parseBlock()
	}
	return p.parseAssignmentExpressionOrHigher()
}

func (p *Parser) allowInAnd(parse func() *ast.Node) *ast.Node {
	saved := p.disallowIn
	p.disallowIn = false
	result := parse()
	p.disallowIn = saved
	return result
}
