package parser

import (
	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/syntax"
)

// JSX children are scanned in text mode; every transition back into it
// goes through scanJsxToken so the scanner never guesses the context.
func (p *Parser) scanJsxToken() syntax.Kind {
	p.token = p.scanner.ScanJsxToken()
	return p.token
}

// parseJsxElementOrSelfClosingElementOrFragment parses at `<`.
// inExpressionContext is true when the construct sits in ordinary
// expression position; it decides whether scanning resumes in normal or
// JSX-text mode after the final `>`.
func (p *Parser) parseJsxElementOrSelfClosingElementOrFragment(inExpressionContext bool) *ast.Node {
	pos := p.nodePos()
	p.parseExpected(syntax.KindLessThanToken)

	if p.token == syntax.KindGreaterThanToken {
		return p.parseJsxFragmentRest(pos, inExpressionContext)
	}

	tagName := p.parseJsxElementName()
	attributes := p.parseJsxAttributes()

	if p.token == syntax.KindSlashToken {
		node := p.newNode(syntax.KindJsxSelfClosingElement, pos)
		node.AddChild(tagName)
		node.AddChild(attributes)
		p.nextToken()
		if p.token == syntax.KindGreaterThanToken {
			if inExpressionContext {
				p.nextToken()
			} else {
				p.scanJsxToken()
			}
		} else {
			p.parseErrorAtCurrentToken("'%s' expected.", ">")
		}
		return p.finishNode(node)
	}

	opening := p.newNode(syntax.KindJsxOpeningElement, pos)
	opening.AddChild(tagName)
	opening.AddChild(attributes)
	if p.token == syntax.KindGreaterThanToken {
		// The children that follow are JSX text, not tokens.
		p.scanJsxToken()
	} else {
		p.parseErrorAtCurrentToken("'%s' expected.", ">")
	}
	p.finishNode(opening)

	element := p.newNode(syntax.KindJsxElement, pos)
	element.AddChild(opening)
	p.parseJsxChildren(element)
	element.AddChild(p.parseJsxClosingElement(tagName, inExpressionContext))
	return p.finishNode(element)
}

func (p *Parser) parseJsxFragmentRest(pos int, inExpressionContext bool) *ast.Node {
	opening := p.newNode(syntax.KindJsxOpeningFragment, pos)
	p.scanJsxToken() // past `>`
	p.finishNode(opening)

	fragment := p.newNode(syntax.KindJsxFragment, pos)
	fragment.AddChild(opening)
	p.parseJsxChildren(fragment)

	closing := p.newNode(syntax.KindJsxClosingFragment, p.nodePos())
	if p.token == syntax.KindLessThanSlashToken {
		p.nextToken()
		if p.token == syntax.KindGreaterThanToken {
			if inExpressionContext {
				p.nextToken()
			} else {
				p.scanJsxToken()
			}
		} else {
			p.parseErrorAtCurrentToken("'%s' expected.", ">")
		}
	} else {
		p.parseErrorAtCurrentToken("JSX fragment has no corresponding closing tag.", "")
	}
	fragment.AddChild(p.finishNode(closing))
	return p.finishNode(fragment)
}

func (p *Parser) parseJsxChildren(into *ast.Node) {
	for {
		switch p.token {
		case syntax.KindLessThanSlashToken:
			return
		case syntax.KindEndOfFile:
			p.parseErrorAtCurrentToken("Unexpected end of text.", "")
			return
		case syntax.KindJsxText:
			into.AddChild(p.parseJsxText())
		case syntax.KindOpenBraceToken:
			into.AddChild(p.parseJsxExpression(false))
		case syntax.KindLessThanToken:
			into.AddChild(p.parseJsxElementOrSelfClosingElementOrFragment(false))
		default:
			return
		}
	}
}

func (p *Parser) parseJsxText() *ast.Node {
	node := p.newNode(syntax.KindJsxText, p.nodePos())
	node.Text = p.scanner.TokenValue()
	p.scanJsxToken()
	return p.finishNode(node)
}

func (p *Parser) parseJsxClosingElement(openingTagName *ast.Node, inExpressionContext bool) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindJsxClosingElement, pos)
	if p.token != syntax.KindLessThanSlashToken {
		p.parseErrorAtCurrentToken("Expected corresponding JSX closing tag for '%s'.",
			ast.GetTextOfNodeFromSourceText(p.sourceText, openingTagName))
		node.End = pos
		return node
	}
	p.nextToken()
	tagName := p.parseJsxElementName()
	node.AddChild(tagName)
	if !ast.TagNamesAreEquivalent(openingTagName, tagName) {
		p.parseErrorAt(tagName.Pos, tagName.End, "Expected corresponding JSX closing tag for '%s'.",
			ast.GetTextOfNodeFromSourceText(p.sourceText, openingTagName))
	}
	if p.token == syntax.KindGreaterThanToken {
		if inExpressionContext {
			p.nextToken()
		} else {
			p.scanJsxToken()
		}
	} else {
		p.parseErrorAtCurrentToken("'%s' expected.", ">")
	}
	return p.finishNode(node)
}

// parseJsxElementName handles `this`, dotted names and `ns:name`.
func (p *Parser) parseJsxElementName() *ast.Node {
	pos := p.nodePos()
	var name *ast.Node
	if p.token == syntax.KindThisKeyword {
		name = p.parseTokenNode()
	} else {
		name = p.parseIdentifierName()
	}
	if p.parseOptional(syntax.KindColonToken) {
		node := p.newNode(syntax.KindJsxNamespacedName, pos)
		node.AddChild(name)
		node.AddChild(p.parseIdentifierName())
		return p.finishNode(node)
	}
	for p.parseOptional(syntax.KindDotToken) {
		access := p.newNode(syntax.KindPropertyAccessExpression, pos)
		access.AddChild(name)
		access.AddChild(p.parseIdentifierName())
		name = p.finishNode(access)
	}
	return name
}

func (p *Parser) parseJsxAttributes() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindJsxAttributes, pos)
	for {
		switch {
		case p.token == syntax.KindOpenBraceToken:
			node.AddChild(p.parseJsxSpreadAttribute())
		case p.token.IsIdentifierOrKeyword():
			node.AddChild(p.parseJsxAttribute())
		default:
			return p.finishNode(node)
		}
	}
}

func (p *Parser) parseJsxSpreadAttribute() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindJsxSpreadAttribute, pos)
	p.parseExpected(syntax.KindOpenBraceToken)
	p.parseExpected(syntax.KindDotDotDotToken)
	node.AddChild(p.parseExpression())
	p.parseExpected(syntax.KindCloseBraceToken)
	return p.finishNode(node)
}

func (p *Parser) parseJsxAttribute() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindJsxAttribute, pos)
	name := p.parseIdentifierName()
	if p.parseOptional(syntax.KindColonToken) {
		ns := p.newNode(syntax.KindJsxNamespacedName, pos)
		ns.AddChild(name)
		ns.AddChild(p.parseIdentifierName())
		name = p.finishNode(ns)
	}
	node.AddChild(name)
	if p.parseOptional(syntax.KindEqualsToken) {
		switch p.token {
		case syntax.KindStringLiteral:
			node.AddChild(p.parseLiteralNode())
		case syntax.KindOpenBraceToken:
			node.AddChild(p.parseJsxExpression(true))
		case syntax.KindLessThanToken:
			node.AddChild(p.parseJsxElementOrSelfClosingElementOrFragment(true))
		default:
			p.parseErrorAtCurrentToken("JSX attributes must only be assigned a non-empty 'expression'.", "")
		}
	}
	return p.finishNode(node)
}

// parseJsxExpression parses a `{...}` embedded expression. In attribute
// position the closing brace returns to normal token scanning; in
// children position it returns to JSX text.
func (p *Parser) parseJsxExpression(inAttribute bool) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindJsxExpression, pos)
	p.nextToken() // past `{`
	node.AddChild(p.parseOptionalToken(syntax.KindDotDotDotToken))
	if p.token != syntax.KindCloseBraceToken {
		node.AddChild(p.parseAssignmentExpressionOrHigher())
	}
	if inAttribute {
		p.parseExpected(syntax.KindCloseBraceToken)
	} else if p.token == syntax.KindCloseBraceToken {
		p.scanJsxToken()
	} else {
		p.parseErrorAtCurrentToken("'%s' expected.", "}")
	}
	return p.finishNode(node)
}
