// Package parser builds position-exact syntax trees from source text.
// The parser is a hand-written recursive-descent tree builder over the
// scanner's token stream. It never fails: unparseable input degrades to
// zero-width missing nodes plus diagnostics, and every byte of the input
// is covered by the resulting tree.
package parser

import (
	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/scanner"
	"github.com/dhamidi/yomi/syntax"
	"github.com/dhamidi/yomi/tspath"
)

type Parser struct {
	scanner    *scanner.Scanner
	fileName   string
	sourceText string
	scriptKind tspath.ScriptKind
	variant    tspath.LanguageVariant

	token       syntax.Kind
	diagnostics []*ast.Diagnostic

	// Set when an error is reported between two finishNode calls; the
	// next finished node is tagged with ThisNodeHasError.
	parseErrorBeforeNextFinishedNode bool

	// `in` is not a binary operator inside a for-statement initializer.
	disallowIn bool
}

// ParseSourceFile parses sourceText into a tree. scriptKind may be
// ScriptKindUnknown, in which case it is inferred from the file name.
// The returned file always spans the entire text.
func ParseSourceFile(fileName, sourceText string, scriptKind tspath.ScriptKind) *ast.SourceFile {
	scriptKind = tspath.ResolveScriptKind(fileName, scriptKind)
	p := &Parser{
		fileName:   fileName,
		sourceText: sourceText,
		scriptKind: scriptKind,
		variant:    tspath.GetLanguageVariant(scriptKind),
	}
	p.scanner = scanner.New(sourceText)
	p.scanner.SetLanguageVariant(p.variant)
	p.scanner.SetOnError(p.scanError)
	return p.parseSourceFile()
}

func (p *Parser) parseSourceFile() *ast.SourceFile {
	file := &ast.SourceFile{
		Text:              p.sourceText,
		FileName:          p.fileName,
		ScriptKind:        p.scriptKind,
		LanguageVariant:   p.variant,
		IsDeclarationFile: tspath.IsDeclarationFileName(p.fileName),
	}
	file.Kind = syntax.KindSourceFile
	file.Pos = 0
	file.End = len(p.sourceText)

	p.nextToken()
	if p.token == syntax.KindNonTextFileMarkerTrivia {
		// Binary buffer: the scanner already reported it and skipped to
		// the end. The file parses as empty.
		p.nextToken()
	} else {
		for p.token != syntax.KindEndOfFile {
			before := p.scanner.TokenStart()
			file.AddChild(p.parseStatement())
			if p.scanner.TokenStart() == before && p.token != syntax.KindEndOfFile {
				// Statement parsing made no progress; drop the token so
				// the loop terminates.
				p.parseErrorAtCurrentToken("Declaration or statement expected.", "")
				p.nextToken()
			}
		}
	}

	eof := &ast.Node{Kind: syntax.KindEndOfFile, Pos: p.nodePos(), End: len(p.sourceText)}
	eof.Parent = &file.Node
	file.EndOfFileToken = eof

	if p.scanner.PossiblyContainsImportMeta() {
		file.Flags |= ast.NodeFlagsPossiblyContainsImportMeta
	}
	if file.IsDeclarationFile {
		file.Flags |= ast.NodeFlagsAmbient
	}
	file.Diagnostics = p.diagnostics
	for _, d := range p.diagnostics {
		d.File = file
	}
	return file
}

// --- token plumbing ---

func (p *Parser) nextToken() syntax.Kind {
	p.token = p.scanner.Scan()
	return p.token
}

// nodePos is the full start of the current token, which is where a node
// beginning at this token starts (leading trivia included).
func (p *Parser) nodePos() int {
	return p.scanner.TokenFullStart()
}

func (p *Parser) newNode(kind syntax.Kind, pos int) *ast.Node {
	return &ast.Node{Kind: kind, Pos: pos}
}

// finishNode closes the node at the end of the last consumed token. The
// full start of the current token is exactly that offset.
func (p *Parser) finishNode(node *ast.Node) *ast.Node {
	node.End = p.scanner.TokenFullStart()
	if p.parseErrorBeforeNextFinishedNode {
		p.parseErrorBeforeNextFinishedNode = false
		node.Flags |= ast.NodeFlagsThisNodeHasError
	}
	return node
}

// parseTokenNode wraps the current token in a node and advances.
func (p *Parser) parseTokenNode() *ast.Node {
	node := p.newNode(p.token, p.nodePos())
	node.Text = p.scanner.TokenValue()
	p.nextToken()
	return p.finishNode(node)
}

func (p *Parser) parseExpected(kind syntax.Kind) bool {
	if p.token == kind {
		p.nextToken()
		return true
	}
	p.parseErrorAtCurrentToken("'%s' expected.", syntax.TokenText(kind))
	return false
}

func (p *Parser) parseOptional(kind syntax.Kind) bool {
	if p.token == kind {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) parseOptionalToken(kind syntax.Kind) *ast.Node {
	if p.token == kind {
		return p.parseTokenNode()
	}
	return nil
}

func (p *Parser) parseExpectedToken(kind syntax.Kind) *ast.Node {
	if p.token == kind {
		return p.parseTokenNode()
	}
	return p.createMissingNode(kind, "'%s' expected.", syntax.TokenText(kind))
}

// createMissingNode reports an error at the current token and inserts a
// zero-width placeholder so the tree stays structurally complete.
func (p *Parser) createMissingNode(kind syntax.Kind, message, arg string) *ast.Node {
	p.parseErrorAtCurrentToken(message, arg)
	pos := p.nodePos()
	node := p.newNode(kind, pos)
	node.End = pos
	node.Flags |= ast.NodeFlagsThisNodeHasError
	p.parseErrorBeforeNextFinishedNode = false
	return node
}

// --- diagnostics ---

func (p *Parser) scanError(pos, length int, message, arg string) {
	p.addDiagnostic(pos, length, message, arg)
	p.parseErrorBeforeNextFinishedNode = true
}

func (p *Parser) parseErrorAtCurrentToken(message, arg string) {
	p.parseErrorAt(p.scanner.TokenStart(), p.scanner.TokenEnd(), message, arg)
}

func (p *Parser) parseErrorAt(start, end int, message, arg string) {
	p.addDiagnostic(start, end-start, message, arg)
	p.parseErrorBeforeNextFinishedNode = true
}

// addDiagnostic drops a diagnostic that starts where the previous one
// started; cascading errors at one position help nobody.
func (p *Parser) addDiagnostic(pos, length int, message, arg string) {
	if n := len(p.diagnostics); n > 0 && p.diagnostics[n-1].Start == pos {
		return
	}
	p.diagnostics = append(p.diagnostics, &ast.Diagnostic{
		FileName: p.fileName,
		Start:    pos,
		Length:   length,
		Message:  message,
		Argument: arg,
	})
}

// --- speculation ---

type parserState struct {
	scannerState scanner.State
	token        syntax.Kind
	diagLen      int
	errorFlag    bool
}

func (p *Parser) mark() parserState {
	return parserState{
		scannerState: p.scanner.Mark(),
		token:        p.token,
		diagLen:      len(p.diagnostics),
		errorFlag:    p.parseErrorBeforeNextFinishedNode,
	}
}

func (p *Parser) rewind(state parserState) {
	p.scanner.Rewind(state.scannerState)
	p.token = state.token
	p.diagnostics = p.diagnostics[:state.diagLen]
	p.parseErrorBeforeNextFinishedNode = state.errorFlag
}

// lookAhead runs cb and always rewinds.
func (p *Parser) lookAhead(cb func() bool) bool {
	state := p.mark()
	result := cb()
	p.rewind(state)
	return result
}

// tryParse runs cb and rewinds only when cb returns nil.
func (p *Parser) tryParse(cb func() *ast.Node) *ast.Node {
	state := p.mark()
	result := cb()
	if result == nil {
		p.rewind(state)
	}
	return result
}

// --- identifiers and names ---

func (p *Parser) isIdentifier() bool {
	if p.token == syntax.KindIdentifier {
		return true
	}
	// Contextual and future-reserved words serve as identifiers outside
	// their special positions.
	return p.token.IsContextualKeyword() || p.token.IsFutureReservedWord()
}

func (p *Parser) parseIdentifier() *ast.Node {
	return p.parseIdentifierWithMessage("Identifier expected.")
}

func (p *Parser) parseIdentifierWithMessage(message string) *ast.Node {
	if p.isIdentifier() {
		node := p.newNode(syntax.KindIdentifier, p.nodePos())
		node.Text = p.scanner.TokenValue()
		p.nextToken()
		return p.finishNode(node)
	}
	return p.createMissingNode(syntax.KindIdentifier, message, "")
}

// parseIdentifierName accepts any keyword as a name (property positions).
func (p *Parser) parseIdentifierName() *ast.Node {
	if p.token == syntax.KindIdentifier || p.token.IsKeyword() {
		node := p.newNode(syntax.KindIdentifier, p.nodePos())
		node.Text = p.scanner.TokenValue()
		p.nextToken()
		return p.finishNode(node)
	}
	return p.createMissingNode(syntax.KindIdentifier, "Identifier expected.", "")
}

// parseEntityName parses dotted names (a.b.c) into QualifiedName chains.
func (p *Parser) parseEntityName() *ast.Node {
	pos := p.nodePos()
	entity := p.parseIdentifier()
	for p.parseOptional(syntax.KindDotToken) {
		qualified := p.newNode(syntax.KindQualifiedName, pos)
		qualified.AddChild(entity)
		qualified.AddChild(p.parseIdentifierName())
		entity = p.finishNode(qualified)
	}
	return entity
}

func (p *Parser) parsePropertyName() *ast.Node {
	switch p.token {
	case syntax.KindStringLiteral, syntax.KindNumericLiteral, syntax.KindBigIntLiteral:
		return p.parseLiteralNode()
	case syntax.KindPrivateIdentifier:
		return p.parseTokenNode()
	case syntax.KindOpenBracketToken:
		pos := p.nodePos()
		p.nextToken()
		node := p.newNode(syntax.KindComputedPropertyName, pos)
		node.AddChild(p.parseAssignmentExpressionOrHigher())
		p.parseExpected(syntax.KindCloseBracketToken)
		return p.finishNode(node)
	}
	return p.parseIdentifierName()
}

func (p *Parser) parseLiteralNode() *ast.Node {
	return p.parseTokenNode()
}

// --- semicolons ---

// canParseSemicolon implements automatic semicolon insertion: an
// explicit semicolon, a closing brace, end of file, or a preceding line
// break all terminate the statement.
func (p *Parser) canParseSemicolon() bool {
	if p.token == syntax.KindSemicolonToken {
		return true
	}
	return p.token == syntax.KindCloseBraceToken ||
		p.token == syntax.KindEndOfFile ||
		p.scanner.HasPrecedingLineBreak()
}

func (p *Parser) parseSemicolon() bool {
	if p.token == syntax.KindSemicolonToken {
		p.nextToken()
		return true
	}
	if p.canParseSemicolon() {
		return true
	}
	p.parseErrorAtCurrentToken("'%s' expected.", ";")
	return false
}

// --- statements ---

func (p *Parser) parseStatement() *ast.Node {
	switch p.token {
	case syntax.KindSemicolonToken:
		return p.parseEmptyStatement()
	case syntax.KindOpenBraceToken:
		return p.parseBlock()
	case syntax.KindVarKeyword:
		return p.parseVariableStatement(p.nodePos(), nil)
	case syntax.KindLetKeyword, syntax.KindConstKeyword:
		if p.isStartOfVariableDeclarationList() {
			return p.parseVariableStatement(p.nodePos(), nil)
		}
		if p.token == syntax.KindConstKeyword && p.lookAhead(p.nextTokenIsEnumKeyword) {
			return p.parseDeclaration()
		}
	case syntax.KindFunctionKeyword:
		return p.parseFunctionDeclaration(p.nodePos(), nil)
	case syntax.KindClassKeyword:
		return p.parseClassDeclaration(p.nodePos(), nil)
	case syntax.KindIfKeyword:
		return p.parseIfStatement()
	case syntax.KindDoKeyword:
		return p.parseDoStatement()
	case syntax.KindWhileKeyword:
		return p.parseWhileStatement()
	case syntax.KindForKeyword:
		return p.parseForOrForInOrForOfStatement()
	case syntax.KindContinueKeyword:
		return p.parseBreakOrContinueStatement(syntax.KindContinueStatement)
	case syntax.KindBreakKeyword:
		return p.parseBreakOrContinueStatement(syntax.KindBreakStatement)
	case syntax.KindReturnKeyword:
		return p.parseReturnStatement()
	case syntax.KindWithKeyword:
		return p.parseWithStatement()
	case syntax.KindSwitchKeyword:
		return p.parseSwitchStatement()
	case syntax.KindThrowKeyword:
		return p.parseThrowStatement()
	case syntax.KindTryKeyword, syntax.KindCatchKeyword, syntax.KindFinallyKeyword:
		return p.parseTryStatement()
	case syntax.KindDebuggerKeyword:
		return p.parseDebuggerStatement()
	case syntax.KindAtToken:
		return p.parseDeclaration()
	case syntax.KindImportKeyword:
		if !p.lookAhead(p.nextTokenIsOpenParenOrDot) {
			return p.parseDeclaration()
		}
	case syntax.KindExportKeyword, syntax.KindInterfaceKeyword, syntax.KindTypeKeyword,
		syntax.KindEnumKeyword, syntax.KindNamespaceKeyword, syntax.KindModuleKeyword,
		syntax.KindDeclareKeyword, syntax.KindAbstractKeyword, syntax.KindAsyncKeyword,
		syntax.KindGlobalKeyword, syntax.KindPublicKeyword, syntax.KindPrivateKeyword,
		syntax.KindProtectedKeyword, syntax.KindStaticKeyword, syntax.KindReadonlyKeyword,
		syntax.KindAccessorKeyword:
		if p.isStartOfDeclaration() {
			return p.parseDeclaration()
		}
	}
	return p.parseExpressionOrLabeledStatement()
}

func (p *Parser) nextTokenIsOpenParenOrDot() bool {
	switch p.nextToken() {
	case syntax.KindOpenParenToken, syntax.KindDotToken:
		return true
	}
	return false
}

func (p *Parser) isStartOfVariableDeclarationList() bool {
	return p.lookAhead(func() bool {
		p.nextToken()
		if p.token == syntax.KindOpenBraceToken || p.token == syntax.KindOpenBracketToken {
			return true
		}
		return p.isIdentifier()
	})
}

// isStartOfDeclaration decides whether a keyword like `type` or `module`
// opens a declaration here or is just an identifier in an expression.
func (p *Parser) isStartOfDeclaration() bool {
	return p.lookAhead(p.isDeclarationWorker)
}

func (p *Parser) isDeclarationWorker() bool {
	for {
		switch p.token {
		case syntax.KindVarKeyword, syntax.KindLetKeyword, syntax.KindConstKeyword,
			syntax.KindFunctionKeyword, syntax.KindClassKeyword, syntax.KindEnumKeyword:
			return true
		case syntax.KindInterfaceKeyword, syntax.KindTypeKeyword:
			// Followed by an identifier on any line: a declaration.
			p.nextToken()
			return p.isIdentifier()
		case syntax.KindModuleKeyword, syntax.KindNamespaceKeyword:
			p.nextToken()
			return !p.scanner.HasPrecedingLineBreak() &&
				(p.isIdentifier() || p.token == syntax.KindStringLiteral)
		case syntax.KindAbstractKeyword, syntax.KindAccessorKeyword, syntax.KindAsyncKeyword,
			syntax.KindDeclareKeyword, syntax.KindPublicKeyword, syntax.KindPrivateKeyword,
			syntax.KindProtectedKeyword, syntax.KindReadonlyKeyword, syntax.KindStaticKeyword:
			p.nextToken()
			if p.scanner.HasPrecedingLineBreak() {
				return false
			}
			continue
		case syntax.KindGlobalKeyword:
			p.nextToken()
			return p.token == syntax.KindOpenBraceToken ||
				p.token == syntax.KindIdentifier ||
				p.token == syntax.KindExportKeyword
		case syntax.KindImportKeyword:
			p.nextToken()
			return p.token == syntax.KindStringLiteral || p.token == syntax.KindAsteriskToken ||
				p.token == syntax.KindOpenBraceToken || p.token.IsIdentifierOrKeyword()
		case syntax.KindExportKeyword:
			p.nextToken()
			if p.token == syntax.KindEqualsToken || p.token == syntax.KindAsteriskToken ||
				p.token == syntax.KindOpenBraceToken || p.token == syntax.KindDefaultKeyword ||
				p.token == syntax.KindAsKeyword || p.token == syntax.KindTypeKeyword {
				return true
			}
			continue
		default:
			return false
		}
	}
}

// parseDeclaration handles the statement forms that accept modifiers.
func (p *Parser) parseDeclaration() *ast.Node {
	pos := p.nodePos()
	modifiers := p.parseModifiers(true)

	var node *ast.Node
	switch p.token {
	case syntax.KindVarKeyword, syntax.KindLetKeyword, syntax.KindConstKeyword:
		node = p.parseVariableStatement(pos, modifiers)
	case syntax.KindFunctionKeyword:
		node = p.parseFunctionDeclaration(pos, modifiers)
	case syntax.KindClassKeyword:
		node = p.parseClassDeclaration(pos, modifiers)
	case syntax.KindInterfaceKeyword:
		node = p.parseInterfaceDeclaration(pos, modifiers)
	case syntax.KindTypeKeyword:
		node = p.parseTypeAliasDeclaration(pos, modifiers)
	case syntax.KindEnumKeyword:
		node = p.parseEnumDeclaration(pos, modifiers)
	case syntax.KindGlobalKeyword, syntax.KindModuleKeyword, syntax.KindNamespaceKeyword:
		node = p.parseModuleDeclaration(pos, modifiers)
	case syntax.KindImportKeyword:
		node = p.parseImportDeclarationOrImportEqualsDeclaration(pos, modifiers)
	case syntax.KindExportKeyword:
		p.nextToken()
		switch p.token {
		case syntax.KindDefaultKeyword, syntax.KindEqualsToken:
			node = p.parseExportAssignment(pos, modifiers)
		case syntax.KindAsKeyword:
			node = p.parseNamespaceExportDeclaration(pos, modifiers)
		default:
			node = p.parseExportDeclaration(pos, modifiers)
		}
	default:
		if len(modifiers) > 0 {
			// Modifiers with nothing to modify become a missing
			// declaration spanning what was consumed.
			node = p.createMissingNode(syntax.KindMissingDeclaration, "Declaration expected.", "")
			node.Pos = pos
			for _, m := range modifiers {
				node.AddModifier(m)
			}
			return p.finishNode(node)
		}
		return p.parseExpressionOrLabeledStatement()
	}

	if hasModifier(modifiers, syntax.KindDeclareKeyword) {
		node.Flags |= ast.NodeFlagsAmbient
	}
	return node
}

func hasModifier(modifiers []*ast.Node, kind syntax.Kind) bool {
	for _, m := range modifiers {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

// parseModifiers collects decorators and modifier keywords. A modifier
// keyword only counts when what follows it can actually be modified;
// otherwise it is an identifier and parsing stops.
func (p *Parser) parseModifiers(allowDecorators bool) []*ast.Node {
	var modifiers []*ast.Node
	for {
		if allowDecorators && p.token == syntax.KindAtToken {
			modifiers = append(modifiers, p.parseDecorator())
			continue
		}
		if !p.token.IsModifierKind() {
			return modifiers
		}
		if p.token == syntax.KindConstKeyword && !p.lookAhead(p.nextTokenIsEnumKeyword) {
			return modifiers
		}
		if p.token == syntax.KindExportKeyword {
			if !p.lookAhead(p.nextTokenCanFollowExportModifier) {
				return modifiers
			}
		} else if !p.lookAhead(p.nextTokenCanFollowModifier) {
			return modifiers
		}
		modifiers = append(modifiers, p.parseTokenNode())
	}
}

func (p *Parser) nextTokenIsEnumKeyword() bool {
	return p.nextToken() == syntax.KindEnumKeyword
}

func (p *Parser) nextTokenCanFollowModifier() bool {
	p.nextToken()
	if p.scanner.HasPrecedingLineBreak() {
		return false
	}
	return p.canFollowModifier()
}

// nextTokenCanFollowExportModifier rejects the forms where `export`
// introduces its own statement rather than modifying a declaration:
// `export {}`, `export *`, `export default`, `export =`,
// `export as namespace` and type-only re-exports.
func (p *Parser) nextTokenCanFollowExportModifier() bool {
	p.nextToken()
	switch p.token {
	case syntax.KindAsteriskToken, syntax.KindAsKeyword, syntax.KindDefaultKeyword,
		syntax.KindEqualsToken, syntax.KindOpenBraceToken:
		return false
	case syntax.KindTypeKeyword:
		p.nextToken()
		return p.token != syntax.KindOpenBraceToken && p.token != syntax.KindAsteriskToken
	}
	return p.canFollowModifier()
}

func (p *Parser) canFollowModifier() bool {
	switch p.token {
	case syntax.KindOpenBraceToken, syntax.KindOpenBracketToken, syntax.KindAsteriskToken,
		syntax.KindDotDotDotToken, syntax.KindStringLiteral, syntax.KindNumericLiteral,
		syntax.KindAtToken, syntax.KindPrivateIdentifier:
		return true
	}
	return p.token.IsIdentifierOrKeyword()
}

func (p *Parser) parseDecorator() *ast.Node {
	pos := p.nodePos()
	p.parseExpected(syntax.KindAtToken)
	node := p.newNode(syntax.KindDecorator, pos)
	node.AddChild(p.parseLeftHandSideExpressionOrHigher())
	return p.finishNode(node)
}

func (p *Parser) parseEmptyStatement() *ast.Node {
	node := p.newNode(syntax.KindEmptyStatement, p.nodePos())
	p.parseExpected(syntax.KindSemicolonToken)
	return p.finishNode(node)
}

func (p *Parser) parseBlock() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindBlock, pos)
	if p.parseExpected(syntax.KindOpenBraceToken) {
		p.parseStatementsUntilCloseBrace(node)
		p.parseExpected(syntax.KindCloseBraceToken)
	}
	return p.finishNode(node)
}

func (p *Parser) parseStatementsUntilCloseBrace(into *ast.Node) {
	for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		into.AddChild(p.parseStatement())
		if p.scanner.TokenStart() == before {
			p.parseErrorAtCurrentToken("Declaration or statement expected.", "")
			p.nextToken()
		}
	}
}

func (p *Parser) parseVariableStatement(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindVariableStatement, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	node.AddChild(p.parseVariableDeclarationList(false))
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseVariableDeclarationList(inForStatement bool) *ast.Node {
	pos := p.nodePos()
	list := p.newNode(syntax.KindVariableDeclarationList, pos)
	switch p.token {
	case syntax.KindLetKeyword:
		list.Flags |= ast.NodeFlagsLet
	case syntax.KindConstKeyword:
		list.Flags |= ast.NodeFlagsConst
	}
	p.nextToken()

	// `for (let of ...)` treats `of` as the binding, not the operator;
	// an empty list covers `for (let of x)` style edge cases.
	if p.token == syntax.KindOfKeyword && inForStatement &&
		p.lookAhead(func() bool { return p.nextToken() == syntax.KindCloseParenToken }) {
		return p.finishNode(list)
	}

	for {
		list.AddChild(p.parseVariableDeclaration(inForStatement))
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
	}
	return p.finishNode(list)
}

func (p *Parser) parseVariableDeclaration(inForStatement bool) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindVariableDeclaration, pos)
	node.AddChild(p.parseBindingName())
	if !p.scanner.HasPrecedingLineBreak() {
		node.AddChild(p.parseOptionalToken(syntax.KindExclamationToken))
	}
	node.AddChild(p.parseTypeAnnotation())
	if !inForStatement || (p.token != syntax.KindInKeyword && p.token != syntax.KindOfKeyword) {
		if p.parseOptional(syntax.KindEqualsToken) {
			saved := p.disallowIn
			p.disallowIn = inForStatement
			node.AddChild(p.parseAssignmentExpressionOrHigher())
			p.disallowIn = saved
		}
	}
	return p.finishNode(node)
}

func (p *Parser) parseBindingName() *ast.Node {
	switch p.token {
	case syntax.KindOpenBraceToken:
		return p.parseObjectBindingPattern()
	case syntax.KindOpenBracketToken:
		return p.parseArrayBindingPattern()
	}
	return p.parseIdentifier()
}

func (p *Parser) parseObjectBindingPattern() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindObjectBindingPattern, pos)
	p.parseExpected(syntax.KindOpenBraceToken)
	for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
		node.AddChild(p.parseObjectBindingElement())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
	}
	p.parseExpected(syntax.KindCloseBraceToken)
	return p.finishNode(node)
}

func (p *Parser) parseObjectBindingElement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindBindingElement, pos)
	node.AddChild(p.parseOptionalToken(syntax.KindDotDotDotToken))
	name := p.parsePropertyName()
	if p.parseOptional(syntax.KindColonToken) {
		// `{ a: b }` renames; the property name comes first.
		node.AddChild(name)
		node.AddChild(p.parseBindingName())
	} else {
		node.AddChild(name)
	}
	if p.parseOptional(syntax.KindEqualsToken) {
		node.AddChild(p.parseAssignmentExpressionOrHigher())
	}
	return p.finishNode(node)
}

func (p *Parser) parseArrayBindingPattern() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindArrayBindingPattern, pos)
	p.parseExpected(syntax.KindOpenBracketToken)
	for p.token != syntax.KindCloseBracketToken && p.token != syntax.KindEndOfFile {
		if p.token == syntax.KindCommaToken {
			elision := p.newNode(syntax.KindOmittedExpression, p.nodePos())
			node.AddChild(p.finishNode(elision))
			p.nextToken()
			continue
		}
		elem := p.newNode(syntax.KindBindingElement, p.nodePos())
		elem.AddChild(p.parseOptionalToken(syntax.KindDotDotDotToken))
		elem.AddChild(p.parseBindingName())
		if p.parseOptional(syntax.KindEqualsToken) {
			elem.AddChild(p.parseAssignmentExpressionOrHigher())
		}
		node.AddChild(p.finishNode(elem))
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
	}
	p.parseExpected(syntax.KindCloseBracketToken)
	return p.finishNode(node)
}

func (p *Parser) parseIfStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindIfStatement, pos)
	p.parseExpected(syntax.KindIfKeyword)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.parseExpression())
	p.parseExpected(syntax.KindCloseParenToken)
	node.AddChild(p.parseStatement())
	if p.parseOptional(syntax.KindElseKeyword) {
		node.AddChild(p.parseStatement())
	}
	return p.finishNode(node)
}

func (p *Parser) parseDoStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindDoStatement, pos)
	p.parseExpected(syntax.KindDoKeyword)
	node.AddChild(p.parseStatement())
	p.parseExpected(syntax.KindWhileKeyword)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.parseExpression())
	p.parseExpected(syntax.KindCloseParenToken)
	// `do {} while (...)` takes an optional semicolon with no ASI fuss.
	p.parseOptional(syntax.KindSemicolonToken)
	return p.finishNode(node)
}

func (p *Parser) parseWhileStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindWhileStatement, pos)
	p.parseExpected(syntax.KindWhileKeyword)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.parseExpression())
	p.parseExpected(syntax.KindCloseParenToken)
	node.AddChild(p.parseStatement())
	return p.finishNode(node)
}

func (p *Parser) parseForOrForInOrForOfStatement() *ast.Node {
	pos := p.nodePos()
	p.parseExpected(syntax.KindForKeyword)
	awaitToken := p.parseOptionalToken(syntax.KindAwaitKeyword)
	p.parseExpected(syntax.KindOpenParenToken)

	var initializer *ast.Node
	if p.token != syntax.KindSemicolonToken {
		if p.token == syntax.KindVarKeyword || p.token == syntax.KindLetKeyword ||
			p.token == syntax.KindConstKeyword {
			initializer = p.parseVariableDeclarationList(true)
		} else {
			saved := p.disallowIn
			p.disallowIn = true
			initializer = p.parseExpression()
			p.disallowIn = saved
		}
	}

	if p.token == syntax.KindInKeyword {
		p.nextToken()
		node := p.newNode(syntax.KindForInStatement, pos)
		node.AddChild(initializer)
		node.AddChild(p.parseExpression())
		p.parseExpected(syntax.KindCloseParenToken)
		node.AddChild(p.parseStatement())
		return p.finishNode(node)
	}
	if p.token == syntax.KindOfKeyword {
		p.nextToken()
		node := p.newNode(syntax.KindForOfStatement, pos)
		node.AddChild(awaitToken)
		node.AddChild(initializer)
		node.AddChild(p.parseAssignmentExpressionOrHigher())
		p.parseExpected(syntax.KindCloseParenToken)
		node.AddChild(p.parseStatement())
		return p.finishNode(node)
	}

	node := p.newNode(syntax.KindForStatement, pos)
	node.AddChild(initializer)
	p.parseExpected(syntax.KindSemicolonToken)
	if p.token != syntax.KindSemicolonToken && p.token != syntax.KindCloseParenToken {
		node.AddChild(p.parseExpression())
	}
	p.parseExpected(syntax.KindSemicolonToken)
	if p.token != syntax.KindCloseParenToken {
		node.AddChild(p.parseExpression())
	}
	p.parseExpected(syntax.KindCloseParenToken)
	node.AddChild(p.parseStatement())
	return p.finishNode(node)
}

func (p *Parser) parseBreakOrContinueStatement(kind syntax.Kind) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(kind, pos)
	p.nextToken()
	// A label must sit on the same line as the keyword.
	if !p.canParseSemicolon() && p.isIdentifier() {
		node.AddChild(p.parseIdentifier())
	}
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseReturnStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindReturnStatement, pos)
	p.parseExpected(syntax.KindReturnKeyword)
	if !p.canParseSemicolon() {
		node.AddChild(p.parseExpression())
	}
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseWithStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindWithStatement, pos)
	p.parseExpected(syntax.KindWithKeyword)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.parseExpression())
	p.parseExpected(syntax.KindCloseParenToken)
	node.AddChild(p.parseStatement())
	return p.finishNode(node)
}

func (p *Parser) parseSwitchStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindSwitchStatement, pos)
	p.parseExpected(syntax.KindSwitchKeyword)
	p.parseExpected(syntax.KindOpenParenToken)
	node.AddChild(p.parseExpression())
	p.parseExpected(syntax.KindCloseParenToken)

	caseBlock := p.newNode(syntax.KindCaseBlock, p.nodePos())
	p.parseExpected(syntax.KindOpenBraceToken)
	for p.token == syntax.KindCaseKeyword || p.token == syntax.KindDefaultKeyword {
		caseBlock.AddChild(p.parseCaseOrDefaultClause())
	}
	p.parseExpected(syntax.KindCloseBraceToken)
	node.AddChild(p.finishNode(caseBlock))
	return p.finishNode(node)
}

func (p *Parser) parseCaseOrDefaultClause() *ast.Node {
	pos := p.nodePos()
	var clause *ast.Node
	if p.token == syntax.KindCaseKeyword {
		clause = p.newNode(syntax.KindCaseClause, pos)
		p.nextToken()
		clause.AddChild(p.parseExpression())
	} else {
		clause = p.newNode(syntax.KindDefaultClause, pos)
		p.parseExpected(syntax.KindDefaultKeyword)
	}
	p.parseExpected(syntax.KindColonToken)
	for p.token != syntax.KindCaseKeyword && p.token != syntax.KindDefaultKeyword &&
		p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		clause.AddChild(p.parseStatement())
		if p.scanner.TokenStart() == before {
			p.nextToken()
		}
	}
	return p.finishNode(clause)
}

func (p *Parser) parseThrowStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindThrowStatement, pos)
	p.parseExpected(syntax.KindThrowKeyword)
	if p.scanner.HasPrecedingLineBreak() {
		// `throw` followed by a line break throws nothing parseable;
		// ASI applies and the expression is missing.
		node.AddChild(p.createMissingNode(syntax.KindIdentifier, "Line break not permitted here.", ""))
	} else {
		node.AddChild(p.parseExpression())
	}
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseTryStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTryStatement, pos)
	p.parseExpected(syntax.KindTryKeyword)
	node.AddChild(p.parseBlock())
	if p.token == syntax.KindCatchKeyword {
		node.AddChild(p.parseCatchClause())
	}
	if p.parseOptional(syntax.KindFinallyKeyword) {
		node.AddChild(p.parseBlock())
	}
	return p.finishNode(node)
}

func (p *Parser) parseCatchClause() *ast.Node {
	pos := p.nodePos()
	clause := p.newNode(syntax.KindCatchClause, pos)
	p.parseExpected(syntax.KindCatchKeyword)
	if p.parseOptional(syntax.KindOpenParenToken) {
		decl := p.newNode(syntax.KindVariableDeclaration, p.nodePos())
		decl.AddChild(p.parseBindingName())
		decl.AddChild(p.parseTypeAnnotation())
		clause.AddChild(p.finishNode(decl))
		p.parseExpected(syntax.KindCloseParenToken)
	}
	clause.AddChild(p.parseBlock())
	return p.finishNode(clause)
}

func (p *Parser) parseDebuggerStatement() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindDebuggerStatement, pos)
	p.parseExpected(syntax.KindDebuggerKeyword)
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseExpressionOrLabeledStatement() *ast.Node {
	pos := p.nodePos()
	expr := p.parseExpression()
	if expr.Kind == syntax.KindIdentifier && p.parseOptional(syntax.KindColonToken) {
		node := p.newNode(syntax.KindLabeledStatement, pos)
		node.AddChild(expr)
		node.AddChild(p.parseStatement())
		return p.finishNode(node)
	}
	node := p.newNode(syntax.KindExpressionStatement, pos)
	node.AddChild(expr)
	p.parseSemicolon()
	return p.finishNode(node)
}

// --- functions, classes, interfaces ---

func (p *Parser) parseFunctionDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindFunctionDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindFunctionKeyword)
	node.AddChild(p.parseOptionalToken(syntax.KindAsteriskToken))
	if p.isIdentifier() {
		node.AddChild(p.parseIdentifier())
	} else if !hasModifier(modifiers, syntax.KindDefaultKeyword) {
		node.AddChild(p.createMissingNode(syntax.KindIdentifier, "Identifier expected.", ""))
	}
	p.parseSignature(node)
	if p.token == syntax.KindOpenBraceToken {
		node.AddChild(p.parseBlock())
	} else {
		p.parseSemicolon()
	}
	return p.finishNode(node)
}

// parseSignature appends type parameters, parameters and a return type
// annotation to node.
func (p *Parser) parseSignature(node *ast.Node) {
	for _, tp := range p.parseTypeParameters() {
		node.AddChild(tp)
	}
	for _, param := range p.parseParameters() {
		node.AddChild(param)
	}
	node.AddChild(p.parseTypeAnnotation())
}

func (p *Parser) parseParameters() []*ast.Node {
	var params []*ast.Node
	if !p.parseExpected(syntax.KindOpenParenToken) {
		return params
	}
	for p.token != syntax.KindCloseParenToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		params = append(params, p.parseParameter())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
		if p.scanner.TokenStart() == before {
			break
		}
	}
	p.parseExpected(syntax.KindCloseParenToken)
	return params
}

func (p *Parser) parseParameter() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindParameter, pos)
	for _, m := range p.parseModifiers(true) {
		node.AddModifier(m)
	}
	node.AddChild(p.parseOptionalToken(syntax.KindDotDotDotToken))
	if p.token == syntax.KindThisKeyword {
		node.AddChild(p.parseTokenNode())
	} else {
		node.AddChild(p.parseBindingName())
	}
	node.AddChild(p.parseOptionalToken(syntax.KindQuestionToken))
	node.AddChild(p.parseTypeAnnotation())
	if p.parseOptional(syntax.KindEqualsToken) {
		node.AddChild(p.parseAssignmentExpressionOrHigher())
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeParameters() []*ast.Node {
	var params []*ast.Node
	if p.token != syntax.KindLessThanToken {
		return params
	}
	p.nextToken()
	for p.token != syntax.KindGreaterThanToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		params = append(params, p.parseTypeParameter())
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
	return params
}

func (p *Parser) parseTypeParameter() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindTypeParameter, pos)
	for _, m := range p.parseModifiers(false) {
		node.AddModifier(m)
	}
	node.AddChild(p.parseIdentifier())
	if p.parseOptional(syntax.KindExtendsKeyword) {
		node.AddChild(p.parseType())
	}
	if p.parseOptional(syntax.KindEqualsToken) {
		node.AddChild(p.parseType())
	}
	return p.finishNode(node)
}

func (p *Parser) parseClassDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	return p.parseClassDeclarationOrExpression(pos, modifiers, syntax.KindClassDeclaration)
}

func (p *Parser) parseClassDeclarationOrExpression(pos int, modifiers []*ast.Node, kind syntax.Kind) *ast.Node {
	node := p.newNode(kind, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindClassKeyword)
	if p.isIdentifier() && p.token != syntax.KindImplementsKeyword && p.token != syntax.KindExtendsKeyword {
		node.AddChild(p.parseIdentifier())
	}
	for _, tp := range p.parseTypeParameters() {
		node.AddChild(tp)
	}
	for _, hc := range p.parseHeritageClauses() {
		node.AddChild(hc)
	}
	if p.parseExpected(syntax.KindOpenBraceToken) {
		for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
			before := p.scanner.TokenStart()
			node.AddChild(p.parseClassElement())
			if p.scanner.TokenStart() == before {
				p.nextToken()
			}
		}
		p.parseExpected(syntax.KindCloseBraceToken)
	}
	return p.finishNode(node)
}

func (p *Parser) parseHeritageClauses() []*ast.Node {
	var clauses []*ast.Node
	for p.token == syntax.KindExtendsKeyword || p.token == syntax.KindImplementsKeyword {
		pos := p.nodePos()
		clause := p.newNode(syntax.KindHeritageClause, pos)
		clause.AddChild(p.parseTokenNode())
		for {
			clause.AddChild(p.parseExpressionWithTypeArguments())
			if !p.parseOptional(syntax.KindCommaToken) {
				break
			}
		}
		clauses = append(clauses, p.finishNode(clause))
	}
	return clauses
}

func (p *Parser) parseExpressionWithTypeArguments() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindExpressionWithTypeArguments, pos)
	node.AddChild(p.parseLeftHandSideExpressionOrHigher())
	return p.finishNode(node)
}

func (p *Parser) parseClassElement() *ast.Node {
	pos := p.nodePos()
	if p.token == syntax.KindSemicolonToken {
		node := p.newNode(syntax.KindSemicolonClassElement, pos)
		p.nextToken()
		return p.finishNode(node)
	}

	if p.token == syntax.KindStaticKeyword && p.lookAhead(p.nextTokenIsOpenBrace) {
		node := p.newNode(syntax.KindClassStaticBlockDeclaration, pos)
		p.nextToken()
		node.AddChild(p.parseBlock())
		return p.finishNode(node)
	}

	modifiers := p.parseModifiers(true)

	if p.token == syntax.KindGetKeyword || p.token == syntax.KindSetKeyword {
		if accessor := p.tryParseAccessorDeclaration(pos, modifiers); accessor != nil {
			return accessor
		}
	}

	if p.token == syntax.KindConstructorKeyword ||
		(p.token == syntax.KindStringLiteral && p.scanner.TokenValue() == "constructor" &&
			p.lookAhead(p.nextTokenIsOpenParen)) {
		node := p.newNode(syntax.KindConstructor, pos)
		for _, m := range modifiers {
			node.AddModifier(m)
		}
		p.nextToken()
		p.parseSignature(node)
		if p.token == syntax.KindOpenBraceToken {
			node.AddChild(p.parseBlock())
		} else {
			p.parseSemicolon()
		}
		return p.finishNode(node)
	}

	if p.token == syntax.KindOpenBracketToken && p.lookAhead(p.isIndexSignature) {
		return p.parseIndexSignature(pos, modifiers)
	}

	asterisk := p.parseOptionalToken(syntax.KindAsteriskToken)
	name := p.parsePropertyName()
	question := p.parseOptionalToken(syntax.KindQuestionToken)
	var exclamation *ast.Node
	if question == nil {
		exclamation = p.parseOptionalToken(syntax.KindExclamationToken)
	}

	if asterisk != nil || p.token == syntax.KindOpenParenToken || p.token == syntax.KindLessThanToken {
		node := p.newNode(syntax.KindMethodDeclaration, pos)
		for _, m := range modifiers {
			node.AddModifier(m)
		}
		node.AddChild(asterisk)
		node.AddChild(name)
		node.AddChild(question)
		p.parseSignature(node)
		if p.token == syntax.KindOpenBraceToken {
			node.AddChild(p.parseBlock())
		} else {
			p.parseSemicolon()
		}
		return p.finishNode(node)
	}

	node := p.newNode(syntax.KindPropertyDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	node.AddChild(name)
	node.AddChild(question)
	node.AddChild(exclamation)
	node.AddChild(p.parseTypeAnnotation())
	if p.parseOptional(syntax.KindEqualsToken) {
		node.AddChild(p.parseAssignmentExpressionOrHigher())
	}
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) nextTokenIsOpenBrace() bool {
	return p.nextToken() == syntax.KindOpenBraceToken
}

func (p *Parser) nextTokenIsOpenParen() bool {
	return p.nextToken() == syntax.KindOpenParenToken
}

// tryParseAccessorDeclaration commits only when `get`/`set` is followed
// by a property name; otherwise it is itself a property or method name.
func (p *Parser) tryParseAccessorDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	kind := syntax.KindGetAccessor
	if p.token == syntax.KindSetKeyword {
		kind = syntax.KindSetAccessor
	}
	return p.tryParse(func() *ast.Node {
		p.nextToken()
		if !p.token.IsIdentifierOrKeyword() &&
			p.token != syntax.KindStringLiteral && p.token != syntax.KindNumericLiteral &&
			p.token != syntax.KindOpenBracketToken && p.token != syntax.KindPrivateIdentifier {
			return nil
		}
		node := p.newNode(kind, pos)
		for _, m := range modifiers {
			node.AddModifier(m)
		}
		node.AddChild(p.parsePropertyName())
		p.parseSignature(node)
		if p.token == syntax.KindOpenBraceToken {
			node.AddChild(p.parseBlock())
		} else {
			p.parseSemicolon()
		}
		return p.finishNode(node)
	})
}

// isIndexSignature distinguishes `[x: string]: T` from a computed name.
func (p *Parser) isIndexSignature() bool {
	p.nextToken()
	if p.token == syntax.KindDotDotDotToken || p.token == syntax.KindCloseBracketToken {
		return true
	}
	if p.token.IsModifierKind() {
		p.nextToken()
		if p.isIdentifier() {
			return true
		}
	} else if !p.isIdentifier() {
		return false
	} else {
		p.nextToken()
	}
	if p.token == syntax.KindColonToken || p.token == syntax.KindCommaToken {
		return true
	}
	if p.token != syntax.KindQuestionToken {
		return false
	}
	p.nextToken()
	return p.token == syntax.KindColonToken || p.token == syntax.KindCommaToken ||
		p.token == syntax.KindCloseBracketToken
}

func (p *Parser) parseIndexSignature(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindIndexSignature, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindOpenBracketToken)
	for p.token != syntax.KindCloseBracketToken && p.token != syntax.KindEndOfFile {
		node.AddChild(p.parseParameter())
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
	}
	p.parseExpected(syntax.KindCloseBracketToken)
	node.AddChild(p.parseTypeAnnotation())
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseInterfaceDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindInterfaceDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindInterfaceKeyword)
	node.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTypeParameters() {
		node.AddChild(tp)
	}
	for _, hc := range p.parseHeritageClauses() {
		node.AddChild(hc)
	}
	for _, member := range p.parseObjectTypeMembers() {
		node.AddChild(member)
	}
	return p.finishNode(node)
}

func (p *Parser) parseObjectTypeMembers() []*ast.Node {
	var members []*ast.Node
	if !p.parseExpected(syntax.KindOpenBraceToken) {
		return members
	}
	for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
		before := p.scanner.TokenStart()
		members = append(members, p.parseTypeMember())
		if p.scanner.TokenStart() == before {
			p.nextToken()
		}
	}
	p.parseExpected(syntax.KindCloseBraceToken)
	return members
}

func (p *Parser) parseTypeMember() *ast.Node {
	pos := p.nodePos()
	if p.token == syntax.KindOpenParenToken || p.token == syntax.KindLessThanToken {
		node := p.newNode(syntax.KindCallSignature, pos)
		p.parseSignature(node)
		p.parseTypeMemberSemicolon()
		return p.finishNode(node)
	}
	if p.token == syntax.KindNewKeyword && p.lookAhead(p.nextTokenIsOpenParenOrLessThan) {
		node := p.newNode(syntax.KindConstructSignature, pos)
		p.nextToken()
		p.parseSignature(node)
		p.parseTypeMemberSemicolon()
		return p.finishNode(node)
	}

	modifiers := p.parseModifiers(false)

	if p.token == syntax.KindGetKeyword || p.token == syntax.KindSetKeyword {
		if accessor := p.tryParseAccessorDeclaration(pos, modifiers); accessor != nil {
			return accessor
		}
	}
	if p.token == syntax.KindOpenBracketToken && p.lookAhead(p.isIndexSignature) {
		return p.parseIndexSignature(pos, modifiers)
	}

	name := p.parsePropertyName()
	question := p.parseOptionalToken(syntax.KindQuestionToken)

	if p.token == syntax.KindOpenParenToken || p.token == syntax.KindLessThanToken {
		node := p.newNode(syntax.KindMethodSignature, pos)
		for _, m := range modifiers {
			node.AddModifier(m)
		}
		node.AddChild(name)
		node.AddChild(question)
		p.parseSignature(node)
		p.parseTypeMemberSemicolon()
		return p.finishNode(node)
	}

	node := p.newNode(syntax.KindPropertySignature, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	node.AddChild(name)
	node.AddChild(question)
	node.AddChild(p.parseTypeAnnotation())
	p.parseTypeMemberSemicolon()
	return p.finishNode(node)
}

func (p *Parser) nextTokenIsOpenParenOrLessThan() bool {
	switch p.nextToken() {
	case syntax.KindOpenParenToken, syntax.KindLessThanToken:
		return true
	}
	return false
}

// Type members separate with `;` or `,`, or just a line break.
func (p *Parser) parseTypeMemberSemicolon() {
	if p.parseOptional(syntax.KindCommaToken) {
		return
	}
	p.parseSemicolon()
}

func (p *Parser) parseTypeAliasDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindTypeAliasDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindTypeKeyword)
	node.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTypeParameters() {
		node.AddChild(tp)
	}
	p.parseExpected(syntax.KindEqualsToken)
	node.AddChild(p.parseType())
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseEnumDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindEnumDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindEnumKeyword)
	node.AddChild(p.parseIdentifier())
	if p.parseExpected(syntax.KindOpenBraceToken) {
		for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
			node.AddChild(p.parseEnumMember())
			if !p.parseOptional(syntax.KindCommaToken) {
				break
			}
		}
		p.parseExpected(syntax.KindCloseBraceToken)
	}
	return p.finishNode(node)
}

func (p *Parser) parseEnumMember() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindEnumMember, pos)
	node.AddChild(p.parsePropertyName())
	if p.parseOptional(syntax.KindEqualsToken) {
		node.AddChild(p.parseAssignmentExpressionOrHigher())
	}
	return p.finishNode(node)
}

func (p *Parser) parseModuleDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindModuleDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}

	if p.token == syntax.KindGlobalKeyword {
		node.AddChild(p.parseIdentifierName())
		if p.token == syntax.KindOpenBraceToken {
			node.AddChild(p.parseModuleBlock())
		} else {
			p.parseSemicolon()
		}
		return p.finishNode(node)
	}

	// `namespace` or `module`.
	p.nextToken()

	if p.token == syntax.KindStringLiteral {
		node.AddChild(p.parseLiteralNode())
	} else {
		node.AddChild(p.parseIdentifier())
		// `namespace a.b.c {}` nests; inner declarations are implicitly
		// exported.
		if p.token == syntax.KindDotToken {
			p.nextToken()
			inner := p.parseNestedModuleDeclaration()
			node.AddChild(inner)
			return p.finishNode(node)
		}
	}

	if p.token == syntax.KindOpenBraceToken {
		node.AddChild(p.parseModuleBlock())
	} else {
		p.parseSemicolon()
	}
	return p.finishNode(node)
}

func (p *Parser) parseNestedModuleDeclaration() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindModuleDeclaration, pos)
	node.Flags |= ast.NodeFlagsNestedNamespace
	node.AddChild(p.parseIdentifier())
	if p.token == syntax.KindDotToken {
		p.nextToken()
		node.AddChild(p.parseNestedModuleDeclaration())
	} else {
		node.AddChild(p.parseModuleBlock())
	}
	return p.finishNode(node)
}

func (p *Parser) parseModuleBlock() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindModuleBlock, pos)
	if p.parseExpected(syntax.KindOpenBraceToken) {
		p.parseStatementsUntilCloseBrace(node)
		p.parseExpected(syntax.KindCloseBraceToken)
	}
	return p.finishNode(node)
}

// --- imports and exports ---

func (p *Parser) parseImportDeclarationOrImportEqualsDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	p.parseExpected(syntax.KindImportKeyword)

	// `import x = require("...")` and `import x = a.b` are the legacy
	// equals form.
	if p.isIdentifier() && p.lookAhead(func() bool {
		p.nextToken()
		return p.token == syntax.KindEqualsToken
	}) {
		node := p.newNode(syntax.KindImportEqualsDeclaration, pos)
		for _, m := range modifiers {
			node.AddModifier(m)
		}
		node.AddChild(p.parseIdentifier())
		p.parseExpected(syntax.KindEqualsToken)
		node.AddChild(p.parseModuleReference())
		p.parseSemicolon()
		return p.finishNode(node)
	}

	node := p.newNode(syntax.KindImportDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	if p.token != syntax.KindStringLiteral {
		node.AddChild(p.parseImportClause())
		p.parseExpected(syntax.KindFromKeyword)
	}
	if p.token == syntax.KindStringLiteral {
		node.AddChild(p.parseLiteralNode())
	} else {
		node.AddChild(p.createMissingNode(syntax.KindStringLiteral, "String literal expected.", ""))
	}
	if p.token == syntax.KindWithKeyword || p.token == syntax.KindAssertKeyword {
		node.AddChild(p.parseImportAttributes())
	}
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseModuleReference() *ast.Node {
	if p.token == syntax.KindRequireKeyword && p.lookAhead(p.nextTokenIsOpenParen) {
		pos := p.nodePos()
		node := p.newNode(syntax.KindExternalModuleReference, pos)
		p.nextToken()
		p.parseExpected(syntax.KindOpenParenToken)
		if p.token == syntax.KindStringLiteral {
			node.AddChild(p.parseLiteralNode())
		} else {
			node.AddChild(p.createMissingNode(syntax.KindStringLiteral, "String literal expected.", ""))
		}
		p.parseExpected(syntax.KindCloseParenToken)
		return p.finishNode(node)
	}
	return p.parseEntityName()
}

func (p *Parser) parseImportClause() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindImportClause, pos)

	// `import type { ... }` marks a type-only clause; the keyword rides
	// along as a modifier.
	if p.token == syntax.KindTypeKeyword && p.lookAhead(p.nextTokenIsTypeOnlyImportContinuation) {
		node.AddModifier(p.parseTokenNode())
	}

	if p.isIdentifier() {
		node.AddChild(p.parseIdentifier())
		if !p.parseOptional(syntax.KindCommaToken) {
			return p.finishNode(node)
		}
	}
	if p.token == syntax.KindAsteriskToken {
		ns := p.newNode(syntax.KindNamespaceImport, p.nodePos())
		p.nextToken()
		p.parseExpected(syntax.KindAsKeyword)
		ns.AddChild(p.parseIdentifier())
		node.AddChild(p.finishNode(ns))
	} else if p.token == syntax.KindOpenBraceToken {
		node.AddChild(p.parseNamedImportsOrExports(syntax.KindNamedImports))
	}
	return p.finishNode(node)
}

func (p *Parser) nextTokenIsTypeOnlyImportContinuation() bool {
	p.nextToken()
	switch p.token {
	case syntax.KindOpenBraceToken, syntax.KindAsteriskToken:
		return true
	case syntax.KindFromKeyword:
		// `import type from "m"` imports a binding named `type`.
		return p.lookAhead(func() bool { return p.nextToken() == syntax.KindStringLiteral })
	}
	return p.isIdentifier()
}

func (p *Parser) parseNamedImportsOrExports(kind syntax.Kind) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(kind, pos)
	specKind := syntax.KindImportSpecifier
	if kind == syntax.KindNamedExports {
		specKind = syntax.KindExportSpecifier
	}
	p.parseExpected(syntax.KindOpenBraceToken)
	for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
		node.AddChild(p.parseImportOrExportSpecifier(specKind))
		if !p.parseOptional(syntax.KindCommaToken) {
			break
		}
	}
	p.parseExpected(syntax.KindCloseBraceToken)
	return p.finishNode(node)
}

func (p *Parser) parseImportOrExportSpecifier(kind syntax.Kind) *ast.Node {
	pos := p.nodePos()
	node := p.newNode(kind, pos)
	if p.token == syntax.KindTypeKeyword && p.lookAhead(func() bool {
		p.nextToken()
		if p.token == syntax.KindAsKeyword {
			// `type as x` vs `type as as x`: one more token decides.
			p.nextToken()
			return p.token == syntax.KindAsKeyword || p.token.IsIdentifierOrKeyword()
		}
		return p.token.IsIdentifierOrKeyword() || p.token == syntax.KindStringLiteral
	}) {
		node.AddModifier(p.parseTokenNode())
	}
	name := p.parseSpecifierName()
	if p.token == syntax.KindAsKeyword {
		p.nextToken()
		node.AddChild(name)
		node.AddChild(p.parseSpecifierName())
	} else {
		node.AddChild(name)
	}
	return p.finishNode(node)
}

// Arbitrary module namespace identifiers allow string names.
func (p *Parser) parseSpecifierName() *ast.Node {
	if p.token == syntax.KindStringLiteral {
		return p.parseLiteralNode()
	}
	return p.parseIdentifierName()
}

func (p *Parser) parseImportAttributes() *ast.Node {
	pos := p.nodePos()
	node := p.newNode(syntax.KindImportAttributes, pos)
	p.nextToken() // `with` or `assert`
	if p.parseExpected(syntax.KindOpenBraceToken) {
		for p.token != syntax.KindCloseBraceToken && p.token != syntax.KindEndOfFile {
			attr := p.newNode(syntax.KindImportAttribute, p.nodePos())
			if p.token == syntax.KindStringLiteral {
				attr.AddChild(p.parseLiteralNode())
			} else {
				attr.AddChild(p.parseIdentifierName())
			}
			p.parseExpected(syntax.KindColonToken)
			attr.AddChild(p.parseAssignmentExpressionOrHigher())
			node.AddChild(p.finishNode(attr))
			if !p.parseOptional(syntax.KindCommaToken) {
				break
			}
		}
		p.parseExpected(syntax.KindCloseBraceToken)
	}
	return p.finishNode(node)
}

// parseExportAssignment covers `export default expr` and `export = expr`.
// The introducing token is kept as the first child.
func (p *Parser) parseExportAssignment(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindExportAssignment, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	if p.token == syntax.KindEqualsToken {
		node.AddChild(p.parseTokenNode())
		node.AddChild(p.parseAssignmentExpressionOrHigher())
		p.parseSemicolon()
		return p.finishNode(node)
	}
	node.AddChild(p.parseTokenNode()) // `default`
	switch p.token {
	case syntax.KindFunctionKeyword:
		node.AddChild(p.parseFunctionDeclaration(p.nodePos(), []*ast.Node{defaultModifier(node)}))
	case syntax.KindClassKeyword:
		node.AddChild(p.parseClassDeclaration(p.nodePos(), []*ast.Node{defaultModifier(node)}))
	default:
		node.AddChild(p.parseAssignmentExpressionOrHigher())
		p.parseSemicolon()
	}
	return p.finishNode(node)
}

// defaultModifier fabricates a zero-width `default` marker so a default
// function or class may omit its name.
func defaultModifier(parent *ast.Node) *ast.Node {
	m := &ast.Node{Kind: syntax.KindDefaultKeyword, Pos: parent.Pos, End: parent.Pos}
	return m
}

func (p *Parser) parseNamespaceExportDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindNamespaceExportDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}
	p.parseExpected(syntax.KindAsKeyword)
	p.parseExpected(syntax.KindNamespaceKeyword)
	node.AddChild(p.parseIdentifier())
	p.parseSemicolon()
	return p.finishNode(node)
}

func (p *Parser) parseExportDeclaration(pos int, modifiers []*ast.Node) *ast.Node {
	node := p.newNode(syntax.KindExportDeclaration, pos)
	for _, m := range modifiers {
		node.AddModifier(m)
	}

	if p.token == syntax.KindTypeKeyword && p.lookAhead(func() bool {
		p.nextToken()
		return p.token == syntax.KindOpenBraceToken || p.token == syntax.KindAsteriskToken
	}) {
		node.AddModifier(p.parseTokenNode())
	}

	needsFrom := false
	if p.parseOptional(syntax.KindAsteriskToken) {
		if p.parseOptional(syntax.KindAsKeyword) {
			ns := p.newNode(syntax.KindNamespaceExport, p.nodePos())
			ns.AddChild(p.parseSpecifierName())
			node.AddChild(p.finishNode(ns))
		}
		needsFrom = true
	} else {
		node.AddChild(p.parseNamedImportsOrExports(syntax.KindNamedExports))
	}

	if p.token == syntax.KindFromKeyword || needsFrom {
		p.parseExpected(syntax.KindFromKeyword)
		if p.token == syntax.KindStringLiteral {
			node.AddChild(p.parseLiteralNode())
		} else {
			node.AddChild(p.createMissingNode(syntax.KindStringLiteral, "String literal expected.", ""))
		}
		if p.token == syntax.KindWithKeyword || p.token == syntax.KindAssertKeyword {
			node.AddChild(p.parseImportAttributes())
		}
	}
	p.parseSemicolon()
	return p.finishNode(node)
}
