package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/yomi/ast"
	"github.com/dhamidi/yomi/syntax"
	"github.com/dhamidi/yomi/tspath"
)

// ErrorHandler receives lexical diagnostics. message is a template; when
// arg is non-empty the template contains one %s verb for it.
type ErrorHandler func(pos, length int, message string, arg string)

// Scanner converts a text buffer into a stream of classified tokens.
// Trivia is consumed between tokens; the token's full start (including
// leading trivia) and its post-trivia start are both tracked so the tree
// builder can produce trivia-preserving spans.
//
// The scanner never fails: malformed input degrades to best-effort
// tokens plus diagnostics reported through the error handler.
type Scanner struct {
	text            string
	pos             int
	fullStartPos    int
	tokenStart      int
	token           syntax.Kind
	tokenValue      string
	languageVariant tspath.LanguageVariant
	onError         ErrorHandler

	hasPrecedingLineBreak bool
	possiblyImportMeta    bool
}

// New returns a scanner positioned at the start of text.
func New(text string) *Scanner {
	return &Scanner{text: text}
}

func (s *Scanner) SetLanguageVariant(variant tspath.LanguageVariant) {
	s.languageVariant = variant
}

func (s *Scanner) SetOnError(handler ErrorHandler) {
	s.onError = handler
}

// Token returns the kind produced by the most recent scan.
func (s *Scanner) Token() syntax.Kind { return s.token }

// TokenFullStart is the offset where the token's leading trivia begins,
// i.e. the end of the previous token.
func (s *Scanner) TokenFullStart() int { return s.fullStartPos }

// TokenStart is the offset of the token itself, past leading trivia.
func (s *Scanner) TokenStart() int { return s.tokenStart }

// TokenEnd is the offset just past the token.
func (s *Scanner) TokenEnd() int { return s.pos }

// TokenValue is the decoded value of the current token where one applies
// (identifier spelling, string contents, numeric text).
func (s *Scanner) TokenValue() string { return s.tokenValue }

// HasPrecedingLineBreak reports whether a line break occurred in the
// trivia before the current token.
func (s *Scanner) HasPrecedingLineBreak() bool { return s.hasPrecedingLineBreak }

// PossiblyContainsImportMeta reports whether the scanner has seen an
// `import` keyword followed by `.meta`. It is a cheap over-approximation
// that lets the module-indicator fallback skip whole-tree walks.
func (s *Scanner) PossiblyContainsImportMeta() bool { return s.possiblyImportMeta }

// State is an opaque snapshot used for speculative parsing.
type State struct {
	pos                   int
	fullStartPos          int
	tokenStart            int
	token                 syntax.Kind
	tokenValue            string
	hasPrecedingLineBreak bool
}

// Mark snapshots the scanner so a lookahead can be undone with Rewind.
func (s *Scanner) Mark() State {
	return State{
		pos:                   s.pos,
		fullStartPos:          s.fullStartPos,
		tokenStart:            s.tokenStart,
		token:                 s.token,
		tokenValue:            s.tokenValue,
		hasPrecedingLineBreak: s.hasPrecedingLineBreak,
	}
}

func (s *Scanner) Rewind(state State) {
	s.pos = state.pos
	s.fullStartPos = state.fullStartPos
	s.tokenStart = state.tokenStart
	s.token = state.token
	s.tokenValue = state.tokenValue
	s.hasPrecedingLineBreak = state.hasPrecedingLineBreak
}

func (s *Scanner) error(message string) {
	s.errorAt(s.pos, 0, message, "")
}

func (s *Scanner) errorAt(pos, length int, message, arg string) {
	if s.onError != nil {
		s.onError(pos, length, message, arg)
	}
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *Scanner) peekN(n int) byte {
	if s.pos+n >= len(s.text) {
		return 0
	}
	return s.text[s.pos+n]
}

// Scan advances past trivia and produces the next token.
func (s *Scanner) Scan() syntax.Kind {
	s.fullStartPos = s.pos
	s.hasPrecedingLineBreak = false
	s.tokenValue = ""

	for {
		s.tokenStart = s.pos
		if s.pos >= len(s.text) {
			s.token = syntax.KindEndOfFile
			return s.token
		}

		ch := s.text[s.pos]

		// A leading replacement character marks a binary buffer; no
		// further tokenization is attempted.
		if s.pos == 0 && strings.HasPrefix(s.text, "�") {
			s.errorAt(0, 0, "File appears to be binary and cannot be parsed as a text file", "")
			s.pos = len(s.text)
			s.token = syntax.KindNonTextFileMarkerTrivia
			return s.token
		}

		if s.pos == 0 && ch == '#' && s.peekN(1) == '!' {
			s.skipToLineEnd()
			continue
		}

		switch ch {
		case ' ', '\t', '\v', '\f':
			s.pos++
			continue
		case '\r', '\n':
			s.hasPrecedingLineBreak = true
			s.pos++
			continue
		case '/':
			if s.peekN(1) == '/' {
				s.skipToLineEnd()
				continue
			}
			if s.peekN(1) == '*' {
				s.skipBlockComment()
				continue
			}
		case '<', '=', '>', '|':
			if s.isConflictMarker() {
				s.skipConflictMarker()
				continue
			}
		}

		if ch >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s.text[s.pos:])
			if r == '\uFEFF' || unicode.IsSpace(r) {
				if r == ' ' || r == ' ' {
					s.hasPrecedingLineBreak = true
				}
				s.pos += size
				continue
			}
		}

		return s.scanToken()
	}
}

func (s *Scanner) skipToLineEnd() {
	for s.pos < len(s.text) && !isLineBreak(s.text[s.pos]) {
		s.pos++
	}
}

func (s *Scanner) skipBlockComment() {
	s.pos += 2
	closed := false
	for s.pos < len(s.text) {
		if s.text[s.pos] == '*' && s.peekN(1) == '/' {
			s.pos += 2
			closed = true
			break
		}
		if isLineBreak(s.text[s.pos]) {
			s.hasPrecedingLineBreak = true
		}
		s.pos++
	}
	if !closed {
		s.error("Unterminated comment")
	}
}

// Merge conflict markers are recognized at line starts so recovery can
// step over them instead of drowning in cascading errors.
func (s *Scanner) isConflictMarker() bool {
	if s.pos != 0 && !isLineBreak(s.text[s.pos-1]) {
		return false
	}
	ch := s.text[s.pos]
	if s.pos+mergeConflictMarkerLength > len(s.text) {
		return false
	}
	for i := 0; i < mergeConflictMarkerLength; i++ {
		if s.text[s.pos+i] != ch {
			return false
		}
	}
	if ch == '=' {
		return true
	}
	next := s.peekN(mergeConflictMarkerLength)
	return next == ' ' || next == 0 || isLineBreak(next)
}

const mergeConflictMarkerLength = 7

func (s *Scanner) skipConflictMarker() {
	s.errorAt(s.pos, mergeConflictMarkerLength, "Merge conflict marker encountered", "")
	ch := s.text[s.pos]
	if ch == '<' || ch == '>' {
		s.skipToLineEnd()
		return
	}
	// ||||||| and ======= sections run until the closing marker.
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if (c == '=' || c == '>') && c != ch && s.isConflictMarker() {
			return
		}
		s.pos++
	}
}

func (s *Scanner) scanToken() syntax.Kind {
	ch := s.text[s.pos]

	if isIdentifierStart(ch) {
		return s.scanIdentifierOrKeyword()
	}
	if ch >= utf8.RuneSelf {
		if r, _ := utf8.DecodeRuneInString(s.text[s.pos:]); unicode.IsLetter(r) {
			return s.scanIdentifierOrKeyword()
		}
		// Non-letter runes fall through to the invalid-character path,
		// which always advances.
	}
	if isDigit(ch) {
		return s.scanNumber()
	}

	switch ch {
	case '"', '\'':
		s.tokenValue = s.scanString(ch)
		s.token = syntax.KindStringLiteral
		return s.token
	case '`':
		s.token = s.scanTemplateAndSetTokenValue(true)
		return s.token
	case '#':
		if isIdentifierStart(s.peekN(1)) || s.peekN(1) >= utf8.RuneSelf {
			start := s.pos
			s.pos++
			s.scanIdentifierParts()
			s.tokenValue = s.text[start:s.pos]
			s.token = syntax.KindPrivateIdentifier
			return s.token
		}
		s.pos++
		s.token = syntax.KindHashToken
		return s.token
	}

	return s.scanPunctuation()
}

func (s *Scanner) scanIdentifierOrKeyword() syntax.Kind {
	start := s.pos
	s.scanIdentifierParts()
	s.tokenValue = s.text[start:s.pos]
	s.token = syntax.LookupKeyword(s.tokenValue)
	if s.token == syntax.KindImportKeyword && s.followedByDotMeta() {
		s.possiblyImportMeta = true
	}
	return s.token
}

func (s *Scanner) scanIdentifierParts() {
	for s.pos < len(s.text) {
		ch := s.text[s.pos]
		if ch < utf8.RuneSelf {
			if !isIdentifierPart(ch) {
				return
			}
			s.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return
		}
		s.pos += size
	}
}

func (s *Scanner) followedByDotMeta() bool {
	p := ast.SkipTrivia(s.text, s.pos)
	if p >= len(s.text) || s.text[p] != '.' {
		return false
	}
	p = ast.SkipTrivia(s.text, p+1)
	return strings.HasPrefix(s.text[p:], "meta") &&
		(p+4 >= len(s.text) || !isIdentifierPart(s.text[p+4]))
}

func (s *Scanner) scanNumber() syntax.Kind {
	start := s.pos
	if s.peek() == '0' {
		switch s.peekN(1) {
		case 'x', 'X':
			s.pos += 2
			s.scanRadixDigits(isHexDigit, "Hexadecimal digit expected")
			return s.finishNumber(start)
		case 'b', 'B':
			s.pos += 2
			s.scanRadixDigits(func(ch byte) bool { return ch == '0' || ch == '1' }, "Binary digit expected")
			return s.finishNumber(start)
		case 'o', 'O':
			s.pos += 2
			s.scanRadixDigits(func(ch byte) bool { return ch >= '0' && ch <= '7' }, "Octal digit expected")
			return s.finishNumber(start)
		}
	}

	s.scanDigits(isDigit)
	isFloat := false
	// `1.` is a complete literal; only `..` stays untouched.
	if s.peek() == '.' && s.peekN(1) != '.' {
		isFloat = true
		s.pos++
		s.scanDigits(isDigit)
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		next := s.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(s.peekN(2))) {
			isFloat = true
			s.pos += 2
			s.scanDigits(isDigit)
		}
	}
	if isFloat {
		s.tokenValue = s.text[start:s.pos]
		s.token = syntax.KindNumericLiteral
		return s.token
	}
	return s.finishNumber(start)
}

// scanRadixDigits consumes digits after a 0x/0b/0o prefix. A prefix with
// no digit at all is still a numeric token, but gets a diagnostic.
func (s *Scanner) scanRadixDigits(pred func(byte) bool, message string) {
	start := s.pos
	s.scanDigits(pred)
	if s.pos == start {
		s.errorAt(s.pos, 0, message, "")
	}
}

func (s *Scanner) scanDigits(pred func(byte) bool) {
	for s.pos < len(s.text) && (pred(s.text[s.pos]) || s.text[s.pos] == '_') {
		s.pos++
	}
}

func (s *Scanner) finishNumber(start int) syntax.Kind {
	kind := syntax.KindNumericLiteral
	if s.peek() == 'n' {
		s.pos++
		kind = syntax.KindBigIntLiteral
	}
	if isIdentifierStart(s.peek()) {
		s.errorAt(s.pos, 1, "An identifier or keyword cannot immediately follow a numeric literal", "")
	}
	s.tokenValue = s.text[start:s.pos]
	s.token = kind
	return s.token
}

// scanString decodes a quoted literal. An unterminated literal is closed
// at the first line break or end of file with a diagnostic; the token
// never extends past the offending line.
func (s *Scanner) scanString(quote byte) string {
	start := s.pos
	s.pos++
	var sb strings.Builder
	for {
		if s.pos >= len(s.text) || isLineBreak(s.text[s.pos]) {
			s.errorAt(start, s.pos-start, "Unterminated string literal", "")
			return sb.String()
		}
		ch := s.text[s.pos]
		if ch == quote {
			s.pos++
			return sb.String()
		}
		if ch == '\\' {
			sb.WriteString(s.scanEscapeSequence())
			continue
		}
		sb.WriteByte(ch)
		s.pos++
	}
}

func (s *Scanner) scanEscapeSequence() string {
	s.pos++ // backslash
	if s.pos >= len(s.text) {
		s.error("Unexpected end of text")
		return ""
	}
	ch := s.text[s.pos]
	s.pos++
	switch ch {
	case '0':
		return "\x00"
	case 'b':
		return "\b"
	case 't':
		return "\t"
	case 'n':
		return "\n"
	case 'v':
		return "\v"
	case 'f':
		return "\f"
	case 'r':
		return "\r"
	case 'x':
		return s.scanHexEscape(2)
	case 'u':
		if s.peek() == '{' {
			s.pos++
			start := s.pos
			for s.pos < len(s.text) && s.text[s.pos] != '}' {
				s.pos++
			}
			if s.pos >= len(s.text) {
				s.error("Unterminated Unicode escape sequence")
				return ""
			}
			value := decodeHex(s.text[start:s.pos])
			s.pos++ // '}'
			if value < 0 || value > unicode.MaxRune {
				s.errorAt(start, s.pos-start, "An extended Unicode escape value must be between 0x0 and 0x10FFFF inclusive", "")
				return string(unicode.ReplacementChar)
			}
			return string(rune(value))
		}
		return s.scanHexEscape(4)
	case '\r':
		if s.peek() == '\n' {
			s.pos++
		}
		return "" // line continuation
	case '\n':
		return ""
	default:
		return string(ch)
	}
}

func (s *Scanner) scanHexEscape(digits int) string {
	start := s.pos
	for i := 0; i < digits; i++ {
		if s.pos >= len(s.text) || !isHexDigit(s.text[s.pos]) {
			s.errorAt(start, s.pos-start, "Hexadecimal digit expected", "")
			return ""
		}
		s.pos++
	}
	return string(rune(decodeHex(s.text[start:s.pos])))
}

func decodeHex(text string) int {
	value := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= '0' && ch <= '9':
			value = value*16 + int(ch-'0')
		case ch >= 'a' && ch <= 'f':
			value = value*16 + int(ch-'a'+10)
		case ch >= 'A' && ch <= 'F':
			value = value*16 + int(ch-'A'+10)
		default:
			return -1
		}
	}
	return value
}

// scanTemplateAndSetTokenValue tokenizes a backtick-delimited span.
// startedWithBacktick distinguishes a fresh template (head / complete
// literal) from a continuation after `}` (middle / tail).
func (s *Scanner) scanTemplateAndSetTokenValue(startedWithBacktick bool) syntax.Kind {
	start := s.pos
	s.pos++ // ` or }
	var sb strings.Builder
	for {
		if s.pos >= len(s.text) {
			s.errorAt(start, s.pos-start, "Unterminated template literal", "")
			s.tokenValue = sb.String()
			if startedWithBacktick {
				return syntax.KindNoSubstitutionTemplateLiteral
			}
			return syntax.KindTemplateTail
		}
		ch := s.text[s.pos]
		if ch == '`' {
			s.pos++
			s.tokenValue = sb.String()
			if startedWithBacktick {
				return syntax.KindNoSubstitutionTemplateLiteral
			}
			return syntax.KindTemplateTail
		}
		if ch == '$' && s.peekN(1) == '{' {
			s.pos += 2
			s.tokenValue = sb.String()
			if startedWithBacktick {
				return syntax.KindTemplateHead
			}
			return syntax.KindTemplateMiddle
		}
		if ch == '\\' {
			sb.WriteString(s.scanEscapeSequence())
			continue
		}
		sb.WriteByte(ch)
		s.pos++
	}
}

// ReScanTemplateToken re-reads a `}` as the continuation of a template
// literal, producing a TemplateMiddle or TemplateTail. The parser calls
// this when it finishes a substitution expression.
func (s *Scanner) ReScanTemplateToken() syntax.Kind {
	s.pos = s.tokenStart
	s.token = s.scanTemplateAndSetTokenValue(false)
	return s.token
}

// ReScanSlashToken re-reads a `/` or `/=` as a regular-expression
// literal. The parser supplies this context; the scanner cannot decide
// between division and regex on its own.
func (s *Scanner) ReScanSlashToken() syntax.Kind {
	if s.token != syntax.KindSlashToken && s.token != syntax.KindSlashEqualsToken {
		return s.token
	}
	s.pos = s.tokenStart + 1
	inEscape := false
	inCharacterClass := false
	for {
		if s.pos >= len(s.text) || isLineBreak(s.text[s.pos]) {
			s.errorAt(s.tokenStart, s.pos-s.tokenStart, "Unterminated regular expression literal", "")
			break
		}
		ch := s.text[s.pos]
		s.pos++
		switch {
		case inEscape:
			inEscape = false
		case ch == '\\':
			inEscape = true
		case ch == '[':
			inCharacterClass = true
		case ch == ']':
			inCharacterClass = false
		case ch == '/' && !inCharacterClass:
			goto flags
		}
	}
flags:
	for s.pos < len(s.text) && isIdentifierPart(s.text[s.pos]) {
		s.pos++
	}
	s.tokenValue = s.text[s.tokenStart:s.pos]
	s.token = syntax.KindRegularExpressionLiteral
	return s.token
}

// ReScanGreaterThanToken splits a multi-character `>`-led token back
// into a single `>`; type-argument lists close one angle bracket at a
// time.
func (s *Scanner) ReScanGreaterThanToken() syntax.Kind {
	switch s.token {
	case syntax.KindGreaterThanGreaterThanToken,
		syntax.KindGreaterThanGreaterThanGreaterThanToken,
		syntax.KindGreaterThanGreaterThanEqualsToken,
		syntax.KindGreaterThanGreaterThanGreaterThanEqualsToken,
		syntax.KindGreaterThanEqualsToken:
		s.pos = s.tokenStart + 1
		s.token = syntax.KindGreaterThanToken
	}
	return s.token
}

// ReScanLessThanToken splits `<<` back into a single `<` so the parser
// can try the token as a JSX or type-argument opener.
func (s *Scanner) ReScanLessThanToken() syntax.Kind {
	if s.token == syntax.KindLessThanLessThanToken {
		s.pos = s.tokenStart + 1
		s.token = syntax.KindLessThanToken
	}
	return s.token
}

// ScanJsxToken scans the next token inside JSX children: `<`, `</`, `{`,
// or a run of JsxText up to one of those.
func (s *Scanner) ScanJsxToken() syntax.Kind {
	s.fullStartPos = s.pos
	s.tokenStart = s.pos
	s.tokenValue = ""
	if s.pos >= len(s.text) {
		s.token = syntax.KindEndOfFile
		return s.token
	}
	switch s.text[s.pos] {
	case '<':
		if s.peekN(1) == '/' {
			s.pos += 2
			s.token = syntax.KindLessThanSlashToken
		} else {
			s.pos++
			s.token = syntax.KindLessThanToken
		}
		return s.token
	case '{':
		s.pos++
		s.token = syntax.KindOpenBraceToken
		return s.token
	}
	for s.pos < len(s.text) && s.text[s.pos] != '<' && s.text[s.pos] != '{' {
		s.pos++
	}
	s.tokenValue = s.text[s.tokenStart:s.pos]
	s.token = syntax.KindJsxText
	return s.token
}

func (s *Scanner) scanPunctuation() syntax.Kind {
	start := s.pos
	ch := s.text[s.pos]
	switch ch {
	case '{':
		return s.punct(1, syntax.KindOpenBraceToken)
	case '}':
		return s.punct(1, syntax.KindCloseBraceToken)
	case '(':
		return s.punct(1, syntax.KindOpenParenToken)
	case ')':
		return s.punct(1, syntax.KindCloseParenToken)
	case '[':
		return s.punct(1, syntax.KindOpenBracketToken)
	case ']':
		return s.punct(1, syntax.KindCloseBracketToken)
	case ';':
		return s.punct(1, syntax.KindSemicolonToken)
	case ',':
		return s.punct(1, syntax.KindCommaToken)
	case '@':
		return s.punct(1, syntax.KindAtToken)
	case '~':
		return s.punct(1, syntax.KindTildeToken)
	case ':':
		return s.punct(1, syntax.KindColonToken)

	case '.':
		if s.peekN(1) == '.' && s.peekN(2) == '.' {
			return s.punct(3, syntax.KindDotDotDotToken)
		}
		if isDigit(s.peekN(1)) {
			// .5 style float
			s.pos++
			s.scanDigits(isDigit)
			if s.peek() == 'e' || s.peek() == 'E' {
				s.pos++
				if s.peek() == '+' || s.peek() == '-' {
					s.pos++
				}
				s.scanDigits(isDigit)
			}
			s.tokenValue = s.text[start:s.pos]
			s.token = syntax.KindNumericLiteral
			return s.token
		}
		return s.punct(1, syntax.KindDotToken)

	case '?':
		if s.peekN(1) == '.' && !isDigit(s.peekN(2)) {
			return s.punct(2, syntax.KindQuestionDotToken)
		}
		if s.peekN(1) == '?' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindQuestionQuestionEqualsToken)
			}
			return s.punct(2, syntax.KindQuestionQuestionToken)
		}
		return s.punct(1, syntax.KindQuestionToken)

	case '=':
		if s.peekN(1) == '=' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindEqualsEqualsEqualsToken)
			}
			return s.punct(2, syntax.KindEqualsEqualsToken)
		}
		if s.peekN(1) == '>' {
			return s.punct(2, syntax.KindEqualsGreaterThanToken)
		}
		return s.punct(1, syntax.KindEqualsToken)

	case '!':
		if s.peekN(1) == '=' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindExclamationEqualsEqualsToken)
			}
			return s.punct(2, syntax.KindExclamationEqualsToken)
		}
		return s.punct(1, syntax.KindExclamationToken)

	case '<':
		if s.peekN(1) == '<' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindLessThanLessThanEqualsToken)
			}
			return s.punct(2, syntax.KindLessThanLessThanToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindLessThanEqualsToken)
		}
		if s.peekN(1) == '/' && s.languageVariant == tspath.LanguageVariantJSX {
			return s.punct(2, syntax.KindLessThanSlashToken)
		}
		return s.punct(1, syntax.KindLessThanToken)

	case '>':
		if s.peekN(1) == '>' {
			if s.peekN(2) == '>' {
				if s.peekN(3) == '=' {
					return s.punct(4, syntax.KindGreaterThanGreaterThanGreaterThanEqualsToken)
				}
				return s.punct(3, syntax.KindGreaterThanGreaterThanGreaterThanToken)
			}
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindGreaterThanGreaterThanEqualsToken)
			}
			return s.punct(2, syntax.KindGreaterThanGreaterThanToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindGreaterThanEqualsToken)
		}
		return s.punct(1, syntax.KindGreaterThanToken)

	case '&':
		if s.peekN(1) == '&' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindAmpersandAmpersandEqualsToken)
			}
			return s.punct(2, syntax.KindAmpersandAmpersandToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindAmpersandEqualsToken)
		}
		return s.punct(1, syntax.KindAmpersandToken)

	case '|':
		if s.peekN(1) == '|' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindBarBarEqualsToken)
			}
			return s.punct(2, syntax.KindBarBarToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindBarEqualsToken)
		}
		return s.punct(1, syntax.KindBarToken)

	case '^':
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindCaretEqualsToken)
		}
		return s.punct(1, syntax.KindCaretToken)

	case '+':
		if s.peekN(1) == '+' {
			return s.punct(2, syntax.KindPlusPlusToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindPlusEqualsToken)
		}
		return s.punct(1, syntax.KindPlusToken)

	case '-':
		if s.peekN(1) == '-' {
			return s.punct(2, syntax.KindMinusMinusToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindMinusEqualsToken)
		}
		return s.punct(1, syntax.KindMinusToken)

	case '*':
		if s.peekN(1) == '*' {
			if s.peekN(2) == '=' {
				return s.punct(3, syntax.KindAsteriskAsteriskEqualsToken)
			}
			return s.punct(2, syntax.KindAsteriskAsteriskToken)
		}
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindAsteriskEqualsToken)
		}
		return s.punct(1, syntax.KindAsteriskToken)

	case '/':
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindSlashEqualsToken)
		}
		return s.punct(1, syntax.KindSlashToken)

	case '%':
		if s.peekN(1) == '=' {
			return s.punct(2, syntax.KindPercentEqualsToken)
		}
		return s.punct(1, syntax.KindPercentToken)
	}

	r, size := utf8.DecodeRuneInString(s.text[s.pos:])
	s.errorAt(s.pos, size, "Invalid character", "")
	s.pos += size
	s.tokenValue = string(r)
	s.token = syntax.KindUnknown
	return s.token
}

func (s *Scanner) punct(width int, kind syntax.Kind) syntax.Kind {
	s.pos += width
	s.token = kind
	return kind
}

func isLineBreak(ch byte) bool {
	return ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentifierPart(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
