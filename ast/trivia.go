package ast

import "github.com/dhamidi/yomi/syntax"

// SkipTrivia returns the position of the first non-trivia character at
// or after pos: whitespace, line breaks and comments are skipped.
// Unterminated block comments run to the end of the buffer.
func SkipTrivia(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\v', '\f', '\r', '\n':
			pos++
		case '/':
			if pos+1 < len(text) && text[pos+1] == '/' {
				pos += 2
				for pos < len(text) && !isLineBreak(text[pos]) {
					pos++
				}
				continue
			}
			if pos+1 < len(text) && text[pos+1] == '*' {
				pos += 2
				for pos < len(text) {
					if text[pos] == '*' && pos+1 < len(text) && text[pos+1] == '/' {
						pos += 2
						break
					}
					pos++
				}
				continue
			}
			return pos
		default:
			return pos
		}
	}
	return pos
}

func isLineBreak(ch byte) bool {
	return ch == '\n' || ch == '\r'
}

// GetLeadingCommentRanges collects the comments between pos and the next
// token. Iteration stops at the first character that is neither
// whitespace nor the start of a comment.
func GetLeadingCommentRanges(text string, pos int) []*CommentRange {
	return collectCommentRanges(text, pos, false)
}

// GetTrailingCommentRanges collects the comments following pos on the
// same line; the first line break past a comment ends the scan.
func GetTrailingCommentRanges(text string, pos int) []*CommentRange {
	return collectCommentRanges(text, pos, true)
}

func collectCommentRanges(text string, pos int, trailing bool) []*CommentRange {
	var result []*CommentRange
	for pos < len(text) {
		ch := text[pos]
		switch {
		case ch == '\n' || ch == '\r':
			if trailing {
				return result
			}
			if n := len(result); n > 0 {
				result[n-1].HasTrailingNewLine = true
			}
			pos++
		case ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f':
			pos++
		case ch == '/' && pos+1 < len(text) && text[pos+1] == '/':
			start := pos
			pos += 2
			for pos < len(text) && !isLineBreak(text[pos]) {
				pos++
			}
			result = append(result, &CommentRange{
				Pos:  start,
				End:  pos,
				Kind: syntax.KindSingleLineCommentTrivia,
			})
		case ch == '/' && pos+1 < len(text) && text[pos+1] == '*':
			start := pos
			pos += 2
			for pos < len(text) {
				if text[pos] == '*' && pos+1 < len(text) && text[pos+1] == '/' {
					pos += 2
					break
				}
				pos++
			}
			result = append(result, &CommentRange{
				Pos:   start,
				End:   pos,
				Kind:  syntax.KindMultiLineCommentTrivia,
				JSDoc: isJSDocComment(text, start, pos),
			})
		default:
			return result
		}
	}
	return result
}

func isJSDocComment(text string, pos, end int) bool {
	// `/**` but not the empty `/**/`.
	return end-pos > 4 && text[pos+2] == '*' && text[pos+3] != '/'
}

// GetJSDocCommentRanges returns the JSDoc comments owned by node.
// Parameters, type parameters, function expressions and arrow functions
// are documented just after their position as often as before, so their
// trailing trivia is searched first; all other eligible kinds search
// leading trivia only. Kinds that cannot own JSDoc yield nil.
func GetJSDocCommentRanges(node *Node, text string) []*CommentRange {
	if !CanHaveJSDoc(node.Kind) && !isParameterLikeKind(node.Kind) {
		return nil
	}
	var ranges []*CommentRange
	if isParameterLikeKind(node.Kind) {
		ranges = GetTrailingCommentRanges(text, node.Pos)
	}
	if len(ranges) == 0 {
		ranges = GetLeadingCommentRanges(text, node.Pos)
	}
	var jsdoc []*CommentRange
	for _, r := range ranges {
		if r.JSDoc {
			jsdoc = append(jsdoc, r)
		}
	}
	return jsdoc
}

func isParameterLikeKind(kind syntax.Kind) bool {
	switch kind {
	case syntax.KindParameter, syntax.KindTypeParameter,
		syntax.KindFunctionExpression, syntax.KindArrowFunction,
		syntax.KindParenthesizedExpression:
		return true
	}
	return false
}
