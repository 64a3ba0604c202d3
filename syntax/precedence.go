package syntax

// OperatorPrecedence orders the expression grammar's binding tiers from
// loosest to tightest. The parser climbs these tiers when building
// binary expressions.
type OperatorPrecedence int

const (
	OperatorPrecedenceComma OperatorPrecedence = iota
	OperatorPrecedenceSpread
	OperatorPrecedenceYield
	OperatorPrecedenceAssignment
	OperatorPrecedenceConditional
	OperatorPrecedenceCoalesce
	OperatorPrecedenceLogicalOR
	OperatorPrecedenceLogicalAND
	OperatorPrecedenceBitwiseOR
	OperatorPrecedenceBitwiseXOR
	OperatorPrecedenceBitwiseAND
	OperatorPrecedenceEquality
	OperatorPrecedenceRelational
	OperatorPrecedenceShift
	OperatorPrecedenceAdditive
	OperatorPrecedenceMultiplicative
	OperatorPrecedenceExponentiation
	OperatorPrecedenceUnary
	OperatorPrecedenceUpdate
	OperatorPrecedenceLeftHandSide
	OperatorPrecedenceMember
	OperatorPrecedencePrimary

	OperatorPrecedenceHighest = OperatorPrecedencePrimary
	OperatorPrecedenceLowest  = OperatorPrecedenceComma
	// OperatorPrecedenceInvalid is the sentinel returned for kinds that
	// are not binary operators; it compares lower than every real tier
	// and therefore terminates precedence climbing.
	OperatorPrecedenceInvalid OperatorPrecedence = -1
)

// GetBinaryOperatorPrecedence maps an operator token kind to its binding
// tier. `in`, `instanceof`, `as` and `satisfies` are classified at the
// relational tier so type contexts share the climbing logic used for
// comparisons. Assignment operators map to the assignment tier; the
// climbing loop never descends that far, so assignments stay
// right-associative via the dedicated assignment parse.
func GetBinaryOperatorPrecedence(kind Kind) OperatorPrecedence {
	switch kind {
	case KindQuestionQuestionToken:
		return OperatorPrecedenceCoalesce
	case KindBarBarToken:
		return OperatorPrecedenceLogicalOR
	case KindAmpersandAmpersandToken:
		return OperatorPrecedenceLogicalAND
	case KindBarToken:
		return OperatorPrecedenceBitwiseOR
	case KindCaretToken:
		return OperatorPrecedenceBitwiseXOR
	case KindAmpersandToken:
		return OperatorPrecedenceBitwiseAND
	case KindEqualsEqualsToken, KindExclamationEqualsToken,
		KindEqualsEqualsEqualsToken, KindExclamationEqualsEqualsToken:
		return OperatorPrecedenceEquality
	case KindLessThanToken, KindGreaterThanToken,
		KindLessThanEqualsToken, KindGreaterThanEqualsToken,
		KindInKeyword, KindInstanceOfKeyword,
		KindAsKeyword, KindSatisfiesKeyword:
		return OperatorPrecedenceRelational
	case KindLessThanLessThanToken, KindGreaterThanGreaterThanToken,
		KindGreaterThanGreaterThanGreaterThanToken:
		return OperatorPrecedenceShift
	case KindPlusToken, KindMinusToken:
		return OperatorPrecedenceAdditive
	case KindAsteriskToken, KindSlashToken, KindPercentToken:
		return OperatorPrecedenceMultiplicative
	case KindAsteriskAsteriskToken:
		return OperatorPrecedenceExponentiation
	}
	if kind.IsAssignmentOperator() {
		return OperatorPrecedenceAssignment
	}
	return OperatorPrecedenceInvalid
}
