package syntax

import (
	"testing"
)

// Every kind with a valid precedence must either sit inside the
// binary-operator punctuation range or be one of the keyword operators.
// The climbing loop keys off the precedence lookup, so a stray mapping
// outside these sets would make it consume tokens it must not.
func TestBinaryOperatorPrecedenceMembership(t *testing.T) {
	keywordOperators := map[Kind]bool{
		KindInKeyword:         true,
		KindInstanceOfKeyword: true,
		KindAsKeyword:         true,
		KindSatisfiesKeyword:  true,
	}
	for k := KindUnknown; k <= KindCount; k++ {
		if GetBinaryOperatorPrecedence(k) == OperatorPrecedenceInvalid {
			continue
		}
		if !k.IsBinaryOperator() && !keywordOperators[k] {
			t.Errorf("%v has a precedence but is outside the operator sets", k)
		}
	}
}

// Binary punctuation that the expression grammar actually uses must map
// to a real tier; the sentinel compares lower than all of them.
func TestBinaryOperatorPrecedenceTotality(t *testing.T) {
	binary := []Kind{
		KindLessThanToken, KindGreaterThanToken, KindLessThanEqualsToken,
		KindGreaterThanEqualsToken, KindEqualsEqualsToken, KindExclamationEqualsToken,
		KindEqualsEqualsEqualsToken, KindExclamationEqualsEqualsToken,
		KindPlusToken, KindMinusToken, KindAsteriskToken, KindAsteriskAsteriskToken,
		KindSlashToken, KindPercentToken, KindLessThanLessThanToken,
		KindGreaterThanGreaterThanToken, KindGreaterThanGreaterThanGreaterThanToken,
		KindAmpersandToken, KindBarToken, KindCaretToken,
		KindAmpersandAmpersandToken, KindBarBarToken, KindQuestionQuestionToken,
	}
	for _, k := range binary {
		if prec := GetBinaryOperatorPrecedence(k); prec <= OperatorPrecedenceInvalid {
			t.Errorf("GetBinaryOperatorPrecedence(%v) = %d, want a valid tier", k, prec)
		}
		if !k.IsBinaryOperator() {
			t.Errorf("%v should be inside the binary-operator range", k)
		}
	}
}

func TestBinaryOperatorPrecedenceOrdering(t *testing.T) {
	tests := []struct {
		tighter Kind
		looser  Kind
	}{
		{KindAsteriskToken, KindPlusToken},
		{KindAsteriskAsteriskToken, KindAsteriskToken},
		{KindPlusToken, KindLessThanLessThanToken},
		{KindLessThanLessThanToken, KindLessThanToken},
		{KindLessThanToken, KindEqualsEqualsEqualsToken},
		{KindEqualsEqualsToken, KindAmpersandToken},
		{KindAmpersandToken, KindCaretToken},
		{KindCaretToken, KindBarToken},
		{KindBarToken, KindAmpersandAmpersandToken},
		{KindAmpersandAmpersandToken, KindBarBarToken},
		{KindBarBarToken, KindQuestionQuestionToken},
		{KindQuestionQuestionToken, KindEqualsToken},
	}
	for _, tt := range tests {
		a := GetBinaryOperatorPrecedence(tt.tighter)
		b := GetBinaryOperatorPrecedence(tt.looser)
		if a <= b {
			t.Errorf("%v (%d) should bind tighter than %v (%d)", tt.tighter, a, tt.looser, b)
		}
	}
}

func TestRelationalOperators(t *testing.T) {
	relational := []Kind{
		KindLessThanToken, KindGreaterThanToken, KindLessThanEqualsToken,
		KindGreaterThanEqualsToken, KindInKeyword, KindInstanceOfKeyword,
		KindAsKeyword, KindSatisfiesKeyword,
	}
	for _, k := range relational {
		if GetBinaryOperatorPrecedence(k) != OperatorPrecedenceRelational {
			t.Errorf("%v should sit at the relational tier", k)
		}
	}
}

func TestNonOperatorsReturnInvalid(t *testing.T) {
	for _, k := range []Kind{KindIdentifier, KindOpenParenToken, KindColonToken, KindNumericLiteral, KindExclamationToken} {
		if GetBinaryOperatorPrecedence(k) != OperatorPrecedenceInvalid {
			t.Errorf("%v should map to the invalid sentinel", k)
		}
	}
}

func TestAssignmentOperatorsMapToAssignmentTier(t *testing.T) {
	for k := KindFirstAssignment; k <= KindLastAssignment; k++ {
		if GetBinaryOperatorPrecedence(k) != OperatorPrecedenceAssignment {
			t.Errorf("%v should map to the assignment tier", k)
		}
	}
}
