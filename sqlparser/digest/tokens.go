package digest

import "github.com/vippsas/sqllex/sqlparser/sqldocument"

// Tokens that only exist in digests (range 2000-2999). They replace literal
// values and identifiers so that statements differing only in those share
// a digest.
const (
	// TokGenericValue replaces any literal: ?
	TokGenericValue sqldocument.TokenID = iota + sqldocument.DigestTokenStart
	// TokGenericValueList is ?, ...
	TokGenericValueList
	// TokRowSingleValue is (?)
	TokRowSingleValue
	TokRowSingleValueList
	// TokRowMultipleValue is (...)
	TokRowMultipleValue
	TokRowMultipleValueList
	// TokIdent is stored together with the identifier text.
	TokIdent
	// TokUnused is what peeking back returns past the start of the
	// storage or across the last identifier.
	TokUnused
	TokHintCommentOpen
	// TokHintText carries the body of an optimizer hint comment.
	TokHintText
	TokHintCommentClose

	lastDigestToken
)

var tokenText = map[sqldocument.TokenID]string{
	TokGenericValue:         "?",
	TokGenericValueList:     "?, ...",
	TokRowSingleValue:       "(?)",
	TokRowSingleValueList:   "(?) /* , ... */",
	TokRowMultipleValue:     "(...)",
	TokRowMultipleValueList: "(...) /* , ... */",
	TokIdent:                "(tok-ident)",
	TokUnused:               "UNUSED",
	TokHintCommentOpen:      "/*+",
	TokHintText:             "(tok-hint)",
	TokHintCommentClose:     "*/",
}

func init() {
	names := map[sqldocument.TokenID]string{}
	for tok := TokGenericValue; tok < lastDigestToken; tok++ {
		text, ok := tokenText[tok]
		if !ok {
			panic("you have not updated tokenText")
		}
		names[tok] = text
	}
	sqldocument.RegisterTokenNames(names)
}

// storesText is true for tokens that are followed by a length and bytes.
func storesText(tok sqldocument.TokenID) bool {
	return tok == TokIdent || tok == TokHintText
}

func isValue(tok sqldocument.TokenID) bool {
	switch tok {
	case TokGenericValue, TokGenericValueList,
		TokRowSingleValue, TokRowSingleValueList,
		TokRowMultipleValue, TokRowMultipleValueList:
		return true
	}
	return tok.IsLiteral()
}

// startsExpression tells a unary sign from a binary operator: a sign that
// follows one of these tokens belongs to the number after it.
func startsExpression(tok sqldocument.TokenID) bool {
	switch {
	case tok == TokUnused, tok == ')', tok == TokIdent, isValue(tok):
		return false
	case tok.IsSingleByte(), tok.IsKeyword():
		return true
	}
	switch tok {
	case sqldocument.EQ, sqldocument.LT, sqldocument.GT, sqldocument.LE, sqldocument.GE,
		sqldocument.NE, sqldocument.EqualSym, sqldocument.ShiftLeft, sqldocument.ShiftRight,
		sqldocument.AndAnd, sqldocument.OrOr, sqldocument.Or2Sym, sqldocument.Not2Sym,
		sqldocument.SetVar:
		return true
	}
	return false
}
