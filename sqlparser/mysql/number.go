package mysql

import (
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

const (
	longStr             = "2147483647"
	longLen             = len(longStr)
	signedLongStr       = "-2147483648"
	longLongStr         = "9223372036854775807"
	longLongLen         = len(longLongStr)
	signedLongLongStr   = "-9223372036854775808"
	signedLongLongLen   = len(signedLongLongStr)
	unsignedLongLongStr = "18446744073709551615"
	unsignedLongLongLen = len(unsignedLongLongStr)
)

// IntToken classifies an integer literal by the smallest type it fits in,
// comparing digit strings instead of parsing: NUM for signed 32 bit,
// LONG_NUM for signed 64 bit, ULONGLONG_NUM for unsigned 64 bit and
// DECIMAL_NUM for anything larger. text may carry a sign.
func IntToken(text string) sqldocument.TokenID {
	if len(text) < longLen {
		return sqldocument.Num
	}

	neg := false
	switch text[0] {
	case '+':
		text = text[1:]
	case '-':
		text = text[1:]
		neg = true
	}
	for len(text) > 0 && text[0] == '0' {
		text = text[1:]
	}
	if len(text) < longLen {
		return sqldocument.Num
	}

	var cmp string
	var smaller, bigger sqldocument.TokenID
	if neg {
		switch {
		case len(text) == longLen:
			cmp = signedLongStr[1:]
			smaller, bigger = sqldocument.Num, sqldocument.LongNum
		case len(text) < signedLongLongLen-1:
			return sqldocument.LongNum
		case len(text) > signedLongLongLen-1:
			return sqldocument.DecimalNum
		default:
			cmp = signedLongLongStr[1:]
			// a negative value below the signed 64 bit range is a decimal
			smaller, bigger = sqldocument.LongNum, sqldocument.DecimalNum
		}
	} else {
		switch {
		case len(text) == longLen:
			cmp = longStr
			smaller, bigger = sqldocument.Num, sqldocument.LongNum
		case len(text) < longLongLen:
			return sqldocument.LongNum
		case len(text) > longLongLen:
			if len(text) > unsignedLongLongLen {
				return sqldocument.DecimalNum
			}
			cmp = unsignedLongLongStr
			smaller, bigger = sqldocument.ULongLongNum, sqldocument.DecimalNum
		default:
			cmp = longLongStr
			smaller, bigger = sqldocument.LongNum, sqldocument.ULongLongNum
		}
	}
	// same length: digit strings order like the numbers they spell
	if text <= cmp {
		return smaller
	}
	return bigger
}
