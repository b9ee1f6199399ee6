package sqldocument

import (
	"fmt"
	"sync"
)

// TokenID identifies a lexical token as handed to the grammar.
//
// Token values are partitioned to avoid collisions:
//   - 0:         end of statement (yacc end marker)
//   - 1-255:     single byte tokens; the id is the byte itself
//   - 258-999:   literals, identifiers, operators and sentinels (this package)
//   - 1000-1999: keywords and functions (keywords package)
//   - 2000-2999: tokens that only exist in digests (digest package)
type TokenID int

// Token range constants.
const (
	// EndOfStatement is returned once a statement is complete; in
	// multi-statement text it marks a ';' with more text after it.
	EndOfStatement TokenID = 0
	// SingleByteTokenEnd is the first id that is not a raw byte code.
	SingleByteTokenEnd TokenID = 256
	// CommonTokenStart is the start of the lexer token range (258-999)
	CommonTokenStart TokenID = 258
	// KeywordTokenStart is the start of keyword tokens (1000-1999)
	KeywordTokenStart TokenID = 1000
	// DigestTokenStart is the start of digest-only tokens (2000-2999)
	DigestTokenStart TokenID = 2000
)

// Tokens produced by the lexer that are not keywords.
const (
	// AbortSym makes the grammar fail the statement; see Scanner.Err().
	AbortSym TokenID = iota + CommonTokenStart
	// EndOfInput is returned exactly once when the text is exhausted.
	EndOfInput

	// Identifiers
	Ident
	IdentQuoted
	LexHostname
	UnderscoreCharset

	// Literals
	TextString
	NCharString
	Num
	LongNum
	ULongLongNum
	DecimalNum
	FloatNum
	HexNum
	BinNum
	ParamMarker

	// Operators with more than one character, or with a grammar name
	EQ
	LT
	GT
	LE
	GE
	NE
	EqualSym // <=>
	ShiftLeft
	ShiftRight
	AndAnd
	OrOr
	Or2Sym  // || when PIPES_AS_CONCAT is off
	Not2Sym // NOT under HIGH_NOT_PRECEDENCE
	SetVar  // :=
	JSONSeparator
	JSONUnquotedSeparator

	// WithRollupSym merges WITH ROLLUP into one token for the grammar
	WithRollupSym

	lastCommonToken
)

var tokenToDescription = map[TokenID]string{
	EndOfStatement: "EndOfStatement",

	AbortSym:   "ABORT_SYM",
	EndOfInput: "END_OF_INPUT",

	Ident:             "IDENT",
	IdentQuoted:       "IDENT_QUOTED",
	LexHostname:       "LEX_HOSTNAME",
	UnderscoreCharset: "UNDERSCORE_CHARSET",

	TextString:   "TEXT_STRING",
	NCharString:  "NCHAR_STRING",
	Num:          "NUM",
	LongNum:      "LONG_NUM",
	ULongLongNum: "ULONGLONG_NUM",
	DecimalNum:   "DECIMAL_NUM",
	FloatNum:     "FLOAT_NUM",
	HexNum:       "HEX_NUM",
	BinNum:       "BIN_NUM",
	ParamMarker:  "PARAM_MARKER",

	EQ:                    "EQ",
	LT:                    "LT",
	GT:                    "GT_SYM",
	LE:                    "LE",
	GE:                    "GE",
	NE:                    "NE",
	EqualSym:              "EQUAL_SYM",
	ShiftLeft:             "SHIFT_LEFT",
	ShiftRight:            "SHIFT_RIGHT",
	AndAnd:                "AND_AND_SYM",
	OrOr:                  "OR_OR_SYM",
	Or2Sym:                "OR2_SYM",
	Not2Sym:               "NOT2_SYM",
	SetVar:                "SET_VAR",
	JSONSeparator:         "JSON_SEPARATOR_SYM",
	JSONUnquotedSeparator: "JSON_UNQUOTED_SEPARATOR_SYM",
	WithRollupSym:         "WITH_ROLLUP_SYM",
}

func init() {
	// make sure we panic if a description isn't declared
	for tt := CommonTokenStart; tt != lastCommonToken; tt++ {
		if tokenToDescription[tt] == "" {
			panic("you have not updated tokenToDescription")
		}
	}
}

var (
	extraNamesMu sync.RWMutex
	extraNames   = map[TokenID]string{}
)

// RegisterTokenNames lets the keywords and digest packages name the tokens
// in their ranges. It is meant to be called from package init only.
func RegisterTokenNames(names map[TokenID]string) {
	extraNamesMu.Lock()
	defer extraNamesMu.Unlock()
	for id, name := range names {
		if _, dup := extraNames[id]; dup {
			panic(fmt.Sprintf("token %d registered twice", id))
		}
		extraNames[id] = name
	}
}

// IsSingleByte is true for tokens that are the code of the byte they came from.
func (tt TokenID) IsSingleByte() bool {
	return tt > 0 && tt < SingleByteTokenEnd
}

// IsKeyword is true for tokens in the keyword range.
func (tt TokenID) IsKeyword() bool {
	return tt >= KeywordTokenStart && tt < DigestTokenStart
}

// IsLiteral is true for tokens that carry a literal value.
func (tt TokenID) IsLiteral() bool {
	switch tt {
	case TextString, NCharString, Num, LongNum, ULongLongNum, DecimalNum, FloatNum, HexNum, BinNum:
		return true
	}
	return false
}

// IsIdentifier is true for plain and quoted identifiers.
func (tt TokenID) IsIdentifier() bool {
	return tt == Ident || tt == IdentQuoted
}

func (tt TokenID) GoString() string {
	return tt.String()
}

func (tt TokenID) String() string {
	if tt.IsSingleByte() {
		return fmt.Sprintf("'%c'", rune(tt))
	}
	if s, ok := tokenToDescription[tt]; ok {
		return s
	}
	extraNamesMu.RLock()
	defer extraNamesMu.RUnlock()
	if s, ok := extraNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenID(%d)", int(tt))
}
