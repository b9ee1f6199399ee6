package mysql

import (
	"sync"

	"github.com/vippsas/sqllex/sqlparser/charset"
	"github.com/vippsas/sqllex/sqlparser/keywords"
)

// lexState is a state of the token classifier. The state the next call
// starts in is kept in Scanner.nextState between calls.
type lexState uint8

const (
	stateStart lexState = iota
	stateChar
	stateSkip
	stateIdent
	stateIdentSep
	stateIdentStart
	stateIdentOrHex
	stateIdentOrBin
	stateIdentOrNChar
	stateIdentOrDollar
	stateNumberIdent
	stateIntOrReal
	stateReal
	stateHexNumber
	stateBinNumber
	stateCmpOp
	stateLongCmpOp
	stateBool
	stateString
	stateStringOrDelimiter
	stateUserVariableDelimiter
	stateComment
	stateLongComment
	stateEndLongComment
	stateSetVar
	stateSemicolon
	stateEOL
	stateEnd
	stateRealOrPoint
	stateUserEnd
	stateHostname
	stateSystemVar
	stateIdentOrKeyword
)

var stateNames = [...]string{
	stateStart:                 "START",
	stateChar:                  "CHAR",
	stateSkip:                  "SKIP",
	stateIdent:                 "IDENT",
	stateIdentSep:              "IDENT_SEP",
	stateIdentStart:            "IDENT_START",
	stateIdentOrHex:            "IDENT_OR_HEX",
	stateIdentOrBin:            "IDENT_OR_BIN",
	stateIdentOrNChar:          "IDENT_OR_NCHAR",
	stateIdentOrDollar:         "IDENT_OR_DOLLAR",
	stateNumberIdent:           "NUMBER_IDENT",
	stateIntOrReal:             "INT_OR_REAL",
	stateReal:                  "REAL",
	stateHexNumber:             "HEX_NUMBER",
	stateBinNumber:             "BIN_NUMBER",
	stateCmpOp:                 "CMP_OP",
	stateLongCmpOp:             "LONG_CMP_OP",
	stateBool:                  "BOOL",
	stateString:                "STRING",
	stateStringOrDelimiter:     "STRING_OR_DELIMITER",
	stateUserVariableDelimiter: "USER_VARIABLE_DELIMITER",
	stateComment:               "COMMENT",
	stateLongComment:           "LONG_COMMENT",
	stateEndLongComment:        "END_LONG_COMMENT",
	stateSetVar:                "SET_VAR",
	stateSemicolon:             "SEMICOLON",
	stateEOL:                   "EOL",
	stateEnd:                   "END",
	stateRealOrPoint:           "REAL_OR_POINT",
	stateUserEnd:               "USER_END",
	stateHostname:              "HOSTNAME",
	stateSystemVar:             "SYSTEM_VAR",
	stateIdentOrKeyword:        "IDENT_OR_KEYWORD",
}

func (s lexState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// stateMaps classify every byte value for one character set: the state a
// token starting with the byte begins in, and whether the byte can be part
// of an identifier.
type stateMaps struct {
	main  [256]lexState
	ident [256]bool
}

func newStateMaps(cs charset.Charset) *stateMaps {
	m := &stateMaps{}
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case cs.IsAlpha(b):
			m.main[i] = stateIdent
		case cs.IsDigit(b):
			m.main[i] = stateNumberIdent
		case charset.UseMb(cs) && cs.MbCharLen(b) > 1:
			m.main[i] = stateIdent
		case cs.IsSpace(b):
			m.main[i] = stateSkip
		default:
			m.main[i] = stateChar
		}
	}
	m.main['_'] = stateIdent
	m.main['$'] = stateIdent
	m.main['\''] = stateString
	m.main['.'] = stateRealOrPoint
	m.main['>'] = stateCmpOp
	m.main['='] = stateCmpOp
	m.main['!'] = stateCmpOp
	m.main['<'] = stateLongCmpOp
	m.main['&'] = stateBool
	m.main['|'] = stateBool
	m.main['#'] = stateComment
	m.main[';'] = stateSemicolon
	m.main[':'] = stateSetVar
	m.main[0] = stateEOL
	m.main['/'] = stateLongComment
	m.main['*'] = stateEndLongComment
	m.main['@'] = stateUserEnd
	m.main['`'] = stateUserVariableDelimiter
	m.main['"'] = stateStringOrDelimiter

	for i := 0; i < 256; i++ {
		m.ident[i] = m.main[i] == stateIdent || m.main[i] == stateNumberIdent
	}

	// set after the identifier map so these still count as identifier bytes
	m.main['x'] = stateIdentOrHex
	m.main['X'] = stateIdentOrHex
	m.main['b'] = stateIdentOrBin
	m.main['B'] = stateIdentOrBin
	m.main['n'] = stateIdentOrNChar
	m.main['N'] = stateIdentOrNChar
	m.main['$'] = stateIdentOrDollar
	return m
}

var (
	initOnce     sync.Once
	stateMapsFor map[string]*stateMaps
)

// Init builds the tables every Scanner shares: the character set registry,
// the state maps of every character set and the keyword table. It only does
// work the first time; afterwards the tables are read only.
func Init() {
	initOnce.Do(func() {
		charset.Init()
		keywords.Init()
		stateMapsFor = map[string]*stateMaps{}
		for _, cs := range charset.All() {
			stateMapsFor[cs.Name()] = newStateMaps(cs)
		}
	})
}

func mapsFor(cs charset.Charset) *stateMaps {
	Init()
	if m, ok := stateMapsFor[cs.Name()]; ok {
		return m
	}
	// a Charset from outside the registry
	return newStateMaps(cs)
}
