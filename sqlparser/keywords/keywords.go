// Package keywords is the symbol table of the MySQL lexer: reserved and
// non-reserved words, functions that are only keywords before '(', and the
// multi-character operators the comparison states look up.
package keywords

import (
	"sync"

	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// Group flags say where a symbol may be recognized.
type Group uint8

const (
	GroupKeyword Group = 1 << iota
	GroupFunction
	// GroupHintable keywords may be followed by an optimizer hint comment.
	GroupHintable
	GroupOperator
)

// Symbol is one entry in the symbol table. Name is the canonical spelling.
type Symbol struct {
	Name  string
	Tok   sqldocument.TokenID
	Group Group
}

func (s *Symbol) IsHintable() bool {
	return s.Group&GroupHintable != 0
}

var operatorSymbols = []Symbol{
	{Name: "=", Tok: sqldocument.EQ, Group: GroupOperator},
	{Name: "<", Tok: sqldocument.LT, Group: GroupOperator},
	{Name: ">", Tok: sqldocument.GT, Group: GroupOperator},
	{Name: "<=", Tok: sqldocument.LE, Group: GroupOperator},
	{Name: ">=", Tok: sqldocument.GE, Group: GroupOperator},
	{Name: "<>", Tok: sqldocument.NE, Group: GroupOperator},
	{Name: "!=", Tok: sqldocument.NE, Group: GroupOperator},
	{Name: "<=>", Tok: sqldocument.EqualSym, Group: GroupOperator},
	{Name: "<<", Tok: sqldocument.ShiftLeft, Group: GroupOperator},
	{Name: ">>", Tok: sqldocument.ShiftRight, Group: GroupOperator},
	{Name: "&&", Tok: sqldocument.AndAnd, Group: GroupOperator},
	{Name: "||", Tok: sqldocument.OrOr, Group: GroupOperator},
}

// spellings of tokens that have no entry of their own in the symbol table
var extraSpellings = map[sqldocument.TokenID]string{
	sqldocument.Or2Sym:                "||",
	sqldocument.Not2Sym:               "NOT",
	sqldocument.SetVar:                ":=",
	sqldocument.JSONSeparator:         "->",
	sqldocument.JSONUnquotedSeparator: "->>",
	sqldocument.WithRollupSym:         "WITH ROLLUP",
	sqldocument.ParamMarker:           "?",
}

var (
	initOnce  sync.Once
	keywords  map[string]*Symbol
	functions map[string]*Symbol
	byToken   map[sqldocument.TokenID]*Symbol
)

func init() {
	names := map[sqldocument.TokenID]string{}
	for _, table := range [][]Symbol{keywordSymbols, functionSymbols} {
		for _, s := range table {
			names[s.Tok] = s.Name
		}
	}
	sqldocument.RegisterTokenNames(names)
}

// Init builds the lookup tables. Lookup calls it; calling it early only
// moves the cost.
func Init() {
	initOnce.Do(func() {
		keywords = make(map[string]*Symbol, len(keywordSymbols)+len(operatorSymbols))
		functions = make(map[string]*Symbol, len(functionSymbols))
		byToken = make(map[sqldocument.TokenID]*Symbol, len(keywordSymbols)+len(functionSymbols)+len(operatorSymbols))
		for _, table := range []struct {
			symbols []Symbol
			into    map[string]*Symbol
		}{
			{keywordSymbols, keywords},
			{operatorSymbols, keywords},
			{functionSymbols, functions},
		} {
			for i := range table.symbols {
				s := &table.symbols[i]
				table.into[s.Name] = s
				// first spelling wins, so NE renders as <>
				if _, ok := byToken[s.Tok]; !ok {
					byToken[s.Tok] = s
				}
			}
		}
	})
}

// Lookup finds text in the symbol table, ignoring case. Functions are only
// considered when the caller saw '(' directly after the word.
func Lookup(text string, function bool) (*Symbol, bool) {
	Init()
	if len(text) == 0 || len(text) > maxSymbolLength {
		return nil, false
	}
	upper := toUpperASCII(text)
	if s, ok := keywords[upper]; ok {
		return s, true
	}
	if function {
		if s, ok := functions[upper]; ok {
			return s, true
		}
	}
	return nil, false
}

// ByToken returns the symbol a keyword, function or operator token came from.
func ByToken(tok sqldocument.TokenID) (*Symbol, bool) {
	Init()
	s, ok := byToken[tok]
	return s, ok
}

// Spelling returns the canonical text of a token that always has the same
// text, and false for identifiers, literals and sentinels.
func Spelling(tok sqldocument.TokenID) (string, bool) {
	if tok.IsSingleByte() {
		return string(rune(tok)), true
	}
	if s, ok := ByToken(tok); ok {
		return s.Name, true
	}
	s, ok := extraSpellings[tok]
	return s, ok
}

// maxSymbolLength is the length of the longest name in the table
const maxSymbolLength = len("SQL_CALC_FOUND_ROWS")

// toUpperASCII folds a-z only; text with non-ASCII bytes never names a symbol
// and comes back empty.
func toUpperASCII(s string) string {
	lower := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return ""
		}
		lower = lower || (c >= 'a' && c <= 'z')
	}
	if !lower {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
