package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		function bool
		expected sqldocument.TokenID
		found    bool
	}{
		{"keyword", "SELECT", false, SelectSym, true},
		{"lowercase keyword", "select", false, SelectSym, true},
		{"mixed case keyword", "SeLeCt", false, SelectSym, true},
		{"underscore keyword", "auto_increment", false, AutoIncrementSym, true},
		{"function without paren", "count", false, 0, false},
		{"function with paren", "count", true, CountSym, true},
		{"keyword with paren", "NOT", true, NotSym, true},
		{"operator", "<=>", false, sqldocument.EqualSym, true},
		{"alternative operator", "!=", false, sqldocument.NE, true},
		{"pipes", "||", false, sqldocument.OrOr, true},
		{"identifier", "customer", true, 0, false},
		{"non-ascii lookalike", "ſelect", false, 0, false},
		{"empty", "", false, 0, false},
		{"too long", "sql_calc_found_rows_x", false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(tt.text, tt.function)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, s.Tok)
			}
		})
	}
}

func TestHintable(t *testing.T) {
	for _, word := range []string{"select", "insert", "replace", "update", "delete"} {
		s, ok := Lookup(word, false)
		require.True(t, ok)
		assert.True(t, s.IsHintable(), word)
	}
	s, ok := Lookup("create", false)
	require.True(t, ok)
	assert.False(t, s.IsHintable())
}

func TestTokenRanges(t *testing.T) {
	assert.Less(t, lastKeywordToken, sqldocument.DigestTokenStart)
	for _, table := range [][]Symbol{keywordSymbols, functionSymbols} {
		for _, s := range table {
			assert.True(t, s.Tok.IsKeyword(), s.Name)
			assert.Equal(t, s.Name, s.Tok.String())
			got, ok := ByToken(s.Tok)
			require.True(t, ok, s.Name)
			assert.Equal(t, s.Name, got.Name)
		}
	}
}

func TestSpelling(t *testing.T) {
	tests := []struct {
		tok      sqldocument.TokenID
		expected string
		found    bool
	}{
		{'(', "(", true},
		{SelectSym, "SELECT", true},
		{sqldocument.NE, "<>", true},
		{sqldocument.Or2Sym, "||", true},
		{sqldocument.JSONUnquotedSeparator, "->>", true},
		{sqldocument.Ident, "", false},
		{sqldocument.Num, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			s, ok := Spelling(tt.tok)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, s)
		})
	}
}
