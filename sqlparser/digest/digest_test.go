package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sqllex/sqlparser/charset"
	"github.com/vippsas/sqllex/sqlparser/keywords"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

type tok struct {
	id   sqldocument.TokenID
	text string
}

func feed(s *State, toks ...tok) {
	for _, t := range toks {
		s.AddToken(t.id, t.text)
	}
}

var (
	selectTok = tok{keywords.SelectSym, "SELECT"}
	fromTok   = tok{keywords.FromSym, "FROM"}
	whereTok  = tok{keywords.WhereSym, "WHERE"}
	inTok     = tok{keywords.InSym, "IN"}
	valuesTok = tok{keywords.ValuesSym, "VALUES"}
	eqTok     = tok{sqldocument.EQ, "="}
	comma     = tok{',', ","}
	lparen    = tok{'(', "("}
	rparen    = tok{')', ")"}
	minus     = tok{'-', "-"}
	plus      = tok{'+', "+"}
	star      = tok{'*', "*"}
)

func ident(name string) tok { return tok{sqldocument.Ident, name} }
func num(text string) tok   { return tok{sqldocument.Num, text} }
func str(text string) tok   { return tok{sqldocument.TextString, text} }

func TestDigestText(t *testing.T) {
	tests := []struct {
		name     string
		input    []tok
		expected string
	}{
		{
			name:     "literals become placeholders",
			input:    []tok{selectTok, star, fromTok, ident("t1"), whereTok, ident("id"), eqTok, num("42")},
			expected: "SELECT * FROM `t1` WHERE `id` = ?",
		},
		{
			name:     "unary minus folds",
			input:    []tok{whereTok, ident("a"), eqTok, minus, num("1")},
			expected: "WHERE `a` = ?",
		},
		{
			name:     "double unary folds",
			input:    []tok{whereTok, ident("a"), eqTok, minus, plus, num("1")},
			expected: "WHERE `a` = ?",
		},
		{
			name:     "binary minus after identifier stays",
			input:    []tok{selectTok, ident("b"), minus, num("1")},
			expected: "SELECT `b` - ?",
		},
		{
			name:     "binary minus after value stays",
			input:    []tok{selectTok, num("2"), minus, num("1")},
			expected: "SELECT ? - ?",
		},
		{
			name:     "value list",
			input:    []tok{whereTok, ident("a"), inTok, lparen, num("1"), comma, str("x"), comma, num("3"), rparen},
			expected: "WHERE `a` IN (...)",
		},
		{
			name:     "single value row",
			input:    []tok{whereTok, ident("a"), inTok, lparen, num("1"), rparen},
			expected: "WHERE `a` IN (?)",
		},
		{
			name: "rows of single values",
			input: []tok{valuesTok, lparen, num("1"), rparen, comma, lparen, num("2"), rparen,
				comma, lparen, num("3"), rparen},
			expected: "VALUES (?) /* , ... */",
		},
		{
			name: "rows of multiple values",
			input: []tok{valuesTok, lparen, num("1"), comma, num("2"), rparen, comma,
				lparen, num("3"), comma, num("4"), rparen},
			expected: "VALUES (...) /* , ... */",
		},
		{
			name:     "identifier is a barrier",
			input:    []tok{lparen, ident("a"), rparen},
			expected: "( `a` )",
		},
		{
			name:     "trailing semicolon dropped at end of statement",
			input:    []tok{selectTok, num("1"), tok{';', ";"}, tok{sqldocument.EndOfStatement, ""}},
			expected: "SELECT ?",
		},
		{
			name:     "end of input is not stored",
			input:    []tok{selectTok, num("1"), tok{sqldocument.EndOfInput, ""}},
			expected: "SELECT ?",
		},
		{
			name:     "quoted identifiers unify",
			input:    []tok{selectTok, tok{sqldocument.IdentQuoted, "we`ird"}},
			expected: "SELECT `we``ird`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(0)
			feed(s, tt.input...)
			assert.Equal(t, tt.expected, s.Text(TextOptions{}))
			assert.False(t, s.Full())
		})
	}
}

func TestQuoteWhenNeeded(t *testing.T) {
	s := New(0)
	feed(s, selectTok, ident("price"), comma, ident("select"), comma, ident("123"), comma, ident("a b"),
		comma, ident("prís"), fromTok, ident("t$1"))
	assert.Equal(t, "SELECT price , `select` , `123` , `a b` , prís FROM t$1", s.Text(TextOptions{Quote: QuoteWhenNeeded}))
}

func TestSameShapeSameHash(t *testing.T) {
	a, b, c := New(0), New(0), New(0)
	feed(a, selectTok, star, fromTok, ident("t"), whereTok, ident("id"), eqTok, num("1"))
	feed(b, selectTok, star, fromTok, ident("t"), whereTok, ident("id"), eqTok, str("abc"))
	feed(c, selectTok, star, fromTok, ident("u"), whereTok, ident("id"), eqTok, num("1"))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Len(t, a.Hash(), 64)
}

func TestFullStopsSilently(t *testing.T) {
	s := New(8)
	feed(s, selectTok, star, fromTok, star)
	assert.False(t, s.Full())
	feed(s, star)
	assert.True(t, s.Full())
	size := len(s.Bytes())
	feed(s, ident("x"), num("1"))
	assert.Equal(t, size, len(s.Bytes()))
	assert.True(t, strings.HasSuffix(s.Text(TextOptions{}), "..."))

	s.Reset()
	assert.False(t, s.Full())
	assert.True(t, s.Empty())
}

func TestIdentifierTooLongForStorage(t *testing.T) {
	s := New(10)
	feed(s, ident("abcdefghijk"))
	assert.True(t, s.Full())
	assert.True(t, s.Empty())
}

func TestReduceToken(t *testing.T) {
	s := New(0)
	feed(s, selectTok, star)
	s.ReduceToken(keywords.AllSym, '*')
	assert.Equal(t, "SELECT ALL", s.Text(TextOptions{}))

	s.Reset()
	feed(s, whereTok, tok{keywords.NotSym, "NOT"}, inTok)
	s.ReduceToken(sqldocument.Not2Sym, keywords.NotSym)
	assert.Equal(t, "WHERE NOT IN", s.Text(TextOptions{}))
	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, sqldocument.Not2Sym, items[1].Tok)

	s.Reset()
	feed(s, ident("a"), star)
	s.ReduceToken(keywords.AllSym, ident("a").id)
	assert.Equal(t, "`a` *", s.Text(TextOptions{}), "identifiers are never reduced")
}

func TestHintText(t *testing.T) {
	s := New(0)
	feed(s, selectTok, tok{TokHintCommentOpen, ""}, tok{TokHintText, "BKA(t1)"}, tok{TokHintCommentClose, ""}, star)
	assert.Equal(t, "SELECT /*+ BKA(t1) */ *", s.Text(TextOptions{}))
}

func TestIdentifierConversion(t *testing.T) {
	s := New(0)
	s.Charset = charset.MustByName("latin1")
	feed(s, selectTok, ident("caf\xe9"))
	assert.Equal(t, "SELECT `café`", s.Text(TextOptions{}))
}
