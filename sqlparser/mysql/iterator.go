package mysql

import (
	"iter"

	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// Iterator walks the tokens of one statement through Scanner.Lex. The last
// token it yields is END_OF_INPUT, ABORT_SYM, or the end of statement marker
// at a ';' in multi-statement mode.
type Iterator struct {
	s    *Scanner
	cur  Token
	done bool
}

func NewIterator(text string, opts Options) (*Iterator, error) {
	s, err := NewScanner(text, opts)
	if err != nil {
		return nil, err
	}
	return s.Iterator(), nil
}

// Iterator starts iterating at the scanner's current position.
func (s *Scanner) Iterator() *Iterator {
	it := &Iterator{s: s}
	it.cur = s.Lex()
	return it
}

func (it *Iterator) HasNext() bool {
	return !it.done
}

// Token is the current token; it is only valid while HasNext is true.
func (it *Iterator) Token() Token {
	return it.cur
}

func (it *Iterator) Advance() {
	if it.done {
		return
	}
	switch it.cur.ID {
	case sqldocument.EndOfInput, sqldocument.AbortSym, sqldocument.EndOfStatement:
		it.done = true
		it.cur = Token{}
		return
	}
	it.cur = it.s.Lex()
}

func (it *Iterator) Scanner() *Scanner {
	return it.s
}

// All yields the remaining tokens.
func (it *Iterator) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for ; it.HasNext(); it.Advance() {
			if !yield(it.Token()) {
				return
			}
		}
	}
}
