// Package digest accumulates the normalized token stream of a statement:
// literals become ?, value lists collapse, identifiers are kept. Two
// statements with the same shape get the same digest text and hash.
package digest

import (
	"encoding/binary"

	"github.com/vippsas/sqllex/sqlparser/charset"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// DefaultMaxLength is the storage size used when none is configured.
const DefaultMaxLength = 1024

const tokenSize = 2

// State is a bounded digest accumulator. Once the storage is full further
// tokens are dropped and Full reports true; it never returns errors.
type State struct {
	storage   []byte
	maxLength int
	full      bool
	// tokens at or before this offset are never reduced
	lastIDIndex int

	// Charset is the character set identifier text arrives in; nil is utf8mb4.
	Charset charset.Charset
}

func New(maxLength int) *State {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &State{
		storage:   make([]byte, 0, maxLength),
		maxLength: maxLength,
	}
}

// Reset empties the storage for the next statement.
func (s *State) Reset() {
	s.storage = s.storage[:0]
	s.full = false
	s.lastIDIndex = 0
}

func (s *State) Full() bool {
	return s.full
}

func (s *State) Empty() bool {
	return len(s.storage) == 0
}

// Bytes is the raw token storage; it is what Hash hashes.
func (s *State) Bytes() []byte {
	return s.storage
}

func (s *State) storeToken(tok sqldocument.TokenID) {
	if len(s.storage)+tokenSize > s.maxLength {
		s.full = true
		return
	}
	s.storage = binary.LittleEndian.AppendUint16(s.storage, uint16(tok))
}

func (s *State) storeText(tok sqldocument.TokenID, text string) {
	if len(text) > 0xffff || len(s.storage)+2*tokenSize+len(text) > s.maxLength {
		s.full = true
		return
	}
	s.storage = binary.LittleEndian.AppendUint16(s.storage, uint16(tok))
	s.storage = binary.LittleEndian.AppendUint16(s.storage, uint16(len(text)))
	s.storage = append(s.storage, text...)
}

func (s *State) tokenAt(offset int) sqldocument.TokenID {
	return sqldocument.TokenID(binary.LittleEndian.Uint16(s.storage[offset:]))
}

// peek returns the n-th token from the end (n=1 is the last one), or
// TokUnused when that would reach back over the last identifier.
func (s *State) peek(n int) sqldocument.TokenID {
	offset := len(s.storage) - n*tokenSize
	if offset < s.lastIDIndex || offset < 0 {
		return TokUnused
	}
	return s.tokenAt(offset)
}

func (s *State) pop(n int) {
	s.storage = s.storage[:len(s.storage)-n*tokenSize]
}

// AddToken appends a lexer token, reducing the tail of the storage where
// a value pattern completes.
func (s *State) AddToken(tok sqldocument.TokenID, text string) {
	if s.full || tok == sqldocument.EndOfInput {
		return
	}

	switch tok {
	case sqldocument.Num, sqldocument.LongNum, sqldocument.ULongLongNum, sqldocument.DecimalNum,
		sqldocument.FloatNum, sqldocument.BinNum, sqldocument.HexNum:
		// fold unary signs: "a = -1" becomes "a = ?" while "b - 1" stays "b - ?"
		for {
			last := s.peek(1)
			if (last == '-' || last == '+') && startsExpression(s.peek(2)) {
				s.pop(1)
				continue
			}
			break
		}
		s.addValue()

	case sqldocument.LexHostname, sqldocument.TextString, sqldocument.NCharString, sqldocument.ParamMarker:
		s.addValue()

	case ')':
		s.addCloseParen()

	case sqldocument.Ident, sqldocument.IdentQuoted, TokIdent:
		s.storeText(TokIdent, text)
		s.lastIDIndex = len(s.storage)

	case TokHintText:
		s.storeText(TokHintText, text)
		s.lastIDIndex = len(s.storage)

	case sqldocument.EndOfStatement:
		if s.peek(1) == ';' {
			s.pop(1)
		}

	default:
		s.storeToken(tok)
	}
}

func (s *State) addValue() {
	tok := TokGenericValue
	if prev := s.peek(2); (prev == TokGenericValue || prev == TokGenericValueList) && s.peek(1) == ',' {
		s.pop(2)
		tok = TokGenericValueList
	}
	s.storeToken(tok)
}

func (s *State) addCloseParen() {
	var tok sqldocument.TokenID = ')'
	last, prev := s.peek(1), s.peek(2)
	switch {
	case last == TokGenericValue && prev == '(':
		s.pop(2)
		tok = TokRowSingleValue
		if prev := s.peek(2); (prev == TokRowSingleValue || prev == TokRowSingleValueList) && s.peek(1) == ',' {
			s.pop(2)
			tok = TokRowSingleValueList
		}
	case last == TokGenericValueList && prev == '(':
		s.pop(2)
		tok = TokRowMultipleValue
		if prev := s.peek(2); (prev == TokRowMultipleValue || prev == TokRowMultipleValueList) && s.peek(1) == ',' {
			s.pop(2)
			tok = TokRowMultipleValueList
		}
	}
	s.storeToken(tok)
}

// ReduceToken lets the grammar replace a token it has just seen: a trailing
// right becomes left, and so does right followed by one more token.
func (s *State) ReduceToken(left, right sqldocument.TokenID) {
	if s.full {
		return
	}
	last, prev := s.peek(1), s.peek(2)
	switch {
	case last == right:
		s.pop(1)
		s.storeToken(left)
	case prev == right:
		s.pop(2)
		s.storeToken(left)
		s.storeToken(last)
	}
}

// Item is one decoded entry of the storage.
type Item struct {
	Tok  sqldocument.TokenID
	Text string
}

// Items decodes the storage.
func (s *State) Items() []Item {
	var items []Item
	for offset := 0; offset+tokenSize <= len(s.storage); {
		tok := s.tokenAt(offset)
		offset += tokenSize
		item := Item{Tok: tok}
		if storesText(tok) {
			n := int(binary.LittleEndian.Uint16(s.storage[offset:]))
			offset += tokenSize
			item.Text = string(s.storage[offset : offset+n])
			offset += n
		}
		items = append(items, item)
	}
	return items
}
