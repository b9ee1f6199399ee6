// Package charset provides the character set services the lexer consumes:
// per-byte classification, multi-byte character lengths, lookup by name and
// conversion of literals to UTF-8.
package charset

import (
	"unicode"
)

// Charset is the view of a character set the lexer needs.
type Charset interface {
	// Name is the canonical lowercase MySQL name, e.g. "utf8mb4".
	Name() string
	MbMinLen() int
	MbMaxLen() int

	// MbCharLen returns the length of a character judging from its first
	// byte only: 1 for single byte characters, >1 for a multi-byte lead
	// byte, 0 if b can not start a character.
	MbCharLen(b byte) int

	// IsMbChar returns the length of the well-formed multi-byte character
	// at the start of p, or 0 if p does not start with one.
	IsMbChar(p []byte) int

	IsAlpha(b byte) bool
	IsDigit(b byte) bool
	IsXDigit(b byte) bool
	IsAlnum(b byte) bool
	IsSpace(b byte) bool
	IsCntrl(b byte) bool
	ToUpper(b byte) byte

	// ToUTF8 converts text in this character set to UTF-8.
	ToUTF8(p []byte) ([]byte, error)
}

// UseMb reports whether the lexer has to care about multi-byte characters.
func UseMb(cs Charset) bool {
	return cs.MbMaxLen() > 1
}

// IsUTF8 is true for the UTF-8 family, where conversion to UTF-8 is a copy.
func IsUTF8(cs Charset) bool {
	switch cs.Name() {
	case "utf8mb4", "utf8mb3":
		return true
	}
	return false
}

type ctype uint8

const (
	ctUpper ctype = 1 << iota
	ctLower
	ctDigit
	ctSpace
	ctPunct
	ctCntrl
	ctXDigit
)

// ctypeTable is the byte classification shared by every character set for
// the ASCII range; character sets fill in the upper half themselves.
type ctypeTable struct {
	class [256]ctype
	upper [256]byte
}

func newASCIITable() ctypeTable {
	var t ctypeTable
	for i := 0; i < 256; i++ {
		b := byte(i)
		t.upper[i] = b
		if i >= 0x80 {
			continue
		}
		r := rune(b)
		switch {
		case b >= 'A' && b <= 'Z':
			t.class[i] |= ctUpper
		case b >= 'a' && b <= 'z':
			t.class[i] |= ctLower
			t.upper[i] = b - 'a' + 'A'
		case b >= '0' && b <= '9':
			t.class[i] |= ctDigit
		case b == ' ' || (b >= '\t' && b <= '\r'):
			t.class[i] |= ctSpace
		case b < 0x20 || b == 0x7f:
			t.class[i] |= ctCntrl
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			t.class[i] |= ctPunct
		}
		if (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') {
			t.class[i] |= ctXDigit
		}
		// space characters other than ' ' are also control characters
		if b >= '\t' && b <= '\r' {
			t.class[i] |= ctCntrl
		}
	}
	return t
}

func (t *ctypeTable) IsAlpha(b byte) bool  { return t.class[b]&(ctUpper|ctLower) != 0 }
func (t *ctypeTable) IsDigit(b byte) bool  { return t.class[b]&ctDigit != 0 }
func (t *ctypeTable) IsXDigit(b byte) bool { return t.class[b]&ctXDigit != 0 }
func (t *ctypeTable) IsAlnum(b byte) bool  { return t.class[b]&(ctUpper|ctLower|ctDigit) != 0 }
func (t *ctypeTable) IsSpace(b byte) bool  { return t.class[b]&ctSpace != 0 }
func (t *ctypeTable) IsCntrl(b byte) bool  { return t.class[b]&ctCntrl != 0 }
func (t *ctypeTable) ToUpper(b byte) byte  { return t.upper[b] }
