package charset

import (
	"unicode/utf8"
)

// utf8Charset covers utf8mb4 and the 3 byte utf8mb3 subset.
type utf8Charset struct {
	ctypeTable
	name   string
	maxLen int
}

func newUTF8(name string, maxLen int) *utf8Charset {
	cs := &utf8Charset{ctypeTable: newASCIITable(), name: name, maxLen: maxLen}
	// every byte of a non-ASCII character is an identifier byte
	for i := 0x80; i < 0x100; i++ {
		cs.class[i] |= ctUpper | ctLower
	}
	return cs
}

func (cs *utf8Charset) Name() string  { return cs.name }
func (cs *utf8Charset) MbMinLen() int { return 1 }
func (cs *utf8Charset) MbMaxLen() int { return cs.maxLen }

func (cs *utf8Charset) MbCharLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4 && cs.maxLen >= 4:
		return 4
	}
	return 0
}

func (cs *utf8Charset) IsMbChar(p []byte) int {
	if len(p) == 0 || p[0] < 0x80 {
		return 0
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return 0
	}
	if size > cs.maxLen {
		return 0
	}
	return size
}

func (cs *utf8Charset) ToUTF8(p []byte) ([]byte, error) {
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// binaryCharset is the byte-for-byte character set used by _binary.
type binaryCharset struct {
	ctypeTable
	name string
}

func (cs *binaryCharset) Name() string        { return cs.name }
func (cs *binaryCharset) MbMinLen() int       { return 1 }
func (cs *binaryCharset) MbMaxLen() int       { return 1 }
func (cs *binaryCharset) MbCharLen(byte) int  { return 1 }
func (cs *binaryCharset) IsMbChar([]byte) int { return 0 }

func (cs *binaryCharset) ToUTF8(p []byte) ([]byte, error) {
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// asciiCharset replaces anything above 0x7f with '?' on conversion.
type asciiCharset struct {
	binaryCharset
}

func (cs *asciiCharset) ToUTF8(p []byte) ([]byte, error) {
	out := make([]byte, len(p))
	for i, b := range p {
		if b >= 0x80 {
			b = '?'
		}
		out[i] = b
	}
	return out, nil
}
