package charset

import (
	"fmt"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// singleByte is a character set with a golang.org/x/text charmap behind it.
// The upper half of the ctype table is derived from what each byte decodes to.
type singleByte struct {
	ctypeTable
	name string
	cm   *charmap.Charmap
}

func newSingleByte(name string, cm *charmap.Charmap) *singleByte {
	cs := &singleByte{ctypeTable: newASCIITable(), name: name, cm: cm}
	for i := 0x80; i < 0x100; i++ {
		r := cm.DecodeByte(byte(i))
		cs.class[i] = classifyRune(r)
		if up := unicode.ToUpper(r); up != r {
			if b, ok := cm.EncodeRune(up); ok {
				cs.upper[i] = b
			}
		}
	}
	return cs
}

func (cs *singleByte) Name() string        { return cs.name }
func (cs *singleByte) MbMinLen() int       { return 1 }
func (cs *singleByte) MbMaxLen() int       { return 1 }
func (cs *singleByte) MbCharLen(byte) int  { return 1 }
func (cs *singleByte) IsMbChar([]byte) int { return 0 }

func (cs *singleByte) ToUTF8(p []byte) ([]byte, error) {
	out, err := cs.cm.NewDecoder().Bytes(p)
	if err != nil {
		return nil, fmt.Errorf("charset %s: %w", cs.name, err)
	}
	return out, nil
}

// classifyRune maps a decoded non-ASCII character to ctype flags. Only the
// ASCII range ever counts as digits or spaces.
func classifyRune(r rune) ctype {
	switch {
	case r == unicode.ReplacementChar:
		return 0
	case unicode.IsUpper(r):
		return ctUpper
	case unicode.IsLower(r):
		return ctLower
	case unicode.IsLetter(r):
		return ctUpper | ctLower
	case unicode.IsControl(r):
		return ctCntrl
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return ctPunct
	}
	return 0
}

// byteRange is an inclusive range of byte values.
type byteRange struct{ lo, hi byte }

func inRanges(b byte, ranges []byteRange) bool {
	for _, r := range ranges {
		if b >= r.lo && b <= r.hi {
			return true
		}
	}
	return false
}

// multiByte is a double byte (or EUC style) character set. Lead bytes are
// classified as letters so that the lexer starts an identifier on them.
type multiByte struct {
	ctypeTable
	name   string
	maxLen int
	enc    encoding.Encoding
	// lead byte ranges for 2 byte characters
	lead2 []byteRange
	// lead byte ranges for 3 byte characters (EUC-JP 0x8F)
	lead3 []byteRange
	trail []byteRange
}

func newMultiByte(cs *multiByte) *multiByte {
	cs.ctypeTable = newASCIITable()
	if cs.maxLen == 0 {
		cs.maxLen = 2
	}
	for i := 0x80; i < 0x100; i++ {
		b := byte(i)
		if cs.MbCharLen(b) > 1 {
			cs.class[i] = ctUpper | ctLower
			continue
		}
		// single byte characters in the upper half, e.g. half width katakana
		if out, err := cs.enc.NewDecoder().Bytes([]byte{b}); err == nil {
			if rs := []rune(string(out)); len(rs) == 1 {
				cs.class[i] = classifyRune(rs[0])
			}
		}
	}
	return cs
}

func (cs *multiByte) Name() string  { return cs.name }
func (cs *multiByte) MbMinLen() int { return 1 }
func (cs *multiByte) MbMaxLen() int { return cs.maxLen }

func (cs *multiByte) MbCharLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case inRanges(b, cs.lead3):
		return 3
	case inRanges(b, cs.lead2):
		return 2
	}
	return 1
}

func (cs *multiByte) IsMbChar(p []byte) int {
	if len(p) == 0 {
		return 0
	}
	n := cs.MbCharLen(p[0])
	if n < 2 || len(p) < n {
		return 0
	}
	for _, b := range p[1:n] {
		if !inRanges(b, cs.trail) {
			return 0
		}
	}
	return n
}

func (cs *multiByte) ToUTF8(p []byte) ([]byte, error) {
	out, err := cs.enc.NewDecoder().Bytes(p)
	if err != nil {
		return nil, fmt.Errorf("charset %s: %w", cs.name, err)
	}
	return out, nil
}
