package mysql

import (
	"strings"

	"github.com/vippsas/sqllex/sqlparser/charset"
)

// getText scans a string literal whose opening quote was just read.
// preSkip is the length of the prefix (the quote, or N and the quote) and
// postSkip the length of the closing quote. It returns the value with
// escapes resolved, and false if the text ends before the closing quote.
func (s *Scanner) getText(preSkip, postSkip int) (string, bool) {
	sep := s.last()
	foundEscape := false
	noBackslash := s.opts.SQLMode.Has(ModeNoBackslashEscapes)
	useMb := charset.UseMb(s.cs)

	for !s.eof() {
		c := s.get()
		if useMb {
			if l := s.cs.IsMbChar(s.buf[s.ptr-1 : s.end]); l > 0 {
				s.skipBinary(l - 1)
				continue
			}
		}
		switch {
		case c == '\\' && !noBackslash:
			foundEscape = true
			if s.eof() {
				return "", false
			}
			s.skip()
		case c == sep:
			if s.get() == sep {
				// '' inside '...'
				foundEscape = true
				continue
			}
			s.unget()

			start := s.tokStart + preSkip
			end := s.ptr - postSkip
			s.cppTextStart = s.cppTokStart + preSkip
			s.cppTextEnd = len(s.cpp) - postSkip
			if !foundEscape {
				return string(s.buf[start:end]), true
			}
			return s.unescape(s.buf[start:end], sep), true
		}
	}
	return "", false
}

func (s *Scanner) unescape(raw []byte, sep byte) string {
	noBackslash := s.opts.SQLMode.Has(ModeNoBackslashEscapes)
	useMb := charset.UseMb(s.cs)

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if useMb {
			if l := s.cs.IsMbChar(raw[i:]); l > 0 {
				sb.Write(raw[i : i+l])
				i += l - 1
				continue
			}
		}
		c := raw[i]
		switch {
		case c == '\\' && !noBackslash && i+1 < len(raw):
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'b':
				sb.WriteByte('\b')
			case '0':
				sb.WriteByte(0)
			case 'Z':
				sb.WriteByte(032) // Win32 end of file
			case '_', '%':
				// kept for LIKE patterns
				sb.WriteByte('\\')
				sb.WriteByte(raw[i])
			default:
				sb.WriteByte(raw[i])
			}
		case c == sep:
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// getToken returns the length bytes starting skip bytes into the token,
// after taking back the byte that ended it.
func (s *Scanner) getToken(skip, length int) string {
	s.unget()
	start := s.tokStart + skip
	s.cppTextStart = s.cppTokStart + skip
	s.cppTextEnd = s.cppTextStart + length
	return string(s.buf[start : start+length])
}

// getQuotedToken is getToken for a quoted identifier with doubled quotes
// in its rawLength bytes; each pair becomes one quote.
func (s *Scanner) getQuotedToken(skip, rawLength int, quote byte) string {
	s.unget()
	start := s.tokStart + skip
	s.cppTextStart = s.cppTokStart + skip
	s.cppTextEnd = s.cppTextStart + rawLength

	raw := s.buf[start : start+rawLength]
	useMb := charset.UseMb(s.cs)
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if useMb {
			if l := s.cs.IsMbChar(raw[i:]); l > 0 {
				sb.Write(raw[i : i+l])
				i += l - 1
				continue
			}
		}
		sb.WriteByte(raw[i])
		if raw[i] == quote {
			i++
		}
	}
	return sb.String()
}

// QuoteIdentifier quotes name with quote (a backtick, or '"' under
// ANSI_QUOTES) so that the lexer reads it back as name.
func QuoteIdentifier(name string, quote byte) string {
	var sb strings.Builder
	sb.Grow(len(name) + 2)
	sb.WriteByte(quote)
	for i := 0; i < len(name); i++ {
		if name[i] == quote {
			sb.WriteByte(quote)
		}
		sb.WriteByte(name[i])
	}
	sb.WriteByte(quote)
	return sb.String()
}
