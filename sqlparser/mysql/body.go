package mysql

import (
	"github.com/vippsas/sqllex/sqlparser/charset"
)

// The UTF-8 body is built from the preprocessed text: spans between
// literals are copied as they are and every identifier and string literal
// is replaced by its value converted to UTF-8. It is only kept when
// Options.BodyUTF8 is set.

// bodyAppend copies the preprocessed text up to ptr.
func (s *Scanner) bodyAppend(ptr int) {
	s.bodyAppendTo(ptr, ptr)
}

// bodyAppendTo copies the preprocessed text up to ptr and continues
// from end, dropping what is in between.
func (s *Scanner) bodyAppendTo(ptr, end int) {
	if !s.opts.BodyUTF8 {
		return
	}
	if ptr > len(s.cpp) {
		ptr = len(s.cpp)
	}
	if ptr > s.bodyProcessed {
		s.body = append(s.body, s.cpp[s.bodyProcessed:ptr]...)
	}
	if end > s.bodyProcessed {
		s.bodyProcessed = end
	}
}

// bodyAppendLiteral appends text, which is in cs, and continues from end.
func (s *Scanner) bodyAppendLiteral(text string, cs charset.Charset, end int) {
	if !s.opts.BodyUTF8 {
		return
	}
	if cs == nil || charset.IsUTF8(cs) || cs.Name() == "binary" {
		s.body = append(s.body, text...)
	} else if converted, err := cs.ToUTF8([]byte(text)); err != nil {
		s.warn(err.Error())
		s.body = append(s.body, text...)
	} else {
		s.body = append(s.body, converted...)
	}
	s.bodyProcessed = end
}

// BodyUTF8 is the statement body converted to UTF-8 as far as it has been
// lexed. It is empty unless Options.BodyUTF8 is set.
func (s *Scanner) BodyUTF8() string {
	if !s.opts.BodyUTF8 {
		return ""
	}
	body := string(s.body)
	if s.bodyProcessed < len(s.cpp) {
		body += string(s.cpp[s.bodyProcessed:])
	}
	return body
}
