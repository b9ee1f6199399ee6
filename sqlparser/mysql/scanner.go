// Package mysql lexes MySQL statement text into the tokens of the MySQL
// grammar. Besides the tokens it produces the preprocessed text (version
// comments expanded, comment markers removed), the statement digest and
// optionally a UTF-8 copy of the statement body.
package mysql

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vippsas/sqllex/sqlparser/charset"
	"github.com/vippsas/sqllex/sqlparser/digest"
	"github.com/vippsas/sqllex/sqlparser/internal/utils"
	"github.com/vippsas/sqllex/sqlparser/keywords"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// DigestSink receives the tokens of a statement as they are lexed.
// *digest.State is the implementation used unless Options.DigestSink is set.
type DigestSink interface {
	AddToken(tok sqldocument.TokenID, text string)
	ReduceToken(left, right sqldocument.TokenID)
	Full() bool
}

// Value is what the grammar gets along with a token id.
type Value struct {
	// Text is the identifier or literal with quotes removed and escapes
	// resolved, or the text of a keyword as written.
	Text string
	// Symbol is set for keywords, functions and operators.
	Symbol *keywords.Symbol
	// Charset is set on UNDERSCORE_CHARSET and on the string literal
	// following it.
	Charset charset.Charset
	// Hints is the body of an optimizer hint comment following a
	// SELECT, INSERT, REPLACE, UPDATE or DELETE keyword.
	Hints string
}

type Warning struct {
	Pos     sqldocument.Pos
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s", w.Pos, w.Message)
}

// Scanner is the MySQL lexer. It lexes one statement at a time; Reset and
// NextStatement reuse its buffers for the next one. A Scanner must not be
// used from several goroutines at once, but any number of Scanners can run
// in parallel.
type Scanner struct {
	inputStream

	opts   Options
	cs     charset.Charset
	maps   *stateMaps
	log    logrus.FieldLogger
	digest DigestSink
	// digestState is digest when the built in digest is used
	digestState *digest.State

	nextState lexState
	value     Value

	// charset of an introducer, applied to the next string literal
	underscoreCS charset.Charset
	// set when a hintable keyword already added itself to the digest
	skipDigest bool
	// offset just past a ';' that ended a statement, or -1
	foundSemicolon int

	lookahead            *Token
	lookaheadSkipsDigest bool

	body          []byte
	bodyProcessed int

	pos      posTracker
	err      *sqldocument.Error
	warnings []Warning
}

var _ sqldocument.Lexer = (*Scanner)(nil)

// NewScanner returns a Scanner positioned at the start of text.
func NewScanner(text string, opts Options) (*Scanner, error) {
	Init()
	opts, cs, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	s := &Scanner{
		opts: opts,
		cs:   cs,
		maps: mapsFor(cs),
		log:  opts.Logger,
	}
	switch {
	case opts.DigestSink != nil:
		s.digest = opts.DigestSink
	case opts.DigestMaxLength >= 0:
		s.digestState = digest.New(opts.DigestMaxLength)
		s.digestState.Charset = cs
		s.digest = s.digestState
	}
	s.Reset(text)
	return s, nil
}

// Reset starts lexing a new statement, reusing the buffers.
func (s *Scanner) Reset(text string) {
	s.reset(text)
	s.pos = posTracker{file: s.opts.File, startLine: 1, startCol: 1}
	s.pos.reset()
}

func (s *Scanner) reset(text string) {
	s.inputStream.reset(text)
	s.nextState = stateStart
	s.value = Value{}
	s.underscoreCS = nil
	s.skipDigest = false
	s.foundSemicolon = -1
	s.lookahead = nil
	s.lookaheadSkipsDigest = false
	s.body = s.body[:0]
	s.bodyProcessed = 0
	s.err = nil
	s.warnings = s.warnings[:0]
	if s.digestState != nil {
		s.digestState.Reset()
	}
}

// NextStatement continues with the text after the ';' that ended the
// current statement in multi-statement mode. Positions keep counting from
// the start of the original text. It returns false if no ';' was found.
func (s *Scanner) NextStatement() bool {
	if s.foundSemicolon < 0 {
		return false
	}
	at := s.position(s.foundSemicolon)
	rest := string(s.buf[s.foundSemicolon:s.end])
	utils.DPrint("next statement at %s, %d bytes left\n", at, len(rest))
	s.reset(rest)
	s.pos.continueAt(at)
	return true
}

func (s *Scanner) Options() Options {
	return s.opts
}

func (s *Scanner) Charset() charset.Charset {
	return s.cs
}

// Value of the token last returned by NextToken.
func (s *Scanner) Value() Value {
	return s.value
}

// Span of the token last returned by NextToken in the raw text.
func (s *Scanner) Span() sqldocument.Span {
	start, end := s.tokStart, s.ptr
	if s.tokEnd >= 0 {
		end = s.tokEnd
	}
	if end > s.end {
		end = s.end
	}
	if start > end {
		start = end
	}
	return sqldocument.Span{Start: start, End: end}
}

// PreprocessedSpan of the token last returned by NextToken.
func (s *Scanner) PreprocessedSpan() sqldocument.Span {
	end := len(s.cpp)
	if s.cppTokEnd >= 0 && s.cppTokEnd < end {
		end = s.cppTokEnd
	}
	start := s.cppTokStart
	if start > end {
		start = end
	}
	return sqldocument.Span{Start: start, End: end}
}

// Pos of the start of the token last returned by NextToken.
func (s *Scanner) Pos() sqldocument.Pos {
	return s.position(s.tokStart)
}

// Text is the raw statement text.
func (s *Scanner) Text() string {
	return string(s.buf[:s.end])
}

// Preprocessed is the text as the server sees it: version comments that
// apply are expanded and their markers removed, comments that do not
// apply are gone.
func (s *Scanner) Preprocessed() string {
	return string(s.cpp)
}

// Err is the lexical error behind the last ABORT_SYM, as a
// sqldocument.Error positioned at the start of the failing token.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return *s.err
}

func (s *Scanner) Warnings() []Warning {
	return s.warnings
}

// FoundSemicolon returns the offset just past the ';' that ended the
// statement in multi-statement mode.
func (s *Scanner) FoundSemicolon() (int, bool) {
	return s.foundSemicolon, s.foundSemicolon >= 0
}

// Digest returns the built in digest, or nil when digests are off or an
// external DigestSink is used.
func (s *Scanner) Digest() *digest.State {
	return s.digestState
}

// ReduceDigest lets a grammar rewrite the tail of the digest.
func (s *Scanner) ReduceDigest(left, right sqldocument.TokenID) {
	if s.digest != nil {
		s.digest.ReduceToken(left, right)
	}
}

func (s *Scanner) addDigestToken(tok sqldocument.TokenID, text string) {
	if s.digest != nil {
		s.digest.AddToken(tok, text)
	}
}

func (s *Scanner) position(offset int) sqldocument.Pos {
	return s.pos.at(s.buf[:s.end], offset)
}

func (s *Scanner) abort(message string) sqldocument.TokenID {
	if s.err == nil {
		err := sqldocument.Error{Pos: s.position(s.tokStart), Message: message}
		s.err = &err
		s.log.WithFields(logrus.Fields{
			"line":   err.Pos.Line,
			"offset": err.Pos.Offset,
		}).Debug(message)
	}
	s.nextState = stateEnd
	return sqldocument.AbortSym
}

func (s *Scanner) warn(message string) {
	pos := s.position(s.tokStart)
	s.warnings = append(s.warnings, Warning{Pos: pos, Message: message})
	s.log.WithFields(logrus.Fields{
		"line":   pos.Line,
		"offset": pos.Offset,
	}).Debug(message)
}

// NextToken lexes one token and returns its id: a grammar token, the code
// of a single byte token, EndOfStatement (0) at a ';' that ends a statement
// in multi-statement mode, EndOfInput once at the end of the text and 0
// on every call after that, or AbortSym on a lexical error.
func (s *Scanner) NextToken() sqldocument.TokenID {
	var c byte
	m := s.maps

	s.value = Value{}
	s.skipDigest = false
	s.startToken()
	state := s.nextState
	s.nextState = stateStart

	for {
		switch state {
		case stateStart:
			for c = s.peek(); m.main[c] == stateSkip; c = s.peek() {
				s.skip()
			}
			s.restartToken()
			c = s.get()
			state = m.main[c]

		case stateChar, stateSkip:
			if c == '-' && s.peek() == '-' && (s.cs.IsSpace(s.peekN(1)) || s.cs.IsCntrl(s.peekN(1))) {
				state = stateComment
				continue
			}
			if c == '-' && s.peek() == '>' {
				s.skip()
				if s.peek() == '>' {
					s.skip()
					return sqldocument.JSONUnquotedSeparator
				}
				return sqldocument.JSONSeparator
			}
			// a placeholder directly followed by an identifier would not
			// survive being replaced by its value
			if c == '?' && s.opts.PrepareMode && !m.ident[s.peek()] {
				return sqldocument.ParamMarker
			}
			return sqldocument.TokenID(c)

		case stateIdentOrNChar:
			if s.peek() != '\'' {
				state = stateIdent
				continue
			}
			s.skip()
			text, ok := s.getText(2, 1)
			if !ok {
				return s.abort("unterminated string literal")
			}
			s.value.Text = text
			s.bodyAppend(s.cppTextStart)
			s.bodyAppendLiteral(text, s.cs, s.cppTextEnd)
			return sqldocument.NCharString

		case stateIdentOrHex:
			if s.peek() == '\'' {
				state = stateHexNumber
				continue
			}
			state = stateIdent

		case stateIdentOrBin:
			if s.peek() == '\'' {
				state = stateBinNumber
				continue
			}
			state = stateIdent

		case stateIdentOrDollar:
			s.warn("$ as the first character of an unquoted identifier is deprecated")
			state = stateIdent

		case stateIdent:
			if charset.UseMb(s.cs) && !s.skipMb(c) {
				state = stateChar
				continue
			}
			var result sqldocument.TokenID
			c, result = s.identChars(c)
			length := s.length()
			// whitespace skipped below and hint comments after keywords
			// are not part of the token
			s.endToken(length)
			start := s.ptr
			if s.opts.IgnoreSpace {
				for ; m.main[c] == stateSkip; c = s.get() {
				}
			}
			if start == s.ptr && c == '.' && m.ident[s.peek()] {
				s.nextState = stateIdentSep
			} else {
				// functions are only recognized directly before '('
				s.unget()
				if tok, ok := s.findKeyword(length, c == '('); ok {
					return tok
				}
				s.skip()
			}
			text := s.getToken(0, length)
			s.value.Text = text
			if len(text) > 1 && text[0] == '_' {
				if cs, ok := charset.ByName(text[1:]); ok {
					s.value.Charset = cs
					s.underscoreCS = cs
					s.bodyAppendTo(s.cppTextStart, s.cppTokStart+length)
					return sqldocument.UnderscoreCharset
				}
			}
			s.bodyAppend(s.cppTextStart)
			s.bodyAppendLiteral(text, s.cs, s.cppTextEnd)
			return result

		case stateIdentSep:
			s.value.Text = "."
			c = s.get()
			if next := s.peek(); m.ident[next] {
				s.nextState = stateIdentStart
				if next == '$' {
					s.warn("$ as the first character of an unquoted identifier is deprecated")
				}
			}
			return sqldocument.TokenID(c)

		case stateNumberIdent:
			if s.last() == '0' {
				c = s.get()
				switch c {
				case 'x':
					for c = s.get(); s.cs.IsXDigit(c); c = s.get() {
					}
					if s.length() >= 3 && !m.ident[c] {
						s.value.Text = s.getToken(2, s.length()-2)
						return sqldocument.HexNum
					}
					s.unget()
					state = stateIdentStart
					continue
				case 'b':
					for c = s.get(); c == '0' || c == '1'; c = s.get() {
					}
					if s.length() >= 3 && !m.ident[c] {
						s.value.Text = s.getToken(2, s.length()-2)
						return sqldocument.BinNum
					}
					s.unget()
					state = stateIdentStart
					continue
				}
				s.unget()
			}
			for c = s.get(); s.cs.IsDigit(c); c = s.get() {
			}
			if !m.ident[c] {
				state = stateIntOrReal
				continue
			}
			if c == 'e' || c == 'E' {
				// 1e1, 1e+1 and 1e-1 are numbers; 1e and 1ea are identifiers
				if s.cs.IsDigit(s.peek()) {
					return s.exponentDigits()
				}
				c = s.get()
				if (c == '+' || c == '-') && s.cs.IsDigit(s.peek()) {
					return s.exponentDigits()
				}
				s.unget()
			}
			state = stateIdentStart

		case stateIdentStart:
			var result sqldocument.TokenID
			c, result = s.identChars(0)
			if c == '.' && m.ident[s.peek()] {
				s.nextState = stateIdentSep
			}
			text := s.getToken(0, s.length())
			s.value.Text = text
			s.bodyAppend(s.cppTextStart)
			s.bodyAppendLiteral(text, s.cs, s.cppTextEnd)
			return result

		case stateUserVariableDelimiter:
			quote := c
			doubled := 0
			for {
				c = s.get()
				if c == 0 {
					s.unget()
					return s.abort("unterminated quoted identifier")
				}
				if s.cs.MbCharLen(c) == 1 {
					if c == quote {
						if s.peek() != quote {
							break
						}
						s.get()
						doubled++
					}
					continue
				}
				if charset.UseMb(s.cs) {
					s.skipMb(c)
				}
			}
			var text string
			if doubled > 0 {
				text = s.getQuotedToken(1, s.length()-1, quote)
			} else {
				text = s.getToken(1, s.length()-1)
			}
			s.skip() // closing quote
			s.value.Text = text
			s.bodyAppend(s.cppTextStart)
			s.bodyAppendLiteral(text, s.cs, s.cppTextEnd)
			return sqldocument.IdentQuoted

		case stateIntOrReal:
			if c != '.' {
				text := s.getToken(0, s.length())
				s.value.Text = text
				return IntToken(text)
			}
			state = stateReal

		case stateReal:
			for c = s.get(); s.cs.IsDigit(c); c = s.get() {
			}
			if c == 'e' || c == 'E' {
				c = s.get()
				if c == '-' || c == '+' {
					c = s.get()
				}
				if !s.cs.IsDigit(c) {
					return s.abort("missing digits in the exponent of a number")
				}
				for s.cs.IsDigit(s.get()) {
				}
				s.value.Text = s.getToken(0, s.length())
				return sqldocument.FloatNum
			}
			s.value.Text = s.getToken(0, s.length())
			return sqldocument.DecimalNum

		case stateHexNumber:
			s.skip() // opening quote
			for c = s.get(); s.cs.IsXDigit(c); c = s.get() {
			}
			if c != '\'' {
				if c == 0 {
					s.unget()
				}
				return s.abort("malformed hexadecimal literal")
			}
			s.skip()
			// x' and ' plus the digits, which must come in pairs
			length := s.length()
			if length%2 == 0 {
				return s.abort("hexadecimal literal with an odd number of digits")
			}
			s.value.Text = s.getToken(2, length-3)
			return sqldocument.HexNum

		case stateBinNumber:
			s.skip() // opening quote
			for c = s.get(); c == '0' || c == '1'; c = s.get() {
			}
			if c != '\'' {
				if c == 0 {
					s.unget()
				}
				return s.abort("malformed binary literal")
			}
			s.skip()
			s.value.Text = s.getToken(2, s.length()-3)
			return sqldocument.BinNum

		case stateCmpOp, stateLongCmpOp:
			n := 1
			if next := m.main[s.peek()]; next == stateCmpOp || next == stateLongCmpOp {
				s.skip()
				n++
				if state == stateLongCmpOp && m.main[s.peek()] == stateCmpOp {
					s.skip()
					n++
				}
			}
			// longest operator first: <=> before <= before <
			for ; n > 0; n-- {
				if tok, ok := s.findKeyword(n, false); ok {
					return tok
				}
				if n > 1 {
					s.unget()
				}
			}
			state = stateChar

		case stateBool:
			if c != s.peek() {
				state = stateChar
				continue
			}
			s.skip()
			tok, _ := s.findKeyword(2, false)
			return tok

		case stateStringOrDelimiter:
			if s.opts.SQLMode.Has(ModeANSIQuotes) {
				state = stateUserVariableDelimiter
				continue
			}
			state = stateString

		case stateString:
			text, ok := s.getText(1, 1)
			if !ok {
				return s.abort("unterminated string literal")
			}
			s.value.Text = text
			cs := s.cs
			if s.underscoreCS != nil {
				cs = s.underscoreCS
				s.value.Charset = cs
			}
			s.bodyAppend(s.cppTextStart)
			s.bodyAppendLiteral(text, cs, s.cppTextEnd)
			s.underscoreCS = nil
			return sqldocument.TextString

		case stateComment:
			for c = s.get(); c != '\n' && c != 0; c = s.get() {
			}
			s.unget()
			state = stateStart

		case stateLongComment:
			if s.peek() != '*' {
				state = stateChar // division
				continue
			}
			if !s.longComment() {
				return s.abort("unterminated comment")
			}
			state = stateStart

		case stateEndLongComment:
			if s.inComment != noComment && s.peek() == '/' {
				s.endLongComment()
				state = stateStart
				continue
			}
			state = stateChar

		case stateSetVar:
			if s.peek() != '=' {
				state = stateChar
				continue
			}
			s.skip()
			return sqldocument.SetVar

		case stateSemicolon:
			if s.opts.MultiStatements && !s.opts.PrepareMode && !s.eof() {
				s.foundSemicolon = s.ptr
				s.nextState = stateEnd
				return sqldocument.EndOfStatement
			}
			state = stateChar

		case stateEOL:
			if !s.eof() {
				// a NUL byte inside the text
				state = stateChar
				continue
			}
			s.unget()
			s.setEcho(false)
			s.skip()
			s.setEcho(true)
			if s.inComment != noComment {
				return s.abort("unterminated comment")
			}
			s.nextState = stateEnd
			return sqldocument.EndOfInput

		case stateEnd:
			s.nextState = stateEnd
			return sqldocument.EndOfStatement

		case stateRealOrPoint:
			if s.cs.IsDigit(s.peek()) {
				state = stateReal
				continue
			}
			s.unget()
			state = stateIdentSep

		case stateUserEnd:
			// '@' of @var, user@host or the first of @@var
			switch m.main[s.peek()] {
			case stateString, stateUserVariableDelimiter, stateStringOrDelimiter:
			case stateUserEnd:
				s.nextState = stateSystemVar
			default:
				s.nextState = stateHostname
			}
			s.value.Text = "@"
			return '@'

		case stateHostname:
			for c = s.get(); s.cs.IsAlnum(c) || c == '.' || c == '_' || c == '$'; c = s.get() {
			}
			s.value.Text = s.getToken(0, s.length())
			return sqldocument.LexHostname

		case stateSystemVar:
			s.value.Text = "@"
			s.skip()
			if m.main[s.peek()] == stateUserVariableDelimiter {
				s.nextState = stateStart
			} else {
				s.nextState = stateIdentOrKeyword
			}
			return '@'

		case stateIdentOrKeyword:
			// the name after @@: [GLOBAL. | SESSION. | LOCAL.]name
			var result sqldocument.TokenID
			c, result = s.identChars(0)
			if c == '.' {
				s.nextState = stateIdentSep
			}
			length := s.length()
			if length == 0 {
				return s.abort("missing variable name after @@")
			}
			if tok, ok := s.findKeyword(length, false); ok {
				s.unget()
				return tok
			}
			text := s.getToken(0, length)
			s.value.Text = text
			s.bodyAppend(s.cppTextStart)
			s.bodyAppendLiteral(text, s.cs, s.cppTextEnd)
			return result

		default:
			panic(fmt.Sprintf("unhandled lexer state %s", state))
		}
	}
}

// identChars consumes identifier bytes. bits is the first byte when it
// was already consumed. It returns the byte that ended the identifier and
// IDENT_QUOTED if the identifier has non-ASCII bytes, IDENT otherwise.
func (s *Scanner) identChars(bits byte) (byte, sqldocument.TokenID) {
	m := s.maps
	useMb := charset.UseMb(s.cs)
	c := s.get()
	for ; m.ident[c]; c = s.get() {
		bits |= c
		if useMb {
			s.skipMb(c)
		}
	}
	if bits&0x80 != 0 {
		return c, sqldocument.IdentQuoted
	}
	return c, sqldocument.Ident
}

// skipMb consumes the continuation bytes of the multi-byte character whose
// first byte c was just read. It returns false when c announces a
// multi-byte character that is not there.
func (s *Scanner) skipMb(c byte) bool {
	if s.cs.MbCharLen(c) <= 1 || s.overrun > 0 {
		return true
	}
	l := s.cs.IsMbChar(s.buf[s.ptr-1 : s.end])
	if l == 0 {
		return false
	}
	s.skipBinary(l - 1)
	return true
}

// exponentDigits finishes a number like 1e10 once the digits after the e
// or its sign are known to be there.
func (s *Scanner) exponentDigits() sqldocument.TokenID {
	s.skip()
	for s.cs.IsDigit(s.get()) {
	}
	s.value.Text = s.getToken(0, s.length())
	return sqldocument.FloatNum
}

// findKeyword looks up the length bytes at the token start. ok is false
// when they are not a keyword; tok is AbortSym when an optimizer hint
// comment after the keyword is broken.
func (s *Scanner) findKeyword(length int, function bool) (tok sqldocument.TokenID, ok bool) {
	text := string(s.buf[s.tokStart : s.tokStart+length])
	sym, ok := keywords.Lookup(text, function)
	if !ok {
		return 0, false
	}
	s.value.Symbol = sym
	s.value.Text = text

	switch {
	case sym.Tok == keywords.NotSym && s.opts.SQLMode.Has(ModeHighNotPrecedence):
		return sqldocument.Not2Sym, true
	case sym.Tok == sqldocument.OrOr && !s.opts.SQLMode.Has(ModePipesAsConcat):
		s.warn("|| as a synonym for OR is deprecated")
		return sqldocument.Or2Sym, true
	}

	if sym.IsHintable() {
		s.addDigestToken(sym.Tok, text)
		if err := s.consumeOptimizerHints(); err != nil {
			return s.abort(err.Error()), true
		}
		s.skipDigest = true
	}
	return sym.Tok, true
}

type posTracker struct {
	file sqldocument.FileRef
	// where the text starts in the file it came from
	baseOffset          int
	startLine, startCol int

	offset      int
	line        int
	indexAtLine int
}

func (p *posTracker) reset() {
	p.offset = 0
	p.line = p.startLine
	p.indexAtLine = 1 - p.startCol
}

// continueAt makes offset 0 of the next text be pos.
func (p *posTracker) continueAt(pos sqldocument.Pos) {
	p.baseOffset = pos.Offset
	p.startLine = pos.Line
	p.startCol = pos.Col
	p.reset()
}

func (p *posTracker) at(buf []byte, offset int) sqldocument.Pos {
	if offset > len(buf) {
		offset = len(buf)
	}
	if offset < p.offset {
		p.reset()
	}
	for ; p.offset < offset; p.offset++ {
		if buf[p.offset] == '\n' {
			p.bumpLine(p.offset)
		}
	}
	return sqldocument.Pos{
		File:   p.file,
		Line:   p.line,
		Col:    offset - p.indexAtLine + 1,
		Offset: p.baseOffset + offset,
	}
}

// bumpLine increments the line counter and records the byte position
// where the new line starts.
func (p *posTracker) bumpLine(offset int) {
	p.line++
	p.indexAtLine = offset + 1
}
