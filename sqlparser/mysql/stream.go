package mysql

// commentState tells END_LONG_COMMENT what kind of comment it is closing.
type commentState uint8

const (
	noComment commentState = iota
	// preserveComment comments are echoed to the preprocessed buffer
	preserveComment
	// discardComment is the /*! ... */ delimiter pair, which is not
	discardComment
)

// inputStream holds the raw text and its preprocessed copy. Bytes read
// while echo is on are appended to the preprocessed copy; comment markers
// are read with echo off and so never reach it.
//
// buf has a NUL sentinel at index end. The read cursor stops at end+1;
// reads beyond that return 0 and are only counted, so that every get can
// be taken back by an unget.
type inputStream struct {
	buf []byte
	end int
	ptr int
	// reads past end+1 not reflected in ptr
	overrun int

	tokStart int
	// end of the current token when bytes after it were already consumed,
	// or -1 when the token ends at the cursor
	tokEnd int

	cpp         []byte
	cppTokStart int
	cppTokEnd   int
	// the text of the last identifier or literal in cpp, without quotes
	cppTextStart int
	cppTextEnd   int

	echo      bool
	echoSaved bool

	inComment      commentState
	inCommentSaved commentState

	// unput patches of nested comment delimiters, restored after the
	// outer comment is consumed
	patches []patch
}

type patch struct {
	offset int
	old    byte
}

func (s *inputStream) reset(text string) {
	n := len(text) + 1
	if cap(s.buf) < n {
		s.buf = make([]byte, n)
	}
	s.buf = s.buf[:n]
	copy(s.buf, text)
	s.buf[len(text)] = 0
	s.end = len(text)
	s.ptr = 0
	s.overrun = 0
	s.tokStart = 0
	s.tokEnd = -1

	if cap(s.cpp) < n {
		s.cpp = make([]byte, 0, n)
	}
	s.cpp = s.cpp[:0]
	s.cppTokStart = 0
	s.cppTokEnd = -1
	s.cppTextStart = 0
	s.cppTextEnd = 0

	s.echo = true
	s.echoSaved = true
	s.inComment = noComment
	s.inCommentSaved = noComment
	s.patches = s.patches[:0]
}

// get consumes the next byte.
func (s *inputStream) get() byte {
	if s.ptr > s.end {
		s.overrun++
		return 0
	}
	c := s.buf[s.ptr]
	s.ptr++
	if s.echo {
		s.cpp = append(s.cpp, c)
	}
	return c
}

// last is the byte consumed most recently.
func (s *inputStream) last() byte {
	if s.overrun > 0 || s.ptr == 0 {
		return 0
	}
	return s.buf[s.ptr-1]
}

func (s *inputStream) peek() byte {
	return s.peekN(0)
}

func (s *inputStream) peekN(n int) byte {
	if s.overrun > 0 || s.ptr+n > s.end {
		return 0
	}
	return s.buf[s.ptr+n]
}

// unget takes back the last get; it must not straddle a change of echo.
func (s *inputStream) unget() {
	if s.overrun > 0 {
		s.overrun--
		return
	}
	s.ptr--
	if s.echo {
		s.cpp = s.cpp[:len(s.cpp)-1]
	}
}

func (s *inputStream) skip() {
	s.get()
}

func (s *inputStream) skipN(n int) {
	for i := 0; i < n; i++ {
		s.get()
	}
}

// skipBinary consumes the continuation bytes of a multi-byte character.
func (s *inputStream) skipBinary(n int) {
	s.skipN(n)
}

// unput steps back over the last consumed byte and overwrites it with c,
// so that the next get returns c. The original byte is restored by
// restorePatches.
func (s *inputStream) unput(c byte) {
	s.ptr--
	if s.echo {
		s.cpp = s.cpp[:len(s.cpp)-1]
	}
	s.patches = append(s.patches, patch{offset: s.ptr, old: s.buf[s.ptr]})
	s.buf[s.ptr] = c
}

func (s *inputStream) restorePatches() {
	for i := len(s.patches) - 1; i >= 0; i-- {
		p := s.patches[i]
		s.buf[p.offset] = p.old
	}
	s.patches = s.patches[:0]
}

func (s *inputStream) startToken() {
	s.tokStart = s.ptr
	s.cppTokStart = len(s.cpp)
	s.tokEnd = -1
	s.cppTokEnd = -1
}

// restartToken moves the token start past skipped whitespace.
func (s *inputStream) restartToken() {
	s.tokStart = s.ptr
	s.cppTokStart = len(s.cpp)
}

// endToken marks the token as length bytes long, whatever is consumed
// after it.
func (s *inputStream) endToken(length int) {
	s.tokEnd = s.tokStart + length
	s.cppTokEnd = s.cppTokStart + length
}

// eof is true when every byte of the text has been consumed.
func (s *inputStream) eof() bool {
	return s.ptr >= s.end
}

// eofN is true when fewer than n bytes are left.
func (s *inputStream) eofN(n int) bool {
	return s.ptr+n > s.end
}

// length is the length of the current token, excluding the one byte that
// was read to find its end.
func (s *inputStream) length() int {
	return s.ptr + s.overrun - s.tokStart - 1
}

func (s *inputStream) setEcho(echo bool) {
	s.echo = echo
}

func (s *inputStream) saveCommentState() {
	s.echoSaved = s.echo
	s.inCommentSaved = s.inComment
}

func (s *inputStream) restoreCommentState() {
	s.echo = s.echoSaved
	s.inComment = s.inCommentSaved
}

func (s *inputStream) text(start, end int) string {
	if end > s.end {
		end = s.end
	}
	if start >= end {
		return ""
	}
	return string(s.buf[start:end])
}
