package mysql

import "github.com/vippsas/sqllex/sqlparser/internal/utils"

// longComment consumes or opens the comment starting at the '/' just
// read. Comments are consumed whole, except executable comments that apply
// to the server version: their markers are dropped and their body is lexed
// as ordinary text until END_LONG_COMMENT. It returns false if the comment
// is not closed before the end of the text.
func (s *Scanner) longComment() bool {
	// echo may go off for the '/', so it is read again below
	s.unget()
	s.saveCommentState()

	closed := true
	if s.peekN(2) == '!' {
		s.inComment = discardComment
		s.setEcho(false)
		s.skipN(3)

		version, ok := s.commentVersion()
		if !ok {
			// /*! without a version is always executed
			s.setEcho(true)
			return true
		}
		if !s.cs.IsSpace(s.peekN(5)) {
			s.warn("executable comment version should be followed by a space")
		}
		if version <= s.opts.ServerVersion {
			s.skipN(5)
			s.setEcho(true)
			return true
		}
		// too new for us: a comment, but one where nested /* */ pairs
		// do not end it early
		utils.DPrint("skipping comment for server version %d\n", version)
		s.unput(' ')
		closed = !s.consumeComment(1)
		s.restorePatches()
	} else {
		if s.inComment != noComment {
			s.warn("nested comment")
		}
		s.inComment = preserveComment
		s.skipN(2)
		closed = !s.consumeComment(0)
	}
	if !closed {
		return false
	}
	s.restoreCommentState()
	return true
}

// commentVersion reads the five digit version after /*! without
// consuming it.
func (s *Scanner) commentVersion() (int, bool) {
	if s.eofN(5) {
		return 0, false
	}
	version := 0
	for i := 0; i < 5; i++ {
		c := s.peekN(i)
		if !s.cs.IsDigit(c) {
			return 0, false
		}
		version = version*10 + int(c-'0')
	}
	return version, true
}

// consumeComment reads up to and including the */ that closes the comment.
// With nestingPermitted, a nested /* */ pair is rewritten to ( ) in the
// buffer so that its */ does not close the outer comment; the caller puts
// the original bytes back with restorePatches. It returns true if the text
// ends first.
func (s *Scanner) consumeComment(nestingPermitted int) bool {
	for !s.eof() {
		c := s.get()
		if nestingPermitted == 1 && c == '/' && s.peek() == '*' {
			s.unput('(')
			s.skipN(2)
			if s.consumeComment(0) {
				return true
			}
			s.unput(')')
			s.skip()
			continue
		}
		if c == '*' && s.peek() == '/' {
			s.skip()
			return false
		}
	}
	return true
}

// endLongComment drops the */ closing an executable comment, or echoes it
// for an ordinary comment that was opened inside one.
func (s *Scanner) endLongComment() {
	s.unget()
	s.setEcho(s.inComment == preserveComment)
	s.skipN(2)
	s.setEcho(true)
	s.inComment = noComment
}
