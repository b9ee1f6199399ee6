package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStream_Sentinel(t *testing.T) {
	var s inputStream
	s.reset("ab")

	assert.Equal(t, byte('a'), s.peek())
	assert.Equal(t, byte('b'), s.peekN(1))
	assert.Equal(t, byte(0), s.peekN(2))
	assert.Equal(t, byte(0), s.peekN(3))
	assert.False(t, s.eofN(2))
	assert.True(t, s.eofN(3))

	s.startToken()
	assert.Equal(t, byte('a'), s.get())
	assert.Equal(t, byte('b'), s.get())
	assert.True(t, s.eof())
	assert.Equal(t, byte(0), s.get())
	assert.Equal(t, byte(0), s.get())
	assert.Equal(t, 3, s.length())

	s.unget()
	s.unget()
	assert.Equal(t, 2, s.ptr)
	assert.Equal(t, 0, s.overrun)
	assert.Equal(t, "ab", string(s.cpp))
	assert.Equal(t, byte('b'), s.last())
}

func TestInputStream_Echo(t *testing.T) {
	var s inputStream
	s.reset("a/*b*/c")
	s.skip()
	s.setEcho(false)
	s.skipN(2)
	s.setEcho(true)
	s.skip()
	s.setEcho(false)
	s.skipN(2)
	s.setEcho(true)
	s.skip()
	assert.Equal(t, "abc", string(s.cpp))
	assert.True(t, s.eof())
}

func TestInputStream_Unput(t *testing.T) {
	var s inputStream
	s.reset("x/*y*/")
	s.skipN(2)
	s.unput('(')
	assert.Equal(t, byte('('), s.get())
	assert.Equal(t, "x(", string(s.cpp))

	s.restorePatches()
	assert.Equal(t, "x/*y*/", s.text(0, s.end))
	assert.Equal(t, "", s.text(4, 2))
}

func TestInputStream_CommentState(t *testing.T) {
	var s inputStream
	s.reset("")
	s.saveCommentState()
	s.setEcho(false)
	s.inComment = discardComment
	s.restoreCommentState()
	assert.True(t, s.echo)
	assert.Equal(t, noComment, s.inComment)
}

func TestInputStream_ResetReusesBuffers(t *testing.T) {
	var s inputStream
	s.reset("a longer statement")
	s.skipN(5)
	s.reset("b")
	assert.Equal(t, 1, s.end)
	assert.Equal(t, byte('b'), s.peek())
	assert.Equal(t, byte(0), s.buf[s.end])
	assert.Empty(t, s.cpp)
}
