package sqldocument

import (
	"fmt"
)

// FileRef is a dedicated type for file references, allowing future refactoring
// of how files are identified without changing the API.
type FileRef string

// Pos represents a position in a source file with line and column numbers.
// Line and column are 1-indexed for human-readable error messages;
// Offset is the 0-indexed byte offset into the raw text.
type Pos struct {
	File      FileRef
	Line, Col int
	Offset    int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Span is a half-open byte range [Start, End) into a buffer.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Of returns the text the span covers in buf, clamped to buf.
func (s Span) Of(buf string) string {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}
	if start >= end {
		return ""
	}
	return buf[start:end]
}

type Error struct {
	Pos     Pos
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s %s", e.Pos, e.Message)
}

func (e Error) WithoutPos() Error {
	return Error{Message: e.Message}
}
