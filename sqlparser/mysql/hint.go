package mysql

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/vippsas/sqllex/sqlparser/digest"
)

// HintInput is handed to a HintParser when a /*+ comment follows a
// SELECT, INSERT, REPLACE, UPDATE or DELETE keyword.
type HintInput struct {
	// Text runs from the /*+ to the end of the statement text.
	Text []byte
	// Line of the /*+
	Line int
	// Digest may be nil.
	Digest DigestSink
}

type HintResult struct {
	// Consumed is the number of bytes of Text making up the hint comment,
	// closing */ included.
	Consumed int
	Hints    string
}

// HintParser parses optimizer hint comments. The lexer only finds the
// start of the comment; where it ends is up to the parser.
type HintParser interface {
	ParseHints(in *HintInput) (HintResult, error)
}

// CommentHintParser is the default HintParser. It does not look into the
// hints; it finds the closing */ and records the comment in the digest.
type CommentHintParser struct{}

var ErrUnterminatedHint = errors.New("unterminated optimizer hint comment")

func (CommentHintParser) ParseHints(in *HintInput) (HintResult, error) {
	if !bytes.HasPrefix(in.Text, []byte("/*+")) {
		return HintResult{}, errors.New("not an optimizer hint comment")
	}
	end := bytes.Index(in.Text[3:], []byte("*/"))
	if end < 0 {
		return HintResult{}, ErrUnterminatedHint
	}
	hints := string(bytes.TrimSpace(in.Text[3 : 3+end]))
	if in.Digest != nil {
		in.Digest.AddToken(digest.TokHintCommentOpen, "")
		if hints != "" {
			in.Digest.AddToken(digest.TokHintText, hints)
		}
		in.Digest.AddToken(digest.TokHintCommentClose, "")
	}
	return HintResult{Consumed: 3 + end + 2, Hints: hints}, nil
}

// consumeOptimizerHints hands a /*+ comment after the current keyword to
// the hint parser.
func (s *Scanner) consumeOptimizerHints() error {
	n := 0
	for s.maps.main[s.peekN(n)] == stateSkip {
		n++
	}
	if s.peekN(n) != '/' || s.peekN(n+1) != '*' || s.peekN(n+2) != '+' {
		return nil
	}
	s.skipN(n)
	res, err := s.opts.HintParser.ParseHints(&HintInput{
		Text:   s.buf[s.ptr:s.end],
		Line:   s.position(s.ptr).Line,
		Digest: s.digest,
	})
	if err != nil {
		return err
	}
	s.skipN(res.Consumed)
	s.value.Hints = res.Hints
	return nil
}
