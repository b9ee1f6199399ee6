package mysql

import (
	"github.com/vippsas/sqllex/sqlparser/keywords"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// Token is a lexed token with everything known about it.
type Token struct {
	ID    sqldocument.TokenID
	Value Value
	// Text is the canonical spelling for keywords and functions and the
	// raw text for everything else.
	Text         string
	Raw          sqldocument.Span
	Preprocessed sqldocument.Span
	Pos          sqldocument.Pos
}

func (t Token) String() string {
	if t.Text == "" {
		return t.ID.String()
	}
	return t.ID.String() + " " + t.Text
}

// Lex is NextToken for a grammar: WITH directly followed by ROLLUP is
// merged into WITH_ROLLUP_SYM, and every token is added to the digest.
func (s *Scanner) Lex() Token {
	if s.lookahead != nil {
		t := *s.lookahead
		s.lookahead = nil
		if !s.lookaheadSkipsDigest {
			s.addDigestToken(t.ID, t.Value.Text)
		}
		return t
	}

	t := s.token(s.NextToken())
	s.skipDigest = false
	if t.ID != keywords.WithSym {
		if !t.skipsDigest {
			s.addDigestToken(t.ID, t.Value.Text)
		}
		return t.Token
	}

	next := s.token(s.NextToken())
	s.skipDigest = false
	if next.ID == keywords.RollupSym {
		merged := t.Token
		merged.ID = sqldocument.WithRollupSym
		merged.Text, _ = keywords.Spelling(sqldocument.WithRollupSym)
		merged.Raw.End = next.Raw.End
		merged.Preprocessed.End = next.Preprocessed.End
		s.addDigestToken(merged.ID, merged.Text)
		return merged
	}
	s.lookahead = &next.Token
	s.lookaheadSkipsDigest = next.skipsDigest
	s.addDigestToken(t.ID, t.Value.Text)
	return t.Token
}

type lexedToken struct {
	Token
	skipsDigest bool
}

// token captures the token NextToken just returned.
func (s *Scanner) token(id sqldocument.TokenID) lexedToken {
	raw := s.Span()
	t := Token{
		ID:           id,
		Value:        s.value,
		Raw:          raw,
		Preprocessed: s.PreprocessedSpan(),
		Pos:          s.position(raw.Start),
	}
	switch {
	case id == sqldocument.EndOfInput:
	case s.value.Symbol != nil && s.value.Symbol.Group&(keywords.GroupKeyword|keywords.GroupFunction) != 0:
		t.Text = s.value.Symbol.Name
	default:
		t.Text = s.text(raw.Start, raw.End)
	}
	return lexedToken{Token: t, skipsDigest: s.skipDigest}
}
