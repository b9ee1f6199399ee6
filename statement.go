// Package sqllex splits MySQL text into statements and lexes each of them,
// collecting tokens, digests and positions for tooling built on the lexer.
package sqllex

import (
	"strings"

	"github.com/gofrs/uuid"

	"github.com/vippsas/sqllex/sqlparser/digest"
	"github.com/vippsas/sqllex/sqlparser/mysql"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// Statement is one lexed statement of a multi-statement text.
type Statement struct {
	// ID correlates log lines and trace output about the statement.
	ID  uuid.UUID
	Pos sqldocument.Pos
	// Text is the raw statement, ';' included, surrounding whitespace not.
	Text         string
	Preprocessed string
	Tokens       []mysql.Token
	// DigestText and DigestHash are empty when digests are turned off.
	DigestText string
	DigestHash string
	// Body is the statement converted to UTF-8 when Options.BodyUTF8 is set.
	Body     string
	Warnings []mysql.Warning
}

// Split lexes text as a batch of ';' separated statements. Statements
// without tokens are dropped. On a lexical error it returns the statements
// lexed so far and a LexErrors.
func Split(text string, opts mysql.Options) ([]Statement, error) {
	opts.MultiStatements = true
	s, err := mysql.NewScanner(text, opts)
	if err != nil {
		return nil, err
	}

	var result []Statement
	for {
		stmt, err := nextStatement(s)
		if err != nil {
			return result, err
		}
		if len(stmt.Tokens) > 0 {
			result = append(result, stmt)
		}
		if !s.NextStatement() {
			return result, nil
		}
	}
}

// nextStatement lexes the statement the scanner is positioned at. It
// returns a LexErrors if the scanner aborted or the statement was cut short
// by a NUL byte.
func nextStatement(s *mysql.Scanner) (Statement, error) {
	stmt := Statement{
		ID: uuid.Must(uuid.NewV4()),
	}
	for t := range s.Iterator().All() {
		switch t.ID {
		case sqldocument.AbortSym:
			return stmt, newLexErrors(s.Err())
		case sqldocument.EndOfStatement:
			if _, ok := s.FoundSemicolon(); !ok {
				return stmt, LexErrors{Errors: []sqldocument.Error{
					{Pos: t.Pos, Message: "unexpected NUL byte"},
				}}
			}
			continue
		case sqldocument.EndOfInput:
			continue
		}
		if len(stmt.Tokens) == 0 {
			stmt.Pos = t.Pos
		}
		stmt.Tokens = append(stmt.Tokens, t)
	}

	text := s.Text()
	if end, ok := s.FoundSemicolon(); ok {
		text = text[:end]
	}
	stmt.Text = strings.TrimSpace(text)
	stmt.Preprocessed = strings.TrimSpace(s.Preprocessed())
	stmt.Body = s.BodyUTF8()
	stmt.Warnings = append([]mysql.Warning(nil), s.Warnings()...)

	if d := s.Digest(); d != nil {
		if n := len(stmt.Tokens); n > 0 && stmt.Tokens[n-1].ID == ';' {
			// the last statement keeps its ';' as a token; digests never do
			d.AddToken(sqldocument.EndOfStatement, "")
		}
		stmt.DigestText = d.Text(digest.TextOptions{Quote: digest.QuoteAlways})
		stmt.DigestHash = d.Hash()
	}
	return stmt, nil
}
