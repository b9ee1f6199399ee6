package sqllex

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/sqllex/sqlparser/keywords"
	"github.com/vippsas/sqllex/sqlparser/mysql"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

func TestSplit(t *testing.T) {
	statements, err := Split("SELECT 1; select  2 ;\n\n", mysql.Options{})
	require.NoError(t, err)
	require.Len(t, statements, 2, repr.String(statements))

	first, second := statements[0], statements[1]
	assert.Equal(t, "SELECT 1;", first.Text)
	assert.Equal(t, sqldocument.Pos{Line: 1, Col: 1, Offset: 0}, first.Pos)
	require.Len(t, first.Tokens, 2)
	assert.Equal(t, keywords.SelectSym, first.Tokens[0].ID)
	assert.Equal(t, sqldocument.Num, first.Tokens[1].ID)
	assert.Equal(t, "SELECT ?", first.DigestText)
	assert.Len(t, first.DigestHash, 64)

	assert.Equal(t, "select  2 ;", second.Text)
	assert.Equal(t, sqldocument.Pos{Line: 1, Col: 11, Offset: 10}, second.Pos)
	assert.Len(t, second.Tokens, 2)
	assert.Equal(t, first.DigestHash, second.DigestHash)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSplit_TrailingSemicolon(t *testing.T) {
	statements, err := Split("SELECT 1;SELECT 2;", mysql.Options{})
	require.NoError(t, err)
	require.Len(t, statements, 2)

	last := statements[1]
	assert.Equal(t, "SELECT 2;", last.Text)
	require.Len(t, last.Tokens, 3)
	assert.Equal(t, sqldocument.TokenID(';'), last.Tokens[2].ID)
	assert.Equal(t, statements[0].DigestText, last.DigestText)
	assert.Equal(t, statements[0].DigestHash, last.DigestHash)
}

func TestSplit_EmptyStatements(t *testing.T) {
	statements, err := Split(";; -- nothing here\n ; SELECT a FROM t", mysql.Options{})
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, "SELECT a FROM t", statements[0].Text)
	assert.Equal(t, 2, statements[0].Pos.Line)

	statements, err = Split("", mysql.Options{})
	require.NoError(t, err)
	assert.Empty(t, statements)
}

func TestSplit_LexError(t *testing.T) {
	statements, err := Split("SELECT 1; SELECT 'abc", mysql.Options{File: "q.sql"})
	require.Len(t, statements, 1)

	var lexErrs LexErrors
	require.ErrorAs(t, err, &lexErrs)
	require.Len(t, lexErrs.Errors, 1)
	assert.Equal(t, sqldocument.Pos{File: "q.sql", Line: 1, Col: 18, Offset: 17}, lexErrs.Errors[0].Pos)
	assert.Equal(t, "sqllex lexical error:\n\nq.sql:1:18: unterminated string literal\n", err.Error())
}

func TestSplit_NULByte(t *testing.T) {
	statements, err := Split("SELECT 1; SELECT 2\x00; DROP TABLE t", mysql.Options{File: "q.sql"})
	require.Len(t, statements, 1)
	assert.Equal(t, "SELECT 1;", statements[0].Text)

	var lexErrs LexErrors
	require.ErrorAs(t, err, &lexErrs)
	require.Len(t, lexErrs.Errors, 1)
	assert.Equal(t, sqldocument.Pos{File: "q.sql", Line: 1, Col: 19, Offset: 18}, lexErrs.Errors[0].Pos)
	assert.Equal(t, "unexpected NUL byte", lexErrs.Errors[0].Message)

	statements, err = Split("SELECT 1\x00; DROP TABLE t", mysql.Options{})
	assert.Empty(t, statements)
	require.ErrorAs(t, err, &lexErrs)
	assert.Equal(t, 9, lexErrs.Errors[0].Pos.Col)
}

func TestSplit_Options(t *testing.T) {
	statements, err := Split("SELECT /*!99999 secret */ 'caf\xe9';", mysql.Options{
		Charset:         "latin1",
		BodyUTF8:        true,
		DigestMaxLength: -1,
	})
	require.NoError(t, err)
	require.Len(t, statements, 1)

	stmt := statements[0]
	assert.Equal(t, "SELECT  'caf\xe9';", stmt.Preprocessed)
	assert.Equal(t, "SELECT  'café';", stmt.Body)
	assert.Empty(t, stmt.DigestText)
	assert.Empty(t, stmt.DigestHash)

	_, err = Split("SELECT 1", mysql.Options{Charset: "klingon"})
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"SELECT 1", false},
		{"SELECT 1;", true},
		{"SELECT 1; -- done\n", true},
		{"SELECT ';'", false},
		{"SELECT 1 /* ; */", false},
		{"SELECT 1; SELECT 2;", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			done, err := Complete(tt.input, mysql.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, done)
		})
	}

	done, err := Complete("SELECT 'abc;", mysql.Options{})
	assert.False(t, done)
	assert.True(t, IsIncomplete(err))

	done, err = Complete("SELECT x'ABC';", mysql.Options{})
	assert.False(t, done)
	require.Error(t, err)
	assert.False(t, IsIncomplete(err))
	assert.False(t, IsIncomplete(nil))
}
