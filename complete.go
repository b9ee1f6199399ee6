package sqllex

import (
	"errors"
	"strings"

	"github.com/vippsas/sqllex/sqlparser/mysql"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// Complete reports whether text is a statement ready to be sent: its last
// token is ';'. Text that does not lex returns the lexical error.
func Complete(text string, opts mysql.Options) (bool, error) {
	opts.MultiStatements = false
	opts.DigestMaxLength = -1
	opts.DigestSink = nil
	opts.BodyUTF8 = false
	s, err := mysql.NewScanner(text, opts)
	if err != nil {
		return false, err
	}
	return complete(s)
}

func complete(l sqldocument.Lexer) (bool, error) {
	ids, err := sqldocument.Drain(l)
	if err != nil {
		return false, err
	}
	// ids ends with EndOfInput
	return len(ids) >= 2 && ids[len(ids)-2] == ';', nil
}

// IsIncomplete reports whether err is a text ending inside a string,
// quoted identifier or comment, which more input could close.
func IsIncomplete(err error) bool {
	var lexErr sqldocument.Error
	return errors.As(err, &lexErr) && strings.HasPrefix(lexErr.Message, "unterminated")
}
