package sqllex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// LexErrors collects the lexical errors of one or more statements.
type LexErrors struct {
	Errors []sqldocument.Error
}

func (e LexErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("sqllex lexical error:\n\n")
	for _, e := range e.Errors {
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message))
	}
	return msg.String()
}

func newLexErrors(err error) LexErrors {
	var lexErr sqldocument.Error
	if !errors.As(err, &lexErr) {
		lexErr = sqldocument.Error{Message: fmt.Sprint(err)}
	}
	return LexErrors{Errors: []sqldocument.Error{lexErr}}
}
