package sqldocument

// Lexer is the part of a dialect scanner that code outside the grammar
// needs: the id of each token, where it is, and why scanning stopped.
//
// A Lexer is re-entrant: each NextToken returns one token and keeps enough
// state to continue where it left off.
type Lexer interface {
	// NextToken scans the next token and returns its id.
	NextToken() TokenID

	// Span returns the raw byte range of the current token.
	Span() Span

	// Pos returns the position where the current token begins.
	Pos() Pos

	// Err returns the error behind the last AbortSym, or nil.
	Err() error

	// Reset sets the lexer's input to text and clears all state.
	Reset(text string)
}

// Drain reads tokens from l until the statement is over and returns their
// ids, the terminating EndOfInput or EndOfStatement included. If l aborts,
// Drain returns the ids seen so far and the lexer's error.
func Drain(l Lexer) ([]TokenID, error) {
	var ids []TokenID
	for {
		id := l.NextToken()
		if id == AbortSym {
			return ids, l.Err()
		}
		ids = append(ids, id)
		if id == EndOfInput || id == EndOfStatement {
			return ids, nil
		}
	}
}
