package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/smasher164/xid"

	"github.com/vippsas/sqllex/sqlparser/charset"
	"github.com/vippsas/sqllex/sqlparser/keywords"
	"github.com/vippsas/sqllex/sqlparser/sqldocument"
)

// QuoteMode says how identifiers are written in digest text.
type QuoteMode int

const (
	// QuoteAlways puts every identifier in backticks.
	QuoteAlways QuoteMode = iota
	// QuoteWhenNeeded leaves identifiers bare when they could be lexed
	// back as the same plain identifier.
	QuoteWhenNeeded
)

type TextOptions struct {
	Quote QuoteMode
}

// Text renders the digest, one space between tokens. A full storage is
// marked with a trailing "...".
func (s *State) Text(opts TextOptions) string {
	var sb strings.Builder
	for i, item := range s.Items() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch item.Tok {
		case TokIdent:
			writeIdentifier(&sb, s.identifierText(item.Text), opts.Quote)
		case TokHintText:
			sb.WriteString(s.identifierText(item.Text))
		default:
			sb.WriteString(tokenSpelling(item.Tok))
		}
	}
	if s.full {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("...")
	}
	return sb.String()
}

// Hash is the hex encoded SHA-256 of the token storage.
func (s *State) Hash() string {
	sum := sha256.Sum256(s.storage)
	return hex.EncodeToString(sum[:])
}

func (s *State) identifierText(raw string) string {
	if s.Charset == nil || charset.IsUTF8(s.Charset) {
		return raw
	}
	out, err := s.Charset.ToUTF8([]byte(raw))
	if err != nil {
		return raw
	}
	return string(out)
}

func tokenSpelling(tok sqldocument.TokenID) string {
	if text, ok := tokenText[tok]; ok {
		return text
	}
	if text, ok := keywords.Spelling(tok); ok {
		return text
	}
	return tok.String()
}

func writeIdentifier(sb *strings.Builder, name string, mode QuoteMode) {
	if mode == QuoteWhenNeeded && isBareIdentifier(name) {
		sb.WriteString(name)
		return
	}
	sb.WriteByte('`')
	sb.WriteString(strings.ReplaceAll(name, "`", "``"))
	sb.WriteByte('`')
}

// isBareIdentifier is true for names that lex back as the same identifier
// without quotes: Unicode identifier characters, not all digits and not a
// keyword.
func isBareIdentifier(name string) bool {
	if name == "" {
		return false
	}
	allDigits := true
	for _, r := range name {
		if r >= '0' && r <= '9' {
			continue
		}
		allDigits = false
		if r == '$' || r == '_' {
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	if allDigits {
		return false
	}
	_, isKeyword := keywords.Lookup(name, false)
	return !isKeyword
}
