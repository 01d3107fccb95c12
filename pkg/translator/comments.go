package translator

import (
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// stripComments removes `--` line comments and non-nesting `/* ... */` block
// comments, leaving string-literal contents (including escaped quotes, '')
// untouched. Fails with ErrEmptyQuery if nothing but whitespace remains.
func stripComments(sql string, _ *catalog.Store, _ *Metadata) (string, error) {
	if !strings.Contains(sql, "--") && !strings.Contains(sql, "/*") {
		if isBlank(sql) {
			return "", ErrEmptyQuery
		}
		return sql, nil
	}

	var b strings.Builder
	b.Grow(len(sql))

	inString := false
	inLineComment := false
	inBlockComment := false

	runes := []rune(sql)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inLineComment {
			if c == '\n' {
				inLineComment = false
				b.WriteRune(c)
			}
			continue
		}

		if inBlockComment {
			if c == '*' && i+1 < len(runes) && runes[i+1] == '/' {
				inBlockComment = false
				i++
			}
			continue
		}

		if inString {
			b.WriteRune(c)
			if c == '\'' {
				// '' inside a string literal is an escaped quote, not the
				// closing quote; consume both runes without toggling state.
				if i+1 < len(runes) && runes[i+1] == '\'' {
					b.WriteRune(runes[i+1])
					i++
					continue
				}
				inString = false
			}
			continue
		}

		switch {
		case c == '\'':
			inString = true
			b.WriteRune(c)
		case c == '-' && i+1 < len(runes) && runes[i+1] == '-':
			inLineComment = true
			i++
		case c == '/' && i+1 < len(runes) && runes[i+1] == '*':
			inBlockComment = true
			i++
		default:
			b.WriteRune(c)
		}
	}

	result := b.String()
	if isBlank(result) {
		return "", ErrEmptyQuery
	}
	return result, nil
}
