package translator

import (
	"regexp"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

var (
	arrayLiteralRegex  = regexp.MustCompile(`(?i)ARRAY\s*\[([^\]]*)\]`)
	jsonPathArrowRegex = regexp.MustCompile(`#>>?`)
	containsOpRegex   = regexp.MustCompile(`@>`)
	containedOpRegex  = regexp.MustCompile(`<@`)
)

// translateArrayJSON expands ARRAY[...] literals into JSON arrays and
// rewrites PostgreSQL's json/jsonb and array operators onto the SQLite
// helper functions and json1 extension calls registered in
// pkg/catalog/functions.go. String concatenation `||` is deliberately left
// untouched here — distinguishing array `||` from string `||` needs
// operand-type analysis against declared column types, which the Decimal
// Rewriter/Cast Analyzer stages already perform against the metadata
// store, so that split is left to those AST-aware stages rather than
// duplicated via regex here.
func translateArrayJSON(sql string, _ *catalog.Store, _ *Metadata) (string, error) {
	if !strings.Contains(sql, "ARRAY[") && !strings.ContainsAny(sql, "@<>?") && !strings.Contains(sql, "->") && !strings.Contains(sql, "#>") {
		return sql, nil
	}

	out := arrayLiteralRegex.ReplaceAllStringFunc(sql, func(m string) string {
		inner := arrayLiteralRegex.FindStringSubmatch(m)[1]
		elems := splitTopLevel(inner, ',')
		for i, e := range elems {
			elems[i] = strings.TrimSpace(e)
		}
		return "json_array(" + strings.Join(elems, ", ") + ")"
	})

	// ->>/#>> (text result) vs ->/#> (json result): PG's ->> maps to
	// json_extract's implicit text coercion for scalar leaves, so both
	// forms route to json_extract; the distinction only matters for
	// non-scalar results, which the storage layer returns as JSON text in
	// either case since SQLite has no native JSON value type.
	out = jsonPathArrowRegex.ReplaceAllString(out, "->")
	out = containsOpRegex.ReplaceAllString(out, " array_contains ")
	out = containedOpRegex.ReplaceAllString(out, " array_contained_by ")
	out = rewriteArrow(out)

	return out, nil
}

// rewriteArrow turns "col -> 'key'" into "json_extract(col, '$.key')"-style
// calls is SQL-structure dependent (it needs to know where the left operand
// starts), so it's handled as a dedicated token scan rather than a single
// regex substitution.
func rewriteArrow(sql string) string {
	if !strings.Contains(sql, "->") {
		return sql
	}
	var b strings.Builder
	i := 0
	for i < len(sql) {
		if i+1 < len(sql) && sql[i] == '-' && sql[i+1] == '>' {
			left := lastOperand(b.String())
			b2 := strings.TrimSuffix(b.String(), left)
			j := i + 2
			if j < len(sql) && sql[j] == '>' {
				j++ // ->> takes the same json_extract path as ->
			}
			for j < len(sql) && sql[j] == ' ' {
				j++
			}
			right, consumed := nextOperand(sql[j:])
			b.Reset()
			b.WriteString(b2)
			b.WriteString("json_extract(" + left + ", " + jsonPathFor(right) + ")")
			i = j + consumed
			continue
		}
		b.WriteByte(sql[i])
		i++
	}
	return b.String()
}

// lastOperand returns the trailing identifier/expression token of s, used
// as the left-hand side of a `->` operator.
func lastOperand(s string) string {
	s = strings.TrimRight(s, " ")
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c == ' ' || c == '(' || c == ',' {
			break
		}
		i--
	}
	return s[i:]
}

// nextOperand returns the leading identifier/string-literal token of s and
// how many bytes it consumed, used as the right-hand side of `->`.
func nextOperand(s string) (string, int) {
	if len(s) == 0 {
		return "", 0
	}
	if s[0] == '\'' {
		for i := 1; i < len(s); i++ {
			if s[i] == '\'' && (i+1 >= len(s) || s[i+1] != '\'') {
				return s[:i+1], i + 1
			}
		}
		return s, len(s)
	}
	i := 0
	for i < len(s) {
		c := s[i]
		if c == ' ' || c == ')' || c == ',' || c == ';' {
			break
		}
		i++
	}
	return s[:i], i
}

func jsonPathFor(operand string) string {
	if strings.HasPrefix(operand, "'") {
		key := strings.Trim(operand, "'")
		return "'$." + key + "'"
	}
	return "'$[' || " + operand + " || ']'"
}

// splitTopLevel splits s on sep, ignoring occurrences inside single-quoted
// string literals or nested parens.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	inStr := false
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			inStr = !inStr
		case inStr:
			// inside a literal, ignore structural characters
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
