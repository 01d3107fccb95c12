package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pgsqlite/pgsqlite/pkg/types"
)

func formatNumeric(raw string, precision, scale int32) (string, error) {
	return types.FormatNumeric(raw, precision, scale)
}

// toTsvector is a reduced to_tsvector(): lowercases and splits on
// non-alphanumerics, dropping empties, then joins as PG's lexeme:position
// text form. It does not stem or remove stopwords. tsvector columns are
// stored as plain TEXT (translateDDL); no FTS5 shadow table is created for
// them.
func toTsvector(input string) string {
	words := tokenize(input)
	parts := make([]string, 0, len(words))
	for i, w := range words {
		parts = append(parts, fmt.Sprintf("'%s':%d", w, i+1))
	}
	return strings.Join(parts, " ")
}

// toTsquery converts a PG tsquery expression (terms joined by & | !) into an
// FTS5 MATCH expression string. Parenthesization and `!` negation are passed
// through as-is since FTS5's query syntax accepts the same operators with
// AND/OR/NOT spelled out.
func toTsquery(input string) string {
	q := input
	q = strings.ReplaceAll(q, "&", " AND ")
	q = strings.ReplaceAll(q, "|", " OR ")
	q = strings.ReplaceAll(q, "!", " NOT ")
	return strings.Join(strings.Fields(q), " ")
}

// plaintoTsquery builds an AND-joined FTS5 match expression from plain text,
// mirroring PG's plainto_tsquery (no operator syntax accepted in the input).
func plaintoTsquery(input string) string {
	words := tokenize(input)
	return strings.Join(words, " AND ")
}

func tokenize(input string) []string {
	fields := strings.FieldsFunc(strings.ToLower(input), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// rowToJSON turns a flattened "col1,val1,col2,val2,..." argument list (as
// produced by the translator when rewriting row_to_json(table.*) calls, spec
// §6's supplemental SQL surface) into a JSON object. SQLite has no native
// row/composite type, so the translator must pass columns positionally
// rather than this function introspecting a row value.
func rowToJSON(pairs ...any) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("row_to_json: odd argument count")
	}
	obj := make(map[string]any, len(pairs)/2)
	order := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return "", fmt.Errorf("row_to_json: column name must be text")
		}
		obj[key] = pairs[i+1]
		order = append(order, key)
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range order {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, err := json.Marshal(obj[k])
		if err != nil {
			return "", err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.String(), nil
}

// jsonAggStep appends one value's JSON encoding onto a running array
// accumulator, used by the translator to build json_agg(expr) out of
// SQLite's lack of an aggregate JSON builder.
func jsonAggStep(acc, val any) (string, error) {
	vb, err := json.Marshal(val)
	if err != nil {
		return "", err
	}
	accs, _ := acc.(string)
	if accs == "" || accs == "[]" {
		return "[" + string(vb) + "]", nil
	}
	return accs[:len(accs)-1] + "," + string(vb) + "]", nil
}

// --- array operators (spec §6 supplemental SQL surface) ---
//
// Array arguments are accepted either as JSON array text (the form the
// translator gives ARRAY[...] constructors) or as PG-style '{a,b,c}' literal
// text; elements are compared as text rather than unmarshalled into a
// dedicated array type. arrayCat always returns the '{a,b,c}' form.

func splitArrayText(s string) []string {
	if strings.HasPrefix(s, "[") {
		var elems []any
		if err := json.Unmarshal([]byte(s), &elems); err == nil {
			out := make([]string, len(elems))
			for i, e := range elems {
				out[i] = fmt.Sprint(e)
			}
			return out
		}
	}
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// arrayContains implements the @> operator: does the left array contain
// every element of the right array.
func arrayContains(left, right string) bool {
	l := splitArrayText(left)
	set := make(map[string]bool, len(l))
	for _, v := range l {
		set[v] = true
	}
	for _, v := range splitArrayText(right) {
		if !set[v] {
			return false
		}
	}
	return true
}

// arrayContainedBy implements the <@ operator, the mirror of arrayContains.
func arrayContainedBy(left, right string) bool {
	return arrayContains(right, left)
}

// arrayHasKey implements the ? operator: does the array contain the given
// element.
func arrayHasKey(arr, key string) bool {
	for _, v := range splitArrayText(arr) {
		if v == key {
			return true
		}
	}
	return false
}

// arrayCat implements the || concatenation operator between two arrays.
func arrayCat(left, right string) string {
	l := splitArrayText(left)
	r := splitArrayText(right)
	return "{" + strings.Join(append(l, r...), ",") + "}"
}

// --- decimal arithmetic helpers for the Numeric Rewriter translator stage ---
//
// SQLite's native arithmetic is float64-based and loses precision for
// NUMERIC columns; these route SELECT-clause arithmetic detected by the
// translator (spec §4.5 stage 6) through shopspring/decimal instead.

func parseDecimalPair(a, b string) (decimal.Decimal, decimal.Decimal, error) {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}
	return da, db, nil
}

func decimalAdd(a, b string) (string, error) {
	da, db, err := parseDecimalPair(a, b)
	if err != nil {
		return "", err
	}
	return da.Add(db).String(), nil
}

func decimalSub(a, b string) (string, error) {
	da, db, err := parseDecimalPair(a, b)
	if err != nil {
		return "", err
	}
	return da.Sub(db).String(), nil
}

func decimalMul(a, b string) (string, error) {
	da, db, err := parseDecimalPair(a, b)
	if err != nil {
		return "", err
	}
	return da.Mul(db).String(), nil
}

func decimalDiv(a, b string) (string, error) {
	da, db, err := parseDecimalPair(a, b)
	if err != nil {
		return "", err
	}
	if db.IsZero() {
		return "", fmt.Errorf("division by zero")
	}
	return da.DivRound(db, 20).String(), nil
}

func decimalCmp(a, b string) (int, error) {
	da, db, err := parseDecimalPair(a, b)
	if err != nil {
		return 0, err
	}
	return da.Cmp(db), nil
}

// numericFormat rounds/pads a stored numeric string to (precision,scale),
// delegating to pkg/types so the wire-facing formatting stays in one place.
func numericFormat(raw string, precision, scale int32) (string, error) {
	return formatNumeric(raw, precision, scale)
}
