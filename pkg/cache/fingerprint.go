// Package cache implements the query fingerprinting and bounded LRU caches
// used to avoid re-translating and re-planning statements the server has
// already seen.
package cache

import "hash/fnv"

// Fingerprint normalizes sql (collapsing whitespace, upper-casing keywords
// and identifiers outside string literals, and replacing numeric/string
// literals with a single placeholder) and returns a 64-bit hash of the
// result, so two queries that differ only in formatting, case, or literal
// values collide onto the same cache key. Grounded on
// original_source/src/cache/query_fingerprint.rs's
// QueryFingerprint::generate/normalize_query.
func Fingerprint(sql string) uint64 {
	return hash(normalizeQuery(sql))
}

// FingerprintWithLiterals normalizes only whitespace and case, preserving
// literal values, for caches (the translation cache) where two statements
// differing only by literal must NOT collide — the rewritten SQL text
// itself still embeds those literals. Grounded on query_fingerprint.rs's
// generate_with_literals/normalize_whitespace_and_case.
func FingerprintWithLiterals(sql string) uint64 {
	return hash(normalizeWhitespaceAndCase(sql))
}

func hash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func isIdentByte(b byte) bool {
	return b >= 'A' && b <= 'Z' || b == '_'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// normalizeQuery upper-cases everything outside string literals, collapses
// runs of whitespace to a single space, replaces '...' literals with '?',
// and replaces standalone numeric literals (not part of an identifier) with
// a single '?', consuming any trailing exponent/decimal digits.
func normalizeQuery(query string) string {
	var out []byte
	i := 0
	afterWS := false
	for i < len(query) {
		c := query[i]
		switch {
		case c == '\'':
			out = append(out, '\'', '?', '\'')
			i++
			for i < len(query) {
				if query[i] == '\'' {
					if i+1 < len(query) && query[i+1] == '\'' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			afterWS = false

		case isDigit(c):
			upper := byte(0)
			if len(out) > 0 {
				upper = out[len(out)-1]
			}
			if isIdentByte(upper) || isDigit(upper) {
				out = append(out, c)
				i++
				afterWS = false
				continue
			}
			out = append(out, '?')
			i++
			for i < len(query) {
				d := query[i]
				if isDigit(d) || d == '.' || d == 'e' || d == 'E' || d == '+' || d == '-' {
					i++
					continue
				}
				break
			}
			afterWS = false

		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if !afterWS && len(out) > 0 {
				out = append(out, ' ')
				afterWS = true
			}
			i++

		default:
			out = append(out, upperByte(c))
			afterWS = false
			i++
		}
	}
	return trimTrailingSpace(out)
}

// normalizeWhitespaceAndCase preserves literal contents (inside single
// quotes) verbatim but upper-cases everything else and collapses
// whitespace runs, mirroring normalize_whitespace_and_case.
func normalizeWhitespaceAndCase(query string) string {
	var out []byte
	inString := false
	afterWS := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inString = !inString
			out = append(out, c)
			afterWS = false

		case (c == ' ' || c == '\t' || c == '\n' || c == '\r') && !inString:
			if !afterWS && len(out) > 0 {
				out = append(out, ' ')
				afterWS = true
			}

		default:
			afterWS = false
			if inString {
				out = append(out, c)
			} else {
				out = append(out, upperByte(c))
			}
		}
	}
	return trimTrailingSpace(out)
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func trimTrailingSpace(b []byte) string {
	i := len(b)
	for i > 0 && b[i-1] == ' ' {
		i--
	}
	return string(b[:i])
}
