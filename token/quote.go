package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultDelimiter separates row cells and inline array elements.
const DefaultDelimiter = ','

// FieldSep separates field names in a tabular header, regardless of the
// data delimiter.
const FieldSep = ','

func NeedsQuote(v string, delim rune) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if v[0] == ' ' || v[len(v)-1] == ' ' {
		return true
	}
	for _, r := range v {
		if r == delim {
			return true
		}
		switch r {
		case ':', '{', '}', '[', ']', '"', '\n', '\r', '\t':
			return true
		}
	}
	return IsNumeric(v)
}

// IsNumeric reports whether v would be read back as a number.
func IsNumeric(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	if err == nil {
		return true
	}
	// out of range literals such as 1e999 are still numbers
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// Quote wraps v in double quotes, escaping backslash, double quote,
// newline, carriage return and tab.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = utf8.AppendRune(d, r)
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote reads the quoted string at the start of s, as written by Quote,
// returning its value and the number of bytes of s it spans.
func Unquote(s string) (string, int, error) {
	if s == "" || s[0] != '"' {
		return "", 0, fmt.Errorf("%w: expected '\"'", ErrQuoted)
	}
	d := make([]byte, 0, len(s))
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			return string(d), i + 1, nil
		case '\\':
			if i+1 == len(s) {
				return "", 0, fmt.Errorf("%w: unterminated escape", ErrQuoted)
			}
			i++
			switch e := s[i]; e {
			case '\\', '"':
				d = append(d, e)
			case 'n':
				d = append(d, '\n')
			case 'r':
				d = append(d, '\r')
			case 't':
				d = append(d, '\t')
			default:
				return "", 0, fmt.Errorf("%w: unknown escape \\%c", ErrQuoted, e)
			}
		default:
			d = append(d, c)
		}
	}
	return "", 0, fmt.Errorf("%w: missing closing '\"'", ErrQuoted)
}

// QuoteScalar returns the literal form of a string scalar: v itself when
// it is safe, its quoted form otherwise.
func QuoteScalar(v string, delim rune) string {
	if NeedsQuote(v, delim) {
		return Quote(v)
	}
	return v
}

// QuoteKey returns the literal form of an object key or tabular field name.
// Keys are comma separated in tabular headers, so a comma always forces
// quoting.
func QuoteKey(k string, delim rune) string {
	if NeedsQuote(k, delim) || strings.ContainsRune(k, FieldSep) {
		return Quote(k)
	}
	return k
}
