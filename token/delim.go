package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// CheckDelimiter rejects delimiters which would make output ambiguous:
// structural characters, line breaks, and characters which occur in bare
// numbers or in the true/false/null literals.
func CheckDelimiter(r rune) error {
	switch r {
	case ':', '{', '}', '[', ']', '"', '\\', '\n', '\r', '-', '+', '.':
		return fmt.Errorf("%w: %q is reserved", ErrDelimiter, r)
	case '\t':
		return nil
	}
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		return fmt.Errorf("%w: invalid rune %U", ErrDelimiter, r)
	}
	if unicode.IsControl(r) {
		return fmt.Errorf("%w: control character %U", ErrDelimiter, r)
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return fmt.Errorf("%w: %q may occur in literals", ErrDelimiter, r)
	}
	return nil
}

// ParseDelimiter reads a delimiter given by name or as a single character.
// Recognized names are comma, tab, pipe, semicolon and space.
func ParseDelimiter(v string) (rune, error) {
	switch v {
	case "comma":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	case "pipe":
		return '|', nil
	case "semicolon":
		return ';', nil
	case "space":
		return ' ', nil
	}
	r, n := utf8.DecodeRuneInString(v)
	if n == 0 || n != len(v) {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrDelimiter, v)
	}
	if err := CheckDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}
