// Package token holds the lexical rules of the TOON notation: when a string
// scalar must be quoted, how it is escaped, which delimiters are allowed and
// how numbers are written.
//
// A string is written bare unless one of these holds:
//
//   - it contains the active delimiter, ':', '{', '}', '[', ']', '"',
//     a newline, a carriage return or a tab
//   - it starts or ends with an ASCII space
//   - it is empty, or one of the literals true, false, null
//   - it parses as a number (strconv.ParseFloat syntax)
//
// Quoted strings escape backslash, double quote, newline, carriage return
// and tab, and nothing else.
//
// Numbers are written in plain decimal: no exponent, no trailing zeros and
// no ".0" on integral floats. NaN and infinities cannot be written.
package token
