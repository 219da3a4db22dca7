package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TOONFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TOONFormat,
		"toon": TOONFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromSuffix guesses a format from a file name extension, defaulting to JSON.
func FromSuffix(name string) Format {
	for _, f := range AllFormats() {
		for _, s := range f.suffixes() {
			if len(name) > len(s) && name[len(name)-len(s):] == s {
				return f
			}
		}
	}
	return JSONFormat
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TOONFormat:
		return []byte("toon"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// CanRead reports whether documents in this format can be parsed into IR.
// TOON is write only.
func (f Format) CanRead() bool { return f == JSONFormat || f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	s := f.suffixes()
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func (f Format) suffixes() []string {
	switch f {
	case TOONFormat:
		return []string{".toon"}
	case JSONFormat:
		return []string{".json"}
	case YAMLFormat:
		return []string{".yaml", ".yml"}
	default:
		return nil
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TOONFormat, JSONFormat, YAMLFormat}
}
