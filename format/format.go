package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	MarkupFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"m":      MarkupFormat,
		"markup": MarkupFormat,
		"x":      MarkupFormat,
		"xml":    MarkupFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
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
	case MarkupFormat:
		return []byte("markup"), nil
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

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case MarkupFormat:
		return ".xml"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix guesses the format of a file from its extension, defaulting
// to markup.
func FromSuffix(path string) Format {
	for _, f := range AllFormats() {
		s := f.Suffix()
		if len(path) > len(s) && path[len(path)-len(s):] == s {
			return f
		}
	}
	if len(path) > 4 && path[len(path)-4:] == ".yml" {
		return YAMLFormat
	}
	return MarkupFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{MarkupFormat, JSONFormat, YAMLFormat}
}
