// Package codepage converts clipboard text between UTF-8 and a named legacy
// code page such as "windows-1252". CF_TEXT carries bytes in the system's
// ANSI code page; winclip passes them through unchanged unless a code page
// is configured.
package codepage

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Raw is the name that disables conversion. The empty name means the same.
const Raw = "raw"

// Lookup returns the encoding registered under name (WHATWG labels, e.g.
// "windows-1252", "cp1252", "shift_jis"). It returns nil for Raw.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, Raw) {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("codepage %q: %w", name, err)
	}
	return enc, nil
}

// Decode converts b from the named code page to UTF-8.
func Decode(name string, b []byte) (string, error) {
	enc, err := Lookup(name)
	if err != nil || enc == nil {
		return string(b), err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// Encode converts UTF-8 s to the named code page. Characters the code page
// cannot represent are an error.
func Encode(name, s string) (string, error) {
	enc, err := Lookup(name)
	if err != nil || enc == nil {
		return s, err
	}
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	return out, nil
}
