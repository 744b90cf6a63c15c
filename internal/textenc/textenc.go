// Package textenc converts text in legacy 8-bit charsets to UTF-8.
package textenc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnknownCharset is returned for charset names that cannot be resolved.
var ErrUnknownCharset = errors.New("textenc: unknown charset")

// Common names resolved without consulting the IANA index.
var charsets = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"latin9":       charmap.ISO8859_15,
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
}

// IsPassthrough reports whether charset names UTF-8 (or nothing), meaning
// bytes are used unchanged.
func IsPassthrough(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8", "raw":
		return true
	}
	return false
}

// Lookup resolves a charset name.
func Lookup(charset string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if cm, ok := charsets[name]; ok {
		return cm, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	return enc, nil
}

// Decode converts data from charset to UTF-8. For passthrough charsets data
// is returned as is, without copying.
func Decode(data []byte, charset string) ([]byte, error) {
	if IsPassthrough(charset) {
		return data, nil
	}
	enc, err := Lookup(charset)
	if err != nil {
		return nil, err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("textenc: decode %s: %w", charset, err)
	}
	return decoded, nil
}
