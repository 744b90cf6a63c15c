package strbuf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/carmesim/libstring/internal/buf"
)

// Contains reports whether needle occurs in b. A needle longer than b is
// never found; an empty needle is always found (at position 0). An invalid
// buffer contains nothing.
func (b *Buffer) Contains(needle string) bool {
	return b.Index(needle) >= 0
}

// Index returns the position of the first occurrence of needle in b, or -1.
func (b *Buffer) Index(needle string) int {
	if b.check("index") != nil {
		return -1
	}
	if len(needle) > b.size {
		return -1
	}
	return bytes.Index(b.value[:b.size], []byte(needle))
}

// IndexByte returns the position of the first c in b, or -1.
func (b *Buffer) IndexByte(c byte) int {
	if b.check("index_byte") != nil {
		return -1
	}
	return bytes.IndexByte(b.value[:b.size], c)
}

// LastIndexByte returns the position of the last c in b, or -1.
func (b *Buffer) LastIndexByte(c byte) int {
	if b.check("last_index_byte") != nil {
		return -1
	}
	return bytes.LastIndexByte(b.value[:b.size], c)
}

// HasPrefix reports whether b begins with prefix.
func (b *Buffer) HasPrefix(prefix string) bool {
	if b.check("has_prefix") != nil {
		return false
	}
	return bytes.HasPrefix(b.value[:b.size], []byte(prefix))
}

// HasSuffix reports whether b ends with suffix.
func (b *Buffer) HasSuffix(suffix string) bool {
	if b.check("has_suffix") != nil {
		return false
	}
	return bytes.HasSuffix(b.value[:b.size], []byte(suffix))
}

// Equal reports whether b holds exactly s.
func (b *Buffer) Equal(s string) bool {
	if b.check("equal") != nil {
		return false
	}
	return string(b.value[:b.size]) == s
}

// Compare orders b and other lexicographically by byte value, returning -1,
// 0 or +1.
func (b *Buffer) Compare(other *Buffer) (int, error) {
	const op = "compare"
	if err := b.check(op); err != nil {
		return 0, err
	}
	if err := other.check(op); err != nil {
		return 0, err
	}
	return bytes.Compare(b.value[:b.size], other.value[:other.size]), nil
}

// At returns the byte at position i.
func (b *Buffer) At(i int) (byte, error) {
	const op = "at"
	if err := b.check(op); err != nil {
		return 0, err
	}
	p, ok := buf.Slice(b.value[:b.size], i, 1)
	if !ok {
		return 0, b.fail(op, ErrKindArgument, fmt.Sprintf("position %d out of range", i), nil)
	}
	return p[0], nil
}

// SetAt overwrites the byte at position i with c.
func (b *Buffer) SetAt(i int, c byte) error {
	const op = "set_at"
	if err := b.check(op); err != nil {
		return err
	}
	if !buf.Has(b.value[:b.size], i, 1) {
		return b.fail(op, ErrKindArgument, fmt.Sprintf("position %d out of range", i), nil)
	}
	b.value[i] = c
	return nil
}

// Int parses b, ignoring surrounding ASCII whitespace, as a base-10 integer.
func (b *Buffer) Int() (int, error) {
	const op = "int"
	if err := b.check(op); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b.value[:b.size])))
	if err != nil {
		return 0, b.fail(op, ErrKindArgument, "not an integer", err)
	}
	return n, nil
}
