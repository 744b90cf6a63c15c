package strbuf

import (
	"fmt"
	"log/slog"

	"github.com/carmesim/libstring/internal/buf"
)

// Buffer is a growable byte string. The zero value is not usable; obtain
// buffers from a Registry.
type Buffer struct {
	// value is always exactly reserved bytes long. Bytes at or beyond size are
	// zero up to the first one, which acts as the terminator.
	value    []byte
	size     int
	reserved int

	reg      *Registry
	released bool
}

// Len returns the number of bytes stored.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Cap returns the reserved capacity, terminator slot included.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return b.reserved
}

// Bytes returns the stored bytes. The slice aliases the buffer's storage and
// is only valid until the next mutating call.
func (b *Buffer) Bytes() []byte {
	if !b.Valid() {
		return nil
	}
	return b.value[:b.size:b.size]
}

// String returns a copy of the stored bytes.
func (b *Buffer) String() string {
	if !b.Valid() {
		return ""
	}
	return string(b.value[:b.size])
}

// Valid reports whether b can be operated on: it is non-nil, not released,
// and its size does not exceed its capacity.
func (b *Buffer) Valid() bool {
	return b != nil &&
		!b.released &&
		b.value != nil &&
		b.size >= 0 &&
		b.size <= b.reserved &&
		len(b.value) == b.reserved
}

// Reserve sets the capacity of b to exactly n bytes, keeping its content.
// It fails with ErrCapacityTooSmall when n < Len() and with
// ErrAllocationFailed when n exceeds the registry's MaxCapacity; in both
// cases b is left as it was.
func (b *Buffer) Reserve(n int) error {
	const op = "reserve"
	if err := b.check(op); err != nil {
		return err
	}
	if n < b.size {
		return b.fail(op, ErrKindCapacity,
			fmt.Sprintf("capacity %d is smaller than size %d", n, b.size), nil)
	}
	if n == b.reserved {
		return nil
	}
	if limit := b.registry().opts.maxCapacity(); n > limit {
		return b.fail(op, ErrKindAllocation,
			fmt.Sprintf("capacity %d exceeds limit %d", n, limit), nil)
	}

	// The new storage is fully built before it replaces the old one.
	value := make([]byte, n)
	copy(value, b.value[:b.size])
	b.value = value
	b.reserved = n
	return nil
}

// Set replaces the content of b with s, growing b when s does not fit.
// It returns the new size.
func (b *Buffer) Set(s string) (int, error) {
	const op = "set"
	if err := b.check(op); err != nil {
		return 0, err
	}
	need, ok := buf.AddOverflowSafe(len(s), 1)
	if !ok {
		return b.size, b.fail(op, ErrKindAllocation, "size overflows int", nil)
	}
	if need > b.reserved {
		if err := b.Reserve(need); err != nil {
			return b.size, err
		}
	}
	n := copy(b.value, s)
	if n < b.size {
		clear(b.value[n:b.size])
	}
	b.size = n
	b.terminate()
	return b.size, nil
}

// terminate zeroes the slot following the content when there is one.
func (b *Buffer) terminate() {
	if b.size < b.reserved {
		b.value[b.size] = 0
	}
}

func (b *Buffer) registry() *Registry {
	if b == nil || b.reg == nil {
		return Default
	}
	return b.reg
}

// check is the sanity check run before every operation.
func (b *Buffer) check(op string) error {
	if b.Valid() {
		return nil
	}
	msg := "buffer is nil"
	switch {
	case b == nil:
	case b.released:
		msg = "buffer was released"
	case b.value == nil:
		msg = "buffer is not initialized"
	default:
		msg = fmt.Sprintf("size %d exceeds capacity %d", b.size, b.reserved)
	}
	return b.fail(op, ErrKindInvalidBuffer, msg, nil)
}

func (b *Buffer) fail(op string, kind ErrKind, msg string, cause error) error {
	if b == nil {
		return Default.fail(op, kind, msg, cause)
	}
	return b.registry().fail(op, kind, msg, cause,
		slog.Int("size", b.size), slog.Int("reserved", b.reserved))
}
