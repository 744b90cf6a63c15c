package strbuf

import "github.com/carmesim/libstring/internal/buf"

// ToEnd as a Mid length selects everything from start to the end of the buffer.
const ToEnd = -1

// Mid returns a new buffer holding the bytes [start, start+length) of b,
// clipped to Len(). A length of ToEnd selects the rest of b.
//
// The result is empty when b is empty, when start is negative or not below
// Len(), and when length is below 1 and not ToEnd.
func (b *Buffer) Mid(start, length int) (*Buffer, error) {
	const op = "mid"
	if err := b.check(op); err != nil {
		return nil, err
	}
	r := b.registry()
	if b.size == 0 || start < 0 || start >= b.size || (length < 1 && length != ToEnd) {
		return r.New(), nil
	}

	stop := b.size
	if length != ToEnd {
		if end, ok := buf.AddOverflowSafe(start, length); ok && end < stop {
			stop = end
		}
	}
	seg, _ := buf.Slice(b.value[:b.size], start, stop-start)

	out, err := r.allocFit(op, len(seg))
	if err != nil {
		return nil, err
	}
	copy(out.value, seg)
	return out, nil
}

// Left returns the first n bytes of b; see Mid.
func (b *Buffer) Left(n int) (*Buffer, error) {
	return b.Mid(0, n)
}

// Right returns the last n bytes of b. A negative n, or one not below Len(),
// selects all of b.
func (b *Buffer) Right(n int) (*Buffer, error) {
	if err := b.check("right"); err != nil {
		return nil, err
	}
	start := 0
	if n >= 0 && n < b.size {
		start = b.size - n
	}
	return b.Mid(start, ToEnd)
}

// Reverse returns a new buffer holding the bytes of b in reverse order.
func (b *Buffer) Reverse() (*Buffer, error) {
	const op = "reverse"
	if err := b.check(op); err != nil {
		return nil, err
	}
	out, err := b.registry().allocFit(op, b.size)
	if err != nil {
		return nil, err
	}
	for i, c := range b.value[:b.size] {
		out.value[b.size-1-i] = c
	}
	return out, nil
}
