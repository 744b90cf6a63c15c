package strbuf

import "github.com/carmesim/libstring/internal/buf"

// Concat returns a new buffer holding b followed by suffix. b is not
// modified. The result's capacity is Len()+len(suffix)+1.
func (b *Buffer) Concat(suffix string) (*Buffer, error) {
	const op = "concat"
	if err := b.check(op); err != nil {
		return nil, err
	}
	total, ok := buf.AddOverflowSafe(b.size, len(suffix))
	if !ok {
		return nil, b.fail(op, ErrKindAllocation, "size overflows int", nil)
	}
	out, err := b.registry().allocFit(op, total)
	if err != nil {
		return nil, err
	}
	n := copy(out.value, b.value[:b.size])
	copy(out.value[n:], suffix)
	return out, nil
}

// Append appends suffix to b in place and returns the new size. When b lacks
// room it is grown to Len()+len(suffix)+1 first; if that fails b is left
// unchanged and the Reserve error is returned.
func (b *Buffer) Append(suffix string) (int, error) {
	const op = "append"
	if err := b.check(op); err != nil {
		return 0, err
	}
	if suffix == "" {
		return b.size, nil
	}
	total, ok := buf.AddOverflowSafe(b.size, len(suffix))
	if !ok {
		return b.size, b.fail(op, ErrKindAllocation, "size overflows int", nil)
	}
	need, ok := buf.AddOverflowSafe(total, 1)
	if !ok {
		return b.size, b.fail(op, ErrKindAllocation, "size overflows int", nil)
	}
	if b.reserved < need {
		if err := b.Reserve(need); err != nil {
			return b.size, err
		}
	}
	copy(b.value[b.size:], suffix)
	b.size = total
	b.terminate()
	return b.size, nil
}
