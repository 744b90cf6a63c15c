package strbuf

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/valyala/bytebufferpool"
)

// ReplaceChar replaces every before byte in b with after and returns the
// number of bytes replaced.
func (b *Buffer) ReplaceChar(before, after byte) (int, error) {
	if err := b.check("replace_char"); err != nil {
		return 0, err
	}
	n := 0
	for i, c := range b.value[:b.size] {
		if c == before {
			b.value[i] = after
			n++
		}
	}
	return n, nil
}

// Replace substitutes repl for every occurrence of old in b, in place.
//
// After each substitution the search restarts at the beginning, so an
// occurrence formed across the edge of an earlier replacement is replaced
// too. The rewrite runs in scratch space and b is only updated once it has
// finished. When repl is at least as long as old, a match that touches bytes
// inserted by an earlier substitution would keep the rewrite going, so it
// fails with ErrArgument. An empty old also fails with ErrArgument. A result
// that would not fit within the registry's MaxCapacity fails with
// ErrAllocationFailed. On any error b is left unchanged.
func (b *Buffer) Replace(old, repl string) error {
	const op = "replace"
	if err := b.check(op); err != nil {
		return err
	}
	if old == "" {
		return b.fail(op, ErrKindArgument, "empty search string", nil)
	}

	needle := []byte(old)
	i := bytes.Index(b.value[:b.size], needle)
	if i < 0 {
		return nil
	}

	cur, next := bytebufferpool.Get(), bytebufferpool.Get()
	defer func() {
		bytebufferpool.Put(cur)
		bytebufferpool.Put(next)
	}()
	cur.Write(b.value[:b.size])

	// inserted[k] is true when cur.B[k] came from repl. Shrinking rules
	// always finish, so they are not tracked.
	tracked := len(repl) >= len(old)
	var inserted, spare []bool
	if tracked {
		inserted = make([]bool, cur.Len())
	}
	limit := b.registry().opts.maxCapacity()

	for ; i >= 0; i = bytes.Index(cur.B, needle) {
		if tracked && slices.Contains(inserted[i:i+len(old)], true) {
			return b.fail(op, ErrKindArgument,
				fmt.Sprintf("replacing %q with %q does not terminate", old, repl), nil)
		}
		n := cur.Len() - len(old) + len(repl)
		if n >= limit {
			return b.fail(op, ErrKindAllocation,
				fmt.Sprintf("result of %d bytes exceeds limit %d", n, limit), nil)
		}

		next.Reset()
		next.Write(cur.B[:i])
		next.WriteString(repl)
		next.Write(cur.B[i+len(old):])
		cur, next = next, cur

		if tracked {
			spare = append(spare[:0], inserted[:i]...)
			for range len(repl) {
				spare = append(spare, true)
			}
			spare = append(spare, inserted[i+len(old):]...)
			inserted, spare = spare, inserted
		}
	}

	n := cur.Len()
	if n >= b.reserved {
		if err := b.Reserve(n + 1); err != nil {
			return b.fail(op, ErrKindAllocation, "cannot grow buffer", err)
		}
	}
	copy(b.value, cur.B)
	if n < b.size {
		clear(b.value[n:b.size])
	}
	b.size = n
	b.terminate()
	return nil
}
