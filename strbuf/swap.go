package strbuf

// Swap exchanges the contents of a and b: storage, size and capacity. Both
// buffers keep their registry. Swapping twice restores the originals.
func Swap(a, b *Buffer) error {
	const op = "swap"
	if err := a.check(op); err != nil {
		return err
	}
	if err := b.check(op); err != nil {
		return err
	}
	a.value, b.value = b.value, a.value
	a.size, b.size = b.size, a.size
	a.reserved, b.reserved = b.reserved, a.reserved
	return nil
}
