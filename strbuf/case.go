package strbuf

// ASCII letters differ from their other case only in this bit.
const caseBit = 0x20

// ToLower returns a new buffer with ASCII upper-case letters lowered. Bytes
// outside 'A'..'Z' are copied unchanged.
func (b *Buffer) ToLower() (*Buffer, error) {
	return b.flipCase("to_lower", 'A', 'Z')
}

// ToUpper returns a new buffer with ASCII lower-case letters raised. Bytes
// outside 'a'..'z' are copied unchanged.
func (b *Buffer) ToUpper() (*Buffer, error) {
	return b.flipCase("to_upper", 'a', 'z')
}

func (b *Buffer) flipCase(op string, lo, hi byte) (*Buffer, error) {
	if err := b.check(op); err != nil {
		return nil, err
	}
	out, err := b.registry().allocFit(op, b.size)
	if err != nil {
		return nil, err
	}
	for i, c := range b.value[:b.size] {
		if c >= lo && c <= hi {
			c ^= caseBit
		}
		out.value[i] = c
	}
	return out, nil
}
