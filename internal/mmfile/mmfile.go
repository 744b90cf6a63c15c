// Package mmfile exposes the contents of a file as a byte slice, memory
// mapped where the platform allows it.
package mmfile

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the file contents. The slice is invalid after Close.
func (m *Mapping) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Close releases the mapping. Calling it more than once is a no-op.
func (m *Mapping) Close() error {
	if m == nil || m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	if m.unmap == nil {
		return nil
	}
	return m.unmap(data)
}
