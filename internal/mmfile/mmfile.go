// Package mmfile provides platform-specific helpers for memory-mapping skeleton
// files read-only. Patching never goes through a mapping; it is only used to
// inspect a file without copying it.
package mmfile

// Mapping is a read-only view of a whole file.
type Mapping struct {
	data  []byte
	unmap func() error
}

// Bytes returns the mapped contents. The slice must not be written to and
// must not be used after Close.
func (m *Mapping) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Close releases the mapping. Calling Close more than once is a no-op.
func (m *Mapping) Close() error {
	if m == nil || m.unmap == nil {
		return nil
	}
	unmap := m.unmap
	m.unmap = nil
	m.data = nil
	return unmap()
}

func noop() error { return nil }
