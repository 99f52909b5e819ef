package editor

// MemoryBuffer is an in-process RawBuffer for hosts without a native
// raw editor, such as the CLI viewer.
type MemoryBuffer struct {
	contents []byte
	editable bool
}

// NewMemoryBuffer creates a raw buffer holding no content.
func NewMemoryBuffer(editable bool) *MemoryBuffer {
	return &MemoryBuffer{editable: editable}
}

// Contents returns the current byte content.
func (m *MemoryBuffer) Contents() []byte {
	return m.contents
}

// SetContents replaces the byte content.
func (m *MemoryBuffer) SetContents(b []byte) {
	m.contents = b
}

// Editable reports whether the buffer accepts writes from user edits.
func (m *MemoryBuffer) Editable() bool {
	return m.editable
}
