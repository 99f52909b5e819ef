package editor

// TextBuffer is the live, user-visible text of a message body. It
// tracks a cursor offset and notifies registered observers after every
// content change. The buffer itself does not distinguish programmatic
// replacements from user edits; the sync bridge does.
type TextBuffer struct {
	text      string
	cursor    int
	observers []func()
}

// NewTextBuffer creates an empty buffer with the cursor at offset 0.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{}
}

// OnChange registers an observer invoked after every content change.
func (b *TextBuffer) OnChange(fn func()) {
	b.observers = append(b.observers, fn)
}

// Text returns the current content.
func (b *TextBuffer) Text() string {
	return b.text
}

// Len returns the content length in bytes.
func (b *TextBuffer) Len() int {
	return len(b.text)
}

// Cursor returns the tracked cursor offset.
func (b *TextBuffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamping silently into [0, Len].
func (b *TextBuffer) SetCursor(offset int) {
	b.cursor = clamp(offset, len(b.text))
}

// SetText replaces the content wholesale. The previously tracked
// cursor offset is kept when it still fits the new content, otherwise
// it clamps to end-of-content. Observers fire after the replacement.
func (b *TextBuffer) SetText(text string) {
	b.text = text
	b.cursor = clamp(b.cursor, len(text))
	b.notify()
}

func (b *TextBuffer) notify() {
	for _, fn := range b.observers {
		fn()
	}
}

func clamp(offset, max int) int {
	if offset < 0 || offset > max {
		return max
	}
	return offset
}
