// Package editor binds an editable display buffer to an external raw
// byte buffer and keeps the two representations synchronized without
// echo loops.
package editor

import (
	"github.com/bodylens/bodylens/internal/content"
	"github.com/bodylens/bodylens/internal/decode"
	"github.com/bodylens/bodylens/internal/search"
)

// RawBuffer is the opaque raw-byte collaborator. In the proxy host it
// is the native message editor; the CLI uses MemoryBuffer.
type RawBuffer interface {
	Contents() []byte
	SetContents([]byte)
	Editable() bool
}

// Message is the minimal view of an HTTP message the editor needs.
type Message interface {
	Body() []byte
}

// Editor owns one display buffer, its search index and the bridge to a
// raw buffer. All methods expect the single-threaded cooperative model
// of a UI event loop.
type Editor struct {
	buffer    *TextBuffer
	raw       RawBuffer
	formatter *content.Formatter
	index     *search.Index

	// syncing suppresses edit propagation while a programmatic
	// replacement is in flight. Not a lock: a re-entrancy guard.
	syncing bool

	original string
	charset  string
	ctype    content.Type
}

// New creates an editor bridged to raw.
func New(raw RawBuffer) *Editor {
	e := &Editor{
		buffer:    NewTextBuffer(),
		raw:       raw,
		formatter: content.NewFormatter(),
		index:     search.NewIndex(),
		charset:   "UTF-8",
	}
	e.buffer.OnChange(e.bufferChanged)
	return e
}

// Buffer returns the display buffer.
func (e *Editor) Buffer() *TextBuffer {
	return e.buffer
}

// Search returns the search index over the display buffer.
func (e *Editor) Search() *search.Index {
	return e.index
}

// ContentType returns the classification of the current body.
func (e *Editor) ContentType() content.Type {
	return e.ctype
}

// Charset returns the charset name the current body was decoded with.
func (e *Editor) Charset() string {
	return e.charset
}

// SetBody installs a new message body as the authoritative content:
// decode, classify, format, replace the display buffer (cursor
// preserved or clamped), mirror into the raw buffer and reset the
// search context. An empty body installs empty text with no
// formatting attempt.
func (e *Editor) SetBody(body []byte) {
	if len(body) == 0 {
		e.withSyncSuppressed(func() {
			e.buffer.SetText("")
		})
		e.original = ""
		e.charset = "UTF-8"
		e.ctype = content.Plain
		if e.raw != nil {
			e.raw.SetContents(nil)
		}
		e.index.SetText("")
		return
	}

	text, charset := decode.Bytes(body)
	text = decode.UnescapeUnicode(text)
	e.charset = charset
	e.ctype = content.Classify(text)

	result := e.formatter.Format(text, e.ctype)
	e.original = result.Text

	e.withSyncSuppressed(func() {
		e.buffer.SetText(result.Text)
	})
	if e.raw != nil {
		e.raw.SetContents([]byte(result.Text))
	}
	e.index.SetText(result.Text)
}

// IsApplicableFor reports whether this editor should be offered for
// msg: only messages with a non-empty body qualify.
func (e *Editor) IsApplicableFor(msg Message) bool {
	return msg != nil && len(msg.Body()) > 0
}

// DisplayLabel returns the fixed caption for this editor.
func (e *Editor) DisplayLabel() string {
	return "Body"
}

// IsModified reports whether the live buffer differs from the body as
// originally installed.
func (e *Editor) IsModified() bool {
	return e.buffer.Text() != e.original
}

// CurrentOutgoingBody returns the live buffer re-encoded as UTF-8,
// for committing edited content upstream.
func (e *Editor) CurrentOutgoingBody() []byte {
	return []byte(e.buffer.Text())
}

// withSyncSuppressed runs fn with edit propagation disabled. The flag
// clears on every exit path, panics included.
func (e *Editor) withSyncSuppressed(fn func()) {
	e.syncing = true
	defer func() { e.syncing = false }()
	fn()
}

// bufferChanged propagates user edits to the raw buffer. Notifications
// arriving while a programmatic replacement is in flight are echoes of
// that replacement and are dropped.
func (e *Editor) bufferChanged() {
	if e.syncing {
		return
	}
	if e.raw != nil && e.raw.Editable() {
		e.raw.SetContents([]byte(e.buffer.Text()))
	}
}
