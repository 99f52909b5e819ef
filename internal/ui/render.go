package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/bodylens/bodylens/internal/search"
)

// regionID names the clickable/highlightable region for match i.
func regionID(i int) string {
	return fmt.Sprintf("m%d", i)
}

// renderWithRegions wraps each match span in a named region so the
// view can highlight and scroll to it. Span offsets index the raw
// buffer text, so slicing happens before any tview escaping.
func renderWithRegions(text string, spans []search.Span) string {
	if len(spans) == 0 {
		return tview.Escape(text)
	}

	var out strings.Builder
	prev := 0
	for i, span := range spans {
		if span.Start < prev || span.End > len(text) {
			continue
		}
		out.WriteString(tview.Escape(text[prev:span.Start]))
		out.WriteString(fmt.Sprintf(`["%s"][black:yellow]`, regionID(i)))
		out.WriteString(tview.Escape(text[span.Start:span.End]))
		out.WriteString(`[-:-][""]`)
		prev = span.End
	}
	out.WriteString(tview.Escape(text[prev:]))
	return out.String()
}
