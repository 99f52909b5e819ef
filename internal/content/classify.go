package content

import (
	"regexp"
	"strings"
)

// Type tags a message body with the display treatment it should get.
type Type int

const (
	Plain Type = iota
	XML
	HTML
	JSON
	JavaScript
	CSS
)

// String returns the lowercase name of the content type.
func (t Type) String() string {
	switch t {
	case XML:
		return "xml"
	case HTML:
		return "html"
	case JSON:
		return "json"
	case JavaScript:
		return "javascript"
	case CSS:
		return "css"
	default:
		return "plain"
	}
}

// Detection patterns, tried in a fixed order. First hit wins.
var (
	xmlPattern  = regexp.MustCompile(`(?s)<\?xml.*?\?>`)
	htmlPattern = regexp.MustCompile(`(?i)<html`)
	jsPattern   = regexp.MustCompile(`function\s*\w*\s*\(|const\s+\w+|let\s+\w+|var\s+\w+`)
	cssPattern  = regexp.MustCompile(`[#.]?\w+\s*\{|@import|@media`)
)

// Classify tags text with a content type using an ordered heuristic
// cascade. The JSON test is deliberately permissive: a colon plus a
// double quote anywhere is enough, so JSON-ish form data still gets a
// pretty-print attempt. Wrong tags are possible and downstream must
// tolerate them.
func Classify(text string) Type {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Plain
	}

	switch {
	case xmlPattern.MatchString(trimmed):
		return XML
	case htmlPattern.MatchString(trimmed):
		return HTML
	case looksLikeJSON(trimmed):
		return JSON
	case jsPattern.MatchString(trimmed):
		return JavaScript
	case cssPattern.MatchString(trimmed):
		return CSS
	}
	return Plain
}

// looksLikeJSON is the classifier's broad JSON check. It accepts any
// bracket-opened text and any text carrying both a colon and a double
// quote. Broader than IsJSONLike on purpose; the two predicates serve
// different call sites and are kept separate.
func looksLikeJSON(trimmed string) bool {
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") && strings.Contains(trimmed, `"`)
}
