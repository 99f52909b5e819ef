// Package decode turns raw HTTP body bytes into display text. Decoding
// is best effort and never fails: an unrecognized or low-confidence
// charset falls back to lossy UTF-8.
package decode

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// minConfidence is the detector score a charset guess must beat before
// it is trusted over plain UTF-8.
const minConfidence = 50

const utf8Name = "UTF-8"

// Bytes decodes body bytes to text, returning the text and the charset
// name actually used.
func Bytes(b []byte) (string, string) {
	if len(b) == 0 {
		return "", utf8Name
	}

	name := detectCharset(b)
	if !strings.EqualFold(name, utf8Name) {
		if enc := lookupEncoding(name); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(b); err == nil {
				return string(decoded), name
			}
		}
	}
	return lossyUTF8(b), utf8Name
}

// detectCharset returns the detected charset name, or UTF-8 when the
// detector is unsure.
func detectCharset(b []byte) string {
	detector := chardet.NewTextDetector()
	match, err := detector.DetectBest(b)
	if err != nil || match == nil || match.Confidence <= minConfidence {
		return utf8Name
	}
	return match.Charset
}

// lookupEncoding resolves an IANA charset name to a decoder, or nil
// when the name is unknown or unsupported. The index can report a
// known name with no encoding behind it, which also lands here as nil.
func lookupEncoding(name string) encoding.Encoding {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil
	}
	return enc
}

// lossyUTF8 interprets bytes as UTF-8, replacing invalid sequences
// with the replacement rune instead of failing.
func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// UnescapeUnicode expands \uXXXX escape sequences into their runes. A
// high-surrogate escape followed by a low-surrogate escape combines
// into the single code point it encodes, so escaped non-BMP
// characters survive. Malformed escapes and unpaired surrogate halves
// are copied through verbatim.
func UnescapeUnicode(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); {
		if r, ok := parseEscape(s, i); ok {
			if !utf16.IsSurrogate(r) {
				out.WriteRune(r)
				i += 6
				continue
			}
			if r2, ok2 := parseEscape(s, i+6); ok2 {
				if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
					out.WriteRune(combined)
					i += 12
					continue
				}
			}
			// Unpaired surrogate half: fall through verbatim.
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// parseEscape reads one \uXXXX sequence starting at offset i.
func parseEscape(s string, i int) (rune, bool) {
	if i+6 > len(s) || s[i] != '\\' || s[i+1] != 'u' {
		return 0, false
	}
	n, err := strconv.ParseUint(s[i+2:i+6], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}
