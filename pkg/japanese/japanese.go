// Package japanese detects Japanese text and repairs artifacts left behind
// by broadcast subtitle extraction: half-width katakana, gaiji placeholders
// and stray directional formatting characters.
package japanese

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// IsJapanese reports whether r falls in the hiragana, katakana, half-width
// katakana or common CJK ideograph blocks.
func IsJapanese(r rune) bool {
	switch {
	case r >= 0x3040 && r <= 0x30FF:
		return true
	case r >= 0xFF66 && r <= 0xFF9D:
		return true
	case r >= 0x4E00 && r <= 0x9FAF:
		return true
	}
	return false
}

// ContainsJapanese reports whether s contains any Japanese rune.
func ContainsJapanese(s string) bool {
	return strings.ContainsFunc(s, IsJapanese)
}

// Half-width katakana plus the halfwidth middle dot and voicing marks.
var halfwidthKana = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xFF65, Hi: 0xFF9F, Stride: 1}},
}

var widenKana = sync.OnceValue(func() transform.Transformer {
	// Widening is restricted to the kana block so ASCII stays narrow. NFC
	// then composes the widened voicing marks into their base kana.
	return transform.Chain(
		runes.If(runes.In(halfwidthKana), width.Widen, nil),
		norm.NFC,
	)
})

// FixBrokenText cleans text ripped from ARIB broadcast captions: gaiji
// placeholders like [外:3A4B...] are removed, half-width katakana is widened
// to full width, and embedded directional formatting is stripped.
func FixBrokenText(text string) string {
	text = removeGaiji(text)
	if strings.ContainsFunc(text, func(r rune) bool { return r >= 0xFF65 && r <= 0xFF9F }) {
		if widened, _, err := transform.String(widenKana(), text); err == nil {
			text = widened
		}
	}
	text = strings.ReplaceAll(text, "\u202a", "")
	text = strings.ReplaceAll(text, "\u202c", "")
	return strings.ReplaceAll(text, "&lrm;", "")
}

// removeGaiji deletes [外:XXXX...] placeholders, where the bracket body is a
// run of hex digits.
func removeGaiji(text string) string {
	for {
		start := strings.Index(text, "[外:")
		if start < 0 {
			return text
		}
		body := text[start+len("[外:"):]
		end := strings.IndexFunc(body, func(r rune) bool {
			return !isHexDigit(r)
		})
		if end < 0 || body[end] != ']' {
			return text
		}
		text = text[:start] + body[end+1:]
	}
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
