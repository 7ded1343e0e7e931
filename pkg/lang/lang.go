// Package lang guesses the dominant natural language of a script's dialogue.
package lang

import (
	"regexp"
	"strings"
	"sync"

	"github.com/abadojack/whatlanggo"

	"subtools/pkg/ass"
)

var overrideTags = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`\{[^}]*\}`)
})

// Dominant detects the language spoken most across the script's dialogue
// events and returns its English name, or "" when no dialogue is usable.
// Override tags are stripped before detection so styling does not skew it.
func Dominant(script *ass.Script) string {
	votes := make(map[whatlanggo.Lang]int)
	for event := range script.Events() {
		if !event.Kind.IsDialogue() {
			continue
		}
		text := overrideTags().ReplaceAllString(event.Text, "")
		for _, part := range strings.Split(text, `\N`) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			info := whatlanggo.Detect(part)
			votes[info.Lang]++
		}
	}
	best := 0
	bestLang := whatlanggo.Lang(-1)
	for l, n := range votes {
		if n > best || (n == best && l < bestLang) {
			best = n
			bestLang = l
		}
	}
	if best == 0 {
		return ""
	}
	return whatlanggo.LangToString(bestLang)
}
