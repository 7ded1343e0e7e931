// Package vtt extracts dialogue from WebVTT files.
package vtt

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"subtools/pkg/srt"
)

var (
	ErrMissingHeader = errors.New("invalid vtt file (missing header)")
	ErrNoDialogue    = errors.New("no dialogue found")
)

var cuePattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?P<start>(?:\d{2}:)?\d{2}:\d{2}[.,]\d{3})\s-->\s(?P<end>(?:\d{2}:)?\d{2}:\d{2}[.,]\d{3})(?:.*line:(?P<line>[0-9.]+?)%)?`)
})

var cleanupPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(</?c\.[a-zA-Z_\s]+>|&lrm;|&rlm;)`)
})

// Parse extracts dialogue entries from a WebVTT buffer. Styling classes and
// bidi entities are stripped, and cues positioned in the top half of the
// screen keep that placement through an {\an8} tag. Cues that fail to parse
// are skipped.
func Parse(buffer string) ([]srt.Dialogue, error) {
	if !strings.HasPrefix(buffer, "WEBVTT\n") {
		return nil, ErrMissingHeader
	}
	// Both paths land on the newline before the first cue; parseCue strips
	// the leading newline each split segment inherits from it.
	start := strings.Index(buffer, "\n1\n")
	if start < 0 {
		start = backupDialogueIndex(buffer)
	}
	if start <= 0 {
		return nil, ErrNoDialogue
	}
	body := strings.TrimRight(buffer[start:], "\n")
	var dialogue []srt.Dialogue
	for i, segment := range strings.Split(body, "\n\n") {
		d, ok := parseCue(i, segment)
		if !ok {
			continue
		}
		dialogue = append(dialogue, d)
	}
	if len(dialogue) == 0 {
		return nil, ErrNoDialogue
	}
	return dialogue, nil
}

func parseCue(index int, segment string) (srt.Dialogue, bool) {
	segment = strings.TrimPrefix(segment, "\n")
	first, rest, ok := strings.Cut(segment, "\n")
	if !ok {
		return srt.Dialogue{}, false
	}
	position := index + 1
	cueLine := first
	if n, err := strconv.ParseUint(strings.TrimSpace(first), 10, 32); err == nil {
		position = int(n)
		cueLine, rest, ok = strings.Cut(rest, "\n")
		if !ok {
			return srt.Dialogue{}, false
		}
	}
	m := cuePattern().FindStringSubmatch(cueLine)
	if m == nil {
		return srt.Dialogue{}, false
	}
	start, ok := srt.ParseTime(m[1])
	if !ok {
		return srt.Dialogue{}, false
	}
	end, ok := srt.ParseTime(m[2])
	if !ok {
		return srt.Dialogue{}, false
	}
	text := cleanupPattern().ReplaceAllString(rest, "")
	if m[3] != "" {
		if line, err := strconv.ParseFloat(m[3], 64); err == nil && line < 50 {
			text = `{\an8}` + text
		}
	}
	return srt.Dialogue{
		Position: position,
		Start:    start,
		End:      end,
		Text:     text,
	}, true
}

// backupDialogueIndex locates the first cue in files without numbered cue
// identifiers: the newline before the line holding the first "-->" separator.
func backupDialogueIndex(buffer string) int {
	arrow := strings.Index(buffer, "-->")
	if arrow < 0 {
		return -1
	}
	return strings.LastIndex(buffer[:arrow], "\n")
}
