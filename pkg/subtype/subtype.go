// Package subtype sniffs the format of a subtitle buffer.
package subtype

import (
	"regexp"
	"strings"
	"sync"
)

// Type is a recognized subtitle container format.
type Type int

const (
	Unknown Type = iota
	ASS
	SRT
	VTT
)

func (t Type) String() string {
	switch t {
	case ASS:
		return "ass"
	case SRT:
		return "srt"
	case VTT:
		return "vtt"
	}
	return "unknown"
}

var srtTimes = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(\d{1,2}):(\d{2}):(\d{2})[.,](\d{2,3})`)
})

// Detect guesses the format from content alone, ignoring file extensions.
// SRT is recognized by a line carrying exactly two timestamps.
func Detect(buffer string) Type {
	buffer = strings.TrimPrefix(buffer, "\uFEFF")
	if strings.HasPrefix(buffer, "[Script Info]") {
		return ASS
	}
	if strings.HasPrefix(strings.TrimLeft(buffer, " "), "WEBVTT") {
		return VTT
	}
	for _, line := range strings.Split(buffer, "\n") {
		if len(srtTimes().FindAllString(line, 3)) == 2 {
			return SRT
		}
	}
	return Unknown
}
