// Package srt parses and renders SubRip dialogue.
package srt

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"subtools/internal/textio"
)

// Dialogue is one numbered SRT cue. Text keeps literal newlines between its
// lines.
type Dialogue struct {
	Position int
	Start    time.Duration
	End      time.Duration
	Text     string
}

var (
	ErrBadPosition   = errors.New("could not parse srt dialogue: bad position")
	ErrBadStart      = errors.New("could not parse srt dialogue: bad start")
	ErrBadEnd        = errors.New("could not parse srt dialogue: bad end")
	ErrBadSeparator  = errors.New("could not parse srt dialogue: bad or missing separator")
	ErrEmptyDialogue = errors.New("could not parse srt dialogue: no dialogue")
)

// ParseTime decodes HH:MM:SS,mmm. A period may separate the millisecond
// field instead (WebVTT does), and non-numeric hours fall back to zero.
func ParseTime(s string) (time.Duration, bool) {
	sep := strings.IndexAny(s, ",.")
	if sep < 0 {
		return 0, false
	}
	rest, ms := s[:sep], s[sep+1:]
	units := strings.SplitN(strings.TrimSpace(rest), ":", 3)
	if len(units) != 3 {
		return 0, false
	}
	hours, _ := strconv.ParseUint(units[0], 10, 64)
	minutes, err := strconv.ParseUint(units[1], 10, 64)
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.ParseUint(units[2], 10, 64)
	if err != nil {
		return 0, false
	}
	millis, err := strconv.ParseUint(strings.TrimSpace(ms), 10, 32)
	if err != nil {
		return 0, false
	}
	secs := hours*3600 + minutes*60 + seconds
	return time.Duration(secs)*time.Second + time.Duration(millis)*time.Millisecond, true
}

func formatTime(d time.Duration) string {
	secs := int64(d / time.Second)
	ms := int64(d/time.Millisecond) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", secs/3600, (secs/60)%60, secs%60, ms)
}

// String renders the cue in SRT block form, without a trailing newline.
func (d Dialogue) String() string {
	return fmt.Sprintf("%d\n%s --> %s\n%s",
		d.Position, formatTime(d.Start), formatTime(d.End), d.Text)
}

// ShiftBy moves the cue by a signed number of seconds, clamping at zero.
func (d *Dialogue) ShiftBy(seconds float64) {
	offset := time.Duration(math.Abs(seconds) * float64(time.Second))
	if seconds < 0 {
		d.Start = saturatingSub(d.Start, offset)
		d.End = saturatingSub(d.End, offset)
		return
	}
	d.Start += offset
	d.End += offset
}

func saturatingSub(d, offset time.Duration) time.Duration {
	if offset >= d {
		return 0
	}
	return d - offset
}

// ParseDialogue parses one SRT block: position, timing line, then free text.
func ParseDialogue(s string) (Dialogue, error) {
	parts := strings.SplitN(s, "\n", 3)
	position, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Dialogue{}, ErrBadPosition
	}
	if len(parts) < 2 {
		return Dialogue{}, ErrBadStart
	}
	startText, endText, ok := strings.Cut(parts[1], " --> ")
	if !ok {
		return Dialogue{}, ErrBadSeparator
	}
	start, ok := ParseTime(startText)
	if !ok {
		return Dialogue{}, ErrBadStart
	}
	end, ok := ParseTime(endText)
	if !ok {
		return Dialogue{}, ErrBadEnd
	}
	if len(parts) < 3 {
		return Dialogue{}, ErrEmptyDialogue
	}
	return Dialogue{
		Position: int(position),
		Start:    start,
		End:      end,
		Text:     parts[2],
	}, nil
}

// Load reads and parses the SRT file at path.
func Load(path string) ([]Dialogue, error) {
	buffer, err := textio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dialogue, err := Parse(buffer)
	if err != nil {
		return nil, fmt.Errorf("failed to extract dialogue from %s: %w", path, err)
	}
	return dialogue, nil
}

// Parse splits a whole SRT buffer into dialogue entries. The first invalid
// block fails the parse with its 1-based index in the error.
func Parse(buffer string) ([]Dialogue, error) {
	blocks := strings.Split(buffer, "\n\n")
	if n := len(blocks); n > 0 && blocks[n-1] == "" {
		blocks = blocks[:n-1]
	}
	dialogue := make([]Dialogue, 0, len(blocks))
	for i, block := range blocks {
		d, err := ParseDialogue(block)
		if err != nil {
			return nil, fmt.Errorf("from srt dialogue %d: %w", i+1, err)
		}
		dialogue = append(dialogue, d)
	}
	return dialogue, nil
}

// Save writes dialogue entries as an SRT file at path.
func Save(path string, dialogue []Dialogue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create new subtitle file: %w", err)
	}
	if err := Write(f, dialogue); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders dialogue entries to w, separated and terminated by blank
// lines.
func Write(w io.Writer, dialogue []Dialogue) error {
	entries := make([]string, len(dialogue))
	for i, d := range dialogue {
		entries[i] = d.String()
	}
	_, err := io.WriteString(w, strings.Join(entries, "\n\n")+"\n\n")
	return err
}
