package ass

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"
	"strings"
	"sync"

	"subtools/pkg/japanese"
	"subtools/pkg/srt"
)

// Script is a parsed .ass document: its sections in file order. Sections of
// the same kind are kept separate, never merged.
type Script struct {
	Sections []Section
}

// Open parses the .ass file at path.
func Open(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorAt(0, fmt.Errorf("file error: %w", err))
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a document from a stream. The first line must be
// [Script Info], optionally preceded by a UTF-8 BOM. Error line numbers
// count the header as line 1.
func Parse(r io.Reader) (*Script, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errorAt(1, fmt.Errorf("file error: %w", err))
		}
		return nil, errorAt(1, ErrMissingScriptInfo)
	}
	first := strings.TrimPrefix(scanner.Text(), "\uFEFF")
	if strings.TrimRight(first, " \t\r\n") != "[Script Info]" {
		return nil, errorAt(1, ErrMissingScriptInfo)
	}
	sections := []Section{newScriptInfo()}
	lineNo := 2
	for ; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		switch line {
		case "[V4+ Styles]":
			sections = append(sections, newStylesSection())
			continue
		case "[Events]":
			sections = append(sections, newEventsSection())
			continue
		}
		if title, ok := genericTitle(line); ok {
			sections = append(sections, newGenericSection(title))
			continue
		}
		parsed, ok := ClassifyLine(line)
		if !ok {
			continue
		}
		if err := sections[len(sections)-1].processLine(parsed); err != nil {
			return nil, errorAt(lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errorAt(lineNo, fmt.Errorf("file error: %w", err))
	}
	return &Script{Sections: sections}, nil
}

// ParseString parses a complete in-memory document. Every line, the header
// included, counts toward error line numbers.
func ParseString(s string) (*Script, error) {
	s = strings.TrimPrefix(s, "\uFEFF")
	if !strings.HasPrefix(s, "[Script Info]") {
		return nil, errorAt(1, ErrMissingScriptInfo)
	}
	var sections []Section
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		switch line {
		case "[Script Info]":
			sections = append(sections, newScriptInfo())
			continue
		case "[V4+ Styles]":
			sections = append(sections, newStylesSection())
			continue
		case "[Events]":
			sections = append(sections, newEventsSection())
			continue
		}
		if title, ok := genericTitle(line); ok {
			sections = append(sections, newGenericSection(title))
			continue
		}
		if len(sections) == 0 {
			return nil, errorAt(lineNo, ErrInvalid)
		}
		parsed, ok := ClassifyLine(line)
		if !ok {
			continue
		}
		if err := sections[len(sections)-1].processLine(parsed); err != nil {
			return nil, errorAt(lineNo, err)
		}
	}
	return &Script{Sections: sections}, nil
}

func genericTitle(s string) (string, bool) {
	rest, ok := strings.CutPrefix(s, "[")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, "]")
}

// Save writes the canonical form to path. A failure partway through can leave
// a partially written file behind.
func (s *Script) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write serializes every section, in stored order, to w.
func (s *Script) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sec := range s.Sections {
		if err := sec.writeTo(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Events iterates every event across all Events sections in document order.
// The yielded pointers alias the script, so edits are visible in place.
func (s *Script) Events() iter.Seq[*Event] {
	return func(yield func(*Event) bool) {
		for _, sec := range s.Sections {
			events, ok := sec.(*EventsSection)
			if !ok {
				continue
			}
			for i := range events.Events {
				if !yield(&events.Events[i]) {
					return
				}
			}
		}
	}
}

var emphasisTags = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`<(i|b|u|s)>(.+)</(?:i|b|u|s)>`)
})

// dialogueText rewrites SRT emphasis markup into override tags and encodes
// literal line breaks as \N.
func dialogueText(text string) string {
	text = emphasisTags().ReplaceAllString(text, `{\${1}1}${2}{\${1}0}`)
	return strings.ReplaceAll(text, "\n", `\N`)
}

// NewFromDialogue builds a script from plain dialogue entries using the
// built-in conversion style. Dialogue containing Japanese switches the style
// to a bold Japanese-capable one.
func NewFromDialogue(dialogue []srt.Dialogue) *Script {
	return BuildScript(dialogue, DefaultScriptInfo(), ConversionStyle(), "Yu Gothic UI")
}

// BuildScript is NewFromDialogue with the metadata block, base style and
// Japanese fallback style name supplied by the caller.
func BuildScript(dialogue []srt.Dialogue, info *ScriptInfo, style Style, japaneseName string) *Script {
	for _, d := range dialogue {
		if japanese.ContainsJapanese(d.Text) {
			style.Bold = true
			style.Name = japaneseName
			break
		}
	}
	styles := DefaultStylesSection()
	styles.Styles = []Style{style}
	events := DefaultEventsSection()
	events.Events = make([]Event, 0, len(dialogue))
	for _, d := range dialogue {
		event := DefaultEvent()
		event.Start = d.Start
		event.End = d.End
		event.Text = dialogueText(d.Text)
		events.Events = append(events.Events, event)
	}
	return &Script{Sections: []Section{info, styles, events}}
}
