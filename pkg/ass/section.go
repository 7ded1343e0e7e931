package ass

import (
	"fmt"
	"io"
)

// Section is one bracket-headed block of a script. The concrete types are
// *ScriptInfo, *StylesSection, *EventsSection and *GenericSection; narrow
// with a type assertion.
type Section interface {
	processLine(Line) error
	writeTo(io.Writer) error
}

// ScriptInfo is the mandatory [Script Info] block. Lines are kept verbatim,
// comments and blanks included.
type ScriptInfo struct {
	Lines []Line
}

func newScriptInfo() *ScriptInfo { return &ScriptInfo{} }

// DefaultScriptInfo returns the metadata block the dialogue builder installs.
func DefaultScriptInfo() *ScriptInfo {
	return &ScriptInfo{Lines: []Line{
		NewVariable("ScriptType", "v4.00+"),
		NewVariable("WrapStyle", "0"),
		NewVariable("ScaledBorderAndShadow", "yes"),
		NewVariable("YCbCr Matrix", "TV.709"),
		NewVariable("PlayResX", "1920"),
		NewVariable("PlayResY", "1080"),
		{},
	}}
}

func (s *ScriptInfo) processLine(line Line) error {
	if line.Kind() == LineEncoded {
		return ErrInvalid
	}
	s.Lines = append(s.Lines, line)
	return nil
}

// Title returns the Title variable, or "<untitled>" when absent.
func (s *ScriptInfo) Title() string {
	for _, l := range s.Lines {
		if key, value, ok := l.Item(); ok && key == "Title" {
			return value
		}
	}
	return "<untitled>"
}

// Version returns the ScriptType variable, or "" when absent.
func (s *ScriptInfo) Version() string {
	for _, l := range s.Lines {
		if key, value, ok := l.Item(); ok && key == "ScriptType" {
			return value
		}
	}
	return ""
}

// RemoveComments drops comment lines, including Comment: variables.
func (s *ScriptInfo) RemoveComments() {
	s.Lines = removeComments(s.Lines)
}

func (s *ScriptInfo) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "[Script Info]"); err != nil {
		return err
	}
	return writeLines(w, s.Lines)
}

// GenericSection preserves a block this parser has no schema for, keyed by
// its bracketed title.
type GenericSection struct {
	Title string
	Lines []Line
}

func newGenericSection(title string) *GenericSection {
	return &GenericSection{Title: title}
}

func (s *GenericSection) processLine(line Line) error {
	s.Lines = append(s.Lines, line)
	return nil
}

// RemoveComments drops comment lines, including Comment: variables.
func (s *GenericSection) RemoveComments() {
	s.Lines = removeComments(s.Lines)
}

func (s *GenericSection) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", s.Title); err != nil {
		return err
	}
	return writeLines(w, s.Lines)
}

func removeComments(lines []Line) []Line {
	kept := lines[:0]
	for _, l := range lines {
		if !l.IsComment() {
			kept = append(kept, l)
		}
	}
	return kept
}

func writeLines(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if err := l.writeTo(w); err != nil {
			return err
		}
	}
	return nil
}
