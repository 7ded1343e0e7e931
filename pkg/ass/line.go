package ass

import (
	"fmt"
	"io"
	"strings"
)

// LineKind discriminates the variants of Line.
type LineKind int

const (
	LineEmpty LineKind = iota
	LineVariable
	LineComment
	LineEncoded
)

// Line is one classified line of a section. The zero value is the empty line.
//
// Variable lines hold the raw "key: value" text, comment lines the text after
// the semicolon, encoded lines the raw UUEncoded payload.
type Line struct {
	kind LineKind
	text string
}

// ClassifyLine labels a raw line. The second return is false when the line
// matches no variant; the parser drops such lines silently.
func ClassifyLine(s string) (Line, bool) {
	switch {
	case s == "":
		return Line{kind: LineEmpty}, true
	case strings.HasPrefix(s, ";"):
		return Line{kind: LineComment, text: s[1:]}, true
	case strings.Contains(s, ": "):
		return Line{kind: LineVariable, text: s}, true
	case len(s) <= 80 && isEncoded(s):
		return Line{kind: LineEncoded, text: s}, true
	}
	return Line{}, false
}

func isEncoded(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 33 || s[i] > 96 {
			return false
		}
	}
	return true
}

// NewVariable builds a key-value line.
func NewVariable(key, value string) Line {
	return Line{kind: LineVariable, text: key + ": " + value}
}

// Kind returns the line's variant.
func (l Line) Kind() LineKind { return l.kind }

// Text returns the line's raw payload.
func (l Line) Text() string { return l.text }

// Item splits a variable line into its key and value. Every other kind
// returns ok == false.
func (l Line) Item() (key, value string, ok bool) {
	if l.kind != LineVariable {
		return "", "", false
	}
	return strings.Cut(l.text, ": ")
}

// IsComment reports whether the line is a comment. Variable lines keyed
// "Comment" count as comments too.
func (l Line) IsComment() bool {
	switch l.kind {
	case LineComment:
		return true
	case LineVariable:
		key, _, ok := l.Item()
		return ok && key == "Comment"
	}
	return false
}

// Set replaces the value of a variable line. Other kinds are left untouched.
func (l *Line) Set(value string) {
	if key, _, ok := l.Item(); ok {
		l.text = key + ": " + value
	}
}

// Overwrite replaces the line with the given key-value pair.
func (l *Line) Overwrite(key, value string) {
	*l = NewVariable(key, value)
}

func (l Line) writeTo(w io.Writer) error {
	var err error
	switch l.kind {
	case LineComment:
		_, err = fmt.Fprintf(w, ";%s\n", l.text)
	case LineEmpty:
		_, err = fmt.Fprintln(w)
	default:
		_, err = fmt.Fprintln(w, l.text)
	}
	return err
}
