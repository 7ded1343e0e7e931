package ass

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// EventKind is the keyword that opens an event row.
type EventKind int

const (
	EventDialogue EventKind = iota
	EventComment
	EventMovie
	EventSound
	EventPicture
)

var eventKindNames = [...]string{"Dialogue", "Comment", "Movie", "Sound", "Picture"}

// ParseEventKind decodes an event keyword.
func ParseEventKind(s string) (EventKind, bool) {
	for kind, name := range eventKindNames {
		if s == name {
			return EventKind(kind), true
		}
	}
	return 0, false
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return eventKindNames[EventDialogue]
	}
	return eventKindNames[k]
}

// IsDialogue reports whether the kind is Dialogue.
func (k EventKind) IsDialogue() bool { return k == EventDialogue }

// IsComment reports whether the kind is Comment.
func (k EventKind) IsComment() bool { return k == EventComment }

// Event is one row of an [Events] section. Style refers to a style by name;
// resolving the reference is up to the consumer.
type Event struct {
	Kind    EventKind
	Layer   uint8
	Start   time.Duration
	End     time.Duration
	Style   string
	Name    string
	MarginL uint16
	MarginR uint16
	MarginV uint16
	Effect  string
	Text    string
}

// DefaultEvent is a zero-timed dialogue event in the default style.
func DefaultEvent() Event {
	return Event{Style: "Default"}
}

// ShiftBy moves the event by a signed number of seconds, clamping at zero.
func (e *Event) ShiftBy(seconds float64) {
	offset := time.Duration(math.Abs(seconds) * float64(time.Second))
	if seconds < 0 {
		e.Start = saturatingSub(e.Start, offset)
		e.End = saturatingSub(e.End, offset)
		return
	}
	e.Start += offset
	e.End += offset
}

func (e Event) writeTo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %d,%s,%s,%s,%s,%d,%d,%d,%s,%s\n",
		e.Kind, e.Layer, FormatTimestamp(e.Start), FormatTimestamp(e.End),
		e.Style, e.Name, e.MarginL, e.MarginR, e.MarginV, e.Effect, e.Text)
	return err
}

const eventsFormat = "Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

// EventsSection is an [Events] block: the active Format field order plus the
// events parsed under it.
type EventsSection struct {
	format []string
	Events []Event
}

func newEventsSection() *EventsSection { return &EventsSection{} }

// DefaultEventsSection carries the canonical format and no events.
func DefaultEventsSection() *EventsSection {
	return &EventsSection{format: strings.Split(eventsFormat, ", ")}
}

func (s *EventsSection) processLine(line Line) error {
	if line.Kind() == LineEmpty {
		return nil
	}
	key, value, ok := line.Item()
	if !ok {
		return ErrInvalid
	}
	if key == "Format" {
		s.format = strings.Split(value, ", ")
		return nil
	}
	kind, ok := ParseEventKind(key)
	if !ok {
		return ErrInvalidEventType
	}
	if len(s.format) == 0 {
		return ErrMissingFormat
	}
	event, ok := s.eventFromFormat(kind, value)
	if !ok {
		return ErrInvalidEvent
	}
	s.Events = append(s.Events, event)
	return nil
}

func (s *EventsSection) eventFromFormat(kind EventKind, data string) (Event, bool) {
	event := DefaultEvent()
	event.Kind = kind
	// The trailing Text field is free text, so the split is bounded by the
	// format width. Style rows have no such field and split unbounded.
	values := strings.SplitN(data, ",", len(s.format))
	for i, name := range s.format {
		if i >= len(values) {
			break
		}
		value := values[i]
		ok := true
		switch name {
		case "Layer":
			event.Layer, ok = parseUint8(value)
		case "Start":
			event.Start, ok = ParseTimestamp(value)
		case "End":
			event.End, ok = ParseTimestamp(value)
		case "Style":
			event.Style = value
		case "Name":
			event.Name = value
		case "MarginL":
			event.MarginL, ok = parseUint16(value)
		case "MarginR":
			event.MarginR, ok = parseUint16(value)
		case "MarginV":
			event.MarginV, ok = parseUint16(value)
		case "Effect":
			event.Effect = value
		case "Text":
			event.Text = value
		}
		if !ok {
			return Event{}, false
		}
	}
	return event, true
}

// RemoveComments drops Comment events.
func (s *EventsSection) RemoveComments() {
	kept := s.Events[:0]
	for _, e := range s.Events {
		if !e.Kind.IsComment() {
			kept = append(kept, e)
		}
	}
	s.Events = kept
}

func (s *EventsSection) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "[Events]"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Format: %s\n", eventsFormat); err != nil {
		return err
	}
	for _, event := range s.Events {
		if err := event.writeTo(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
