package ass

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Style is one row of a [V4+ Styles] section.
type Style struct {
	Name             string
	FontName         string
	FontSize         uint8
	PrimaryColour    Colour
	SecondaryColour  Colour
	OutlineColour    Colour
	BackgroundColour Colour
	Bold             bool
	Italic           bool
	Underline        bool
	StrikeOut        bool
	ScaleX           float32
	ScaleY           float32
	Spacing          float32
	Angle            float32
	BorderStyle      uint8
	Outline          float32
	Shadow           float32
	Alignment        uint8
	MarginL          uint16
	MarginR          uint16
	MarginV          uint16
	Encoding         uint8
}

// DefaultStyle mirrors the format's own built-in defaults. Rows parsed under
// a truncated Format keep these values for the omitted fields.
func DefaultStyle() Style {
	return Style{
		Name:             "Default",
		FontName:         "Arial",
		FontSize:         20,
		PrimaryColour:    White,
		SecondaryColour:  Red,
		OutlineColour:    Black,
		BackgroundColour: Black,
		ScaleX:           100,
		ScaleY:           100,
		BorderStyle:      1,
		Outline:          2,
		Shadow:           2,
		Alignment:        2,
		MarginL:          10,
		MarginR:          10,
		MarginV:          10,
		Encoding:         1,
	}
}

// ConversionStyle is the style the dialogue builder installs.
func ConversionStyle() Style {
	s := DefaultStyle()
	s.FontSize = 66
	s.PrimaryColour = RGB(0xFA, 0xFA, 0xFA)
	s.OutlineColour = RGB(0xB6, 0x73, 0xF2)
	s.Spacing = 1
	s.Outline = 3
	s.Shadow = 0
	s.MarginV = 20
	return s
}

// The serializer always emits this field order, regardless of the Format the
// section was parsed with.
const stylesFormat = "Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"

func (s Style) writeTo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Style: %s,%s,%d,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%d,%s,%s,%d,%d,%d,%d,%d\n",
		s.Name, s.FontName, s.FontSize,
		s.PrimaryColour, s.SecondaryColour, s.OutlineColour, s.BackgroundColour,
		boolFlag(s.Bold), boolFlag(s.Italic), boolFlag(s.Underline), boolFlag(s.StrikeOut),
		formatFloat(s.ScaleX), formatFloat(s.ScaleY), formatFloat(s.Spacing), formatFloat(s.Angle),
		s.BorderStyle, formatFloat(s.Outline), formatFloat(s.Shadow),
		s.Alignment, s.MarginL, s.MarginR, s.MarginV, s.Encoding)
	return err
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func parseUint8(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 10, 8)
	return uint8(v), err == nil
}

func parseUint16(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 10, 16)
	return uint16(v), err == nil
}

func parseFloat32(s string) (float32, bool) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err == nil
}

// StylesSection is a [V4+ Styles] block: the active Format field order plus
// the styles parsed under it.
type StylesSection struct {
	format []string
	Styles []Style
}

func newStylesSection() *StylesSection { return &StylesSection{} }

// DefaultStylesSection carries the canonical format and the built-in default
// style.
func DefaultStylesSection() *StylesSection {
	return &StylesSection{
		format: strings.Split(stylesFormat, ", "),
		Styles: []Style{DefaultStyle()},
	}
}

func (s *StylesSection) processLine(line Line) error {
	if line.Kind() == LineEmpty {
		return nil
	}
	key, value, ok := line.Item()
	if !ok {
		return ErrInvalid
	}
	switch key {
	case "Format":
		s.format = strings.Split(value, ", ")
		return nil
	case "Style":
		if len(s.format) == 0 {
			return ErrMissingFormat
		}
		style, ok := s.styleFromFormat(value)
		if !ok {
			return ErrInvalidStyle
		}
		s.Styles = append(s.Styles, style)
		return nil
	}
	return ErrInvalid
}

func (s *StylesSection) styleFromFormat(data string) (Style, bool) {
	style := DefaultStyle()
	// No style field is free text, so every separator splits.
	values := strings.Split(data, ",")
	for i, name := range s.format {
		if i >= len(values) {
			break
		}
		value := values[i]
		ok := true
		switch name {
		case "Name":
			style.Name = value
		case "Fontname":
			style.FontName = value
		case "Fontsize":
			style.FontSize, ok = parseUint8(value)
		case "PrimaryColour":
			style.PrimaryColour, ok = ParseColour(value)
		case "SecondaryColour":
			style.SecondaryColour, ok = ParseColour(value)
		case "OutlineColour":
			style.OutlineColour, ok = ParseColour(value)
		case "BackColour":
			style.BackgroundColour, ok = ParseColour(value)
		case "Bold":
			style.Bold = value != "0"
		case "Italic":
			style.Italic = value != "0"
		case "Underline":
			style.Underline = value != "0"
		case "StrikeOut":
			style.StrikeOut = value != "0"
		case "ScaleX":
			style.ScaleX, ok = parseFloat32(value)
		case "ScaleY":
			style.ScaleY, ok = parseFloat32(value)
		case "Spacing":
			style.Spacing, ok = parseFloat32(value)
		case "Angle":
			style.Angle, ok = parseFloat32(value)
		case "BorderStyle":
			style.BorderStyle, ok = parseUint8(value)
		case "Outline":
			style.Outline, ok = parseFloat32(value)
		case "Shadow":
			style.Shadow, ok = parseFloat32(value)
		case "Alignment":
			style.Alignment, ok = parseUint8(value)
		case "MarginL":
			style.MarginL, ok = parseUint16(value)
		case "MarginR":
			style.MarginR, ok = parseUint16(value)
		case "MarginV":
			style.MarginV, ok = parseUint16(value)
		case "Encoding":
			style.Encoding, ok = parseUint8(value)
		}
		if !ok {
			return Style{}, false
		}
	}
	return style, true
}

func (s *StylesSection) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "[V4+ Styles]"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Format: %s\n", stylesFormat); err != nil {
		return err
	}
	for _, style := range s.Styles {
		if err := style.writeTo(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
