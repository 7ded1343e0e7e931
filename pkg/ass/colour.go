package ass

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Colour is an RGBA colour as used by styles. Alpha follows the .ass
// convention where 0 is opaque.
type Colour struct {
	Red, Green, Blue, Alpha uint8
}

var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
	Red   = RGB(255, 0, 0)
)

// RGB builds an opaque colour.
func RGB(r, g, b uint8) Colour {
	return Colour{Red: r, Green: g, Blue: b}
}

// ParseColour decodes the &HAABBGGRR notation.
func ParseColour(s string) (Colour, bool) {
	rest, ok := strings.CutPrefix(s, "&H")
	if !ok {
		return Colour{}, false
	}
	num, err := strconv.ParseUint(rest, 16, 32)
	if err != nil {
		return Colour{}, false
	}
	return Colour{
		Red:   uint8(num),
		Green: uint8(num >> 8),
		Blue:  uint8(num >> 16),
		Alpha: uint8(num >> 24),
	}, true
}

// String encodes the colour in &HAABBGGRR notation, uppercase and
// zero-padded.
func (c Colour) String() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", c.Alpha, c.Blue, c.Green, c.Red)
}

// Hex returns the #RRGGBBAA form.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.Red, c.Green, c.Blue, c.Alpha)
}

// RelativeLuminance implements the WCAG 2.0 definition.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func (c Colour) RelativeLuminance() float64 {
	r := linearize(float64(c.Red) / 255)
	g := linearize(float64(c.Green) / 255)
	b := linearize(float64(c.Blue) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
