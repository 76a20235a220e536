// Package color holds the color value shared by every palette and the single
// routine that turns hex literals into it.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ColorHexRegex matches #rgb, #rgba, #rrggbb and #rrggbbaa.
var ColorHexRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Color is an 8-bit per channel, non-premultiplied RGBA value.
// Colors compare by value.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var _ stdcolor.Color = Color{}

func IsHex(s string) bool {
	return ColorHexRegex.MatchString(s)
}

// Parse parses a hex color literal. Named colors and functional notations
// such as rgb() are rejected even though csscolorparser understands them.
func Parse(s string) (Color, error) {
	if !IsHex(s) {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}, nil
}

// MustParse is like Parse but panics. Only use it on literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func channel(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

// Hex returns #rrggbb, or #rrggbbaa if the color is not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Colorful drops alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
