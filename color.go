package ui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an sRGB colour with alpha that can be written in theme files
// as "#rgb", "#rrggbb", "#rrggbbaa" or a CSS colour name.
type Color color.RGBA

// Value returns the colour as a color.RGBA.
func (c Color) Value() color.RGBA {
	return color.RGBA(c)
}

// String formats the colour as "#rrggbbaa", or "#rrggbb" when opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = Color(parsed)
	return nil
}

// ParseColor parses a hex colour or a CSS colour name.
// Supported hex formats: "#RGB", "#RRGGBB" and "#RRGGBBAA".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown colour name %q", s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		var rgb [3]uint8
		for i := range rgb {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return color.RGBA{}, err
			}
			rgb[i] = n<<4 | n
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	case 6, 8:
		var ch [4]uint8
		ch[3] = 0xff
		for i := 0; i < len(hex)/2; i++ {
			b, err := parseHexByte(hex[2*i : 2*i+2])
			if err != nil {
				return color.RGBA{}, err
			}
			ch[i] = b
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: expected 3, 6 or 8 digits", s)
	}
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte parses a 2-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	hi, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	lo, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

// parseHexNibble parses a single hex character into its value.
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}
