package ui

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
)

// Role names a theme colour so styles can follow theme changes.
type Role uint8

const (
	RoleNone Role = iota
	RoleBackground
	RoleSurface
	RoleHover
	RoleSelected
	RoleOutline
	RoleText
	RoleDim
	RoleAccent
)

// String returns the role's theme key.
func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleSurface:
		return "surface"
	case RoleHover:
		return "hover"
	case RoleSelected:
		return "selected"
	case RoleOutline:
		return "outline"
	case RoleText:
		return "text"
	case RoleDim:
		return "dim"
	case RoleAccent:
		return "accent"
	default:
		return "none"
	}
}

// Palette holds the theme colours. Values are straight (not
// premultiplied) alpha.
type Palette struct {
	Background Color `toml:"background"`
	Surface    Color `toml:"surface"`
	Hover      Color `toml:"hover"`
	Selected   Color `toml:"selected"`
	Outline    Color `toml:"outline"`
	Text       Color `toml:"text"`
	Dim        Color `toml:"dim"`
	Accent     Color `toml:"accent"`
	CheckerA   Color `toml:"checker_a"`
	CheckerB   Color `toml:"checker_b"`
}

// Theme holds the base metrics and colours every container and widget
// scales from.
type Theme struct {
	Margin             float32 `toml:"margin"`
	Padding            float32 `toml:"padding"`
	ScrollSpeed        float32 `toml:"scroll_speed"`
	FontSize           float32 `toml:"font_size"`
	ScrollbarThickness float32 `toml:"scrollbar_thickness"`
	SliderThumb        float32 `toml:"slider_thumb"`
	OutlineWeight      float32 `toml:"outline_weight"`
	CheckerCell        float32 `toml:"checker_cell"`

	Colors Palette `toml:"colors"`
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		Margin:             4,
		Padding:            4,
		ScrollSpeed:        20,
		FontSize:           14,
		ScrollbarThickness: 10,
		SliderThumb:        12,
		OutlineWeight:      1,
		CheckerCell:        8,
		Colors: Palette{
			Background: Color{R: 0x1e, G: 0x1e, B: 0x22, A: 0xff},
			Surface:    Color{R: 0x2c, G: 0x2c, B: 0x32, A: 0xff},
			Hover:      Color{R: 0x3a, G: 0x3a, B: 0x44, A: 0xff},
			Selected:   Color{R: 0x2f, G: 0x5f, B: 0x9e, A: 0xff},
			Outline:    Color{R: 0x55, G: 0x55, B: 0x60, A: 0xff},
			Text:       Color{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
			Dim:        Color{R: 0x00, G: 0x00, B: 0x00, A: 0x80},
			Accent:     Color{R: 0x4f, G: 0x9d, B: 0xff, A: 0xff},
			CheckerA:   Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
			CheckerB:   Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		},
	}
}

// Color returns the colour assigned to role r. RoleNone is transparent.
func (th *Theme) Color(r Role) color.RGBA {
	p := &th.Colors
	var c Color
	switch r {
	case RoleBackground:
		c = p.Background
	case RoleSurface:
		c = p.Surface
	case RoleHover:
		c = p.Hover
	case RoleSelected:
		c = p.Selected
	case RoleOutline:
		c = p.Outline
	case RoleText:
		c = p.Text
	case RoleDim:
		c = p.Dim
	case RoleAccent:
		c = p.Accent
	}
	return c.Value()
}

// Validate reports metrics that would break layout.
func (th *Theme) Validate() error {
	var errs []error
	check := func(name string, v, lo float32) {
		if math32.IsNaN(v) || math32.IsInf(v, 0) || v < lo {
			errs = append(errs, fmt.Errorf("%s must be a number >= %g, got %g", name, lo, v))
		}
	}
	check("margin", th.Margin, 0)
	check("padding", th.Padding, 0)
	check("scroll_speed", th.ScrollSpeed, 0)
	check("font_size", th.FontSize, 1)
	check("scrollbar_thickness", th.ScrollbarThickness, 1)
	check("slider_thumb", th.SliderThumb, 1)
	check("outline_weight", th.OutlineWeight, 0)
	check("checker_cell", th.CheckerCell, 1)
	return errors.Join(errs...)
}

// ParseTheme decodes a TOML theme. Keys that are absent keep their
// DefaultTheme values.
func ParseTheme(data []byte) (*Theme, error) {
	th := DefaultTheme()
	if err := toml.Unmarshal(data, th); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return th, nil
}

// LoadTheme reads and decodes a TOML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	th, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return th, nil
}

// SaveTheme writes th as TOML.
func SaveTheme(path string, th *Theme) error {
	data, err := toml.Marshal(th)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
