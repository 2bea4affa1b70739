package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a 0xRRGGBBAA value. It implements color.Color with
// non-premultiplied semantics.
type Color uint32

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA splits the packed value into channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor accepts "#RRGGBB", "#RRGGBBAA", "0xRRGGBBAA" and decimal
// integers. Six-digit hex forms get an opaque alpha.
func ParseColor(raw string) (Color, error) {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		switch len(hex) {
		case 6:
			hex += "FF"
		case 8:
		default:
			return 0, fmt.Errorf("color %q: expected 6 or 8 hex digits", raw)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", raw, err)
		}
		return Color(v), nil
	case s == "":
		return 0, fmt.Errorf("color is empty")
	default:
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("color %q: %w", raw, err)
		}
		return Color(v), nil
	}
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	parsed, err := ParseColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
