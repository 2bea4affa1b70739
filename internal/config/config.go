package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rook-computer/wmdecor/internal/cursor"
)

// BackgroundMode controls how a background image covers the screen.
type BackgroundMode string

const (
	BackgroundTile    BackgroundMode = "tile"
	BackgroundStretch BackgroundMode = "stretch"
	BackgroundFit     BackgroundMode = "fit"
	BackgroundFill    BackgroundMode = "fill"
	BackgroundCenter  BackgroundMode = "center"
)

const (
	MaxBorderWidth = 32

	DefaultFontSize = 10.0
	DefaultFontDPI  = 96.0
)

// MenuColors are handed to the menu styler on every rebuild.
type MenuColors struct {
	Back    Color `yaml:"back"`
	High    Color `yaml:"high"`
	Border  Color `yaml:"border"`
	Text    Color `yaml:"text"`
	SelText Color `yaml:"selected_text"`
}

// Font selects the face used to size the title bar. An empty Path means the
// embedded default face.
type Font struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
	DPI  float64 `yaml:"dpi"`
}

// Config is the theme consumed by the decoration builder.
type Config struct {
	WindowTitleColor Color          `yaml:"window_title_color"`
	BackgroundColor  Color          `yaml:"background_color"`
	BackgroundImage  string         `yaml:"background_image"`
	BackgroundMode   BackgroundMode `yaml:"background_mode"`
	Menu             MenuColors     `yaml:"menu"`
	BorderWidth      int            `yaml:"border_width"`
	Font             Font           `yaml:"font"`
	Cursor           string         `yaml:"cursor"`
}

// DefaultConfig returns the built-in theme.
func DefaultConfig() *Config {
	return &Config{
		WindowTitleColor: 0x9EEEEEFF,
		BackgroundColor:  0x777777FF,
		BackgroundMode:   BackgroundTile,
		Menu: MenuColors{
			Back:    0xEAFFEAFF,
			High:    0x448844FF,
			Border:  0x88CC88FF,
			Text:    0x000000FF,
			SelText: 0xEAFFEAFF,
		},
		BorderWidth: 2,
		Font: Font{
			Size: DefaultFontSize,
			DPI:  DefaultFontDPI,
		},
		Cursor: "default",
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// HasBackgroundImage reports whether a background file is configured.
func (c *Config) HasBackgroundImage() bool {
	return strings.TrimSpace(c.BackgroundImage) != ""
}

func (c *Config) Validate() error {
	if c.BorderWidth < 0 || c.BorderWidth > MaxBorderWidth {
		return fmt.Errorf("border_width must be between 0 and %d (got %d)", MaxBorderWidth, c.BorderWidth)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font.size must be > 0 (got %v)", c.Font.Size)
	}
	if c.Font.DPI <= 0 {
		return fmt.Errorf("font.dpi must be > 0 (got %v)", c.Font.DPI)
	}
	switch c.BackgroundMode {
	case BackgroundTile, BackgroundStretch, BackgroundFit, BackgroundFill, BackgroundCenter:
	default:
		return fmt.Errorf("background_mode %q is not one of tile, stretch, fit, fill, center", c.BackgroundMode)
	}
	if _, ok := cursor.ByName(c.Cursor); !ok {
		return fmt.Errorf("cursor %q is not a known cursor", c.Cursor)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
