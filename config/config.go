// Package config loads the kiloc TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/kiloc/render"
	"github.com/lixenwraith/kiloc/terminal"
)

// Environment overrides applied after the file is read
const (
	EnvColor = "KILOC_COLOR"
	EnvLog   = "KILOC_LOG"
)

var ErrInvalid = errors.New("invalid config")

// Config is the persisted config file schema
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
	Source  string  `toml:"-"`
}

// Canvas sizes the virtual canvas and the component arena
type Canvas struct {
	MinWidth  int  `toml:"min_width"`
	MinHeight int  `toml:"min_height"`
	MaxWidth  int  `toml:"max_width"`
	MaxHeight int  `toml:"max_height"`
	Border    bool `toml:"border"`
	Capacity  int  `toml:"capacity"`
}

// Display holds color settings; colors are names or #rrggbb as understood by tcell
type Display struct {
	Color      string `toml:"color"` // auto, truecolor, 256
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Border     string `toml:"border"`
}

// Log configures file logging; an empty path keeps logging off
type Log struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Canvas: Canvas{
			MinWidth:  40,
			MinHeight: 12,
			MaxWidth:  60,
			MaxHeight: 20,
			Border:    true,
			Capacity:  64,
		},
		Display: Display{
			Color:      "auto",
			Foreground: "silver",
			Border:     "steelblue",
		},
		Log: Log{Level: "info"},
	}
}

// DefaultPath returns ~/.kiloc/config.toml, empty if $HOME is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kiloc", "config.toml")
}

// Load reads path over the defaults; a missing file is not an error
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	cfg.Source = path

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			if err := toml.Unmarshal(content, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if env := strings.TrimSpace(os.Getenv(EnvColor)); env != "" {
		cfg.Display.Color = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvLog)); env != "" {
		cfg.Log.Path = env
	}

	return cfg, cfg.Validate()
}

// Validate checks canvas geometry, capacity and colors
func (c Config) Validate() error {
	if err := c.Bounds().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Canvas.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d", ErrInvalid, c.Canvas.Capacity)
	}
	for name, v := range map[string]string{
		"foreground": c.Display.Foreground,
		"background": c.Display.Background,
		"border":     c.Display.Border,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// Bounds converts the canvas section for the renderer
func (c Config) Bounds() render.Bounds {
	return render.Bounds{
		MinW:   c.Canvas.MinWidth,
		MinH:   c.Canvas.MinHeight,
		MaxW:   c.Canvas.MaxWidth,
		MaxH:   c.Canvas.MaxHeight,
		Border: c.Canvas.Border,
	}
}

// ColorMode resolves the display color setting, detecting when set to auto
func (c Config) ColorMode() terminal.ColorMode {
	return terminal.ParseColorMode(c.Display.Color)
}

// BackgroundStyle is what empty canvas cells are cleared to
func (c Config) BackgroundStyle() terminal.Style {
	bg, _ := ParseColor(c.Display.Background)
	return terminal.StyleNone.WithBg(bg)
}

// TextStyle is the default style for text: configured foreground over the background
func (c Config) TextStyle() terminal.Style {
	fg, _ := ParseColor(c.Display.Foreground)
	return c.BackgroundStyle().WithFg(fg)
}

// BorderStyle is the style of the outer border
func (c Config) BorderStyle() terminal.Style {
	fg, _ := ParseColor(c.Display.Border)
	return c.BackgroundStyle().WithFg(fg)
}

// ParseColor resolves a color name or #rrggbb; empty means no color (0)
// Black resolves to 0 as well, since the style word cannot express it
func ParseColor(s string) (terminal.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "default") {
		return 0, nil
	}
	c := tcell.GetColor(strings.ToLower(s))
	if !c.Valid() {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	if c.Hex() < 0 {
		return 0, fmt.Errorf("color %q has no rgb value", s)
	}
	r, g, b := c.RGB()
	return terminal.NewRGB(uint8(r), uint8(g), uint8(b)), nil
}
